package i18n_test

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

type warnRecorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *warnRecorder) handle(path, locale string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, locale+":"+path)
}

func (r *warnRecorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func newStore(t *testing.T, doc map[string]any, opts ...i18n.Option) (*i18n.Store, *warnRecorder) {
	t.Helper()
	rec := &warnRecorder{}
	opts = append([]i18n.Option{i18n.WithWarnHandler(rec.handle)}, opts...)
	store, err := i18n.New(doc, opts...)
	require.NoError(t, err)
	return store, rec
}

func TestGet(t *testing.T) {
	t.Parallel()

	greetings := map[string]any{
		"en": map[string]any{"greeting": "Hello"},
		"id": map[string]any{"greeting": "Halo"},
	}

	t.Run("returns value for requested locale", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, greetings)
		require.Equal(t, "Hello", i18n.Get(store, "greeting", "en", "x"))
		require.Equal(t, "Halo", i18n.Get(store, "greeting", "id", "x"))
	})

	t.Run("returns default when path is absent everywhere", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, greetings)
		require.Equal(t, "Bye", i18n.Get(store, "farewell", "en", "Bye"))
		require.Equal(t, "Bye", i18n.Get(store, "farewell", "id", "Bye"))
		require.Equal(t, 7, i18n.Get(store, "farewell", "xx", 7))
	})

	t.Run("falls back to default locale", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"user": map[string]any{"age": 30}},
			"id": map[string]any{},
		})
		require.Equal(t, 30, i18n.Get(store, "user.age", "id", 0))
	})

	t.Run("falls back for unknown locale", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, greetings)
		require.Equal(t, "Hello", i18n.Get(store, "greeting", "fr", "x"))
	})

	t.Run("null counts as absent", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"title": "Title", "empty": nil},
			"id": map[string]any{"title": nil, "empty": nil},
		})
		require.Equal(t, "Title", i18n.Get(store, "title", "id", "x"))
		require.Equal(t, "x", i18n.Get(store, "empty", "id", "x"))
		require.Equal(t, "x", i18n.Get(store, "empty", "en", "x"))
	})

	t.Run("primary wins over fallback", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"n": 1},
			"id": map[string]any{"n": 2},
		})
		require.Equal(t, 2, i18n.Get(store, "n", "id", 0))
	})

	t.Run("uses configured default locale for fallback", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"greeting": "Hello"},
			"de": map[string]any{"greeting": "Hallo"},
			"at": map[string]any{},
		}, i18n.WithDefaultLocale("de"))
		require.Equal(t, "Hallo", i18n.Get(store, "greeting", "at", "x"))
	})

	t.Run("no fallback when default locale is missing", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"id": map[string]any{"greeting": "Halo"},
			"ms": map[string]any{},
		})
		require.Equal(t, "x", i18n.Get(store, "greeting", "ms", "x"))
	})

	t.Run("type mismatch returns default", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"a": "1", "n": 5, "f": 1.5, "b": true},
		})
		require.Equal(t, 0, i18n.Get(store, "a", "en", 0))
		require.Equal(t, "x", i18n.Get(store, "n", "en", "x"))
		require.Equal(t, 9, i18n.Get(store, "f", "en", 9))
		require.Equal(t, 9, i18n.Get(store, "b", "en", 9))
		require.False(t, i18n.Get(store, "a", "en", false))
	})

	t.Run("mismatch does not fall through to fallback", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"n": 5},
			"id": map[string]any{"n": "lima"},
		})
		require.Equal(t, -1, i18n.Get(store, "n", "id", -1))
	})

	t.Run("returns nested structures", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{
				"user": map[string]any{"name": "Name", "role": "Role"},
				"days": []any{"Mon", "Tue"},
			},
		})
		require.Equal(t, map[string]string{"name": "Name", "role": "Role"},
			i18n.Get[map[string]string](store, "user", "en", nil))
		require.Equal(t, []string{"Mon", "Tue"}, i18n.Get[[]string](store, "days", "en", nil))
		require.Nil(t, i18n.Get[[]int](store, "days", "en", nil))
	})

	t.Run("path through a scalar is not found", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"user": "plain"},
		})
		require.Equal(t, "x", i18n.Get(store, "user.name", "en", "x"))
	})

	t.Run("empty path resolves to locale root", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, greetings)
		require.Equal(t, map[string]string{"greeting": "Halo"},
			i18n.Get[map[string]string](store, "", "id", nil))
	})

	t.Run("dots inside keys are unresolvable", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t, map[string]any{
			"en": map[string]any{"a.b": "dotted"},
		})
		require.Equal(t, "x", i18n.Get(store, "a.b", "en", "x"))
	})
}

func TestGetWarnings(t *testing.T) {
	t.Parallel()

	t.Run("warns when no other locale has the path", func(t *testing.T) {
		t.Parallel()
		store, rec := newStore(t, map[string]any{
			"en": map[string]any{"only_en": "English", "both": "Both"},
			"id": map[string]any{"both": "Keduanya"},
		})

		require.Equal(t, "English", i18n.Get(store, "only_en", "en", ""))
		require.Equal(t, "Both", i18n.Get(store, "both", "en", ""))
		require.Equal(t, []string{"en:only_en"}, rec.all())
	})

	t.Run("warns even when the value comes from fallback", func(t *testing.T) {
		t.Parallel()
		store, rec := newStore(t, map[string]any{
			"en": map[string]any{"a": "A"},
			"id": map[string]any{"a": "A"},
		})

		require.Equal(t, "x", i18n.Get(store, "missing", "id", "x"))
		require.Equal(t, "A", i18n.Get(store, "a", "id", "x"))
		require.Equal(t, []string{"id:missing"}, rec.all())
	})

	t.Run("null in other locales does not count", func(t *testing.T) {
		t.Parallel()
		store, rec := newStore(t, map[string]any{
			"en": map[string]any{"a": "A"},
			"id": map[string]any{"a": nil},
		})

		i18n.Get(store, "a", "en", "")
		require.Equal(t, []string{"en:a"}, rec.all())
	})

	t.Run("warning does not change the result", func(t *testing.T) {
		t.Parallel()
		store, rec := newStore(t, map[string]any{
			"en": map[string]any{"n": 3},
		})
		require.Equal(t, 3, i18n.Get(store, "n", "en", 0))
		require.Len(t, rec.all(), 1)
	})

	t.Run("default sink logs a warning", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		store, err := i18n.New(
			map[string]any{"en": map[string]any{"a": "A"}},
			i18n.WithLogger(logger),
		)
		require.NoError(t, err)

		i18n.Get(store, "a", "en", "")
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "path=a")
		assert.Contains(t, buf.String(), "locale=en")
	})
}

func TestT(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]any{
		"en": map[string]any{"greeting": "Hello", "count": 3, "enabled": true},
		"id": map[string]any{"greeting": "Halo"},
	})

	t.Run("defaults to the default locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Hello", i18n.T[string](store, "greeting"))
		require.Equal(t, "Hello", store.Translate("greeting"))
	})

	t.Run("uses given locale", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Halo", i18n.T[string](store, "greeting", "id"))
		require.Equal(t, "Halo", store.Translate("greeting", "id"))
	})

	t.Run("missing string yields placeholder", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, i18n.NotFound, i18n.T[string](store, "nope"))
		require.Equal(t, "Content not found", store.Translate("nope", "id"))
	})

	t.Run("missing non-string yields zero value", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 0, i18n.T[int](store, "nope"))
		require.False(t, i18n.T[bool](store, "nope"))
		require.Nil(t, i18n.T[[]string](store, "nope"))
	})

	t.Run("converts typed values", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 3, i18n.T[int](store, "count", "id"))
		require.True(t, i18n.T[bool](store, "enabled"))
	})

	t.Run("explicit defaults", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "Bye", i18n.TOr(store, "farewell", "id", "Bye"))
		require.Equal(t, i18n.NotFound, i18n.TOr(store, "farewell", "id", ""))
		require.Equal(t, 42, i18n.TOr(store, "farewell", "en", 42))
	})
}

func TestLookup(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]any{
		"en": map[string]any{"greeting": "Hello", "n": 1},
		"id": map[string]any{"greeting": "Halo"},
	})

	v, ok := store.Lookup("greeting", "id")
	require.True(t, ok)
	require.Equal(t, "Halo", v)

	v, ok = store.Lookup("n", "id")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = store.Lookup("missing", "en")
	require.False(t, ok)
}

func TestConcurrentLookups(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]any{
		"en": map[string]any{"greeting": "Hello"},
		"id": map[string]any{"greeting": "Halo"},
	})

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lang := "en"
			if i%2 == 0 {
				lang = "id"
			}
			for range 100 {
				_ = store.Translate("greeting", lang)
			}
		}()
	}
	wg.Wait()
}

func TestLookupResultsAreCopies(t *testing.T) {
	t.Parallel()

	store, _ := newStore(t, map[string]any{
		"en": map[string]any{
			"user": map[string]any{"name": "Name", "roles": []any{"admin"}},
			"list": []any{"a", "b"},
		},
		"id": map[string]any{},
	})

	user := i18n.Get[map[string]any](store, "user", "en", nil)
	user["name"] = "Changed"
	user["roles"].([]any)[0] = "Changed"
	delete(user, "roles")

	fallback := i18n.Get[map[string]any](store, "user", "id", nil)
	fallback["name"] = "Changed"

	raw, ok := store.Lookup("list", "en")
	require.True(t, ok)
	raw.([]any)[0] = "Changed"

	root, ok := store.Lookup("", "en")
	require.True(t, ok)
	delete(root.(map[string]any), "user")

	anyList := i18n.Get[any](store, "list", "en", nil)
	anyList.([]any)[1] = "Changed"

	require.Equal(t, "Name", store.Translate("user.name"))
	require.Equal(t, []string{"admin"}, i18n.Get[[]string](store, "user.roles", "en", nil))
	require.Equal(t, []any{"a", "b"}, i18n.Get[[]any](store, "list", "en", nil))
}

func TestZeroValueStore(t *testing.T) {
	t.Parallel()

	var store i18n.Store

	require.NotPanics(t, func() {
		require.Equal(t, "x", i18n.Get(&store, "greeting", "de", "x"))
		require.Equal(t, i18n.NotFound, store.Translate("greeting"))
	})
	require.Equal(t, i18n.DefaultLocale, store.DefaultLocale())
	require.Empty(t, store.Locales())
	require.True(t, store.Audit().Complete())
}
