package i18n_test

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/i18n"
)

//go:embed testdata
var testdataFS embed.FS

func quiet() i18n.Option {
	return i18n.WithWarnHandler(func(string, string) {})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads JSON file", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "translations.json"), quiet())
		require.NoError(t, err)

		require.Equal(t, []string{"en", "id"}, store.Locales())
		require.Equal(t, "Halo", i18n.Get(store, "greeting", "id", ""))
		require.Equal(t, "Nama", i18n.Get(store, "user.name", "id", ""))
		require.Equal(t, 30, i18n.Get(store, "user.age", "id", 0))
		require.Equal(t, int64(30), i18n.Get(store, "user.age", "en", int64(0)))
		require.InDelta(t, 30.0, i18n.Get(store, "user.age", "en", 0.0), 0.0001)
		require.Equal(t, "English only", i18n.Get(store, "only_en", "id", ""))
	})

	t.Run("loads YAML file", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "translations.yaml"), quiet())
		require.NoError(t, err)

		require.Equal(t, "Halo", i18n.Get(store, "greeting", "id", ""))
		require.Equal(t, 30, i18n.Get(store, "user.age", "id", 0))
		require.Equal(t, []string{"a", "b"}, i18n.Get[[]string](store, "tags", "id", nil))
	})

	t.Run("loads TOML file", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "translations.toml"), quiet())
		require.NoError(t, err)

		require.Equal(t, []string{"en", "id"}, store.Locales())
		require.Equal(t, "Nama", i18n.Get(store, "user.name", "id", ""))
		require.Equal(t, 30, i18n.Get(store, "user.age", "id", 0))
		require.Equal(t, "English only", store.Translate("only_en", "id"))
	})

	t.Run("missing file is an IO error", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "nope.json"))
		require.ErrorIs(t, err, i18n.ErrIO)
		require.Nil(t, store)
	})

	t.Run("empty file is an IO error", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "empty.json"))
		require.ErrorIs(t, err, i18n.ErrIO)
		require.ErrorIs(t, err, i18n.ErrEmptyDocument)
		require.Nil(t, store)
	})

	t.Run("malformed file is a parse error", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "broken.json"))
		require.ErrorIs(t, err, i18n.ErrParse)
		require.Contains(t, err.Error(), "broken.json")
		require.Nil(t, store)
	})

	t.Run("non-object top level is invalid", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "array.json"))
		require.ErrorIs(t, err, i18n.ErrInvalidDocument)
		require.Nil(t, store)
	})

	t.Run("empty object is invalid", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "empty_object.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

		_, err := i18n.Load(path)
		require.ErrorIs(t, err, i18n.ErrInvalidDocument)
	})

	t.Run("applies options", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Load(filepath.Join("testdata", "translations.json"), i18n.WithDefaultLocale("id"))
		require.NoError(t, err)
		require.Equal(t, "id", store.DefaultLocale())
	})
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	store, err := i18n.LoadFS(testdataFS, "testdata/translations.json", quiet())
	require.NoError(t, err)
	require.Equal(t, "Hello", store.Translate("greeting"))

	_, err = i18n.LoadFS(testdataFS, "testdata/missing.yaml")
	require.ErrorIs(t, err, i18n.ErrIO)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("parses JSON", func(t *testing.T) {
		t.Parallel()
		store, err := i18n.Parse([]byte(`{"en":{"greeting":"Hello"},"id":{"greeting":"Halo"}}`), i18n.FormatJSON, quiet())
		require.NoError(t, err)
		require.Equal(t, "Halo", store.Translate("greeting", "id"))
	})

	t.Run("rejects trailing data", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.Parse([]byte(`{"en":{}} {"id":{}}`), i18n.FormatJSON)
		require.ErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.Parse([]byte("en: [unclosed"), i18n.FormatYAML)
		require.ErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.Parse(nil, i18n.FormatYAML)
		require.ErrorIs(t, err, i18n.ErrEmptyDocument)
	})

	t.Run("rejects YAML keys that collide as strings", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.Parse([]byte("en:\n  1: one\n  1.0: uno\n"), i18n.FormatYAML)
		require.ErrorIs(t, err, i18n.ErrInvalidDocument)

		_, err = i18n.Parse([]byte("en:\n  1: one\n  \"1\": uno\n"), i18n.FormatYAML)
		require.Error(t, err)
	})

	t.Run("rejects scalar YAML", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.Parse([]byte("just text"), i18n.FormatYAML)
		require.ErrorIs(t, err, i18n.ErrInvalidDocument)
	})

	t.Run("rejects malformed TOML", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.Parse([]byte("[en\ngreeting = "), i18n.FormatTOML)
		require.ErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.Parse([]byte("a = 1"), i18n.Format("ini"))
		require.ErrorIs(t, err, i18n.ErrParse)
	})
}

func TestLoadDir(t *testing.T) {
	t.Parallel()

	t.Run("loads one file per locale", func(t *testing.T) {
		t.Parallel()
		subFS, err := fs.Sub(testdataFS, "testdata/locales")
		require.NoError(t, err)

		store, err := i18n.LoadDir(subFS, quiet())
		require.NoError(t, err)

		require.Equal(t, []string{"de", "en", "fr", "ja"}, store.Locales())
		require.Equal(t, "Speichern", store.Translate("buttons.save", "de"))
		require.Equal(t, "Cancel", store.Translate("buttons.cancel", "de"))
		require.Equal(t, "Bonjour", store.Translate("greeting", "fr"))
		require.Equal(t, "保存", store.Translate("buttons.save", "ja"))
	})

	t.Run("duplicate locale is invalid", func(t *testing.T) {
		t.Parallel()
		subFS, err := fs.Sub(testdataFS, "testdata/dup")
		require.NoError(t, err)

		_, err = i18n.LoadDir(subFS)
		require.ErrorIs(t, err, i18n.ErrInvalidDocument)
	})

	t.Run("empty directory is invalid", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.LoadDir(fstest.MapFS{})
		require.ErrorIs(t, err, i18n.ErrInvalidDocument)
	})

	t.Run("propagates parse errors", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.LoadDir(fstest.MapFS{
			"en.json": {Data: []byte(`{"greeting": "Hello"}`)},
			"de.json": {Data: []byte(`{"greeting": `)},
		})
		require.ErrorIs(t, err, i18n.ErrParse)
	})

	t.Run("propagates empty files", func(t *testing.T) {
		t.Parallel()
		_, err := i18n.LoadDir(fstest.MapFS{
			"en.json": {Data: []byte{}},
		})
		require.ErrorIs(t, err, i18n.ErrIO)
	})
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	require.Equal(t, i18n.FormatYAML, i18n.FormatFromPath("a/b.yaml"))
	require.Equal(t, i18n.FormatYAML, i18n.FormatFromPath("b.YML"))
	require.Equal(t, i18n.FormatTOML, i18n.FormatFromPath("locales/ja.toml"))
	require.Equal(t, i18n.FormatJSON, i18n.FormatFromPath("b.json"))
	require.Equal(t, i18n.FormatJSON, i18n.FormatFromPath("translations"))
}
