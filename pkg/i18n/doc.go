// Package i18n provides typed lookups over a translation document keyed by
// locale code, with default-locale fallback and caller-supplied defaults.
//
// A document maps locale codes to nested trees of values. Lookups address a
// value with a dot-separated path ("user.name" descends into key "user",
// then "name"). Stores are immutable after construction and safe for
// concurrent use.
//
// # Basic Usage
//
//	store, err := i18n.New(map[string]any{
//		"en": map[string]any{"greeting": "Hello", "user": map[string]any{"age": 30}},
//		"id": map[string]any{"greeting": "Halo"},
//	})
//	if err != nil {
//		return err
//	}
//
//	i18n.Get(store, "greeting", "id", "")   // "Halo"
//	i18n.Get(store, "user.age", "id", 0)    // 30, from "en"
//	i18n.Get(store, "farewell", "en", "Bye") // "Bye"
//
// # Fallback
//
// Get tries the requested locale first. When the path is missing or null
// there, the default locale ("en" unless WithDefaultLocale says otherwise)
// is consulted. When neither yields a non-null value, or the value does not
// convert to the requested type, the caller's default is returned. Lookups
// never return errors.
//
// # Convenience Lookups
//
// T and TOr spare call sites from spelling out a locale and a default.
// String lookups without a default return NotFound ("Content not found"):
//
//	store.Translate("greeting")       // "Hello"
//	i18n.T[string](store, "nope")     // "Content not found"
//	i18n.T[int](store, "nope")        // 0
//
// # Files
//
// Load, LoadFS and Parse read JSON, YAML or TOML documents; LoadDir assembles a
// document from one file per locale. Construction failures match ErrIO,
// ErrParse or ErrInvalidDocument with errors.Is.
//
// # Diagnostics
//
// Every lookup checks whether the path has a value in some locale other
// than the one requested and, if not, reports it through the warn sink
// (WithWarnHandler), or logs a warning when no sink is set. Store.Audit
// produces the same information for the whole document at once.
package i18n
