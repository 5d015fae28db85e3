package i18n

import (
	"cmp"
	"slices"
)

// Entry is a leaf path within one locale.
type Entry struct {
	Path   string
	Locale string
}

// Report summarizes translation coverage of a document.
type Report struct {
	// Missing maps each non-default locale to the default-locale leaf paths
	// it has no non-null value for.
	Missing map[string][]string

	// Untranslated lists leaf paths that have a non-null value in exactly
	// one locale.
	Untranslated []Entry
}

// Complete reports whether no locale misses a default-locale path.
func (r Report) Complete() bool {
	return len(r.Missing) == 0
}

// Audit walks every leaf of every locale. It is the whole-document form of
// the per-lookup single-locale diagnostic and does not invoke the warn sink.
func (s *Store) Audit() Report {
	report := Report{Missing: make(map[string][]string)}

	owners := make(map[string][]string)
	for _, locale := range s.locales {
		for _, p := range leafPaths(s.document[locale]) {
			owners[p] = append(owners[p], locale)
		}
	}

	for p, locales := range owners {
		if len(locales) == 1 && !s.availableElsewhere(p, locales[0]) {
			report.Untranslated = append(report.Untranslated, Entry{Path: p, Locale: locales[0]})
		}
	}
	slices.SortFunc(report.Untranslated, func(a, b Entry) int {
		return cmp.Or(cmp.Compare(a.Path, b.Path), cmp.Compare(a.Locale, b.Locale))
	})

	defaultLocale := s.DefaultLocale()
	base, ok := s.document[defaultLocale]
	if !ok {
		return report
	}
	for _, locale := range s.locales {
		if locale == defaultLocale {
			continue
		}
		for _, p := range leafPaths(base) {
			if node, found := resolvePath(s.document[locale], p); !found || node == nil {
				report.Missing[locale] = append(report.Missing[locale], p)
			}
		}
	}

	return report
}
