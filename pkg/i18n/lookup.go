package i18n

// Get resolves path in lang, falling back to the store's default locale when
// lang has no non-null value there, and converts the result to V.
// It never fails: a missing path, a missing locale or a value that does not
// fit V all yield def.
//
// Every call also checks whether path has a value in some locale other than
// lang and reports it through the warn sink when it does not, even if the
// lookup itself succeeds.
func Get[V any](s *Store, path, lang string, def V) V {
	node, ok := s.resolve(path, lang)
	if !ok {
		return def
	}

	v, err := convert[V](node)
	if err != nil {
		return def
	}
	return v
}

// T is the short form of Get. The locale defaults to the store's default
// locale; the default value is the zero value of V, except for strings where
// it is NotFound.
//
//	title := i18n.T[string](store, "page.title", "de")
//	limit := i18n.T[int](store, "limits.upload")
func T[V any](s *Store, path string, lang ...string) V {
	var def V
	return TOr(s, path, localeOrDefault(s, lang), def)
}

// TOr is T with an explicit locale and default. An empty string default is
// replaced with NotFound.
func TOr[V any](s *Store, path, lang string, def V) V {
	if str, ok := any(&def).(*string); ok && *str == "" {
		*str = NotFound
	}
	return Get(s, path, lang, def)
}

// Translate returns the string at path, see T.
func (s *Store) Translate(path string, lang ...string) string {
	return T[string](s, path, lang...)
}

// Lookup resolves path in lang with default-locale fallback and returns the
// raw tree value without conversion. Null values count as absent.
// Mappings and sequences are returned as copies.
// The single-locale diagnostic is reported exactly as in Get.
func (s *Store) Lookup(path, lang string) (any, bool) {
	node, ok := s.resolve(path, lang)
	if !ok {
		return nil, false
	}
	return cloneNode(node), true
}

// resolve is Lookup without copying; the result aliases the store's tree.
func (s *Store) resolve(path, lang string) (any, bool) {
	var primary, fallback any

	if root, ok := s.document[lang]; ok {
		primary, _ = resolvePath(root, path)
	}

	if !s.availableElsewhere(path, lang) {
		s.warnUnavailable(path, lang)
	}

	if defaultLocale := s.DefaultLocale(); lang != defaultLocale {
		if root, ok := s.document[defaultLocale]; ok {
			fallback, _ = resolvePath(root, path)
		}
	}

	switch {
	case primary != nil:
		return primary, true
	case fallback != nil:
		return fallback, true
	default:
		return nil, false
	}
}

func localeOrDefault(s *Store, lang []string) string {
	if len(lang) > 0 && lang[0] != "" {
		return lang[0]
	}
	return s.DefaultLocale()
}
