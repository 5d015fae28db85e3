package i18n

import (
	"encoding/json"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// normalize deep-copies v into the canonical tree shape used by the store:
// nil, string, bool, numeric kinds, json.Number, []any and map[string]any.
// Typed maps and slices (map[string]string, []int, yaml's map[any]any, ...)
// are converted; anything else is rejected.
func normalize(v any) (any, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string, bool, json.Number,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return val, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			n, err := normalize(child)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			out[k] = n
		}
		return out, nil
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			n, err := normalize(child)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, nil
		}
		return normalize(rv.Elem().Interface())
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key, ok := mapKey(iter.Key())
			if !ok {
				return nil, fmt.Errorf("unsupported map key type %s", iter.Key().Type())
			}
			if _, dup := out[key]; dup {
				return nil, fmt.Errorf("duplicate key %q after converting keys to strings", key)
			}
			n, err := normalize(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = n
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range rv.Len() {
			n, err := normalize(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out[i] = n
		}
		return out, nil
	case reflect.String:
		return rv.String(), nil
	case reflect.Bool:
		return rv.Bool(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.Uint(), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}

	return nil, fmt.Errorf("unsupported value type %T", v)
}

// cloneNode deep-copies mappings and sequences so callers never share the
// store's tree. Scalars are returned as is.
func cloneNode(node any) any {
	switch val := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, child := range val {
			out[k] = cloneNode(child)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, child := range val {
			out[i] = cloneNode(child)
		}
		return out
	default:
		return node
	}
}

// mapKey accepts string-like and scalar keys, which is what YAML produces
// for keys such as `1:` or `true:`.
func mapKey(k reflect.Value) (string, bool) {
	if k.Kind() == reflect.Interface {
		if k.IsNil() {
			return "", false
		}
		k = k.Elem()
	}
	switch k.Kind() {
	case reflect.String:
		return k.String(), true
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(k.Interface()), true
	default:
		return "", false
	}
}

// resolvePath walks a dot-separated path from root. Every segment requires
// the current node to be a mapping holding that key. An empty path yields
// root itself; a literal dot inside a key cannot be addressed.
func resolvePath(root any, path string) (any, bool) {
	current := root
	for _, segment := range splitPath(path) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		next, ok := m[segment]
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// splitPath mirrors line-oriented tokenizing: "" has no segments and a
// trailing separator does not produce a final empty segment.
func splitPath(path string) []string {
	if path == "" {
		return nil
	}
	segments := strings.Split(path, ".")
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}

// leafPaths returns every path under root that ends at a non-mapping value,
// sorted. Null leaves are skipped.
func leafPaths(root any) []string {
	var paths []string
	var walk func(node any, prefix string)
	walk = func(node any, prefix string) {
		m, ok := node.(map[string]any)
		if !ok {
			if node != nil && prefix != "" {
				paths = append(paths, prefix)
			}
			return
		}
		for k, child := range m {
			key := k
			if prefix != "" {
				key = prefix + "." + k
			}
			walk(child, key)
		}
	}
	walk(root, "")
	slices.Sort(paths)
	return paths
}
