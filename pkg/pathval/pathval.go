// Package pathval reads values out of nested map[string]any structures by
// separator-delimited key paths, the shape encoding/json produces for
// objects.
package pathval

import "strings"

// DefaultSeparator splits paths for Get.
const DefaultSeparator = "."

// Get walks obj by the dot-separated keys of path and returns the value
// found there. The second return is false when any step is missing or the
// walk hits a value that is not a map. Missing intermediate keys never
// panic.
func Get(obj map[string]any, path string) (any, bool) {
	return GetSep(obj, path, DefaultSeparator)
}

// GetSep is Get with an explicit separator. An empty separator falls back
// to DefaultSeparator.
func GetSep(obj map[string]any, path, sep string) (any, bool) {
	if obj == nil {
		return nil, false
	}
	if sep == "" {
		sep = DefaultSeparator
	}

	var current any = obj
	for _, key := range strings.Split(path, sep) {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// Has reports whether path resolves to a value in obj.
func Has(obj map[string]any, path string) bool {
	_, ok := Get(obj, path)
	return ok
}
