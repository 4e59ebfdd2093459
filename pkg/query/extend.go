package query

import "strings"

// Extend merges the query parameters of oldURL into newURL and returns the
// combined URL. newURL's base (everything before its first "?") is kept;
// on key collision newURL's parameters win. When forcedRenew is non-empty
// that key is dropped from the old parameters before merging, so newURL's
// value, or its absence, dominates.
//
// Both inputs empty yields ""; an empty oldURL returns newURL unchanged.
func Extend(newURL, oldURL, forcedRenew string) string {
	if newURL == "" && oldURL == "" {
		return ""
	}
	if oldURL == "" {
		return newURL
	}

	// oldURL may be a full URL or a bare query string. Without a "?" the
	// whole input is taken as the query part.
	oldQuery := oldURL
	if i := strings.Index(oldURL, "?"); i >= 0 {
		oldQuery = oldURL[i+1:]
	}
	return ExtendParams(newURL, Decode(oldQuery), forcedRenew)
}

// ExtendParams is Extend for callers that already hold the old parameters
// decoded. The old map is not mutated, forcedRenew included.
func ExtendParams(newURL string, old Params, forcedRenew string) string {
	newParams := Decode(queryPart(newURL))

	if forcedRenew != "" && len(old) > 0 {
		trimmed := make(Params, len(old))
		for k, v := range old {
			if k != forcedRenew {
				trimmed[k] = v
			}
		}
		old = trimmed
	}

	merged := Merge(old, newParams)
	base := basePart(newURL)
	if len(merged) == 0 {
		return base
	}
	return base + "?" + Encode(merged)
}

// queryPart returns the substring after the first "?", or "" without one.
func queryPart(u string) string {
	if i := strings.Index(u, "?"); i >= 0 {
		return u[i+1:]
	}
	return ""
}

// basePart returns the substring before the first "?", or all of u.
func basePart(u string) string {
	if i := strings.Index(u, "?"); i >= 0 {
		return u[:i]
	}
	return u
}
