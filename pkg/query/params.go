// Package query implements a small codec for URL query strings and the
// merge logic used when re-issuing a request against a new path while
// carrying forward parameters from an old one.
package query

import (
	"net/url"
	"sort"
	"strings"
)

// Params is a decoded query string: one value per key, later occurrences
// of a key overwrite earlier ones.
type Params map[string]string

// Encode serializes p as key=value pairs joined by "&". Values are
// percent-encoded; keys are written verbatim. Callers that put "=" or "&"
// inside a key get a string Decode cannot round-trip.
// Keys are emitted in sorted order so output is deterministic.
func Encode(p Params) string {
	if len(p) == 0 {
		return ""
	}

	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p[k]))
	}
	return b.String()
}

// Decode parses a query string into Params. A leading "?" is tolerated,
// empty segments are skipped, and each segment splits on the first "=".
// Values are percent-decoded; a value that fails to decode is kept raw
// rather than reported as an error. Keys are not decoded, mirroring
// Encode's treatment of them.
func Decode(uri string) Params {
	p := make(Params)

	uri = strings.TrimPrefix(uri, "?")
	for _, segment := range strings.Split(uri, "&") {
		if segment == "" {
			continue
		}

		parts := strings.SplitN(segment, "=", 2)
		key := parts[0]
		value := ""
		if len(parts) == 2 {
			value = parts[1]
		}

		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		p[key] = value
	}
	return p
}

// Merge returns a fresh Params holding every key of old overlaid with
// every key of new. New values win on collision; neither input is mutated.
func Merge(old, new Params) Params {
	merged := make(Params, len(old)+len(new))
	for k, v := range old {
		merged[k] = v
	}
	for k, v := range new {
		merged[k] = v
	}
	return merged
}
