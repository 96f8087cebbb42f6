package canvex

import "encoding/json"

// Resource is an opaque record returned by the Canvas API. The export
// pipeline does not validate or enumerate the upstream schema; it only
// reads the handful of keys it needs for enrichment and naming, and
// round-trips everything else untouched.
type Resource map[string]any

// Int64 returns the value under key as an int64. JSON numbers decode as
// float64, so both representations are accepted.
func (r Resource) Int64(key string) (int64, bool) {
	switch v := r[key].(type) {
	case float64:
		return int64(v), true
	case int64:
		return v, true
	case int:
		return int64(v), true
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Str returns the string value under key, or "" if the key is absent or
// holds a non-string value.
func (r Resource) Str(key string) string {
	s, _ := r[key].(string)
	return s
}

// Sub returns the nested Resource under key, or nil.
func (r Resource) Sub(key string) Resource {
	m, _ := r[key].(map[string]any)
	return Resource(m)
}

// FileRef is a file attachment reference discovered inside page HTML.
// Href is empty for references found by the raw-text fallback scan.
type FileRef struct {
	ID   int64
	Href string
}

// FileRefExtractor discovers file attachment references in page HTML.
type FileRefExtractor interface {
	// ExtractFileRefs returns references in document order, deduplicated
	// by file id (first occurrence wins). Empty input yields an empty
	// result.
	ExtractFileRefs(html string) []FileRef
}
