package ldharvest

import "strings"

// Record is a single JSON-LD entity as decoded from a structured-data block,
// augmented during normalization with provenance fields. Values are the
// plain Go forms produced by encoding/json: strings, float64 numbers, bools,
// nil, []any and map[string]any.
type Record map[string]any

// Types returns the record's declared types. The canonical "@type" key wins
// over the "type" alias; a bare string becomes a one-element slice and a
// sequence contributes its string elements. Empty strings and non-string
// elements are dropped, so an untyped or nonsense declaration yields nil.
func (r Record) Types() []string {
	v, ok := r["@type"]
	if !ok {
		v, ok = r["type"]
	}
	if !ok {
		return nil
	}

	switch t := v.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		var types []string
		for _, el := range t {
			if s, ok := el.(string); ok && s != "" {
				types = append(types, s)
			}
		}
		return types
	default:
		return nil
	}
}

// HasType reports whether the record declares the given type, alone or as
// part of a multi-type declaration.
func (r Record) HasType(typ string) bool {
	for _, t := range r.Types() {
		if t == typ {
			return true
		}
	}
	return false
}

// Key returns the record's run-scoped identity: the declared types joined
// with underscores, a colon, then the first of @id, url, name or headline
// holding a non-empty string. Records that share types and carry none of the
// identifying fields collapse to the same key, as do distinct entities with
// identical names; titles are assumed unique within a harvested site.
func (r Record) Key() string {
	return strings.Join(r.Types(), "_") + ":" + r.firstString("@id", "url", "name", "headline")
}

// DisplayName returns a human-readable identifier for progress output:
// name, headline or @id, falling back to "Unnamed".
func (r Record) DisplayName() string {
	if s := r.firstString("name", "headline", "@id"); s != "" {
		return s
	}
	return "Unnamed"
}

// DisplayType returns the declared types joined for display, or "Unknown"
// when the record carries none.
func (r Record) DisplayType() string {
	types := r.Types()
	if len(types) == 0 {
		return "Unknown"
	}
	return strings.Join(types, ", ")
}

// firstString returns the value of the first listed key holding a non-empty
// string.
func (r Record) firstString(keys ...string) string {
	for _, k := range keys {
		if s, ok := r[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
