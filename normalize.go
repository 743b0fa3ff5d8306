package ldharvest

import (
	"net/url"
	"strings"
)

// urlKeys are the fields rewritten to absolute URLs during normalization.
// A matched key's value is replaced outright and never descended into, so a
// mapping under "item" contributes only its @id.
var urlKeys = map[string]bool{
	"@id":        true,
	"url":        true,
	"contentUrl": true,
	"item":       true,
	"sameAs":     true,
}

// Normalize expands one extracted candidate into a self-contained Record.
// It reports false for candidates that are not JSON mappings; those are
// discarded without further processing.
//
// The returned record is a shallow copy of the candidate with provenance
// attached: _source_url names the page the record came from (kept as-is if
// the candidate already carries one) and _extracted_at is reserved with a
// null value for the downstream loader to fill. When only one of @type and
// "type" is declared, the other is mirrored so both spellings are queryable;
// declarations that disagree are left alone. Finally every URL-bearing field
// in the record tree is rewritten to its absolute form against sourceURL.
func Normalize(candidate any, sourceURL string) (Record, bool) {
	m, ok := candidate.(map[string]any)
	if !ok {
		return nil, false
	}

	rec := make(Record, len(m)+2)
	for k, v := range m {
		rec[k] = v
	}

	if _, ok := rec["_source_url"]; !ok {
		rec["_source_url"] = sourceURL
	}
	rec["_extracted_at"] = nil

	_, hasCanonical := rec["@type"]
	_, hasAlias := rec["type"]
	switch {
	case hasCanonical && !hasAlias:
		rec["type"] = rec["@type"]
	case hasAlias && !hasCanonical:
		rec["@type"] = rec["type"]
	}

	base, err := url.Parse(sourceURL)
	if err != nil {
		base = nil
	}
	rewriteURLs(map[string]any(rec), sourceURL, base)

	return rec, true
}

// rewriteURLs walks mappings and sequences in place, replacing the value
// under every URL-bearing key with its absolute form. Values under other
// keys are descended into; scalars pass through untouched.
func rewriteURLs(node any, source string, base *url.URL) {
	switch n := node.(type) {
	case map[string]any:
		for k, v := range n {
			if urlKeys[k] {
				n[k] = normalizeURLValue(v, source, base)
				continue
			}
			switch v.(type) {
			case map[string]any, []any:
				rewriteURLs(v, source, base)
			}
		}
	case []any:
		for _, el := range n {
			switch el.(type) {
			case map[string]any, []any:
				rewriteURLs(el, source, base)
			}
		}
	}
}

// normalizeURLValue rewrites one URL-bearing value to its absolute form.
// A mapping contributes its @id; an absolute URL passes through unchanged; a
// bare fragment is appended to the source URL; any other string resolves
// against it. Values that cannot carry a URL become nil so the key survives
// with an explicit null.
func normalizeURLValue(v any, source string, base *url.URL) any {
	if m, ok := v.(map[string]any); ok {
		id, ok := m["@id"]
		if !ok {
			return nil
		}
		v = id
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return nil
	}

	if u, err := url.Parse(s); err == nil && u.IsAbs() {
		return s
	}
	if strings.HasPrefix(s, "#") {
		return source + s
	}
	if base == nil {
		return nil
	}
	ref, err := url.Parse(s)
	if err != nil {
		return nil
	}
	return base.ResolveReference(ref).String()
}
