package ldharvest

// skipTypes are structural navigation types, skipped unless a content type
// is also declared.
var skipTypes = map[string]bool{
	"BreadcrumbList": true,
	"ListItem":       true,
}

// contentTypes always qualify a record for retention even when a structural
// type is declared alongside them.
var contentTypes = map[string]bool{
	"TechArticle":         true,
	"Article":             true,
	"WebPage":             true,
	"HowTo":               true,
	"ImageObject":         true,
	"SoftwareSourceCode":  true,
	"SoftwareApplication": true,
	"Organization":        true,
	"CreativeWork":        true,
	"Thing":               true,
}

// contentFields signal that a record carries searchable content rather than
// bare structural metadata. Presence counts; the value may be anything.
var contentFields = []string{
	"name",
	"headline",
	"description",
	"text",
	"step",
	"contentUrl",
	"programmingLanguage",
	"codeSampleType",
}

// Keep reports whether a normalized record carries enough substantive
// content to retain. Untyped records are always rejected. Records whose
// types are all structural (breadcrumbs, list items) are rejected unless a
// content type is declared alongside. Whatever survives must carry at least
// one content field.
func Keep(rec Record) bool {
	types := rec.Types()
	if len(types) == 0 {
		return false
	}

	var structural, content bool
	for _, t := range types {
		if skipTypes[t] {
			structural = true
		}
		if contentTypes[t] {
			content = true
		}
	}
	if structural && !content {
		return false
	}

	for _, f := range contentFields {
		if _, ok := rec[f]; ok {
			return true
		}
	}
	return false
}
