package ldharvest

// ExtractResult holds the structured-data candidates found on one page.
type ExtractResult struct {
	// Candidates are the decoded JSON-LD values in document order. Graph
	// wrappers and top-level sequences are flattened one level, so each
	// element is a single entity. Elements may still be any JSON value;
	// non-mapping entries are weeded out during normalization.
	Candidates []any

	// Malformed holds one error per script block whose body was not valid
	// JSON. Such blocks are reported against the page and skipped; they
	// never affect sibling blocks.
	Malformed []error
}

// Extractor locates embedded structured-data blocks in an HTML document and
// decodes them.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
