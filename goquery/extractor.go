// Package goquery implements structured-data extraction from HTML documents
// using the goquery DOM library.
package goquery

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/ldharvest"
)

// jsonLDType is the script MIME type that carries JSON-LD.
const jsonLDType = "application/ld+json"

// Ensure Extractor implements ldharvest.Extractor at compile time.
var _ ldharvest.Extractor = (*Extractor)(nil)

// Extractor decodes the JSON-LD script blocks embedded in a page.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses the document and decodes every JSON-LD script block in
// document order. The type attribute is matched ignoring case and surrounding
// whitespace. A block holding a graph wrapper is flattened one level so
// each entity becomes its own candidate; a block holding a top-level
// sequence contributes its elements. Blocks that are empty or whitespace are
// ignored, and blocks that fail to decode are reported in the result without
// affecting their siblings.
func (e *Extractor) Extract(html string) (*ldharvest.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, ldharvest.Errorf(ldharvest.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &ldharvest.ExtractResult{}
	block := -1
	doc.Find("script[type]").Each(func(_ int, sel *goquery.Selection) {
		if attr, _ := sel.Attr("type"); !strings.EqualFold(strings.TrimSpace(attr), jsonLDType) {
			return
		}
		block++

		text := strings.TrimSpace(sel.Text())
		if text == "" {
			return
		}

		var decoded any
		if err := json.Unmarshal([]byte(text), &decoded); err != nil {
			result.Malformed = append(result.Malformed, fmt.Errorf("script block %d: %w", block, err))
			return
		}

		switch v := decoded.(type) {
		case map[string]any:
			if graph, ok := v["@graph"].([]any); ok {
				result.Candidates = append(result.Candidates, graph...)
				return
			}
			result.Candidates = append(result.Candidates, v)
		case []any:
			result.Candidates = append(result.Candidates, v...)
		default:
			// A bare scalar is not a JSON-LD entity; ignore it.
		}
	})

	return result, nil
}
