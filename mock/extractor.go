package mock

import "github.com/fwojciec/ldharvest"

var _ ldharvest.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of ldharvest.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*ldharvest.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*ldharvest.ExtractResult, error) {
	return e.ExtractFn(html)
}
