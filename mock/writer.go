package mock

import (
	"context"

	"github.com/fwojciec/ldharvest"
)

var _ ldharvest.RecordWriter = (*RecordWriter)(nil)

// RecordWriter is a mock implementation of ldharvest.RecordWriter.
type RecordWriter struct {
	WriteFn func(ctx context.Context, rec ldharvest.Record) error
}

func (w *RecordWriter) Write(ctx context.Context, rec ldharvest.Record) error {
	return w.WriteFn(ctx, rec)
}
