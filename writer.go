package ldharvest

import "context"

// RecordWriter persists accepted records.
type RecordWriter interface {
	// Write appends one record to the output. A write failure drops only
	// that record; the run carries on.
	Write(ctx context.Context, rec Record) error
}
