package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/ldharvest"
)

// Ensure LoggingRecordWriter implements ldharvest.RecordWriter.
var _ ldharvest.RecordWriter = (*LoggingRecordWriter)(nil)

// LoggingRecordWriter wraps a RecordWriter with debug logging.
type LoggingRecordWriter struct {
	next   ldharvest.RecordWriter
	logger *slog.Logger
}

// NewLoggingRecordWriter creates a new LoggingRecordWriter.
func NewLoggingRecordWriter(next ldharvest.RecordWriter, logger *slog.Logger) *LoggingRecordWriter {
	return &LoggingRecordWriter{next: next, logger: logger}
}

// Write delegates to the wrapped writer and logs the operation.
func (w *LoggingRecordWriter) Write(ctx context.Context, rec ldharvest.Record) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("record write",
			"key", rec.Key(),
			"fields", len(rec),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Write(ctx, rec)
}
