package slog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/ldharvest"
	"github.com/fwojciec/ldharvest/mock"
	ldslog "github.com/fwojciec/ldharvest/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingRecordWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("logs the record key and field count", func(t *testing.T) {
		t.Parallel()

		logger, buf := logCapture()
		var written ldharvest.Record
		inner := &mock.RecordWriter{
			WriteFn: func(ctx context.Context, rec ldharvest.Record) error {
				written = rec
				return nil
			},
		}

		writer := ldslog.NewLoggingRecordWriter(inner, logger)
		rec := ldharvest.Record{
			"@type": "HowTo",
			"name":  "Split a column",
			"url":   "https://docs.example.com/functions/split",
		}
		require.NoError(t, writer.Write(context.Background(), rec))
		assert.Equal(t, rec, written)

		out := buf.String()
		assert.Contains(t, out, "msg=\"record write\"")
		assert.Contains(t, out, "key=HowTo:https://docs.example.com/functions/split")
		assert.Contains(t, out, "fields=3")
		assert.Contains(t, out, "duration=")
	})

	t.Run("logs the error when persistence fails", func(t *testing.T) {
		t.Parallel()

		logger, buf := logCapture()
		inner := &mock.RecordWriter{
			WriteFn: func(ctx context.Context, rec ldharvest.Record) error {
				return errors.New("disk full")
			},
		}

		writer := ldslog.NewLoggingRecordWriter(inner, logger)
		err := writer.Write(context.Background(), ldharvest.Record{"@type": "HowTo"})
		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}
