// Package jsonl persists harvest records as newline-delimited JSON, the
// format the downstream index loader consumes.
package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"

	"github.com/fwojciec/ldharvest"
)

// maxLineBytes bounds a single output line when re-reading. Records carrying
// whole code samples can run large.
const maxLineBytes = 16 * 1024 * 1024

// Ensure Writer implements ldharvest.RecordWriter at compile time.
var _ ldharvest.RecordWriter = (*Writer)(nil)

// Writer appends records to a JSONL file, one compact JSON object per line.
// The file is opened and closed around every write, so an interrupted run
// keeps every record written before the interruption.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the output file path.
func (w *Writer) Path() string {
	return w.path
}

// Write appends one record to the output file, creating it on first use.
// HTML-significant characters and non-ASCII text are written verbatim, not
// escaped.
func (w *Writer) Write(ctx context.Context, rec ldharvest.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.OpenFile(w.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Remove deletes the output file, reporting whether a previous run's file
// was actually cleared. A missing file is not an error.
func (w *Writer) Remove() (bool, error) {
	err := os.Remove(w.path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReadFile decodes every line of a JSONL file into records. Blank and
// undecodable lines are skipped, so a partially corrupt file still yields
// statistics for what survived.
func ReadFile(path string) ([]ldharvest.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var records []ldharvest.Record
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec ldharvest.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
