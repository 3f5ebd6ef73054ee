package catalog

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
)

// Writer produces a gzipped JSON-lines catalogue snapshot.
type Writer struct {
	gz      *gzip.Writer
	enc     *json.Encoder
	written int
}

// NewWriter creates a snapshot writer on top of w. Close must be called to
// flush the gzip stream; it does not close w.
func NewWriter(w io.Writer) *Writer {
	gz := gzip.NewWriter(w)
	return &Writer{
		gz:  gz,
		enc: json.NewEncoder(gz),
	}
}

// Add writes one record for table. The record is stored in its JSON form.
func (w *Writer) Add(table string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s record: %w", table, err)
	}
	if err := w.enc.Encode(Entry{Table: table, Record: raw}); err != nil {
		return fmt.Errorf("failed to write %s entry: %w", table, err)
	}
	w.written++
	return nil
}

// Written returns the number of entries written so far.
func (w *Writer) Written() int {
	return w.written
}

// Close flushes the snapshot.
func (w *Writer) Close() error {
	return w.gz.Close()
}
