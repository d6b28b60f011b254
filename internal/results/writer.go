// Package results writes index documents and run summaries.
package results

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
)

// Writer writes one JSON document per line. It is safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	encoder *json.Encoder
	closer  io.Closer
	count   int
}

// NewWriter writes documents to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{encoder: json.NewEncoder(w)}
}

// Create writes documents to a new file at path, replacing any existing file.
func Create(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	w := NewWriter(file)
	w.closer = file
	return w, nil
}

// Write appends doc as a single JSON line.
func (w *Writer) Write(doc *holdings.Document) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document %s: %w", doc.ID, err)
	}
	w.count++
	return nil
}

// Count returns the number of documents written so far.
func (w *Writer) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Close closes the underlying file, if the writer owns one.
func (w *Writer) Close() error {
	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
