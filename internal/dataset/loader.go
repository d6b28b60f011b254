// Package dataset reads bibliographic records with their holdings from JSONL or
// Parquet exports.
package dataset

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
)

const (
	// maxLineSize bounds a single JSONL record.
	maxLineSize = 10 * 1024 * 1024
	batchSize   = 128
)

// Loader handles loading of holdings records from a dataset file
type Loader struct {
	datasetPath string
}

// NewLoader creates a new dataset loader
func NewLoader(datasetPath string) *Loader {
	return &Loader{
		datasetPath: datasetPath,
	}
}

// Load loads every record from a dataset file (JSONL or Parquet).
// A malformed JSONL line fails the whole load.
func (l *Loader) Load() ([]holdings.Record, error) {
	switch ext := strings.ToLower(filepath.Ext(l.datasetPath)); ext {
	case ".parquet":
		return l.loadParquet(0)
	case ".jsonl", ".json":
		return l.loadJSONL(0, true)
	default:
		return nil, fmt.Errorf("unsupported file format: %s (supported: .parquet, .jsonl)", ext)
	}
}

// LoadSample loads at most limit records. Malformed JSONL lines are skipped.
func (l *Loader) LoadSample(limit int) ([]holdings.Record, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("sample limit must be positive, got %d", limit)
	}
	switch ext := strings.ToLower(filepath.Ext(l.datasetPath)); ext {
	case ".parquet":
		return l.loadParquet(limit)
	case ".jsonl", ".json":
		return l.loadJSONL(limit, false)
	default:
		return nil, fmt.Errorf("unsupported file format: %s", ext)
	}
}

// loadJSONL reads up to limit records (all when limit is 0).
func (l *Loader) loadJSONL(limit int, strict bool) ([]holdings.Record, error) {
	slog.Debug("Opening JSONL file", "path", l.datasetPath)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer file.Close()

	records, err := decodeJSONL(file, limit, strict)
	if err != nil {
		return nil, err
	}

	slog.Debug("Finished reading JSONL file", "total_records", len(records))
	return records, nil
}

func decodeJSONL(r io.Reader, limit int, strict bool) ([]holdings.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	var records []holdings.Record
	lineNum := 0
	for (limit == 0 || len(records) < limit) && scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var record holdings.Record
		if err := json.Unmarshal(line, &record); err != nil {
			if strict {
				return nil, fmt.Errorf("failed to parse JSON at line %d: %w", lineNum, err)
			}
			slog.Warn("Skipping malformed record", "line", lineNum, "err", err)
			continue
		}
		records = append(records, record)

		if lineNum%1000 == 0 {
			slog.Debug("Reading JSONL", "lines_read", lineNum)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dataset: %w", err)
	}
	return records, nil
}

// loadParquet reads up to limit records (all when limit is 0).
func (l *Loader) loadParquet(limit int) ([]holdings.Record, error) {
	slog.Debug("Opening Parquet file", "path", l.datasetPath, "limit", limit)

	file, err := os.Open(l.datasetPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	slog.Debug("Parquet file opened", "num_rows", pf.NumRows(), "num_row_groups", len(pf.RowGroups()))

	reader := parquet.NewGenericReader[holdings.Record](pf)
	defer reader.Close()

	var records []holdings.Record
	batchNum := 0
	for limit == 0 || len(records) < limit {
		// a fresh batch each time; the reader may reuse nested slices
		rows := make([]holdings.Record, batchSize)
		n, err := reader.Read(rows)
		if n > 0 {
			batchNum++
			if limit > 0 {
				n = min(n, limit-len(records))
			}
			records = append(records, rows[:n]...)
			slog.Debug("Read batch from Parquet", "batch", batchNum, "rows_in_batch", n, "total_rows_read", len(records))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read parquet rows: %w", err)
		}
	}

	slog.Debug("Finished reading Parquet file", "total_records", len(records), "total_batches", batchNum)
	return records, nil
}
