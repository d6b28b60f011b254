package results

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
)

// PreferredStats counts how each record's preferred item was found.
type PreferredStats struct {
	Cascade  int `yaml:"cascade"`
	Fallback int `yaml:"fallback"`
	None     int `yaml:"none"`
}

// Summary aggregates statistics over an indexing run.
type Summary struct {
	mu sync.Mutex

	DatasetPath    string         `yaml:"datasetpath"`
	Timestamp      string         `yaml:"timestamp"`
	Records        int            `yaml:"records"`
	Failed         int            `yaml:"failed"`
	DisplayRecords int            `yaml:"displayrecords"`
	SkippedItems   int            `yaml:"skippeditems"`
	EllipsisItems  int            `yaml:"ellipsisitems"`
	Shelfkeys      int            `yaml:"shelfkeys"`
	Preferred      PreferredStats `yaml:"preferred"`
	Duration       string         `yaml:"duration"`

	started time.Time
}

// NewSummary starts a summary for a run over datasetPath.
func NewSummary(datasetPath string) *Summary {
	now := time.Now()
	return &Summary{
		DatasetPath: datasetPath,
		Timestamp:   now.Format("2006-01-02_15-04-05"),
		started:     now,
	}
}

// Add folds one processed document into the summary.
func (s *Summary) Add(doc *holdings.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Records++
	s.DisplayRecords += len(doc.Items)
	s.SkippedItems += doc.SkippedItems
	s.EllipsisItems += doc.EllipsisItems
	s.Shelfkeys += len(doc.Shelfkeys)
	switch doc.PreferredSource {
	case holdings.PreferredByCascade:
		s.Preferred.Cascade++
	case holdings.PreferredByFallback:
		s.Preferred.Fallback++
	default:
		s.Preferred.None++
	}
}

// AddFailure counts a record that could not be written.
func (s *Summary) AddFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failed++
}

// Finish records the run duration.
func (s *Summary) Finish() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Duration = time.Since(s.started).Round(time.Millisecond).String()
}

// PrintSummary prints a human-readable summary of the run.
func (s *Summary) PrintSummary(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 70))
	fmt.Fprintln(w, "ITEM INDEXING SUMMARY")
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "Dataset: %s\n", s.DatasetPath)
	fmt.Fprintf(w, "Records: %d (%d failed)\n", s.Records, s.Failed)
	fmt.Fprintf(w, "Display records: %d\n", s.DisplayRecords)
	fmt.Fprintf(w, "Skipped items: %d\n", s.SkippedItems)
	fmt.Fprintf(w, "Items with ellipsis: %d\n", s.EllipsisItems)
	fmt.Fprintf(w, "Shelfkeys: %d\n", s.Shelfkeys)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "PREFERRED ITEM")
	fmt.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintf(w, "Cascade: %d (%.1f%%)\n", s.Preferred.Cascade, percent(s.Preferred.Cascade, s.Records))
	fmt.Fprintf(w, "Fallback: %d (%.1f%%)\n", s.Preferred.Fallback, percent(s.Preferred.Fallback, s.Records))
	fmt.Fprintf(w, "None: %d (%.1f%%)\n", s.Preferred.None, percent(s.Preferred.None, s.Records))
	if s.Duration != "" {
		fmt.Fprintf(w, "Duration: %s\n", s.Duration)
	}
	fmt.Fprintln(w, strings.Repeat("=", 70))
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

// SaveToYAML writes the summary to path, creating parent directories.
func (s *Summary) SaveToYAML(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create summary directory: %w", err)
		}
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}
	return nil
}
