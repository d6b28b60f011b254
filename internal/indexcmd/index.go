package indexcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/itemindexer/internal/dataset"
	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
	"github.com/lehigh-university-libraries/itemindexer/internal/results"
)

type indexOptions struct {
	datasetPath string
	outputPath  string
	summaryPath string
	sampleSize  int
	concurrency int
}

// NewIndexCmd creates the index command
func NewIndexCmd() *cobra.Command {
	var opts indexOptions

	cmd := &cobra.Command{
		Use:   "index",
		Short: "Derive item index fields for every record in a dataset",
		Long: `Reads records with their holdings from a JSONL or Parquet file and writes
one index document per record: lopped call numbers, shelfkeys, the preferred
item barcode and the item display values.

A YAML summary of the run is written next to the output.`,
		Example: `  # Index a JSONL export
  itemindexer index --dataset records.jsonl --output documents.jsonl

  # Index the first 100 records of a Parquet file with 8 workers
  itemindexer index --dataset records.parquet --sample 100 --concurrency 8`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(opts.datasetPath); os.IsNotExist(err) {
				return fmt.Errorf("dataset file not found: %s", opts.datasetPath)
			}
			if opts.concurrency < 1 {
				return fmt.Errorf("--concurrency must be at least 1")
			}

			cfgFile, _ := cmd.Flags().GetString("config")
			indexer, err := NewIndexer(cfgFile)
			if err != nil {
				return err
			}
			return executeIndex(cmd.Context(), indexer, opts)
		},
	}

	cmd.Flags().StringVar(&opts.datasetPath, "dataset", "", "Path to parquet or jsonl dataset file (required)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "documents.jsonl", "Path to output JSONL file")
	cmd.Flags().StringVar(&opts.summaryPath, "summary", "", "Path to summary YAML file (defaults to <output>.summary.yaml)")
	cmd.Flags().IntVar(&opts.sampleSize, "sample", 0, "Number of records to index (0 for all)")
	cmd.Flags().IntVarP(&opts.concurrency, "concurrency", "c", 4, "Number of records processed in parallel")

	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func loadRecords(datasetPath string, sampleSize int) ([]holdings.Record, error) {
	loader := dataset.NewLoader(datasetPath)

	var records []holdings.Record
	var err error
	if sampleSize > 0 {
		records, err = loader.LoadSample(sampleSize)
	} else {
		records, err = loader.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load dataset: %w", err)
	}
	return records, nil
}

func executeIndex(ctx context.Context, indexer *holdings.Indexer, opts indexOptions) error {
	slog.Info("Starting index run", "dataset", opts.datasetPath, "output", opts.outputPath)

	records, err := loadRecords(opts.datasetPath, opts.sampleSize)
	if err != nil {
		return err
	}
	slog.Info("Dataset loaded", "records", len(records))

	summary := results.NewSummary(opts.datasetPath)
	docs := make([]*holdings.Document, len(records))

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, max(opts.concurrency, 1))
	for i, rec := range records {
		wg.Add(1)
		go func(idx int, rec holdings.Record) {
			defer wg.Done()
			select {
			case semaphore <- struct{}{}: // Acquire
			case <-ctx.Done():
				return
			}
			defer func() { <-semaphore }() // Release

			if strings.TrimSpace(rec.ID) == "" {
				slog.Warn("Skipping record without id", "position", idx+1)
				return
			}
			docs[idx] = indexer.Process(rec)

			if (idx+1)%1000 == 0 {
				slog.Info("Indexing", "progress", fmt.Sprintf("%d/%d", idx+1, len(records)))
			}
		}(i, rec)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("indexing interrupted: %w", err)
	}

	out, err := results.Create(opts.outputPath)
	if err != nil {
		return err
	}
	defer out.Close()

	for _, doc := range docs {
		if doc == nil {
			summary.AddFailure()
			continue
		}
		if err := out.Write(doc); err != nil {
			return err
		}
		summary.Add(doc)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	summary.Finish()

	summaryPath := opts.summaryPath
	if summaryPath == "" {
		summaryPath = strings.TrimSuffix(opts.outputPath, filepath.Ext(opts.outputPath)) + ".summary.yaml"
	}
	if err := summary.SaveToYAML(summaryPath); err != nil {
		return err
	}

	summary.PrintSummary(os.Stdout)
	slog.Info("Index run complete", "documents", out.Count(), "summary", summaryPath)
	return nil
}
