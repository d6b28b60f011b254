package indexcmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
)

type inspectOptions struct {
	datasetPath string
	recordID    string
	limit       int
	showItems   bool
}

// itemView is the intermediate item state printed by inspect --items.
type itemView struct {
	Barcode          string   `yaml:"barcode"`
	Library          string   `yaml:"library"`
	HomeLocation     string   `yaml:"home_location"`
	CallNumber       string   `yaml:"call_number"`
	Scheme           string   `yaml:"scheme"`
	LoppedCallNumber string   `yaml:"lopped_call_number"`
	Shelfkey         string   `yaml:"shelfkey,omitempty"`
	VolumeSort       string   `yaml:"volume_sort,omitempty"`
	Flags            []string `yaml:"flags,omitempty"`
}

type inspection struct {
	Document *holdings.Document `yaml:"document"`
	Items    []itemView         `yaml:"items,omitempty"`
}

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var opts inspectOptions

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the index fields derived for dataset records as YAML",
		Long: `Processes records from a parquet or jsonl dataset file and prints the
resulting documents as YAML.

With --items the lopped call numbers, keys and status flags of every item are
printed as well, which helps explain a preferred item or an ellipsis.`,
		Example: `  # Show the first record
  itemindexer inspect --dataset records.jsonl

  # Show one record with its intermediate item state
  itemindexer inspect --dataset records.jsonl --id a123 --items`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			indexer, err := NewIndexer(cfgFile)
			if err != nil {
				return err
			}
			return executeInspect(cmd.OutOrStdout(), indexer, opts)
		},
	}

	cmd.Flags().StringVar(&opts.datasetPath, "dataset", "", "Path to parquet or jsonl dataset file (required)")
	cmd.Flags().StringVar(&opts.recordID, "id", "", "Only inspect the record with this id")
	cmd.Flags().IntVar(&opts.limit, "limit", 1, "Number of records to inspect (0 for all)")
	cmd.Flags().BoolVar(&opts.showItems, "items", false, "Show intermediate item state")

	_ = cmd.MarkFlagRequired("dataset")

	return cmd
}

func executeInspect(w io.Writer, indexer *holdings.Indexer, opts inspectOptions) error {
	if _, err := os.Stat(opts.datasetPath); os.IsNotExist(err) {
		return fmt.Errorf("dataset file not found: %s", opts.datasetPath)
	}

	// a record id may be anywhere in the file
	sample := opts.limit
	if opts.recordID != "" {
		sample = 0
	}
	records, err := loadRecords(opts.datasetPath, sample)
	if err != nil {
		return err
	}

	shown := 0
	for _, rec := range records {
		if opts.recordID != "" && rec.ID != opts.recordID {
			continue
		}
		if opts.limit > 0 && shown >= opts.limit {
			break
		}

		view := inspection{Document: indexer.Process(rec)}
		if opts.showItems {
			view.Items = itemViews(indexer, rec)
		}

		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		if _, err := fmt.Fprintf(w, "---\n%s", data); err != nil {
			return fmt.Errorf("failed to write record %s: %w", rec.ID, err)
		}
		shown++
	}

	if shown == 0 && opts.recordID != "" {
		return fmt.Errorf("record not found: %s", opts.recordID)
	}
	return nil
}

func itemViews(indexer *holdings.Indexer, rec holdings.Record) []itemView {
	items := indexer.Items(rec)
	views := make([]itemView, 0, len(items))
	for _, it := range items {
		var flags []string
		for _, f := range []struct {
			set  bool
			name string
		}{
			{it.IgnoredCallNumber, "ignored_call_number"},
			{it.BadLCOrLaneCallNumber, "bad_lc_call_number"},
			{it.HasSeparateBrowseCallNumber, "separate_browse_call_number"},
			{it.ShelvedByLocationName, "shelved_by_location"},
			{it.Online, "online"},
			{it.OnOrder, "on_order"},
			{it.InProcess, "in_process"},
			{it.MissingOrLost, "missing_or_lost"},
			{it.BusinessShelvedByLocation, "business_shelved"},
		} {
			if f.set {
				flags = append(flags, f.name)
			}
		}
		views = append(views, itemView{
			Barcode:          it.Barcode,
			Library:          it.Library,
			HomeLocation:     it.HomeLocation,
			CallNumber:       it.CallNumber,
			Scheme:           it.Scheme.String(),
			LoppedCallNumber: it.LoppedCallNumber,
			Shelfkey:         it.Shelfkey,
			VolumeSort:       it.VolumeSort,
			Flags:            flags,
		})
	}
	return views
}
