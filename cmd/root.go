package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/itemindexer/internal/indexcmd"
)

func NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "itemindexer",
		Short: "Derive call number browse and display fields for library holdings",
		Long: `Itemindexer derives the item fields of catalog search documents from a
record's holdings: lopped call numbers, shelfkeys and reverse shelfkeys, the
preferred item barcode and the item display values.

Lookup tables (ignored call numbers, shelved-by-title locations, location
translations and so on) come from itemindexer.yaml and ITEMINDEXER_* variables.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			indexcmd.SetupLogging(verbose)
		},
	}

	cmd.PersistentFlags().String("config", "", "Path to config file (default ./itemindexer.yaml)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(indexcmd.NewIndexCmd())
	cmd.AddCommand(indexcmd.NewInspectCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}
