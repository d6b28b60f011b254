package indexcmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lehigh-university-libraries/itemindexer/internal/callnum"
	"github.com/lehigh-university-libraries/itemindexer/internal/config"
	"github.com/lehigh-university-libraries/itemindexer/internal/holdings"
)

// SetupLogging installs the default text logger on stderr.
func SetupLogging(verbose bool) {
	logLevel := slog.LevelInfo
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)
}

// NewIndexer builds an indexer from the lookup tables in cfgFile, the
// environment and the built-in defaults.
func NewIndexer(cfgFile string) (*holdings.Indexer, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	slog.Debug("Loaded config", "preferred_library", cfg.PreferredLibrary, "translations", len(cfg.LocationTranslations))
	return holdings.NewIndexer(cfg.Lookups(), callnum.Rules{}), nil
}
