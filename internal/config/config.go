package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds the static lookups consulted while indexing items.
type Config struct {
	PreferredLibrary string `mapstructure:"preferred_library" yaml:"preferred_library"`

	ElectronicCallNumber      string `mapstructure:"electronic_call_number" yaml:"electronic_call_number"`
	TemporaryCallNumberPrefix string `mapstructure:"temporary_call_number_prefix" yaml:"temporary_call_number_prefix"`

	SkipDisplayCallNumbers []string `mapstructure:"skip_display_call_numbers" yaml:"skip_display_call_numbers"`
	IgnoredCallNumbers     []string `mapstructure:"ignored_call_numbers" yaml:"ignored_call_numbers"`

	ShelvedByTitleLocations       []string `mapstructure:"shelved_by_title_locations" yaml:"shelved_by_title_locations"`
	ShelvedBySeriesTitleLocations []string `mapstructure:"shelved_by_series_title_locations" yaml:"shelved_by_series_title_locations"`
	BusinessShelvedLocations      []string `mapstructure:"business_shelved_locations" yaml:"business_shelved_locations"`

	OnlineLocations    []string `mapstructure:"online_locations" yaml:"online_locations"`
	OnOrderLocations   []string `mapstructure:"on_order_locations" yaml:"on_order_locations"`
	InProcessLocations []string `mapstructure:"in_process_locations" yaml:"in_process_locations"`
	MissingLocations   []string `mapstructure:"missing_locations" yaml:"missing_locations"`
	SkippedLocations   []string `mapstructure:"skipped_locations" yaml:"skipped_locations"`

	LocationTranslations map[string]string `mapstructure:"location_translations" yaml:"location_translations"`
}

// Load reads configuration from defaults, ITEMINDEXER_* environment variables and
// an optional YAML file. An empty cfgFile searches ./itemindexer.yaml.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("preferred_library", defaults.PreferredLibrary)
	v.SetDefault("electronic_call_number", defaults.ElectronicCallNumber)
	v.SetDefault("temporary_call_number_prefix", defaults.TemporaryCallNumberPrefix)
	v.SetDefault("skip_display_call_numbers", defaults.SkipDisplayCallNumbers)
	v.SetDefault("ignored_call_numbers", defaults.IgnoredCallNumbers)
	v.SetDefault("shelved_by_title_locations", defaults.ShelvedByTitleLocations)
	v.SetDefault("shelved_by_series_title_locations", defaults.ShelvedBySeriesTitleLocations)
	v.SetDefault("business_shelved_locations", defaults.BusinessShelvedLocations)
	v.SetDefault("online_locations", defaults.OnlineLocations)
	v.SetDefault("on_order_locations", defaults.OnOrderLocations)
	v.SetDefault("in_process_locations", defaults.InProcessLocations)
	v.SetDefault("missing_locations", defaults.MissingLocations)
	v.SetDefault("skipped_locations", defaults.SkippedLocations)
	v.SetDefault("location_translations", defaults.LocationTranslations)

	v.SetEnvPrefix("ITEMINDEXER")
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("itemindexer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// WriteDefault writes the default configuration to path as YAML.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	header := []byte("# itemindexer lookup tables\n# Every key may be overridden with an ITEMINDEXER_<KEY> environment variable.\n\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

// Lookups returns set-backed views of the configured tables.
func (c *Config) Lookups() *Lookups {
	translations := make(map[string]string, len(c.LocationTranslations))
	for k, v := range c.LocationTranslations {
		// viper lower-cases map keys
		translations[strings.ToUpper(k)] = v
	}
	return &Lookups{
		PreferredLibrary:          c.PreferredLibrary,
		ElectronicCallNumber:      c.ElectronicCallNumber,
		TemporaryCallNumberPrefix: c.TemporaryCallNumberPrefix,
		skipDisplay:               toSet(c.SkipDisplayCallNumbers),
		ignored:                   toSet(c.IgnoredCallNumbers),
		shelvedByTitle:            toSet(c.ShelvedByTitleLocations),
		shelvedBySeriesTitle:      toSet(c.ShelvedBySeriesTitleLocations),
		businessShelved:           toSet(c.BusinessShelvedLocations),
		online:                    toSet(c.OnlineLocations),
		onOrder:                   toSet(c.OnOrderLocations),
		inProcess:                 toSet(c.InProcessLocations),
		missing:                   toSet(c.MissingLocations),
		skipped:                   toSet(c.SkippedLocations),
		translations:              translations,
	}
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
