package config

// DefaultConfig returns the lookup tables used when no configuration file is present.
func DefaultConfig() *Config {
	return &Config{
		PreferredLibrary:          "GREEN",
		ElectronicCallNumber:      "INTERNET RESOURCE",
		TemporaryCallNumberPrefix: "XX",
		SkipDisplayCallNumbers: []string{
			"INTERNET RESOURCE",
			"NO CALL NUMBER",
			"IN PROCESS",
			"X",
			"XX",
		},
		IgnoredCallNumbers: []string{
			"NO CALL NUMBER",
			"IN PROCESS",
			"INTERNET RESOURCE",
		},
		ShelvedByTitleLocations:       []string{"SHELBYTITL", "STORBYTITL"},
		ShelvedBySeriesTitleLocations: []string{"SHELBYSER"},
		BusinessShelvedLocations:      []string{"NEWS-STKS"},
		OnlineLocations:               []string{"INTERNET", "ONLINE-TXT", "RESV-URL"},
		OnOrderLocations:              []string{"ON-ORDER"},
		InProcessLocations:            []string{"INPROCESS", "IN-PROCESS", "SPEC-INPRO"},
		MissingLocations:              []string{"MISSING", "LOST-ASSUM", "LOST-CLAIM", "LOST-PAID", "LOST"},
		SkippedLocations:              []string{"WITHDRAWN", "DISCARD", "SHADOW", "E-RESV", "SUPPRESSED"},
		LocationTranslations:          map[string]string{},
	}
}
