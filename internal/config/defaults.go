package config

// ApplyDefaults sets default values for any zero values in cfg
func ApplyDefaults(cfg *Config) {
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	// Precision defaults to the shortest exact representation when unset (nil)
	if cfg.Output.Precision == nil {
		p := -1
		cfg.Output.Precision = &p
	}
	if cfg.Watch.DebounceMS == 0 {
		cfg.Watch.DebounceMS = 300
	}
}
