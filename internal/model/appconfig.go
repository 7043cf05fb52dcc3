package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default optimizer settings applied to new runs
	DefaultSpaceSize int       `json:"default_space_size" yaml:"default_space_size"`
	DefaultTrials    int       `json:"default_trials" yaml:"default_trials"`
	DefaultMargin    int       `json:"default_margin" yaml:"default_margin"`
	DefaultPolicy    Policy    `json:"default_policy" yaml:"default_policy"`
	DefaultAlgorithm Algorithm `json:"default_algorithm" yaml:"default_algorithm"`
	DefaultWorkers   int       `json:"default_workers" yaml:"default_workers"`

	// Generator defaults
	DefaultCount int `json:"default_count" yaml:"default_count"`
	MinSide      int `json:"min_side" yaml:"min_side"`
	MaxSide      int `json:"max_side" yaml:"max_side"`

	// Application preferences
	LogLevel   string   `json:"log_level" yaml:"log_level"`   // debug, info, warn, error
	LogFormat  string   `json:"log_format" yaml:"log_format"` // text or json
	RecentRuns []string `json:"recent_runs" yaml:"recent_runs"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultSpaceSize: defaults.SpaceSize,
		DefaultTrials:    defaults.Trials,
		DefaultMargin:    defaults.Margin,
		DefaultPolicy:    defaults.Policy,
		DefaultAlgorithm: defaults.Algorithm,
		DefaultWorkers:   defaults.Workers,
		DefaultCount:     5,
		MinSide:          1,
		MaxSide:          20,
		LogLevel:         "info",
		LogFormat:        "text",
		RecentRuns:       []string{},
	}
}

// ApplyToSettings copies the default values from AppConfig into a Settings struct.
// Zero or empty values in the config leave the setting untouched.
func (c AppConfig) ApplyToSettings(s *Settings) {
	if c.DefaultSpaceSize > 0 {
		s.SpaceSize = c.DefaultSpaceSize
	}
	if c.DefaultTrials > 0 {
		s.Trials = c.DefaultTrials
	}
	if c.DefaultMargin >= 0 {
		s.Margin = c.DefaultMargin
	}
	if c.DefaultPolicy != "" {
		s.Policy = c.DefaultPolicy
	}
	if c.DefaultAlgorithm != "" {
		s.Algorithm = c.DefaultAlgorithm
	}
	if c.DefaultWorkers > 0 {
		s.Workers = c.DefaultWorkers
	}
}

// AddRecentRun records path at the front of RecentRuns, dropping duplicates
// and keeping at most limit entries.
func (c *AppConfig) AddRecentRun(path string, limit int) {
	runs := []string{path}
	for _, p := range c.RecentRuns {
		if p != path {
			runs = append(runs, p)
		}
	}
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	c.RecentRuns = runs
}
