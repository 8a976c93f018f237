package feed

// Config is one feed's YAML file in the feeds directory.
type Config struct {
	Name     string         // Derived from filename (without .yml extension)
	URL      string         `yaml:"url"`
	Settings ConfigSettings `yaml:"settings"`
}

type ConfigSettings struct {
	Enabled         bool `yaml:"enabled"`
	RefreshInterval int  `yaml:"refresh_interval"` // seconds
	MaxEpisodes     int  `yaml:"max_episodes"`     // 0 keeps every episode
	Timeout         int  `yaml:"timeout"`          // seconds
}
