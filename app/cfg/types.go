package cfg

import "time"

type Cfg struct {
	// Storage configuration
	DBPath   string
	FeedsDir string

	// Server configuration
	Port              string
	WorkerCount       int
	SchedulerInterval int
	APIAccessKey      string
	ParseCacheTTL     time.Duration
	FetchTimeout      time.Duration

	// Application metadata
	UserAgent string
	Timezone  string
	Debug     bool
	LogFile   string
	Version   string
}
