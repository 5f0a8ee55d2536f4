package config

// Config represents the complete bigcalc configuration
type Config struct {
	// Verbose enables progress logging
	Verbose bool `mapstructure:"verbose"`

	Calc    CalcConfig    `mapstructure:"calc"`
	Pow     PowConfig     `mapstructure:"pow"`
	Check   CheckConfig   `mapstructure:"check"`
	Journal JournalConfig `mapstructure:"journal"`

	// Path of the file the configuration was read from, empty if none
	configPath string
}

// CalcConfig holds settings of the prefix-notation calculator
type CalcConfig struct {
	// CacheSize is the number of memoized expression results
	CacheSize int `mapstructure:"cache_size"`
}

// PowConfig holds settings of the timed exponentiation command
type PowConfig struct {
	// OutFile receives "<base>^<exp> = <result>\n\ntime = <duration>"
	OutFile string `mapstructure:"out_file"`
}

// CheckConfig holds settings of the randomized differential check
type CheckConfig struct {
	Iterations int `mapstructure:"iterations"`

	// Operands of the native phase are drawn from [-Range, Range)
	Range int64 `mapstructure:"range"`

	// Digits is the maximum operand length of the long phase, 0 disables it
	Digits int `mapstructure:"digits"`

	// Seed of the operand generator, 0 picks a time-based seed
	Seed int64 `mapstructure:"seed"`

	Workers    int    `mapstructure:"workers"`
	ErrorsFile string `mapstructure:"errors_file"`
}

// JournalConfig holds settings of the SQLite run journal
type JournalConfig struct {
	// Path of the database file; empty disables the journal
	Path string `mapstructure:"path"`
}

// ConfigPath returns the path of the file the configuration was read from
func (c *Config) ConfigPath() string {
	return c.configPath
}

// JournalEnabled reports whether runs should be recorded in the journal
func (c *Config) JournalEnabled() bool {
	return c.Journal.Path != ""
}
