package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding configuration
// keys, e.g. BIGCALC_CHECK_WORKERS for check.workers.
const EnvPrefix = "BIGCALC"

// flagKeys maps command-line flag names to configuration keys
var flagKeys = map[string]string{
	"verbose":    "verbose",
	"cache-size": "calc.cache_size",
	"out":        "pow.out_file",
	"iterations": "check.iterations",
	"range":      "check.range",
	"digits":     "check.digits",
	"seed":       "check.seed",
	"workers":    "check.workers",
	"errors":     "check.errors_file",
	"journal":    "journal.path",
}

// Load loads configuration from multiple sources in priority order:
// 1. Default values
// 2. Configuration file (any format viper understands), if path is not empty
// 3. Environment variables (BIGCALC_ prefix)
// 4. Command-line flags that were set explicitly
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// 1. Set defaults first
	setDefaults(v)

	// 2. Load configuration file
	if path != "" {
		if err := loadConfigFile(v, path); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// 3. Set up environment variable support
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 4. Bind flags known to the command being run
	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.configPath = path

	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// loadConfigFile reads the configuration file at path
func loadConfigFile(v *viper.Viper, path string) error {
	v.SetConfigFile(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file does not exist: %s", path)
	}

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return nil
}

// bindFlags binds every flag of the set that has a configuration key
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("flag --%s: %w", name, err)
		}
	}
	return nil
}
