package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	config, err := Load("", nil)
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.False(t, config.Verbose)
	assert.Equal(t, 128, config.Calc.CacheSize)
	assert.Equal(t, "answer.txt", config.Pow.OutFile)
	assert.Equal(t, 10000, config.Check.Iterations)
	assert.Equal(t, int64(10000), config.Check.Range)
	assert.Equal(t, 40, config.Check.Digits)
	assert.Equal(t, int64(0), config.Check.Seed)
	assert.Equal(t, runtime.NumCPU(), config.Check.Workers)
	assert.Equal(t, "errors.txt", config.Check.ErrorsFile)
	assert.False(t, config.JournalEnabled())
	assert.Empty(t, config.ConfigPath())
}

func TestLoadConfigFile(t *testing.T) {
	tempDir := t.TempDir()

	content := `
verbose = true

[pow]
out_file = "power.txt"

[check]
iterations = 50
range = 100
digits = 0
seed = 42
workers = 3
errors_file = "mismatches.txt"

[journal]
path = "runs.db"
`
	path := filepath.Join(tempDir, "bigcalc.toml")
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)

	config, err := Load(path, nil)
	require.NoError(t, err)

	assert.True(t, config.Verbose)
	assert.Equal(t, "power.txt", config.Pow.OutFile)
	assert.Equal(t, 50, config.Check.Iterations)
	assert.Equal(t, int64(100), config.Check.Range)
	assert.Equal(t, 0, config.Check.Digits)
	assert.Equal(t, int64(42), config.Check.Seed)
	assert.Equal(t, 3, config.Check.Workers)
	assert.Equal(t, "mismatches.txt", config.Check.ErrorsFile)
	assert.True(t, config.JournalEnabled())
	assert.Equal(t, "runs.db", config.Journal.Path)
	assert.Equal(t, path, config.ConfigPath())

	// Untouched sections keep their defaults
	assert.Equal(t, 128, config.Calc.CacheSize)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.toml")
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("BIGCALC_CHECK_WORKERS", "7")
	t.Setenv("BIGCALC_CALC_CACHE_SIZE", "16")

	config, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, 7, config.Check.Workers)
	assert.Equal(t, 16, config.Calc.CacheSize)
}

func TestLoadFlags(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "bigcalc.yaml")
	err := os.WriteFile(path, []byte("check:\n  iterations: 50\n  seed: 42\n"), 0644)
	require.NoError(t, err)

	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	flags.Int("iterations", 10000, "")
	flags.Int64("seed", 0, "")
	flags.String("errors", "errors.txt", "")
	require.NoError(t, flags.Parse([]string{"--iterations", "5"}))

	config, err := Load(path, flags)
	require.NoError(t, err)

	// An explicit flag wins over the file
	assert.Equal(t, 5, config.Check.Iterations)
	// A flag left alone does not shadow the file
	assert.Equal(t, int64(42), config.Check.Seed)
	assert.Equal(t, "errors.txt", config.Check.ErrorsFile)
}

func TestConfigValidation(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Calc: CalcConfig{CacheSize: 1},
			Pow:  PowConfig{OutFile: "answer.txt"},
			Check: CheckConfig{
				Iterations: 1,
				Range:      10,
				Digits:     0,
				Workers:    1,
				ErrorsFile: "errors.txt",
			},
		}
	}
	require.NoError(t, Validate(valid()))

	tests := map[string]func(c *Config){
		"cache size":  func(c *Config) { c.Calc.CacheSize = 0 },
		"out file":    func(c *Config) { c.Pow.OutFile = "" },
		"iterations":  func(c *Config) { c.Check.Iterations = 0 },
		"range":       func(c *Config) { c.Check.Range = -1 },
		"huge range":  func(c *Config) { c.Check.Range = 1 << 40 },
		"digits":      func(c *Config) { c.Check.Digits = -1 },
		"workers":     func(c *Config) { c.Check.Workers = 0 },
		"errors file": func(c *Config) { c.Check.ErrorsFile = "" },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(c)
			err := Validate(c)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
