package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// setDefaults sets all default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)

	// Calculator defaults
	v.SetDefault("calc.cache_size", 128)

	// Exponentiation defaults
	v.SetDefault("pow.out_file", "answer.txt")

	// Differential check defaults
	v.SetDefault("check.iterations", 10000)
	v.SetDefault("check.range", 10000)
	v.SetDefault("check.digits", 40)
	v.SetDefault("check.seed", 0) // 0 means time-based
	v.SetDefault("check.workers", runtime.NumCPU())
	v.SetDefault("check.errors_file", "errors.txt")

	// Journal defaults
	v.SetDefault("journal.path", "") // disabled
}
