// Package config reads the environment overrides that influence fixture behavior. All settings are optional;
// the zero value of Config is the default behavior (fixtures under the OS temp root, deleted on release,
// quiet logging).
package config

import (
	"github.com/spf13/viper"
)

// Config holds the environment overrides for the fixture lifecycle.
type Config struct {
	// TempRoot overrides the directory under which fixture roots are created. Defaults to the OS temp
	// directory when empty.
	TempRoot string

	// Persist forces newly created fixtures onto the keep policy, mirroring an explicit Persist() call.
	// Useful to inspect fixture contents after a failing test run.
	Persist bool

	// Debug selects the debug logger, which traces fixture filesystem mutations.
	Debug bool
}

// Load reads the configuration from the environment. The recognized variables are FIXTUREFS_TMPDIR,
// FIXTUREFS_PERSIST, and FIXTUREFS_DEBUG.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("fixturefs")
	v.AutomaticEnv()

	return Config{
		TempRoot: v.GetString("tmpdir"),
		Persist:  v.GetBool("persist"),
		Debug:    v.GetBool("debug"),
	}
}
