// Package config loads fleet's own settings: logging and the location of
// the build tool and the cargo configuration it generates.
package config

// Config holds all application configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Build BuildConfig `mapstructure:"build"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BuildConfig configures how builds are forwarded.
type BuildConfig struct {
	// Tool is the build tool invoked as `<tool> <action> <args...>`.
	Tool string `mapstructure:"tool"`
	// ConfigPath is where the generated cargo configuration is written.
	ConfigPath string `mapstructure:"config_path"`
	// Compiler is queried with `-vV` to detect the release channel.
	Compiler string `mapstructure:"compiler"`
}
