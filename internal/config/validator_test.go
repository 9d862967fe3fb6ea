package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Log:   LogConfig{Level: "info", Format: "text"},
		Build: BuildConfig{Tool: "cargo", ConfigPath: ".cargo/config.toml", Compiler: "rustc"},
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	assert.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfig_CollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Log.Format = "xml"
	cfg.Build.Tool = " "
	cfg.Build.ConfigPath = ""

	err := ValidateConfig(cfg)

	verrs, ok := err.(ValidationErrors)
	if assert.True(t, ok) {
		assert.Len(t, verrs, 3)
	}
	assert.Contains(t, err.Error(), "log.format")
	assert.Contains(t, err.Error(), "build.tool")
	assert.Contains(t, err.Error(), "build.config_path")
}
