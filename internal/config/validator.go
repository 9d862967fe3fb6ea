package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config validation: %s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors collects multiple validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"auto", "text", "json"}
)

// ValidateConfig checks cfg and returns ValidationErrors when it is unusable.
func ValidateConfig(cfg *Config) error {
	var errs ValidationErrors
	add := func(field string, value interface{}, msg string) {
		errs = append(errs, ValidationError{Field: field, Value: value, Message: msg})
	}

	if !slices.Contains(validLevels, cfg.Log.Level) {
		add("log.level", cfg.Log.Level, "must be one of "+strings.Join(validLevels, ", "))
	}
	if !slices.Contains(validFormats, cfg.Log.Format) {
		add("log.format", cfg.Log.Format, "must be one of "+strings.Join(validFormats, ", "))
	}
	if strings.TrimSpace(cfg.Build.Tool) == "" {
		add("build.tool", cfg.Build.Tool, "must not be empty")
	}
	if strings.TrimSpace(cfg.Build.ConfigPath) == "" {
		add("build.config_path", cfg.Build.ConfigPath, "must not be empty")
	}
	if strings.TrimSpace(cfg.Build.Compiler) == "" {
		add("build.compiler", cfg.Build.Compiler, "must not be empty")
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
