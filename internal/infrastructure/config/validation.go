package config

import (
	"fmt"
	"strings"
)

// validateConfig performs validation of configuration values.
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWorkspace(config)...)
	validationErrors = append(validationErrors, validateDemo(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateWorkspace(config *Config) []string {
	switch config.Workspace.DefaultSplitAxis {
	case "horizontal", "vertical":
		return nil
	default:
		return []string{fmt.Sprintf("workspace.default_split_axis must be 'horizontal' or 'vertical', got %q", config.Workspace.DefaultSplitAxis)}
	}
}

func validateDemo(config *Config) []string {
	var validationErrors []string
	if config.Demo.InitialViews < 1 {
		validationErrors = append(validationErrors, "demo.initial_views must be at least 1")
	}
	if len(config.Demo.DocumentNames) == 0 {
		validationErrors = append(validationErrors, "demo.document_names must not be empty")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, got %q", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json', got %q", config.Logging.Format))
	}

	return validationErrors
}
