// Package config loads, watches and validates splitview configuration.
package config

// Config represents the complete configuration for splitview.
type Config struct {
	// Workspace defines split and tab handling behavior.
	Workspace WorkspaceConfig `mapstructure:"workspace" json:"workspace" yaml:"workspace" toml:"workspace"`
	// Demo controls the demo TUI.
	Demo    DemoConfig    `mapstructure:"demo" json:"demo" yaml:"demo" toml:"demo"`
	Logging LoggingConfig `mapstructure:"logging" json:"logging" yaml:"logging" toml:"logging"`
}

// WorkspaceConfig defines split and tab handling behavior.
type WorkspaceConfig struct {
	// DefaultSplitAxis is the axis used by the unqualified split action:
	// "horizontal" (rows) or "vertical" (columns)
	DefaultSplitAxis string `mapstructure:"default_split_axis" json:"default_split_axis" yaml:"default_split_axis" toml:"default_split_axis"`
}

// DemoConfig controls the demo TUI.
type DemoConfig struct {
	// DocumentNames seed the titles of demo documents, cycled in order
	DocumentNames []string `mapstructure:"document_names" json:"document_names" yaml:"document_names" toml:"document_names"`
	// InitialViews is the number of views opened at startup (minimum 1)
	InitialViews int `mapstructure:"initial_views" json:"initial_views" yaml:"initial_views" toml:"initial_views"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error
	Level string `mapstructure:"level" json:"level" yaml:"level" toml:"level"`
	// Format is "console" or "json"
	Format string `mapstructure:"format" json:"format" yaml:"format" toml:"format"`
}
