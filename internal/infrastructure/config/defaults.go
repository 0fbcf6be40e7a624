package config

import "github.com/spf13/viper"

// DefaultConfig returns the configuration used when no file or
// environment overrides are present.
func DefaultConfig() *Config {
	return &Config{
		Workspace: WorkspaceConfig{
			DefaultSplitAxis: "vertical",
		},
		Demo: DemoConfig{
			DocumentNames: []string{"main.go", "solver.go", "notes.md", "README.md"},
			InitialViews:  1,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("workspace.default_split_axis", d.Workspace.DefaultSplitAxis)
	v.SetDefault("demo.document_names", d.Demo.DocumentNames)
	v.SetDefault("demo.initial_views", d.Demo.InitialViews)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
