package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/infrastructure/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective configuration and export its JSON schema.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE:  runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Long:  `Print a JSON schema describing every configuration key, for editor completion and validation.`,
	RunE:  runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg := configManager.Get()

	source := configManager.ConfigFileUsed()
	if source == "" {
		source = "built-in defaults"
		if file, err := config.GetConfigFile(); err == nil {
			source = fmt.Sprintf("built-in defaults (no file at %s)", file)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "source: %s\n\n", source)
	fmt.Fprintf(&b, "[workspace]\n")
	fmt.Fprintf(&b, "default_split_axis = %q\n\n", cfg.Workspace.DefaultSplitAxis)
	fmt.Fprintf(&b, "[demo]\n")
	fmt.Fprintf(&b, "document_names = [%s]\n", quoteList(cfg.Demo.DocumentNames))
	fmt.Fprintf(&b, "initial_views = %d\n\n", cfg.Demo.InitialViews)
	fmt.Fprintf(&b, "[logging]\n")
	fmt.Fprintf(&b, "level = %q\n", cfg.Logging.Level)
	fmt.Fprintf(&b, "format = %q\n", cfg.Logging.Format)

	fmt.Print(b.String())
	return nil
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	data, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = os.Stdout.Write(data)
	return err
}
