package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bnema/splitview/internal/application/usecase"
	"github.com/bnema/splitview/internal/logging"
	"github.com/bnema/splitview/internal/ui"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the interactive workspace demo",
	Long: `Run the interactive demo in the terminal.

Keys: v/s split, x close, h/j/k/l navigate, H/J/K/L swap, r transpose,
[ and ] cycle panes, t/X/tab manage workspaces, ? help, q quit.`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(_ *cobra.Command, _ []string) error {
	ctx := appContext()
	cfg := configManager.Get()

	idGen := usecase.IDGenerator(uuid.NewString)
	layoutUC := usecase.NewManageLayoutUseCase(idGen)
	workspaceUC := usecase.NewManageWorkspacesUseCase(idGen)

	model := ui.New(ctx, cfg, layoutUC, workspaceUC)

	logging.FromContext(ctx).Debug().Msg("starting demo")
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
