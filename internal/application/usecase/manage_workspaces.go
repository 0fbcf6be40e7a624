package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/layout"
	"github.com/bnema/splitview/internal/logging"
)

// ManageWorkspacesUseCase handles tab workspace lifecycle operations.
type ManageWorkspacesUseCase struct {
	idGenerator IDGenerator
}

// NewManageWorkspacesUseCase creates a new workspace management use case.
func NewManageWorkspacesUseCase(idGenerator IDGenerator) *ManageWorkspacesUseCase {
	return &ManageWorkspacesUseCase{
		idGenerator: idGenerator,
	}
}

// NewWorkspaceInput contains parameters for creating a tab workspace.
type NewWorkspaceInput struct {
	Tabs *layout.Tabs
	// Name titles the workspace's initial pane. Empty leaves the new
	// workspace without panes.
	Name string
}

// NewWorkspaceOutput contains the result of workspace creation.
type NewWorkspaceOutput struct {
	TabID  entity.TabID
	ViewID entity.ViewID
}

// Create adds a new tab workspace covering the same area as the current
// one, makes it active, and optionally seeds it with one pane.
func (uc *ManageWorkspacesUseCase) Create(ctx context.Context, input NewWorkspaceInput) (*NewWorkspaceOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	area := input.Tabs.TabArea(input.Tabs.Active())
	tab := input.Tabs.NewTab(area)
	out := &NewWorkspaceOutput{TabID: tab}

	if input.Name != "" {
		view := entity.NewView(entity.DocumentID(uc.idGenerator()), input.Name)
		out.ViewID = input.Tabs.Insert(tab, view)
	}

	log.Debug().
		Uint64("tab_id", uint64(tab)).
		Int("tab_count", input.Tabs.TabCount()).
		Msg("created workspace")

	return out, nil
}

// CloseWorkspaceInput contains parameters for closing the active workspace.
type CloseWorkspaceInput struct {
	Tabs *layout.Tabs
}

// CloseWorkspaceOutput contains the result of a workspace close.
type CloseWorkspaceOutput struct {
	// Refused is set when the close targeted the last remaining
	// workspace, which cannot be removed.
	Refused  bool
	ClosedID entity.TabID
	ActiveID entity.TabID
}

// Close removes the active tab workspace together with its panes.
// Closing the last workspace is refused.
func (uc *ManageWorkspacesUseCase) Close(ctx context.Context, input CloseWorkspaceInput) (*CloseWorkspaceOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	closing := input.Tabs.Active()
	active, ok := input.Tabs.CloseTab(closing)
	if !ok {
		log.Debug().Msg("refused to close last workspace")
		return &CloseWorkspaceOutput{Refused: true, ActiveID: closing}, nil
	}

	log.Debug().
		Uint64("tab_id", uint64(closing)).
		Int("tab_count", input.Tabs.TabCount()).
		Msg("closed workspace")

	return &CloseWorkspaceOutput{ClosedID: closing, ActiveID: active}, nil
}

// SwitchWorkspaceInput contains parameters for changing the active workspace.
type SwitchWorkspaceInput struct {
	Tabs *layout.Tabs
	// Target selects a specific workspace. Zero means cycle instead.
	Target  entity.TabID
	Reverse bool
}

// SwitchWorkspaceOutput contains the result of a workspace switch.
type SwitchWorkspaceOutput struct {
	ActiveID entity.TabID
}

// Switch activates the target workspace, or cycles to the adjacent one
// in creation order when no target is given.
func (uc *ManageWorkspacesUseCase) Switch(ctx context.Context, input SwitchWorkspaceInput) (*SwitchWorkspaceOutput, error) {
	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	switch {
	case !input.Target.IsZero():
		if !hasTab(input.Tabs, input.Target) {
			return nil, fmt.Errorf("no such workspace: %d", uint64(input.Target))
		}
		input.Tabs.SetActive(input.Target)
	case input.Reverse:
		input.Tabs.PrevTab()
	default:
		input.Tabs.NextTab()
	}

	active := input.Tabs.Active()
	logging.FromContext(ctx).Debug().
		Uint64("tab_id", uint64(active)).
		Msg("switched workspace")

	return &SwitchWorkspaceOutput{ActiveID: active}, nil
}

func hasTab(tabs *layout.Tabs, id entity.TabID) bool {
	for _, tab := range tabs.TabIDs() {
		if tab == id {
			return true
		}
	}
	return false
}
