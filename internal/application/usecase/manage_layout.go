package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
	"github.com/bnema/splitview/internal/layout"
	"github.com/bnema/splitview/internal/logging"
)

// IDGenerator is a function type for generating unique IDs.
type IDGenerator func() string

// SplitAxis indicates the orientation of a split.
type SplitAxis string

const (
	SplitHorizontal SplitAxis = "horizontal"
	SplitVertical   SplitAxis = "vertical"
)

// NavigateDirection indicates the direction for focus navigation.
type NavigateDirection string

const (
	NavLeft  NavigateDirection = "left"
	NavRight NavigateDirection = "right"
	NavUp    NavigateDirection = "up"
	NavDown  NavigateDirection = "down"
)

// ManageLayoutUseCase handles pane operations on the active workspace.
type ManageLayoutUseCase struct {
	idGenerator IDGenerator
}

// NewManageLayoutUseCase creates a new layout management use case.
func NewManageLayoutUseCase(idGenerator IDGenerator) *ManageLayoutUseCase {
	return &ManageLayoutUseCase{
		idGenerator: idGenerator,
	}
}

// OpenPaneInput contains parameters for opening a pane in the focused slot.
type OpenPaneInput struct {
	Tabs *layout.Tabs
	Name string
}

// OpenPaneOutput contains the result of an open operation.
type OpenPaneOutput struct {
	ViewID entity.ViewID
}

// Open inserts a new pane next to the focused one on the focused
// container's axis and focuses it.
func (uc *ManageLayoutUseCase) Open(ctx context.Context, input OpenPaneInput) (*OpenPaneOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	view := entity.NewView(entity.DocumentID(uc.idGenerator()), input.Name)
	id := input.Tabs.Insert(input.Tabs.Active(), view)

	log.Debug().
		Uint64("view_id", uint64(id)).
		Str("name", input.Name).
		Msg("opened pane")

	return &OpenPaneOutput{ViewID: id}, nil
}

// SplitPaneInput contains parameters for splitting the focused pane.
type SplitPaneInput struct {
	Tabs *layout.Tabs
	Name string
	Axis SplitAxis
}

// SplitPaneOutput contains the result of a split operation.
type SplitPaneOutput struct {
	ViewID entity.ViewID
}

// Split creates a new pane adjacent to the focused pane on the given axis.
func (uc *ManageLayoutUseCase) Split(ctx context.Context, input SplitPaneInput) (*SplitPaneOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	axis, err := splitAxis(input.Axis)
	if err != nil {
		return nil, err
	}

	view := entity.NewView(entity.DocumentID(uc.idGenerator()), input.Name)
	id := input.Tabs.Split(input.Tabs.Active(), view, axis)

	log.Debug().
		Uint64("view_id", uint64(id)).
		Str("axis", string(input.Axis)).
		Str("name", input.Name).
		Msg("split pane")

	return &SplitPaneOutput{ViewID: id}, nil
}

func splitAxis(axis SplitAxis) (layout.Axis, error) {
	switch axis {
	case SplitHorizontal:
		return layout.Horizontal, nil
	case SplitVertical, "":
		return layout.Vertical, nil
	default:
		return 0, fmt.Errorf("unknown split axis: %q", axis)
	}
}

// ClosePaneInput contains parameters for closing the focused pane.
type ClosePaneInput struct {
	Tabs *layout.Tabs
}

// ClosePaneOutput contains the result of a close operation.
type ClosePaneOutput struct {
	// TabEmpty reports whether the active tab has no panes left.
	TabEmpty bool
	// AllEmpty reports whether every tab is out of panes.
	AllEmpty bool
}

// Close removes the focused pane from the active tab.
func (uc *ManageLayoutUseCase) Close(ctx context.Context, input ClosePaneInput) (*ClosePaneOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	tab := input.Tabs.Active()
	if input.Tabs.IsEmpty(tab) {
		return nil, fmt.Errorf("no pane to close")
	}

	focus := input.Tabs.Focus(tab)
	input.Tabs.Remove(tab, focus)

	out := &ClosePaneOutput{
		TabEmpty: input.Tabs.IsEmpty(tab),
		AllEmpty: input.Tabs.AllEmpty(),
	}

	log.Debug().
		Uint64("view_id", uint64(focus)).
		Bool("tab_empty", out.TabEmpty).
		Msg("closed pane")

	return out, nil
}

// NavigateInput contains parameters for directional focus movement.
type NavigateInput struct {
	Tabs      *layout.Tabs
	Direction NavigateDirection
}

// NavigateOutput contains the result of a navigation.
type NavigateOutput struct {
	Moved  bool
	ViewID entity.ViewID
}

// Navigate moves focus to the nearest pane in the given direction,
// if one exists.
func (uc *ManageLayoutUseCase) Navigate(ctx context.Context, input NavigateInput) (*NavigateOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	tab := input.Tabs.Active()
	if input.Tabs.IsEmpty(tab) {
		return &NavigateOutput{}, nil
	}

	dir, err := navigateDirection(input.Direction)
	if err != nil {
		return nil, err
	}

	target, ok := input.Tabs.FindSplitInDirection(tab, input.Tabs.Focus(tab), dir)
	if !ok {
		return &NavigateOutput{}, nil
	}

	input.Tabs.SetFocus(tab, target)

	log.Debug().
		Str("direction", string(input.Direction)).
		Uint64("view_id", uint64(target)).
		Msg("moved focus")

	return &NavigateOutput{Moved: true, ViewID: target}, nil
}

// Swap exchanges the focused pane with the nearest pane in the given
// direction, keeping both areas and the traversal order intact.
func (uc *ManageLayoutUseCase) Swap(ctx context.Context, input NavigateInput) (*NavigateOutput, error) {
	log := logging.FromContext(ctx)

	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	tab := input.Tabs.Active()
	if input.Tabs.IsEmpty(tab) {
		return &NavigateOutput{}, nil
	}

	dir, err := navigateDirection(input.Direction)
	if err != nil {
		return nil, err
	}

	if !input.Tabs.SwapSplitInDirection(tab, dir) {
		return &NavigateOutput{}, nil
	}

	focus := input.Tabs.Focus(tab)
	log.Debug().
		Str("direction", string(input.Direction)).
		Uint64("view_id", uint64(focus)).
		Msg("swapped pane")

	return &NavigateOutput{Moved: true, ViewID: focus}, nil
}

func navigateDirection(dir NavigateDirection) (layout.Direction, error) {
	switch dir {
	case NavLeft:
		return layout.Left, nil
	case NavRight:
		return layout.Right, nil
	case NavUp:
		return layout.Up, nil
	case NavDown:
		return layout.Down, nil
	default:
		return 0, fmt.Errorf("unknown navigate direction: %q", dir)
	}
}

// CycleInput contains parameters for order-based focus movement.
type CycleInput struct {
	Tabs    *layout.Tabs
	Reverse bool
}

// Cycle moves focus to the next pane in traversal order, or the
// previous one when Reverse is set. Wraps at either end.
func (uc *ManageLayoutUseCase) Cycle(ctx context.Context, input CycleInput) (*NavigateOutput, error) {
	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	tab := input.Tabs.Active()
	if input.Tabs.IsEmpty(tab) {
		return &NavigateOutput{}, nil
	}

	var target entity.ViewID
	if input.Reverse {
		target = input.Tabs.PrevView(tab)
	} else {
		target = input.Tabs.NextView(tab)
	}
	input.Tabs.SetFocus(tab, target)

	logging.FromContext(ctx).Debug().
		Bool("reverse", input.Reverse).
		Uint64("view_id", uint64(target)).
		Msg("cycled focus")

	return &NavigateOutput{Moved: true, ViewID: target}, nil
}

// TransposeInput contains parameters for flipping a container axis.
type TransposeInput struct {
	Tabs *layout.Tabs
}

// Transpose flips the focused pane's parent container between row and
// column orientation.
func (uc *ManageLayoutUseCase) Transpose(ctx context.Context, input TransposeInput) error {
	if input.Tabs == nil {
		return fmt.Errorf("workspace set is required")
	}

	tab := input.Tabs.Active()
	if input.Tabs.IsEmpty(tab) {
		return nil
	}

	input.Tabs.Transpose(tab)
	logging.FromContext(ctx).Debug().Msg("transposed container")
	return nil
}

// Resized reports whether a resize changed any geometry.
type Resized struct {
	Changed bool
}

// ResizeInput contains the new outer area.
type ResizeInput struct {
	Tabs *layout.Tabs
	Area entity.Rect
}

// Resize applies a new outer area to every workspace.
func (uc *ManageLayoutUseCase) Resize(ctx context.Context, input ResizeInput) (*Resized, error) {
	if input.Tabs == nil {
		return nil, fmt.Errorf("workspace set is required")
	}

	changed := input.Tabs.Resize(input.Area)
	if changed {
		logging.FromContext(ctx).Debug().
			Uint16("width", input.Area.Width).
			Uint16("height", input.Area.Height).
			Msg("resized workspaces")
	}
	return &Resized{Changed: changed}, nil
}
