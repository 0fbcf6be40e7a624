package layout

import (
	"github.com/bnema/splitview/internal/domain/entity"
)

// Axis is the subdivision direction of a container's children.
type Axis int

const (
	// Horizontal lays children out as full-width rows.
	Horizontal Axis = iota
	// Vertical lays children out as full-height columns.
	Vertical
)

// Flip returns the opposite axis.
func (a Axis) Flip() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Direction is a spatial movement direction for focus navigation and swap.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Container groups children along one axis. Children is ordered and never
// empty except transiently during removal, and for a workspace root whose
// tab holds no views.
type Container struct {
	Layout   Axis
	Children []entity.ViewID
	Area     entity.Rect
}

// Node is one element of a layout tree: a view or a container, never both.
// Parent is self-referential for a tree's root; every other node has exactly
// one parent container.
type Node struct {
	Parent    entity.ViewID
	view      *entity.View
	container *Container
}

// ViewNode wraps a view as a tree node.
func ViewNode(v *entity.View) Node {
	return Node{view: v}
}

// ContainerNode creates an empty container node with the given axis.
func ContainerNode(axis Axis) Node {
	return Node{container: &Container{Layout: axis}}
}

// IsView reports whether the node holds a view.
func (n *Node) IsView() bool { return n.view != nil }

// View returns the node's view. The tree invariant guarantees a node is
// never both variants, so calling this on a container is a corrupted-tree
// condition and panics.
func (n *Node) View() *entity.View {
	if n.view == nil {
		panic("layout: node is not a view")
	}
	return n.view
}

// Container returns the node's container, panicking on a view node.
func (n *Node) Container() *Container {
	if n.container == nil {
		panic("layout: node is not a container")
	}
	return n.container
}

// Area returns the node's current rectangle regardless of variant.
func (n *Node) Area() entity.Rect {
	if n.view != nil {
		return n.view.Area
	}
	return n.Container().Area
}
