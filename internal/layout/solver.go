package layout

import (
	"github.com/bnema/splitview/internal/domain/entity"
)

// gap between side-by-side columns, in cells. Rows touch.
const verticalGap uint16 = 1

// Recalculate recomputes rectangles for every tab.
func (ts *Tabs) Recalculate() {
	for _, tab := range ts.TabIDs() {
		ts.RecalculateTab(tab)
	}
}

// RecalculateTab recomputes rectangles for one tab, walking the tree
// depth-first from the root rectangle down. The walk is iterative; the work
// stack lives on the tree and is reused between passes.
func (ts *Tabs) RecalculateTab(tab entity.TabID) {
	if ts.IsEmpty(tab) {
		tree := ts.tree(tab)
		tree.focus = tree.root
		return
	}

	tree := ts.tree(tab)
	stack := tree.stack[:0]
	stack = append(stack, frame{id: tree.root, area: tree.area})

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := ts.nodes.MustGet(f.id)
		if node.IsView() {
			node.View().Area = f.area
			continue
		}

		container := node.Container()
		container.Area = f.area

		switch container.Layout {
		case Horizontal:
			n := uint16(len(container.Children))
			height := f.area.Height / n
			childY := f.area.Y
			for i, child := range container.Children {
				area := entity.NewRect(container.Area.X, childY, container.Area.Width, height)
				childY += height
				// rounding leaves uneven space; the last child takes the rest
				if i == len(container.Children)-1 {
					area.Height = container.Area.Y + container.Area.Height - area.Y
				}
				stack = append(stack, frame{id: child, area: area})
			}
		case Vertical:
			n := uint16(len(container.Children))
			width := f.area.Width / n
			childX := f.area.X
			for i, child := range container.Children {
				area := entity.NewRect(childX, container.Area.Y, width, container.Area.Height)
				childX += width + verticalGap
				// rounding leaves uneven space; the last child takes the rest
				if i == len(container.Children)-1 {
					area.Width = container.Area.X + container.Area.Width - area.X
				}
				stack = append(stack, frame{id: child, area: area})
			}
		}
	}

	tree.stack = stack
}
