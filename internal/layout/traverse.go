package layout

import (
	"github.com/bnema/splitview/internal/domain/entity"
)

// Traverse walks a tab's views in depth-first pre-order (or its mirror)
// using an explicit stack.
type Traverse struct {
	tabs    *Tabs
	stack   []entity.ViewID
	reverse bool
}

// Traverse returns a pre-order iterator over the tab's views.
func (ts *Tabs) Traverse(tab entity.TabID) *Traverse {
	return &Traverse{tabs: ts, stack: []entity.ViewID{ts.tree(tab).root}}
}

// TraverseReverse returns an iterator yielding the tab's views in reverse
// pre-order.
func (ts *Tabs) TraverseReverse(tab entity.TabID) *Traverse {
	return &Traverse{tabs: ts, stack: []entity.ViewID{ts.tree(tab).root}, reverse: true}
}

// Next yields the next view, or ok=false when the walk is done.
func (t *Traverse) Next() (entity.ViewID, *entity.View, bool) {
	for len(t.stack) > 0 {
		id := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]

		node := t.tabs.nodes.MustGet(id)
		if node.IsView() {
			return id, node.View(), true
		}

		children := node.Container().Children
		if t.reverse {
			t.stack = append(t.stack, children...)
		} else {
			for i := len(children) - 1; i >= 0; i-- {
				t.stack = append(t.stack, children[i])
			}
		}
	}
	return 0, nil, false
}

// PrevView returns the view before the tab's focus in traversal order,
// wrapping to the last view when the focus is first.
//
// This walks the whole traversal rather than chasing sibling links through
// parents; split counts stay small enough that the simple version wins.
func (ts *Tabs) PrevView(tab entity.TabID) entity.ViewID {
	tree := ts.tree(tab)
	if id, ok := viewAfter(ts.TraverseReverse(tab), tree.focus); ok {
		return id
	}
	id, _, ok := ts.TraverseReverse(tab).Next()
	if !ok {
		panic("layout: PrevView on empty tab")
	}
	return id
}

// NextView returns the view after the tab's focus in traversal order,
// wrapping to the first view when the focus is last.
func (ts *Tabs) NextView(tab entity.TabID) entity.ViewID {
	tree := ts.tree(tab)
	if id, ok := viewAfter(ts.Traverse(tab), tree.focus); ok {
		return id
	}
	id, _, ok := ts.Traverse(tab).Next()
	if !ok {
		panic("layout: NextView on empty tab")
	}
	return id
}

// viewAfter advances the iterator past target and returns the view that
// follows it.
func viewAfter(t *Traverse, target entity.ViewID) (entity.ViewID, bool) {
	seen := false
	for {
		id, _, ok := t.Next()
		if !ok {
			return 0, false
		}
		if seen {
			return id, true
		}
		if id == target {
			seen = true
		}
	}
}
