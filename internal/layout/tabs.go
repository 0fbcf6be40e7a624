package layout

import (
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
)

// Tabs is the workspace set: it owns the shared node arena, every tab's
// layout tree, and the active-tab pointer. All mutating operations enter
// through here; the arena holds the nodes, the addressed tree keeps the
// per-tab bookkeeping, and the solver keeps rectangles consistent.
type Tabs struct {
	nodes  *Arena
	trees  map[entity.TabID]*Tree
	order  []entity.TabID // tab creation order; removal compacts
	active entity.TabID
	tabSeq uint64
}

// New creates a workspace set with one empty tab covering area.
func New(area entity.Rect) *Tabs {
	ts := &Tabs{
		nodes: NewArena(),
		trees: make(map[entity.TabID]*Tree),
	}
	ts.active = ts.newTree(area)
	return ts
}

// ViewEntry pairs a view with its handle and whether it currently has focus.
type ViewEntry struct {
	ID      entity.ViewID
	View    *entity.View
	Focused bool
}

func (ts *Tabs) newTree(area entity.Rect) entity.TabID {
	root := ts.nodes.Insert(ContainerNode(Vertical))
	// the root is its own parent; directional search bottoms out here
	ts.nodes.MustGet(root).Parent = root

	ts.tabSeq++
	id := entity.TabID(ts.tabSeq)
	tree := &Tree{
		id:      id,
		root:    root,
		focus:   root,
		area:    area,
		members: map[entity.ViewID]struct{}{root: {}},
	}
	ts.trees[id] = tree
	ts.order = append(ts.order, id)
	return id
}

// NewTab creates an empty tab covering area and makes it active.
func (ts *Tabs) NewTab(area entity.Rect) entity.TabID {
	id := ts.newTree(area)
	ts.active = id
	return id
}

// CloseTab removes the tab and every node it owns. Closing the last
// remaining tab is refused. On success it returns the tab that is active
// afterwards: when the closed tab was active, the previous tab in creation
// order takes over, wrapping to the last.
func (ts *Tabs) CloseTab(id entity.TabID) (entity.TabID, bool) {
	if len(ts.order) <= 1 {
		return 0, false
	}
	tree := ts.tree(id)
	for member := range tree.members {
		ts.nodes.Remove(member)
	}
	delete(ts.trees, id)

	idx := tabIndex(ts.order, id)
	ts.order = append(ts.order[:idx], ts.order[idx+1:]...)
	if ts.active == id {
		if idx > 0 {
			ts.active = ts.order[idx-1]
		} else {
			ts.active = ts.order[len(ts.order)-1]
		}
	}
	return ts.active, true
}

// Active returns the active tab.
func (ts *Tabs) Active() entity.TabID { return ts.active }

// SetActive switches the active tab.
func (ts *Tabs) SetActive(id entity.TabID) {
	ts.tree(id) // validate
	ts.active = id
}

// NextTab activates and returns the tab after the active one in creation
// order, wrapping to the first.
func (ts *Tabs) NextTab() entity.TabID {
	idx := tabIndex(ts.order, ts.active)
	ts.active = ts.order[(idx+1)%len(ts.order)]
	return ts.active
}

// PrevTab activates and returns the tab before the active one in creation
// order, wrapping to the last.
func (ts *Tabs) PrevTab() entity.TabID {
	idx := tabIndex(ts.order, ts.active)
	ts.active = ts.order[(idx+len(ts.order)-1)%len(ts.order)]
	return ts.active
}

// TabIDs returns a snapshot of the tabs in creation order.
func (ts *Tabs) TabIDs() []entity.TabID {
	ids := make([]entity.TabID, len(ts.order))
	copy(ids, ts.order)
	return ids
}

// TabCount returns the number of tabs.
func (ts *Tabs) TabCount() int { return len(ts.order) }

// TabArea returns the tab's workspace rectangle.
func (ts *Tabs) TabArea(tab entity.TabID) entity.Rect { return ts.tree(tab).area }

// Focus returns the tab's focused node: a view, or the tab's root while it
// holds no views.
func (ts *Tabs) Focus(tab entity.TabID) entity.ViewID { return ts.tree(tab).focus }

// SetFocus moves the tab's focus to id, which must belong to the tab.
func (ts *Tabs) SetFocus(tab entity.TabID, id entity.ViewID) {
	tree := ts.tree(tab)
	if !tree.Contains(id) {
		panic(fmt.Sprintf("layout: node %#x is not a member of tab %d", uint64(id), uint64(tab)))
	}
	tree.focus = id
}

// ActiveView returns the focused node of the active tab.
func (ts *Tabs) ActiveView() entity.ViewID { return ts.tree(ts.active).focus }

// Insert adds view as a sibling immediately after the tab's focused node
// (or as the sole child of an empty root), focuses it, and relayouts.
func (ts *Tabs) Insert(tab entity.TabID, view *entity.View) entity.ViewID {
	tree := ts.tree(tab)
	focus := tree.focus
	parent := ts.nodes.MustGet(focus).Parent

	n := ViewNode(view)
	n.Parent = parent
	id := ts.nodes.Insert(n)
	view.ID = id

	container := ts.nodes.MustGet(parent).Container()
	pos := 0
	if len(container.Children) > 0 {
		pos = childIndex(container.Children, focus) + 1
	}
	container.Children = insertChild(container.Children, pos, id)

	tree.focus = id
	tree.addMember(id)

	ts.Recalculate()
	return id
}

// Split adds view next to the focused node along axis. When the focused
// node's parent already splits along axis this is a plain sibling insert;
// otherwise a new container with the requested axis takes the focused
// node's place and adopts both the focused node and the new view.
func (ts *Tabs) Split(tab entity.TabID, view *entity.View, axis Axis) entity.ViewID {
	tree := ts.tree(tab)
	if tree.focus == tree.root {
		// empty tab: nothing to split around
		return ts.Insert(tab, view)
	}
	focus := tree.focus
	parent := ts.nodes.MustGet(focus).Parent

	id := ts.nodes.Insert(ViewNode(view))
	view.ID = id

	container := ts.nodes.MustGet(parent).Container()
	if container.Layout == axis {
		pos := 0
		if len(container.Children) > 0 {
			pos = childIndex(container.Children, focus) + 1
		}
		container.Children = insertChild(container.Children, pos, id)
		ts.nodes.MustGet(id).Parent = parent
	} else {
		splitNode := ContainerNode(axis)
		splitNode.Parent = parent
		split := ts.nodes.Insert(splitNode)

		sc := ts.nodes.MustGet(split).Container()
		sc.Children = append(sc.Children, focus, id)
		ts.nodes.MustGet(focus).Parent = split
		ts.nodes.MustGet(id).Parent = split

		// the new container takes over the focused node's slot
		pc := ts.nodes.MustGet(parent).Container()
		pc.Children[childIndex(pc.Children, focus)] = split
		tree.addMember(split)
	}

	tree.focus = id
	tree.addMember(id)

	ts.Recalculate()
	return id
}

// Remove detaches the view from its container and deletes it. Containers
// emptied by the removal collapse upward, stopping at the tab root. When the
// removed view held the tab's focus, focus moves to the previous view in
// traversal order first.
func (ts *Tabs) Remove(tab entity.TabID, id entity.ViewID) {
	tree := ts.tree(tab)
	if tree.focus == id {
		tree.focus = ts.PrevView(tab)
	}

	stack := []entity.ViewID{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		parentID := ts.nodes.MustGet(cur).Parent
		if pn := ts.nodes.Get(parentID); pn != nil && !pn.IsView() {
			pc := pn.Container()
			if pos := indexOfChild(pc.Children, cur); pos >= 0 {
				pc.Children = append(pc.Children[:pos], pc.Children[pos+1:]...)
				if len(pc.Children) == 0 && parentID != tree.root {
					stack = append(stack, parentID)
				}
			}
		}
		tree.removeMember(cur)
		ts.nodes.Remove(cur)
	}

	ts.Recalculate()
}

// View returns the view behind id, panicking on a stale handle or a
// container node. Use TryView when the handle may have been removed.
func (ts *Tabs) View(id entity.ViewID) *entity.View {
	return ts.nodes.MustGet(id).View()
}

// TryView returns the view behind id, or false when the handle is stale or
// points at a container.
func (ts *Tabs) TryView(id entity.ViewID) (*entity.View, bool) {
	n := ts.nodes.Get(id)
	if n == nil || !n.IsView() {
		return nil, false
	}
	return n.View(), true
}

// Exists reports whether any tab contains a node with this handle.
func (ts *Tabs) Exists(id entity.ViewID) bool { return ts.nodes.Contains(id) }

// TabContains reports whether the tab's tree holds the node. Unknown tabs
// report false.
func (ts *Tabs) TabContains(tab entity.TabID, id entity.ViewID) bool {
	tree, ok := ts.trees[tab]
	if !ok {
		return false
	}
	return tree.Contains(id)
}

// IsEmpty reports whether the tab holds no views. A tab whose root has
// already been dropped by a workspace-wide teardown counts as empty rather
// than failing.
func (ts *Tabs) IsEmpty(tab entity.TabID) bool {
	tree := ts.tree(tab)
	n := ts.nodes.Get(tree.root)
	if n == nil {
		return true
	}
	return len(n.Container().Children) == 0
}

// AllEmpty reports whether every tab holds no views.
func (ts *Tabs) AllEmpty() bool {
	for _, tab := range ts.order {
		if !ts.IsEmpty(tab) {
			return false
		}
	}
	return true
}

// ResizeTab updates the tab's workspace rectangle and relayouts it.
// Reports false when the rectangle is unchanged.
func (ts *Tabs) ResizeTab(tab entity.TabID, area entity.Rect) bool {
	tree := ts.tree(tab)
	if tree.area == area {
		return false
	}
	tree.area = area
	ts.RecalculateTab(tab)
	return true
}

// Resize applies the rectangle to every tab, reporting whether any changed.
func (ts *Tabs) Resize(area entity.Rect) bool {
	changed := false
	for _, tab := range ts.TabIDs() {
		changed = ts.ResizeTab(tab, area) || changed
	}
	return changed
}

// Transpose flips the split axis of the focused node's parent container and
// relayouts every tab.
func (ts *Tabs) Transpose(tab entity.TabID) {
	tree := ts.tree(tab)
	parent := ts.nodes.MustGet(tree.focus).Parent
	if n := ts.nodes.MustGet(parent); !n.IsView() {
		c := n.Container()
		c.Layout = c.Layout.Flip()
		ts.Recalculate()
	}
}

// TabViews returns the tab's views in traversal order, flagging the focused
// one.
func (ts *Tabs) TabViews(tab entity.TabID) []ViewEntry {
	tree := ts.tree(tab)
	var out []ViewEntry
	for tr := ts.Traverse(tab); ; {
		id, v, ok := tr.Next()
		if !ok {
			return out
		}
		out = append(out, ViewEntry{ID: id, View: v, Focused: id == tree.focus})
	}
}

// AllViews returns every tab's views in tab order then traversal order. The
// focused flag marks the active tab's focused view only.
func (ts *Tabs) AllViews() []ViewEntry {
	activeFocus := ts.tree(ts.active).focus
	var out []ViewEntry
	for _, tab := range ts.order {
		for tr := ts.Traverse(tab); ; {
			id, v, ok := tr.Next()
			if !ok {
				break
			}
			out = append(out, ViewEntry{ID: id, View: v, Focused: id == activeFocus})
		}
	}
	return out
}

func (ts *Tabs) tree(tab entity.TabID) *Tree {
	tree, ok := ts.trees[tab]
	if !ok {
		panic(fmt.Sprintf("layout: unknown tab %d", uint64(tab)))
	}
	return tree
}

func tabIndex(order []entity.TabID, id entity.TabID) int {
	for i, other := range order {
		if other == id {
			return i
		}
	}
	panic(fmt.Sprintf("layout: tab %d missing from order", uint64(id)))
}

func childIndex(children []entity.ViewID, id entity.ViewID) int {
	pos := indexOfChild(children, id)
	if pos < 0 {
		panic(fmt.Sprintf("layout: node %#x missing from its parent's children", uint64(id)))
	}
	return pos
}

func indexOfChild(children []entity.ViewID, id entity.ViewID) int {
	for i, child := range children {
		if child == id {
			return i
		}
	}
	return -1
}

func insertChild(children []entity.ViewID, pos int, id entity.ViewID) []entity.ViewID {
	children = append(children, 0)
	copy(children[pos+1:], children[pos:])
	children[pos] = id
	return children
}
