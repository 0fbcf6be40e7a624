package layout

import (
	"github.com/bnema/splitview/internal/domain/entity"
)

// frame is one unit of solver work: a node and the rectangle it must fill.
type frame struct {
	id   entity.ViewID
	area entity.Rect
}

// Tree is the split layout of a single tab workspace: a root container, the
// focused view, the workspace rectangle, and the set of arena handles that
// belong to this tab. The member set always equals the handles reachable
// from root through container children.
type Tree struct {
	id      entity.TabID
	root    entity.ViewID
	focus   entity.ViewID // a view, or root while the tab holds no views
	area    entity.Rect
	members map[entity.ViewID]struct{}
	stack   []frame // reused across solver passes
}

// ID returns the owning tab's handle.
func (t *Tree) ID() entity.TabID { return t.id }

// Root returns the root container's handle.
func (t *Tree) Root() entity.ViewID { return t.root }

// Focus returns the focused node: a view, or the root when the tab is empty.
func (t *Tree) Focus() entity.ViewID { return t.focus }

// Area returns the workspace rectangle.
func (t *Tree) Area() entity.Rect { return t.area }

// Contains reports whether id belongs to this tab's tree.
func (t *Tree) Contains(id entity.ViewID) bool {
	_, ok := t.members[id]
	return ok
}

func (t *Tree) addMember(id entity.ViewID)    { t.members[id] = struct{}{} }
func (t *Tree) removeMember(id entity.ViewID) { delete(t.members, id) }
