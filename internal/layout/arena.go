// Package layout implements the pane/split layout core: a flat node arena
// shared by every tab workspace, per-tab split trees, geometric relayout,
// and spatial focus navigation.
package layout

import (
	"fmt"

	"github.com/bnema/splitview/internal/domain/entity"
)

// handle layout: generation in the high 32 bits, slot index + 1 in the low
// 32 bits. Generations start at 1 so a handle is never zero.

func makeID(index, generation uint32) entity.ViewID {
	return entity.ViewID(uint64(generation)<<32 | uint64(index+1))
}

func splitID(id entity.ViewID) (index, generation uint32) {
	return uint32(id&0xffffffff) - 1, uint32(id >> 32)
}

type slot struct {
	node       Node
	generation uint32
	live       bool
}

// Arena owns every tree node (views and containers) across all tabs in a
// single flat store. Handles stay valid until the node is removed; a removed
// handle never resolves again, even after its slot is reused.
//
// The arena enforces no referential integrity: removing a node that is still
// referenced from a container's child list is the caller's responsibility.
type Arena struct {
	slots []slot
	free  []uint32
	order []entity.ViewID // live handles, insertion order
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Insert adds a node and returns its handle.
func (a *Arena) Insert(n Node) entity.ViewID {
	var index uint32
	if len(a.free) > 0 {
		index = a.free[len(a.free)-1]
		a.free = a.free[:len(a.free)-1]
		a.slots[index].node = n
		a.slots[index].live = true
	} else {
		index = uint32(len(a.slots))
		a.slots = append(a.slots, slot{node: n, generation: 1, live: true})
	}
	id := makeID(index, a.slots[index].generation)
	a.order = append(a.order, id)
	return id
}

// Remove deletes the node and invalidates its handle. Removing a handle that
// is already stale is a programmer error.
func (a *Arena) Remove(id entity.ViewID) {
	index := a.mustIndex(id)
	a.slots[index].live = false
	a.slots[index].generation++
	a.slots[index].node = Node{}
	a.free = append(a.free, index)
	for i, other := range a.order {
		if other == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// Get returns the node for id, or nil if the handle is stale or absent.
func (a *Arena) Get(id entity.ViewID) *Node {
	index, generation := splitID(id)
	if int(index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[index]
	if !s.live || s.generation != generation {
		return nil
	}
	return &s.node
}

// MustGet returns the node for id and panics if the handle is stale. Lookups
// on this path only ever see internally validated handles, so a miss means a
// corrupted tree and continuing would make it worse.
func (a *Arena) MustGet(id entity.ViewID) *Node {
	n := a.Get(id)
	if n == nil {
		panic(fmt.Sprintf("layout: stale node handle %#x", uint64(id)))
	}
	return n
}

// Contains reports whether id resolves to a live node.
func (a *Arena) Contains(id entity.ViewID) bool {
	return a.Get(id) != nil
}

// Len returns the number of live nodes.
func (a *Arena) Len() int { return len(a.order) }

// IDs returns a snapshot of the live handles in insertion order. The order
// is stable until a removal occurs.
func (a *Arena) IDs() []entity.ViewID {
	ids := make([]entity.ViewID, len(a.order))
	copy(ids, a.order)
	return ids
}

// DisjointMut resolves all requested handles at once and returns exclusive
// access to each, or reports failure as a single unit if any handle is
// stale or any two handles alias the same node. Callers that need to mutate
// several nodes in one operation (swap, remove) go through here instead of
// taking sequential lookups.
func (a *Arena) DisjointMut(ids ...entity.ViewID) ([]*Node, bool) {
	nodes := make([]*Node, len(ids))
	for i, id := range ids {
		for _, prev := range ids[:i] {
			if prev == id {
				return nil, false
			}
		}
		n := a.Get(id)
		if n == nil {
			return nil, false
		}
		nodes[i] = n
	}
	return nodes, true
}

func (a *Arena) mustIndex(id entity.ViewID) uint32 {
	index, generation := splitID(id)
	if int(index) >= len(a.slots) || !a.slots[index].live || a.slots[index].generation != generation {
		panic(fmt.Sprintf("layout: stale node handle %#x", uint64(id)))
	}
	return index
}
