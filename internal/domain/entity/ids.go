package entity

// ViewID is an opaque, generationally stable handle to a node in the layout
// arena. A handle minted for a node never matches a node created later in
// the same slot. The zero value is never a valid handle.
type ViewID uint64

// IsZero reports whether the handle is the invalid zero handle.
func (id ViewID) IsZero() bool { return id == 0 }

// TabID is an opaque handle to a workspace tab. Handles are never reused.
// The zero value is never a valid handle.
type TabID uint64

// IsZero reports whether the handle is the invalid zero handle.
func (id TabID) IsZero() bool { return id == 0 }
