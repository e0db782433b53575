package scene

import (
	"fmt"
	"sync/atomic"
)

var nextHandleID atomic.Uint64

// Handle identifies an object attached to a Node. Handles are values:
// two handles are equal only if they come from the same NewHandle call.
// The zero Handle is invalid.
type Handle struct {
	id   uint64
	name string
}

// NewHandle returns a new unique handle carrying a display name.
func NewHandle(name string) Handle {
	return Handle{id: nextHandleID.Add(1), name: name}
}

// Name returns the display name given to NewHandle.
func (h Handle) Name() string { return h.name }

// ID returns the unique numeric identity of the handle.
func (h Handle) ID() uint64 { return h.id }

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return h.id == 0 }

// String implements fmt.Stringer.
func (h Handle) String() string {
	return fmt.Sprintf("%s#%d", h.name, h.id)
}
