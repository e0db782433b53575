package scene

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrZeroHandle is returned when attaching with the zero Handle.
	ErrZeroHandle = errors.New("scene: zero handle")

	// ErrNilObject is returned when attaching a nil object.
	ErrNilObject = errors.New("scene: nil object")

	// ErrAttached is returned when a handle is already attached to the node.
	ErrAttached = errors.New("scene: handle already attached")
)

// Kind classifies renderable objects.
type Kind uint8

const (
	// KindMesh is a triangle mesh.
	KindMesh Kind = iota

	// KindLines is a group of line strips.
	KindLines
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindLines:
		return "lines"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Object is a renderable that can be attached to a Node.
type Object interface {
	ObjectKind() Kind
}

// Node is the host scene node that holds published objects.
//
// Attach adds obj under h and fails if h is already attached.
// Detach removes h; detaching a handle that is not attached is a no-op.
type Node interface {
	Attach(h Handle, obj Object) error
	Detach(h Handle)
}

// Group is an in-memory Node. It preserves attach order and is safe for
// concurrent use.
type Group struct {
	mu       sync.RWMutex
	children []child
}

type child struct {
	handle Handle
	object Object
}

// NewGroup creates an empty Group.
func NewGroup() *Group {
	return &Group{}
}

// Attach implements Node.
func (g *Group) Attach(h Handle, obj Object) error {
	if h.IsZero() {
		return ErrZeroHandle
	}
	if obj == nil {
		return ErrNilObject
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.indexLocked(h) >= 0 {
		return fmt.Errorf("%w: %s", ErrAttached, h)
	}
	g.children = append(g.children, child{handle: h, object: obj})
	return nil
}

// Detach implements Node.
func (g *Group) Detach(h Handle) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i := g.indexLocked(h); i >= 0 {
		g.children = append(g.children[:i], g.children[i+1:]...)
	}
}

// Get returns the object attached under h.
func (g *Group) Get(h Handle) (Object, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if i := g.indexLocked(h); i >= 0 {
		return g.children[i].object, true
	}
	return nil, false
}

// Find returns the first object attached under a handle with the given name.
func (g *Group) Find(name string) (Object, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, c := range g.children {
		if c.handle.name == name {
			return c.object, true
		}
	}
	return nil, false
}

// Handles returns the attached handles in attach order.
func (g *Group) Handles() []Handle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Handle, len(g.children))
	for i, c := range g.children {
		out[i] = c.handle
	}
	return out
}

// Len returns the number of attached objects.
func (g *Group) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.children)
}

func (g *Group) indexLocked(h Handle) int {
	for i, c := range g.children {
		if c.handle == h {
			return i
		}
	}
	return -1
}
