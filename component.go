package textmesh

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/textmesh/scene"
	"github.com/gogpu/textmesh/text"
)

// State is the lifecycle state of a Component.
type State uint8

const (
	// StateIdle means no cycle has started.
	StateIdle State = iota

	// StateLoading means a cycle is fetching the font or building geometry.
	StateLoading

	// StatePublished means the latest cycle attached its pair.
	StatePublished

	// StateFailed means the latest cycle ended without publishing.
	StateFailed

	// StateRemoved means the component was torn down.
	StateRemoved
)

// String returns a string representation of the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateLoading:
		return "Loading"
	case StatePublished:
		return "Published"
	case StateFailed:
		return "Failed"
	case StateRemoved:
		return "Removed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Component keeps a text pair published on a scene node in sync with its
// configuration.
//
// Every Init or Update starts a cycle: the previous load is cancelled, the
// published pair is detached, and a goroutine fetches the font and builds
// the new pair. Only the most recent cycle may publish; a superseded load
// that still completes is discarded. The node is only touched while the
// component's mutex is held.
//
// Component is safe for concurrent use.
type Component struct {
	node      scene.Node
	extractor *text.Extractor
	opts      options
	log       *slog.Logger

	fillHandle    scene.Handle
	outlineHandle scene.Handle

	mu       sync.Mutex
	cfg      Config
	state    State
	gen      uint64
	cancel   context.CancelFunc
	done     chan struct{}
	err      error
	pair     *Pair
	attached bool
}

// New creates a Component publishing on node. No cycle runs until Init.
func New(node scene.Node, opts ...Option) *Component {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	if log == nil {
		log = Logger()
	}
	ex := o.extractor
	if ex == nil {
		ex = text.NewExtractor(text.WithLogger(log))
	}
	done := make(chan struct{})
	close(done)
	return &Component{
		node:          node,
		extractor:     ex,
		opts:          o,
		log:           log,
		fillHandle:    scene.NewHandle(o.fillName),
		outlineHandle: scene.NewHandle(o.outlineName),
		done:          done,
	}
}

// Init starts the first cycle with cfg. It may also be called after Remove
// to bring the component back.
func (c *Component) Init(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startLocked(cfg)
}

// Update starts a new cycle when cfg differs from the current
// configuration or the last cycle failed. It is ignored after Remove.
func (c *Component) Update(cfg Config) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state {
	case StateRemoved:
		return
	case StateLoading, StatePublished:
		if cfg == c.cfg {
			return
		}
	}
	c.startLocked(cfg)
}

// Remove cancels any load and detaches both objects.
func (c *Component) Remove() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.node.Detach(c.fillHandle)
	c.node.Detach(c.outlineHandle)
	c.attached = false
	c.pair = nil
	c.err = nil
	c.state = StateRemoved

	done := make(chan struct{})
	close(done)
	c.done = done
	c.log.Debug("textmesh: removed")
}

// Wait blocks until the current cycle settles or ctx is done. It returns
// the cycle's error, nil when it published, or ctx's error.
func (c *Component) Wait(ctx context.Context) error {
	for {
		c.mu.Lock()
		done := c.done
		c.mu.Unlock()

		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}

		c.mu.Lock()
		if c.done == done {
			err := c.err
			c.mu.Unlock()
			return err
		}
		c.mu.Unlock()
	}
}

// State returns the lifecycle state.
func (c *Component) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the error of the latest settled cycle.
func (c *Component) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Config returns the configuration of the latest cycle.
func (c *Component) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Pair returns the published pair, or nil when nothing is published.
func (c *Component) Pair() *Pair {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pair
}

// Handles returns the handles the fill and outline are attached under.
func (c *Component) Handles() (fill, outline scene.Handle) {
	return c.fillHandle, c.outlineHandle
}

func (c *Component) startLocked(cfg Config) {
	if c.cancel != nil {
		c.cancel()
	}
	c.detachLocked()

	c.gen++
	gen := c.gen
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	c.cfg = cfg
	c.cancel = cancel
	c.done = done
	c.err = nil
	c.state = StateLoading

	c.log.Debug("textmesh: cycle started", "generation", gen, "font", cfg.Font, "value", cfg.Value)
	go c.run(ctx, gen, cfg, done)
}

func (c *Component) run(ctx context.Context, gen uint64, cfg Config, done chan struct{}) {
	defer close(done)

	pair, err := Generate(ctx, c.extractor, cfg, c.opts.triangulator)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Warn("textmesh: superseded load discarded", "generation", gen, "current", c.gen)
		return
	}
	c.cancel = nil
	if err != nil {
		c.failLocked(gen, err)
		return
	}

	if err := c.node.Attach(c.fillHandle, pair.Fill); err != nil {
		c.failLocked(gen, fmt.Errorf("%w: %s: %w", ErrAttach, c.fillHandle.Name(), err))
		return
	}
	if err := c.node.Attach(c.outlineHandle, pair.Outline); err != nil {
		c.node.Detach(c.fillHandle)
		c.failLocked(gen, fmt.Errorf("%w: %s: %w", ErrAttach, c.outlineHandle.Name(), err))
		return
	}
	c.attached = true
	c.pair = pair
	c.state = StatePublished
	c.log.Info("textmesh: pair published",
		"generation", gen,
		"triangles", pair.Fill.TriangleCount(),
		"lines", len(pair.Outline.Lines),
		"offset", pair.Offset,
	)
}

func (c *Component) failLocked(gen uint64, err error) {
	c.err = err
	c.state = StateFailed
	c.log.Warn("textmesh: cycle failed", "generation", gen, "err", err)
}

func (c *Component) detachLocked() {
	if !c.attached {
		return
	}
	c.node.Detach(c.fillHandle)
	c.node.Detach(c.outlineHandle)
	c.attached = false
	c.pair = nil
}
