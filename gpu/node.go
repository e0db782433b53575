package gpu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/textmesh/mesh"
	"github.com/gogpu/textmesh/scene"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrClosed is returned when attaching to a closed Node.
	ErrClosed = errors.New("gpu: node closed")

	// ErrUnsupportedObject is returned for objects other than *mesh.Fill
	// and *mesh.Outline.
	ErrUnsupportedObject = errors.New("gpu: unsupported object")
)

// Option configures a Node.
type Option func(*Node)

// WithFormat sets the color target format. The default is BGRA8Unorm.
func WithFormat(f gputypes.TextureFormat) Option {
	return func(n *Node) { n.pipelines.format = f }
}

// WithWGSL passes WGSL source to the device instead of naga-compiled
// SPIR-V, for backends that consume WGSL directly.
func WithWGSL() Option {
	return func(n *Node) { n.pipelines.wgsl = true }
}

// WithLogger sets the logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(n *Node) { n.log = l }
}

// drawable holds the GPU resources of one attached object.
type drawable struct {
	handle     scene.Handle
	kind       scene.Kind
	color      [4]float32
	vertBuf    hal.Buffer
	indexBuf   hal.Buffer
	uniformBuf hal.Buffer
	bindGroup  hal.BindGroup
	pipeline   hal.RenderPipeline
	indexCount uint32
}

func (d *drawable) destroy(device hal.Device) {
	if d.bindGroup != nil {
		device.DestroyBindGroup(d.bindGroup)
		d.bindGroup = nil
	}
	for _, b := range []*hal.Buffer{&d.uniformBuf, &d.indexBuf, &d.vertBuf} {
		if *b != nil {
			device.DestroyBuffer(*b)
			*b = nil
		}
	}
}

// Node is a scene.Node whose objects live on a HAL device.
// Node is safe for concurrent use.
type Node struct {
	device hal.Device
	queue  hal.Queue
	log    *slog.Logger

	mu        sync.Mutex
	pipelines pipelineCache
	transform [16]float32
	objects   []*drawable
	closed    bool
}

// NewNode creates a Node on device. Nothing is allocated until the first
// Attach.
func NewNode(device hal.Device, queue hal.Queue, opts ...Option) *Node {
	n := &Node{
		device:    device,
		queue:     queue,
		transform: Identity,
		pipelines: pipelineCache{
			device: device,
			format: gputypes.TextureFormatBGRA8Unorm,
		},
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.log == nil {
		n.log = slog.New(nopHandler{})
	}
	return n
}

// Attach implements scene.Node.
func (n *Node) Attach(h scene.Handle, obj scene.Object) error {
	if h.IsZero() {
		return scene.ErrZeroHandle
	}
	if obj == nil {
		return scene.ErrNilObject
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return ErrClosed
	}
	if n.indexLocked(h) >= 0 {
		return fmt.Errorf("%w: %s", scene.ErrAttached, h)
	}

	var (
		d             *drawable
		verts, idx    []byte
		count         uint32
		material      mesh.Material
		vertLabel     = "text_fill_vertices"
		indexLabel    = "text_fill_indices"
		uniformsLabel = "text_fill_uniforms"
	)
	switch o := obj.(type) {
	case *mesh.Fill:
		verts, idx = encodeFill(o)
		count = uint32(len(o.Indices)) //nolint:gosec // mesh size fits uint32
		material = o.Material
	case *mesh.Outline:
		verts, idx, count = encodeOutline(o)
		material = o.Material
		vertLabel, indexLabel, uniformsLabel = "text_outline_vertices", "text_outline_indices", "text_outline_uniforms"
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedObject, obj)
	}
	d = &drawable{handle: h, kind: obj.ObjectKind(), color: material.RGBA()}

	if count > 0 {
		if err := n.uploadLocked(d, material, verts, idx, count, vertLabel, indexLabel, uniformsLabel); err != nil {
			d.destroy(n.device)
			return err
		}
	}
	n.objects = append(n.objects, d)
	n.log.Debug("gpu: attached", "handle", h.String(), "kind", d.kind.String(), "indices", count)
	return nil
}

func (n *Node) uploadLocked(d *drawable, m mesh.Material, verts, idx []byte, count uint32, vertLabel, indexLabel, uniformsLabel string) error {
	pipeline, err := n.pipelines.get(keyFor(d.kind, m))
	if err != nil {
		return err
	}
	d.pipeline = pipeline

	if d.vertBuf, err = n.createBuffer(vertLabel, verts, gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst); err != nil {
		return err
	}
	if d.indexBuf, err = n.createBuffer(indexLabel, idx, gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst); err != nil {
		return err
	}
	uniforms := encodeUniforms(n.transform, d.color)
	if d.uniformBuf, err = n.createBuffer(uniformsLabel, uniforms, gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst); err != nil {
		return err
	}

	d.bindGroup, err = n.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "text_bind",
		Layout: n.pipelines.uniformLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: d.uniformBuf.NativeHandle(), Offset: 0, Size: uniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("gpu: create bind group: %w", err)
	}
	d.indexCount = count
	return nil
}

// createBuffer creates a buffer sized for data and uploads data into it.
func (n *Node) createBuffer(label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := n.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	if err := n.queue.WriteBuffer(buf, 0, data); err != nil {
		n.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("gpu: write %s: %w", label, err)
	}
	return buf, nil
}

// Detach implements scene.Node.
func (n *Node) Detach(h scene.Handle) {
	n.mu.Lock()
	defer n.mu.Unlock()

	i := n.indexLocked(h)
	if i < 0 {
		return
	}
	n.objects[i].destroy(n.device)
	n.objects = append(n.objects[:i], n.objects[i+1:]...)
	n.log.Debug("gpu: detached", "handle", h.String())
}

// SetTransform replaces the clip-space transform, column-major, applied
// to every object, and rewrites the uniforms of attached objects.
func (n *Node) SetTransform(m [16]float32) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.transform = m
	for _, d := range n.objects {
		if d.uniformBuf == nil {
			continue
		}
		if err := n.queue.WriteBuffer(d.uniformBuf, 0, encodeUniforms(m, d.color)); err != nil {
			return fmt.Errorf("gpu: write uniforms %s: %w", d.handle, err)
		}
	}
	return nil
}

// Record draws every attached object into rp in attach order. Objects with
// no geometry are skipped.
func (n *Node) Record(rp hal.RenderPassEncoder) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for _, d := range n.objects {
		if d.indexCount == 0 {
			continue
		}
		rp.SetPipeline(d.pipeline)
		rp.SetBindGroup(0, d.bindGroup, nil)
		rp.SetVertexBuffer(0, d.vertBuf, 0)
		rp.SetIndexBuffer(d.indexBuf, gputypes.IndexFormatUint32, 0)
		rp.DrawIndexed(d.indexCount, 1, 0, 0, 0)
	}
}

// Len returns the number of attached objects.
func (n *Node) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.objects)
}

// Close detaches everything and releases the pipelines. Attach fails
// afterwards. Close is idempotent.
func (n *Node) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.closed {
		return
	}
	for _, d := range n.objects {
		d.destroy(n.device)
	}
	n.objects = nil
	n.pipelines.destroy()
	n.closed = true
}

func (n *Node) indexLocked(h scene.Handle) int {
	for i, d := range n.objects {
		if d.handle == h {
			return i
		}
	}
	return -1
}

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }
