package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/textmesh/mesh"
	"github.com/gogpu/textmesh/scene"
	"github.com/gogpu/wgpu/hal"
)

// pipelineKey selects one render pipeline variant.
type pipelineKey struct {
	kind  scene.Kind
	cull  gputypes.CullMode
	blend bool
}

func keyFor(kind scene.Kind, m mesh.Material) pipelineKey {
	return pipelineKey{kind: kind, cull: m.Side.CullMode(), blend: m.Transparent()}
}

// pipelineCache owns the shader module, the layouts and every pipeline
// variant created so far. Resources are created on first use.
type pipelineCache struct {
	device hal.Device
	format gputypes.TextureFormat
	wgsl   bool

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipelines     map[pipelineKey]hal.RenderPipeline
}

func (pc *pipelineCache) ensureBase() error {
	if pc.shader != nil && pc.uniformLayout != nil && pc.pipeLayout != nil {
		return nil
	}

	src, err := shaderSource(pc.wgsl)
	if err != nil {
		return err
	}
	shader, err := pc.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "text_shader",
		Source: src,
	})
	if err != nil {
		return fmt.Errorf("gpu: create text shader: %w", err)
	}
	pc.shader = shader

	uniformLayout, err := pc.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "text_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		pc.destroy()
		return fmt.Errorf("gpu: create text uniform layout: %w", err)
	}
	pc.uniformLayout = uniformLayout

	pipeLayout, err := pc.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "text_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{pc.uniformLayout},
	})
	if err != nil {
		pc.destroy()
		return fmt.Errorf("gpu: create text pipeline layout: %w", err)
	}
	pc.pipeLayout = pipeLayout
	return nil
}

// get returns the pipeline for key, creating it if needed.
func (pc *pipelineCache) get(key pipelineKey) (hal.RenderPipeline, error) {
	if p, ok := pc.pipelines[key]; ok {
		return p, nil
	}
	if err := pc.ensureBase(); err != nil {
		return nil, err
	}

	primitive := gputypes.PrimitiveState{
		Topology:  gputypes.PrimitiveTopologyTriangleList,
		FrontFace: gputypes.FrontFaceCCW,
		CullMode:  key.cull,
	}
	stride := uint64(mesh.FillVertexStride)
	label := "text_fill_pipeline"
	if key.kind == scene.KindLines {
		format := gputypes.IndexFormatUint32
		primitive = gputypes.PrimitiveState{
			Topology:         gputypes.PrimitiveTopologyLineStrip,
			StripIndexFormat: &format,
			CullMode:         gputypes.CullModeNone,
		}
		stride = lineVertexStride
		label = "text_outline_pipeline"
	}

	target := gputypes.ColorTargetState{
		Format:    pc.format,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
	if key.blend {
		blend := gputypes.BlendStateAlpha()
		target.Blend = &blend
	}

	pipeline, err := pc.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: pc.pipeLayout,
		Vertex: hal.VertexState{
			Module:     pc.shader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: stride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     pc.shader,
			EntryPoint: "fs_main",
			Targets:    []gputypes.ColorTargetState{target},
		},
		Primitive: primitive,
		Multisample: gputypes.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("gpu: create %s: %w", label, err)
	}
	if pc.pipelines == nil {
		pc.pipelines = make(map[pipelineKey]hal.RenderPipeline)
	}
	pc.pipelines[key] = pipeline
	return pipeline, nil
}

// destroy releases all pipeline resources in reverse creation order.
func (pc *pipelineCache) destroy() {
	if pc.device == nil {
		return
	}
	for k, p := range pc.pipelines {
		pc.device.DestroyRenderPipeline(p)
		delete(pc.pipelines, k)
	}
	if pc.pipeLayout != nil {
		pc.device.DestroyPipelineLayout(pc.pipeLayout)
		pc.pipeLayout = nil
	}
	if pc.uniformLayout != nil {
		pc.device.DestroyBindGroupLayout(pc.uniformLayout)
		pc.uniformLayout = nil
	}
	if pc.shader != nil {
		pc.device.DestroyShaderModule(pc.shader)
		pc.shader = nil
	}
}
