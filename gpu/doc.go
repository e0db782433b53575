// Package gpu publishes text fills and outlines onto a wgpu HAL device.
//
// [Node] implements scene.Node: attaching a *mesh.Fill or *mesh.Outline
// uploads its vertices, indices and material uniforms and selects a render
// pipeline for its side and blending; detaching releases them. Record
// replays every attached object into a render pass in attach order.
//
// Pipelines are cached per (topology, cull mode, blending) and share one
// shader module, compiled from WGSL to SPIR-V with naga unless WithWGSL is
// given.
package gpu
