//go:build !nogpu

// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shapeplay"
)

// targetFormat is the off-screen color format. It matches the Pixmap byte
// order, so readback needs no swizzle.
const targetFormat = gputypes.TextureFormatRGBA8Unorm

// vertexStride is the byte stride of one x, y, z float32 vertex.
const vertexStride = 12

// uniformSize is the byte size of the Uniforms struct: mat4x4 + vec4.
const uniformSize = 64 + 16

// uniformAlignment is the dynamic offset alignment for uniform slots
// (minUniformBufferOffsetAlignment in the default limits).
const uniformAlignment = 256

// pipelineKey selects a render pipeline variant.
type pipelineKey struct {
	topology shapeplay.Topology
	replace  bool // no blending; used by Clear
}

// PipelineCache owns the shape shader, its layouts and the render pipeline
// variants built from them.
type PipelineCache struct {
	device hal.Device

	shader        hal.ShaderModule
	uniformLayout hal.BindGroupLayout
	pipeLayout    hal.PipelineLayout
	pipelines     map[pipelineKey]hal.RenderPipeline
}

// NewPipelineCache compiles the shape shader for variant and creates every
// pipeline variant.
func NewPipelineCache(device hal.Device, variant gputypes.Backend) (*PipelineCache, error) {
	pc := &PipelineCache{
		device:    device,
		pipelines: make(map[pipelineKey]hal.RenderPipeline),
	}
	if err := pc.createLayouts(variant); err != nil {
		pc.Close()
		return nil, err
	}
	for _, key := range []pipelineKey{
		{topology: shapeplay.TriangleList},
		{topology: shapeplay.TriangleStrip},
		{topology: shapeplay.TriangleStrip, replace: true},
	} {
		if err := pc.createPipeline(key); err != nil {
			pc.Close()
			return nil, err
		}
	}
	shapeplay.Logger().Debug("wgpu: pipelines created", "count", len(pc.pipelines))
	return pc, nil
}

func (pc *PipelineCache) createLayouts(variant gputypes.Backend) error {
	source, err := shaderSource(variant)
	if err != nil {
		return err
	}
	shader, err := pc.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  "shape_shader",
		Source: source,
	})
	if err != nil {
		return fmt.Errorf("compile shape shader: %w", err)
	}
	pc.shader = shader

	uniformLayout, err := pc.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "shape_uniform_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer: &gputypes.BufferBindingLayout{
					Type:             gputypes.BufferBindingTypeUniform,
					HasDynamicOffset: true,
					MinBindingSize:   uniformSize,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create shape uniform layout: %w", err)
	}
	pc.uniformLayout = uniformLayout

	pipeLayout, err := pc.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "shape_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{pc.uniformLayout},
	})
	if err != nil {
		return fmt.Errorf("create shape pipeline layout: %w", err)
	}
	pc.pipeLayout = pipeLayout
	return nil
}

func (pc *PipelineCache) createPipeline(key pipelineKey) error {
	topology := gputypes.PrimitiveTopologyTriangleList
	label := "shape_list_pipeline"
	if key.topology == shapeplay.TriangleStrip {
		topology = gputypes.PrimitiveTopologyTriangleStrip
		label = "shape_strip_pipeline"
	}
	blend := gputypes.BlendStateAlpha()
	if key.replace {
		blend = gputypes.BlendStateReplace()
		label += "_replace"
	}

	pipeline, err := pc.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  label,
		Layout: pc.pipeLayout,
		Vertex: hal.VertexState{
			Module:     pc.shader,
			EntryPoint: "vs_main",
			Buffers:    shapeVertexLayout(),
		},
		Fragment: &hal.FragmentState{
			Module:     pc.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{
				{
					Format:    targetFormat,
					Blend:     &blend,
					WriteMask: gputypes.ColorWriteMaskAll,
				},
			},
		},
		Primitive: gputypes.PrimitiveState{
			Topology: topology,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.DefaultMultisampleState(),
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", label, err)
	}
	pc.pipelines[key] = pipeline
	return nil
}

// Pipeline returns the pipeline for key. Unknown topologies use the
// triangle list pipeline.
func (pc *PipelineCache) Pipeline(key pipelineKey) hal.RenderPipeline {
	if p, ok := pc.pipelines[key]; ok {
		return p
	}
	return pc.pipelines[pipelineKey{topology: shapeplay.TriangleList}]
}

// UniformLayout returns the bind group layout of the uniform slot.
func (pc *PipelineCache) UniformLayout() hal.BindGroupLayout { return pc.uniformLayout }

// Close releases all pipeline resources in reverse creation order.
// Safe to call multiple times.
func (pc *PipelineCache) Close() {
	if pc.device == nil {
		return
	}
	for key, p := range pc.pipelines {
		pc.device.DestroyRenderPipeline(p)
		delete(pc.pipelines, key)
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

// shapeVertexLayout returns the vertex buffer layout of the shape catalog.
func shapeVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: vertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0}, // position
			},
		},
	}
}
