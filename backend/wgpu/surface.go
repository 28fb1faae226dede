//go:build !nogpu

package wgpu

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"unsafe"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/shapeplay"
)

// rowAlignment is the bytes-per-row alignment of texture to buffer copies.
const rowAlignment = 256

// clearQuad covers all of normalized device space as a triangle strip.
var clearQuad = []float32{
	-1, -1, 0,
	1, -1, 0,
	-1, 1, 0,
	1, 1, 0,
}

type vertexBuffer struct {
	owner *Surface
	label string
	buf   hal.Buffer
	count int
}

func (b *vertexBuffer) Label() string    { return b.label }
func (b *vertexBuffer) VertexCount() int { return b.count }

// drawCmd is one recorded draw call. Uniforms live in slot of the frame's
// uniform buffer.
type drawCmd struct {
	key      pipelineKey
	buf      hal.Buffer
	slot     int
	first    uint32
	count    uint32
	viewport image.Rectangle
}

// Surface records draw calls for a frame and replays them in a single
// render pass on an off-screen texture at EndFrame.
type Surface struct {
	dev       *gpuDevice
	pipelines *PipelineCache

	width, height int
	texture       hal.Texture
	view          hal.TextureView
	staging       hal.Buffer

	uniforms    hal.Buffer
	uniformCap  int // slots
	uniformBind hal.BindGroup
	quad        hal.Buffer

	// Per-frame state.
	viewport image.Rectangle
	bound    *vertexBuffer
	color    shapeplay.RGBA
	vp       shapeplay.Matrix
	model    shapeplay.Matrix
	cmds     []drawCmd
	data     []byte

	live   map[*vertexBuffer]struct{}
	closed bool
}

var _ shapeplay.Surface = (*Surface)(nil)

// newSurface creates the pipelines and an off-screen target on dev.
func newSurface(dev *gpuDevice, width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	pipelines, err := NewPipelineCache(dev.device, dev.variant)
	if err != nil {
		return nil, err
	}
	s := &Surface{
		dev:       dev,
		pipelines: pipelines,
		color:     shapeplay.White,
		vp:        shapeplay.Identity(),
		model:     shapeplay.Identity(),
		live:      make(map[*vertexBuffer]struct{}),
	}
	if err := s.createTarget(width, height); err != nil {
		s.release()
		return nil, err
	}
	if err := s.ensureUniforms(64); err != nil {
		s.release()
		return nil, err
	}
	quad, err := s.upload("clear_quad", clearQuad)
	if err != nil {
		s.release()
		return nil, err
	}
	s.quad = quad
	s.viewport = image.Rect(0, 0, width, height)
	return s, nil
}

// alignedRow returns the padded bytes per row of a width-pixel readback.
func alignedRow(width int) int {
	return (width*4 + rowAlignment - 1) / rowAlignment * rowAlignment
}

func (s *Surface) createTarget(width, height int) error {
	device := s.dev.device
	tex, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         "shapeplay_target",
		Size:          hal.Extent3D{Width: uint32(width), Height: uint32(height), DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        targetFormat,
		Usage:         gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("create target texture: %w", err)
	}
	view, err := device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "shapeplay_target_view",
		Format:        targetFormat,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("create target view: %w", err)
	}
	staging, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "shapeplay_readback",
		Size:  uint64(alignedRow(width) * height),
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		device.DestroyTextureView(view)
		device.DestroyTexture(tex)
		return fmt.Errorf("create readback buffer: %w", err)
	}
	s.texture, s.view, s.staging = tex, view, staging
	s.width, s.height = width, height
	return nil
}

func (s *Surface) destroyTarget() {
	device := s.dev.device
	if s.staging != nil {
		device.DestroyBuffer(s.staging)
		s.staging = nil
	}
	if s.view != nil {
		device.DestroyTextureView(s.view)
		s.view = nil
	}
	if s.texture != nil {
		device.DestroyTexture(s.texture)
		s.texture = nil
	}
}

// ensureUniforms grows the uniform buffer to hold at least slots draws.
func (s *Surface) ensureUniforms(slots int) error {
	if slots <= s.uniformCap {
		return nil
	}
	capacity := max(slots, s.uniformCap*2)
	device := s.dev.device
	buf, err := device.CreateBuffer(&hal.BufferDescriptor{
		Label: "shapeplay_uniforms",
		Size:  uint64(capacity * uniformAlignment),
		Usage: gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create uniform buffer: %w", err)
	}
	bind, err := device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "shapeplay_uniform_bind",
		Layout: s.pipelines.UniformLayout(),
		Entries: []gputypes.BindGroupEntry{
			{
				Binding: 0,
				Resource: gputypes.BufferBinding{
					Buffer: buf.NativeHandle(),
					Size:   uniformSize,
				},
			},
		},
	})
	if err != nil {
		device.DestroyBuffer(buf)
		return fmt.Errorf("create uniform bind group: %w", err)
	}
	s.destroyUniforms()
	s.uniforms, s.uniformBind, s.uniformCap = buf, bind, capacity
	return nil
}

func (s *Surface) destroyUniforms() {
	device := s.dev.device
	if s.uniformBind != nil {
		device.DestroyBindGroup(s.uniformBind)
		s.uniformBind = nil
	}
	if s.uniforms != nil {
		device.DestroyBuffer(s.uniforms)
		s.uniforms = nil
	}
	s.uniformCap = 0
}

// upload creates a vertex buffer holding vertices as little-endian float32.
func (s *Surface) upload(label string, vertices []float32) (hal.Buffer, error) {
	size := len(vertices) * 4
	buf, err := s.dev.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(max(size, 4)),
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create vertex buffer %s: %w", label, err)
	}
	if size == 0 {
		return buf, nil
	}
	data := make([]byte, size)
	for i, v := range vertices {
		binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
	}
	if err := s.dev.queue.WriteBuffer(buf, 0, data); err != nil {
		s.dev.device.DestroyBuffer(buf)
		return nil, fmt.Errorf("upload vertex buffer %s: %w", label, err)
	}
	return buf, nil
}

// CreateVertexBuffer uploads vertices into a GPU vertex buffer.
func (s *Surface) CreateVertexBuffer(label string, vertices []float32) (shapeplay.VertexBuffer, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if len(vertices)%3 != 0 {
		return nil, fmt.Errorf("wgpu: %s: %d floats is not a whole number of vertices", label, len(vertices))
	}
	buf, err := s.upload(label, vertices)
	if err != nil {
		return nil, err
	}
	b := &vertexBuffer{owner: s, label: label, buf: buf, count: len(vertices) / 3}
	s.live[b] = struct{}{}
	shapeplay.Logger().Debug("wgpu: vertex buffer created", "label", label, "vertices", b.count)
	return b, nil
}

func (s *Surface) buffer(vb shapeplay.VertexBuffer) *vertexBuffer {
	b, ok := vb.(*vertexBuffer)
	if !ok || b.owner != s {
		panic(ErrForeignBuffer)
	}
	return b
}

// DestroyVertexBuffer releases the GPU buffer behind vb. Draws already
// recorded in the current frame must not reference it.
func (s *Surface) DestroyVertexBuffer(vb shapeplay.VertexBuffer) {
	b := s.buffer(vb)
	if _, ok := s.live[b]; !ok {
		return
	}
	delete(s.live, b)
	if s.bound == b {
		s.bound = nil
	}
	s.dev.device.DestroyBuffer(b.buf)
}

// BindVertexBuffer selects vb as the source of later DrawArrays calls.
func (s *Surface) BindVertexBuffer(vb shapeplay.VertexBuffer) { s.bound = s.buffer(vb) }

// SetColor sets the flat fill color of later draws.
func (s *Surface) SetColor(c shapeplay.RGBA) { s.color = c }

// SetViewProjection sets the world-to-clip transform.
func (s *Surface) SetViewProjection(m shapeplay.Matrix) { s.vp = m }

// SetModel sets the object-to-world transform.
func (s *Surface) SetModel(m shapeplay.Matrix) { s.model = m }

// SetViewport restricts later draws and clears to r, in pixels.
func (s *Surface) SetViewport(r image.Rectangle) { s.viewport = r.Canon() }

// Clear draws a full-viewport quad with blending disabled.
func (s *Surface) Clear(c shapeplay.RGBA) {
	s.record(drawCmd{
		key:   pipelineKey{topology: shapeplay.TriangleStrip, replace: true},
		buf:   s.quad,
		count: 4,
	}, shapeplay.Identity(), c)
}

// DrawArrays records count vertices from first of the bound buffer.
func (s *Surface) DrawArrays(t shapeplay.Topology, first, count int) {
	b := s.bound
	if b == nil || first < 0 || count < 0 || first+count > b.count {
		panic(shapeplay.ErrVertexRange)
	}
	if count < 3 {
		return
	}
	s.record(drawCmd{
		key:   pipelineKey{topology: t},
		buf:   b.buf,
		first: uint32(first),
		count: uint32(count),
	}, s.vp.Multiply(s.model), s.color)
}

func (s *Surface) record(cmd drawCmd, mvp shapeplay.Matrix, c shapeplay.RGBA) {
	cmd.slot = len(s.cmds)
	cmd.viewport = s.viewport
	s.data = appendUniforms(s.data, mvp, c)
	s.cmds = append(s.cmds, cmd)
}

// appendUniforms appends one uniform slot: the column-major mvp followed by
// the color, padded to uniformAlignment.
func appendUniforms(data []byte, mvp shapeplay.Matrix, c shapeplay.RGBA) []byte {
	var slot [uniformAlignment]byte
	for i, v := range mvp.Mat4() {
		binary.LittleEndian.PutUint32(slot[i*4:], math.Float32bits(v))
	}
	for i, v := range c.Float32() {
		binary.LittleEndian.PutUint32(slot[64+i*4:], math.Float32bits(v))
	}
	return append(data, slot[:]...)
}

// Size returns the target dimensions.
func (s *Surface) Size() (int, int) { return s.width, s.height }

// Resize recreates the off-screen target. Call it between frames.
func (s *Surface) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if s.closed {
		return ErrClosed
	}
	if width == s.width && height == s.height {
		return nil
	}
	s.destroyTarget()
	if err := s.createTarget(width, height); err != nil {
		return err
	}
	s.viewport = image.Rect(0, 0, width, height)
	return nil
}

// Info returns the GPU the surface renders on.
func (s *Surface) Info() GPUInfo { return s.dev.info }

// BeginFrame drops the draws recorded so far and resets the viewport.
func (s *Surface) BeginFrame() error {
	if s.closed {
		return ErrClosed
	}
	s.cmds = s.cmds[:0]
	s.data = s.data[:0]
	s.viewport = image.Rect(0, 0, s.width, s.height)
	return nil
}

// EndFrame submits the recorded draws and waits for the GPU. If dst is
// non-nil the target is read back into it.
func (s *Surface) EndFrame(dst *shapeplay.Pixmap) error {
	if s.closed {
		return ErrClosed
	}
	defer func() {
		s.cmds = s.cmds[:0]
		s.data = s.data[:0]
	}()

	if err := s.ensureUniforms(len(s.cmds)); err != nil {
		return err
	}
	if len(s.data) > 0 {
		if err := s.dev.queue.WriteBuffer(s.uniforms, 0, s.data); err != nil {
			return fmt.Errorf("write uniforms: %w", err)
		}
	}

	device := s.dev.device
	encoder, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "shapeplay_frame"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	defer encoder.Destroy()
	if err := encoder.BeginEncoding("shapeplay_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	s.encodePass(encoder)
	if dst != nil {
		s.encodeReadback(encoder)
	}

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer device.FreeCommandBuffer(cmdBuf)
	if _, err := s.dev.queue.Submit([]hal.CommandBuffer{cmdBuf}); err != nil {
		return fmt.Errorf("submit: %w", err)
	}
	if err := device.WaitIdle(); err != nil {
		return fmt.Errorf("wait idle: %w", err)
	}

	if dst == nil {
		return nil
	}
	return s.readback(dst)
}

func (s *Surface) encodePass(encoder hal.CommandEncoder) {
	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "shapeplay_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       s.view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{R: 0, G: 0, B: 0, A: 0},
		}},
	})

	var (
		pipeline hal.RenderPipeline
		buf      hal.Buffer
		viewport image.Rectangle
	)
	for _, cmd := range s.cmds {
		if cmd.viewport != viewport {
			viewport = cmd.viewport
			pass.SetViewport(float32(viewport.Min.X), float32(viewport.Min.Y),
				float32(viewport.Dx()), float32(viewport.Dy()), 0, 1)
		}
		if p := s.pipelines.Pipeline(cmd.key); p != pipeline {
			pipeline = p
			pass.SetPipeline(p)
		}
		if cmd.buf != buf {
			buf = cmd.buf
			pass.SetVertexBuffer(0, buf, 0)
		}
		pass.SetBindGroup(0, s.uniformBind, []uint32{uint32(cmd.slot * uniformAlignment)})
		pass.Draw(cmd.count, 1, cmd.first, 0)
	}
	pass.End()
}

func (s *Surface) encodeReadback(encoder hal.CommandEncoder) {
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: s.texture,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(s.texture, s.staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{
			BytesPerRow:  uint32(alignedRow(s.width)),
			RowsPerImage: uint32(s.height),
		},
		TextureBase: hal.ImageCopyTexture{
			Texture: s.texture,
			Aspect:  gputypes.TextureAspectAll,
		},
		Size: hal.Extent3D{Width: uint32(s.width), Height: uint32(s.height), DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: s.texture,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})
}

// readback copies the staging buffer into dst, dropping row padding.
func (s *Surface) readback(dst *shapeplay.Pixmap) error {
	stride := alignedRow(s.width)
	size := stride * s.height
	mapping, err := s.dev.device.MapBuffer(s.staging, 0, uint64(size))
	if err != nil {
		return fmt.Errorf("map readback buffer: %w", err)
	}
	defer func() { _ = s.dev.device.UnmapBuffer(s.staging) }()
	if mapping.Ptr == nil {
		return fmt.Errorf("map readback buffer: nil mapping")
	}
	src := unsafe.Slice((*byte)(mapping.Ptr), size)

	dst.Resize(s.width, s.height)
	out := dst.Data()
	row := s.width * 4
	for y := range s.height {
		copy(out[y*row:(y+1)*row], src[y*stride:y*stride+row])
	}
	return nil
}

func (s *Surface) release() {
	for b := range s.live {
		s.dev.device.DestroyBuffer(b.buf)
	}
	clear(s.live)
	s.bound = nil
	if s.quad != nil {
		s.dev.device.DestroyBuffer(s.quad)
		s.quad = nil
	}
	s.destroyUniforms()
	s.destroyTarget()
	if s.pipelines != nil {
		s.pipelines.Close()
		s.pipelines = nil
	}
}

// Close waits for the GPU and releases every surface resource, including
// vertex buffers that were never destroyed. Close is idempotent.
func (s *Surface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	_ = s.dev.device.WaitIdle()
	s.release()
	return nil
}
