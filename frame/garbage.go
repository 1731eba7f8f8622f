// Package frame implements the FrameContext ring:
// per-frame command pools, the end-of-frame timeline value, the swapchain
// handshake binary semaphores, and the Garbages deferred-destroy list,
// following core/snatch.go's guarded-destruction pattern (a resource has
// one owner and an explicit deferred destroyer, never implicit RAII) and
// queue/semaphore.go's BinarySemaphore state machine for the per-frame
// image-available/render-finished handshake.
package frame

import (
	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/queue"
)

// DescriptorFree names one bindless slot to return to its kind's free list
// once this frame's garbage is drained - the mechanism that keeps a
// destroyed descriptor id unusable while a pipeline still in flight
// might reference it.
type DescriptorFree struct {
	Kind bindless.Kind
	ID   bindless.ID
}

// Garbages is the per-frame deferred-destroy list backing the
// FrameContext: every resource destroyed this frame is recorded here
// instead of being destroyed immediately, and is only actually released
// once this frame's slot comes back around max_frames_in_flight frames
// later - by which point the GPU is guaranteed to have finished using it
// (enforced by the timeline wait in Context.Begin).
//
// There is no native render-pass or framebuffer object to garbage-collect
// in this hal: RenderPassDescriptor is assembled fresh each frame from
// live TextureViews (a dynamic-rendering-style surface, see
// cache/renderpass.go's package doc), so the render-pass/framebuffer
// garbage entries have nothing to hold here - only the TextureViews
// themselves (tracked below) ever need destroying.
type Garbages struct {
	Buffers         []hal.Buffer
	Textures        []hal.Texture
	TextureViews    []hal.TextureView
	Samplers        []hal.Sampler
	ShaderModules   []hal.ShaderModule
	RenderPipelines []hal.RenderPipeline
	ComputePipelines []hal.ComputePipeline
	Fences          []hal.Fence
	AccelerationStructures []hal.AccelerationStructure
	Descriptors     []DescriptorFree
	Semaphores      []*queue.BinarySemaphore

	// Closures catches everything else with a bespoke teardown:
	// Registry.Remove calls, retired swapchain image views, and the old
	// swapchain handle on recreate.
	Closures []func()
}

// AddBuffer queues a buffer for destruction.
func (g *Garbages) AddBuffer(b hal.Buffer) {
	if b != nil {
		g.Buffers = append(g.Buffers, b)
	}
}

// AddTexture queues a texture for destruction.
func (g *Garbages) AddTexture(t hal.Texture) {
	if t != nil {
		g.Textures = append(g.Textures, t)
	}
}

// AddTextureView queues a texture view for destruction.
func (g *Garbages) AddTextureView(v hal.TextureView) {
	if v != nil {
		g.TextureViews = append(g.TextureViews, v)
	}
}

// AddSampler queues a sampler for destruction.
func (g *Garbages) AddSampler(s hal.Sampler) {
	if s != nil {
		g.Samplers = append(g.Samplers, s)
	}
}

// AddShaderModule queues a shader module for destruction.
func (g *Garbages) AddShaderModule(m hal.ShaderModule) {
	if m != nil {
		g.ShaderModules = append(g.ShaderModules, m)
	}
}

// AddRenderPipeline queues a render pipeline for destruction.
func (g *Garbages) AddRenderPipeline(p hal.RenderPipeline) {
	if p != nil {
		g.RenderPipelines = append(g.RenderPipelines, p)
	}
}

// AddComputePipeline queues a compute pipeline for destruction.
func (g *Garbages) AddComputePipeline(p hal.ComputePipeline) {
	if p != nil {
		g.ComputePipelines = append(g.ComputePipelines, p)
	}
}

// AddAccelerationStructure queues an acceleration structure for
// destruction. Its storage buffer is queued separately via AddBuffer.
func (g *Garbages) AddAccelerationStructure(as hal.AccelerationStructure) {
	if as != nil {
		g.AccelerationStructures = append(g.AccelerationStructures, as)
	}
}

// AddDescriptor queues a bindless slot to be freed.
func (g *Garbages) AddDescriptor(kind bindless.Kind, id bindless.ID) {
	if id != bindless.Null {
		g.Descriptors = append(g.Descriptors, DescriptorFree{Kind: kind, ID: id})
	}
}

// AddSemaphore queues a binary semaphore to be reset to INIT.
func (g *Garbages) AddSemaphore(s *queue.BinarySemaphore) {
	if s != nil {
		g.Semaphores = append(g.Semaphores, s)
	}
}

// Defer queues an arbitrary teardown closure, for garbage kinds with no
// dedicated field above.
func (g *Garbages) Defer(fn func()) {
	if fn != nil {
		g.Closures = append(g.Closures, fn)
	}
}

// Empty reports whether there is nothing queued - the zero-length drain
// boundary case is a no-op, checked here rather than relying on
// ranging over empty slices being free (it is, but this documents intent
// and gives Drain one clear short-circuit).
func (g *Garbages) Empty() bool {
	return len(g.Buffers) == 0 && len(g.Textures) == 0 && len(g.TextureViews) == 0 &&
		len(g.Samplers) == 0 && len(g.ShaderModules) == 0 && len(g.RenderPipelines) == 0 &&
		len(g.ComputePipelines) == 0 && len(g.Fences) == 0 &&
		len(g.AccelerationStructures) == 0 && len(g.Descriptors) == 0 &&
		len(g.Semaphores) == 0 && len(g.Closures) == 0
}

// Drain destroys everything queued this cycle and empties the lists.
// table is nil-safe: a nil table means descriptor frees are skipped
// (tests that never allocate descriptors need not construct one).
func (g *Garbages) Drain(device hal.Device, table DescriptorFreer) {
	if g.Empty() {
		return
	}

	// Structures go before buffers: an acceleration structure must be
	// destroyed before the storage buffer backing it.
	for _, as := range g.AccelerationStructures {
		device.DestroyAccelerationStructure(as)
	}
	for _, v := range g.TextureViews {
		device.DestroyTextureView(v)
	}
	for _, t := range g.Textures {
		device.DestroyTexture(t)
	}
	for _, b := range g.Buffers {
		device.DestroyBuffer(b)
	}
	for _, s := range g.Samplers {
		device.DestroySampler(s)
	}
	for _, m := range g.ShaderModules {
		device.DestroyShaderModule(m)
	}
	for _, p := range g.RenderPipelines {
		device.DestroyRenderPipeline(p)
	}
	for _, p := range g.ComputePipelines {
		device.DestroyComputePipeline(p)
	}
	for _, f := range g.Fences {
		device.DestroyFence(f)
	}
	if table != nil {
		for _, d := range g.Descriptors {
			table.Free(d.Kind, d.ID)
		}
	}
	for _, s := range g.Semaphores {
		_ = s.Reset()
	}
	for _, fn := range g.Closures {
		fn()
	}

	*g = Garbages{}
}

// DescriptorFreer is the narrow slice of bindless.Table's API Garbages
// needs, kept as an interface so this package does not import bindless's
// concrete Table type into its drain path unnecessarily (*bindless.Table
// satisfies it directly through its Free method, which dispatches to the
// five Destroy*Descriptor methods).
type DescriptorFreer interface {
	Free(kind bindless.Kind, id bindless.ID)
}
