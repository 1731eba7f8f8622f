package cache

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// BlendKey is a comparable stand-in for *types.BlendState (a pointer, and so
// not usable as a map-key field directly): Enabled false means no blending,
// matching a nil Blend in types.ColorTargetState.
type BlendKey struct {
	Enabled bool
	Color   types.BlendComponent
	Alpha   types.BlendComponent
}

// ColorTargetKey is the comparable form of types.ColorTargetState.
type ColorTargetKey struct {
	Format    types.TextureFormat
	Blend     BlendKey
	WriteMask types.ColorWriteMask
}

// DepthStencilKey is the comparable form of hal.DepthStencilState, present
// only when the pipeline has a depth-stencil attachment.
type DepthStencilKey struct {
	Enabled           bool
	Format            types.TextureFormat
	DepthWriteEnabled bool
	DepthCompare      types.CompareFunction
	StencilFront      hal.StencilFaceState
	StencilBack       hal.StencilFaceState
}

// GraphicsKey identifies one cached graphics PipelineState: the program
// supplying vertex/fragment shaders, the fixed-function state that is not
// already implied by the render pass (blend, depth test, rasterizer), and
// the render-pass-shaped part (attachment formats/sample count) that the
// pipeline must be compiled against.
type GraphicsKey struct {
	Program     uint64 // ProgramID.Raw(), kept as RawID to stay comparable without importing core
	Primitive   types.PrimitiveState
	Multisample types.MultisampleState
	DepthStencil DepthStencilKey
	Colors      [8]ColorTargetKey
	NColors     int
	Pass        RenderPassKey
}

// ComputeKey identifies one cached compute PipelineState: just the program,
// since compute pipelines carry no render-pass-shaped fixed-function state.
type ComputeKey struct {
	Program uint64
}

// GraphicsBuilder and ComputeBuilder construct the native pipeline object
// for a cache miss.
// Implemented by the owning system so this package stays free of a direct
// dependency on core's Registry/Program lookup.
type GraphicsBuilder func(GraphicsKey) (hal.RenderPipeline, error)
type ComputeBuilder func(ComputeKey) (hal.ComputePipeline, error)

// PipelineStateCache memoizes native pipeline objects by key, mirroring
// RenderPassCache's lazily-computed, retained-until-invalidated shape for
// the pipeline-state cache. Two independent maps (graphics/compute) since
// the key shapes differ and a Program is one or the other, never both.
type PipelineStateCache struct {
	mu       sync.RWMutex
	graphics map[GraphicsKey]hal.RenderPipeline
	compute  map[ComputeKey]hal.ComputePipeline

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewPipelineStateCache creates an empty cache.
func NewPipelineStateCache() *PipelineStateCache {
	return &PipelineStateCache{
		graphics: make(map[GraphicsKey]hal.RenderPipeline),
		compute:  make(map[ComputeKey]hal.ComputePipeline),
	}
}

// GetOrCreateGraphics returns the cached pipeline for key, building it via
// build on a miss.
func (c *PipelineStateCache) GetOrCreateGraphics(key GraphicsKey, build GraphicsBuilder) (hal.RenderPipeline, error) {
	c.mu.RLock()
	if p, ok := c.graphics[key]; ok {
		c.mu.RUnlock()
		c.hits.Add(1)
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.graphics[key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	p, err := build(key)
	if err != nil {
		return nil, err
	}
	c.graphics[key] = p
	c.misses.Add(1)
	return p, nil
}

// GetOrCreateCompute returns the cached pipeline for key, building it via
// build on a miss.
func (c *PipelineStateCache) GetOrCreateCompute(key ComputeKey, build ComputeBuilder) (hal.ComputePipeline, error) {
	c.mu.RLock()
	if p, ok := c.compute[key]; ok {
		c.mu.RUnlock()
		c.hits.Add(1)
		return p, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if p, ok := c.compute[key]; ok {
		c.hits.Add(1)
		return p, nil
	}
	p, err := build(key)
	if err != nil {
		return nil, err
	}
	c.compute[key] = p
	c.misses.Add(1)
	return p, nil
}

// Stats reports cache hit/miss counts across both maps.
func (c *PipelineStateCache) Stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}

// Invalidate drops every cached pipeline without destroying the underlying
// native objects; callers own calling hal.Device.DestroyRenderPipeline /
// DestroyComputePipeline on whatever Invalidate returns before dropping them.
func (c *PipelineStateCache) Invalidate() (graphics []hal.RenderPipeline, compute []hal.ComputePipeline) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, p := range c.graphics {
		graphics = append(graphics, p)
	}
	for _, p := range c.compute {
		compute = append(compute, p)
	}
	c.graphics = make(map[GraphicsKey]hal.RenderPipeline)
	c.compute = make(map[ComputeKey]hal.ComputePipeline)
	return graphics, compute
}
