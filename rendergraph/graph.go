package rendergraph

import (
	"github.com/gogpu/bindless/cachestate"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// Graph accumulates one frame's resource nodes and passes. It is built up
// front-to-back by the caller (typically a frame-level render function)
// and then handed to Compile once, producing a CompiledGraph ready to
// Execute against a frame.Context.
//
// A Graph is single-use: build it, Compile it, Execute the result, throw
// it away. The next frame starts a new Graph.
type Graph struct {
	buffers  []*bufferNode
	textures []*textureNode
	passes   []*Pass

	swapchainNode TextureNodeID
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{}
}

// ImportBuffer registers an already-live buffer as a node, for a pass to
// read or write without the graph managing its lifetime. state is the
// buffer's persistent cachestate.State (e.g. (*core.Buffer).CacheState()):
// passing the same pointer across frames is what lets a cross-queue wait
// hold for a resource that outlives any single graph. A nil state gets a
// private fresh one, for callers (tests) that do not track cache state
// externally.
func (g *Graph) ImportBuffer(label string, buf hal.Buffer, state *cachestate.State, usage types.BufferUsage, queueFlags types.QueueFlags) BufferNodeID {
	if state == nil {
		s := cachestate.New()
		state = &s
	}
	id := BufferNodeID(len(g.buffers) + 1)
	g.buffers = append(g.buffers, &bufferNode{
		id: id, label: label, imported: true, raw: buf,
		desc:       hal.BufferDescriptor{Label: label, Usage: usage},
		queueFlags: queueFlags,
		cache:      state,
	})
	return id
}

// CreateBuffer declares a transient buffer: the compiler creates the
// native buffer before its first use and may alias its storage with
// another transient buffer whose lifetime has already ended.
func (g *Graph) CreateBuffer(label string, desc hal.BufferDescriptor, queueFlags types.QueueFlags) BufferNodeID {
	id := BufferNodeID(len(g.buffers) + 1)
	desc.Label = label
	s := cachestate.New()
	g.buffers = append(g.buffers, &bufferNode{
		id: id, label: label, desc: desc, queueFlags: queueFlags, cache: &s,
	})
	return id
}

// ImportTexture registers an already-live texture as a node. view is the
// texture's default full-resource view (created once by the owner, not by
// the graph); passing nil has Compile create one and leak it to this
// graph's own lifetime instead, which is wasteful for a resource the
// caller will reuse next frame, so callers that import the same texture
// repeatedly should supply the view themselves.
func (g *Graph) ImportTexture(label string, tex hal.Texture, view hal.TextureView, state *cachestate.State, currentUsage types.TextureUsage, desc hal.TextureDescriptor, queueFlags types.QueueFlags) TextureNodeID {
	if state == nil {
		s := cachestate.New()
		state = &s
	}
	id := TextureNodeID(len(g.textures) + 1)
	desc.Label = label
	g.textures = append(g.textures, &textureNode{
		id: id, label: label, imported: true, raw: tex, view: view, desc: desc, queueFlags: queueFlags,
		cache: state, currentUsage: currentUsage,
	})
	return id
}

// CreateTexture declares a transient texture: created before its first
// use and eligible for aliasing with another transient of identical
// shape whose lifetime has already ended.
func (g *Graph) CreateTexture(label string, desc hal.TextureDescriptor, queueFlags types.QueueFlags) TextureNodeID {
	id := TextureNodeID(len(g.textures) + 1)
	desc.Label = label
	s := cachestate.New()
	g.textures = append(g.textures, &textureNode{
		id: id, label: label, desc: desc, queueFlags: queueFlags, cache: &s,
	})
	return id
}

// ImportSwapchainTexture registers the frame's acquired swapchain image as
// the graph's swapchain node. Its cache state always
// starts from CommitAcquireSwapchain (the image has undefined
// contents, ownership begins with graphics) rather than any
// previous-frame state, since a freshly acquired swapchain image is a
// distinct native image each time.
func (g *Graph) ImportSwapchainTexture(label string, tex hal.SurfaceTexture, format types.TextureFormat, width, height uint32) TextureNodeID {
	id := TextureNodeID(len(g.textures) + 1)
	s := cachestate.New()
	s.CommitAcquireSwapchain()
	g.textures = append(g.textures, &textureNode{
		id: id, label: label, imported: true, swapchain: true, raw: tex,
		desc: hal.TextureDescriptor{
			Label:  label,
			Size:   hal.Extent3D{Width: width, Height: height, DepthOrArrayLayers: 1},
			Format: format,
			Usage:  types.TextureUsageRenderAttachment,
		},
		queueFlags: types.QueueFlagGraphics,
		cache:      &s,
	})
	g.swapchainNode = id
	return id
}

// SwapchainNode returns the node registered via ImportSwapchainTexture, or
// InvalidTextureNode if this graph has none.
func (g *Graph) SwapchainNode() TextureNodeID { return g.swapchainNode }

func (g *Graph) nextPassID() PassID { return PassID(len(g.passes) + 1) }

func (g *Graph) recordBufferAccess(node BufferNodeID, pass PassID, access AccessKind) {
	n := g.buffers[node-1]
	n.accesses = append(n.accesses, bufferAccess{pass: pass, access: access})
}

func (g *Graph) recordTextureAccess(node TextureNodeID, pass PassID, access AccessKind) {
	n := g.textures[node-1]
	n.accesses = append(n.accesses, textureAccess{pass: pass, access: access})
}

// AddRasterPass appends a PassRaster to the graph and returns its ID.
func (g *Graph) AddRasterPass(desc RasterPassDesc) PassID {
	id := g.nextPassID()
	p := &Pass{
		id: id, name: desc.Name, kind: PassRaster, queue: types.QueueGraphics,
		bufferRefs: desc.Buffers, textureRefs: desc.Textures,
		colors: desc.Colors, depthStencil: desc.DepthStencil, execute: desc.Execute,
	}
	g.passes = append(g.passes, p)

	for _, c := range desc.Colors {
		g.recordTextureAccess(c.Node, id, AccessColorAttachmentWrite)
	}
	if desc.DepthStencil != nil {
		access := AccessDepthStencilWrite
		if desc.DepthStencil.DepthReadOnly {
			access = AccessDepthStencilRead
		}
		g.recordTextureAccess(desc.DepthStencil.Node, id, access)
	}
	for _, b := range desc.Buffers {
		g.recordBufferAccess(b.Node, id, b.Access)
	}
	for _, t := range desc.Textures {
		g.recordTextureAccess(t.Node, id, t.Access)
	}
	return id
}

// AddComputePass appends a PassCompute.
func (g *Graph) AddComputePass(desc ComputePassDesc) PassID {
	id := g.nextPassID()
	queue := types.QueueCompute
	if desc.OnGraphics {
		queue = types.QueueGraphics
	}
	p := &Pass{
		id: id, name: desc.Name, kind: PassCompute, queue: queue,
		bufferRefs: desc.Buffers, textureRefs: desc.Textures, execute: desc.Execute,
	}
	g.passes = append(g.passes, p)
	for _, b := range desc.Buffers {
		g.recordBufferAccess(b.Node, id, b.Access)
	}
	for _, t := range desc.Textures {
		g.recordTextureAccess(t.Node, id, t.Access)
	}
	return id
}

// AddTransferPass appends a PassTransfer.
func (g *Graph) AddTransferPass(desc TransferPassDesc) PassID {
	id := g.nextPassID()
	queue := desc.Queue
	if queue == types.QueueNone {
		queue = types.QueueTransfer
	}
	p := &Pass{
		id: id, name: desc.Name, kind: PassTransfer, queue: queue,
		bufferRefs: desc.Buffers, textureRefs: desc.Textures, execute: desc.Execute,
	}
	g.passes = append(g.passes, p)
	for _, b := range desc.Buffers {
		g.recordBufferAccess(b.Node, id, b.Access)
	}
	for _, t := range desc.Textures {
		g.recordTextureAccess(t.Node, id, t.Access)
	}
	return id
}

// AddRayTracePass appends a PassRayTrace.
func (g *Graph) AddRayTracePass(desc RayTracePassDesc) PassID {
	id := g.nextPassID()
	p := &Pass{
		id: id, name: desc.Name, kind: PassRayTrace, queue: types.QueueCompute,
		bufferRefs: desc.Buffers, textureRefs: desc.Textures, execute: desc.Execute,
	}
	g.passes = append(g.passes, p)
	for _, b := range desc.Buffers {
		g.recordBufferAccess(b.Node, id, b.Access)
	}
	for _, t := range desc.Textures {
		g.recordTextureAccess(t.Node, id, t.Access)
	}
	return id
}
