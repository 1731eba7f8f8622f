package rendergraph

import (
	"github.com/gogpu/bindless/cachestate"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// BufferNodeID identifies a buffer resource node within one Graph.
type BufferNodeID uint32

// TextureNodeID identifies a texture resource node within one Graph.
type TextureNodeID uint32

// InvalidBufferNode and InvalidTextureNode are the zero IDs; no real node
// is ever assigned them.
const (
	InvalidBufferNode  BufferNodeID  = 0
	InvalidTextureNode TextureNodeID = 0
)

// bufferAccess is one entry in a buffer node's access history: pass p
// touched the node this way. The compiler walks these in order to derive
// dependency edges and barrier placement.
type bufferAccess struct {
	pass   PassID
	access AccessKind
}

// textureAccess mirrors bufferAccess for texture nodes.
type textureAccess struct {
	pass   PassID
	access AccessKind
}

// bufferNode is one buffer resource tracked by the graph: either imported
// (caller already owns a live hal.Buffer) or transient (the compiler
// creates and retires it within this graph's lifetime).
//
// cache is a pointer rather than a value so an imported node can share the
// same cachestate.State the owning core.Buffer carries across frames (the
// availability/visibility barrier algebra is meaningless if it resets every time a
// long-lived resource is merely referenced by a new graph); a transient
// node gets a fresh State private to this one Compile call, since its
// whole lifetime is this frame.
type bufferNode struct {
	id           BufferNodeID
	label        string
	imported     bool
	raw          hal.Buffer // set when imported, or once Compile allocates a transient
	desc         hal.BufferDescriptor
	queueFlags   types.QueueFlags
	accesses     []bufferAccess
	cache        *cachestate.State
	currentUsage types.BufferUsage
}

// textureNode mirrors bufferNode for textures, plus the swapchain marker:
// the graph's swapchain node imports the frame's acquired
// surface texture and implicitly waits on image-available at first use.
type textureNode struct {
	id           TextureNodeID
	label        string
	imported     bool
	swapchain    bool
	raw          hal.Texture     // set when imported or swapchain, or once Compile allocates a transient
	view         hal.TextureView // default full-resource view; imported may supply one, Compile creates one otherwise
	desc         hal.TextureDescriptor
	queueFlags   types.QueueFlags
	accesses     []textureAccess
	cache        *cachestate.State
	currentUsage types.TextureUsage
}

// Registry resolves node IDs to the physical hal objects the compiler
// bound them to, handed to each pass's Execute callback so pass bodies
// never see the graph's bookkeeping - only the resources they declared.
type Registry struct {
	buffers      map[BufferNodeID]hal.Buffer
	textures     map[TextureNodeID]hal.Texture
	textureViews map[TextureNodeID]hal.TextureView
}

// Buffer resolves a buffer node to its physical buffer. Panics if id was
// never registered - a programmer error, since every node a pass
// references was validated to exist at compile time.
func (r *Registry) Buffer(id BufferNodeID) hal.Buffer {
	buf, ok := r.buffers[id]
	if !ok {
		panic("rendergraph: buffer node not bound in registry")
	}
	return buf
}

// Texture resolves a texture node to its physical texture.
func (r *Registry) Texture(id TextureNodeID) hal.Texture {
	tex, ok := r.textures[id]
	if !ok {
		panic("rendergraph: texture node not bound in registry")
	}
	return tex
}

// TextureView resolves a texture node to the default view the compiler
// created for it (or that the importer supplied).
func (r *Registry) TextureView(id TextureNodeID) hal.TextureView {
	view, ok := r.textureViews[id]
	if !ok {
		panic("rendergraph: texture node has no bound view")
	}
	return view
}
