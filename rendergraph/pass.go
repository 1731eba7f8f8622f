package rendergraph

import (
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// PassID identifies a pass within one Graph, assigned in declaration order.
type PassID uint32

// PassKind is one of the four pass shapes: raster, compute, transfer,
// ray-trace. Each kind fixes
// which hal encoder a pass's Execute callback receives and which queue
// families it may run on.
type PassKind uint8

const (
	// PassRaster runs inside a render pass: color/depth attachments, draws.
	// Executes on the graphics queue.
	PassRaster PassKind = iota
	// PassCompute dispatches compute work. Executes on compute or graphics.
	PassCompute
	// PassTransfer issues raw copy/clear commands outside any shader stage.
	// Executes on transfer, graphics, or compute.
	PassTransfer
	// PassRayTrace dispatches ray-tracing work against acceleration
	// structures. Executes on compute.
	PassRayTrace
)

// BufferRef declares one buffer access a pass makes.
type BufferRef struct {
	Node   BufferNodeID
	Access AccessKind
}

// TextureRef declares one texture access a pass makes.
type TextureRef struct {
	Node   TextureNodeID
	Access AccessKind
}

// ColorAttachment declares one raster pass color target.
type ColorAttachment struct {
	Node  TextureNodeID
	Clear bool
	Color types.Color
}

// DepthStencilAttachment declares a raster pass's depth/stencil target.
type DepthStencilAttachment struct {
	Node          TextureNodeID
	ClearDepth    bool
	Depth         float32
	ClearStencil  bool
	Stencil       uint32
	DepthReadOnly bool
}

// ExecuteContext is handed to a pass's Execute callback. Exactly one of
// Render/Compute is non-nil, matching the pass's kind; Encoder is always
// set, for transfer passes (which record directly against it) and for
// passes that also need to issue copies alongside their typed encoder.
type ExecuteContext struct {
	Encoder  hal.CommandEncoder
	Render   hal.RenderPassEncoder
	Compute  hal.ComputePassEncoder
	Registry *Registry
}

// Pass is one compiled node of the graph: its kind, the resources it
// touches, and the callback that records its actual commands once the
// compiler has arranged the right encoder and resolved its resource
// references.
type Pass struct {
	id    PassID
	name  string
	kind  PassKind
	queue types.Queue

	bufferRefs  []BufferRef
	textureRefs []TextureRef

	colors       []ColorAttachment
	depthStencil *DepthStencilAttachment

	execute func(ExecuteContext) error
}

// RasterPassDesc describes a PassRaster to AddRasterPass.
type RasterPassDesc struct {
	Name         string
	Colors       []ColorAttachment
	DepthStencil *DepthStencilAttachment
	Buffers      []BufferRef
	Textures     []TextureRef
	Execute      func(ExecuteContext) error
}

// ComputePassDesc describes a PassCompute to AddComputePass.
type ComputePassDesc struct {
	Name    string
	OnGraphics bool // run on the graphics queue instead of compute
	Buffers []BufferRef
	Textures []TextureRef
	Execute func(ExecuteContext) error
}

// TransferPassDesc describes a PassTransfer to AddTransferPass.
type TransferPassDesc struct {
	Name    string
	Queue   types.Queue // QueueTransfer if zero-valued (QueueNone)
	Buffers []BufferRef
	Textures []TextureRef
	Execute func(ExecuteContext) error
}

// RayTracePassDesc describes a PassRayTrace to AddRayTracePass.
type RayTracePassDesc struct {
	Name    string
	Buffers []BufferRef
	Textures []TextureRef
	Execute func(ExecuteContext) error
}
