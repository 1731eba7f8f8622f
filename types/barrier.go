package types

// PipelineStage identifies a stage of the GPU pipeline that can be the
// source or destination of a synchronization dependency. Values are a
// bitset so a single barrier can name several stages at once, matching
// VkPipelineStageFlags2 semantics.
type PipelineStage uint32

const StageNone PipelineStage = 0

const (
	StageTopOfPipe PipelineStage = 1 << iota
	StageDrawIndirect
	StageVertexInput
	StageVertexShader
	StageFragmentShader
	StageEarlyFragmentTests
	StageLateFragmentTests
	StageColorAttachmentOutput
	StageComputeShader
	StageTransfer
	StageAccelerationStructureBuild
	StageRayTracingShader
	StageHost
	StageAllCommands
	StageBottomOfPipe
)

// Contains reports whether every stage in other is present in s.
func (s PipelineStage) Contains(other PipelineStage) bool { return s&other == other }

// Intersects reports whether s and other share at least one stage.
func (s PipelineStage) Intersects(other PipelineStage) bool { return s&other != 0 }

// Access identifies a kind of memory access performed by a pipeline stage.
// Like PipelineStage this is a bitset mirroring VkAccessFlags2; only write
// accesses ever need to be tracked as "unavailable" since reads are always
// immediately available to the issuing queue.
type Access uint32

const AccessNone Access = 0

const (
	AccessIndirectCommandRead Access = 1 << iota
	AccessIndexRead
	AccessVertexAttributeRead
	AccessUniformRead
	AccessShaderRead
	AccessShaderWrite
	AccessColorAttachmentRead
	AccessColorAttachmentWrite
	AccessDepthStencilAttachmentRead
	AccessDepthStencilAttachmentWrite
	AccessTransferRead
	AccessTransferWrite
	AccessHostRead
	AccessHostWrite
	AccessAccelerationStructureRead
	AccessAccelerationStructureWrite
)

// IsWrite reports whether any bit set in a names a write access.
func (a Access) IsWrite() bool { return a&writeAccessMask != 0 }

// WriteAccesses returns only the write-access bits set in a.
func (a Access) WriteAccesses() Access { return a & writeAccessMask }

const writeAccessMask = AccessShaderWrite | AccessColorAttachmentWrite |
	AccessDepthStencilAttachmentWrite | AccessTransferWrite | AccessHostWrite |
	AccessAccelerationStructureWrite

// Contains reports whether every access in other is present in a.
func (a Access) Contains(other Access) bool { return a&other == other }

// Intersects reports whether a and other share at least one access bit.
func (a Access) Intersects(other Access) bool { return a&other != 0 }

// Queue identifies one of the device's asynchronous queue families.
type Queue uint8

const (
	QueueNone Queue = iota
	QueueGraphics
	QueueCompute
	QueueTransfer
)

func (q Queue) String() string {
	switch q {
	case QueueGraphics:
		return "graphics"
	case QueueCompute:
		return "compute"
	case QueueTransfer:
		return "transfer"
	default:
		return "none"
	}
}

// ImageLayout mirrors the small subset of VkImageLayout the core needs to
// reason about for finalize layouts and transient-resource aliasing.
type ImageLayout uint8

const (
	ImageLayoutUndefined ImageLayout = iota
	ImageLayoutGeneral
	ImageLayoutColorAttachmentOptimal
	ImageLayoutDepthStencilAttachmentOptimal
	ImageLayoutShaderReadOnlyOptimal
	ImageLayoutTransferSrcOptimal
	ImageLayoutTransferDstOptimal
	ImageLayoutPresentSrc
)
