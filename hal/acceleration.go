package hal

import "github.com/gogpu/bindless/types"

// AccelerationStructure is a ray-tracing acceleration structure (BLAS or
// TLAS). Its storage lives in a caller-supplied buffer; the structure
// itself is an opaque native object built on the GPU timeline via
// CommandEncoder.BuildAccelerationStructure.
type AccelerationStructure interface {
	Resource

	// NativeHandle returns the backend's raw handle
	// (VkAccelerationStructureKHR on Vulkan), used to feed the bindless
	// acceleration-structure descriptor array.
	NativeHandle() uint64

	// DeviceAddress returns the structure's GPU address. TLAS instance
	// buffers reference their BLASes by this address.
	DeviceAddress() uint64
}

// AccelerationStructureLevel distinguishes bottom-level (geometry) from
// top-level (instance) structures.
type AccelerationStructureLevel uint8

const (
	// AccelerationStructureBottomLevel holds triangle geometry.
	AccelerationStructureBottomLevel AccelerationStructureLevel = iota

	// AccelerationStructureTopLevel holds instances of bottom-level
	// structures.
	AccelerationStructureTopLevel
)

// AccelerationStructureTriangles describes the triangle geometry a
// bottom-level build consumes. The vertex and optional index buffers
// must carry BufferUsageASBuildInput (which maps to shader-device-address
// capable storage on Vulkan) and be reachable from the build queue.
type AccelerationStructureTriangles struct {
	// VertexBuffer holds the vertex positions.
	VertexBuffer Buffer

	// VertexOffset is the byte offset of the first vertex.
	VertexOffset uint64

	// VertexFormat is the position format (Float32x3 typical).
	VertexFormat types.VertexFormat

	// VertexStride is the byte stride between vertices.
	VertexStride uint64

	// VertexCount is the number of vertices addressable from VertexOffset.
	VertexCount uint32

	// IndexBuffer optionally holds the triangle indices; nil means
	// non-indexed geometry.
	IndexBuffer Buffer

	// IndexOffset is the byte offset of the first index.
	IndexOffset uint64

	// IndexFormat is the index type when IndexBuffer is set.
	IndexFormat types.IndexFormat

	// IndexCount is the number of indices (3 per triangle).
	IndexCount uint32
}

// AccelerationStructureInstances describes the instance array a top-level
// build consumes: a buffer of tightly packed native instance records
// (VkAccelerationStructureInstanceKHR on Vulkan, 64 bytes each), each
// referencing a bottom-level structure by its DeviceAddress.
type AccelerationStructureInstances struct {
	// Buffer holds the packed instance records.
	Buffer Buffer

	// Offset is the byte offset of the first instance.
	Offset uint64

	// Count is the number of instances.
	Count uint32
}

// AccelerationStructureBuildInput is the tagged geometry input of one
// build: exactly one of Triangles (bottom-level) or Instances (top-level)
// is set, matching Level.
type AccelerationStructureBuildInput struct {
	Level     AccelerationStructureLevel
	Triangles *AccelerationStructureTriangles
	Instances *AccelerationStructureInstances
}

// AccelerationStructureSizes reports the storage and scratch byte sizes a
// build input requires, queried before allocating the backing buffers.
type AccelerationStructureSizes struct {
	// AccelerationStructureSize is the byte size of the AS storage buffer
	// (BufferUsageASStorage).
	AccelerationStructureSize uint64

	// BuildScratchSize is the byte size of the scratch buffer
	// (BufferUsageASScratch) the build consumes. The allocation must obey
	// the device's minimum scratch alignment.
	BuildScratchSize uint64
}

// AccelerationStructureDescriptor describes the structure object itself:
// where in the storage buffer it lives and which level it is.
type AccelerationStructureDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Level selects bottom- or top-level.
	Level AccelerationStructureLevel

	// Buffer is the AS storage buffer (BufferUsageASStorage), owned by
	// the structure for its lifetime.
	Buffer Buffer

	// Offset is the byte offset of the structure within Buffer.
	Offset uint64

	// Size is the byte size reserved for the structure, at least
	// AccelerationStructureSizes.AccelerationStructureSize.
	Size uint64
}

// AccelerationStructureBuildDescriptor is one build command: write
// Destination from Input using Scratch as working memory. The caller
// synchronizes the input buffers (AS-build-input usage) before the build
// and the destination (AS-storage usage) after it.
type AccelerationStructureBuildDescriptor struct {
	// Destination is the structure to build.
	Destination AccelerationStructure

	// Input is the geometry or instance input.
	Input AccelerationStructureBuildInput

	// Scratch is the build scratch buffer (BufferUsageASScratch).
	Scratch Buffer

	// ScratchOffset is the byte offset into Scratch, aligned to the
	// device's minimum scratch alignment.
	ScratchOffset uint64
}
