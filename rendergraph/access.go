// Package rendergraph implements the render graph compiler described in
// a one-frame DAG of passes over buffer/texture resource nodes,
// compiled into a dependency-ordered, barrier-synchronized command stream
// and submitted per queue family. It relies on cachestate.State for
// the stage/access availability algebra and on
// initializer/finalizer.go's FlushTexture for the pattern of turning a
// usage change into a recorded hal.TextureBarrier/hal.BufferBarrier -
// extended here from "once, at initializer end" to "once per pass, for
// every node the pass touches."
package rendergraph

import "github.com/gogpu/bindless/types"

// AccessKind names one way a pass can touch a resource node. Each kind
// carries its own pipeline stage, memory access, and buffer/texture usage
// bit, so the compiler never has to special-case a pass kind when
// synthesizing barriers - it only ever looks at the AccessKind recorded on
// each node's access history.
type AccessKind uint8

const (
	AccessNone AccessKind = iota

	// AccessIndirectRead reads DrawIndirect/DispatchIndirect arguments.
	AccessIndirectRead
	// AccessVertexRead reads a vertex buffer.
	AccessVertexRead
	// AccessIndexRead reads an index buffer.
	AccessIndexRead
	// AccessUniformRead reads a uniform buffer.
	AccessUniformRead

	// AccessShaderSampledRead samples a texture in a shader.
	AccessShaderSampledRead
	// AccessShaderStorageRead reads a storage buffer or storage texture in
	// a shader.
	AccessShaderStorageRead
	// AccessShaderStorageWrite writes a storage buffer or storage texture
	// in a shader.
	AccessShaderStorageWrite

	// AccessColorAttachmentWrite writes a color render target.
	AccessColorAttachmentWrite
	// AccessDepthStencilWrite writes a depth/stencil render target.
	AccessDepthStencilWrite
	// AccessDepthStencilRead reads a depth/stencil attachment read-only
	// (depth test with DepthReadOnly/StencilReadOnly).
	AccessDepthStencilRead
	// AccessInputAttachmentRead reads an attachment written by an earlier
	// pass within the same folded render pass.
	AccessInputAttachmentRead

	// AccessTransferSrc is the source side of a copy.
	AccessTransferSrc
	// AccessTransferDst is the destination side of a copy, or a clear.
	AccessTransferDst

	// AccessAccelerationStructureRead reads a built acceleration structure
	// (as a ray-trace shader binding, or as a BLAS feeding a TLAS build).
	AccessAccelerationStructureRead
	// AccessAccelerationStructureWrite is the build/update output of an
	// acceleration structure.
	AccessAccelerationStructureWrite
)

// IsWrite reports whether the access can mutate the resource's contents.
func (k AccessKind) IsWrite() bool {
	switch k {
	case AccessShaderStorageWrite, AccessColorAttachmentWrite, AccessDepthStencilWrite,
		AccessTransferDst, AccessAccelerationStructureWrite:
		return true
	default:
		return false
	}
}

// Stage returns the pipeline stage(s) cachestate should track this access
// under.
func (k AccessKind) Stage() types.PipelineStage {
	switch k {
	case AccessIndirectRead:
		return types.StageDrawIndirect
	case AccessVertexRead:
		return types.StageVertexInput
	case AccessIndexRead:
		return types.StageVertexInput
	case AccessUniformRead, AccessShaderSampledRead, AccessShaderStorageRead, AccessShaderStorageWrite:
		return types.StageVertexShader | types.StageFragmentShader | types.StageComputeShader | types.StageRayTracingShader
	case AccessColorAttachmentWrite:
		return types.StageColorAttachmentOutput
	case AccessDepthStencilWrite, AccessDepthStencilRead:
		return types.StageEarlyFragmentTests | types.StageLateFragmentTests
	case AccessInputAttachmentRead:
		return types.StageFragmentShader
	case AccessTransferSrc, AccessTransferDst:
		return types.StageTransfer
	case AccessAccelerationStructureRead:
		return types.StageRayTracingShader | types.StageAccelerationStructureBuild
	case AccessAccelerationStructureWrite:
		return types.StageAccelerationStructureBuild
	default:
		return types.StageNone
	}
}

// Access returns the memory access bit(s) cachestate should track this
// access under.
func (k AccessKind) Access() types.Access {
	switch k {
	case AccessIndirectRead:
		return types.AccessIndirectCommandRead
	case AccessVertexRead:
		return types.AccessVertexAttributeRead
	case AccessIndexRead:
		return types.AccessIndexRead
	case AccessUniformRead:
		return types.AccessUniformRead
	case AccessShaderSampledRead:
		return types.AccessShaderRead
	case AccessShaderStorageRead, AccessInputAttachmentRead:
		return types.AccessShaderRead
	case AccessShaderStorageWrite:
		return types.AccessShaderWrite
	case AccessColorAttachmentWrite:
		return types.AccessColorAttachmentWrite
	case AccessDepthStencilWrite:
		return types.AccessDepthStencilAttachmentWrite
	case AccessDepthStencilRead:
		return types.AccessDepthStencilAttachmentRead
	case AccessTransferSrc:
		return types.AccessTransferRead
	case AccessTransferDst:
		return types.AccessTransferWrite
	case AccessAccelerationStructureRead:
		return types.AccessAccelerationStructureRead
	case AccessAccelerationStructureWrite:
		return types.AccessAccelerationStructureWrite
	default:
		return types.AccessNone
	}
}

// BufferUsage returns the types.BufferUsage bit this access implies, for
// buffer nodes.
func (k AccessKind) BufferUsage() types.BufferUsage {
	switch k {
	case AccessIndirectRead:
		return types.BufferUsageIndirect
	case AccessVertexRead:
		return types.BufferUsageVertex
	case AccessIndexRead:
		return types.BufferUsageIndex
	case AccessUniformRead:
		return types.BufferUsageUniform
	case AccessShaderStorageRead, AccessShaderStorageWrite:
		return types.BufferUsageStorage
	case AccessTransferSrc:
		return types.BufferUsageCopySrc
	case AccessTransferDst:
		return types.BufferUsageCopyDst
	case AccessAccelerationStructureRead:
		return types.BufferUsageASStorage
	case AccessAccelerationStructureWrite:
		return types.BufferUsageASStorage
	default:
		return 0
	}
}

// TextureUsage returns the types.TextureUsage bit this access implies, for
// texture nodes.
func (k AccessKind) TextureUsage() types.TextureUsage {
	switch k {
	case AccessShaderSampledRead:
		return types.TextureUsageTextureBinding
	case AccessShaderStorageRead, AccessShaderStorageWrite:
		return types.TextureUsageStorageBinding
	case AccessColorAttachmentWrite:
		return types.TextureUsageRenderAttachment
	case AccessDepthStencilWrite, AccessDepthStencilRead:
		return types.TextureUsageDepthStencilAttachment
	case AccessInputAttachmentRead:
		return types.TextureUsageInputAttachment
	case AccessTransferSrc:
		return types.TextureUsageCopySrc
	case AccessTransferDst:
		return types.TextureUsageCopyDst
	default:
		return 0
	}
}
