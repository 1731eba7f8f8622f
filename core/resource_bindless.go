package core

import (
	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// Blas wraps a device buffer holding bottom-level acceleration-structure
// storage, the native structure built over it
// (hal.Device.CreateAccelerationStructure +
// hal.CommandEncoder.BuildAccelerationStructure), and the group it
// belongs to.
type Blas struct {
	Label   string
	Storage BufferID                  // AS-storage buffer, owned by the AS
	Raw     hal.AccelerationStructure // the built native structure
	Group   BlasGroupID               // NullID[blasGroupMarker]() means ungrouped
}

// Handle returns the native handle fed to shaders and instance records.
func (b *Blas) Handle() uint64 {
	if b.Raw == nil {
		return 0
	}
	return b.Raw.NativeHandle()
}

// BlasGroup is a named collection of Blas memberships that can be
// synchronized as a unit (e.g. one TLAS rebuild after many BLAS rebuilds).
type BlasGroup struct {
	Label   string
	Members []BlasID
}

// IndexOf returns the membership index of id within the group, or -1.
func (g *BlasGroup) IndexOf(id BlasID) int {
	for i, m := range g.Members {
		if m == id {
			return i
		}
	}
	return -1
}

// Tlas is a top-level acceleration structure: same shape as Blas plus a
// bindless descriptor slot (the acceleration-structure descriptor kind).
type Tlas struct {
	Label      string
	Storage    BufferID
	Raw        hal.AccelerationStructure
	descriptor bindless.ID
}

// Handle returns the native handle written into the bindless
// acceleration-structure descriptor array.
func (t *Tlas) Handle() uint64 {
	if t.Raw == nil {
		return 0
	}
	return t.Raw.NativeHandle()
}

// Descriptor returns the bindless acceleration-structure slot bound to this TLAS.
func (t *Tlas) Descriptor() bindless.ID {
	return t.descriptor
}

// SetDescriptor records the bindless slot assigned to this TLAS.
func (t *Tlas) SetDescriptor(id bindless.ID) {
	t.descriptor = id
}

// Shader is a single compiled shader stage: a native module handle plus
// its entry-point name, produced by the shaderc collaborator.
type Shader struct {
	Stage      types.ShaderStage
	Module     hal.ShaderModule
	EntryPoint string
}

// Program is a set of shaders sharing the single global bindless pipeline
// layout (five descriptor sets plus one 128-byte push-constant range,
// see bindless.PushConstantBytes). Every Program in the system uses the
// same hal.PipelineLayout, created once at system init.
type Program struct {
	Label   string
	Shaders []ShaderID
	Layout  hal.PipelineLayout
}

// ShaderOf returns the shader stage with the given type, or the zero
// Shader and false if the program has none.
func (p *Program) ShaderOf(stage types.ShaderStage, shaders *Storage[Shader, shaderMarker]) (Shader, bool) {
	for _, id := range p.Shaders {
		if s, ok := shaders.Get(id); ok && s.Stage == stage {
			return s, true
		}
	}
	return Shader{}, false
}

// PipelineKind distinguishes a graphics from a compute pipeline state,
// the tagged-union discriminant for the pipeline-state key.
type PipelineKind uint8

const (
	PipelineKindGraphics PipelineKind = iota
	PipelineKindCompute
)

// PipelineState is the cached native pipeline object behind a
// PipelineStateID, built against the shared bindless pipeline layout.
// The cache package owns the hash-key -> PipelineStateID mapping; this
// struct is just the pool payload.
type PipelineState struct {
	Label   string
	Kind    PipelineKind
	Program ProgramID

	render  hal.RenderPipeline
	compute hal.ComputePipeline
}

// Raw returns the underlying native pipeline object, whichever kind it is.
func (p *PipelineState) Raw() any {
	if p.Kind == PipelineKindCompute {
		return p.compute
	}
	return p.render
}

// SetRender stores the native render pipeline for a graphics PipelineState.
func (p *PipelineState) SetRender(pipeline hal.RenderPipeline) { p.render = pipeline }

// SetCompute stores the native compute pipeline for a compute PipelineState.
func (p *PipelineState) SetCompute(pipeline hal.ComputePipeline) { p.compute = pipeline }

// ShaderTableRegion is one strided-device-address region of a shader
// binding table (raygen, miss, hit, or callable).
type ShaderTableRegion struct {
	Buffer      BufferID
	Offset      uint64
	Stride      uint64
	Size        uint64
}

// ShaderTable binds a ray-tracing pipeline with handle-group buffers for
// raygen/miss/hit/callable groups and their precomputed address regions.
type ShaderTable struct {
	Label    string
	Pipeline PipelineStateID
	RayGen   ShaderTableRegion
	Miss     ShaderTableRegion
	HitGroup ShaderTableRegion
	Callable ShaderTableRegion
}
