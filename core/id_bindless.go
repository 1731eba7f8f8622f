package core

// Marker types for the bindless resource kinds: buffers, textures,
// samplers, acceleration structures, shader/program/pipeline objects,
// and shader binding tables - one generational-ID scheme
// (index | epoch<<32) across every resource kind the render graph
// addresses.

type bufferMarker struct{}

func (bufferMarker) marker() {}

type textureMarker struct{}

func (textureMarker) marker() {}

type samplerMarker struct{}

func (samplerMarker) marker() {}

type blasMarker struct{}

func (blasMarker) marker() {}

type blasGroupMarker struct{}

func (blasGroupMarker) marker() {}

type tlasMarker struct{}

func (tlasMarker) marker() {}

type shaderMarker struct{}

func (shaderMarker) marker() {}

type programMarker struct{}

func (programMarker) marker() {}

type pipelineStateMarker struct{}

func (pipelineStateMarker) marker() {}

type shaderTableMarker struct{}

func (shaderTableMarker) marker() {}

// BufferID identifies a pooled device buffer.
type BufferID = ID[bufferMarker]

// TextureID identifies a pooled device texture.
type TextureID = ID[textureMarker]

// SamplerID identifies a pooled sampler.
type SamplerID = ID[samplerMarker]

// BlasID identifies a bottom-level acceleration structure.
type BlasID = ID[blasMarker]

// BlasGroupID identifies a named collection of BLAS memberships.
type BlasGroupID = ID[blasGroupMarker]

// TlasID identifies a top-level acceleration structure.
type TlasID = ID[tlasMarker]

// ShaderID identifies a single compiled shader stage.
type ShaderID = ID[shaderMarker]

// ProgramID identifies a set of shaders sharing the bindless pipeline layout.
type ProgramID = ID[programMarker]

// PipelineStateID identifies a cached graphics or compute pipeline object.
type PipelineStateID = ID[pipelineStateMarker]

// ShaderTableID identifies a ray-tracing shader binding table.
type ShaderTableID = ID[shaderTableMarker]

// Per-kind null constructors, for callers outside this package that
// cannot name the unexported marker types NullID is parameterized over.

// NullBufferID returns the "no buffer" sentinel.
func NullBufferID() BufferID { return NullID[bufferMarker]() }

// NullTextureID returns the "no texture" sentinel.
func NullTextureID() TextureID { return NullID[textureMarker]() }

// NullSamplerID returns the "no sampler" sentinel.
func NullSamplerID() SamplerID { return NullID[samplerMarker]() }

// NullBlasID returns the "no BLAS" sentinel.
func NullBlasID() BlasID { return NullID[blasMarker]() }

// NullBlasGroupID returns the "ungrouped" sentinel CreateBlas expects.
func NullBlasGroupID() BlasGroupID { return NullID[blasGroupMarker]() }

// NullTlasID returns the "no TLAS" sentinel.
func NullTlasID() TlasID { return NullID[tlasMarker]() }

// NullID is the distinguished all-ones value reserved to mean "no resource",
// matching every handle kind's zero value being a valid epoch-0 index-0 ID
// would otherwise collide with "the first allocated resource"; Null instead
// zips the max index and max epoch, a combination Storage never produces.
func NullID[T Marker]() ID[T] {
	return FromRaw[T](Zip(^Index(0), ^Epoch(0)))
}
