// Package shaderc declares the external shader-compiler collaborator from
// the core never compiles shader source itself, it only calls this
// narrow interface and wraps whatever SPIR-V-like blobs come back into a
// core.Program. A naga-backed Compiler (naga.go) is provided as the
// reference adapter built on the same WGSL parse-then-lower pipeline the
// Vulkan backend uses for shader modules.
package shaderc

import "github.com/gogpu/bindless/types"

// EntryPoint names one shader stage entry function to compile.
type EntryPoint struct {
	Stage types.ShaderStage
	Name  string
}

// Source is either a file path (searched across SearchPaths) or in-memory
// WGSL text; exactly one of Path or Text should be set.
type Source struct {
	Path        string
	SearchPaths []string
	Text        string
}

// CompiledEntryPoint is one compiled stage: its SPIR-V-like words and the
// stage it was compiled for.
type CompiledEntryPoint struct {
	Stage types.ShaderStage
	Name  string
	Code  []uint32
	// WorkgroupSize is populated for compute entry points.
	WorkgroupSize [3]uint32
}

// BindingHeader is the standard resource-binding header text prepended
// every Compiler implementation to prepend to user source before
// compilation: it declares the five bindless descriptor arrays this
// project's shaders reference by index (buffers[id], textures[id], ...)
// plus the get_buffer/get_texture_2d-style helper functions, so shader
// authors never hand-write descriptor-set/binding numbers.
const BindingHeader = `
// generated bindless resource-binding header - see shaderc.BindingHeader
@group(0) @binding(0) var<storage, read_write> buffers: array<array<u32>>;
@group(1) @binding(0) var bindless_samplers: binding_array<sampler>;
@group(2) @binding(0) var bindless_textures: binding_array<texture_2d<f32>>;
@group(3) @binding(0) var bindless_rw_textures: binding_array<texture_storage_2d<rgba8unorm, write>>;

fn get_texture_2d(id: u32) -> texture_2d<f32> {
	return bindless_textures[id];
}
`

// Compiler turns one or more sources plus a set of requested entry points
// into compiled SPIR-V-like blobs, one per entry point.
type Compiler interface {
	Compile(sources []Source, entryPoints []EntryPoint) ([]CompiledEntryPoint, error)
}

// Error wraps a compiler failure with the offending source's text so
// callers can report shader compile failures with useful context.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return "shaderc: " + e.Message + ": " + e.Cause.Error()
	}
	return "shaderc: " + e.Message
}

func (e *Error) Unwrap() error { return e.Cause }
