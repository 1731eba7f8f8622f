package types

// Bindless- and ray-tracing-oriented buffer usage bits, layered on top of
// BufferUsage. Kept in a separate block (continuing past BufferUsage's
// iota range) so existing WebGPU-style usage bits are untouched.
const (
	// BufferUsageASBuildInput marks a buffer as an acceleration-structure
	// build input (vertex/index/instance data fed to vkCmdBuildAccelerationStructures).
	BufferUsageASBuildInput BufferUsage = 1 << (iota + 10)
	// BufferUsageASStorage marks a buffer as the backing storage of a BLAS/TLAS.
	BufferUsageASStorage
	// BufferUsageASScratch marks a buffer as acceleration-structure build
	// scratch space; such buffers must be aligned to the device's minimum
	// scratch alignment (Limits.MinASScratchOffsetAlignment).
	BufferUsageASScratch
	// BufferUsageShaderBindingTable marks a buffer as SBT storage for a
	// ray-tracing pipeline's handle groups.
	BufferUsageShaderBindingTable
)

// QueueFlags records which queue families may access a buffer or texture,
// driving the sharing mode (EXCLUSIVE when exactly one bit is set,
// CONCURRENT otherwise).
type QueueFlags uint8

const (
	QueueFlagGraphics QueueFlags = 1 << iota
	QueueFlagCompute
	QueueFlagTransfer
)

// Count returns the number of queue families named by f.
func (f QueueFlags) Count() int {
	n := 0
	for b := QueueFlags(1); b != 0 && b <= f; b <<= 1 {
		if f&b != 0 {
			n++
		}
	}
	return n
}

// Concurrent reports whether more than one queue family is named, i.e.
// the resource must use VK_SHARING_MODE_CONCURRENT.
func (f QueueFlags) Concurrent() bool { return f.Count() > 1 }

// MemoryProperty mirrors the host/device memory property flags consulted
// by the resource initializer to decide between a direct memcpy and a
// staged upload.
type MemoryProperty uint8

const (
	MemoryPropertyDeviceLocal MemoryProperty = 1 << iota
	MemoryPropertyHostVisible
	MemoryPropertyHostCoherent
	MemoryPropertyHostCached
)

// MemoryPreference expresses the required and preferred memory properties
// for a buffer or texture allocation, mirroring VMA's usage-hint model.
type MemoryPreference struct {
	Required MemoryProperty
	Preferred MemoryProperty
}
