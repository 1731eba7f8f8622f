package types

// BindlessLimits augments Limits with the bindless-descriptor-table
// capacities of the five bindless descriptor arrays and the device
// AS-scratch invariant. Kept as a separate struct rather than widening
// Limits so existing WebGPU-shaped limit negotiation is untouched.
type BindlessLimits struct {
	// StorageBufferDescriptors is set 0's capacity (512K example).
	StorageBufferDescriptors uint32
	// SamplerDescriptors is set 1's capacity (4K example).
	SamplerDescriptors uint32
	// SampledImageDescriptors is set 2's capacity (512K example).
	SampledImageDescriptors uint32
	// StorageImageDescriptors is set 3's capacity (512K example).
	StorageImageDescriptors uint32
	// AccelerationStructureDescriptors is set 4's capacity (4K example,
	// zero if the device lacks ray tracing support).
	AccelerationStructureDescriptors uint32
	// MinASScratchOffsetAlignment is the device-reported minimum alignment
	// for acceleration-structure build scratch buffers.
	MinASScratchOffsetAlignment uint64
	// PushConstantBytes is the size of the single push-constant range
	// shared by the bindless pipeline layout (128 bytes, all stages).
	PushConstantBytes uint32
}

// DefaultBindlessLimits returns the default descriptor-array capacities.
func DefaultBindlessLimits() BindlessLimits {
	return BindlessLimits{
		StorageBufferDescriptors:         512 * 1024,
		SamplerDescriptors:               4096,
		SampledImageDescriptors:          512 * 1024,
		StorageImageDescriptors:          512 * 1024,
		AccelerationStructureDescriptors: 4096,
		MinASScratchOffsetAlignment:      256,
		PushConstantBytes:                128,
	}
}
