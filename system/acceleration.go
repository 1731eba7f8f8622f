// Acceleration-structure lifecycle: size query, storage/scratch
// allocation, native create, build recording on the compute queue, and
// registration in the resource pools. The callers' side of the contract
// is the same as buffers and textures: create through System, reference
// by generational ID, destroy through the frame ring's garbage.

package system

import (
	"fmt"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/core"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// buildAccelerationStructure is the shared half of CreateBlas/CreateTlas:
// query sizes, allocate storage and scratch, create the native structure,
// and record its build on the compute queue. The scratch buffer is
// retired through the current frame slot's garbage; it is dead once the
// build's submission completes.
func (s *System) buildAccelerationStructure(label string, input *hal.AccelerationStructureBuildInput) (hal.AccelerationStructure, core.BufferID, error) {
	sizes, err := s.device.AccelerationStructureSizes(input)
	if err != nil {
		return nil, core.NullBufferID(), fmt.Errorf("system: %q build sizes: %w", label, err)
	}

	storageDesc := types.BufferDescriptor{
		Label: label + "-as-storage",
		Size:  sizes.AccelerationStructureSize,
		Usage: types.BufferUsageASStorage,
	}
	storage, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: storageDesc.Label,
		Size:  storageDesc.Size,
		Usage: storageDesc.Usage,
	})
	if err != nil {
		return nil, core.NullBufferID(), fmt.Errorf("system: %q storage: %w", label, err)
	}

	scratchSize := alignUp(sizes.BuildScratchSize, s.scratchAlignment())
	scratch, err := s.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label + "-as-scratch",
		Size:  scratchSize,
		Usage: types.BufferUsageASScratch,
	})
	if err != nil {
		s.device.DestroyBuffer(storage)
		return nil, core.NullBufferID(), fmt.Errorf("system: %q scratch: %w", label, err)
	}

	as, err := s.device.CreateAccelerationStructure(&hal.AccelerationStructureDescriptor{
		Label:  label,
		Level:  input.Level,
		Buffer: storage,
		Size:   sizes.AccelerationStructureSize,
	})
	if err != nil {
		s.device.DestroyBuffer(scratch)
		s.device.DestroyBuffer(storage)
		return nil, core.NullBufferID(), fmt.Errorf("system: %q create: %w", label, err)
	}

	enc, err := s.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label + "-as-build"})
	if err == nil {
		err = enc.BeginEncoding(label + "-as-build")
	}
	if err != nil {
		s.device.DestroyAccelerationStructure(as)
		s.device.DestroyBuffer(scratch)
		s.device.DestroyBuffer(storage)
		return nil, core.NullBufferID(), fmt.Errorf("system: %q build encoder: %w", label, err)
	}
	enc.BuildAccelerationStructure(&hal.AccelerationStructureBuildDescriptor{
		Destination: as,
		Input:       *input,
		Scratch:     scratch,
	})
	cmd, err := enc.EndEncoding()
	if err != nil {
		s.device.DestroyAccelerationStructure(as)
		s.device.DestroyBuffer(scratch)
		s.device.DestroyBuffer(storage)
		return nil, core.NullBufferID(), fmt.Errorf("system: %q build recording: %w", label, err)
	}
	s.compute.Submit(cmd)

	// The scratch only has to survive until the build's submission has
	// executed; the ring's timeline wait guarantees that by drain time.
	s.ring.Current().Garbage.AddBuffer(scratch)

	storageID := s.registry.Buffers.Insert(core.NewBuffer(storage, &storageDesc,
		types.MemoryPreference{}, types.QueueFlagCompute|types.QueueFlagGraphics))
	return as, storageID, nil
}

// CreateBlas builds a bottom-level acceleration structure from triangle
// geometry and registers it, optionally as a member of group (pass
// core.NullBlasGroupID() for ungrouped). The build runs on the compute
// queue; the structure is consumable once that queue's work for this
// frame is waited on.
func (s *System) CreateBlas(label string, input *hal.AccelerationStructureBuildInput, group core.BlasGroupID) (core.BlasID, error) {
	if input == nil || input.Level != hal.AccelerationStructureBottomLevel {
		return core.NullBlasID(), fmt.Errorf("system: CreateBlas needs a bottom-level build input")
	}

	as, storageID, err := s.buildAccelerationStructure(label, input)
	if err != nil {
		return core.NullBlasID(), err
	}

	return s.registry.CreateBlas(core.Blas{
		Label:   label,
		Storage: storageID,
		Raw:     as,
		Group:   group,
	}), nil
}

// CreateTlas builds a top-level acceleration structure over an instance
// buffer, registers it, and binds its bindless acceleration-structure
// descriptor slot.
func (s *System) CreateTlas(label string, input *hal.AccelerationStructureBuildInput) (core.TlasID, error) {
	if input == nil || input.Level != hal.AccelerationStructureTopLevel {
		return core.NullTlasID(), fmt.Errorf("system: CreateTlas needs a top-level build input")
	}

	as, storageID, err := s.buildAccelerationStructure(label, input)
	if err != nil {
		return core.NullTlasID(), err
	}

	t := core.Tlas{
		Label:   label,
		Storage: storageID,
		Raw:     as,
	}
	slot, err := s.bindless.CreateAccelerationStructureDescriptor(as.NativeHandle())
	if err != nil {
		// No descriptor capacity (or no ray-tracing support): the TLAS is
		// still usable through explicit binding, so record Null and go on.
		slot = bindless.Null
	}
	t.SetDescriptor(slot)

	return s.registry.Tlas.Insert(t), nil
}

// DestroyBlas unregisters a BLAS and retires its native structure and
// storage buffer through the current frame slot's garbage.
func (s *System) DestroyBlas(id core.BlasID) {
	b, ok := s.registry.Blas.Get(id)
	if !ok {
		return
	}
	s.registry.DestroyBlas(id)
	s.retireASStorage(b.Raw, b.Storage)
}

// DestroyTlas unregisters a TLAS, frees its descriptor slot, and retires
// its native structure and storage buffer.
func (s *System) DestroyTlas(id core.TlasID) {
	t, ok := s.registry.Tlas.Remove(id)
	if !ok {
		return
	}
	garbage := s.ring.Current().Garbage
	garbage.AddDescriptor(bindless.KindAccelerationStructure, t.Descriptor())
	s.retireASStorage(t.Raw, t.Storage)
}

// retireASStorage queues the structure and its storage buffer for
// deferred destruction.
func (s *System) retireASStorage(as hal.AccelerationStructure, storage core.BufferID) {
	garbage := s.ring.Current().Garbage
	garbage.AddAccelerationStructure(as)
	if buf, ok := s.registry.Buffers.Remove(storage); ok {
		exclusive := s.coreDev.SnatchLock().Write()
		raw := buf.Snatch(exclusive)
		exclusive.Release()
		garbage.AddBuffer(raw)
	}
}

// scratchAlignment returns the device minimum AS scratch alignment from
// the configured bindless limits.
func (s *System) scratchAlignment() uint64 {
	if s.cfg != nil && s.cfg.BindlessLimits.MinASScratchOffsetAlignment != 0 {
		return s.cfg.BindlessLimits.MinASScratchOffsetAlignment
	}
	return types.DefaultBindlessLimits().MinASScratchOffsetAlignment
}

func alignUp(v, alignment uint64) uint64 {
	if alignment == 0 {
		return v
	}
	return (v + alignment - 1) &^ (alignment - 1)
}
