package bindless

import (
	"fmt"
	"sync"

	"github.com/gogpu/bindless/types"
)

// PushConstantBytes is the size of the single push-constant range shared by
// the bindless pipeline layout, visible to every stage.
const PushConstantBytes = 128

// Writer performs the native descriptor-set write for one allocated slot.
// The vulkan hal package supplies the concrete implementation (a thin
// wrapper over vkUpdateDescriptorSets with VK_DESCRIPTOR_UPDATE_AFTER_BIND);
// with a nil Writer the Table allocates slots and skips the native write,
// which is how headless tests use it.
type Writer interface {
	WriteStorageBuffer(slot ID, buffer uintptr, offset, size uint64)
	WriteSampler(slot ID, sampler uintptr)
	WriteSampledImage(slot ID, view uintptr, layout types.ImageLayout)
	WriteStorageImage(slot ID, view uintptr, layout types.ImageLayout)
	WriteAccelerationStructure(slot ID, handle uint64)
}

// Table owns the five per-kind allocators and the native writer used to
// populate update-after-bind descriptors. One Table is created per device
// and lives for the device's lifetime.
type Table struct {
	mu      sync.RWMutex
	indexes [kindCount]*Index
	writer  Writer
}

// Limits configures the fixed capacity of each of the five sets.
type Limits struct {
	StorageBuffers         uint32
	Samplers               uint32
	SampledImages          uint32
	StorageImages          uint32
	AccelerationStructures uint32
}

// LimitsFromBindless converts types.BindlessLimits (the adapter-reported
// capacities) into a bindless.Limits.
func LimitsFromBindless(l types.BindlessLimits) Limits {
	return Limits{
		StorageBuffers:         l.StorageBufferDescriptors,
		Samplers:               l.SamplerDescriptors,
		SampledImages:          l.SampledImageDescriptors,
		StorageImages:          l.StorageImageDescriptors,
		AccelerationStructures: l.AccelerationStructureDescriptors,
	}
}

// NewTable creates a table with one free-list allocator per kind.
func NewTable(limits Limits, writer Writer) *Table {
	t := &Table{writer: writer}
	t.indexes[KindStorageBuffer] = NewIndex(limits.StorageBuffers)
	t.indexes[KindSampler] = NewIndex(limits.Samplers)
	t.indexes[KindSampledImage] = NewIndex(limits.SampledImages)
	t.indexes[KindStorageImage] = NewIndex(limits.StorageImages)
	t.indexes[KindAccelerationStructure] = NewIndex(limits.AccelerationStructures)
	return t
}

// CreateStorageBufferDescriptor allocates a slot and writes it.
func (t *Table) CreateStorageBufferDescriptor(buffer uintptr, offset, size uint64) (ID, error) {
	id, err := t.indexes[KindStorageBuffer].Alloc()
	if err != nil {
		return Null, fmt.Errorf("bindless: storage buffer descriptor: %w", err)
	}
	if t.writer != nil {
		t.writer.WriteStorageBuffer(id, buffer, offset, size)
	}
	return id, nil
}

// DestroyStorageBufferDescriptor returns the slot to the free list. The
// caller (the frame's Garbages drain) must ensure max_frames_in_flight
// frames have passed since the last use of id before calling this.
func (t *Table) DestroyStorageBufferDescriptor(id ID) {
	t.indexes[KindStorageBuffer].Free(id)
}

// CreateSamplerDescriptor allocates a slot and writes it.
func (t *Table) CreateSamplerDescriptor(sampler uintptr) (ID, error) {
	id, err := t.indexes[KindSampler].Alloc()
	if err != nil {
		return Null, fmt.Errorf("bindless: sampler descriptor: %w", err)
	}
	if t.writer != nil {
		t.writer.WriteSampler(id, sampler)
	}
	return id, nil
}

// DestroySamplerDescriptor returns the slot to the free list.
func (t *Table) DestroySamplerDescriptor(id ID) {
	t.indexes[KindSampler].Free(id)
}

// CreateSampledImageDescriptor allocates a slot and writes it.
func (t *Table) CreateSampledImageDescriptor(view uintptr, layout types.ImageLayout) (ID, error) {
	id, err := t.indexes[KindSampledImage].Alloc()
	if err != nil {
		return Null, fmt.Errorf("bindless: sampled image descriptor: %w", err)
	}
	if t.writer != nil {
		t.writer.WriteSampledImage(id, view, layout)
	}
	return id, nil
}

// DestroySampledImageDescriptor returns the slot to the free list.
func (t *Table) DestroySampledImageDescriptor(id ID) {
	t.indexes[KindSampledImage].Free(id)
}

// CreateStorageImageDescriptor allocates a slot and writes it.
func (t *Table) CreateStorageImageDescriptor(view uintptr, layout types.ImageLayout) (ID, error) {
	id, err := t.indexes[KindStorageImage].Alloc()
	if err != nil {
		return Null, fmt.Errorf("bindless: storage image descriptor: %w", err)
	}
	if t.writer != nil {
		t.writer.WriteStorageImage(id, view, layout)
	}
	return id, nil
}

// DestroyStorageImageDescriptor returns the slot to the free list.
func (t *Table) DestroyStorageImageDescriptor(id ID) {
	t.indexes[KindStorageImage].Free(id)
}

// CreateAccelerationStructureDescriptor allocates a slot and writes it.
// Capacity is zero on adapters without acceleration-structure support, so
// Alloc returns ErrDescriptorSetFull immediately rather than a feature error
// - callers are expected to have already rejected device creation when
// FeatureAccelerationStructure is missing.
func (t *Table) CreateAccelerationStructureDescriptor(handle uint64) (ID, error) {
	id, err := t.indexes[KindAccelerationStructure].Alloc()
	if err != nil {
		return Null, fmt.Errorf("bindless: acceleration structure descriptor: %w", err)
	}
	if t.writer != nil {
		t.writer.WriteAccelerationStructure(id, handle)
	}
	return id, nil
}

// DestroyAccelerationStructureDescriptor returns the slot to the free list.
func (t *Table) DestroyAccelerationStructureDescriptor(id ID) {
	t.indexes[KindAccelerationStructure].Free(id)
}

// Stats returns the allocator statistics for one kind.
func (t *Table) Stats(kind Kind) Stats {
	return t.indexes[kind].Stats()
}

// Free returns one slot of the given kind to its free list. It is the
// single-entry-point form of the five Destroy*Descriptor methods above,
// used by frame.Garbages to drain a batch of deferred descriptor frees
// without switching on kind itself.
func (t *Table) Free(kind Kind, id ID) {
	if id == Null {
		return
	}
	t.indexes[kind].Free(id)
}
