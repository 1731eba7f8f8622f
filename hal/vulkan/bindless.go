// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/hal/vulkan/vk"
	"github.com/gogpu/bindless/types"
)

// BindlessTable is the native half of the bindless descriptor system:
// five descriptor sets (storage buffer, sampler, sampled image, storage
// image, acceleration structure), each a single unbounded runtime array
// with update-after-bind | partially-bound | update-unused-while-pending
// binding flags, allocated once from an update-after-bind pool and bound
// unchanged for every pipeline. It implements bindless.Writer; the
// slot-allocation half lives in package bindless.
type BindlessTable struct {
	device         *Device
	layouts        [5]vk.DescriptorSetLayout
	pool           vk.DescriptorPool
	sets           [5]vk.DescriptorSet
	pipelineLayout vk.PipelineLayout
}

// bindlessSet pairs one set index with its descriptor type and capacity.
type bindlessSet struct {
	descType vk.DescriptorType
	capacity uint32
}

// NewBindlessTable creates the five set layouts, the shared
// update-after-bind descriptor pool, the five descriptor sets, and the
// single pipeline layout (five sets plus one 128-byte push-constant range
// visible to all stages) every pipeline in the system compiles against.
// A zero acceleration-structure capacity skips set 4's pool share but
// still creates the (empty) layout so set indices stay stable.
func NewBindlessTable(device *Device, limits types.BindlessLimits) (*BindlessTable, error) {
	t := &BindlessTable{device: device}

	sets := [5]bindlessSet{
		{vk.DescriptorTypeStorageBuffer, limits.StorageBufferDescriptors},
		{vk.DescriptorTypeSampler, limits.SamplerDescriptors},
		{vk.DescriptorTypeSampledImage, limits.SampledImageDescriptors},
		{vk.DescriptorTypeStorageImage, limits.StorageImageDescriptors},
		{vk.DescriptorTypeAccelerationStructureKhr, limits.AccelerationStructureDescriptors},
	}

	bindingFlags := vk.DescriptorBindingUpdateAfterBindBit |
		vk.DescriptorBindingUpdateUnusedWhilePendingBit |
		vk.DescriptorBindingPartiallyBoundBit

	for i, set := range sets {
		binding := vk.DescriptorSetLayoutBinding{
			Binding:         0,
			DescriptorType:  set.descType,
			DescriptorCount: set.capacity,
			StageFlags:      vk.ShaderStageAll,
		}
		flagsInfo := vk.DescriptorSetLayoutBindingFlagsCreateInfo{
			SType:         vk.StructureTypeDescriptorSetLayoutBindingFlagsCreateInfo,
			BindingCount:  1,
			PBindingFlags: &bindingFlags,
		}
		createInfo := vk.DescriptorSetLayoutCreateInfo{
			SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
			PNext:        (*uintptr)(unsafe.Pointer(&flagsInfo)),
			Flags:        vk.DescriptorSetLayoutCreateUpdateAfterBindPoolBit,
			BindingCount: 1,
			PBindings:    &binding,
		}
		if set.capacity == 0 {
			createInfo.BindingCount = 0
			createInfo.PBindings = nil
			createInfo.PNext = nil
		}

		result := device.cmds.CreateDescriptorSetLayout(device.handle, &createInfo, nil, &t.layouts[i])
		runtime.KeepAlive(&binding)
		runtime.KeepAlive(&flagsInfo)
		if result != vk.Success {
			t.Destroy()
			return nil, fmt.Errorf("vulkan: bindless set %d layout creation failed: %d", i, result)
		}
	}

	// One pool holding exactly the five sets.
	poolSizes := make([]vk.DescriptorPoolSize, 0, 5)
	for _, set := range sets {
		if set.capacity > 0 {
			poolSizes = append(poolSizes, vk.DescriptorPoolSize{
				Type:            set.descType,
				DescriptorCount: set.capacity,
			})
		}
	}
	poolInfo := vk.DescriptorPoolCreateInfo{
		SType:         vk.StructureTypeDescriptorPoolCreateInfo,
		Flags:         vk.DescriptorPoolCreateUpdateAfterBindBit,
		MaxSets:       5,
		PoolSizeCount: uint32(len(poolSizes)),
	}
	if len(poolSizes) > 0 {
		poolInfo.PPoolSizes = &poolSizes[0]
	}
	result := t.device.cmds.CreateDescriptorPool(device.handle, &poolInfo, nil, &t.pool)
	runtime.KeepAlive(poolSizes)
	if result != vk.Success {
		t.Destroy()
		return nil, fmt.Errorf("vulkan: bindless descriptor pool creation failed: %d", result)
	}

	allocInfo := vk.DescriptorSetAllocateInfo{
		SType:              vk.StructureTypeDescriptorSetAllocateInfo,
		DescriptorPool:     t.pool,
		DescriptorSetCount: 5,
		PSetLayouts:        &t.layouts[0],
	}
	result = t.device.cmds.AllocateDescriptorSets(device.handle, &allocInfo, &t.sets[0])
	if result != vk.Success {
		t.Destroy()
		return nil, fmt.Errorf("vulkan: bindless descriptor set allocation failed: %d", result)
	}

	pushBytes := limits.PushConstantBytes
	if pushBytes == 0 {
		pushBytes = bindless.PushConstantBytes
	}
	pushRange := vk.PushConstantRange{
		StageFlags: vk.ShaderStageAll,
		Offset:     0,
		Size:       pushBytes,
	}
	layoutInfo := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         5,
		PSetLayouts:            &t.layouts[0],
		PushConstantRangeCount: 1,
		PPushConstantRanges:    &pushRange,
	}
	result = t.device.cmds.CreatePipelineLayout(device.handle, &layoutInfo, nil, &t.pipelineLayout)
	runtime.KeepAlive(&pushRange)
	if result != vk.Success {
		t.Destroy()
		return nil, fmt.Errorf("vulkan: bindless pipeline layout creation failed: %d", result)
	}

	return t, nil
}

// PipelineLayout returns the shared bindless pipeline layout handle.
func (t *BindlessTable) PipelineLayout() vk.PipelineLayout {
	return t.pipelineLayout
}

// Sets returns the five descriptor sets, in set-index order.
func (t *BindlessTable) Sets() [5]vk.DescriptorSet {
	return t.sets
}

// Bind records the five descriptor sets onto cmd for the given bind point.
// Called once per command buffer; update-after-bind keeps the sets valid
// across descriptor writes issued afterwards.
func (t *BindlessTable) Bind(cmd vk.CommandBuffer, bindPoint vk.PipelineBindPoint) {
	t.device.cmds.CmdBindDescriptorSets(cmd, bindPoint, t.pipelineLayout, 0, 5, &t.sets[0], 0, nil)
}

// WriteStorageBuffer implements bindless.Writer.
func (t *BindlessTable) WriteStorageBuffer(slot bindless.ID, buffer uintptr, offset, size uint64) {
	info := vk.DescriptorBufferInfo{
		Buffer: vk.Buffer(buffer),
		Offset: vk.DeviceSize(offset),
		Range:  vk.DeviceSize(size),
	}
	if size == 0 {
		info.Range = vk.DeviceSize(vk.WholeSize)
	}
	t.write(0, slot, vk.DescriptorTypeStorageBuffer, nil, &info)
}

// WriteSampler implements bindless.Writer.
func (t *BindlessTable) WriteSampler(slot bindless.ID, sampler uintptr) {
	info := vk.DescriptorImageInfo{Sampler: vk.Sampler(sampler)}
	t.write(1, slot, vk.DescriptorTypeSampler, &info, nil)
}

// WriteSampledImage implements bindless.Writer.
func (t *BindlessTable) WriteSampledImage(slot bindless.ID, view uintptr, layout types.ImageLayout) {
	info := vk.DescriptorImageInfo{
		ImageView:   vk.ImageView(view),
		ImageLayout: imageLayoutToVk(layout),
	}
	t.write(2, slot, vk.DescriptorTypeSampledImage, &info, nil)
}

// WriteStorageImage implements bindless.Writer.
func (t *BindlessTable) WriteStorageImage(slot bindless.ID, view uintptr, layout types.ImageLayout) {
	info := vk.DescriptorImageInfo{
		ImageView:   vk.ImageView(view),
		ImageLayout: imageLayoutToVk(layout),
	}
	t.write(3, slot, vk.DescriptorTypeStorageImage, &info, nil)
}

// WriteAccelerationStructure implements bindless.Writer. AS descriptors
// carry their payload in a chained write struct rather than an
// image/buffer info.
func (t *BindlessTable) WriteAccelerationStructure(slot bindless.ID, handle uint64) {
	as := vk.AccelerationStructureKHR(handle)
	asInfo := vk.WriteDescriptorSetAccelerationStructureKHR{
		SType:                      vk.StructureTypeWriteDescriptorSetAccelerationStructureKhr,
		AccelerationStructureCount: 1,
		PAccelerationStructures:    &as,
	}
	w := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		PNext:           (*uintptr)(unsafe.Pointer(&asInfo)),
		DstSet:          t.sets[4],
		DstBinding:      0,
		DstArrayElement: uint32(slot),
		DescriptorCount: 1,
		DescriptorType:  vk.DescriptorTypeAccelerationStructureKhr,
	}
	vkUpdateDescriptorSets(t.device.cmds, t.device.handle, 1, &w, 0, nil)
	runtime.KeepAlive(&asInfo)
	runtime.KeepAlive(&as)
}

// write issues one vkUpdateDescriptorSets for a single array element.
func (t *BindlessTable) write(set int, slot bindless.ID, descType vk.DescriptorType, image *vk.DescriptorImageInfo, buffer *vk.DescriptorBufferInfo) {
	w := vk.WriteDescriptorSet{
		SType:           vk.StructureTypeWriteDescriptorSet,
		DstSet:          t.sets[set],
		DstBinding:      0,
		DstArrayElement: uint32(slot),
		DescriptorCount: 1,
		DescriptorType:  descType,
		PImageInfo:      image,
		PBufferInfo:     buffer,
	}
	vkUpdateDescriptorSets(t.device.cmds, t.device.handle, 1, &w, 0, nil)
	runtime.KeepAlive(image)
	runtime.KeepAlive(buffer)
}

// Destroy releases every native object the table owns.
func (t *BindlessTable) Destroy() {
	if t.pipelineLayout != 0 {
		t.device.cmds.DestroyPipelineLayout(t.device.handle, t.pipelineLayout, nil)
		t.pipelineLayout = 0
	}
	if t.pool != 0 {
		t.device.cmds.DestroyDescriptorPool(t.device.handle, t.pool, nil)
		t.pool = 0
	}
	for i, layout := range t.layouts {
		if layout != 0 {
			t.device.cmds.DestroyDescriptorSetLayout(t.device.handle, layout, nil)
			t.layouts[i] = 0
		}
	}
}

// imageLayoutToVk maps the portable layout enum to Vulkan's.
func imageLayoutToVk(layout types.ImageLayout) vk.ImageLayout {
	switch layout {
	case types.ImageLayoutGeneral:
		return vk.ImageLayoutGeneral
	case types.ImageLayoutColorAttachmentOptimal:
		return vk.ImageLayoutColorAttachmentOptimal
	case types.ImageLayoutDepthStencilAttachmentOptimal:
		return vk.ImageLayoutDepthStencilAttachmentOptimal
	case types.ImageLayoutShaderReadOnlyOptimal:
		return vk.ImageLayoutShaderReadOnlyOptimal
	case types.ImageLayoutTransferSrcOptimal:
		return vk.ImageLayoutTransferSrcOptimal
	case types.ImageLayoutTransferDstOptimal:
		return vk.ImageLayoutTransferDstOptimal
	case types.ImageLayoutPresentSrc:
		return vk.ImageLayoutPresentSrcKhr
	default:
		return vk.ImageLayoutUndefined
	}
}
