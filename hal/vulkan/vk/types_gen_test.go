// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"testing"
	"unsafe"
)

// TestStructSizesMatchCABI pins the generated struct layouts to the C ABI
// sizes from vulkan_core.h on 64-bit targets. A drifted field order or a
// missed padding field corrupts every call that passes the struct to the
// driver, so sizes are checked here instead of discovered as crashes.
func TestStructSizesMatchCABI(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Extent2D", unsafe.Sizeof(Extent2D{}), 8},
		{"Extent3D", unsafe.Sizeof(Extent3D{}), 12},
		{"Offset3D", unsafe.Sizeof(Offset3D{}), 12},
		{"Rect2D", unsafe.Sizeof(Rect2D{}), 16},
		{"Viewport", unsafe.Sizeof(Viewport{}), 24},
		{"ClearValue", unsafe.Sizeof(ClearValue{}), 16},
		{"ApplicationInfo", unsafe.Sizeof(ApplicationInfo{}), 48},
		{"InstanceCreateInfo", unsafe.Sizeof(InstanceCreateInfo{}), 64},
		{"DeviceQueueCreateInfo", unsafe.Sizeof(DeviceQueueCreateInfo{}), 40},
		{"DeviceCreateInfo", unsafe.Sizeof(DeviceCreateInfo{}), 72},
		{"PhysicalDeviceFeatures", unsafe.Sizeof(PhysicalDeviceFeatures{}), 220},
		{"PhysicalDeviceLimits", unsafe.Sizeof(PhysicalDeviceLimits{}), 504},
		{"PhysicalDeviceProperties", unsafe.Sizeof(PhysicalDeviceProperties{}), 824},
		{"PhysicalDeviceMemoryProperties", unsafe.Sizeof(PhysicalDeviceMemoryProperties{}), 520},
		{"QueueFamilyProperties", unsafe.Sizeof(QueueFamilyProperties{}), 24},
		{"MemoryAllocateInfo", unsafe.Sizeof(MemoryAllocateInfo{}), 32},
		{"MemoryRequirements", unsafe.Sizeof(MemoryRequirements{}), 24},
		{"MappedMemoryRange", unsafe.Sizeof(MappedMemoryRange{}), 40},
		{"BufferCreateInfo", unsafe.Sizeof(BufferCreateInfo{}), 56},
		{"ImageCreateInfo", unsafe.Sizeof(ImageCreateInfo{}), 88},
		{"ImageViewCreateInfo", unsafe.Sizeof(ImageViewCreateInfo{}), 80},
		{"SamplerCreateInfo", unsafe.Sizeof(SamplerCreateInfo{}), 80},
		{"ShaderModuleCreateInfo", unsafe.Sizeof(ShaderModuleCreateInfo{}), 40},
		{"PipelineLayoutCreateInfo", unsafe.Sizeof(PipelineLayoutCreateInfo{}), 48},
		{"DescriptorSetLayoutBinding", unsafe.Sizeof(DescriptorSetLayoutBinding{}), 24},
		{"DescriptorSetLayoutCreateInfo", unsafe.Sizeof(DescriptorSetLayoutCreateInfo{}), 32},
		{"DescriptorPoolCreateInfo", unsafe.Sizeof(DescriptorPoolCreateInfo{}), 40},
		{"DescriptorSetAllocateInfo", unsafe.Sizeof(DescriptorSetAllocateInfo{}), 40},
		{"DescriptorImageInfo", unsafe.Sizeof(DescriptorImageInfo{}), 24},
		{"DescriptorBufferInfo", unsafe.Sizeof(DescriptorBufferInfo{}), 24},
		{"WriteDescriptorSet", unsafe.Sizeof(WriteDescriptorSet{}), 64},
		{"AttachmentDescription", unsafe.Sizeof(AttachmentDescription{}), 36},
		{"SubpassDescription", unsafe.Sizeof(SubpassDescription{}), 72},
		{"SubpassDependency", unsafe.Sizeof(SubpassDependency{}), 28},
		{"RenderPassCreateInfo", unsafe.Sizeof(RenderPassCreateInfo{}), 64},
		{"FramebufferCreateInfo", unsafe.Sizeof(FramebufferCreateInfo{}), 64},
		{"PipelineShaderStageCreateInfo", unsafe.Sizeof(PipelineShaderStageCreateInfo{}), 48},
		{"GraphicsPipelineCreateInfo", unsafe.Sizeof(GraphicsPipelineCreateInfo{}), 144},
		{"ComputePipelineCreateInfo", unsafe.Sizeof(ComputePipelineCreateInfo{}), 96},
		{"StencilOpState", unsafe.Sizeof(StencilOpState{}), 28},
		{"PipelineDepthStencilStateCreateInfo", unsafe.Sizeof(PipelineDepthStencilStateCreateInfo{}), 104},
		{"CommandPoolCreateInfo", unsafe.Sizeof(CommandPoolCreateInfo{}), 24},
		{"CommandBufferAllocateInfo", unsafe.Sizeof(CommandBufferAllocateInfo{}), 32},
		{"CommandBufferBeginInfo", unsafe.Sizeof(CommandBufferBeginInfo{}), 32},
		{"MemoryBarrier", unsafe.Sizeof(MemoryBarrier{}), 24},
		{"BufferMemoryBarrier", unsafe.Sizeof(BufferMemoryBarrier{}), 56},
		{"ImageMemoryBarrier", unsafe.Sizeof(ImageMemoryBarrier{}), 72},
		{"BufferImageCopy", unsafe.Sizeof(BufferImageCopy{}), 56},
		{"ImageCopy", unsafe.Sizeof(ImageCopy{}), 68},
		{"ImageBlit", unsafe.Sizeof(ImageBlit{}), 80},
		{"SubmitInfo", unsafe.Sizeof(SubmitInfo{}), 72},
		{"PresentInfoKHR", unsafe.Sizeof(PresentInfoKHR{}), 64},
		{"SurfaceCapabilitiesKHR", unsafe.Sizeof(SurfaceCapabilitiesKHR{}), 52},
		{"SwapchainCreateInfoKHR", unsafe.Sizeof(SwapchainCreateInfoKHR{}), 104},
		{"SemaphoreTypeCreateInfo", unsafe.Sizeof(SemaphoreTypeCreateInfo{}), 32},
		{"BufferDeviceAddressInfo", unsafe.Sizeof(BufferDeviceAddressInfo{}), 24},
		{"ExtensionProperties", unsafe.Sizeof(ExtensionProperties{}), 260},
		{"AccelerationStructureCreateInfoKHR", unsafe.Sizeof(AccelerationStructureCreateInfoKHR{}), 64},
		{"AccelerationStructureGeometryTrianglesDataKHR", unsafe.Sizeof(AccelerationStructureGeometryTrianglesDataKHR{}), 64},
		{"AccelerationStructureGeometryKHR", unsafe.Sizeof(AccelerationStructureGeometryKHR{}), 96},
		{"AccelerationStructureBuildGeometryInfoKHR", unsafe.Sizeof(AccelerationStructureBuildGeometryInfoKHR{}), 80},
		{"AccelerationStructureBuildSizesInfoKHR", unsafe.Sizeof(AccelerationStructureBuildSizesInfoKHR{}), 40},
		{"SemaphoreWaitInfo", unsafe.Sizeof(SemaphoreWaitInfo{}), 40},
		{"TimelineSemaphoreSubmitInfo", unsafe.Sizeof(TimelineSemaphoreSubmitInfo{}), 48},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("sizeof(%s) = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

// TestClearValueAccessors round-trips the ClearValue union helpers.
func TestClearValueAccessors(t *testing.T) {
	cv := ClearValueColor(0.25, 0.5, 0.75, 1.0)
	c := cv.GetColorFloat32()
	if c != [4]float32{0.25, 0.5, 0.75, 1.0} {
		t.Errorf("GetColorFloat32() = %v", c)
	}

	dv := ClearValueDepthStencil(1.0, 42)
	depth, stencil := dv.GetDepthStencil()
	if depth != 1.0 || stencil != 42 {
		t.Errorf("GetDepthStencil() = %v, %v", depth, stencil)
	}
}
