// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/hal/vulkan/vk"
	"github.com/gogpu/bindless/types"
)

// Adapter implements hal.Adapter for Vulkan.
type Adapter struct {
	instance       *Instance
	physicalDevice vk.PhysicalDevice
	properties     vk.PhysicalDeviceProperties
	features       vk.PhysicalDeviceFeatures
}

// Open creates a logical device with the requested features and limits.
func (a *Adapter) Open(features types.Features, limits types.Limits) (hal.OpenDevice, error) {
	// Find queue families
	var queueFamilyCount uint32
	a.instance.cmds.GetPhysicalDeviceQueueFamilyProperties(a.physicalDevice, &queueFamilyCount, nil)

	if queueFamilyCount == 0 {
		return hal.OpenDevice{}, fmt.Errorf("vulkan: no queue families found")
	}

	queueFamilies := make([]vk.QueueFamilyProperties, queueFamilyCount)
	a.instance.cmds.GetPhysicalDeviceQueueFamilyProperties(a.physicalDevice, &queueFamilyCount, &queueFamilies[0])

	// Find graphics queue family
	graphicsFamily := int32(-1)
	for i, family := range queueFamilies {
		if family.QueueFlags&vk.QueueGraphicsBit != 0 {
			graphicsFamily = int32(i)
			break
		}
	}

	if graphicsFamily < 0 {
		return hal.OpenDevice{}, fmt.Errorf("vulkan: no graphics queue family found")
	}

	// Create device with graphics queue
	queuePriority := float32(1.0)
	queueCreateInfo := vk.DeviceQueueCreateInfo{
		SType:            vk.StructureTypeDeviceQueueCreateInfo,
		QueueFamilyIndex: uint32(graphicsFamily),
		QueueCount:       1,
		PQueuePriorities: &queuePriority,
	}

	// Required extensions
	extensions := []string{
		"VK_KHR_swapchain\x00",
	}

	// Ray-tracing extensions, only when the driver exposes them. A device
	// without them still opens; acceleration-structure creation then
	// reports unavailability at call time.
	available := a.deviceExtensions()
	hasAS := available["VK_KHR_acceleration_structure"] &&
		available["VK_KHR_deferred_host_operations"]
	if hasAS {
		extensions = append(extensions,
			"VK_KHR_acceleration_structure\x00",
			"VK_KHR_deferred_host_operations\x00",
		)
		if available["VK_KHR_ray_query"] {
			extensions = append(extensions, "VK_KHR_ray_query\x00")
		}
	}

	extensionPtrs := make([]uintptr, len(extensions))
	for i, ext := range extensions {
		extensionPtrs[i] = uintptr(unsafe.Pointer(unsafe.StringData(ext)))
	}

	// Vulkan 1.2 core features the bindless descriptor and timeline
	// synchronization layers depend on.
	vulkan12 := vk.PhysicalDeviceVulkan12Features{
		SType:                                         vk.StructureTypePhysicalDeviceVulkan12Features,
		DescriptorIndexing:                            vk.Bool32(vk.True),
		ShaderSampledImageArrayNonUniformIndexing:     vk.Bool32(vk.True),
		ShaderStorageBufferArrayNonUniformIndexing:    vk.Bool32(vk.True),
		ShaderStorageImageArrayNonUniformIndexing:     vk.Bool32(vk.True),
		DescriptorBindingSampledImageUpdateAfterBind:  vk.Bool32(vk.True),
		DescriptorBindingStorageImageUpdateAfterBind:  vk.Bool32(vk.True),
		DescriptorBindingStorageBufferUpdateAfterBind: vk.Bool32(vk.True),
		DescriptorBindingUpdateUnusedWhilePending:     vk.Bool32(vk.True),
		DescriptorBindingPartiallyBound:               vk.Bool32(vk.True),
		RuntimeDescriptorArray:                        vk.Bool32(vk.True),
		TimelineSemaphore:                             vk.Bool32(vk.True),
		BufferDeviceAddress:                           vk.Bool32(vk.True),
	}

	// Chain acceleration-structure (and ray-query) features behind the
	// 1.2 features when the extensions are enabled.
	asFeatures := vk.PhysicalDeviceAccelerationStructureFeaturesKHR{
		SType:                 vk.StructureTypePhysicalDeviceAccelerationStructureFeaturesKhr,
		AccelerationStructure: vk.Bool32(vk.True),
		DescriptorBindingAccelerationStructureUpdateAfterBind: vk.Bool32(vk.True),
	}
	rayQuery := vk.PhysicalDeviceRayQueryFeaturesKHR{
		SType:    vk.StructureTypePhysicalDeviceRayQueryFeaturesKhr,
		RayQuery: vk.Bool32(vk.True),
	}
	if hasAS {
		vulkan12.PNext = (*uintptr)(unsafe.Pointer(&asFeatures))
		if available["VK_KHR_ray_query"] {
			asFeatures.PNext = (*uintptr)(unsafe.Pointer(&rayQuery))
		}
	}

	// Device create info
	deviceCreateInfo := vk.DeviceCreateInfo{
		SType:                   vk.StructureTypeDeviceCreateInfo,
		PNext:                   (*uintptr)(unsafe.Pointer(&vulkan12)),
		QueueCreateInfoCount:    1,
		PQueueCreateInfos:       &queueCreateInfo,
		EnabledExtensionCount:   uint32(len(extensions)),
		PpEnabledExtensionNames: uintptr(unsafe.Pointer(&extensionPtrs[0])),
		PEnabledFeatures:        &a.features,
	}

	var device vk.Device
	result := a.instance.cmds.CreateDevice(a.physicalDevice, &deviceCreateInfo, nil, &device)
	runtime.KeepAlive(&vulkan12)
	runtime.KeepAlive(&asFeatures)
	runtime.KeepAlive(&rayQuery)
	runtime.KeepAlive(extensions)
	runtime.KeepAlive(extensionPtrs)
	if result != vk.Success {
		return hal.OpenDevice{}, fmt.Errorf("vulkan: vkCreateDevice failed: %d", result)
	}

	// Load device-level commands before anything dispatches through them.
	if err := a.instance.cmds.LoadDevice(device); err != nil {
		a.instance.cmds.DestroyDevice(device, nil)
		return hal.OpenDevice{}, fmt.Errorf("vulkan: failed to load device commands: %w", err)
	}

	// Get queue handle
	var queue vk.Queue
	a.instance.cmds.GetDeviceQueue(device, uint32(graphicsFamily), 0, &queue)

	dev := &Device{
		handle:         device,
		physicalDevice: a.physicalDevice,
		instance:       a.instance,
		graphicsFamily: uint32(graphicsFamily),
		cmds:           &a.instance.cmds,
	}

	// Initialize memory allocator
	if err := dev.initAllocator(); err != nil {
		a.instance.cmds.DestroyDevice(device, nil)
		return hal.OpenDevice{}, fmt.Errorf("vulkan: failed to initialize allocator: %w", err)
	}

	q := &Queue{
		handle:      queue,
		device:      dev,
		familyIndex: uint32(graphicsFamily),
	}

	return hal.OpenDevice{
		Device: dev,
		Queue:  q,
	}, nil
}

// deviceExtensions enumerates the adapter's supported device extensions.
func (a *Adapter) deviceExtensions() map[string]bool {
	available := map[string]bool{}

	var count uint32
	if a.instance.cmds.EnumerateDeviceExtensionProperties(a.physicalDevice, nil, &count, nil) != vk.Success || count == 0 {
		return available
	}
	props := make([]vk.ExtensionProperties, count)
	if a.instance.cmds.EnumerateDeviceExtensionProperties(a.physicalDevice, nil, &count, &props[0]) != vk.Success {
		return available
	}
	for _, p := range props {
		available[cStringToGo(p.ExtensionName[:])] = true
	}
	return available
}

// TextureFormatCapabilities returns capabilities for a texture format.
func (a *Adapter) TextureFormatCapabilities(format types.TextureFormat) hal.TextureFormatCapabilities {
	flags := hal.TextureFormatCapabilitySampled

	switch format {
	case types.TextureFormatRGBA8Unorm,
		types.TextureFormatRGBA8UnormSrgb,
		types.TextureFormatBGRA8Unorm,
		types.TextureFormatBGRA8UnormSrgb,
		types.TextureFormatRGBA16Float,
		types.TextureFormatRGBA32Float:
		flags |= hal.TextureFormatCapabilityRenderAttachment |
			hal.TextureFormatCapabilityBlendable |
			hal.TextureFormatCapabilityMultisample |
			hal.TextureFormatCapabilityMultisampleResolve

	case types.TextureFormatDepth16Unorm,
		types.TextureFormatDepth24Plus,
		types.TextureFormatDepth24PlusStencil8,
		types.TextureFormatDepth32Float,
		types.TextureFormatDepth32FloatStencil8:
		flags |= hal.TextureFormatCapabilityRenderAttachment |
			hal.TextureFormatCapabilityMultisample
	}

	return hal.TextureFormatCapabilities{
		Flags: flags,
	}
}

// SurfaceCapabilities returns surface capabilities.
func (a *Adapter) SurfaceCapabilities(surface hal.Surface) *hal.SurfaceCapabilities {
	vkSurface, ok := surface.(*Surface)
	if !ok || vkSurface == nil {
		return nil
	}

	var supported vk.Bool32
	result := a.instance.cmds.GetPhysicalDeviceSurfaceSupportKHR(a.physicalDevice, 0, vkSurface.handle, &supported)
	if result != vk.Success || supported == 0 {
		return nil
	}

	caps := &hal.SurfaceCapabilities{}

	// Surface formats
	var formatCount uint32
	a.instance.cmds.GetPhysicalDeviceSurfaceFormatsKHR(a.physicalDevice, vkSurface.handle, &formatCount, nil)
	if formatCount > 0 {
		formats := make([]vk.SurfaceFormatKHR, formatCount)
		a.instance.cmds.GetPhysicalDeviceSurfaceFormatsKHR(a.physicalDevice, vkSurface.handle, &formatCount, &formats[0])
		for _, f := range formats {
			if tf, ok := vkFormatToTextureFormat(f.Format); ok {
				caps.Formats = append(caps.Formats, tf)
			}
		}
	}
	if len(caps.Formats) == 0 {
		caps.Formats = []types.TextureFormat{
			types.TextureFormatBGRA8Unorm,
			types.TextureFormatRGBA8Unorm,
		}
	}

	// Present modes
	var modeCount uint32
	a.instance.cmds.GetPhysicalDeviceSurfacePresentModesKHR(a.physicalDevice, vkSurface.handle, &modeCount, nil)
	if modeCount > 0 {
		modes := make([]vk.PresentModeKHR, modeCount)
		a.instance.cmds.GetPhysicalDeviceSurfacePresentModesKHR(a.physicalDevice, vkSurface.handle, &modeCount, &modes[0])
		for _, m := range modes {
			switch m {
			case vk.PresentModeImmediateKhr:
				caps.PresentModes = append(caps.PresentModes, hal.PresentModeImmediate)
			case vk.PresentModeMailboxKhr:
				caps.PresentModes = append(caps.PresentModes, hal.PresentModeMailbox)
			case vk.PresentModeFifoKhr:
				caps.PresentModes = append(caps.PresentModes, hal.PresentModeFifo)
			case vk.PresentModeFifoRelaxedKhr:
				caps.PresentModes = append(caps.PresentModes, hal.PresentModeFifoRelaxed)
			}
		}
	}
	if len(caps.PresentModes) == 0 {
		caps.PresentModes = []hal.PresentMode{hal.PresentModeFifo}
	}

	// Alpha modes
	var surfCaps vk.SurfaceCapabilitiesKHR
	if a.instance.cmds.GetPhysicalDeviceSurfaceCapabilitiesKHR(a.physicalDevice, vkSurface.handle, &surfCaps) == vk.Success {
		if surfCaps.SupportedCompositeAlpha&vk.CompositeAlphaOpaqueBitKhr != 0 {
			caps.AlphaModes = append(caps.AlphaModes, hal.CompositeAlphaModeOpaque)
		}
		if surfCaps.SupportedCompositeAlpha&vk.CompositeAlphaPreMultipliedBitKhr != 0 {
			caps.AlphaModes = append(caps.AlphaModes, hal.CompositeAlphaModePremultiplied)
		}
		if surfCaps.SupportedCompositeAlpha&vk.CompositeAlphaPostMultipliedBitKhr != 0 {
			caps.AlphaModes = append(caps.AlphaModes, hal.CompositeAlphaModeUnpremultiplied)
		}
	}
	if len(caps.AlphaModes) == 0 {
		caps.AlphaModes = []hal.CompositeAlphaMode{hal.CompositeAlphaModeOpaque}
	}

	return caps
}

// Destroy releases the adapter.
func (a *Adapter) Destroy() {
	// Adapter doesn't own resources
}

// featuresFromPhysicalDevice maps Vulkan physical-device features to the
// WebGPU feature set. Depth32FloatStencil8 is always reported; Vulkan
// requires D32_SFLOAT_S8_UINT or D24_UNORM_S8_UINT support and the format
// table maps Depth32FloatStencil8 directly.
func featuresFromPhysicalDevice(f *vk.PhysicalDeviceFeatures) types.Features {
	features := types.Features(types.FeatureDepth32FloatStencil8)

	if f.TextureCompressionBC != 0 {
		features |= types.Features(types.FeatureTextureCompressionBC)
	}
	if f.TextureCompressionETC2 != 0 {
		features |= types.Features(types.FeatureTextureCompressionETC2)
	}
	if f.TextureCompressionASTC_LDR != 0 {
		features |= types.Features(types.FeatureTextureCompressionASTC)
	}
	if f.DrawIndirectFirstInstance != 0 {
		features |= types.Features(types.FeatureIndirectFirstInstance)
	}
	if f.MultiDrawIndirect != 0 {
		features |= types.Features(types.FeatureMultiDrawIndirect)
	}
	if f.DepthClamp != 0 {
		features |= types.Features(types.FeatureDepthClipControl)
	}
	if f.ShaderFloat64 != 0 {
		features |= types.Features(types.FeatureShaderFloat64)
	}
	if f.PipelineStatisticsQuery != 0 {
		features |= types.Features(types.FeaturePipelineStatisticsQuery)
	}

	return features
}
