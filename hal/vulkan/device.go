// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"github.com/gogpu/naga"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/hal/vulkan/memory"
	"github.com/gogpu/bindless/hal/vulkan/vk"
	"github.com/gogpu/bindless/types"
)

// Device implements hal.Device for Vulkan.
type Device struct {
	handle         vk.Device
	physicalDevice vk.PhysicalDevice
	instance       *Instance
	graphicsFamily uint32
	allocator      *memory.GpuAllocator
	cmds           *vk.Commands
	commandPool    vk.CommandPool // Primary command pool for encoder allocation
	descriptors    *DescriptorAllocator
}

// initAllocator initializes the memory allocator for this device.
func (d *Device) initAllocator() error {
	// Get physical device memory properties
	var vkProps vk.PhysicalDeviceMemoryProperties
	vk.GetPhysicalDeviceMemoryProperties(&d.instance.cmds, d.physicalDevice, &vkProps)

	// Convert to our format
	props := memory.DeviceMemoryProperties{
		MemoryTypes: make([]memory.MemoryType, vkProps.MemoryTypeCount),
		MemoryHeaps: make([]memory.MemoryHeap, vkProps.MemoryHeapCount),
	}

	for i := uint32(0); i < vkProps.MemoryTypeCount; i++ {
		props.MemoryTypes[i] = memory.MemoryType{
			PropertyFlags: vkProps.MemoryTypes[i].PropertyFlags,
			HeapIndex:     vkProps.MemoryTypes[i].HeapIndex,
		}
	}

	for i := uint32(0); i < vkProps.MemoryHeapCount; i++ {
		props.MemoryHeaps[i] = memory.MemoryHeap{
			Size:  uint64(vkProps.MemoryHeaps[i].Size),
			Flags: vkProps.MemoryHeaps[i].Flags,
		}
	}

	// Create allocator with default config
	allocator, err := memory.NewGpuAllocator(d.handle, props, memory.DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to create memory allocator: %w", err)
	}

	d.allocator = allocator

	// Set device commands for memory operations
	vk.SetDeviceCommands(d.cmds)

	return nil
}

// CreateBuffer creates a GPU buffer.
func (d *Device) CreateBuffer(desc *hal.BufferDescriptor) (hal.Buffer, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: buffer descriptor is nil")
	}
	if desc.Size == 0 {
		return nil, fmt.Errorf("vulkan: buffer size must be > 0")
	}

	// Convert usage flags
	vkUsage := bufferUsageToVk(desc.Usage)

	// Create VkBuffer (without memory)
	createInfo := vk.BufferCreateInfo{
		SType:       vk.StructureTypeBufferCreateInfo,
		Size:        vk.DeviceSize(desc.Size),
		Usage:       vkUsage,
		SharingMode: vk.SharingModeExclusive,
	}

	var buffer vk.Buffer
	result := vk.CreateBuffer(d.handle, &createInfo, nil, &buffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateBuffer failed: %d", result)
	}

	// Get memory requirements
	var memReqs vk.MemoryRequirements
	vk.GetBufferMemoryRequirements(d.handle, buffer, &memReqs)

	// Determine usage flags for memory allocation
	memUsage := memory.UsageFastDeviceAccess
	if desc.Usage&(types.BufferUsageMapRead|types.BufferUsageMapWrite) != 0 {
		memUsage = memory.UsageHostAccess
		if desc.Usage&types.BufferUsageMapRead != 0 {
			memUsage |= memory.UsageDownload
		}
		if desc.Usage&types.BufferUsageMapWrite != 0 {
			memUsage |= memory.UsageUpload
		}
	}

	// Allocate memory
	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memUsage,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate buffer memory: %w", err)
	}

	// Bind memory to buffer
	result = vk.BindBufferMemory(d.handle, buffer, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyBuffer(d.handle, buffer, nil)
		return nil, fmt.Errorf("vulkan: vkBindBufferMemory failed: %d", result)
	}

	return &Buffer{
		handle: buffer,
		memory: memBlock,
		size:   desc.Size,
		usage:  desc.Usage,
		device: d,
	}, nil
}

// DestroyBuffer destroys a GPU buffer.
func (d *Device) DestroyBuffer(buffer hal.Buffer) {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer == nil {
		return
	}

	if vkBuffer.handle != 0 {
		vk.DestroyBuffer(d.handle, vkBuffer.handle, nil)
		vkBuffer.handle = 0
	}

	if vkBuffer.memory != nil {
		_ = d.allocator.Free(vkBuffer.memory)
		vkBuffer.memory = nil
	}

	vkBuffer.device = nil
}

// CreateTexture creates a GPU texture.
func (d *Device) CreateTexture(desc *hal.TextureDescriptor) (hal.Texture, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: texture descriptor is nil")
	}
	if desc.Size.Width == 0 || desc.Size.Height == 0 {
		return nil, fmt.Errorf("vulkan: texture size must be > 0")
	}

	// Convert parameters
	vkFormat := textureFormatToVk(desc.Format)
	vkUsage := textureUsageToVk(desc.Usage)
	if isDepthStencilFormat(desc.Format) && desc.Usage&types.TextureUsageRenderAttachment != 0 {
		// RenderAttachment maps to the color bit in textureUsageToVk;
		// depth formats need the depth-stencil attachment bit instead.
		vkUsage &^= vk.ImageUsageColorAttachmentBit
		vkUsage |= vk.ImageUsageDepthStencilAttachmentBit
	}
	imageType := textureDimensionToVkImageType(desc.Dimension)

	// For 2D textures the third extent component counts array layers;
	// for 3D textures it is the depth.
	depth := desc.Size.DepthOrArrayLayers
	if depth == 0 {
		depth = 1
	}
	extentDepth := uint32(1)
	arrayLayers := depth
	if desc.Dimension == types.TextureDimension3D {
		extentDepth = depth
		arrayLayers = 1
	}
	mipLevels := desc.MipLevelCount
	if mipLevels == 0 {
		mipLevels = 1
	}
	samples := desc.SampleCount
	if samples == 0 {
		samples = 1
	}

	var createFlags vk.ImageCreateFlags
	if desc.Dimension == types.TextureDimension2D && arrayLayers >= 6 && desc.Size.Width == desc.Size.Height {
		createFlags |= vk.ImageCreateCubeCompatibleBit
	}

	createInfo := vk.ImageCreateInfo{
		SType:     vk.StructureTypeImageCreateInfo,
		Flags:     createFlags,
		ImageType: imageType,
		Format:    vkFormat,
		Extent: vk.Extent3D{
			Width:  desc.Size.Width,
			Height: desc.Size.Height,
			Depth:  extentDepth,
		},
		MipLevels:     mipLevels,
		ArrayLayers:   arrayLayers,
		Samples:       vk.SampleCountFlagBits(samples),
		Tiling:        vk.ImageTilingOptimal,
		Usage:         vkUsage,
		SharingMode:   vk.SharingModeExclusive,
		InitialLayout: vk.ImageLayoutUndefined,
	}

	var image vk.Image
	result := vk.CreateImage(d.handle, &createInfo, nil, &image)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImage failed: %d", result)
	}

	// Get memory requirements
	var memReqs vk.MemoryRequirements
	vk.GetImageMemoryRequirements(d.handle, image, &memReqs)

	// Allocate memory (textures always use device-local)
	memBlock, err := d.allocator.Alloc(memory.AllocationRequest{
		Size:           uint64(memReqs.Size),
		Alignment:      uint64(memReqs.Alignment),
		Usage:          memory.UsageFastDeviceAccess,
		MemoryTypeBits: memReqs.MemoryTypeBits,
	})
	if err != nil {
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: failed to allocate texture memory: %w", err)
	}

	// Bind memory to image
	result = vk.BindImageMemory(d.handle, image, memBlock.Memory, memBlock.Offset)
	if result != vk.Success {
		_ = d.allocator.Free(memBlock)
		vk.DestroyImage(d.handle, image, nil)
		return nil, fmt.Errorf("vulkan: vkBindImageMemory failed: %d", result)
	}

	return &Texture{
		handle:    image,
		memory:    memBlock,
		size:      Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, Depth: depth},
		format:    desc.Format,
		usage:     desc.Usage,
		mipLevels: mipLevels,
		samples:   samples,
		dimension: desc.Dimension,
		device:    d,
	}, nil
}

// DestroyTexture destroys a GPU texture.
func (d *Device) DestroyTexture(texture hal.Texture) {
	vkTexture, ok := texture.(*Texture)
	if !ok || vkTexture == nil {
		return
	}

	if vkTexture.handle != 0 && !vkTexture.isExternal {
		vk.DestroyImage(d.handle, vkTexture.handle, nil)
		vkTexture.handle = 0
	}

	if vkTexture.memory != nil {
		_ = d.allocator.Free(vkTexture.memory)
		vkTexture.memory = nil
	}

	vkTexture.device = nil
}

// CreateTextureView creates a view into a texture.
func (d *Device) CreateTextureView(texture hal.Texture, desc *hal.TextureViewDescriptor) (hal.TextureView, error) {
	vkTexture, ok := texture.(*Texture)
	if !ok || vkTexture == nil {
		return nil, fmt.Errorf("vulkan: texture is not a Vulkan texture")
	}

	format := vkTexture.format
	viewType := textureDimensionToViewType(vkTexture.dimension)
	aspect := vk.ImageAspectFlags(vk.ImageAspectColorBit)
	var baseMip, mipCount, baseLayer, layerCount uint32
	mipCount = vk.RemainingMipLevels
	layerCount = vk.RemainingArrayLayers

	if desc != nil {
		if desc.Format != types.TextureFormatUndefined {
			format = desc.Format
		}
		if desc.Dimension != types.TextureViewDimensionUndefined {
			viewType = textureViewDimensionToVk(desc.Dimension)
		}
		aspect = textureAspectToVk(desc.Aspect, format)
		baseMip = desc.BaseMipLevel
		if desc.MipLevelCount != 0 {
			mipCount = desc.MipLevelCount
		}
		baseLayer = desc.BaseArrayLayer
		if desc.ArrayLayerCount != 0 {
			layerCount = desc.ArrayLayerCount
		}
	} else {
		aspect = textureAspectToVk(types.TextureAspectAll, format)
	}

	createInfo := vk.ImageViewCreateInfo{
		SType:    vk.StructureTypeImageViewCreateInfo,
		Image:    vkTexture.handle,
		ViewType: viewType,
		Format:   textureFormatToVk(format),
		Components: vk.ComponentMapping{
			R: vk.ComponentSwizzleIdentity,
			G: vk.ComponentSwizzleIdentity,
			B: vk.ComponentSwizzleIdentity,
			A: vk.ComponentSwizzleIdentity,
		},
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     aspect,
			BaseMipLevel:   baseMip,
			LevelCount:     mipCount,
			BaseArrayLayer: baseLayer,
			LayerCount:     layerCount,
		},
	}

	var view vk.ImageView
	result := d.cmds.CreateImageView(d.handle, &createInfo, nil, &view)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateImageView failed: %d", result)
	}

	return &TextureView{
		handle:  view,
		texture: vkTexture,
		device:  d,
	}, nil
}

// DestroyTextureView destroys a texture view.
func (d *Device) DestroyTextureView(view hal.TextureView) {
	vkView, ok := view.(*TextureView)
	if !ok || vkView == nil {
		return
	}

	if vkView.handle != 0 {
		d.cmds.DestroyImageView(d.handle, vkView.handle, nil)
		vkView.handle = 0
	}
	vkView.device = nil
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc *hal.SamplerDescriptor) (hal.Sampler, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: sampler descriptor is nil")
	}

	createInfo := vk.SamplerCreateInfo{
		SType:        vk.StructureTypeSamplerCreateInfo,
		MagFilter:    filterModeToVk(desc.MagFilter),
		MinFilter:    filterModeToVk(desc.MinFilter),
		MipmapMode:   mipmapFilterModeToVk(desc.MipmapFilter),
		AddressModeU: addressModeToVk(desc.AddressModeU),
		AddressModeV: addressModeToVk(desc.AddressModeV),
		AddressModeW: addressModeToVk(desc.AddressModeW),
		MinLod:       desc.LodMinClamp,
		MaxLod:       desc.LodMaxClamp,
		BorderColor:  vk.BorderColorFloatOpaqueBlack,
	}
	if desc.Anisotropy > 1 {
		createInfo.AnisotropyEnable = vk.Bool32(vk.True)
		createInfo.MaxAnisotropy = float32(desc.Anisotropy)
	}
	if desc.Compare != types.CompareFunctionUndefined {
		createInfo.CompareEnable = vk.Bool32(vk.True)
		createInfo.CompareOp = compareFunctionToVk(desc.Compare)
	}

	var sampler vk.Sampler
	result := d.cmds.CreateSampler(d.handle, &createInfo, nil, &sampler)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateSampler failed: %d", result)
	}

	return &Sampler{handle: sampler, device: d}, nil
}

// DestroySampler destroys a sampler.
func (d *Device) DestroySampler(sampler hal.Sampler) {
	vkSampler, ok := sampler.(*Sampler)
	if !ok || vkSampler == nil {
		return
	}

	if vkSampler.handle != 0 {
		d.cmds.DestroySampler(d.handle, vkSampler.handle, nil)
		vkSampler.handle = 0
	}
	vkSampler.device = nil
}

// CreateBindGroupLayout creates a bind group layout.
func (d *Device) CreateBindGroupLayout(desc *hal.BindGroupLayoutDescriptor) (hal.BindGroupLayout, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: bind group layout descriptor is nil")
	}

	bindings := make([]vk.DescriptorSetLayoutBinding, 0, len(desc.Entries))
	bindingTypes := make(map[uint32]vk.DescriptorType, len(desc.Entries))
	var counts DescriptorCounts

	for _, entry := range desc.Entries {
		var descType vk.DescriptorType
		switch {
		case entry.Buffer != nil:
			descType = bufferBindingTypeToVk(entry.Buffer.Type)
			if descType == vk.DescriptorTypeStorageBuffer {
				counts.StorageBuffers++
			} else {
				counts.UniformBuffers++
			}
		case entry.Sampler != nil:
			descType = vk.DescriptorTypeSampler
			counts.Samplers++
		case entry.Texture != nil:
			descType = vk.DescriptorTypeSampledImage
			counts.SampledImages++
		case entry.Storage != nil:
			descType = vk.DescriptorTypeStorageImage
			counts.StorageImages++
		default:
			return nil, fmt.Errorf("vulkan: bind group layout entry %d has no binding type", entry.Binding)
		}

		bindings = append(bindings, vk.DescriptorSetLayoutBinding{
			Binding:         entry.Binding,
			DescriptorType:  descType,
			DescriptorCount: 1,
			StageFlags:      shaderStagesToVk(entry.Visibility),
		})
		bindingTypes[entry.Binding] = descType
	}

	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
	}
	if len(bindings) > 0 {
		createInfo.PBindings = &bindings[0]
	}

	var layout vk.DescriptorSetLayout
	result := d.cmds.CreateDescriptorSetLayout(d.handle, &createInfo, nil, &layout)
	runtime.KeepAlive(bindings)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateDescriptorSetLayout failed: %d", result)
	}

	return &BindGroupLayout{
		handle:       layout,
		counts:       counts,
		bindingTypes: bindingTypes,
		device:       d,
	}, nil
}

// DestroyBindGroupLayout destroys a bind group layout.
func (d *Device) DestroyBindGroupLayout(layout hal.BindGroupLayout) {
	vkLayout, ok := layout.(*BindGroupLayout)
	if !ok || vkLayout == nil {
		return
	}

	if vkLayout.handle != 0 {
		d.cmds.DestroyDescriptorSetLayout(d.handle, vkLayout.handle, nil)
		vkLayout.handle = 0
	}
	vkLayout.device = nil
}

// CreateBindGroup creates a bind group.
func (d *Device) CreateBindGroup(desc *hal.BindGroupDescriptor) (hal.BindGroup, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: bind group descriptor is nil")
	}
	vkLayout, ok := desc.Layout.(*BindGroupLayout)
	if !ok || vkLayout == nil {
		return nil, fmt.Errorf("vulkan: invalid bind group layout")
	}

	if d.descriptors == nil {
		d.descriptors = NewDescriptorAllocator(d.handle, d.cmds, DefaultDescriptorAllocatorConfig())
	}

	set, pool, err := d.descriptors.Allocate(vkLayout.handle, vkLayout.counts)
	if err != nil {
		return nil, fmt.Errorf("vulkan: descriptor set allocation failed: %w", err)
	}

	// Keep the info structs alive until vkUpdateDescriptorSets returns.
	bufferInfos := make([]vk.DescriptorBufferInfo, 0, len(desc.Entries))
	imageInfos := make([]vk.DescriptorImageInfo, 0, len(desc.Entries))
	writes := make([]vk.WriteDescriptorSet, 0, len(desc.Entries))

	for _, entry := range desc.Entries {
		descType, known := vkLayout.bindingTypes[entry.Binding]
		if !known {
			_ = d.descriptors.Free(pool, set)
			return nil, fmt.Errorf("vulkan: binding %d not present in layout", entry.Binding)
		}

		write := vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          set,
			DstBinding:      entry.Binding,
			DescriptorCount: 1,
			DescriptorType:  descType,
		}

		switch res := entry.Resource.(type) {
		case types.BufferBinding:
			size := vk.DeviceSize(res.Size)
			if size == 0 {
				size = vk.DeviceSize(vk.WholeSize)
			}
			bufferInfos = append(bufferInfos, vk.DescriptorBufferInfo{
				Buffer: vk.Buffer(res.Buffer),
				Offset: vk.DeviceSize(res.Offset),
				Range:  size,
			})
			write.PBufferInfo = &bufferInfos[len(bufferInfos)-1]
		case types.SamplerBinding:
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				Sampler: vk.Sampler(res.Sampler),
			})
			write.PImageInfo = &imageInfos[len(imageInfos)-1]
		case types.TextureViewBinding:
			layout := vk.ImageLayoutShaderReadOnlyOptimal
			if descType == vk.DescriptorTypeStorageImage {
				layout = vk.ImageLayoutGeneral
			}
			imageInfos = append(imageInfos, vk.DescriptorImageInfo{
				ImageView:   vk.ImageView(res.TextureView),
				ImageLayout: layout,
			})
			write.PImageInfo = &imageInfos[len(imageInfos)-1]
		default:
			_ = d.descriptors.Free(pool, set)
			return nil, fmt.Errorf("vulkan: unsupported binding resource at binding %d", entry.Binding)
		}

		writes = append(writes, write)
	}

	if len(writes) > 0 {
		vkUpdateDescriptorSets(d.cmds, d.handle, uint32(len(writes)), &writes[0], 0, nil)
	}
	runtime.KeepAlive(bufferInfos)
	runtime.KeepAlive(imageInfos)

	return &BindGroup{
		handle: set,
		pool:   pool,
		device: d,
	}, nil
}

// DestroyBindGroup destroys a bind group.
func (d *Device) DestroyBindGroup(group hal.BindGroup) {
	vkGroup, ok := group.(*BindGroup)
	if !ok || vkGroup == nil {
		return
	}

	if vkGroup.handle != 0 && d.descriptors != nil {
		_ = d.descriptors.Free(vkGroup.pool, vkGroup.handle)
		vkGroup.handle = 0
	}
	vkGroup.device = nil
}

// CreatePipelineLayout creates a pipeline layout.
func (d *Device) CreatePipelineLayout(desc *hal.PipelineLayoutDescriptor) (hal.PipelineLayout, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: pipeline layout descriptor is nil")
	}

	setLayouts := make([]vk.DescriptorSetLayout, 0, len(desc.BindGroupLayouts))
	for i, bgl := range desc.BindGroupLayouts {
		vkLayout, ok := bgl.(*BindGroupLayout)
		if !ok || vkLayout == nil {
			return nil, fmt.Errorf("vulkan: bind group layout %d is not a Vulkan layout", i)
		}
		setLayouts = append(setLayouts, vkLayout.handle)
	}

	pushRanges := make([]vk.PushConstantRange, 0, len(desc.PushConstantRanges))
	for _, pr := range desc.PushConstantRanges {
		pushRanges = append(pushRanges, vk.PushConstantRange{
			StageFlags: shaderStagesToVk(pr.Stages),
			Offset:     pr.Range.Start,
			Size:       pr.Range.End - pr.Range.Start,
		})
	}

	createInfo := vk.PipelineLayoutCreateInfo{
		SType:                  vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount:         uint32(len(setLayouts)),
		PushConstantRangeCount: uint32(len(pushRanges)),
	}
	if len(setLayouts) > 0 {
		createInfo.PSetLayouts = &setLayouts[0]
	}
	if len(pushRanges) > 0 {
		createInfo.PPushConstantRanges = &pushRanges[0]
	}

	var layout vk.PipelineLayout
	result := d.cmds.CreatePipelineLayout(d.handle, &createInfo, nil, &layout)
	runtime.KeepAlive(setLayouts)
	runtime.KeepAlive(pushRanges)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreatePipelineLayout failed: %d", result)
	}

	return &PipelineLayout{handle: layout, device: d}, nil
}

// DestroyPipelineLayout destroys a pipeline layout.
func (d *Device) DestroyPipelineLayout(layout hal.PipelineLayout) {
	vkLayout, ok := layout.(*PipelineLayout)
	if !ok || vkLayout == nil {
		return
	}

	if vkLayout.handle != 0 {
		d.cmds.DestroyPipelineLayout(d.handle, vkLayout.handle, nil)
		vkLayout.handle = 0
	}
	vkLayout.device = nil
}

// CreateShaderModule creates a shader module from SPIR-V bytecode or WGSL
// source (compiled through naga).
func (d *Device) CreateShaderModule(desc *hal.ShaderModuleDescriptor) (hal.ShaderModule, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: shader module descriptor is nil")
	}

	code := desc.Source.SPIRV
	if len(code) == 0 {
		if desc.Source.WGSL == "" {
			return nil, fmt.Errorf("vulkan: shader module has neither SPIR-V nor WGSL source")
		}
		spirvBytes, err := naga.Compile(desc.Source.WGSL)
		if err != nil {
			return nil, fmt.Errorf("vulkan: WGSL compilation failed: %w", err)
		}
		if len(spirvBytes)%4 != 0 {
			return nil, fmt.Errorf("vulkan: naga produced %d bytes, not a multiple of 4", len(spirvBytes))
		}
		code = make([]uint32, len(spirvBytes)/4)
		for i := range code {
			code[i] = binary.LittleEndian.Uint32(spirvBytes[i*4:])
		}
	}

	createInfo := vk.ShaderModuleCreateInfo{
		SType:    vk.StructureTypeShaderModuleCreateInfo,
		CodeSize: uintptr(len(code) * 4),
		PCode:    &code[0],
	}

	var module vk.ShaderModule
	result := d.cmds.CreateShaderModule(d.handle, &createInfo, nil, &module)
	runtime.KeepAlive(code)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateShaderModule failed: %d", result)
	}

	return &ShaderModule{handle: module, device: d}, nil
}

// DestroyShaderModule destroys a shader module.
func (d *Device) DestroyShaderModule(module hal.ShaderModule) {
	vkModule, ok := module.(*ShaderModule)
	if !ok || vkModule == nil {
		return
	}

	if vkModule.handle != 0 {
		d.cmds.DestroyShaderModule(d.handle, vkModule.handle, nil)
		vkModule.handle = 0
	}
	vkModule.device = nil
}

// CreateCommandEncoder creates a command encoder.
func (d *Device) CreateCommandEncoder(desc *hal.CommandEncoderDescriptor) (hal.CommandEncoder, error) {
	// Ensure command pool exists
	if d.commandPool == 0 {
		if err := d.initCommandPool(); err != nil {
			return nil, err
		}
	}

	// Allocate command buffer
	allocInfo := vk.CommandBufferAllocateInfo{
		SType:              vk.StructureTypeCommandBufferAllocateInfo,
		CommandPool:        d.commandPool,
		Level:              vk.CommandBufferLevelPrimary,
		CommandBufferCount: 1,
	}

	var cmdBuffer vk.CommandBuffer
	result := d.cmds.AllocateCommandBuffers(d.handle, &allocInfo, &cmdBuffer)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkAllocateCommandBuffers failed: %d", result)
	}

	pool := &CommandPool{
		handle: d.commandPool,
		device: d,
	}

	return &CommandEncoder{
		device:    d,
		pool:      pool,
		cmdBuffer: cmdBuffer,
		label:     desc.Label,
	}, nil
}

// initCommandPool initializes the device command pool.
func (d *Device) initCommandPool() error {
	createInfo := vk.CommandPoolCreateInfo{
		SType:            vk.StructureTypeCommandPoolCreateInfo,
		Flags:            vk.CommandPoolCreateFlags(vk.CommandPoolCreateResetCommandBufferBit),
		QueueFamilyIndex: d.graphicsFamily,
	}

	var pool vk.CommandPool
	result := d.cmds.CreateCommandPool(d.handle, &createInfo, nil, &pool)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkCreateCommandPool failed: %d", result)
	}

	d.commandPool = pool
	return nil
}

// CreateFence creates a synchronization fence. Timeline semaphores are
// used when the driver supports them (Vulkan 1.2+); otherwise a pool of
// binary fences backs the same monotonic-value contract.
func (d *Device) CreateFence() (hal.Fence, error) {
	inner, err := initTimelineFence(d.cmds, d.handle)
	if err != nil {
		inner = initBinaryFence()
	}
	return &Fence{inner: inner, device: d}, nil
}

// DestroyFence destroys a fence.
func (d *Device) DestroyFence(fence hal.Fence) {
	vkFence, ok := fence.(*Fence)
	if !ok || vkFence == nil || vkFence.inner == nil {
		return
	}
	vkFence.inner.destroy(d.cmds, d.handle)
	vkFence.inner = nil
	vkFence.device = nil
}

// Wait waits for a fence to reach the specified value.
func (d *Device) Wait(fence hal.Fence, value uint64, timeout time.Duration) (bool, error) {
	vkFence, ok := fence.(*Fence)
	if !ok || vkFence == nil || vkFence.inner == nil {
		return false, fmt.Errorf("vulkan: fence is not a Vulkan fence")
	}

	timeoutNs := uint64(^uint64(0))
	if timeout > 0 {
		timeoutNs = uint64(timeout.Nanoseconds())
	}

	err := vkFence.inner.waitForValue(d.cmds, d.handle, value, timeoutNs)
	switch {
	case err == nil:
		return true, nil
	case err == hal.ErrDeviceLost:
		return false, err
	default:
		// Timed out (or the driver reported a transient failure).
		return false, nil
	}
}

// WaitIdle blocks until the device finishes all submitted work.
func (d *Device) WaitIdle() error {
	result := d.cmds.DeviceWaitIdle(d.handle)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkDeviceWaitIdle failed: %d", result)
	}
	return nil
}

// setObjectName labels a Vulkan object for debug/validation.
// No-op when VK_EXT_debug_utils is not available.
func (d *Device) setObjectName(objectType vk.ObjectType, handle uint64, name string) {
	if !d.cmds.HasDebugUtils() || handle == 0 {
		return
	}
	nameBytes := append([]byte(name), 0)
	nameInfo := vk.DebugUtilsObjectNameInfoEXT{
		SType:        vk.StructureTypeDebugUtilsObjectNameInfoExt,
		ObjectType:   objectType,
		ObjectHandle: handle,
		PObjectName:  uintptr(unsafe.Pointer(&nameBytes[0])),
	}
	_ = d.cmds.SetDebugUtilsObjectNameEXT(d.handle, &nameInfo)
	runtime.KeepAlive(nameBytes)
}

// Destroy releases the device.
func (d *Device) Destroy() {
	if d.descriptors != nil {
		d.descriptors.Destroy()
		d.descriptors = nil
	}

	if d.commandPool != 0 {
		d.cmds.DestroyCommandPool(d.handle, d.commandPool, nil)
		d.commandPool = 0
	}

	if d.allocator != nil {
		d.allocator.Destroy()
		d.allocator = nil
	}

	if d.handle != 0 {
		d.cmds.DestroyDevice(d.handle, nil)
		d.handle = 0
	}
}
