// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import (
	"unsafe"
)

// Global commands instance for memory operations.
// Must be initialized via LoadDevice before using memory functions.
var deviceCmds *Commands

// SetDeviceCommands sets the device-level commands for memory operations.
func SetDeviceCommands(cmds *Commands) {
	deviceCmds = cmds
}

// AllocateMemory allocates device memory.
//
// Wraps vkAllocateMemory.
func AllocateMemory(device Device, allocInfo *MemoryAllocateInfo, allocator *AllocationCallbacks, memory *DeviceMemory) Result {
	if deviceCmds == nil || deviceCmds.allocateMemory == nil {
		return ErrorInitializationFailed
	}

	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&allocInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&memory),
	}
	return callResult(&SigResultHandlePtrPtrPtr, deviceCmds.allocateMemory, args[:])
}

// FreeMemory frees device memory.
//
// Wraps vkFreeMemory.
func FreeMemory(device Device, memory DeviceMemory, allocator *AllocationCallbacks) {
	if deviceCmds == nil {
		return
	}

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, deviceCmds.freeMemory, args[:])
}

// MapMemory maps device memory to host address space.
//
// Wraps vkMapMemory.
func MapMemory(device Device, memory DeviceMemory, offset, size uint64, flags MemoryMapFlags, data *uintptr) Result {
	if deviceCmds == nil || deviceCmds.mapMemory == nil {
		return ErrorInitializationFailed
	}

	args := [6]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
		unsafe.Pointer(&size),
		unsafe.Pointer(&flags),
		unsafe.Pointer(&data),
	}
	return callResult(&SigResultMapMemory, deviceCmds.mapMemory, args[:])
}

// UnmapMemory unmaps device memory from host address space.
//
// Wraps vkUnmapMemory.
func UnmapMemory(device Device, memory DeviceMemory) {
	if deviceCmds == nil {
		return
	}

	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memory),
	}
	callVoid(&SigVoidHandleHandle, deviceCmds.unmapMemory, args[:])
}

// GetBufferMemoryRequirements queries memory requirements for a buffer.
//
// Wraps vkGetBufferMemoryRequirements.
func GetBufferMemoryRequirements(device Device, buffer Buffer, requirements *MemoryRequirements) {
	if deviceCmds == nil {
		return
	}

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&requirements),
	}
	callVoid(&SigVoidHandleHandlePtr, deviceCmds.getBufferMemoryRequirements, args[:])
}

// BindBufferMemory binds memory to a buffer.
//
// Wraps vkBindBufferMemory.
func BindBufferMemory(device Device, buffer Buffer, memory DeviceMemory, offset uint64) Result {
	if deviceCmds == nil || deviceCmds.bindBufferMemory == nil {
		return ErrorInitializationFailed
	}

	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
	}
	return callResult(&SigResultHandle4, deviceCmds.bindBufferMemory, args[:])
}

// GetImageMemoryRequirements queries memory requirements for an image.
//
// Wraps vkGetImageMemoryRequirements.
func GetImageMemoryRequirements(device Device, image Image, requirements *MemoryRequirements) {
	if deviceCmds == nil {
		return
	}

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&image),
		unsafe.Pointer(&requirements),
	}
	callVoid(&SigVoidHandleHandlePtr, deviceCmds.getImageMemoryRequirements, args[:])
}

// BindImageMemory binds memory to an image.
//
// Wraps vkBindImageMemory.
func BindImageMemory(device Device, image Image, memory DeviceMemory, offset uint64) Result {
	if deviceCmds == nil || deviceCmds.bindImageMemory == nil {
		return ErrorInitializationFailed
	}

	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&image),
		unsafe.Pointer(&memory),
		unsafe.Pointer(&offset),
	}
	return callResult(&SigResultHandle4, deviceCmds.bindImageMemory, args[:])
}

// CreateBuffer creates a new buffer.
//
// Wraps vkCreateBuffer.
func CreateBuffer(device Device, createInfo *BufferCreateInfo, allocator *AllocationCallbacks, buffer *Buffer) Result {
	if deviceCmds == nil || deviceCmds.createBuffer == nil {
		return ErrorInitializationFailed
	}

	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&buffer),
	}
	return callResult(&SigResultHandlePtrPtrPtr, deviceCmds.createBuffer, args[:])
}

// DestroyBuffer destroys a buffer.
//
// Wraps vkDestroyBuffer.
func DestroyBuffer(device Device, buffer Buffer, allocator *AllocationCallbacks) {
	if deviceCmds == nil {
		return
	}

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&buffer),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, deviceCmds.destroyBuffer, args[:])
}

// CreateImage creates a new image.
//
// Wraps vkCreateImage.
func CreateImage(device Device, createInfo *ImageCreateInfo, allocator *AllocationCallbacks, image *Image) Result {
	if deviceCmds == nil || deviceCmds.createImage == nil {
		return ErrorInitializationFailed
	}

	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&createInfo),
		unsafe.Pointer(&allocator),
		unsafe.Pointer(&image),
	}
	return callResult(&SigResultHandlePtrPtrPtr, deviceCmds.createImage, args[:])
}

// DestroyImage destroys an image.
//
// Wraps vkDestroyImage.
func DestroyImage(device Device, image Image, allocator *AllocationCallbacks) {
	if deviceCmds == nil {
		return
	}

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&image),
		unsafe.Pointer(&allocator),
	}
	callVoid(&SigVoidHandleHandlePtr, deviceCmds.destroyImage, args[:])
}

// FlushMappedMemoryRanges flushes mapped memory ranges.
//
// Wraps vkFlushMappedMemoryRanges.
func FlushMappedMemoryRanges(device Device, memoryRangeCount uint32, memoryRanges *MappedMemoryRange) Result {
	if deviceCmds == nil || deviceCmds.flushMappedMemoryRanges == nil {
		return ErrorInitializationFailed
	}

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memoryRangeCount),
		unsafe.Pointer(&memoryRanges),
	}
	return callResult(&SigResultHandleU32Ptr, deviceCmds.flushMappedMemoryRanges, args[:])
}

// InvalidateMappedMemoryRanges invalidates mapped memory ranges.
//
// Wraps vkInvalidateMappedMemoryRanges.
func InvalidateMappedMemoryRanges(device Device, memoryRangeCount uint32, memoryRanges *MappedMemoryRange) Result {
	if deviceCmds == nil || deviceCmds.invalidateMappedMemoryRanges == nil {
		return ErrorInitializationFailed
	}

	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&memoryRangeCount),
		unsafe.Pointer(&memoryRanges),
	}
	return callResult(&SigResultHandleU32Ptr, deviceCmds.invalidateMappedMemoryRanges, args[:])
}

// GetPhysicalDeviceMemoryProperties queries memory properties of a physical device.
//
// Wraps vkGetPhysicalDeviceMemoryProperties.
func GetPhysicalDeviceMemoryProperties(cmds *Commands, physicalDevice PhysicalDevice, properties *PhysicalDeviceMemoryProperties) {
	if cmds == nil {
		return
	}

	args := [2]unsafe.Pointer{
		unsafe.Pointer(&physicalDevice),
		unsafe.Pointer(&properties),
	}
	callVoid(&SigVoidHandlePtr, cmds.getPhysicalDeviceMemoryProperties, args[:])
}
