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

// Queue implements hal.Queue for Vulkan.
type Queue struct {
	handle      vk.Queue
	device      *Device
	familyIndex uint32
}

// Submit submits command buffers to the GPU.
//
// When fence is a timeline-backed Fence, the submit signals its timeline
// semaphore with fenceValue so Device.Wait can block on exactly this
// submission. On the binary-fence fallback path a pooled VkFence tagged
// with fenceValue is attached instead.
func (q *Queue) Submit(commandBuffers []hal.CommandBuffer, fence hal.Fence, fenceValue uint64) error {
	if len(commandBuffers) == 0 && fence == nil {
		return nil
	}

	// Convert command buffers to Vulkan handles. An empty submit is still
	// issued when a fence is attached, so the timeline advances.
	vkCmdBuffers := make([]vk.CommandBuffer, len(commandBuffers))
	for i, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers[i] = vkCB.handle
	}

	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: uint32(len(vkCmdBuffers)),
	}
	if len(vkCmdBuffers) > 0 {
		submitInfo.PCommandBuffers = &vkCmdBuffers[0]
	}

	var nativeFence vk.Fence
	var timelineInfo vk.TimelineSemaphoreSubmitInfo
	var signalSem vk.Semaphore
	var signalValue uint64

	if vkF, ok := fence.(*Fence); ok && vkF.inner != nil {
		if vkF.inner.isTimeline {
			signalSem = vkF.inner.timelineSemaphore
			signalValue = fenceValue
			timelineInfo = vk.TimelineSemaphoreSubmitInfo{
				SType:                     vk.StructureTypeTimelineSemaphoreSubmitInfo,
				SignalSemaphoreValueCount: 1,
				PSignalSemaphoreValues:    &signalValue,
			}
			submitInfo.PNext = (*uintptr)(unsafe.Pointer(&timelineInfo))
			submitInfo.SignalSemaphoreCount = 1
			submitInfo.PSignalSemaphores = &signalSem
			vkF.inner.lastSignaled.Store(fenceValue)
		} else {
			pooled, err := vkF.inner.pool.signal(q.device.cmds, q.device.handle, fenceValue)
			if err != nil {
				return err
			}
			nativeFence = pooled
			vkF.inner.lastSignaled.Store(fenceValue)
		}
	}

	result := q.device.cmds.QueueSubmit(q.handle, 1, &submitInfo, nativeFence)
	runtime.KeepAlive(vkCmdBuffers)
	runtime.KeepAlive(&timelineInfo)
	runtime.KeepAlive(&signalValue)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkQueueSubmit failed: %d", result)
	}

	return nil
}

// SubmitForPresent submits command buffers with swapchain synchronization.
func (q *Queue) SubmitForPresent(commandBuffers []hal.CommandBuffer, swapchain *Swapchain) error {
	if len(commandBuffers) == 0 {
		return nil
	}

	// Convert command buffers to Vulkan handles
	vkCmdBuffers := make([]vk.CommandBuffer, len(commandBuffers))
	for i, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers[i] = vkCB.handle
	}

	waitStage := vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)

	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      &swapchain.imageAvailable,
		PWaitDstStageMask:    &waitStage,
		CommandBufferCount:   uint32(len(vkCmdBuffers)),
		PCommandBuffers:      &vkCmdBuffers[0],
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    &swapchain.renderFinished,
	}

	result := q.device.cmds.QueueSubmit(q.handle, 1, &submitInfo, 0)
	runtime.KeepAlive(vkCmdBuffers)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkQueueSubmit failed: %d", result)
	}

	return nil
}

// WriteBuffer writes data to a buffer immediately.
//
// Host-visible buffers are written through the mapped pointer; device-local
// buffers go through a transient staging buffer and a blocking copy.
func (q *Queue) WriteBuffer(buffer hal.Buffer, offset uint64, data []byte) error {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer.memory == nil {
		return fmt.Errorf("vulkan: buffer is not a Vulkan buffer")
	}
	if len(data) == 0 {
		return nil
	}

	if vkBuffer.memory.MappedPtr != 0 {
		copyToMappedMemory(vkBuffer.memory.MappedPtr, offset, data)
		return nil
	}

	staging, err := q.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "write-staging",
		Size:  uint64(len(data)),
		Usage: types.BufferUsageMapWrite | types.BufferUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("vulkan: staging allocation failed: %w", err)
	}
	defer q.device.DestroyBuffer(staging)

	stagingBuf := staging.(*Buffer)
	if stagingBuf.memory.MappedPtr == 0 {
		return fmt.Errorf("vulkan: staging buffer is not host-visible")
	}
	copyToMappedMemory(stagingBuf.memory.MappedPtr, 0, data)

	return q.blockingCopy(stagingBuf.handle, vkBuffer.handle, 0, offset, uint64(len(data)))
}

// ReadBuffer reads buffer contents back to the host.
//
// Host-visible buffers are read through the mapped pointer; device-local
// buffers go through a transient staging buffer and a blocking copy.
func (q *Queue) ReadBuffer(buffer hal.Buffer, offset uint64, dst []byte) error {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer.memory == nil {
		return fmt.Errorf("vulkan: buffer is not a Vulkan buffer")
	}
	if len(dst) == 0 {
		return nil
	}

	if vkBuffer.memory.MappedPtr != 0 {
		copyFromMappedMemory(dst, vkBuffer.memory.MappedPtr, offset)
		return nil
	}

	staging, err := q.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "read-staging",
		Size:  uint64(len(dst)),
		Usage: types.BufferUsageMapRead | types.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("vulkan: staging allocation failed: %w", err)
	}
	defer q.device.DestroyBuffer(staging)

	stagingBuf := staging.(*Buffer)
	if stagingBuf.memory.MappedPtr == 0 {
		return fmt.Errorf("vulkan: staging buffer is not host-visible")
	}

	if err := q.blockingCopy(vkBuffer.handle, stagingBuf.handle, offset, 0, uint64(len(dst))); err != nil {
		return err
	}

	copyFromMappedMemory(dst, stagingBuf.memory.MappedPtr, 0)
	return nil
}

// blockingCopy records a single vkCmdCopyBuffer, submits it, and waits for
// the queue to drain. Only used by the immediate Write/ReadBuffer
// convenience paths; batched transfers go through the command encoder.
func (q *Queue) blockingCopy(src, dst vk.Buffer, srcOffset, dstOffset, size uint64) error {
	encoder, err := q.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "queue-copy"})
	if err != nil {
		return err
	}
	if err := encoder.BeginEncoding("queue-copy"); err != nil {
		return err
	}

	vkEncoder := encoder.(*CommandEncoder)
	region := vk.BufferCopy{
		SrcOffset: vk.DeviceSize(srcOffset),
		DstOffset: vk.DeviceSize(dstOffset),
		Size:      vk.DeviceSize(size),
	}
	q.device.cmds.CmdCopyBuffer(vkEncoder.cmdBuffer, src, dst, 1, &region)

	cmdBuffer, err := encoder.EndEncoding()
	if err != nil {
		return err
	}

	if err := q.Submit([]hal.CommandBuffer{cmdBuffer}, nil, 0); err != nil {
		return err
	}

	result := q.device.cmds.QueueWaitIdle(q.handle)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkQueueWaitIdle failed: %d", result)
	}
	return nil
}

// WriteTexture writes data to a texture immediately through a staging
// buffer and a blocking buffer-to-image copy.
func (q *Queue) WriteTexture(dst *hal.ImageCopyTexture, data []byte, layout *hal.ImageDataLayout, size *hal.Extent3D) {
	if dst == nil || size == nil || len(data) == 0 {
		return
	}
	vkTexture, ok := dst.Texture.(*Texture)
	if !ok {
		return
	}

	staging, err := q.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "texture-staging",
		Size:  uint64(len(data)),
		Usage: types.BufferUsageMapWrite | types.BufferUsageCopySrc,
	})
	if err != nil {
		return
	}
	defer q.device.DestroyBuffer(staging)

	stagingBuf := staging.(*Buffer)
	if stagingBuf.memory.MappedPtr == 0 {
		return
	}
	copyToMappedMemory(stagingBuf.memory.MappedPtr, 0, data)

	encoder, err := q.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "queue-write-texture"})
	if err != nil {
		return
	}
	if err := encoder.BeginEncoding("queue-write-texture"); err != nil {
		return
	}
	vkEncoder := encoder.(*CommandEncoder)

	// UNDEFINED -> TRANSFER_DST before the copy; the caller is responsible
	// for any further transition.
	barrier := vk.ImageMemoryBarrier{
		SType:               vk.StructureTypeImageMemoryBarrier,
		DstAccessMask:       vk.AccessTransferWriteBit,
		OldLayout:           vk.ImageLayoutUndefined,
		NewLayout:           vk.ImageLayoutTransferDstOptimal,
		SrcQueueFamilyIndex: vk.QueueFamilyIgnored,
		DstQueueFamilyIndex: vk.QueueFamilyIgnored,
		Image:               vkTexture.handle,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     textureAspectToVk(dst.Aspect, vkTexture.format),
			BaseMipLevel:   dst.MipLevel,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     vk.RemainingArrayLayers,
		},
	}
	q.device.cmds.CmdPipelineBarrier(vkEncoder.cmdBuffer,
		vk.PipelineStageTopOfPipeBit, vk.PipelineStageTransferBit, 0,
		0, nil, 0, nil, 1, &barrier)

	var bytesPerRow, rowsPerImage uint32
	if layout != nil {
		bytesPerRow = layout.BytesPerRow
		rowsPerImage = layout.RowsPerImage
	}
	region := vk.BufferImageCopy{
		BufferRowLength:   bytesPerRow,
		BufferImageHeight: rowsPerImage,
		ImageSubresource: vk.ImageSubresourceLayers{
			AspectMask:     textureAspectToVk(dst.Aspect, vkTexture.format),
			MipLevel:       dst.MipLevel,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
		ImageOffset: vk.Offset3D{
			X: int32(dst.Origin.X),
			Y: int32(dst.Origin.Y),
			Z: int32(dst.Origin.Z),
		},
		ImageExtent: vk.Extent3D{
			Width:  size.Width,
			Height: size.Height,
			Depth:  size.DepthOrArrayLayers,
		},
	}
	q.device.cmds.CmdCopyBufferToImage(vkEncoder.cmdBuffer, stagingBuf.handle,
		vkTexture.handle, vk.ImageLayoutTransferDstOptimal, 1, &region)

	cmdBuffer, err := encoder.EndEncoding()
	if err != nil {
		return
	}
	if err := q.Submit([]hal.CommandBuffer{cmdBuffer}, nil, 0); err != nil {
		return
	}
	_ = q.device.cmds.QueueWaitIdle(q.handle)
}

// Present presents a surface texture to the screen.
func (q *Queue) Present(surface hal.Surface, texture hal.SurfaceTexture) error {
	vkSurface, ok := surface.(*Surface)
	if !ok {
		return fmt.Errorf("vulkan: surface is not a Vulkan surface")
	}

	if vkSurface.swapchain == nil {
		return fmt.Errorf("vulkan: surface not configured")
	}

	return vkSurface.swapchain.present(q)
}

// GetTimestampPeriod returns the timestamp period in nanoseconds.
func (q *Queue) GetTimestampPeriod() float32 {
	var props vk.PhysicalDeviceProperties
	q.device.cmds.GetPhysicalDeviceProperties(q.device.physicalDevice, &props)
	if props.Limits.TimestampPeriod == 0 {
		return 1.0
	}
	return props.Limits.TimestampPeriod
}
