// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"fmt"
	"runtime"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/hal/vulkan/vk"
	"github.com/gogpu/bindless/types"
)

// AccelerationStructure implements hal.AccelerationStructure for Vulkan.
type AccelerationStructure struct {
	handle  vk.AccelerationStructureKHR
	address vk.DeviceAddress
	level   hal.AccelerationStructureLevel
	device  *Device
}

// Destroy releases the acceleration structure.
func (a *AccelerationStructure) Destroy() {
	if a.device != nil {
		a.device.DestroyAccelerationStructure(a)
	}
}

// NativeHandle returns the VkAccelerationStructureKHR handle.
func (a *AccelerationStructure) NativeHandle() uint64 {
	return uint64(a.handle)
}

// DeviceAddress returns the structure's GPU address.
func (a *AccelerationStructure) DeviceAddress() uint64 {
	return a.address
}

// bufferAddress resolves a hal.Buffer to its GPU address plus offset. The
// buffer must have been created with an AS usage (which maps to
// SHADER_DEVICE_ADDRESS on this backend).
func (d *Device) bufferAddress(buffer hal.Buffer, offset uint64) (vk.DeviceAddress, error) {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer == nil {
		return 0, fmt.Errorf("vulkan: buffer is not a Vulkan buffer")
	}
	info := vk.BufferDeviceAddressInfo{
		SType:  vk.StructureTypeBufferDeviceAddressInfo,
		Buffer: vkBuffer.handle,
	}
	addr := d.cmds.GetBufferDeviceAddress(d.handle, &info)
	if addr == 0 {
		return 0, fmt.Errorf("vulkan: buffer has no device address (missing shader-device-address usage?)")
	}
	return addr + offset, nil
}

// asGeometry translates a build input into the Vulkan geometry/range pair
// shared by the size query and the build command. When addresses is false
// (the size query path) buffer addresses are left zero, which
// vkGetAccelerationStructureBuildSizesKHR permits: only counts and
// formats feed the size computation.
func (d *Device) asGeometry(input *hal.AccelerationStructureBuildInput, addresses bool) (vk.AccelerationStructureGeometryKHR, vk.AccelerationStructureBuildRangeInfoKHR, uint32, error) {
	var geom vk.AccelerationStructureGeometryKHR
	var rng vk.AccelerationStructureBuildRangeInfoKHR

	switch {
	case input.Triangles != nil:
		t := input.Triangles
		primitives := t.VertexCount / 3
		if t.IndexBuffer != nil {
			primitives = t.IndexCount / 3
		}

		tri := vk.AccelerationStructureGeometryTrianglesDataKHR{
			SType:        vk.StructureTypeAccelerationStructureGeometryTrianglesDataKhr,
			VertexFormat: vertexFormatToVk(t.VertexFormat),
			VertexStride: vk.DeviceSize(t.VertexStride),
			MaxVertex:    t.VertexCount - 1,
			IndexType:    vk.IndexTypeUint32,
		}
		if t.IndexBuffer == nil {
			// NONE_KHR: non-indexed geometry.
			tri.IndexType = vk.IndexTypeNoneKhr
		} else if t.IndexFormat == types.IndexFormatUint16 {
			tri.IndexType = vk.IndexTypeUint16
		}
		if addresses {
			vaddr, err := d.bufferAddress(t.VertexBuffer, t.VertexOffset)
			if err != nil {
				return geom, rng, 0, fmt.Errorf("vulkan: AS vertex buffer: %w", err)
			}
			tri.VertexData = vaddr
			if t.IndexBuffer != nil {
				iaddr, err := d.bufferAddress(t.IndexBuffer, t.IndexOffset)
				if err != nil {
					return geom, rng, 0, fmt.Errorf("vulkan: AS index buffer: %w", err)
				}
				tri.IndexData = iaddr
			}
		}

		geom = vk.AccelerationStructureGeometryKHR{
			SType:        vk.StructureTypeAccelerationStructureGeometryKhr,
			GeometryType: vk.GeometryTypeTrianglesKhr,
			Flags:        vk.GeometryOpaqueBitKhr,
		}
		geom.Geometry.SetTriangles(tri)
		rng = vk.AccelerationStructureBuildRangeInfoKHR{PrimitiveCount: primitives}
		return geom, rng, primitives, nil

	case input.Instances != nil:
		inst := vk.AccelerationStructureGeometryInstancesDataKHR{
			SType: vk.StructureTypeAccelerationStructureGeometryInstancesDataKhr,
		}
		if addresses {
			addr, err := d.bufferAddress(input.Instances.Buffer, input.Instances.Offset)
			if err != nil {
				return geom, rng, 0, fmt.Errorf("vulkan: AS instance buffer: %w", err)
			}
			inst.Data = addr
		}

		geom = vk.AccelerationStructureGeometryKHR{
			SType:        vk.StructureTypeAccelerationStructureGeometryKhr,
			GeometryType: vk.GeometryTypeInstancesKhr,
		}
		geom.Geometry.SetInstances(inst)
		rng = vk.AccelerationStructureBuildRangeInfoKHR{PrimitiveCount: input.Instances.Count}
		return geom, rng, input.Instances.Count, nil

	default:
		return geom, rng, 0, fmt.Errorf("vulkan: AS build input has no geometry")
	}
}

func asLevelToVk(level hal.AccelerationStructureLevel) vk.AccelerationStructureTypeKHR {
	if level == hal.AccelerationStructureTopLevel {
		return vk.AccelerationStructureTypeTopLevelKhr
	}
	return vk.AccelerationStructureTypeBottomLevelKhr
}

// AccelerationStructureSizes queries the storage/scratch sizes a build
// input requires, via vkGetAccelerationStructureBuildSizesKHR.
func (d *Device) AccelerationStructureSizes(input *hal.AccelerationStructureBuildInput) (hal.AccelerationStructureSizes, error) {
	if input == nil {
		return hal.AccelerationStructureSizes{}, fmt.Errorf("vulkan: build input is nil")
	}
	if !d.cmds.HasAccelerationStructure() {
		return hal.AccelerationStructureSizes{}, fmt.Errorf("vulkan: VK_KHR_acceleration_structure not available")
	}

	geom, _, primitives, err := d.asGeometry(input, false)
	if err != nil {
		return hal.AccelerationStructureSizes{}, err
	}

	buildInfo := vk.AccelerationStructureBuildGeometryInfoKHR{
		SType:         vk.StructureTypeAccelerationStructureBuildGeometryInfoKhr,
		Type:          asLevelToVk(input.Level),
		Flags:         vk.BuildAccelerationStructurePreferFastTraceBitKhr,
		Mode:          vk.BuildAccelerationStructureModeBuildKhr,
		GeometryCount: 1,
		PGeometries:   &geom,
	}

	sizesInfo := vk.AccelerationStructureBuildSizesInfoKHR{
		SType: vk.StructureTypeAccelerationStructureBuildSizesInfoKhr,
	}
	maxPrimitives := primitives
	d.cmds.GetAccelerationStructureBuildSizesKHR(d.handle,
		vk.AccelerationStructureBuildTypeDeviceKhr, &buildInfo, &maxPrimitives, &sizesInfo)
	runtime.KeepAlive(&geom)

	return hal.AccelerationStructureSizes{
		AccelerationStructureSize: sizesInfo.AccelerationStructureSize,
		BuildScratchSize:          sizesInfo.BuildScratchSize,
	}, nil
}

// CreateAccelerationStructure creates the structure object over its
// caller-supplied storage buffer.
func (d *Device) CreateAccelerationStructure(desc *hal.AccelerationStructureDescriptor) (hal.AccelerationStructure, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: acceleration structure descriptor is nil")
	}
	if !d.cmds.HasAccelerationStructure() {
		return nil, fmt.Errorf("vulkan: VK_KHR_acceleration_structure not available")
	}
	storage, ok := desc.Buffer.(*Buffer)
	if !ok || storage == nil {
		return nil, fmt.Errorf("vulkan: AS storage is not a Vulkan buffer")
	}

	createInfo := vk.AccelerationStructureCreateInfoKHR{
		SType:  vk.StructureTypeAccelerationStructureCreateInfoKhr,
		Buffer: storage.handle,
		Offset: vk.DeviceSize(desc.Offset),
		Size:   vk.DeviceSize(desc.Size),
		Type:   asLevelToVk(desc.Level),
	}

	var handle vk.AccelerationStructureKHR
	result := d.cmds.CreateAccelerationStructureKHR(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateAccelerationStructureKHR failed: %d", result)
	}

	addrInfo := vk.AccelerationStructureDeviceAddressInfoKHR{
		SType:                 vk.StructureTypeAccelerationStructureDeviceAddressInfoKhr,
		AccelerationStructure: handle,
	}
	address := d.cmds.GetAccelerationStructureDeviceAddressKHR(d.handle, &addrInfo)

	return &AccelerationStructure{
		handle:  handle,
		address: address,
		level:   desc.Level,
		device:  d,
	}, nil
}

// DestroyAccelerationStructure destroys an acceleration structure. The
// storage buffer stays alive; it belongs to the caller.
func (d *Device) DestroyAccelerationStructure(as hal.AccelerationStructure) {
	vkAS, ok := as.(*AccelerationStructure)
	if !ok || vkAS == nil {
		return
	}
	if vkAS.handle != 0 {
		d.cmds.DestroyAccelerationStructureKHR(d.handle, vkAS.handle, nil)
		vkAS.handle = 0
	}
	vkAS.device = nil
}

// BuildAccelerationStructure records one build via
// vkCmdBuildAccelerationStructuresKHR.
func (e *CommandEncoder) BuildAccelerationStructure(desc *hal.AccelerationStructureBuildDescriptor) {
	if !e.isRecording || desc == nil {
		return
	}
	dst, ok := desc.Destination.(*AccelerationStructure)
	if !ok || dst == nil {
		return
	}

	geom, rng, _, err := e.device.asGeometry(&desc.Input, true)
	if err != nil {
		return
	}
	scratch, err := e.device.bufferAddress(desc.Scratch, desc.ScratchOffset)
	if err != nil {
		return
	}

	buildInfo := vk.AccelerationStructureBuildGeometryInfoKHR{
		SType:                    vk.StructureTypeAccelerationStructureBuildGeometryInfoKhr,
		Type:                     asLevelToVk(desc.Input.Level),
		Flags:                    vk.BuildAccelerationStructurePreferFastTraceBitKhr,
		Mode:                     vk.BuildAccelerationStructureModeBuildKhr,
		DstAccelerationStructure: dst.handle,
		GeometryCount:            1,
		PGeometries:              &geom,
		ScratchData:              scratch,
	}

	rangePtr := &rng
	e.device.cmds.CmdBuildAccelerationStructuresKHR(e.cmdBuffer, 1, &buildInfo, &rangePtr)
	runtime.KeepAlive(&geom)
	runtime.KeepAlive(&rng)
}
