// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vulkan

import (
	"testing"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/hal/vulkan/vk"
	"github.com/gogpu/bindless/types"
)

// BindlessTable must satisfy the slot-writer contract the bindless
// allocator hands native writes to.
var _ bindless.Writer = (*BindlessTable)(nil)

// TestImageLayoutToVk tests the portable-to-Vulkan layout mapping.
func TestImageLayoutToVk(t *testing.T) {
	tests := []struct {
		name   string
		layout types.ImageLayout
		expect vk.ImageLayout
	}{
		{"Undefined", types.ImageLayoutUndefined, vk.ImageLayoutUndefined},
		{"General", types.ImageLayoutGeneral, vk.ImageLayoutGeneral},
		{"ColorAttachment", types.ImageLayoutColorAttachmentOptimal, vk.ImageLayoutColorAttachmentOptimal},
		{"DepthStencilAttachment", types.ImageLayoutDepthStencilAttachmentOptimal, vk.ImageLayoutDepthStencilAttachmentOptimal},
		{"ShaderReadOnly", types.ImageLayoutShaderReadOnlyOptimal, vk.ImageLayoutShaderReadOnlyOptimal},
		{"TransferSrc", types.ImageLayoutTransferSrcOptimal, vk.ImageLayoutTransferSrcOptimal},
		{"TransferDst", types.ImageLayoutTransferDstOptimal, vk.ImageLayoutTransferDstOptimal},
		{"PresentSrc", types.ImageLayoutPresentSrc, vk.ImageLayoutPresentSrcKhr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := imageLayoutToVk(tt.layout); got != tt.expect {
				t.Errorf("imageLayoutToVk(%v) = %v, want %v", tt.layout, got, tt.expect)
			}
		})
	}
}

// TestBindlessTableHandles tests handle accessors on an unopened table.
func TestBindlessTableHandles(t *testing.T) {
	table := &BindlessTable{
		pipelineLayout: vk.PipelineLayout(77),
		sets: [5]vk.DescriptorSet{
			vk.DescriptorSet(1),
			vk.DescriptorSet(2),
			vk.DescriptorSet(3),
			vk.DescriptorSet(4),
			vk.DescriptorSet(5),
		},
	}

	if table.PipelineLayout() != vk.PipelineLayout(77) {
		t.Errorf("PipelineLayout() = %v, want 77", table.PipelineLayout())
	}
	sets := table.Sets()
	for i, want := range [5]uint64{1, 2, 3, 4, 5} {
		if sets[i] != vk.DescriptorSet(want) {
			t.Errorf("Sets()[%d] = %v, want %v", i, sets[i], want)
		}
	}
}
