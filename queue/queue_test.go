package queue

import (
	"testing"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/hal/noop"
	"github.com/gogpu/bindless/types"
)

func newTestQueue(t *testing.T) (*CommandQueue, *noop.Device) {
	t.Helper()
	device := &noop.Device{}
	fence, err := device.CreateFence()
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	return New(types.QueueGraphics, device, &noop.Queue{}, fence), device
}

func TestCommandQueue_FlushSignalsNextTimelineValue(t *testing.T) {
	q, _ := newTestQueue(t)

	handle, err := q.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if handle.Value != 1 {
		t.Errorf("handle.Value = %d, want 1", handle.Value)
	}

	handle2, err := q.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if handle2.Value != 2 {
		t.Errorf("handle.Value = %d, want 2", handle2.Value)
	}
}

func TestCommandQueue_SubmitBatchesUntilFlush(t *testing.T) {
	q, device := newTestQueue(t)

	var cmds []hal.CommandBuffer
	enc, err := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "t"})
	if err != nil {
		t.Fatalf("CreateCommandEncoder: %v", err)
	}
	if err := enc.BeginEncoding(""); err != nil {
		t.Fatalf("BeginEncoding: %v", err)
	}
	cmd, err := enc.EndEncoding()
	if err != nil {
		t.Fatalf("EndEncoding: %v", err)
	}
	cmds = append(cmds, cmd)

	q.Submit(cmds[0])
	q.Submit(cmds[0])
	if len(q.batch) != 2 {
		t.Fatalf("batch len = %d, want 2 before flush", len(q.batch))
	}

	if _, err := q.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(q.batch) != 0 {
		t.Errorf("batch len = %d, want 0 after flush", len(q.batch))
	}
}

func TestCommandQueue_WaitValueBlocksUntilSignalled(t *testing.T) {
	q, _ := newTestQueue(t)

	handle, err := q.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}

	if err := q.WaitValue(handle.Value); err != nil {
		t.Errorf("WaitValue: %v", err)
	}
}

func TestCommandQueue_GetTimelineSemaphoreFlushesPendingBatch(t *testing.T) {
	q, device := newTestQueue(t)

	enc, _ := device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "t"})
	_ = enc.BeginEncoding("")
	cmd, _ := enc.EndEncoding()
	q.Submit(cmd)

	handle, err := q.GetTimelineSemaphore()
	if err != nil {
		t.Fatalf("GetTimelineSemaphore: %v", err)
	}
	if handle.Value != 1 {
		t.Errorf("handle.Value = %d, want 1", handle.Value)
	}
	if len(q.batch) != 0 {
		t.Errorf("batch len = %d, want 0 after GetTimelineSemaphore", len(q.batch))
	}
}
