package frame

import (
	"testing"

	"github.com/gogpu/bindless/hal/noop"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/types"
)

func newTestQueue(t *testing.T) (*queue.CommandQueue, *noop.Device) {
	t.Helper()
	device := &noop.Device{}
	fence, err := device.CreateFence()
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	return queue.New(types.QueueGraphics, device, &noop.Queue{}, fence), device
}

func TestNewRing_CreatesRequestedSlots(t *testing.T) {
	device := &noop.Device{}
	ring, err := NewRing(device, 3, 2)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	defer ring.Destroy()

	if ring.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", ring.Len())
	}
	for i := 0; i < ring.Len(); i++ {
		if ring.Current().Index != i {
			t.Errorf("slot %d: Current().Index = %d", i, ring.Current().Index)
		}
		if ring.Current().Pools.WorkerCount() != 2 {
			t.Errorf("slot %d: WorkerCount() = %d, want 2", i, ring.Current().Pools.WorkerCount())
		}
		ring.Advance()
	}
	// A full lap returns to slot 0.
	if ring.Current().Index != 0 {
		t.Errorf("after full lap, Current().Index = %d, want 0", ring.Current().Index)
	}
}

func TestNewRing_DefaultsToOneSlot(t *testing.T) {
	device := &noop.Device{}
	ring, err := NewRing(device, 0, 1)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	defer ring.Destroy()

	if ring.Len() != 1 {
		t.Errorf("Len() = %d, want 1", ring.Len())
	}
}

func TestContext_BeginWithoutPriorUseSkipsWait(t *testing.T) {
	device := &noop.Device{}
	ring, err := NewRing(device, 2, 1)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	defer ring.Destroy()

	q, _ := newTestQueue(t)
	c := ring.Current()
	if err := c.Begin(q, device, nil); err != nil {
		t.Fatalf("Begin on a never-used slot: %v", err)
	}
}

func TestContext_EndThenBeginWaitsOnRecordedTimeline(t *testing.T) {
	device := &noop.Device{}
	ring, err := NewRing(device, 2, 1)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	defer ring.Destroy()

	q, _ := newTestQueue(t)
	c := ring.Current()

	handle, err := q.Flush()
	if err != nil {
		t.Fatalf("Flush: %v", err)
	}
	c.End(handle.Value)
	ring.Advance()
	ring.Advance() // back to slot 0

	if err := ring.Current().Begin(q, device, nil); err != nil {
		t.Errorf("Begin after End: %v", err)
	}
}

func TestContext_NoteRecordedGrowsPerWorker(t *testing.T) {
	device := &noop.Device{}
	ring, err := NewRing(device, 1, 2)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	defer ring.Destroy()

	c := ring.Current()
	// NoteRecorded just needs to not panic when registering a sparse index.
	c.NoteRecorded(1, nil)
	if len(c.recorded) != 2 {
		t.Fatalf("recorded slots = %d, want 2", len(c.recorded))
	}
	if len(c.recorded[1]) != 1 {
		t.Errorf("recorded[1] len = %d, want 1", len(c.recorded[1]))
	}
}
