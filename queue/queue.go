// Package queue implements the command-queue and timeline-semaphore model:
// one CommandQueue per queue family, each owning a timeline whose value
// increments once per submission, built on hal.Queue/hal.Fence (whose
// Submit(..., fence, fenceValue)/Wait(fence, value, timeout) signature is
// already a timeline semaphore, just without the name) and on the batching
// behavior of hal/vulkan/queue.go's Submit/SubmitForPresent.
package queue

import (
	"fmt"
	"sync"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// TimelineValue identifies a point on a queue's timeline semaphore.
type TimelineValue uint64

// Handle bundles the identifying information a cross-queue wait needs:
// which family, which native fence, and the value to wait for.
type Handle struct {
	Family types.Queue
	Fence  hal.Fence
	Value  TimelineValue
}

// CommandQueue wraps a single hal.Queue with the timeline-semaphore
// bookkeeping and command-buffer batching the render graph relies on.
type CommandQueue struct {
	mu sync.Mutex

	family types.Queue
	raw    hal.Queue
	device hal.Device
	fence  hal.Fence

	current TimelineValue
	batch   []hal.CommandBuffer
}

// New creates a CommandQueue for one queue family. The fence is the
// family's timeline semaphore, created once via device.CreateFence().
func New(family types.Queue, device hal.Device, raw hal.Queue, fence hal.Fence) *CommandQueue {
	return &CommandQueue{family: family, raw: raw, device: device, fence: fence}
}

// Family returns the queue family this CommandQueue submits to.
func (q *CommandQueue) Family() types.Queue {
	return q.family
}

// Raw returns the underlying hal.Queue, for callers that need its
// WriteBuffer/WriteTexture immediate-upload convenience methods (the
// initializer package) rather than explicit command recording.
func (q *CommandQueue) Raw() hal.Queue {
	return q.raw
}

// Device returns the hal.Device this queue belongs to.
func (q *CommandQueue) Device() hal.Device {
	return q.device
}

// Submit appends cmd to the pending batch without flushing. Use Flush (or
// Present, which flushes implicitly) to actually submit to the GPU.
func (q *CommandQueue) Submit(cmd hal.CommandBuffer) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.batch = append(q.batch, cmd)
}

// Flush emits a single vkQueueSubmit-equivalent call with every batched
// command buffer, signaling the timeline to the next value, and returns the
// Handle other queues can wait on.
func (q *CommandQueue) Flush() (Handle, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.flushLocked()
}

func (q *CommandQueue) flushLocked() (Handle, error) {
	q.current++
	cmds := q.batch
	q.batch = nil

	if err := q.raw.Submit(cmds, q.fence, uint64(q.current)); err != nil {
		q.current--
		return Handle{}, fmt.Errorf("queue: submit on %s failed: %w", q.family, err)
	}

	return Handle{Family: q.family, Fence: q.fence, Value: q.current}, nil
}

// Present flushes the batch, signaling this queue's timeline, and issues a
// present of the given surface texture. Present is only meaningful on the
// graphics queue.
func (q *CommandQueue) Present(surface hal.Surface, texture hal.SurfaceTexture) (Handle, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	handle, err := q.flushLocked()
	if err != nil {
		return Handle{}, err
	}

	if err := q.raw.Present(surface, texture); err != nil {
		return Handle{}, fmt.Errorf("queue: present on %s failed: %w", q.family, err)
	}
	return handle, nil
}

// GetTimelineSemaphore flushes pending work and returns a Handle describing
// the current value, for another queue to wait on.
func (q *CommandQueue) GetTimelineSemaphore() (Handle, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.batch) == 0 {
		return Handle{Family: q.family, Fence: q.fence, Value: q.current}, nil
	}
	return q.flushLocked()
}

// WaitValue blocks the calling goroutine (a CPU-side wait, not a GPU
// dependency) until the queue's timeline reaches value.
func (q *CommandQueue) WaitValue(value TimelineValue) error {
	ok, err := q.device.Wait(q.fence, uint64(value), 0)
	if err != nil {
		return fmt.Errorf("queue: wait on %s failed: %w", q.family, err)
	}
	if !ok {
		return fmt.Errorf("queue: wait on %s timed out at value %d", q.family, value)
	}
	return nil
}
