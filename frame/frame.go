package frame

import (
	"fmt"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/queue"
)

// Context is one slot of the frame ring: its own recording threads, its own
// swapchain handshake semaphores, and its own garbage list, so that frame N
// and frame N+1 can be in flight on the GPU at once without either stepping
// on the other's resources.
type Context struct {
	Index int

	Pools *queue.CommandPools

	ImageAvailable *queue.BinarySemaphore
	RenderFinished *queue.BinarySemaphore

	SwapchainImageIndex uint32

	Garbage *Garbages

	// timeline is the graphics queue's timeline value this slot's prior
	// occupant signalled at end-of-frame; zero means this slot has never
	// been used yet (the first max_frames_in_flight frames skip the wait).
	timeline queue.TimelineValue

	// recorded tracks which command buffers each worker produced last time
	// this slot was used, so Begin knows what to recycle via Pools.Reset.
	recorded [][]hal.CommandBuffer
}

// Begin is the start-of-frame half of the FrameContext lifecycle: wait for
// the GPU to finish the work this slot carried max_frames_in_flight frames
// ago, drain the garbage that work was holding onto, then recycle the
// slot's command buffers for this frame's recording.
func (c *Context) Begin(graphicsQueue *queue.CommandQueue, device hal.Device, descriptors DescriptorFreer) error {
	if c.timeline > 0 {
		if err := graphicsQueue.WaitValue(c.timeline); err != nil {
			return fmt.Errorf("frame: begin frame %d: %w", c.Index, err)
		}
	}

	c.Garbage.Drain(device, descriptors)

	if len(c.recorded) > 0 {
		c.Pools.Reset(c.recorded)
		c.recorded = nil
	}

	return nil
}

// NoteRecorded registers a command buffer worker i produced this frame so
// the next occupant of this slot can recycle it in Begin.
func (c *Context) NoteRecorded(worker int, buf hal.CommandBuffer) {
	for len(c.recorded) <= worker {
		c.recorded = append(c.recorded, nil)
	}
	c.recorded[worker] = append(c.recorded[worker], buf)
}

// End is the end-of-frame half of the lifecycle: record the timeline value
// the graphics queue's end-of-frame submission (or present) signalled, so a
// future Begin on this same slot knows what to wait for.
func (c *Context) End(value queue.TimelineValue) {
	c.timeline = value
}

// Ring is the fixed-size FrameContext ring, sized
// max_frames_in_flight. It owns one Context per slot and the cursor
// selecting which slot is "current".
type Ring struct {
	frames []*Context
	cursor int
}

// NewRing creates a ring of the given size, each slot with its own
// CommandPools (workerCount recording threads, matching the render graph's
// parallel secondary-buffer recording contract) and its own pair of
// swapchain handshake semaphores.
func NewRing(device hal.Device, size, workerCount int) (*Ring, error) {
	if size < 1 {
		size = 1
	}

	frames := make([]*Context, size)
	for i := range frames {
		pools, err := queue.NewCommandPools(device, workerCount)
		if err != nil {
			for _, f := range frames[:i] {
				f.Pools.Destroy()
			}
			return nil, fmt.Errorf("frame: create ring slot %d: %w", i, err)
		}
		frames[i] = &Context{
			Index:          i,
			Pools:          pools,
			ImageAvailable: queue.NewBinarySemaphore(fmt.Sprintf("image-available-%d", i)),
			RenderFinished: queue.NewBinarySemaphore(fmt.Sprintf("render-finished-%d", i)),
			Garbage:        &Garbages{},
		}
	}

	return &Ring{frames: frames}, nil
}

// Len returns max_frames_in_flight.
func (r *Ring) Len() int { return len(r.frames) }

// Current returns the slot the ring cursor currently points at.
func (r *Ring) Current() *Context { return r.frames[r.cursor] }

// Advance moves the cursor to the next slot modulo the ring size. Callers
// call this once per frame after End.
func (r *Ring) Advance() {
	r.cursor = (r.cursor + 1) % len(r.frames)
}

// Destroy stops every slot's recording threads. Called once at shutdown,
// after the device has idled.
func (r *Ring) Destroy() {
	for _, c := range r.frames {
		if c.Pools != nil {
			c.Pools.Destroy()
		}
	}
}
