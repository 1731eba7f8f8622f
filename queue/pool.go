package queue

import (
	"fmt"
	"sync"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/internal/thread"
)

// CommandPools hands out one recording thread per render-graph worker,
// mirroring internal/thread.Thread's dedicated-OS-thread model (required
// because command-buffer recording on some backends must stay pinned to the
// thread that created the pool it allocates from). Each worker gets its own
// hal.Device.CreateCommandEncoder call, so encoders never cross threads.
type CommandPools struct {
	mu      sync.Mutex
	device  hal.Device
	workers []*worker
}

type worker struct {
	thread  *thread.Thread
	encoder hal.CommandEncoder
}

// NewCommandPools creates workerCount dedicated recording threads, each
// holding its own command encoder, ready to record secondary command
// buffers for render-graph passes in parallel.
func NewCommandPools(device hal.Device, workerCount int) (*CommandPools, error) {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &CommandPools{device: device, workers: make([]*worker, workerCount)}

	for i := range p.workers {
		w := &worker{thread: thread.New()}
		var createErr error
		label := fmt.Sprintf("command-pool-worker-%d", i)
		w.thread.CallVoid(func() {
			w.encoder, createErr = device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: label})
		})
		if createErr != nil {
			p.Destroy()
			return nil, fmt.Errorf("queue: create command pool %d: %w", i, createErr)
		}
		p.workers[i] = w
	}

	return p, nil
}

// WorkerCount returns the number of dedicated recording threads.
func (p *CommandPools) WorkerCount() int {
	return len(p.workers)
}

// Record runs fn on worker i's dedicated thread with that worker's command
// encoder, returning the finished command buffer. fn must call
// encoder.BeginEncoding and encoder.EndEncoding itself so it can record
// whatever pass-specific commands it needs in between.
func (p *CommandPools) Record(i int, fn func(hal.CommandEncoder) (hal.CommandBuffer, error)) (hal.CommandBuffer, error) {
	w := p.workers[i]
	var (
		cmd hal.CommandBuffer
		err error
	)
	w.thread.CallVoid(func() {
		cmd, err = fn(w.encoder)
	})
	return cmd, err
}

// Reset recycles every worker's command buffers for the next frame via
// hal.CommandEncoder.ResetAll, run on each worker's own thread.
func (p *CommandPools) Reset(buffers [][]hal.CommandBuffer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, w := range p.workers {
		if i >= len(buffers) || len(buffers[i]) == 0 {
			continue
		}
		bufs := buffers[i]
		w.thread.CallVoid(func() {
			w.encoder.ResetAll(bufs)
		})
	}
}

// Destroy stops every worker thread. Command encoders are backend-owned and
// released along with the device.
func (p *CommandPools) Destroy() {
	for _, w := range p.workers {
		if w == nil {
			continue
		}
		w.thread.Stop()
	}
}
