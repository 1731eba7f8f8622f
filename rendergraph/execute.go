package rendergraph

import (
	"fmt"

	"github.com/gogpu/bindless/frame"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/types"
)

// Execute is the recording-and-submission phase: each
// compiled pass is recorded against its own worker thread's command
// encoder (via pool, which may run workers concurrently - recording is
// pure CPU work once barriers and render-pass descriptors are already
// derived), then submitted to its queue family's CommandQueue in the
// graph's declared pass order, since that order is what the barriers in
// Compile assumed.
//
// hal.Queue.Submit has no GPU-side wait-semaphore parameter, so a pass
// whose compiledPass.waitQueues names a source family is preceded by a
// CPU-side flush-then-block on that family's timeline (the same pattern
// Initializer.Flush in initializer/initializer.go uses) before its
// command buffer is submitted - never before it is recorded, since
// recording does not touch the GPU.
//
// queues must contain a *queue.CommandQueue for every family any pass in
// this graph targets, keyed by its Family(). Execute returns, per family
// actually used, the Handle its final submission in this call produced -
// the caller uses the graphics family's value for frame.Context.End and,
// for a graph with a swapchain node, to decide when the image is safe to
// present.
func (cg *CompiledGraph) Execute(fc *frame.Context, queues map[types.Queue]*queue.CommandQueue, pool Pool) (map[types.Queue]queue.Handle, error) {
	if pool == nil {
		pool = NewSyncPool()
	}
	workers := fc.Pools.WorkerCount()
	if workers < 1 {
		workers = 1
	}

	cmds := make([]hal.CommandBuffer, len(cg.passes))
	errs := make([]error, len(cg.passes))

	for i, cp := range cg.passes {
		i, cp := i, cp
		workerIdx := i % workers
		pool.Go(func() {
			cmds[i], errs[i] = cg.recordPass(fc, workerIdx, cp)
		})
	}
	pool.Wait()

	used := map[types.Queue]bool{}
	for i, cp := range cg.passes {
		if errs[i] != nil {
			return nil, errs[i]
		}

		dst, ok := queues[cp.pass.queue]
		if !ok {
			return nil, fmt.Errorf("rendergraph: no CommandQueue registered for family %s", cp.pass.queue)
		}

		for _, srcFamily := range cp.waitQueues {
			src, ok := queues[srcFamily]
			if !ok {
				return nil, fmt.Errorf("rendergraph: no CommandQueue registered for wait family %s", srcFamily)
			}
			handle, err := src.GetTimelineSemaphore()
			if err != nil {
				return nil, fmt.Errorf("rendergraph: flush %s before %s: %w", srcFamily, cp.pass.queue, err)
			}
			if err := src.WaitValue(handle.Value); err != nil {
				return nil, fmt.Errorf("rendergraph: wait %s before %s: %w", srcFamily, cp.pass.queue, err)
			}
		}

		dst.Submit(cmds[i])
		fc.NoteRecorded(i%workers, cmds[i])
		used[cp.pass.queue] = true
	}

	handles := make(map[types.Queue]queue.Handle, len(used))
	for family := range used {
		handle, err := queues[family].Flush()
		if err != nil {
			return nil, fmt.Errorf("rendergraph: flush %s: %w", family, err)
		}
		handles[family] = handle
	}

	return handles, nil
}

// recordPass records one pass's commands on the given worker: barriers
// first, then the encoder shape its PassKind dictates, then the pass
// body's own Execute callback.
func (cg *CompiledGraph) recordPass(fc *frame.Context, workerIdx int, cp *compiledPass) (hal.CommandBuffer, error) {
	return fc.Pools.Record(workerIdx, func(enc hal.CommandEncoder) (hal.CommandBuffer, error) {
		label := cp.pass.name
		if err := enc.BeginEncoding(label); err != nil {
			return nil, fmt.Errorf("rendergraph: begin encoding pass %q: %w", label, err)
		}

		if len(cp.bufferBarriers) > 0 {
			enc.TransitionBuffers(cp.bufferBarriers)
		}
		if len(cp.textureBarriers) > 0 {
			enc.TransitionTextures(cp.textureBarriers)
		}

		ctx := ExecuteContext{Encoder: enc, Registry: cg.registry}
		fn := cp.pass.execute

		switch cp.pass.kind {
		case PassRaster:
			rp := enc.BeginRenderPass(cp.renderPass)
			ctx.Render = rp
			if fn != nil {
				if err := fn(ctx); err != nil {
					rp.End()
					enc.DiscardEncoding()
					return nil, fmt.Errorf("rendergraph: pass %q: %w", label, err)
				}
			}
			rp.End()

		case PassCompute:
			cpe := enc.BeginComputePass(&hal.ComputePassDescriptor{Label: label})
			ctx.Compute = cpe
			if fn != nil {
				if err := fn(ctx); err != nil {
					cpe.End()
					enc.DiscardEncoding()
					return nil, fmt.Errorf("rendergraph: pass %q: %w", label, err)
				}
			}
			cpe.End()

		default: // PassTransfer, PassRayTrace: record directly against the encoder
			if fn != nil {
				if err := fn(ctx); err != nil {
					enc.DiscardEncoding()
					return nil, fmt.Errorf("rendergraph: pass %q: %w", label, err)
				}
			}
		}

		return enc.EndEncoding()
	})
}

// Release queues every transient resource this graph allocated - and any
// view Compile created for an imported texture that supplied none - onto
// g, so they are destroyed once this graph's frame slot is known to have
// finished on the GPU rather than right now,
// while the just-submitted commands may still be executing.
func (cg *CompiledGraph) Release(g *frame.Garbages) {
	for _, v := range cg.transientViews {
		g.AddTextureView(v)
	}
	for _, v := range cg.ownedViews {
		g.AddTextureView(v)
	}
	for _, t := range cg.transientTextures {
		g.AddTexture(t)
	}
	for _, b := range cg.transientBuffers {
		g.AddBuffer(b)
	}
}
