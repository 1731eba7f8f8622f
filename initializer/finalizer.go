package initializer

import (
	"fmt"

	"github.com/gogpu/bindless/core"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/types"
)

// FinalizeLayout computes the layout a texture must end up in once
// initializer work is done, from its usage flags. Usage
// combining more than one of sampled/color/depth-stencil/transfer-src
// degrades to General, since no single optimal layout satisfies all of
// them at once.
func FinalizeLayout(usage types.TextureUsage) types.ImageLayout {
	const (
		sampled  = types.TextureUsageTextureBinding
		color    = types.TextureUsageRenderAttachment
		transfer = types.TextureUsageCopySrc
	)

	isColor := usage&color != 0 && usage&types.TextureUsageDepthStencilAttachment == 0
	isDepth := usage&types.TextureUsageDepthStencilAttachment != 0
	isSampled := usage&sampled != 0
	isTransferSrc := usage&transfer != 0

	set := 0
	if isColor {
		set++
	}
	if isDepth {
		set++
	}
	if isSampled {
		set++
	}
	if isTransferSrc {
		set++
	}

	switch {
	case set > 1:
		return types.ImageLayoutGeneral
	case isDepth:
		return types.ImageLayoutDepthStencilAttachmentOptimal
	case isColor:
		return types.ImageLayoutColorAttachmentOptimal
	case isTransferSrc:
		return types.ImageLayoutTransferSrcOptimal
	case isSampled:
		return types.ImageLayoutShaderReadOnlyOptimal
	default:
		return types.ImageLayoutGeneral
	}
}

// Finalizer is invoked after all Initializer work for a frame is recorded.
// It decides, per resource, which destination queues must synchronize with
// the producing queue's timeline, and for textures additionally emits the
// barrier to the resource's finalize layout.
type Finalizer struct {
	device hal.Device
	pool   *queue.CommandPools
}

// NewFinalizer creates a Finalizer recording on its own dedicated thread.
func NewFinalizer(device hal.Device) (*Finalizer, error) {
	pool, err := queue.NewCommandPools(device, 1)
	if err != nil {
		return nil, fmt.Errorf("initializer: create finalizer command pool: %w", err)
	}
	return &Finalizer{device: device, pool: pool}, nil
}

// Destroy stops the Finalizer's recording thread.
func (f *Finalizer) Destroy() {
	f.pool.Destroy()
}

// waitingQueues returns the queue families named by queueFlags other than
// owner, the destination queues that must wait on the owner's timeline.
func waitingQueues(owner types.Queue, queueFlags types.QueueFlags) []types.Queue {
	var waiters []types.Queue
	for _, q := range []struct {
		flag  types.QueueFlags
		queue types.Queue
	}{
		{types.QueueFlagGraphics, types.QueueGraphics},
		{types.QueueFlagCompute, types.QueueCompute},
		{types.QueueFlagTransfer, types.QueueTransfer},
	} {
		if queueFlags&q.flag != 0 && q.queue != owner {
			waiters = append(waiters, q.queue)
		}
	}
	return waiters
}

// FlushBuffer implements `flush_buffer(id)`: returns the queue families
// other than the buffer's current owner that must wait on the owner's
// timeline before touching it, derived from the buffer's queue_flags.
func FlushBuffer(buf *core.Buffer, queueFlags types.QueueFlags) []types.Queue {
	return waitingQueues(buf.CacheState().Owner, queueFlags)
}

// FlushTexture implements `flush_texture(id, usage)`: if currentUsage and
// finalUsage differ, it records a TextureBarrier from one to the other on
// the Finalizer's dedicated thread (the hal derives the layout from the
// usage; FinalizeLayout is not called here).
// Returns the destination queue families (beyond the owner) that must wait
// on the owner's timeline before using the texture, same as FlushBuffer.
func (f *Finalizer) FlushTexture(tex *core.Texture, guard *core.SnatchGuard, currentUsage, finalUsage types.TextureUsage, queueFlags types.QueueFlags) (hal.CommandBuffer, []types.Queue, error) {
	raw := tex.Raw(guard)
	if raw == nil {
		return nil, nil, fmt.Errorf("initializer: texture %q has no backing allocation", tex.Label)
	}

	var cmd hal.CommandBuffer
	if currentUsage != finalUsage {
		var err error
		cmd, err = f.pool.Record(0, func(enc hal.CommandEncoder) (hal.CommandBuffer, error) {
			if err := enc.BeginEncoding("initializer-finalize"); err != nil {
				return nil, err
			}
			enc.TransitionTextures([]hal.TextureBarrier{{
				Texture: raw,
				Usage:   hal.TextureUsageTransition{OldUsage: currentUsage, NewUsage: finalUsage},
			}})
			return enc.EndEncoding()
		})
		if err != nil {
			return nil, nil, fmt.Errorf("initializer: finalize %q: %w", tex.Label, err)
		}
	}

	dests := waitingQueues(tex.CacheState().Owner, queueFlags)
	return cmd, dests, nil
}
