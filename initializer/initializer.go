// Package initializer implements the per-thread resource upload/clear
// collaborator: it decouples resource creation from the
// one-time work (uploading initial contents, clearing, mip generation) a
// newly created buffer or texture needs before it enters the render graph.
//
// The portable hal surface already folds the direct-memcpy-vs-staging-buffer
// decision the original design calls out explicitly into
// hal.Queue.WriteBuffer/WriteTexture (WebGPU-style immediate convenience
// uploads on hal.Queue) - this package does not
// reimplement that choice, only the cache-state bookkeeping, clearing, and
// mip-generation machinery layered on top of it.
package initializer

import (
	"fmt"

	"github.com/gogpu/bindless/core"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/types"
)

// Initializer is the per-thread uploader. One Initializer is created per
// worker thread that needs to stage resource uploads, matching the
// "per-thread" requirement; it owns one dedicated recording thread (via
// queue.CommandPools with a single worker) for the clear and mipmap command
// buffers that must be explicitly recorded rather than issued through the
// immediate WriteBuffer/WriteTexture path.
type Initializer struct {
	transfer *queue.CommandQueue
	graphics *queue.CommandQueue
	pool     *queue.CommandPools

	clearCmds  []hal.CommandBuffer
	mipmapCmds []hal.CommandBuffer

	// uploaded tracks textures written this flush cycle, so Flush can decide
	// whether the transfer queue's work must be waited on before mipmap
	// generation runs on the graphics queue.
	uploaded map[*core.Texture]bool
}

// New creates an Initializer. transfer handles buffer/texture uploads;
// graphics handles clears and mip generation (both run graphics-capable
// commands: clears and mipmap generation run on the graphics queue).
func New(transfer, graphics *queue.CommandQueue) (*Initializer, error) {
	pool, err := queue.NewCommandPools(graphics.Device(), 1)
	if err != nil {
		return nil, fmt.Errorf("initializer: create command pool: %w", err)
	}
	return &Initializer{
		transfer: transfer,
		graphics: graphics,
		pool:     pool,
		uploaded: make(map[*core.Texture]bool),
	}, nil
}

// Destroy stops the Initializer's recording thread.
func (ini *Initializer) Destroy() {
	ini.pool.Destroy()
}

// LoadBuffer implements `load(buffer, data)`: the hal backend decides
// memcpy-direct vs. stage-and-copy internally; this records that the
// transfer queue now owns the buffer with an unavailable transfer write,
// matching the state CacheState would carry after an explicit
// vkCmdCopyBuffer in the fully-manual version of this operation.
func (ini *Initializer) LoadBuffer(dst *core.Buffer, guard *core.SnatchGuard, offset uint64, data []byte) error {
	raw := dst.Raw(guard)
	if raw == nil {
		return fmt.Errorf("initializer: buffer %q has no backing allocation", dst.Label)
	}
	if err := ini.transfer.Raw().WriteBuffer(raw, offset, data); err != nil {
		return fmt.Errorf("initializer: upload to %q failed: %w", dst.Label, err)
	}
	dst.CacheState().CommitAccess(types.QueueTransfer, types.StageTransfer, types.AccessTransferWrite)
	return nil
}

// TextureWrite is one sub-image write within a LoadTexture call: a mip
// level / array layer, an origin and extent, and the source bytes with
// their buffer-side row layout.
type TextureWrite struct {
	MipLevel uint32
	Layer    uint32
	Origin   types.Origin3D
	Extent   types.Extent3D
	Layout   hal.ImageDataLayout
	Data     []byte
}

// LoadTexture implements `load(texture, load_desc)`: uploads each region via
// the transfer queue's immediate WriteTexture convenience call (which
// performs the UNDEFINED -> TRANSFER_DST transition and the copy internally
// on backends that need it) and records the resulting cache state: transfer
// ownership, unavailable transfer write.
func (ini *Initializer) LoadTexture(dst *core.Texture, guard *core.SnatchGuard, writes []TextureWrite) error {
	raw := dst.Raw(guard)
	if raw == nil {
		return fmt.Errorf("initializer: texture %q has no backing allocation", dst.Label)
	}
	for _, w := range writes {
		copyDst := &hal.ImageCopyTexture{
			Texture:  raw,
			MipLevel: w.MipLevel,
			Origin:   hal.Origin3D{X: w.Origin.X, Y: w.Origin.Y, Z: w.Layer + w.Origin.Z},
		}
		layout := w.Layout
		extent := hal.Extent3D{Width: w.Extent.Width, Height: w.Extent.Height, DepthOrArrayLayers: w.Extent.DepthOrArrayLayers}
		ini.transfer.Raw().WriteTexture(copyDst, w.Data, &layout, &extent)
	}
	dst.CacheState().CommitAccess(types.QueueTransfer, types.StageTransfer, types.AccessTransferWrite)
	ini.uploaded[dst] = true
	return nil
}

// ClearTexture implements `clear(texture, value)`. hal.CommandEncoder has no
// vkCmdClearColorImage/vkCmdClearDepthStencilImage equivalent (ClearBuffer
// is the only clear primitive it exposes) so this records a one-pass
// render-pass-with-clear-load-op instead: begin a render pass over the
// target view with LoadOp Clear and StoreOp Store, then immediately End it.
// This is the same fallback wgpu-style abstraction layers use when a
// backend's portable surface has no dedicated image-clear command.
func (ini *Initializer) ClearTexture(view *core.TextureView, guard *core.SnatchGuard, value types.Color) error {
	rawView := view.Raw(guard)
	if rawView == nil {
		return fmt.Errorf("initializer: texture view %q has no backing allocation", view.Label)
	}
	cmd, err := ini.pool.Record(0, func(enc hal.CommandEncoder) (hal.CommandBuffer, error) {
		if err := enc.BeginEncoding("initializer-clear"); err != nil {
			return nil, err
		}
		pass := enc.BeginRenderPass(&hal.RenderPassDescriptor{
			Label: "initializer-clear",
			ColorAttachments: []hal.RenderPassColorAttachment{{
				View:       rawView,
				LoadOp:     types.LoadOpClear,
				StoreOp:    types.StoreOpStore,
				ClearValue: value,
			}},
		})
		pass.End()
		return enc.EndEncoding()
	})
	if err != nil {
		return fmt.Errorf("initializer: clear %q: %w", view.Label, err)
	}
	ini.clearCmds = append(ini.clearCmds, cmd)

	tex := view.Texture()
	tex.CacheState().CommitAccess(types.QueueGraphics, types.StageColorAttachmentOutput, types.AccessColorAttachmentWrite)
	return nil
}

// GenerateMipmap implements `generate_mipmap(texture)`: level n-1 is
// transitioned to a copy source, level n to a copy destination, and a
// linear-filtered half-extent blit fills level n, iterating down the
// chain. A final whole-chain transition leaves every level readable by
// fragment shaders, which is also what CommitAccess records.
func (ini *Initializer) GenerateMipmap(dst *core.Texture, guard *core.SnatchGuard) error {
	raw := dst.Raw(guard)
	if raw == nil {
		return fmt.Errorf("initializer: texture %q has no backing allocation", dst.Label)
	}
	if dst.MipLevels < 2 {
		// Single-level chain: nothing to blit, and the finalizer's
		// FlushTexture already handles the shader-read transition.
		return nil
	}

	cmd, err := ini.pool.Record(0, func(enc hal.CommandEncoder) (hal.CommandBuffer, error) {
		if err := enc.BeginEncoding("initializer-mipmap"); err != nil {
			return nil, err
		}

		mipExtent := func(level uint32) hal.Extent3D {
			e := hal.Extent3D{
				Width:              dst.Size.Width >> level,
				Height:             dst.Size.Height >> level,
				DepthOrArrayLayers: 1,
			}
			if e.Width == 0 {
				e.Width = 1
			}
			if e.Height == 0 {
				e.Height = 1
			}
			return e
		}

		for level := uint32(1); level < dst.MipLevels; level++ {
			enc.TransitionTextures([]hal.TextureBarrier{
				{
					Texture: raw,
					Range:   hal.TextureRange{Aspect: types.TextureAspectAll, BaseMipLevel: level - 1, MipLevelCount: 1, ArrayLayerCount: 1},
					Usage:   hal.TextureUsageTransition{OldUsage: types.TextureUsageCopyDst, NewUsage: types.TextureUsageCopySrc},
				},
				{
					Texture: raw,
					Range:   hal.TextureRange{Aspect: types.TextureAspectAll, BaseMipLevel: level, MipLevelCount: 1, ArrayLayerCount: 1},
					Usage:   hal.TextureUsageTransition{OldUsage: 0, NewUsage: types.TextureUsageCopyDst},
				},
			})

			enc.BlitTexture(raw, raw, []hal.TextureBlit{{
				SrcBase: hal.ImageCopyTexture{Texture: raw, MipLevel: level - 1, Aspect: types.TextureAspectAll},
				SrcSize: mipExtent(level - 1),
				DstBase: hal.ImageCopyTexture{Texture: raw, MipLevel: level, Aspect: types.TextureAspectAll},
				DstSize: mipExtent(level),
			}}, types.FilterModeLinear)
		}

		// Levels 0..N-2 sit in copy-source state, the last in copy-dest;
		// bring the whole chain to shader-readable.
		enc.TransitionTextures([]hal.TextureBarrier{
			{
				Texture: raw,
				Range:   hal.TextureRange{Aspect: types.TextureAspectAll, BaseMipLevel: 0, MipLevelCount: dst.MipLevels - 1, ArrayLayerCount: 1},
				Usage:   hal.TextureUsageTransition{OldUsage: types.TextureUsageCopySrc, NewUsage: types.TextureUsageTextureBinding},
			},
			{
				Texture: raw,
				Range:   hal.TextureRange{Aspect: types.TextureAspectAll, BaseMipLevel: dst.MipLevels - 1, MipLevelCount: 1, ArrayLayerCount: 1},
				Usage:   hal.TextureUsageTransition{OldUsage: types.TextureUsageCopyDst, NewUsage: types.TextureUsageTextureBinding},
			},
		})

		return enc.EndEncoding()
	})
	if err != nil {
		return fmt.Errorf("initializer: mipmap %q: %w", dst.Label, err)
	}
	ini.mipmapCmds = append(ini.mipmapCmds, cmd)

	// Mirror the recorded commands in the cache state: hand ownership to
	// graphics if the upload produced the texture on transfer, make the
	// upload's write available, record the blit chain's transfer access,
	// then the final transition that leaves every level fragment-readable.
	state := dst.CacheState()
	if state.Owner != types.QueueNone && state.Owner != types.QueueGraphics {
		state.CommitWaitSemaphore(state.Owner, types.QueueGraphics, types.StageTransfer)
	}
	state.CommitWaitEventOrBarrier(types.QueueGraphics,
		state.UnavailableStages, state.UnavailableAccesses,
		types.StageTransfer, types.AccessTransferRead|types.AccessTransferWrite, true)
	state.CommitAccess(types.QueueGraphics, types.StageTransfer, types.AccessTransferRead|types.AccessTransferWrite)
	state.CommitWaitEventOrBarrier(types.QueueGraphics,
		types.StageTransfer, types.AccessTransferWrite,
		types.StageFragmentShader, types.AccessShaderRead, true)
	return nil
}

// Flush implements `flush()`: submits the recorded clear/mipmap command
// buffers on the graphics queue, waiting on the transfer queue's timeline
// first if any texture was both uploaded and then mip-generated this cycle
// (the transfer -> graphics upload-then-mipmap dependency); otherwise the two
// queues' work proceeds independently.
func (ini *Initializer) Flush() error {
	transferHandle, err := ini.transfer.Flush()
	if err != nil {
		return fmt.Errorf("initializer: flush transfer queue: %w", err)
	}

	needsWait := len(ini.uploaded) > 0 && (len(ini.clearCmds) > 0 || len(ini.mipmapCmds) > 0)
	if needsWait {
		if err := ini.transfer.WaitValue(transferHandle.Value); err != nil {
			return fmt.Errorf("initializer: wait on transfer before graphics work: %w", err)
		}
	}

	for _, cmd := range ini.clearCmds {
		ini.graphics.Submit(cmd)
	}
	for _, cmd := range ini.mipmapCmds {
		ini.graphics.Submit(cmd)
	}
	if len(ini.clearCmds) > 0 || len(ini.mipmapCmds) > 0 {
		if _, err := ini.graphics.Flush(); err != nil {
			return fmt.Errorf("initializer: flush graphics queue: %w", err)
		}
	}

	ini.clearCmds = nil
	ini.mipmapCmds = nil
	ini.uploaded = make(map[*core.Texture]bool)
	return nil
}
