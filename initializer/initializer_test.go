package initializer

import (
	"testing"

	"github.com/gogpu/bindless/core"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/hal/noop"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/types"
)

func newTestInitializer(t *testing.T) (*Initializer, hal.Device) {
	t.Helper()
	device := &noop.Device{}

	newQueue := func(family types.Queue) *queue.CommandQueue {
		fence, err := device.CreateFence()
		if err != nil {
			t.Fatalf("CreateFence: %v", err)
		}
		return queue.New(family, device, &noop.Queue{}, fence)
	}

	ini, err := New(newQueue(types.QueueTransfer), newQueue(types.QueueGraphics))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(ini.Destroy)
	return ini, device
}

func newTestTexture(t *testing.T, device hal.Device, mips uint32) *core.Texture {
	t.Helper()
	desc := types.TextureDescriptor{
		Label:         "mipmapped",
		Size:          types.Extent3D{Width: 64, Height: 64, DepthOrArrayLayers: 1},
		Format:        types.TextureFormatRGBA8Unorm,
		Usage:         types.TextureUsageTextureBinding | types.TextureUsageCopySrc | types.TextureUsageCopyDst,
		MipLevelCount: mips,
	}
	raw, err := device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: desc.Size.Width, Height: desc.Size.Height, DepthOrArrayLayers: 1},
		Format:        desc.Format,
		Usage:         desc.Usage,
		MipLevelCount: mips,
	})
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	return core.NewTexture(raw, &desc, types.QueueFlagGraphics)
}

// TestGenerateMipmapRecordsBlitChain verifies the downsample loop records
// one command buffer for a multi-level chain and that Flush submits it.
func TestGenerateMipmapRecordsBlitChain(t *testing.T) {
	ini, device := newTestInitializer(t)
	tex := newTestTexture(t, device, 7)

	lock := core.NewSnatchLock()
	guard := lock.Read()
	err := ini.GenerateMipmap(tex, guard)
	guard.Release()
	if err != nil {
		t.Fatalf("GenerateMipmap: %v", err)
	}

	if len(ini.mipmapCmds) != 1 {
		t.Fatalf("len(mipmapCmds) = %d, want 1", len(ini.mipmapCmds))
	}

	state := tex.CacheState()
	if state.Owner != types.QueueGraphics {
		t.Fatalf("Owner = %v, want graphics", state.Owner)
	}
	if state.UnavailableStages != 0 {
		t.Fatalf("UnavailableStages = %v, want none after the final transition", state.UnavailableStages)
	}

	if err := ini.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if len(ini.mipmapCmds) != 0 {
		t.Fatal("Flush should consume the recorded mipmap commands")
	}
}

// TestGenerateMipmapSingleLevelIsNoCommand verifies a one-level texture
// records nothing; there is no level to downsample into.
func TestGenerateMipmapSingleLevelIsNoCommand(t *testing.T) {
	ini, device := newTestInitializer(t)
	tex := newTestTexture(t, device, 1)

	lock := core.NewSnatchLock()
	guard := lock.Read()
	err := ini.GenerateMipmap(tex, guard)
	guard.Release()
	if err != nil {
		t.Fatalf("GenerateMipmap: %v", err)
	}
	if len(ini.mipmapCmds) != 0 {
		t.Fatalf("len(mipmapCmds) = %d, want 0 for a single-level chain", len(ini.mipmapCmds))
	}
}
