package rendergraph

import (
	"errors"
	"testing"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/cache"
	"github.com/gogpu/bindless/frame"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/hal/noop"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/types"
)

func newTestQueues(t *testing.T, device hal.Device) map[types.Queue]*queue.CommandQueue {
	t.Helper()
	families := []types.Queue{types.QueueGraphics, types.QueueCompute, types.QueueTransfer}
	queues := make(map[types.Queue]*queue.CommandQueue, len(families))
	for _, f := range families {
		fence, err := device.CreateFence()
		if err != nil {
			t.Fatalf("CreateFence: %v", err)
		}
		queues[f] = queue.New(f, device, &noop.Queue{}, fence)
	}
	return queues
}

func TestCompile_SingleRasterPassAgainstAnImportedTexture(t *testing.T) {
	device := &noop.Device{}
	rpCache := cache.NewRenderPassCache()

	g := NewGraph()
	view, err := device.CreateTextureView(&noop.Texture{}, &hal.TextureViewDescriptor{})
	if err != nil {
		t.Fatalf("CreateTextureView: %v", err)
	}
	target := g.ImportTexture("color", &noop.Texture{}, view, nil, types.TextureUsageRenderAttachment,
		hal.TextureDescriptor{Format: types.TextureFormatRGBA8Unorm, Size: hal.Extent3D{Width: 64, Height: 64, DepthOrArrayLayers: 1}},
		types.QueueFlagGraphics)

	ran := false
	g.AddRasterPass(RasterPassDesc{
		Name:   "clear",
		Colors: []ColorAttachment{{Node: target, Clear: true}},
		Execute: func(ctx ExecuteContext) error {
			ran = true
			if ctx.Render == nil {
				t.Error("raster pass ExecuteContext has no Render encoder")
			}
			return nil
		},
	})

	cg, err := g.Compile(device, rpCache)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(cg.passes) != 1 {
		t.Fatalf("len(passes) = %d, want 1", len(cg.passes))
	}
	if cg.passes[0].renderPass == nil {
		t.Error("raster pass was not given a render pass descriptor")
	}

	ring, err := frame.NewRing(device, 2, 1)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	defer ring.Destroy()
	fc := ring.Current()

	queues := newTestQueues(t, device)
	if err := fc.Begin(queues[types.QueueGraphics], device, noopFreer{}); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	handles, err := cg.Execute(fc, queues, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran {
		t.Error("pass Execute callback never ran")
	}
	if _, ok := handles[types.QueueGraphics]; !ok {
		t.Error("Execute did not report a graphics-queue handle")
	}

	cg.Release(fc.Garbage)
}

func TestCompile_RejectsReadBeforeWrite(t *testing.T) {
	device := &noop.Device{}
	rpCache := cache.NewRenderPassCache()

	g := NewGraph()
	buf := g.CreateBuffer("scratch", hal.BufferDescriptor{Size: 256, Usage: types.BufferUsageStorage}, types.QueueFlagGraphics)
	g.AddComputePass(ComputePassDesc{
		Name:    "reads-first",
		Buffers: []BufferRef{{Node: buf, Access: AccessShaderStorageRead}},
	})

	_, err := g.Compile(device, rpCache)
	if !errors.Is(err, ErrDanglingReference) {
		t.Fatalf("Compile error = %v, want ErrDanglingReference", err)
	}
}

func TestCompile_TransientBufferIsAllocatedAndReleasable(t *testing.T) {
	device := &noop.Device{}
	rpCache := cache.NewRenderPassCache()

	g := NewGraph()
	buf := g.CreateBuffer("scratch", hal.BufferDescriptor{Size: 256, Usage: types.BufferUsageStorage}, types.QueueFlagGraphics)
	g.AddComputePass(ComputePassDesc{
		Name:    "writes",
		Buffers: []BufferRef{{Node: buf, Access: AccessShaderStorageWrite}},
	})

	cg, err := g.Compile(device, rpCache)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(cg.transientBuffers) != 1 {
		t.Fatalf("len(transientBuffers) = %d, want 1", len(cg.transientBuffers))
	}

	garbage := &frame.Garbages{}
	cg.Release(garbage)
}

func TestCompile_SwapchainNodeStartsOwnedByGraphics(t *testing.T) {
	device := &noop.Device{}
	rpCache := cache.NewRenderPassCache()

	g := NewGraph()
	sc := g.ImportSwapchainTexture("swapchain", &noop.SurfaceTexture{}, types.TextureFormatBGRA8UnormSrgb, 800, 600)
	if sc != g.SwapchainNode() {
		t.Fatalf("SwapchainNode() = %v, want %v", g.SwapchainNode(), sc)
	}
	if owner := g.textures[sc-1].cache.Owner; owner != types.QueueGraphics {
		t.Fatalf("swapchain node owner = %v, want graphics", owner)
	}

	g.AddRasterPass(RasterPassDesc{
		Name:   "present",
		Colors: []ColorAttachment{{Node: sc, Clear: true}},
	})

	cg, err := g.Compile(device, rpCache)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(cg.passes[0].bufferBarriers) != 0 {
		t.Error("swapchain-only pass should have no buffer barriers")
	}
}

// noopFreer satisfies frame.DescriptorFreer for tests that only need
// Begin's Garbage.Drain call to type-check, not actual descriptor frees.
type noopFreer struct{}

func (noopFreer) Free(_ bindless.Kind, _ bindless.ID) {}

func TestCompile_DisjointTransientsAliasOneBuffer(t *testing.T) {
	device := &noop.Device{}
	rpCache := cache.NewRenderPassCache()

	g := NewGraph()
	desc := hal.BufferDescriptor{Size: 256, Usage: types.BufferUsageStorage}
	first := g.CreateBuffer("ping", desc, types.QueueFlagGraphics)
	g.AddComputePass(ComputePassDesc{
		Name:    "produce-ping",
		Buffers: []BufferRef{{Node: first, Access: AccessShaderStorageWrite}},
	})
	// ping's last use; its lifetime ends with this pass.
	g.AddComputePass(ComputePassDesc{
		Name:    "consume-ping",
		Buffers: []BufferRef{{Node: first, Access: AccessShaderStorageRead}},
	})
	// pong starts strictly after ping ended and has an identical shape,
	// so it must take over ping's native buffer.
	second := g.CreateBuffer("pong", desc, types.QueueFlagGraphics)
	g.AddComputePass(ComputePassDesc{
		Name:    "produce-pong",
		Buffers: []BufferRef{{Node: second, Access: AccessShaderStorageWrite}},
	})

	cg, err := g.Compile(device, rpCache)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(cg.transientBuffers) != 1 {
		t.Fatalf("len(transientBuffers) = %d, want 1 (aliased)", len(cg.transientBuffers))
	}
	if cg.registry.Buffer(first) != cg.registry.Buffer(second) {
		t.Fatal("disjoint same-shape transients should share one native buffer")
	}
}

func TestCompile_OverlappingTransientsDoNotAlias(t *testing.T) {
	device := &noop.Device{}
	rpCache := cache.NewRenderPassCache()

	g := NewGraph()
	desc := hal.BufferDescriptor{Size: 256, Usage: types.BufferUsageStorage}
	first := g.CreateBuffer("a", desc, types.QueueFlagGraphics)
	second := g.CreateBuffer("b", desc, types.QueueFlagGraphics)
	g.AddComputePass(ComputePassDesc{
		Name: "produce-both",
		Buffers: []BufferRef{
			{Node: first, Access: AccessShaderStorageWrite},
			{Node: second, Access: AccessShaderStorageWrite},
		},
	})
	g.AddComputePass(ComputePassDesc{
		Name: "consume-both",
		Buffers: []BufferRef{
			{Node: first, Access: AccessShaderStorageRead},
			{Node: second, Access: AccessShaderStorageRead},
		},
	})

	cg, err := g.Compile(device, rpCache)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if len(cg.transientBuffers) != 2 {
		t.Fatalf("len(transientBuffers) = %d, want 2 (lifetimes overlap)", len(cg.transientBuffers))
	}
	if cg.registry.Buffer(first) == cg.registry.Buffer(second) {
		t.Fatal("overlapping transients must not share a native buffer")
	}
}
