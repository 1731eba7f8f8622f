// Package system implements the top-level lifecycle object the
// configuration struct initializes: it selects a backend and adapter,
// opens a device, wraps its single hal.Queue as three logical queue
// families, builds the bindless descriptor table, the frame ring, and the
// swapchain, and drives the begin/end-frame sequence a caller's render
// loop calls once per frame around building and executing a
// rendergraph.Graph.
//
// The hal surface exposes
// exactly one hal.Queue per opened device - a WebGPU-shaped single-queue
// model, not three independent hardware queue families. System therefore
// wraps that one raw queue in three queue.CommandQueue values, one per
// types.Queue family, each with its own hal.Fence and so its own
// independent timeline: cachestate's ownership/barrier bookkeeping and
// rendergraph's cross-queue wait synthesis both operate in terms of
// logical families regardless of how many physical queues back them, so
// this degrades to "every cross-queue wait is against the one real queue"
// rather than requiring a different code path. A future backend that
// exposes genuine separate queues only needs to change how these three
// are constructed, not anything downstream of them.
package system

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/cache"
	"github.com/gogpu/bindless/core"
	"github.com/gogpu/bindless/frame"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/initializer"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/shaderc"
	"github.com/gogpu/bindless/swapchain"
	"github.com/gogpu/bindless/types"
)

// System owns every long-lived GPU object: the opened
// device and its three logical queues, the bindless descriptor table, the
// render-pass/pipeline caches, the frame ring, and the swapchain. Exactly
// one System exists per application; everything else (buffers, textures,
// render graphs) is created against it.
type System struct {
	cfg *Config
	log *slog.Logger

	instance hal.Instance
	adapter  hal.Adapter
	device   hal.Device
	coreDev  *core.Device

	surface hal.Surface
	swap    *swapchain.Swapchain

	graphics *queue.CommandQueue
	compute  *queue.CommandQueue
	transfer *queue.CommandQueue
	// queueFences are the three CommandQueues' timeline fences, kept only
	// so Close can destroy them; the queues themselves don't own teardown.
	queueFences []hal.Fence

	bindless  *bindless.Table
	registry  *core.ResourceRegistry
	renderPC  *cache.RenderPassCache
	pipelineC *cache.PipelineStateCache
	compiler  shaderc.Compiler

	ring *Frames

	init *initializer.Initializer
	fin  *initializer.Finalizer
}

// Frames is the frame.Ring type alias exported so callers don't need to
// import the frame package just to hold onto System's ring.
type Frames = frame.Ring

// New validates cfg, opens the highest-priority (or explicitly requested)
// backend's adapter compatible with cfg.Wsi's surface, opens a device, and
// builds every subsystem leaves-first: descriptor table and
// caches first (no GPU dependency beyond the device), then queues, then
// the frame ring and swapchain (which depend on the queues and surface).
func New(cfg *Config) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	width, height := cfg.Wsi.FramebufferSize()

	s := &System{cfg: cfg, log: log}

	instance, surface, err := openInstanceAndSurface(cfg)
	if err != nil {
		return nil, err
	}
	s.instance = instance
	s.surface = surface

	exposed, err := selectAdapterFor(instance, surface, cfg)
	if err != nil {
		instance.Destroy()
		return nil, err
	}
	s.adapter = exposed.Adapter

	limits := exposed.Capabilities.Limits
	opened, err := exposed.Adapter.Open(exposed.Features, limits)
	if err != nil {
		s.destroyPartial()
		return nil, wrapErr(ErrAdapterNotFound, fmt.Errorf("open device: %w", err))
	}
	s.device = opened.Device
	s.coreDev = core.NewDevice(opened.Device, &core.Adapter{
		Info:     exposed.Info,
		Features: exposed.Features,
		Limits:   limits,
		Backend:  exposed.Info.Backend,
	}, exposed.Features, limits, "system-device")

	bindlessLimits := cfg.BindlessLimits
	zeroLimits := types.BindlessLimits{}
	if bindlessLimits == zeroLimits {
		bindlessLimits = types.DefaultBindlessLimits()
	}
	s.bindless = bindless.NewTable(bindless.LimitsFromBindless(bindlessLimits), cfg.DescriptorWriter)
	s.registry = core.NewRegistry()
	s.renderPC = cache.NewRenderPassCache()
	s.pipelineC = cache.NewPipelineStateCache()

	s.compiler = cfg.ShaderCompiler
	if s.compiler == nil {
		s.compiler = shaderc.NewNagaCompiler()
	}

	fences := make([]hal.Fence, 3)
	families := []types.Queue{types.QueueGraphics, types.QueueCompute, types.QueueTransfer}
	for i := range fences {
		f, ferr := opened.Device.CreateFence()
		if ferr != nil {
			s.destroyPartial()
			return nil, wrapErr(ErrOutOfDeviceMemory, fmt.Errorf("create %s fence: %w", families[i], ferr))
		}
		fences[i] = f
	}
	s.queueFences = fences
	s.graphics = queue.New(types.QueueGraphics, opened.Device, opened.Queue, fences[0])
	s.compute = queue.New(types.QueueCompute, opened.Device, opened.Queue, fences[1])
	s.transfer = queue.New(types.QueueTransfer, opened.Device, opened.Queue, fences[2])

	ini, err := initializer.New(s.transfer, s.graphics)
	if err != nil {
		s.destroyPartial()
		return nil, wrapErr(ErrOutOfDeviceMemory, err)
	}
	s.init = ini
	fin, err := initializer.NewFinalizer(opened.Device)
	if err != nil {
		s.destroyPartial()
		return nil, wrapErr(ErrOutOfDeviceMemory, err)
	}
	s.fin = fin

	ring, err := frame.NewRing(opened.Device, cfg.MaxFramesInFlight, cfg.ThreadCount)
	if err != nil {
		s.destroyPartial()
		return nil, wrapErr(ErrOutOfDeviceMemory, err)
	}
	s.ring = ring

	sc, err := swapchain.New(exposed.Adapter, opened.Device, surface, uint32(width), uint32(height), types.TextureUsageRenderAttachment)
	if err != nil {
		s.destroyPartial()
		return nil, wrapErr(ErrSurfaceLost, err)
	}
	s.swap = sc

	log.Info("system initialized", "backend", exposed.Info.Backend, "adapter", exposed.Info.Name,
		"frames_in_flight", cfg.MaxFramesInFlight, "threads", cfg.ThreadCount)

	return s, nil
}

// openInstanceAndSurface tries each registered backend provider (or only
// cfg.Backend's, if set) in priority order: open an instance, ask cfg.Wsi
// for a surface against it, and keep the first provider for which both
// succeed. A provider whose instance opens but whose surface creation
// fails (e.g. the backend doesn't support this platform's windowing
// system) is destroyed and the next provider is tried, mirroring
// backend.go's selectAdapter fallback loop one level up (instance+surface
// instead of instance+adapter, since CreateSurface needs an instance
// first and EnumerateAdapters benefits from a surface hint).
func openInstanceAndSurface(cfg *Config) (hal.Instance, hal.Surface, error) {
	var providers []core.BackendProvider
	if cfg.Backend != types.BackendEmpty {
		p, ok := core.GetBackendProvider(cfg.Backend)
		if !ok {
			return nil, nil, wrapErr(ErrAdapterNotFound, errRequired("registered provider for requested backend"))
		}
		providers = []core.BackendProvider{p}
	} else {
		providers = core.GetOrderedBackendProviders()
	}

	var flags types.InstanceFlags
	if cfg.EnableValidation {
		flags |= types.InstanceFlagsValidation
	}

	var lastErr error
	for _, p := range providers {
		instance, err := p.CreateInstance(&hal.InstanceDescriptor{
			Backends: types.Backends(1) << uint(p.Variant()),
			Flags:    flags,
		})
		if err != nil {
			lastErr = err
			continue
		}
		surface, err := cfg.Wsi.CreateSurface(instance)
		if err != nil {
			instance.Destroy()
			lastErr = err
			continue
		}
		return instance, surface, nil
	}

	return nil, nil, wrapErr(ErrAdapterNotFound, fmt.Errorf("no backend produced a usable instance+surface: %w", lastErr))
}

// selectAdapterFor enumerates adapters compatible with surface from the
// already-opened instance and returns the first one.
func selectAdapterFor(instance hal.Instance, surface hal.Surface, _ *Config) (hal.ExposedAdapter, error) {
	adapters := instance.EnumerateAdapters(surface)
	if len(adapters) == 0 {
		return hal.ExposedAdapter{}, wrapErr(ErrAdapterNotFound, errRequired("an adapter compatible with this surface"))
	}
	return adapters[0], nil
}

// Device returns the opened hal.Device every other subsystem was built
// against, for callers issuing CreateBuffer/CreateTexture directly.
func (s *System) Device() hal.Device { return s.device }

// CoreDevice returns the core package's HAL-integrated Device wrapper,
// for callers that need the legacy ID-registry command-encoder path.
func (s *System) CoreDevice() *core.Device { return s.coreDev }

// Bindless returns the bindless descriptor table shared by every resource
// this System creates.
func (s *System) Bindless() *bindless.Table { return s.bindless }

// Registry returns the pool bundle for blas/tlas/program/pipeline-state
// resources (the non-buffer, non-texture pools).
func (s *System) Registry() *core.ResourceRegistry { return s.registry }

// RenderPassCache returns the shared render-pass derivation cache.
func (s *System) RenderPassCache() *cache.RenderPassCache { return s.renderPC }

// PipelineCache returns the shared pipeline-state cache.
func (s *System) PipelineCache() *cache.PipelineStateCache { return s.pipelineC }

// ShaderCompiler returns the configured (or default Naga-backed) compiler.
func (s *System) ShaderCompiler() shaderc.Compiler { return s.compiler }

// Queue returns the logical CommandQueue for the given family.
func (s *System) Queue(family types.Queue) *queue.CommandQueue {
	switch family {
	case types.QueueGraphics:
		return s.graphics
	case types.QueueCompute:
		return s.compute
	case types.QueueTransfer:
		return s.transfer
	default:
		return nil
	}
}

// Queues returns all three logical queues keyed by family, the shape
// rendergraph.CompiledGraph.Execute expects.
func (s *System) Queues() map[types.Queue]*queue.CommandQueue {
	return map[types.Queue]*queue.CommandQueue{
		types.QueueGraphics: s.graphics,
		types.QueueCompute:  s.compute,
		types.QueueTransfer: s.transfer,
	}
}

// Initializer returns the upload/clear/mipmap collaborator.
func (s *System) Initializer() *initializer.Initializer { return s.init }

// Finalizer returns the cross-queue-handoff collaborator.
func (s *System) Finalizer() *initializer.Finalizer { return s.fin }

// Swapchain returns the current swapchain manager.
func (s *System) Swapchain() *swapchain.Swapchain { return s.swap }

// Frame is the per-frame handle BeginFrame returns: the ring slot to
// record against, plus the swapchain image already acquired into it so a
// caller building a rendergraph.Graph can import it as SWAPCHAIN_NODE.
type Frame struct {
	Context  *frame.Context
	Acquired hal.SurfaceTexture
}

// BeginFrame is the begin-frame half of the FrameContext
// lifecycle: waits for this ring slot's GPU work from
// max_frames_in_flight frames ago, drains its garbage, recycles its
// command pools, then acquires the next swapchain image. An
// ErrOutOfDate/ErrSuboptimal result means the caller should call Resize
// and retry rather than proceed to build a graph this frame.
func (s *System) BeginFrame() (*Frame, error) {
	ctx := s.ring.Current()
	if err := ctx.Begin(s.graphics, s.device, s.bindless); err != nil {
		return nil, wrapErr(ErrOutOfDeviceMemory, err)
	}

	fence, err := s.device.CreateFence()
	if err != nil {
		return nil, wrapErr(ErrOutOfDeviceMemory, fmt.Errorf("acquire fence: %w", err))
	}
	defer s.device.DestroyFence(fence)

	acquired, err := s.swap.Acquire(fence)
	if err != nil {
		return nil, s.classifyAcquireError(err)
	}
	if s.swap.Suboptimal() {
		s.log.Warn("swapchain image suboptimal, recreate recommended")
	}

	return &Frame{Context: ctx, Acquired: acquired}, nil
}

// EndFrame implements the end-of-frame half: the caller has already
// executed its rendergraph.CompiledGraph (which submitted to whichever
// queues it used) and must pass the graphics queue's final Handle value
// here. EndFrame presents the acquired image on the graphics queue,
// records the frame's end-of-frame timeline value, and advances the ring.
func (s *System) EndFrame(f *Frame, graphicsValue queue.TimelineValue) error {
	f.Context.End(graphicsValue)

	if _, err := s.swap.Present(s.graphics); err != nil {
		return s.classifyAcquireError(err)
	}

	s.ring.Advance()
	return nil
}

// DiscardFrame abandons a frame whose graph failed to compile or
// record: the acquired swapchain image is released without presenting,
// and the ring slot still advances so the next BeginFrame does not retry
// the same slot against a stale acquire.
func (s *System) DiscardFrame(f *Frame) {
	s.swap.Discard()
	f.Context.End(0)
	s.ring.Advance()
}

// Resize recreates the swapchain at the WSI's current framebuffer size,
// retiring the old swapchain's images through the current frame slot's
// Garbages. Call this after BeginFrame/Acquire reports
// ErrOutOfDate, or in response to a window resize notification.
func (s *System) Resize() error {
	width, height := s.cfg.Wsi.FramebufferSize()
	garbage := s.ring.Current().Garbage
	err := s.swap.Recreate(uint32(width), uint32(height), func() {
		// hal.Surface.Configure already threads the previous swapchain
		// handle to the backend (see swapchain.Recreate's doc comment);
		// there is nothing left at this layer to hand to Garbages beyond
		// recording that a recreation happened, so callers that keep
		// their own retired image-view list can add it here.
		garbage.Defer(func() {})
	})
	if err != nil {
		return wrapErr(ErrSurfaceLost, err)
	}
	return nil
}

func (s *System) classifyAcquireError(err error) error {
	switch {
	case errors.Is(err, hal.ErrSurfaceOutdated):
		return wrapErr(ErrOutOfDate, err)
	case errors.Is(err, hal.ErrSurfaceLost):
		return wrapErr(ErrSurfaceLost, err)
	default:
		return wrapErr(ErrSurfaceLost, err)
	}
}

// Close idles the device and tears down every subsystem in reverse
// construction order. Call this once at application shutdown.
func (s *System) Close() {
	if s.ring != nil {
		s.ring.Destroy()
	}
	if s.init != nil {
		s.init.Destroy()
	}
	if s.fin != nil {
		s.fin.Destroy()
	}
	for _, f := range s.queueFences {
		if s.device != nil {
			s.device.DestroyFence(f)
		}
	}
	s.queueFences = nil
	if s.swap != nil {
		// Swapchain.Destroy already unconfigures and destroys the surface;
		// clear it so destroyPartial below does not destroy it a second
		// time.
		s.swap.Destroy()
		s.swap = nil
		s.surface = nil
	}
	s.destroyPartial()
}

// destroyPartial releases whatever New had already constructed before a
// later step failed, so nothing leaks for
// System's own construction as well as graph compilation. Called both from
// Close (after the swapchain, which owns the surface, is already torn
// down) and from New's own failure paths (before a swapchain exists).
func (s *System) destroyPartial() {
	if s.coreDev != nil {
		s.coreDev.Destroy()
		s.coreDev = nil
	} else if s.device != nil {
		s.device.Destroy()
	}
	s.device = nil
	if s.surface != nil {
		s.surface.Destroy()
		s.surface = nil
	}
	if s.adapter != nil {
		s.adapter.Destroy()
		s.adapter = nil
	}
	if s.instance != nil {
		s.instance.Destroy()
		s.instance = nil
	}
}
