// Package swapchain implements the swapchain manager: surface
// format/present-mode/extent selection, acquire/present, and recreate on
// OUT_OF_DATE/SUBOPTIMAL. It reuses hal/vulkan/swapchain.go's
// createSwapchain/acquireNextImage/present trio - translated to work
// through this project's already-abstract hal.Surface contract (Configure/
// AcquireTexture/DiscardTexture) instead of raw vkCreateSwapchainKHR calls,
// since the Vulkan-level plumbing already lives inside hal/vulkan.
package swapchain

import (
	"errors"
	"fmt"

	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/queue"
	"github.com/gogpu/bindless/types"
)

// Swapchain owns one surface's configuration and current image, as
// it tracks: surface, chosen format, current
// extent, image count, and the currently acquired image.
type Swapchain struct {
	adapter hal.Adapter
	device  hal.Device
	surface hal.Surface

	config     hal.SurfaceConfiguration
	caps       *hal.SurfaceCapabilities
	imageCount uint32

	acquired   hal.SurfaceTexture
	suboptimal bool
}

// New selects a surface configuration with the usual preferences -
// BGRA8-UNORM+SRGB-NONLINEAR format, MAILBOX present mode, extent clamped
// to the requested framebuffer size - and configures the surface.
func New(adapter hal.Adapter, device hal.Device, surface hal.Surface, width, height uint32, usage types.TextureUsage) (*Swapchain, error) {
	caps := adapter.SurfaceCapabilities(surface)
	if caps == nil {
		return nil, errors.New("swapchain: adapter is not compatible with this surface")
	}
	if len(caps.Formats) == 0 || len(caps.PresentModes) == 0 {
		return nil, errors.New("swapchain: surface reports no usable formats or present modes")
	}

	sc := &Swapchain{
		adapter: adapter,
		device:  device,
		surface: surface,
		caps:    caps,
		config: hal.SurfaceConfiguration{
			Width:       width,
			Height:      height,
			Format:      chooseFormat(caps.Formats),
			Usage:       usage | types.TextureUsageRenderAttachment,
			PresentMode: choosePresentMode(caps.PresentModes),
			AlphaMode:   chooseAlphaMode(caps.AlphaModes),
		},
	}

	if err := surface.Configure(device, &sc.config); err != nil {
		return nil, fmt.Errorf("swapchain: configure: %w", err)
	}
	return sc, nil
}

// chooseFormat prefers BGRA8-UNORM-SRGB, falling back to the first
// reported format.
func chooseFormat(formats []types.TextureFormat) types.TextureFormat {
	for _, f := range formats {
		if f == types.TextureFormatBGRA8UnormSrgb {
			return f
		}
	}
	return formats[0]
}

// choosePresentMode prefers MAILBOX, falling back to FIFO (universally
// supported, never torn).
func choosePresentMode(modes []types.PresentMode) types.PresentMode {
	for _, m := range modes {
		if m == types.PresentModeMailbox {
			return m
		}
	}
	for _, m := range modes {
		if m == types.PresentModeFifo {
			return m
		}
	}
	return modes[0]
}

func chooseAlphaMode(modes []types.CompositeAlphaMode) types.CompositeAlphaMode {
	for _, m := range modes {
		if m == types.CompositeAlphaModeOpaque {
			return m
		}
	}
	return modes[0]
}

// Format returns the format images acquired from this swapchain are in.
func (s *Swapchain) Format() types.TextureFormat { return s.config.Format }

// Extent returns the current configured width/height.
func (s *Swapchain) Extent() (width, height uint32) { return s.config.Width, s.config.Height }

// Acquire waits on fence (the per-frame synchronization object hal.Surface
// uses internally to signal image availability) and returns the next
// image to render into. A hal.ErrSurfaceOutdated or hal.ErrSurfaceLost
// result means the caller must call Recreate (outdated) or fail the frame
// (lost) rather than proceed to record passes against it.
func (s *Swapchain) Acquire(fence hal.Fence) (hal.SurfaceTexture, error) {
	if s.acquired != nil {
		return nil, errors.New("swapchain: previous image not yet presented or discarded")
	}

	acquired, err := s.surface.AcquireTexture(fence)
	if err != nil {
		return nil, err
	}

	s.acquired = acquired.Texture
	s.suboptimal = acquired.Suboptimal
	return acquired.Texture, nil
}

// Suboptimal reports whether the most recently acquired image came back
// SUBOPTIMAL - usable this frame, but the caller should schedule a
// Recreate soon.
func (s *Swapchain) Suboptimal() bool { return s.suboptimal }

// Present flushes q's batch and presents the currently acquired image,
// consuming it. Present is only meaningful on the graphics queue.
func (s *Swapchain) Present(q *queue.CommandQueue) (queue.Handle, error) {
	if s.acquired == nil {
		return queue.Handle{}, errors.New("swapchain: no image acquired to present")
	}
	tex := s.acquired
	s.acquired = nil
	s.suboptimal = false
	return q.Present(s.surface, tex)
}

// Discard abandons the currently acquired image without presenting it -
// used when frame recording failed or the graph compiler rejected this
// frame's graph.
func (s *Swapchain) Discard() {
	if s.acquired == nil {
		return
	}
	s.surface.DiscardTexture(s.acquired)
	s.acquired = nil
	s.suboptimal = false
}

// Recreate reconfigures the surface at a new size, following the
// recreate contract: the old swapchain and its image views are retired
// through the caller's garbage collector (drained `max_frames_in_flight`
// frames later, once the GPU is done with them), not destroyed here.
// hal.Surface.Configure already threads the old swapchain handle through
// to the backend internally (mirroring hal/vulkan/swapchain.go's
// OldSwapchain field), so Recreate's only responsibility at this layer is
// picking the new extent and re-issuing Configure.
func (s *Swapchain) Recreate(width, height uint32, retire func()) error {
	if s.acquired != nil {
		return errors.New("swapchain: cannot recreate with an image still acquired")
	}

	s.config.Width = width
	s.config.Height = height
	if err := s.surface.Configure(s.device, &s.config); err != nil {
		return fmt.Errorf("swapchain: reconfigure: %w", err)
	}
	if retire != nil {
		retire()
	}
	return nil
}

// Destroy unconfigures and destroys the underlying surface. The device
// must have idled first.
func (s *Swapchain) Destroy() {
	s.surface.Unconfigure(s.device)
	s.surface.Destroy()
}
