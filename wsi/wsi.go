// Package wsi declares the narrow platform-windowing collaborator the core
// treats as an external system: something that can hand back a
// native surface and report the current framebuffer size in pixels. The
// core never creates or owns a window itself.
package wsi

import "github.com/gogpu/bindless/hal"

// Wsi is implemented by whatever owns the application window. The core
// only ever calls these two methods; everything else about the window
// (input, resize policy, event loop) is the caller's concern.
type Wsi interface {
	// CreateSurface asks instance to create a hal.Surface for this window,
	// using whatever platform handles (HWND/HINSTANCE, X11 Display/Window,
	// Wayland display/surface, ...) the underlying windowing library
	// exposes.
	CreateSurface(instance hal.Instance) (hal.Surface, error)

	// FramebufferSize reports the current framebuffer size in pixels,
	// consulted by swapchain creation/recreation when the surface itself
	// does not report a current extent.
	FramebufferSize() (width, height int)
}
