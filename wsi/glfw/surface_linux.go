//go:build linux

package glfw

import (
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// nativeHandles returns the X11 Display*/Window pair Vulkan's
// VK_KHR_xlib_surface needs, matching hal/vulkan/api_linux.go's
// CreateSurface(display, window uintptr) contract. Wayland sessions are
// out of scope for this reference implementation (the X11 handles are
// what go-gl/glfw's native accessors expose on Linux); a production Wsi
// would branch on WAYLAND_DISPLAY the way hal/vulkan/api_linux.go does.
func (w *Window) nativeHandles() (display, window uintptr) {
	return uintptr(unsafe.Pointer(glfw.GetX11Display())), uintptr(w.win.GetX11Window())
}
