//go:build windows

package glfw

import "unsafe"

// nativeHandles returns the HINSTANCE/HWND pair Vulkan's
// VK_KHR_win32_surface needs, matching hal/vulkan/api_windows.go's
// CreateSurface(hinstance, hwnd uintptr) contract. hinstance is left 0;
// hal/vulkan's CreateSurface resolves the current module handle itself
// when given 0.
func (w *Window) nativeHandles() (display, window uintptr) {
	return 0, uintptr(unsafe.Pointer(w.win.GetWin32Window()))
}
