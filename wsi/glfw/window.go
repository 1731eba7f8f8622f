// Package glfw is a reference wsi.Wsi implementation backed by
// github.com/go-gl/glfw/v3.3/glfw. It exists as an example/integration-test
// collaborator: the core itself (package system) never imports this
// package, only the wsi.Wsi interface it satisfies.
package glfw

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/bindless/hal"
)

func init() {
	// GLFW must be initialized and driven from the thread that called
	// glfw.Init, matching window_glfw.go's runtime.LockOSThread() call.
	runtime.LockOSThread()
}

// Window wraps a single GLFW window and implements wsi.Wsi.
type Window struct {
	win *glfw.Window
}

// Config describes the window to create.
type Config struct {
	Title         string
	Width, Height int
}

// New creates a GLFW window sized for Vulkan use: no client API is
// requested (glfw.ClientAPI = glfw.NoAPI), matching window_glfw.go's
// WebGPU-side equivalent for a system that creates its own Vulkan surface
// rather than an OpenGL context.
func New(cfg Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("wsi/glfw: init: %w", err)
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("wsi/glfw: create window: %w", err)
	}
	return &Window{win: win}, nil
}

// CreateSurface implements wsi.Wsi by handing the platform-specific native
// handles (resolved per-OS in surface_*.go) to instance.CreateSurface,
// exactly the hal.Instance.CreateSurface(displayHandle, windowHandle) call
// the Wsi contract names.
func (w *Window) CreateSurface(instance hal.Instance) (hal.Surface, error) {
	display, window := w.nativeHandles()
	surface, err := instance.CreateSurface(display, window)
	if err != nil {
		return nil, fmt.Errorf("wsi/glfw: create surface: %w", err)
	}
	return surface, nil
}

// FramebufferSize implements wsi.Wsi.
func (w *Window) FramebufferSize() (int, int) {
	return w.win.GetFramebufferSize()
}

// ShouldClose reports whether the user requested the window to close.
func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

// PollEvents pumps the GLFW event queue once; callers drive their own loop
// around it (the core has no event-loop opinion).
func PollEvents() {
	glfw.PollEvents()
}

// Destroy destroys the window and terminates GLFW.
func (w *Window) Destroy() {
	w.win.Destroy()
	glfw.Terminate()
}
