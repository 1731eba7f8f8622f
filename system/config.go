package system

import (
	"log/slog"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/shaderc"
	"github.com/gogpu/bindless/types"
	"github.com/gogpu/bindless/wsi"
)

// Config collects the external inputs a System needs to start:
// a window to present into, how many CPU worker threads record command
// buffers in parallel, and how deep the frame ring is.
type Config struct {
	// Wsi creates the rendering surface and reports the window's current
	// framebuffer size. Required.
	Wsi wsi.Wsi

	// ThreadCount is the number of worker threads rendergraph.Execute may
	// record passes on concurrently. Must be > 0.
	ThreadCount int

	// MaxFramesInFlight sizes the frame.Ring (typically 2 or 3). Must be > 0.
	MaxFramesInFlight int

	// TransientPoolSize is kept on the Config but nothing reads it:
	// rendergraph.Compile allocates a frame's transient buffers and
	// textures without any byte budget.
	TransientPoolSize uint64

	// Backend selects which registered BackendProvider opens the adapter.
	// Zero value (types.BackendEmpty) lets System pick the
	// highest-priority available backend instead of a specific one.
	Backend types.Backend

	// EnableValidation requests backend validation layers, a compile-time/
	// debug-build toggle in native Vulkan terms; here it is forwarded to
	// hal.InstanceDescriptor's Flags.
	EnableValidation bool

	// BindlessLimits overrides the default descriptor-table capacities.
	// Zero value means types.DefaultBindlessLimits().
	BindlessLimits types.BindlessLimits

	// DescriptorWriter performs the native descriptor-set writes behind
	// the bindless table (vulkan.NewBindlessTable on the Vulkan backend).
	// Nil is valid for a noop/software backend, where no native
	// descriptor updates are needed.
	DescriptorWriter bindless.Writer

	// ShaderCompiler translates shader sources into backend modules. Nil
	// defaults to shaderc.NewNagaCompiler().
	ShaderCompiler shaderc.Compiler

	// Logger receives structured diagnostics (the selected adapter at
	// startup, a warning when an acquired swapchain image is suboptimal).
	// Nil disables logging.
	Logger *slog.Logger
}

// Validate checks the required fields before any GPU
// resource is touched.
func (c *Config) Validate() error {
	if c.Wsi == nil {
		return wrapErr(ErrInvalidConfiguration, errRequired("Wsi"))
	}
	if c.ThreadCount <= 0 {
		return wrapErr(ErrInvalidConfiguration, errRequired("ThreadCount > 0"))
	}
	if c.MaxFramesInFlight <= 0 {
		return wrapErr(ErrInvalidConfiguration, errRequired("MaxFramesInFlight > 0"))
	}
	return nil
}

type configFieldError string

func (e configFieldError) Error() string { return string(e) + " is required" }

func errRequired(field string) error { return configFieldError(field) }
