package noop

import (
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// Adapter implements hal.Adapter for the noop backend: a single placeholder
// GPU that accepts every feature/limit request and reports generic surface
// capabilities so tests can configure and present to a noop surface without
// a real GPU.
type Adapter struct{}

// Open always succeeds, returning a noop Device/Queue pair.
func (a *Adapter) Open(_ types.Features, _ types.Limits) (hal.OpenDevice, error) {
	return hal.OpenDevice{Device: &Device{}, Queue: &Queue{}}, nil
}

// TextureFormatCapabilities reports every capability as supported except
// read-write storage.
func (a *Adapter) TextureFormatCapabilities(_ types.TextureFormat) hal.TextureFormatCapabilities {
	return hal.TextureFormatCapabilities{
		Flags: hal.TextureFormatCapabilitySampled |
			hal.TextureFormatCapabilityStorage |
			hal.TextureFormatCapabilityRenderAttachment |
			hal.TextureFormatCapabilityBlendable |
			hal.TextureFormatCapabilityMultisample |
			hal.TextureFormatCapabilityMultisampleResolve,
	}
}

// SurfaceCapabilities reports a generic set of formats/present modes/alpha
// modes for any noop Surface; it returns nil only for a non-noop surface,
// matching the interface's "incompatible adapter" contract.
func (a *Adapter) SurfaceCapabilities(surface hal.Surface) *hal.SurfaceCapabilities {
	if _, ok := surface.(*Surface); !ok {
		return nil
	}
	return &hal.SurfaceCapabilities{
		Formats: []types.TextureFormat{
			types.TextureFormatBGRA8UnormSrgb,
			types.TextureFormatBGRA8Unorm,
			types.TextureFormatRGBA8Unorm,
		},
		PresentModes: []types.PresentMode{
			types.PresentModeFifo,
			types.PresentModeMailbox,
			types.PresentModeImmediate,
		},
		AlphaModes: []types.CompositeAlphaMode{
			types.CompositeAlphaModeOpaque,
			types.CompositeAlphaModeInherit,
		},
	}
}

// Destroy is a no-op.
func (a *Adapter) Destroy() {}
