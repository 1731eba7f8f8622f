package types

// Texture usage bits the bindless render graph needs beyond the WebGPU-style
// TextureUsage set: a render target must be distinguishable as color vs.
// depth-stencil (for render-pass key derivation and finalize-layout lookup,
// see cache.RenderPassKey and initializer.FinalizeLayout), and raster passes
// may read an attachment written by an earlier subpass as an input attachment.
const (
	TextureUsageDepthStencilAttachment TextureUsage = 1 << (iota + 8)
	TextureUsageInputAttachment
)

// TextureViewKind distinguishes the default full-resource view from a
// lazily created per-(mip,layer) sub-view, per the Texture runtime fields
// described for the resource pool.
type TextureViewKind uint8

const (
	TextureViewDefault TextureViewKind = iota
	TextureViewSubresource
)

// SubresourceRange addresses a (mip, layer) sub-view of a texture.
type SubresourceRange struct {
	BaseMipLevel   uint32
	MipLevelCount  uint32
	BaseArrayLayer uint32
	ArrayLayerCount uint32
}
