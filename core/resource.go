package core

import (
	"fmt"

	"github.com/gogpu/bindless/bindless"
	"github.com/gogpu/bindless/cachestate"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// Adapter represents a physical GPU adapter.
//
// The Info/Features/Limits/Backend fields are populated for every adapter,
// real or mock. halAdapter and halCapabilities are not set by any code in
// this module; they stay nil.
type Adapter struct {
	// Info contains information about the adapter.
	Info types.AdapterInfo
	// Features contains the features supported by the adapter.
	Features types.Features
	// Limits contains the resource limits of the adapter.
	Limits types.Limits
	// Backend identifies which graphics backend this adapter uses.
	Backend types.Backend

	halAdapter      hal.Adapter
	halCapabilities *hal.Capabilities
}

// Device represents a logical GPU device.
//
// A Device owns a real hal.Device behind a snatch lock, so the command
// path (package rendergraph, initializer, finalizer) can keep recording
// against it concurrently with a resize or shutdown snatching it away.
type Device struct {
	// Label is a debug label for the device.
	Label string
	// Features contains the features enabled on this device.
	Features types.Features
	// Limits contains the resource limits of this device.
	Limits types.Limits

	raw             *Snatchable[hal.Device]
	snatchLock      *SnatchLock
	associatedQueue *Queue
}

// NewDevice wraps an already-opened hal.Device for the HAL-integrated API.
// adapter may be nil when no adapter metadata is available (e.g. in tests).
func NewDevice(halDevice hal.Device, adapter *Adapter, features types.Features, limits types.Limits, label string) *Device {
	d := &Device{
		Label:      label,
		Features:   features,
		Limits:     limits,
		raw:        NewSnatchable(halDevice),
		snatchLock: NewSnatchLock(),
	}
	if adapter != nil {
		d.Limits = limits
	}
	return d
}

// IsValid reports whether the device's HAL resource is still live. A
// non-HAL device (raw == nil) is always considered valid.
func (d *Device) IsValid() bool {
	if d.raw == nil {
		return true
	}
	return !d.raw.IsSnatched()
}

// HasHAL reports whether this device owns a real hal.Device.
func (d *Device) HasHAL() bool {
	return d.raw != nil
}

// SnatchLock returns the device's snatch lock, or nil for a non-HAL device.
func (d *Device) SnatchLock() *SnatchLock {
	return d.snatchLock
}

// Raw returns the underlying hal.Device. The caller must hold a SnatchGuard
// obtained from SnatchLock(). Returns nil once the device has been
// destroyed, or for a non-HAL device.
func (d *Device) Raw(guard *SnatchGuard) hal.Device {
	if d.raw == nil {
		return nil
	}
	v := d.raw.Get(guard)
	if v == nil {
		return nil
	}
	return *v
}

// Destroy releases the underlying hal.Device. Safe to call more than once;
// only the first call reaches the HAL.
func (d *Device) Destroy() {
	if d.raw == nil {
		return
	}
	guard := d.snatchLock.Write()
	defer guard.Release()
	v := d.raw.Snatch(guard)
	if v != nil {
		(*v).Destroy()
	}
}

// checkValid returns ErrDeviceDestroyed if the device has been destroyed.
func (d *Device) checkValid() error {
	if !d.IsValid() {
		return fmt.Errorf("device %q: %w", d.Label, ErrDeviceDestroyed)
	}
	return nil
}

// AssociatedQueue returns the queue recorded by SetAssociatedQueue, or nil
// if none has been set.
func (d *Device) AssociatedQueue() *Queue {
	return d.associatedQueue
}

// SetAssociatedQueue records the queue created alongside this device.
func (d *Device) SetAssociatedQueue(queue *Queue) {
	d.associatedQueue = queue
}

// Queue represents a command queue for a device.
type Queue struct {
	// Label is a debug label for the queue.
	Label string

	raw hal.Queue
}

// Raw returns the underlying hal.Queue, or nil if no HAL queue was set.
func (q *Queue) Raw() hal.Queue {
	return q.raw
}

// bufferState bundles the bindless descriptor slot and pipeline-barrier
// tracking state shared by every Buffer.
type bufferState struct {
	descriptor bindless.ID
	cache      cachestate.State
	queueFlags types.QueueFlags
}

// Buffer represents a GPU buffer addressed bindlessly: its storage-buffer
// descriptor slot (when BufferUsageStorage is set) lives in the global
// bindless table rather than a per-draw bind group.
type Buffer struct {
	Label    string
	Size     uint64
	Usage    types.BufferUsage
	Memory   types.MemoryPreference

	raw   *Snatchable[hal.Buffer]
	state *bufferState
}

// NewBuffer wraps a HAL buffer allocated by hal.Device.CreateBuffer with
// bindless and barrier tracking state.
func NewBuffer(halBuffer hal.Buffer, desc *types.BufferDescriptor, memory types.MemoryPreference, queueFlags types.QueueFlags) *Buffer {
	return &Buffer{
		Label:  desc.Label,
		Size:   desc.Size,
		Usage:  desc.Usage,
		Memory: memory,
		raw:    NewSnatchable(halBuffer),
		state: &bufferState{
			descriptor: bindless.Null,
			queueFlags: queueFlags,
		},
	}
}

// Raw returns the underlying hal.Buffer. The caller must hold a SnatchGuard
// from the owning device's SnatchLock. Returns nil once snatched.
func (b *Buffer) Raw(guard *SnatchGuard) hal.Buffer {
	if b == nil || b.raw == nil {
		return nil
	}
	v := b.raw.Get(guard)
	if v == nil {
		return nil
	}
	return *v
}

// Snatch takes the hal.Buffer out of the wrapper for deferred
// destruction, leaving it snatched. The caller must hold the owning
// device's exclusive snatch guard.
func (b *Buffer) Snatch(guard *ExclusiveSnatchGuard) hal.Buffer {
	if b == nil || b.raw == nil {
		return nil
	}
	v := b.raw.Snatch(guard)
	if v == nil {
		return nil
	}
	return *v
}

// Descriptor returns the bindless storage-buffer slot bound to this buffer,
// or bindless.Null if none has been bound.
func (b *Buffer) Descriptor() bindless.ID {
	if b.state == nil {
		return bindless.Null
	}
	return b.state.descriptor
}

// SetDescriptor records the bindless slot assigned to this buffer.
func (b *Buffer) SetDescriptor(id bindless.ID) {
	if b.state != nil {
		b.state.descriptor = id
	}
}

// CacheState returns the pipeline-barrier tracking state for this buffer,
// used by the render graph to synthesize availability/visibility barriers.
func (b *Buffer) CacheState() *cachestate.State {
	if b.state == nil {
		return nil
	}
	return &b.state.cache
}

// textureState mirrors bufferState for sampled/storage images.
type textureState struct {
	descriptor bindless.ID
	cache      cachestate.State
	queueFlags types.QueueFlags
}

// Texture represents a GPU image, addressed bindlessly via its
// sampled-image or storage-image descriptor slot.
type Texture struct {
	Label     string
	Size      types.Extent3D
	Format    types.TextureFormat
	Usage     types.TextureUsage
	MipLevels uint32

	raw   *Snatchable[hal.Texture]
	state *textureState
}

// NewTexture wraps a HAL texture allocated by Device.CreateTexture.
func NewTexture(halTexture hal.Texture, desc *types.TextureDescriptor, queueFlags types.QueueFlags) *Texture {
	mips := desc.MipLevelCount
	if mips == 0 {
		mips = 1
	}
	return &Texture{
		Label:     desc.Label,
		Size:      desc.Size,
		Format:    desc.Format,
		Usage:     desc.Usage,
		MipLevels: mips,
		raw:       NewSnatchable(halTexture),
		state: &textureState{
			descriptor: bindless.Null,
			queueFlags: queueFlags,
		},
	}
}

// Raw returns the underlying hal.Texture. The caller must hold a SnatchGuard
// from the owning device's SnatchLock. Returns nil once snatched.
func (t *Texture) Raw(guard *SnatchGuard) hal.Texture {
	if t == nil || t.raw == nil {
		return nil
	}
	v := t.raw.Get(guard)
	if v == nil {
		return nil
	}
	return *v
}

// Descriptor returns the bindless image slot bound to this texture.
func (t *Texture) Descriptor() bindless.ID {
	if t.state == nil {
		return bindless.Null
	}
	return t.state.descriptor
}

// SetDescriptor records the bindless slot assigned to this texture.
func (t *Texture) SetDescriptor(id bindless.ID) {
	if t.state != nil {
		t.state.descriptor = id
	}
}

// CacheState returns the pipeline-barrier tracking state for this texture.
func (t *Texture) CacheState() *cachestate.State {
	if t.state == nil {
		return nil
	}
	return &t.state.cache
}

// TextureView represents a view into a texture, used as a render-pass
// attachment. Views are not independently addressed bindlessly; only the
// owning Texture carries a descriptor slot.
type TextureView struct {
	Label  string
	Format types.TextureFormat
	Range  hal.TextureRange

	owner *Texture
	raw   *Snatchable[hal.TextureView]
}

// NewTextureView wraps a HAL texture view created for a render pass
// attachment or sampled binding.
func NewTextureView(halView hal.TextureView, owner *Texture, desc *types.TextureViewDescriptor) *TextureView {
	return &TextureView{
		Label:  desc.Label,
		Format: desc.Format,
		owner:  owner,
		raw:    NewSnatchable(halView),
	}
}

// Raw returns the underlying hal.TextureView. The caller must hold a
// SnatchGuard from the owning device's SnatchLock.
func (v *TextureView) Raw(guard *SnatchGuard) hal.TextureView {
	if v == nil || v.raw == nil {
		return nil
	}
	raw := v.raw.Get(guard)
	if raw == nil {
		return nil
	}
	return *raw
}

// Texture returns the texture this view was created from.
func (v *TextureView) Texture() *Texture {
	return v.owner
}

// Sampler represents a texture sampler, addressed bindlessly via its
// sampler descriptor slot.
type Sampler struct {
	Label string

	raw        *Snatchable[hal.Sampler]
	descriptor bindless.ID
}

// NewSampler wraps a HAL sampler created by Device.CreateSampler.
func NewSampler(halSampler hal.Sampler, desc *types.SamplerDescriptor) *Sampler {
	return &Sampler{
		Label:      desc.Label,
		raw:        NewSnatchable(halSampler),
		descriptor: bindless.Null,
	}
}

// Raw returns the underlying hal.Sampler. The caller must hold a
// SnatchGuard from the owning device's SnatchLock.
func (s *Sampler) Raw(guard *SnatchGuard) hal.Sampler {
	if s == nil || s.raw == nil {
		return nil
	}
	raw := s.raw.Get(guard)
	if raw == nil {
		return nil
	}
	return *raw
}

// Descriptor returns the bindless sampler slot bound to this sampler.
func (s *Sampler) Descriptor() bindless.ID {
	return s.descriptor
}

// SetDescriptor records the bindless slot assigned to this sampler.
func (s *Sampler) SetDescriptor(id bindless.ID) {
	s.descriptor = id
}

