// Package core provides the bindless-addressed GPU resource types and the
// generational ID/pool machinery they are allocated from.
//
// This package sits between the backend-agnostic hal layer and the
// higher-level packages (bindless, cachestate, queue, rendergraph, system)
// that drive a frame. It handles:
//
//   - Type-safe, generation-checked resource identifiers (ID system)
//   - Chunked generational storage and typed resource pools (Storage, Pool,
//     ResourceRegistry)
//   - Concrete resource types addressed bindlessly: Buffer, Texture,
//     TextureView, Sampler carry a bindless descriptor slot and a
//     cachestate.State barrier-tracking struct directly, rather than being
//     looked up by ID through a registry
//   - The Snatchable/SnatchLock pattern used to tear down HAL resources
//     safely while other goroutines may still hold a reference
//   - The multi-backend BackendProvider registry consumed by system.New
//
// Architecture:
//
//	types/  → Data structures (no logic)
//	core/   → Bindless resource types + generational pools (this package)
//	hal/    → Hardware abstraction layer
//
// ID System:
//
// Pooled resources (Buffer, Texture, Sampler, Blas, BlasGroup, Tlas, Shader,
// Program, PipelineState, ShaderTable) are identified by type-safe IDs that
// combine an index and epoch:
//
//	id := NewID[blasMarker](index, epoch)
//	index, epoch := id.Unzip()
//
// The epoch prevents use-after-free bugs by invalidating old IDs once a
// slot is recycled. The Buffer/Texture/Sampler pools hold pointers, so a
// caller holding the *Buffer/*Texture/*Sampler reads its bindless
// descriptor slot off the struct directly.
//
// Pool Pattern:
//
// The ID-addressed resource kinds live in typed pools built on Storage:
//
//	registry := NewRegistry()
//	id := registry.Blas.Insert(blas)
//	blas, ok := registry.Blas.Get(id)
//	registry.Blas.Remove(id)
//
// Thread Safety:
//
// Storage/Pool/ResourceRegistry are safe for concurrent use. Snatchable
// additionally guards against a resource being destroyed out from under a
// concurrent reader; see snatch.go.
package core
