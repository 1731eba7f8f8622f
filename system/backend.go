package system

import (
	"github.com/gogpu/bindless/core"
	"github.com/gogpu/bindless/hal"
	"github.com/gogpu/bindless/types"
)

// RegisterBackend makes a backend available to every System created
// afterward, mirroring core.RegisterBackendProvider - this package adds no
// bookkeeping of its own on top of core's registry, since core already
// owns priority ordering and availability checks (core/backend.go).
//
// Call this from an init() in a backend-specific build tag file, the same
// way hal/vulkan or a future hal/metal package would register itself.
func RegisterBackend(provider core.BackendProvider) {
	core.RegisterBackendProvider(provider)
}

// RegisterHALBackends registers every backend the hal package's own
// registry (hal.RegisterBackend/hal.AvailableBackends) knows about as a
// core.BackendProvider, so a build that only imports hal/noop or hal/vulkan
// for its side effects does not also need to call RegisterBackend by hand.
func RegisterHALBackends() {
	core.RegisterHALBackends()
}

// selectAdapter asks the registered backend providers - filtered to cfg's
// requested Backend when non-zero, otherwise every registered provider in
// priority order - to create an instance and enumerate adapters compatible
// with surfaceHint, returning the first one found.
func selectAdapter(cfg *Config, surfaceHint hal.Surface) (hal.Instance, hal.ExposedAdapter, error) {
	var providers []core.BackendProvider
	if cfg.Backend != types.BackendEmpty {
		p, ok := core.GetBackendProvider(cfg.Backend)
		if !ok {
			return nil, hal.ExposedAdapter{}, wrapErr(ErrAdapterNotFound, errRequired("registered provider for requested backend"))
		}
		providers = []core.BackendProvider{p}
	} else {
		providers = core.GetOrderedBackendProviders()
	}

	var flags types.InstanceFlags
	if cfg.EnableValidation {
		flags |= types.InstanceFlagsValidation
	}

	for _, p := range providers {
		instance, err := p.CreateInstance(&hal.InstanceDescriptor{
			Backends: types.Backends(1) << uint(p.Variant()),
			Flags:    flags,
		})
		if err != nil {
			continue
		}
		adapters := instance.EnumerateAdapters(surfaceHint)
		if len(adapters) == 0 {
			instance.Destroy()
			continue
		}
		return instance, adapters[0], nil
	}

	return nil, hal.ExposedAdapter{}, wrapErr(ErrAdapterNotFound, errRequired("a usable adapter from any registered backend"))
}
