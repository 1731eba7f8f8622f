package types

// Features required by the bindless render-graph core; an adapter that
// descriptor indexing with update-after-bind, timeline semaphores, buffer
// device address, synchronization2, acceleration structures, and ray
// query/pipeline support. Continues past Feature's existing iota range.
const (
	FeatureDescriptorIndexing Feature = 1 << (iota + 40)
	FeatureTimelineSemaphore
	FeatureBufferDeviceAddress
	FeatureSynchronization2
	FeatureAccelerationStructure
	FeatureRayQuery
	FeatureRayTracingPipeline
)

// RequiredBindlessFeatures is the feature mask System.New checks every
// adapter against; an adapter missing any bit yields ErrorKindAdapterNotFound.
const RequiredBindlessFeatures = FeatureDescriptorIndexing |
	FeatureTimelineSemaphore | FeatureBufferDeviceAddress |
	FeatureSynchronization2 | FeatureAccelerationStructure |
	FeatureRayQuery | FeatureRayTracingPipeline
