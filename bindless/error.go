package bindless

import "errors"

// ErrDescriptorSetFull is returned when a kind's fixed-capacity descriptor
// array has no free slots left.
var ErrDescriptorSetFull = errors.New("bindless: descriptor set exhausted")
