package core

import "errors"

// ErrDeviceDestroyed is returned when operating on a destroyed device.
var ErrDeviceDestroyed = errors.New("device destroyed")
