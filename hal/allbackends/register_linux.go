// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build linux && !android

package allbackends

import (
	// Linux-specific HAL backend imports.

	// Vulkan backend - the only supported backend on Linux.
	_ "github.com/gogpu/bindless/hal/vulkan"
)
