// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build darwin

package allbackends

import (
	// macOS/iOS-specific HAL backend imports.

	// Vulkan backend - available via MoltenVK on macOS.
	_ "github.com/gogpu/bindless/hal/vulkan"
)
