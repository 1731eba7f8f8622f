// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package allbackends imports all HAL backend implementations.
//
// Import this package for side effects to register all available backends:
//
//	import (
//		_ "github.com/gogpu/bindless/hal/allbackends"
//	)
//
// This will register:
//   - Vulkan backend (Windows, Linux except Android, macOS via MoltenVK)
//   - No-op backend (all platforms, for testing)
//
// No other backend is registered.
//
// After importing, use hal.GetBackend or hal.SelectBestBackend to access backends.
//
// Build tags control which backends are available: the Vulkan import is
// limited to windows, darwin, and linux && !android; the noop import has
// no build constraint.
//
// Example usage:
//
//	import (
//		_ "github.com/gogpu/bindless/hal/allbackends"
//		"github.com/gogpu/bindless/hal"
//	)
//
//	func main() {
//		backend, err := hal.SelectBestBackend()
//		if err != nil {
//			log.Fatal(err)
//		}
//		instance, err := backend.CreateInstance(nil)
//		if err != nil {
//			log.Fatal(err)
//		}
//		defer instance.Destroy()
//		for _, a := range instance.EnumerateAdapters(nil) {
//			fmt.Println(a.Info.Name)
//		}
//	}
package allbackends
