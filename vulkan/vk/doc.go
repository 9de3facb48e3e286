// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vk provides Pure Go Vulkan bindings covering the subset of
// vk.xml that the rhi/vulkan backend exercises.
//
// This package contains low-level Vulkan types, constants, and function
// pointers invoked through goffi's FFI call interfaces. It does not use
// CGO, so it builds and runs unmodified on every goffi-supported host.
//
// # Usage
//
// Initialize Vulkan and load function pointers:
//
//	if err := vk.Init(); err != nil {
//	    log.Fatal(err)
//	}
//
//	var cmds vk.Commands
//	cmds.LoadGlobal()
//
//	// Create instance...
//	cmds.LoadInstance(instance)
//
// # Platform Support
//
// - Windows: vulkan-1.dll
// - Linux: libvulkan.so.1
// - macOS: libvulkan.dylib (MoltenVK)
package vk
