// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Type aliases for extension types that reference core types.
// These are typically promoted extensions where KHR/EXT became core.

// MemoryRequirements2KHR is an alias for MemoryRequirements2 (promoted in Vulkan 1.1).
type MemoryRequirements2KHR = MemoryRequirements2
