// Package types defines the back-end-agnostic data model shared by every
// piece of the render hardware interface.
//
// It provides the fundamental vocabulary used throughout rhi and rhi/vulkan:
//
//   - Backend and adapter types (Backend, AdapterInfo)
//   - Resource descriptors (BufferDescriptor, TextureDescriptor, SamplerDescriptor)
//   - Pipeline types (BindGroupLayoutEntry, PrimitiveState, ColorTargetState)
//   - Enums and constants (TextureFormat, CompareFunction, BufferUsage, ...)
//
// None of these types carry a native handle; they describe resources and
// capabilities independently of any concrete graphics API.
package types
