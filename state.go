// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package rhi

// ResourceState describes the logical state a buffer or texture is
// currently in. Backends translate a ResourceState pair into the native
// synchronization primitives (image layouts, access masks, pipeline
// stages) needed to move a resource from one state to the next.
type ResourceState uint32

const (
	// ResourceStateUnknown is the state of a resource that has never been
	// transitioned; backends treat it as "undefined" for layout purposes.
	ResourceStateUnknown ResourceState = iota

	// ResourceStateCommon is a general-purpose state usable by any stage,
	// at some synchronization cost.
	ResourceStateCommon

	// ResourceStatePresent is the state a swapchain texture must be in
	// before it is handed to the presentation engine.
	ResourceStatePresent

	// ResourceStateRenderTarget is the state a color attachment must be
	// in while a render pass is writing to it.
	ResourceStateRenderTarget

	// ResourceStateShaderResource is the state a texture or buffer must
	// be in to be read by a shader (sampled image, read-only buffer).
	ResourceStateShaderResource

	// ResourceStateTransferDst is the state a resource must be in to be
	// the destination of a copy.
	ResourceStateTransferDst

	// ResourceStateTransferSrc is the state a resource must be in to be
	// the source of a copy.
	ResourceStateTransferSrc

	// ResourceStateRWDepthStencil is the state a depth-stencil attachment
	// must be in while a render pass is writing to it.
	ResourceStateRWDepthStencil

	// ResourceStateVertexAndConstantBuffer is the buffer-only state for
	// vertex buffers and uniform/constant buffers.
	ResourceStateVertexAndConstantBuffer

	// ResourceStateUnorderedAccess is the buffer-only state for storage
	// buffers bound for read-write shader access.
	ResourceStateUnorderedAccess
)

// String renders the state the way log lines and error messages name it.
func (s ResourceState) String() string {
	switch s {
	case ResourceStateUnknown:
		return "Unknown"
	case ResourceStateCommon:
		return "Common"
	case ResourceStatePresent:
		return "Present"
	case ResourceStateRenderTarget:
		return "RenderTarget"
	case ResourceStateShaderResource:
		return "ShaderResource"
	case ResourceStateTransferDst:
		return "TransferDst"
	case ResourceStateTransferSrc:
		return "TransferSrc"
	case ResourceStateRWDepthStencil:
		return "RWDepthStencil"
	case ResourceStateVertexAndConstantBuffer:
		return "VertexAndConstantBuffer"
	case ResourceStateUnorderedAccess:
		return "UnorderedAccess"
	default:
		return "Invalid"
	}
}
