// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Manual wrappers for functions the generator never produced invoking
// methods for: render pass/framebuffer/query pool lifetime, and the
// VK_EXT_debug_utils extension. These are NOT overwritten by code
// generation.

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// CreateRenderPass wraps vkCreateRenderPass.
func (c *Commands) CreateRenderPass(device Device, pCreateInfo *RenderPassCreateInfo, pAllocator unsafe.Pointer, pRenderPass *RenderPass) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pRenderPass),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createRenderPass, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyRenderPass wraps vkDestroyRenderPass.
func (c *Commands) DestroyRenderPass(device Device, renderPass RenderPass, pAllocator unsafe.Pointer) {
	if c.destroyRenderPass == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&renderPass),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyRenderPass, nil, args[:])
}

// CreateFramebuffer wraps vkCreateFramebuffer.
func (c *Commands) CreateFramebuffer(device Device, pCreateInfo *FramebufferCreateInfo, pAllocator unsafe.Pointer, pFramebuffer *Framebuffer) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pFramebuffer),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createFramebuffer, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyFramebuffer wraps vkDestroyFramebuffer.
func (c *Commands) DestroyFramebuffer(device Device, framebuffer Framebuffer, pAllocator unsafe.Pointer) {
	if c.destroyFramebuffer == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&framebuffer),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyFramebuffer, nil, args[:])
}

// CreateQueryPool wraps vkCreateQueryPool.
func (c *Commands) CreateQueryPool(device Device, pCreateInfo *QueryPoolCreateInfo, pAllocator unsafe.Pointer, pQueryPool *QueryPool) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pQueryPool),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createQueryPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyQueryPool wraps vkDestroyQueryPool.
func (c *Commands) DestroyQueryPool(device Device, queryPool QueryPool, pAllocator unsafe.Pointer) {
	if c.destroyQueryPool == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&queryPool),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyQueryPool, nil, args[:])
}

// ResetQueryPool wraps vkResetQueryPool (Vulkan 1.2 core).
func (c *Commands) ResetQueryPool(device Device, queryPool QueryPool, firstQuery, queryCount uint32) {
	if c.resetQueryPool == nil {
		return
	}
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&queryPool),
		unsafe.Pointer(&firstQuery),
		unsafe.Pointer(&queryCount),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandleU32U32, c.resetQueryPool, nil, args[:])
}

// HasCreateXlibSurfaceKHR returns true if VK_KHR_xlib_surface was loaded.
func (c *Commands) HasCreateXlibSurfaceKHR() bool {
	return c.createXlibSurfaceKHR != nil
}

// CreateXlibSurfaceKHR wraps vkCreateXlibSurfaceKHR.
func (c *Commands) CreateXlibSurfaceKHR(instance Instance, pCreateInfo *XlibSurfaceCreateInfoKHR, pAllocator unsafe.Pointer, pSurface *SurfaceKHR) Result {
	if c.createXlibSurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pSurface),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createXlibSurfaceKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// HasCreateWaylandSurfaceKHR returns true if VK_KHR_wayland_surface was loaded.
func (c *Commands) HasCreateWaylandSurfaceKHR() bool {
	return c.createWaylandSurfaceKHR != nil
}

// CreateWaylandSurfaceKHR wraps vkCreateWaylandSurfaceKHR.
func (c *Commands) CreateWaylandSurfaceKHR(instance Instance, pCreateInfo *WaylandSurfaceCreateInfoKHR, pAllocator unsafe.Pointer, pSurface *SurfaceKHR) Result {
	if c.createWaylandSurfaceKHR == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pSurface),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createWaylandSurfaceKHR, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// CreateMetalSurfaceEXT wraps vkCreateMetalSurfaceEXT.
func (c *Commands) CreateMetalSurfaceEXT(instance Instance, pCreateInfo *MetalSurfaceCreateInfoEXT, pAllocator unsafe.Pointer, pSurface *SurfaceKHR) Result {
	if c.createMetalSurfaceEXT == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pSurface),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createMetalSurfaceEXT, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// CreateFence wraps vkCreateFence.
func (c *Commands) CreateFence(device Device, pCreateInfo *FenceCreateInfo, pAllocator unsafe.Pointer, pFence *Fence) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pFence),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createFence, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyFence wraps vkDestroyFence.
func (c *Commands) DestroyFence(device Device, fence Fence, pAllocator unsafe.Pointer) {
	if c.destroyFence == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fence),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyFence, nil, args[:])
}

// ResetFences wraps vkResetFences.
func (c *Commands) ResetFences(device Device, fenceCount uint32, pFences *Fence) Result {
	var result int32
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fenceCount),
		unsafe.Pointer(&pFences),
	}
	if err := ffi.CallFunction(&SigResultHandleU32Ptr, c.resetFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// GetFenceStatus wraps vkGetFenceStatus.
func (c *Commands) GetFenceStatus(device Device, fence Fence) Result {
	var result int32
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fence),
	}
	if err := ffi.CallFunction(&SigResultHandleHandle, c.getFenceStatus, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// WaitForFences wraps vkWaitForFences.
func (c *Commands) WaitForFences(device Device, fenceCount uint32, pFences *Fence, waitAll Bool32, timeout uint64) Result {
	var result int32
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&fenceCount),
		unsafe.Pointer(&pFences),
		unsafe.Pointer(&waitAll),
		unsafe.Pointer(&timeout),
	}
	if err := ffi.CallFunction(&SigResultWaitForFences, c.waitForFences, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// CreateSemaphore wraps vkCreateSemaphore.
func (c *Commands) CreateSemaphore(device Device, pCreateInfo *SemaphoreCreateInfo, pAllocator unsafe.Pointer, pSemaphore *Semaphore) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pSemaphore),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createSemaphore, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroySemaphore wraps vkDestroySemaphore.
func (c *Commands) DestroySemaphore(device Device, semaphore Semaphore, pAllocator unsafe.Pointer) {
	if c.destroySemaphore == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&semaphore),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroySemaphore, nil, args[:])
}

// HasDebugUtils returns true if VK_EXT_debug_utils was loaded for this instance.
func (c *Commands) HasDebugUtils() bool {
	return c.createDebugUtilsMessengerEXT != nil &&
		c.destroyDebugUtilsMessengerEXT != nil &&
		c.setDebugUtilsObjectNameEXT != nil
}

// CreateDebugUtilsMessengerEXT wraps vkCreateDebugUtilsMessengerEXT.
func (c *Commands) CreateDebugUtilsMessengerEXT(instance Instance, pCreateInfo *DebugUtilsMessengerCreateInfoEXT, pAllocator unsafe.Pointer, pMessenger *DebugUtilsMessengerEXT) Result {
	if c.createDebugUtilsMessengerEXT == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pMessenger),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDebugUtilsMessengerEXT, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyDebugUtilsMessengerEXT wraps vkDestroyDebugUtilsMessengerEXT.
func (c *Commands) DestroyDebugUtilsMessengerEXT(instance Instance, messenger DebugUtilsMessengerEXT, pAllocator unsafe.Pointer) {
	if c.destroyDebugUtilsMessengerEXT == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&instance),
		unsafe.Pointer(&messenger),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDebugUtilsMessengerEXT, nil, args[:])
}

// SetDebugUtilsObjectNameEXT wraps vkSetDebugUtilsObjectNameEXT.
// Returns ErrorExtensionNotPresent when the extension was not loaded; callers
// that only use this for best-effort debug labeling may ignore the result.
func (c *Commands) SetDebugUtilsObjectNameEXT(device Device, pNameInfo *DebugUtilsObjectNameInfoEXT) Result {
	if c.setDebugUtilsObjectNameEXT == nil {
		return ErrorExtensionNotPresent
	}
	var result int32
	args := [2]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pNameInfo),
	}
	if err := ffi.CallFunction(&SigResultHandlePtr, c.setDebugUtilsObjectNameEXT, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}
