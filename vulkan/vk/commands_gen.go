// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// Commands holds the function pointers resolved by LoadGlobal, LoadInstance
// and LoadDevice. Every field is an opaque address handed to ffi.CallFunction
// together with the matching CallInterface template from signatures.go.
type Commands struct {
	acquireNextImageKHR unsafe.Pointer
	allocateCommandBuffers unsafe.Pointer
	allocateDescriptorSets unsafe.Pointer
	allocateMemory unsafe.Pointer
	beginCommandBuffer unsafe.Pointer
	bindBufferMemory unsafe.Pointer
	bindImageMemory unsafe.Pointer
	cmdBeginQuery unsafe.Pointer
	cmdBeginRenderPass unsafe.Pointer
	cmdBeginRendering unsafe.Pointer
	cmdBindDescriptorSets unsafe.Pointer
	cmdBindIndexBuffer unsafe.Pointer
	cmdBindPipeline unsafe.Pointer
	cmdBindVertexBuffers unsafe.Pointer
	cmdBlitImage unsafe.Pointer
	cmdClearAttachments unsafe.Pointer
	cmdClearColorImage unsafe.Pointer
	cmdClearDepthStencilImage unsafe.Pointer
	cmdCopyBuffer unsafe.Pointer
	cmdCopyBufferToImage unsafe.Pointer
	cmdCopyImage unsafe.Pointer
	cmdCopyImageToBuffer unsafe.Pointer
	cmdCopyQueryPoolResults unsafe.Pointer
	cmdDispatch unsafe.Pointer
	cmdDispatchIndirect unsafe.Pointer
	cmdDraw unsafe.Pointer
	cmdDrawIndexed unsafe.Pointer
	cmdDrawIndexedIndirect unsafe.Pointer
	cmdDrawIndirect unsafe.Pointer
	cmdEndQuery unsafe.Pointer
	cmdEndRenderPass unsafe.Pointer
	cmdEndRendering unsafe.Pointer
	cmdExecuteCommands unsafe.Pointer
	cmdFillBuffer unsafe.Pointer
	cmdNextSubpass unsafe.Pointer
	cmdPipelineBarrier unsafe.Pointer
	cmdPipelineBarrier2 unsafe.Pointer
	cmdPushConstants unsafe.Pointer
	cmdResetEvent unsafe.Pointer
	cmdResetQueryPool unsafe.Pointer
	cmdResolveImage unsafe.Pointer
	cmdSetBlendConstants unsafe.Pointer
	cmdSetDepthBias unsafe.Pointer
	cmdSetDepthBounds unsafe.Pointer
	cmdSetEvent unsafe.Pointer
	cmdSetLineWidth unsafe.Pointer
	cmdSetScissor unsafe.Pointer
	cmdSetStencilCompareMask unsafe.Pointer
	cmdSetStencilReference unsafe.Pointer
	cmdSetStencilWriteMask unsafe.Pointer
	cmdSetViewport unsafe.Pointer
	cmdUpdateBuffer unsafe.Pointer
	cmdWaitEvents unsafe.Pointer
	cmdWriteTimestamp unsafe.Pointer
	createBuffer unsafe.Pointer
	createBufferView unsafe.Pointer
	createCommandPool unsafe.Pointer
	createComputePipelines unsafe.Pointer
	createDescriptorPool unsafe.Pointer
	createDescriptorSetLayout unsafe.Pointer
	createDevice unsafe.Pointer
	createEvent unsafe.Pointer
	createFence unsafe.Pointer
	createFramebuffer unsafe.Pointer
	createGraphicsPipelines unsafe.Pointer
	createImage unsafe.Pointer
	createImageView unsafe.Pointer
	createInstance unsafe.Pointer
	createPipelineCache unsafe.Pointer
	createPipelineLayout unsafe.Pointer
	createQueryPool unsafe.Pointer
	createRenderPass unsafe.Pointer
	createSampler unsafe.Pointer
	createSemaphore unsafe.Pointer
	createShaderModule unsafe.Pointer
	createSwapchainKHR unsafe.Pointer
	createWin32SurfaceKHR unsafe.Pointer
	createXlibSurfaceKHR unsafe.Pointer
	createWaylandSurfaceKHR unsafe.Pointer
	createMetalSurfaceEXT unsafe.Pointer
	createDebugUtilsMessengerEXT unsafe.Pointer
	destroyDebugUtilsMessengerEXT unsafe.Pointer
	setDebugUtilsObjectNameEXT unsafe.Pointer
	destroyBuffer unsafe.Pointer
	destroyBufferView unsafe.Pointer
	destroyCommandPool unsafe.Pointer
	destroyDescriptorPool unsafe.Pointer
	destroyDescriptorSetLayout unsafe.Pointer
	destroyDevice unsafe.Pointer
	destroyEvent unsafe.Pointer
	destroyFence unsafe.Pointer
	destroyFramebuffer unsafe.Pointer
	destroyImage unsafe.Pointer
	destroyImageView unsafe.Pointer
	destroyInstance unsafe.Pointer
	destroyPipeline unsafe.Pointer
	destroyPipelineCache unsafe.Pointer
	destroyPipelineLayout unsafe.Pointer
	destroyQueryPool unsafe.Pointer
	destroyRenderPass unsafe.Pointer
	destroySampler unsafe.Pointer
	destroySemaphore unsafe.Pointer
	destroyShaderModule unsafe.Pointer
	destroySurfaceKHR unsafe.Pointer
	destroySwapchainKHR unsafe.Pointer
	deviceWaitIdle unsafe.Pointer
	endCommandBuffer unsafe.Pointer
	enumerateDeviceExtensionProperties unsafe.Pointer
	enumerateDeviceLayerProperties unsafe.Pointer
	enumerateInstanceExtensionProperties unsafe.Pointer
	enumerateInstanceLayerProperties unsafe.Pointer
	enumerateInstanceVersion unsafe.Pointer
	enumeratePhysicalDevices unsafe.Pointer
	flushMappedMemoryRanges unsafe.Pointer
	freeCommandBuffers unsafe.Pointer
	freeDescriptorSets unsafe.Pointer
	freeMemory unsafe.Pointer
	getBufferMemoryRequirements unsafe.Pointer
	getDeviceMemoryCommitment unsafe.Pointer
	getDeviceProcAddr unsafe.Pointer
	getDeviceQueue unsafe.Pointer
	getEventStatus unsafe.Pointer
	getFenceStatus unsafe.Pointer
	getImageMemoryRequirements unsafe.Pointer
	getImageSparseMemoryRequirements unsafe.Pointer
	getImageSubresourceLayout unsafe.Pointer
	getPhysicalDeviceFeatures unsafe.Pointer
	getPhysicalDeviceFeatures2 unsafe.Pointer
	getPhysicalDeviceFormatProperties unsafe.Pointer
	getPhysicalDeviceImageFormatProperties unsafe.Pointer
	getPhysicalDeviceMemoryProperties unsafe.Pointer
	getPhysicalDeviceProperties unsafe.Pointer
	getPhysicalDeviceProperties2 unsafe.Pointer
	getPhysicalDeviceQueueFamilyProperties unsafe.Pointer
	getPhysicalDeviceSparseImageFormatProperties unsafe.Pointer
	getPhysicalDeviceSurfaceCapabilitiesKHR unsafe.Pointer
	getPhysicalDeviceSurfaceFormatsKHR unsafe.Pointer
	getPhysicalDeviceSurfacePresentModesKHR unsafe.Pointer
	getPhysicalDeviceSurfaceSupportKHR unsafe.Pointer
	getPipelineCacheData unsafe.Pointer
	getQueryPoolResults unsafe.Pointer
	getRenderAreaGranularity unsafe.Pointer
	getSemaphoreCounterValue unsafe.Pointer
	getSwapchainImagesKHR unsafe.Pointer
	invalidateMappedMemoryRanges unsafe.Pointer
	mapMemory unsafe.Pointer
	mergePipelineCaches unsafe.Pointer
	queueBindSparse unsafe.Pointer
	queuePresentKHR unsafe.Pointer
	queueSubmit unsafe.Pointer
	queueWaitIdle unsafe.Pointer
	resetCommandBuffer unsafe.Pointer
	resetCommandPool unsafe.Pointer
	resetDescriptorPool unsafe.Pointer
	resetEvent unsafe.Pointer
	resetFences unsafe.Pointer
	resetQueryPool unsafe.Pointer
	setEvent unsafe.Pointer
	signalSemaphore unsafe.Pointer
	unmapMemory unsafe.Pointer
	updateDescriptorSets unsafe.Pointer
	waitForFences unsafe.Pointer
	waitSemaphores unsafe.Pointer
}

