// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

import "unsafe"

// Getter methods for Commands function pointers.
// These provide access to the loaded Vulkan function addresses.

// CreateInstance returns the vkCreateInstance function pointer.
func (c *Commands) CreateInstance() unsafe.Pointer { return c.createInstance }

// DestroyInstance returns the vkDestroyInstance function pointer.
func (c *Commands) DestroyInstance() unsafe.Pointer { return c.destroyInstance }

// EnumeratePhysicalDevices returns the vkEnumeratePhysicalDevices function pointer.
func (c *Commands) EnumeratePhysicalDevices() unsafe.Pointer { return c.enumeratePhysicalDevices }

// GetPhysicalDeviceProperties returns the vkGetPhysicalDeviceProperties function pointer.
func (c *Commands) GetPhysicalDeviceProperties() unsafe.Pointer { return c.getPhysicalDeviceProperties }

// GetPhysicalDeviceFeatures returns the vkGetPhysicalDeviceFeatures function pointer.
func (c *Commands) GetPhysicalDeviceFeatures() unsafe.Pointer { return c.getPhysicalDeviceFeatures }

// GetPhysicalDeviceQueueFamilyProperties returns the function pointer.
func (c *Commands) GetPhysicalDeviceQueueFamilyProperties() unsafe.Pointer {
	return c.getPhysicalDeviceQueueFamilyProperties
}

// CreateDevice returns the vkCreateDevice function pointer.
func (c *Commands) CreateDevice() unsafe.Pointer { return c.createDevice }

// EnumerateInstanceExtensionProperties returns the function pointer.
func (c *Commands) EnumerateInstanceExtensionProperties() unsafe.Pointer {
	return c.enumerateInstanceExtensionProperties
}

// EnumerateInstanceLayerProperties returns the function pointer.
func (c *Commands) EnumerateInstanceLayerProperties() unsafe.Pointer {
	return c.enumerateInstanceLayerProperties
}

// EnumerateInstanceVersion returns the vkEnumerateInstanceVersion function pointer.
func (c *Commands) EnumerateInstanceVersion() unsafe.Pointer { return c.enumerateInstanceVersion }

// DestroyDevice returns the vkDestroyDevice function pointer.
func (c *Commands) DestroyDevice() unsafe.Pointer { return c.destroyDevice }

// GetDeviceQueue returns the vkGetDeviceQueue function pointer.
func (c *Commands) GetDeviceQueue() unsafe.Pointer { return c.getDeviceQueue }

// GetPhysicalDeviceMemoryProperties returns the function pointer.
func (c *Commands) GetPhysicalDeviceMemoryProperties() unsafe.Pointer {
	return c.getPhysicalDeviceMemoryProperties
}

// AllocateMemory returns the vkAllocateMemory function pointer.
func (c *Commands) AllocateMemory() unsafe.Pointer { return c.allocateMemory }

// FreeMemory returns the vkFreeMemory function pointer.
func (c *Commands) FreeMemory() unsafe.Pointer { return c.freeMemory }

// MapMemory returns the vkMapMemory function pointer.
func (c *Commands) MapMemory() unsafe.Pointer { return c.mapMemory }

// UnmapMemory returns the vkUnmapMemory function pointer.
func (c *Commands) UnmapMemory() unsafe.Pointer { return c.unmapMemory }

// GetBufferMemoryRequirements returns the function pointer.
func (c *Commands) GetBufferMemoryRequirements() unsafe.Pointer { return c.getBufferMemoryRequirements }

// BindBufferMemory returns the vkBindBufferMemory function pointer.
func (c *Commands) BindBufferMemory() unsafe.Pointer { return c.bindBufferMemory }

// GetImageMemoryRequirements returns the function pointer.
func (c *Commands) GetImageMemoryRequirements() unsafe.Pointer { return c.getImageMemoryRequirements }

// BindImageMemory returns the vkBindImageMemory function pointer.
func (c *Commands) BindImageMemory() unsafe.Pointer { return c.bindImageMemory }

// CreateBuffer returns the vkCreateBuffer function pointer.
func (c *Commands) CreateBuffer() unsafe.Pointer { return c.createBuffer }

// DestroyBuffer returns the vkDestroyBuffer function pointer.
func (c *Commands) DestroyBuffer() unsafe.Pointer { return c.destroyBuffer }

// CreateImage returns the vkCreateImage function pointer.
func (c *Commands) CreateImage() unsafe.Pointer { return c.createImage }

// DestroyImage returns the vkDestroyImage function pointer.
func (c *Commands) DestroyImage() unsafe.Pointer { return c.destroyImage }

// FlushMappedMemoryRanges returns the function pointer.
func (c *Commands) FlushMappedMemoryRanges() unsafe.Pointer { return c.flushMappedMemoryRanges }

// InvalidateMappedMemoryRanges returns the function pointer.
func (c *Commands) InvalidateMappedMemoryRanges() unsafe.Pointer { return c.invalidateMappedMemoryRanges }

// --- Command Pool & Buffer ---

// CreateCommandPool returns the vkCreateCommandPool function pointer.
func (c *Commands) CreateCommandPool() unsafe.Pointer { return c.createCommandPool }

// DestroyCommandPool returns the vkDestroyCommandPool function pointer.
func (c *Commands) DestroyCommandPool() unsafe.Pointer { return c.destroyCommandPool }

// ResetCommandPool returns the vkResetCommandPool function pointer.
func (c *Commands) ResetCommandPool() unsafe.Pointer { return c.resetCommandPool }

// AllocateCommandBuffers returns the vkAllocateCommandBuffers function pointer.
func (c *Commands) AllocateCommandBuffers() unsafe.Pointer { return c.allocateCommandBuffers }

// FreeCommandBuffers returns the vkFreeCommandBuffers function pointer.
func (c *Commands) FreeCommandBuffers() unsafe.Pointer { return c.freeCommandBuffers }

// BeginCommandBuffer returns the vkBeginCommandBuffer function pointer.
func (c *Commands) BeginCommandBuffer() unsafe.Pointer { return c.beginCommandBuffer }

// EndCommandBuffer returns the vkEndCommandBuffer function pointer.
func (c *Commands) EndCommandBuffer() unsafe.Pointer { return c.endCommandBuffer }

// ResetCommandBuffer returns the vkResetCommandBuffer function pointer.
func (c *Commands) ResetCommandBuffer() unsafe.Pointer { return c.resetCommandBuffer }

// --- Pipeline Binding ---

// CmdBindPipeline returns the vkCmdBindPipeline function pointer.
func (c *Commands) CmdBindPipeline() unsafe.Pointer { return c.cmdBindPipeline }

// CmdBindDescriptorSets returns the vkCmdBindDescriptorSets function pointer.
func (c *Commands) CmdBindDescriptorSets() unsafe.Pointer { return c.cmdBindDescriptorSets }

// CmdBindVertexBuffers returns the vkCmdBindVertexBuffers function pointer.
func (c *Commands) CmdBindVertexBuffers() unsafe.Pointer { return c.cmdBindVertexBuffers }

// CmdBindIndexBuffer returns the vkCmdBindIndexBuffer function pointer.
func (c *Commands) CmdBindIndexBuffer() unsafe.Pointer { return c.cmdBindIndexBuffer }

// CmdPushConstants returns the vkCmdPushConstants function pointer.
func (c *Commands) CmdPushConstants() unsafe.Pointer { return c.cmdPushConstants }

// --- Drawing ---

// CmdDraw returns the vkCmdDraw function pointer.
func (c *Commands) CmdDraw() unsafe.Pointer { return c.cmdDraw }

// CmdDrawIndexed returns the vkCmdDrawIndexed function pointer.
func (c *Commands) CmdDrawIndexed() unsafe.Pointer { return c.cmdDrawIndexed }

// CmdDrawIndirect returns the vkCmdDrawIndirect function pointer.
func (c *Commands) CmdDrawIndirect() unsafe.Pointer { return c.cmdDrawIndirect }

// CmdDrawIndexedIndirect returns the vkCmdDrawIndexedIndirect function pointer.
func (c *Commands) CmdDrawIndexedIndirect() unsafe.Pointer { return c.cmdDrawIndexedIndirect }

// --- Compute ---

// CmdDispatch returns the vkCmdDispatch function pointer.
func (c *Commands) CmdDispatch() unsafe.Pointer { return c.cmdDispatch }

// CmdDispatchIndirect returns the vkCmdDispatchIndirect function pointer.
func (c *Commands) CmdDispatchIndirect() unsafe.Pointer { return c.cmdDispatchIndirect }

// --- Viewport & Scissor ---

// CmdSetViewport returns the vkCmdSetViewport function pointer.
func (c *Commands) CmdSetViewport() unsafe.Pointer { return c.cmdSetViewport }

// CmdSetScissor returns the vkCmdSetScissor function pointer.
func (c *Commands) CmdSetScissor() unsafe.Pointer { return c.cmdSetScissor }

// CmdSetDepthBias returns the vkCmdSetDepthBias function pointer.
func (c *Commands) CmdSetDepthBias() unsafe.Pointer { return c.cmdSetDepthBias }

// CmdSetBlendConstants returns the vkCmdSetBlendConstants function pointer.
func (c *Commands) CmdSetBlendConstants() unsafe.Pointer { return c.cmdSetBlendConstants }

// CmdSetStencilReference returns the vkCmdSetStencilReference function pointer.
func (c *Commands) CmdSetStencilReference() unsafe.Pointer { return c.cmdSetStencilReference }

// --- Render Pass ---

// CmdBeginRenderPass returns the vkCmdBeginRenderPass function pointer.
func (c *Commands) CmdBeginRenderPass() unsafe.Pointer { return c.cmdBeginRenderPass }

// CmdEndRenderPass returns the vkCmdEndRenderPass function pointer.
func (c *Commands) CmdEndRenderPass() unsafe.Pointer { return c.cmdEndRenderPass }

// CmdNextSubpass returns the vkCmdNextSubpass function pointer.
func (c *Commands) CmdNextSubpass() unsafe.Pointer { return c.cmdNextSubpass }

// CmdBeginRendering returns the vkCmdBeginRendering function pointer (Vulkan 1.3+).
func (c *Commands) CmdBeginRendering() unsafe.Pointer { return c.cmdBeginRendering }

// CmdEndRendering returns the vkCmdEndRendering function pointer (Vulkan 1.3+).
func (c *Commands) CmdEndRendering() unsafe.Pointer { return c.cmdEndRendering }

// --- Copy Commands ---

// CmdCopyBuffer returns the vkCmdCopyBuffer function pointer.
func (c *Commands) CmdCopyBuffer() unsafe.Pointer { return c.cmdCopyBuffer }

// CmdCopyImage returns the vkCmdCopyImage function pointer.
func (c *Commands) CmdCopyImage() unsafe.Pointer { return c.cmdCopyImage }

// CmdCopyBufferToImage returns the vkCmdCopyBufferToImage function pointer.
func (c *Commands) CmdCopyBufferToImage() unsafe.Pointer { return c.cmdCopyBufferToImage }

// CmdCopyImageToBuffer returns the vkCmdCopyImageToBuffer function pointer.
func (c *Commands) CmdCopyImageToBuffer() unsafe.Pointer { return c.cmdCopyImageToBuffer }

// CmdBlitImage returns the vkCmdBlitImage function pointer.
func (c *Commands) CmdBlitImage() unsafe.Pointer { return c.cmdBlitImage }

// --- Clear Commands ---

// CmdFillBuffer returns the vkCmdFillBuffer function pointer.
func (c *Commands) CmdFillBuffer() unsafe.Pointer { return c.cmdFillBuffer }

// CmdClearColorImage returns the vkCmdClearColorImage function pointer.
func (c *Commands) CmdClearColorImage() unsafe.Pointer { return c.cmdClearColorImage }

// CmdClearDepthStencilImage returns the vkCmdClearDepthStencilImage function pointer.
func (c *Commands) CmdClearDepthStencilImage() unsafe.Pointer { return c.cmdClearDepthStencilImage }

// CmdClearAttachments returns the vkCmdClearAttachments function pointer.
func (c *Commands) CmdClearAttachments() unsafe.Pointer { return c.cmdClearAttachments }

// --- Synchronization ---

// CmdPipelineBarrier returns the vkCmdPipelineBarrier function pointer.
func (c *Commands) CmdPipelineBarrier() unsafe.Pointer { return c.cmdPipelineBarrier }

// CmdPipelineBarrier2 returns the vkCmdPipelineBarrier2 function pointer (Vulkan 1.3+).
func (c *Commands) CmdPipelineBarrier2() unsafe.Pointer { return c.cmdPipelineBarrier2 }

// CmdSetEvent returns the vkCmdSetEvent function pointer.
func (c *Commands) CmdSetEvent() unsafe.Pointer { return c.cmdSetEvent }

// CmdResetEvent returns the vkCmdResetEvent function pointer.
func (c *Commands) CmdResetEvent() unsafe.Pointer { return c.cmdResetEvent }

// CmdWaitEvents returns the vkCmdWaitEvents function pointer.
func (c *Commands) CmdWaitEvents() unsafe.Pointer { return c.cmdWaitEvents }

// --- Secondary Command Buffers ---

// CmdExecuteCommands returns the vkCmdExecuteCommands function pointer.
func (c *Commands) CmdExecuteCommands() unsafe.Pointer { return c.cmdExecuteCommands }
