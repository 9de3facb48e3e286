// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"github.com/gorhi/rhi"
	"github.com/gorhi/rhi/types"
	"github.com/gorhi/rhi/vulkan/vk"
)

// Queue implements rhi.Queue for Vulkan.
type Queue struct {
	handle      vk.Queue
	device      *Device
	familyIndex uint32
}

// Submit submits command buffers to the GPU.
func (q *Queue) Submit(commandBuffers []rhi.CommandBuffer, fence rhi.Fence, fenceValue uint64) error {
	if len(commandBuffers) == 0 {
		return nil
	}

	// Convert command buffers to Vulkan handles
	vkCmdBuffers := make([]vk.CommandBuffer, len(commandBuffers))
	for i, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers[i] = vkCB.handle
	}

	// Get wait/signal semaphores from surface if this is a present submit
	var waitSemaphore, signalSemaphore vk.Semaphore
	waitStage := vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)

	// Check if any command buffer was used with a swapchain texture
	// For now, we assume no synchronization needed without explicit fence
	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: uint32(len(vkCmdBuffers)),
		PCommandBuffers:    &vkCmdBuffers[0],
	}

	// If we have semaphores from a swapchain, add them
	if waitSemaphore != 0 {
		submitInfo.WaitSemaphoreCount = 1
		submitInfo.PWaitSemaphores = &waitSemaphore
		submitInfo.PWaitDstStageMask = &waitStage
	}
	if signalSemaphore != 0 {
		submitInfo.SignalSemaphoreCount = 1
		submitInfo.PSignalSemaphores = &signalSemaphore
	}

	// Get fence handle if provided
	var vkFence vk.Fence
	if fence != nil {
		if vkF, ok := fence.(*Fence); ok {
			vkFence = vkF.handle
		}
	}

	result := vkQueueSubmit(q, 1, &submitInfo, vkFence)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkQueueSubmit failed: %d", result)
	}

	return nil
}

// SubmitForPresent submits command buffers with swapchain synchronization.
func (q *Queue) SubmitForPresent(commandBuffers []rhi.CommandBuffer, swapchain *Swapchain) error {
	if len(commandBuffers) == 0 {
		return nil
	}

	// Convert command buffers to Vulkan handles
	vkCmdBuffers := make([]vk.CommandBuffer, len(commandBuffers))
	for i, cb := range commandBuffers {
		vkCB, ok := cb.(*CommandBuffer)
		if !ok {
			return fmt.Errorf("vulkan: command buffer is not a Vulkan command buffer")
		}
		vkCmdBuffers[i] = vkCB.handle
	}

	waitStage := vk.PipelineStageFlags(vk.PipelineStageColorAttachmentOutputBit)

	submitInfo := vk.SubmitInfo{
		SType:                vk.StructureTypeSubmitInfo,
		WaitSemaphoreCount:   1,
		PWaitSemaphores:      &swapchain.imageAvailable,
		PWaitDstStageMask:    &waitStage,
		CommandBufferCount:   uint32(len(vkCmdBuffers)),
		PCommandBuffers:      &vkCmdBuffers[0],
		SignalSemaphoreCount: 1,
		PSignalSemaphores:    &swapchain.renderFinished,
	}

	result := vkQueueSubmit(q, 1, &submitInfo, 0)
	if result != vk.Success {
		return fmt.Errorf("vulkan: vkQueueSubmit failed: %d", result)
	}

	return nil
}

// WriteBuffer writes data to a buffer immediately.
func (q *Queue) WriteBuffer(buffer rhi.Buffer, offset uint64, data []byte) error {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer.memory == nil {
		return fmt.Errorf("vulkan: buffer is not a Vulkan buffer")
	}

	// Copy directly if the memory is already mapped; otherwise use a staging buffer.
	if vkBuffer.memory.MappedPtr != 0 {
		// Already mapped - direct copy using Vulkan mapped memory from vkMapMemory
		// Use copyToMappedMemory to avoid go vet false positive about unsafe.Pointer
		copyToMappedMemory(vkBuffer.memory.MappedPtr, offset, data)
		return nil
	}

	return q.stagingUpload(vkBuffer, offset, data)
}

// ReadBuffer reads data from a buffer immediately.
func (q *Queue) ReadBuffer(buffer rhi.Buffer, offset uint64, data []byte) error {
	vkBuffer, ok := buffer.(*Buffer)
	if !ok || vkBuffer.memory == nil {
		return fmt.Errorf("vulkan: buffer is not a Vulkan buffer")
	}

	if vkBuffer.memory.MappedPtr != 0 {
		copyFromMappedMemory(vkBuffer.memory.MappedPtr, offset, data)
		return nil
	}

	return q.stagingDownload(vkBuffer, offset, data)
}

// stagingUpload copies data into a device-local buffer via a temporary
// host-visible staging buffer and a one-shot transfer command buffer.
func (q *Queue) stagingUpload(dst *Buffer, offset uint64, data []byte) error {
	staging, err := q.device.CreateBuffer(&rhi.BufferDescriptor{
		Label: "staging upload",
		Size:  uint64(len(data)),
		Usage: types.BufferUsageMapWrite | types.BufferUsageCopySrc,
	})
	if err != nil {
		return fmt.Errorf("vulkan: staging upload: create staging buffer: %w", err)
	}
	defer staging.Destroy()

	stagingBuf := staging.(*Buffer)
	copyToMappedMemory(stagingBuf.memory.MappedPtr, 0, data)

	region := vk.BufferCopy{
		SrcOffset: 0,
		DstOffset: vk.DeviceSize(offset),
		Size:      vk.DeviceSize(len(data)),
	}

	return q.runOneShotTransfer(func(cmdBuffer vk.CommandBuffer) {
		vkCmdCopyBuffer(q.device.cmds, cmdBuffer, stagingBuf.handle, dst.handle, 1, &region)
	})
}

// stagingDownload copies data out of a device-local buffer via a temporary
// host-visible staging buffer and a one-shot transfer command buffer.
func (q *Queue) stagingDownload(src *Buffer, offset uint64, data []byte) error {
	staging, err := q.device.CreateBuffer(&rhi.BufferDescriptor{
		Label: "staging download",
		Size:  uint64(len(data)),
		Usage: types.BufferUsageMapRead | types.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("vulkan: staging download: create staging buffer: %w", err)
	}
	defer staging.Destroy()

	stagingBuf := staging.(*Buffer)

	region := vk.BufferCopy{
		SrcOffset: vk.DeviceSize(offset),
		DstOffset: 0,
		Size:      vk.DeviceSize(len(data)),
	}

	err = q.runOneShotTransfer(func(cmdBuffer vk.CommandBuffer) {
		vkCmdCopyBuffer(q.device.cmds, cmdBuffer, src.handle, stagingBuf.handle, 1, &region)
	})
	if err != nil {
		return err
	}

	copyFromMappedMemory(stagingBuf.memory.MappedPtr, 0, data)
	return nil
}

// runOneShotTransfer records record into a scratch command buffer drawn
// from the device's per-queue transfer pool, submits it, and waits for
// completion on a transient fence before returning the buffer to the pool.
func (q *Queue) runOneShotTransfer(record func(cmdBuffer vk.CommandBuffer)) error {
	cmdBuffer := q.device.transferScratch.Get(q)
	if cmdBuffer == 0 {
		return fmt.Errorf("vulkan: failed to acquire transfer scratch command buffer")
	}
	defer q.device.transferScratch.Put(q, cmdBuffer)

	if result := vkResetCommandBuffer(q.device.cmds, cmdBuffer, 0); result != vk.Success {
		return fmt.Errorf("vulkan: vkResetCommandBuffer failed: %d", result)
	}

	beginInfo := vk.CommandBufferBeginInfo{
		SType: vk.StructureTypeCommandBufferBeginInfo,
		Flags: vk.CommandBufferUsageOneTimeSubmitBit,
	}
	if result := vkBeginCommandBuffer(q.device.cmds, cmdBuffer, &beginInfo); result != vk.Success {
		return fmt.Errorf("vulkan: vkBeginCommandBuffer failed: %d", result)
	}

	record(cmdBuffer)

	if result := vkEndCommandBuffer(q.device.cmds, cmdBuffer); result != vk.Success {
		return fmt.Errorf("vulkan: vkEndCommandBuffer failed: %d", result)
	}

	fence, err := q.device.CreateFence()
	if err != nil {
		return fmt.Errorf("vulkan: staging transfer: %w", err)
	}
	defer fence.Destroy()

	submitInfo := vk.SubmitInfo{
		SType:              vk.StructureTypeSubmitInfo,
		CommandBufferCount: 1,
		PCommandBuffers:    &cmdBuffer,
	}
	if result := vkQueueSubmit(q, 1, &submitInfo, fence.(*Fence).handle); result != vk.Success {
		return fmt.Errorf("vulkan: vkQueueSubmit failed: %d", result)
	}

	ok, err := q.device.Wait(fence, 0, time.Second*10)
	if err != nil {
		return fmt.Errorf("vulkan: staging transfer: wait failed: %w", err)
	}
	if !ok {
		return fmt.Errorf("vulkan: staging transfer: timed out waiting for GPU")
	}
	return nil
}

// WriteTexture writes data to a texture immediately.
func (q *Queue) WriteTexture(dst *rhi.ImageCopyTexture, data []byte, layout *rhi.ImageDataLayout, size *types.Extent3D) {
	// TODO: Implement staging buffer to image copy
}

// Present presents a surface texture to the screen.
func (q *Queue) Present(surface rhi.Surface, texture rhi.SurfaceTexture) error {
	vkSurface, ok := surface.(*Surface)
	if !ok {
		return fmt.Errorf("vulkan: surface is not a Vulkan surface")
	}

	if vkSurface.swapchain == nil {
		return fmt.Errorf("vulkan: surface not configured")
	}

	return vkSurface.swapchain.present(q)
}

// GetTimestampPeriod returns the timestamp period in nanoseconds.
func (q *Queue) GetTimestampPeriod() float32 {
	// TODO: Get from physical device properties
	return 1.0
}

// Vulkan function wrapper

func vkResetCommandBuffer(cmds *vk.Commands, cmdBuffer vk.CommandBuffer, flags vk.CommandBufferResetFlags) vk.Result {
	proc := cmds.ResetCommandBuffer()
	if proc == 0 {
		return vk.ErrorExtensionNotPresent
	}
	r, _, _ := syscall.SyscallN(proc,
		uintptr(cmdBuffer),
		uintptr(flags))
	return vk.Result(r)
}

func vkQueueSubmit(q *Queue, submitCount uint32, submits *vk.SubmitInfo, fence vk.Fence) vk.Result {
	proc := vk.GetDeviceProcAddr(q.device.handle, "vkQueueSubmit")
	if proc == 0 {
		return vk.ErrorExtensionNotPresent
	}
	r, _, _ := syscall.SyscallN(proc,
		uintptr(q.handle),
		uintptr(submitCount),
		uintptr(unsafe.Pointer(submits)),
		uintptr(fence))
	return vk.Result(r)
}
