// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Manual wrappers for the descriptor pool / descriptor set layout / pipeline
// layout family. These are NOT overwritten by code generation.

package vk

import (
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
)

// CreateDescriptorSetLayout wraps vkCreateDescriptorSetLayout.
func (c *Commands) CreateDescriptorSetLayout(device Device, pCreateInfo *DescriptorSetLayoutCreateInfo, pAllocator unsafe.Pointer, pSetLayout *DescriptorSetLayout) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pSetLayout),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDescriptorSetLayout, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyDescriptorSetLayout wraps vkDestroyDescriptorSetLayout.
func (c *Commands) DestroyDescriptorSetLayout(device Device, setLayout DescriptorSetLayout, pAllocator unsafe.Pointer) {
	if c.destroyDescriptorSetLayout == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&setLayout),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDescriptorSetLayout, nil, args[:])
}

// CreateDescriptorPool wraps vkCreateDescriptorPool.
func (c *Commands) CreateDescriptorPool(device Device, pCreateInfo *DescriptorPoolCreateInfo, pAllocator unsafe.Pointer, pDescriptorPool *DescriptorPool) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pDescriptorPool),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createDescriptorPool, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyDescriptorPool wraps vkDestroyDescriptorPool.
func (c *Commands) DestroyDescriptorPool(device Device, descriptorPool DescriptorPool, pAllocator unsafe.Pointer) {
	if c.destroyDescriptorPool == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&descriptorPool),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyDescriptorPool, nil, args[:])
}

// AllocateDescriptorSets wraps vkAllocateDescriptorSets.
func (c *Commands) AllocateDescriptorSets(device Device, pAllocateInfo *DescriptorSetAllocateInfo, pDescriptorSets *DescriptorSet) Result {
	var result int32
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pAllocateInfo),
		unsafe.Pointer(&pDescriptorSets),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtr, c.allocateDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// FreeDescriptorSets wraps vkFreeDescriptorSets.
func (c *Commands) FreeDescriptorSets(device Device, descriptorPool DescriptorPool, descriptorSetCount uint32, pDescriptorSets *DescriptorSet) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&descriptorPool),
		unsafe.Pointer(&descriptorSetCount),
		unsafe.Pointer(&pDescriptorSets),
	}
	if err := ffi.CallFunction(&SigResultHandleHandleU32Ptr, c.freeDescriptorSets, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// UpdateDescriptorSets wraps vkUpdateDescriptorSets.
func (c *Commands) UpdateDescriptorSets(device Device, descriptorWriteCount uint32, pDescriptorWrites *WriteDescriptorSet, descriptorCopyCount uint32, pDescriptorCopies *CopyDescriptorSet) {
	if c.updateDescriptorSets == nil {
		return
	}
	args := [5]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&descriptorWriteCount),
		unsafe.Pointer(&pDescriptorWrites),
		unsafe.Pointer(&descriptorCopyCount),
		unsafe.Pointer(&pDescriptorCopies),
	}
	_ = ffi.CallFunction(&SigVoidDeviceUpdateDescriptorSets, c.updateDescriptorSets, nil, args[:])
}

// CreatePipelineLayout wraps vkCreatePipelineLayout.
func (c *Commands) CreatePipelineLayout(device Device, pCreateInfo *PipelineLayoutCreateInfo, pAllocator unsafe.Pointer, pPipelineLayout *PipelineLayout) Result {
	var result int32
	args := [4]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pCreateInfo),
		unsafe.Pointer(&pAllocator),
		unsafe.Pointer(&pPipelineLayout),
	}
	if err := ffi.CallFunction(&SigResultHandlePtrPtrPtr, c.createPipelineLayout, unsafe.Pointer(&result), args[:]); err != nil {
		return ErrorInitializationFailed
	}
	return Result(result)
}

// DestroyPipelineLayout wraps vkDestroyPipelineLayout.
func (c *Commands) DestroyPipelineLayout(device Device, pipelineLayout PipelineLayout, pAllocator unsafe.Pointer) {
	if c.destroyPipelineLayout == nil {
		return
	}
	args := [3]unsafe.Pointer{
		unsafe.Pointer(&device),
		unsafe.Pointer(&pipelineLayout),
		unsafe.Pointer(&pAllocator),
	}
	_ = ffi.CallFunction(&SigVoidHandleHandlePtr, c.destroyPipelineLayout, nil, args[:])
}
