// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package vulkan

import (
	"fmt"

	"github.com/gorhi/rhi"
	"github.com/gorhi/rhi/types"
	"github.com/gorhi/rhi/vulkan/vk"
)

// CreateBindGroupLayout builds a VkDescriptorSetLayout from the layout
// entries, tracking the descriptor counts the allocator needs to size a
// pool for it.
func (d *Device) CreateBindGroupLayout(desc *rhi.BindGroupLayoutDescriptor) (rhi.BindGroupLayout, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: bind group layout descriptor is nil")
	}

	bindings := make([]vk.DescriptorSetLayoutBinding, len(desc.Entries))
	var counts DescriptorCounts
	for i, entry := range desc.Entries {
		descType, err := descriptorTypeForEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("vulkan: CreateBindGroupLayout: binding %d: %w", entry.Binding, err)
		}
		bindings[i] = vk.DescriptorSetLayoutBinding{
			Binding:         entry.Binding,
			DescriptorType:  descType,
			DescriptorCount: 1,
			StageFlags:      shaderStagesToVk(entry.Visibility),
		}
		addDescriptorCount(&counts, descType, 1)
	}

	createInfo := vk.DescriptorSetLayoutCreateInfo{
		SType:        vk.StructureTypeDescriptorSetLayoutCreateInfo,
		BindingCount: uint32(len(bindings)),
	}
	if len(bindings) > 0 {
		createInfo.PBindings = &bindings[0]
	}

	var handle vk.DescriptorSetLayout
	result := d.cmds.CreateDescriptorSetLayout(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreateDescriptorSetLayout failed: %d", result)
	}

	return &BindGroupLayout{handle: handle, counts: counts, device: d}, nil
}

// DestroyBindGroupLayout destroys a bind group layout.
func (d *Device) DestroyBindGroupLayout(layout rhi.BindGroupLayout) {
	l, ok := layout.(*BindGroupLayout)
	if !ok || l.handle == 0 {
		return
	}
	d.cmds.DestroyDescriptorSetLayout(d.handle, l.handle, nil)
	l.handle = 0
}

// CreateBindGroup allocates a descriptor set from the device's shared
// descriptor allocator and writes the resource bindings into it.
// BindGroupEntry.Resource handles (BufferHandle/SamplerHandle/
// TextureViewHandle) are the Vulkan-native handles themselves - this
// backend does not keep a separate handle table, so callers construct
// BindGroupEntry values from the Handle() accessor of the Buffer/
// Sampler/TextureView they already hold.
func (d *Device) CreateBindGroup(desc *rhi.BindGroupDescriptor) (rhi.BindGroup, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: bind group descriptor is nil")
	}
	layout, ok := desc.Layout.(*BindGroupLayout)
	if !ok {
		return nil, fmt.Errorf("vulkan: bind group layout is not a Vulkan layout")
	}

	set, pool, err := d.descriptorAllocator.Allocate(layout.handle, layout.counts)
	if err != nil {
		return nil, fmt.Errorf("vulkan: CreateBindGroup: %w", err)
	}

	if err := d.writeBindGroupEntries(set, desc.Entries); err != nil {
		_ = d.descriptorAllocator.Free(pool, set)
		return nil, err
	}

	return &BindGroup{handle: set, pool: pool, device: d}, nil
}

// writeBindGroupEntries issues one vkUpdateDescriptorSets call covering
// every entry in a single batch.
func (d *Device) writeBindGroupEntries(set vk.DescriptorSet, entries []types.BindGroupEntry) error {
	if len(entries) == 0 {
		return nil
	}

	writes := make([]vk.WriteDescriptorSet, len(entries))
	bufferInfos := make([]vk.DescriptorBufferInfo, len(entries))
	imageInfos := make([]vk.DescriptorImageInfo, len(entries))

	for i, entry := range entries {
		write := vk.WriteDescriptorSet{
			SType:           vk.StructureTypeWriteDescriptorSet,
			DstSet:          set,
			DstBinding:      entry.Binding,
			DescriptorCount: 1,
		}

		switch res := entry.Resource.(type) {
		case types.BufferBinding:
			size := res.Size
			if size == 0 {
				size = uint64(vk.WholeSize)
			}
			bufferInfos[i] = vk.DescriptorBufferInfo{
				Buffer: vk.Buffer(res.Buffer),
				Offset: vk.DeviceSize(res.Offset),
				Range:  vk.DeviceSize(size),
			}
			write.DescriptorType = vk.DescriptorTypeUniformBuffer
			write.PBufferInfo = &bufferInfos[i]
		case types.SamplerBinding:
			imageInfos[i] = vk.DescriptorImageInfo{
				Sampler: vk.Sampler(res.Sampler),
			}
			write.DescriptorType = vk.DescriptorTypeSampler
			write.PImageInfo = &imageInfos[i]
		case types.TextureViewBinding:
			imageInfos[i] = vk.DescriptorImageInfo{
				ImageView:   vk.ImageView(res.TextureView),
				ImageLayout: vk.ImageLayoutShaderReadOnlyOptimal,
			}
			write.DescriptorType = vk.DescriptorTypeSampledImage
			write.PImageInfo = &imageInfos[i]
		default:
			return fmt.Errorf("vulkan: CreateBindGroup: binding %d has unsupported resource type %T", entry.Binding, entry.Resource)
		}

		writes[i] = write
	}

	d.cmds.UpdateDescriptorSets(d.handle, uint32(len(writes)), &writes[0], 0, nil)
	return nil
}

// DestroyBindGroup destroys a bind group.
func (d *Device) DestroyBindGroup(group rhi.BindGroup) {
	g, ok := group.(*BindGroup)
	if !ok || g.handle == 0 {
		return
	}
	_ = d.descriptorAllocator.Free(g.pool, g.handle)
	g.handle = 0
}

// CreatePipelineLayout builds a VkPipelineLayout from the bind group
// layouts and push constant ranges, keeping a reference to each set
// layout so ObtainBindingGroup can allocate against it later.
func (d *Device) CreatePipelineLayout(desc *rhi.PipelineLayoutDescriptor) (rhi.PipelineLayout, error) {
	if desc == nil {
		return nil, fmt.Errorf("vulkan: pipeline layout descriptor is nil")
	}

	setLayouts := make([]*BindGroupLayout, len(desc.BindGroupLayouts))
	vkSetLayouts := make([]vk.DescriptorSetLayout, len(desc.BindGroupLayouts))
	for i, bgl := range desc.BindGroupLayouts {
		l, ok := bgl.(*BindGroupLayout)
		if !ok {
			return nil, fmt.Errorf("vulkan: bind group layout %d is not a Vulkan layout", i)
		}
		setLayouts[i] = l
		vkSetLayouts[i] = l.handle
	}

	pushConstants := make([]vk.PushConstantRange, len(desc.PushConstantRanges))
	for i, pc := range desc.PushConstantRanges {
		pushConstants[i] = vk.PushConstantRange{
			StageFlags: shaderStagesToVk(pc.Stages),
			Offset:     pc.Range.Start,
			Size:       pc.Range.End - pc.Range.Start,
		}
	}

	createInfo := vk.PipelineLayoutCreateInfo{
		SType:          vk.StructureTypePipelineLayoutCreateInfo,
		SetLayoutCount: uint32(len(vkSetLayouts)),
	}
	if len(vkSetLayouts) > 0 {
		createInfo.PSetLayouts = &vkSetLayouts[0]
	}
	if len(pushConstants) > 0 {
		createInfo.PushConstantRangeCount = uint32(len(pushConstants))
		createInfo.PPushConstantRanges = &pushConstants[0]
	}

	var handle vk.PipelineLayout
	result := d.cmds.CreatePipelineLayout(d.handle, &createInfo, nil, &handle)
	if result != vk.Success {
		return nil, fmt.Errorf("vulkan: vkCreatePipelineLayout failed: %d", result)
	}

	return &PipelineLayout{handle: handle, device: d, setLayouts: setLayouts}, nil
}

// DestroyPipelineLayout destroys a pipeline layout.
func (d *Device) DestroyPipelineLayout(layout rhi.PipelineLayout) {
	l, ok := layout.(*PipelineLayout)
	if !ok || l.handle == 0 {
		return
	}
	d.cmds.DestroyPipelineLayout(d.handle, l.handle, nil)
	l.handle = 0
}

// descriptorTypeForEntry maps a binding layout entry to the VkDescriptorType
// it requires, applying the sampler/sampled-image collapse from
// MergeBindingTables at the single-entry level: a layout entry can only
// name one kind of resource, so the collapse instead happens when two
// separately-declared entries land on the same (set, slot) - see
// rhi.MergeBindingTables.
func descriptorTypeForEntry(entry types.BindGroupLayoutEntry) (vk.DescriptorType, error) {
	switch {
	case entry.Buffer != nil:
		switch entry.Buffer.Type {
		case types.BufferBindingTypeUniform:
			return vk.DescriptorTypeUniformBuffer, nil
		case types.BufferBindingTypeStorage, types.BufferBindingTypeReadOnlyStorage:
			return vk.DescriptorTypeStorageBuffer, nil
		default:
			return 0, fmt.Errorf("undefined buffer binding type")
		}
	case entry.Sampler != nil:
		return vk.DescriptorTypeSampler, nil
	case entry.Texture != nil:
		return vk.DescriptorTypeSampledImage, nil
	case entry.Storage != nil:
		return vk.DescriptorTypeStorageImage, nil
	default:
		return 0, fmt.Errorf("entry declares no binding type")
	}
}

func addDescriptorCount(counts *DescriptorCounts, descType vk.DescriptorType, n uint32) {
	switch descType {
	case vk.DescriptorTypeSampler:
		counts.Samplers += n
	case vk.DescriptorTypeSampledImage:
		counts.SampledImages += n
	case vk.DescriptorTypeStorageImage:
		counts.StorageImages += n
	case vk.DescriptorTypeUniformBuffer:
		counts.UniformBuffers += n
	case vk.DescriptorTypeStorageBuffer:
		counts.StorageBuffers += n
	case vk.DescriptorTypeUniformTexelBuffer:
		counts.UniformTexelBuffer += n
	case vk.DescriptorTypeStorageTexelBuffer:
		counts.StorageTexelBuffer += n
	case vk.DescriptorTypeInputAttachment:
		counts.InputAttachments += n
	}
}

// shaderStagesToVk converts the portable shader stage mask to its Vulkan
// equivalent.
func shaderStagesToVk(stages types.ShaderStages) vk.ShaderStageFlags {
	var flags vk.ShaderStageFlags
	if stages&types.ShaderStageVertex != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageVertexBit)
	}
	if stages&types.ShaderStageFragment != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageFragmentBit)
	}
	if stages&types.ShaderStageCompute != 0 {
		flags |= vk.ShaderStageFlags(vk.ShaderStageComputeBit)
	}
	return flags
}
