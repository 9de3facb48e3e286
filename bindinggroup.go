// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package rhi

import "github.com/gorhi/rhi/types"

// BindingGroup is the spec name for what this module otherwise calls a
// BindGroup: one allocated native descriptor set, bound to a pipeline at
// a single set index. PipelineLayout.ObtainBindingGroup returns one of
// these; it is the same type as BindGroup so code written against either
// name interoperates.
type BindingGroup = BindGroup

// BindingType enumerates the kinds of resource a single shader binding
// slot can describe, independent of any particular backend's descriptor
// type enum. It is derived from shader reflection, one value per
// (stage, slot) binding, before bindings from multiple stages are merged
// by MergeBindingTables.
type BindingType uint32

const (
	// BindingTypeBlock is a uniform/constant buffer block.
	BindingTypeBlock BindingType = iota
	// BindingTypeSampler is a standalone sampler object.
	BindingTypeSampler
	// BindingTypeSampledImage is a standalone sampled image, bound
	// without an accompanying sampler.
	BindingTypeSampledImage
	// BindingTypeCombinedImageSampler is a sampled image bound together
	// with its sampler in a single slot.
	BindingTypeCombinedImageSampler
	// BindingTypeStorageImage is a read-write/storage image.
	BindingTypeStorageImage
	// BindingTypeStorageBuffer is a read-write storage buffer.
	BindingTypeStorageBuffer
	// BindingTypeRWTexelBuffer is a read-write texel (buffer view)
	// binding.
	BindingTypeRWTexelBuffer
)

// String names the binding type the way reflection dumps and error
// messages refer to it.
func (t BindingType) String() string {
	switch t {
	case BindingTypeBlock:
		return "Block"
	case BindingTypeSampler:
		return "Sampler"
	case BindingTypeSampledImage:
		return "SampledImage"
	case BindingTypeCombinedImageSampler:
		return "CombinedImageSampler"
	case BindingTypeStorageImage:
		return "StorageImage"
	case BindingTypeStorageBuffer:
		return "StorageBuffer"
	case BindingTypeRWTexelBuffer:
		return "RWTexelBuffer"
	default:
		return "Invalid"
	}
}

// ShaderBinding is one binding slot as reported by shader reflection for
// a single stage.
type ShaderBinding struct {
	// Set is the descriptor set index.
	Set uint32
	// Slot is the binding number within the set.
	Slot uint32
	// Type is the binding's resource kind.
	Type BindingType
	// Stages is the set of shader stages (usually just the reflecting
	// stage) that use this binding. MergeBindingTables ORs this field
	// in as tables from different stages are combined.
	Stages types.ShaderStages
	// Count is the array size of the binding (1 for a non-array
	// binding).
	Count uint32
}

// BindingTable is the set of bindings a single shader stage's reflection
// data produced, plus any push-constant ("uniform") ranges it declares.
// PipelineLayout creation merges one BindingTable per stage into a
// single table describing the whole pipeline.
type BindingTable struct {
	Bindings []ShaderBinding
	Uniforms []PushConstantRange
	Sets     []uint32
}

// key identifies a binding slot independent of its resource type, which
// is exactly what two reflected bindings must share to be merge
// candidates.
type bindingKey struct {
	set  uint32
	slot uint32
}

// MergeBindingTables combines the per-stage binding tables produced by
// shader reflection into the single table a PipelineLayout is built
// from. For each (set, slot) pair seen across the inputs, the stage
// masks are unioned and the binding type is resolved: identical types
// combine trivially, and a Sampler paired with a SampledImage at the
// same slot collapses into a single CombinedImageSampler, mirroring how
// a combined-image-sampler descriptor serves both declarations at once.
// Any other mismatched pairing at the same slot is an error - the
// reflection data disagrees about what the slot holds.
func MergeBindingTables(tables ...*BindingTable) (*BindingTable, error) {
	merged := make(map[bindingKey]*ShaderBinding)
	order := make([]bindingKey, 0)
	var uniforms []PushConstantRange
	setSeen := make(map[uint32]bool)
	var sets []uint32

	for _, table := range tables {
		if table == nil {
			continue
		}
		uniforms = append(uniforms, table.Uniforms...)
		for _, s := range table.Sets {
			if !setSeen[s] {
				setSeen[s] = true
				sets = append(sets, s)
			}
		}

		for _, b := range table.Bindings {
			key := bindingKey{set: b.Set, slot: b.Slot}
			existing, ok := merged[key]
			if !ok {
				copyOfB := b
				merged[key] = &copyOfB
				order = append(order, key)
				if !setSeen[b.Set] {
					setSeen[b.Set] = true
					sets = append(sets, b.Set)
				}
				continue
			}

			resolved, err := mergeBindingType(existing.Type, b.Type)
			if err != nil {
				return nil, err
			}
			existing.Type = resolved
			existing.Stages |= b.Stages
			if b.Count > existing.Count {
				existing.Count = b.Count
			}
		}
	}

	result := &BindingTable{Uniforms: uniforms, Sets: sets}
	for _, key := range order {
		result.Bindings = append(result.Bindings, *merged[key])
	}
	return result, nil
}

// mergeBindingType resolves two BindingType values declared at the same
// (set, slot) across stages or reflection passes.
func mergeBindingType(a, b BindingType) (BindingType, error) {
	if a == b {
		return a, nil
	}
	if isSamplerImagePair(a, b) {
		return BindingTypeCombinedImageSampler, nil
	}
	return 0, &bindingConflictError{a: a, b: b}
}

func isSamplerImagePair(a, b BindingType) bool {
	return (a == BindingTypeSampler && b == BindingTypeSampledImage) ||
		(a == BindingTypeSampledImage && b == BindingTypeSampler) ||
		(a == BindingTypeCombinedImageSampler && (b == BindingTypeSampler || b == BindingTypeSampledImage)) ||
		(b == BindingTypeCombinedImageSampler && (a == BindingTypeSampler || a == BindingTypeSampledImage))
}

type bindingConflictError struct {
	a, b BindingType
}

func (e *bindingConflictError) Error() string {
	return "rhi: incompatible binding types at the same slot: " + e.a.String() + " vs " + e.b.String()
}
