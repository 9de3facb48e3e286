// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package rhi

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/gorhi/rhi/types"
)

// shaderBundleVersion is bumped whenever the archive's field layout
// changes in a way that breaks older readers.
const shaderBundleVersion uint32 = 1

// ShaderBundleDesc carries the metadata a shader compiler front end
// attaches to a compiled module: the bytecode format and the language it
// was compiled from, plus the entry point to invoke.
type ShaderBundleDesc struct {
	// Format names the bytecode container, e.g. "spirv".
	Format string
	// Language names the source language, e.g. "glsl", "hlsl", "wgsl".
	Language string
	// Profile is a compiler-specific target profile string (may be empty).
	Profile string
	// Stage is the shader stage the bundle targets.
	Stage types.ShaderStage
	// EntryFunction is the name of the shader entry point.
	EntryFunction string
}

// ShaderAttribute describes one vertex input attribute a shader stage
// consumes, as reported by reflection.
type ShaderAttribute struct {
	Name     string
	Location uint32
	Format   types.VertexFormat
}

// ShaderBundle is the self-describing, on-disk/over-the-wire
// representation of a compiled shader stage: the raw bytecode plus
// everything needed to build a PipelineLayout and vertex input state
// without re-running reflection at load time.
type ShaderBundle struct {
	Desc      ShaderBundleDesc
	Bindings  BindingTable
	Attribute []ShaderAttribute
	Code      []byte
}

// SerializeShaderBundle encodes a bundle into the versioned archive
// format: a version header followed by four length-prefixed sections -
// desc, binding table, attributes, and raw bytecode - in that order.
func SerializeShaderBundle(b *ShaderBundle) ([]byte, error) {
	var buf bytes.Buffer
	if err := binary.Write(&buf, binary.LittleEndian, shaderBundleVersion); err != nil {
		return nil, err
	}

	if err := writeSection(&buf, func(w *bytes.Buffer) error {
		writeString(w, b.Desc.Format)
		writeString(w, b.Desc.Language)
		writeString(w, b.Desc.Profile)
		if err := binary.Write(w, binary.LittleEndian, uint32(b.Desc.Stage)); err != nil {
			return err
		}
		writeString(w, b.Desc.EntryFunction)
		return nil
	}); err != nil {
		return nil, fmt.Errorf("rhi: encoding shader bundle desc: %w", err)
	}

	if err := writeSection(&buf, func(w *bytes.Buffer) error {
		return writeBindingTable(w, &b.Bindings)
	}); err != nil {
		return nil, fmt.Errorf("rhi: encoding shader bundle binding table: %w", err)
	}

	if err := writeSection(&buf, func(w *bytes.Buffer) error {
		if err := binary.Write(w, binary.LittleEndian, uint32(len(b.Attribute))); err != nil {
			return err
		}
		for _, a := range b.Attribute {
			writeString(w, a.Name)
			if err := binary.Write(w, binary.LittleEndian, a.Location); err != nil {
				return err
			}
			if err := binary.Write(w, binary.LittleEndian, uint32(a.Format)); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return nil, fmt.Errorf("rhi: encoding shader bundle attributes: %w", err)
	}

	if err := writeSection(&buf, func(w *bytes.Buffer) error {
		_, err := w.Write(b.Code)
		return err
	}); err != nil {
		return nil, fmt.Errorf("rhi: encoding shader bundle bytecode: %w", err)
	}

	return buf.Bytes(), nil
}

// DeserializeShaderBundle decodes an archive produced by
// SerializeShaderBundle.
func DeserializeShaderBundle(data []byte) (*ShaderBundle, error) {
	r := bytes.NewReader(data)
	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return nil, fmt.Errorf("rhi: reading shader bundle version: %w", err)
	}
	if version != shaderBundleVersion {
		return nil, fmt.Errorf("rhi: unsupported shader bundle version %d", version)
	}

	bundle := &ShaderBundle{}

	descSection, err := readSection(r)
	if err != nil {
		return nil, fmt.Errorf("rhi: reading shader bundle desc: %w", err)
	}
	dr := bytes.NewReader(descSection)
	bundle.Desc.Format, err = readString(dr)
	if err != nil {
		return nil, err
	}
	bundle.Desc.Language, err = readString(dr)
	if err != nil {
		return nil, err
	}
	bundle.Desc.Profile, err = readString(dr)
	if err != nil {
		return nil, err
	}
	var stage uint32
	if err := binary.Read(dr, binary.LittleEndian, &stage); err != nil {
		return nil, err
	}
	bundle.Desc.Stage = types.ShaderStage(stage)
	bundle.Desc.EntryFunction, err = readString(dr)
	if err != nil {
		return nil, err
	}

	bindingSection, err := readSection(r)
	if err != nil {
		return nil, fmt.Errorf("rhi: reading shader bundle binding table: %w", err)
	}
	br := bytes.NewReader(bindingSection)
	table, err := readBindingTable(br)
	if err != nil {
		return nil, err
	}
	bundle.Bindings = *table

	attrSection, err := readSection(r)
	if err != nil {
		return nil, fmt.Errorf("rhi: reading shader bundle attributes: %w", err)
	}
	ar := bytes.NewReader(attrSection)
	var attrCount uint32
	if err := binary.Read(ar, binary.LittleEndian, &attrCount); err != nil {
		return nil, err
	}
	bundle.Attribute = make([]ShaderAttribute, attrCount)
	for i := range bundle.Attribute {
		name, err := readString(ar)
		if err != nil {
			return nil, err
		}
		var location, format uint32
		if err := binary.Read(ar, binary.LittleEndian, &location); err != nil {
			return nil, err
		}
		if err := binary.Read(ar, binary.LittleEndian, &format); err != nil {
			return nil, err
		}
		bundle.Attribute[i] = ShaderAttribute{Name: name, Location: location, Format: types.VertexFormat(format)}
	}

	bundle.Code, err = readSection(r)
	if err != nil {
		return nil, fmt.Errorf("rhi: reading shader bundle bytecode: %w", err)
	}

	return bundle, nil
}

func writeSection(buf *bytes.Buffer, fn func(*bytes.Buffer) error) error {
	var section bytes.Buffer
	if err := fn(&section); err != nil {
		return err
	}
	if err := binary.Write(buf, binary.LittleEndian, uint32(section.Len())); err != nil {
		return err
	}
	_, err := buf.Write(section.Bytes())
	return err
}

func readSection(r *bytes.Reader) ([]byte, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return nil, err
	}
	section := make([]byte, length)
	if _, err := r.Read(section); err != nil && length > 0 {
		return nil, err
	}
	return section, nil
}

func writeString(buf *bytes.Buffer, s string) {
	_ = binary.Write(buf, binary.LittleEndian, uint32(len(s)))
	buf.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	var length uint32
	if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
		return "", err
	}
	b := make([]byte, length)
	if length > 0 {
		if _, err := r.Read(b); err != nil {
			return "", err
		}
	}
	return string(b), nil
}

func writeBindingTable(w *bytes.Buffer, t *BindingTable) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.Bindings))); err != nil {
		return err
	}
	for _, b := range t.Bindings {
		if err := binary.Write(w, binary.LittleEndian, b.Set); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, b.Slot); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(b.Type)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(b.Stages)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, b.Count); err != nil {
			return err
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.Uniforms))); err != nil {
		return err
	}
	for _, u := range t.Uniforms {
		if err := binary.Write(w, binary.LittleEndian, uint32(u.Stages)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, u.Range.Start); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, u.Range.End); err != nil {
			return err
		}
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(t.Sets))); err != nil {
		return err
	}
	for _, s := range t.Sets {
		if err := binary.Write(w, binary.LittleEndian, s); err != nil {
			return err
		}
	}
	return nil
}

func readBindingTable(r *bytes.Reader) (*BindingTable, error) {
	table := &BindingTable{}

	var bindingCount uint32
	if err := binary.Read(r, binary.LittleEndian, &bindingCount); err != nil {
		return nil, err
	}
	table.Bindings = make([]ShaderBinding, bindingCount)
	for i := range table.Bindings {
		b := &table.Bindings[i]
		if err := binary.Read(r, binary.LittleEndian, &b.Set); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &b.Slot); err != nil {
			return nil, err
		}
		var bindingType, stages uint32
		if err := binary.Read(r, binary.LittleEndian, &bindingType); err != nil {
			return nil, err
		}
		b.Type = BindingType(bindingType)
		if err := binary.Read(r, binary.LittleEndian, &stages); err != nil {
			return nil, err
		}
		b.Stages = types.ShaderStages(stages)
		if err := binary.Read(r, binary.LittleEndian, &b.Count); err != nil {
			return nil, err
		}
	}

	var uniformCount uint32
	if err := binary.Read(r, binary.LittleEndian, &uniformCount); err != nil {
		return nil, err
	}
	table.Uniforms = make([]PushConstantRange, uniformCount)
	for i := range table.Uniforms {
		u := &table.Uniforms[i]
		var stages uint32
		if err := binary.Read(r, binary.LittleEndian, &stages); err != nil {
			return nil, err
		}
		u.Stages = types.ShaderStages(stages)
		if err := binary.Read(r, binary.LittleEndian, &u.Range.Start); err != nil {
			return nil, err
		}
		if err := binary.Read(r, binary.LittleEndian, &u.Range.End); err != nil {
			return nil, err
		}
	}

	var setCount uint32
	if err := binary.Read(r, binary.LittleEndian, &setCount); err != nil {
		return nil, err
	}
	table.Sets = make([]uint32, setCount)
	for i := range table.Sets {
		if err := binary.Read(r, binary.LittleEndian, &table.Sets[i]); err != nil {
			return nil, err
		}
	}

	return table, nil
}
