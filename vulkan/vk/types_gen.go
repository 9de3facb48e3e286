// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vk

// Core scalar types, handles, enums and structures mirroring vk.xml.
//
// This file is normally produced by cmd/vk-gen from the Khronos
// vk.xml registry. The generator output for this checkout covers the
// subset of Vulkan 1.0-1.3 core plus VK_KHR_swapchain, VK_KHR_surface,
// the platform surface extensions and VK_EXT_debug_utils that the
// hal/vulkan backend exercises; it is not a full reproduction of
// vk.xml.

import "unsafe"

// --- Scalar aliases ---

type (
	Bool32     uint32
	DeviceSize uint64
	SampleMask uint32
	Flags      uint32
)

const (
	True  Bool32 = 1
	False Bool32 = 0

	WholeSize           DeviceSize = ^DeviceSize(0)
	RemainingMipLevels  uint32     = ^uint32(0)
	RemainingArrayLayers uint32    = ^uint32(0)
	AttachmentUnused    uint32     = ^uint32(0)
	QueueFamilyIgnored  uint32     = ^uint32(0)
)

// --- Handles (dispatchable and non-dispatchable are both uint64 here;
// goffi marshals them as 8-byte values either way) ---

type (
	Instance       uint64
	PhysicalDevice uint64
	Device         uint64
	Queue          uint64
	CommandBuffer  uint64

	DeviceMemory        uint64
	Buffer              uint64
	BufferView          uint64
	Image               uint64
	ImageView           uint64
	ShaderModule        uint64
	Pipeline            uint64
	PipelineLayout      uint64
	PipelineCache       uint64
	RenderPass          uint64
	Framebuffer         uint64
	DescriptorSetLayout uint64
	DescriptorPool      uint64
	DescriptorSet       uint64
	Sampler             uint64
	CommandPool         uint64
	Fence               uint64
	Semaphore           uint64
	Event               uint64
	QueryPool           uint64

	SurfaceKHR           uint64
	SwapchainKHR         uint64
	DebugUtilsMessengerEXT uint64

	XlibWindow  uint64
	CAMetalLayer unsafe.Pointer
)

// --- Result ---

type Result int32

const (
	Success                     Result = 0
	NotReady                    Result = 1
	Timeout                     Result = 2
	EventSet                    Result = 3
	EventReset                  Result = 4
	Incomplete                  Result = 5
	ErrorOutOfHostMemory        Result = -1
	ErrorOutOfDeviceMemory      Result = -2
	ErrorInitializationFailed   Result = -3
	ErrorDeviceLost             Result = -4
	ErrorMemoryMapFailed        Result = -5
	ErrorLayerNotPresent        Result = -6
	ErrorExtensionNotPresent    Result = -7
	ErrorFeatureNotPresent      Result = -8
	ErrorIncompatibleDriver     Result = -9
	ErrorTooManyObjects         Result = -10
	ErrorFormatNotSupported     Result = -11
	ErrorFragmentedPool         Result = -12
	ErrorUnknown                Result = -13
	ErrorOutOfPoolMemory        Result = -1000069000
	ErrorSurfaceLostKhr         Result = -1000000000
	ErrorNativeWindowInUseKhr   Result = -1000000001
	SuboptimalKhr               Result = 1000001003
	ErrorOutOfDateKhr           Result = -1000001004
	ErrorIncompatibleDisplayKhr Result = -1000003001
	ErrorValidationFailedExt    Result = -1000011001
)

func (r Result) String() string {
	switch r {
	case Success:
		return "VK_SUCCESS"
	case NotReady:
		return "VK_NOT_READY"
	case Timeout:
		return "VK_TIMEOUT"
	case Incomplete:
		return "VK_INCOMPLETE"
	case ErrorOutOfHostMemory:
		return "VK_ERROR_OUT_OF_HOST_MEMORY"
	case ErrorOutOfDeviceMemory:
		return "VK_ERROR_OUT_OF_DEVICE_MEMORY"
	case ErrorDeviceLost:
		return "VK_ERROR_DEVICE_LOST"
	case ErrorOutOfDateKhr:
		return "VK_ERROR_OUT_OF_DATE_KHR"
	case SuboptimalKhr:
		return "VK_SUBOPTIMAL_KHR"
	case ErrorSurfaceLostKhr:
		return "VK_ERROR_SURFACE_LOST_KHR"
	default:
		return "VK_RESULT_UNKNOWN"
	}
}

// --- StructureType ---

type StructureType uint32

const (
	StructureTypeApplicationInfo                         StructureType = 0
	StructureTypeInstanceCreateInfo                       StructureType = 1
	StructureTypeDeviceQueueCreateInfo                    StructureType = 2
	StructureTypeDeviceCreateInfo                         StructureType = 3
	StructureTypeSubmitInfo                               StructureType = 4
	StructureTypeMemoryAllocateInfo                       StructureType = 5
	StructureTypeFenceCreateInfo                          StructureType = 8
	StructureTypeSemaphoreCreateInfo                      StructureType = 9
	StructureTypeEventCreateInfo                          StructureType = 10
	StructureTypeQueryPoolCreateInfo                      StructureType = 11
	StructureTypeBufferCreateInfo                         StructureType = 12
	StructureTypeBufferViewCreateInfo                     StructureType = 13
	StructureTypeImageCreateInfo                          StructureType = 14
	StructureTypeImageViewCreateInfo                      StructureType = 15
	StructureTypeShaderModuleCreateInfo                   StructureType = 16
	StructureTypePipelineCacheCreateInfo                  StructureType = 17
	StructureTypePipelineShaderStageCreateInfo             StructureType = 18
	StructureTypePipelineVertexInputStateCreateInfo        StructureType = 19
	StructureTypePipelineInputAssemblyStateCreateInfo      StructureType = 20
	StructureTypePipelineViewportStateCreateInfo           StructureType = 22
	StructureTypePipelineRasterizationStateCreateInfo      StructureType = 23
	StructureTypePipelineMultisampleStateCreateInfo        StructureType = 24
	StructureTypePipelineDepthStencilStateCreateInfo       StructureType = 25
	StructureTypePipelineColorBlendStateCreateInfo         StructureType = 26
	StructureTypePipelineDynamicStateCreateInfo            StructureType = 27
	StructureTypeGraphicsPipelineCreateInfo                StructureType = 28
	StructureTypeComputePipelineCreateInfo                 StructureType = 29
	StructureTypePipelineLayoutCreateInfo                  StructureType = 30
	StructureTypeSamplerCreateInfo                         StructureType = 31
	StructureTypeDescriptorSetLayoutCreateInfo             StructureType = 32
	StructureTypeDescriptorPoolCreateInfo                  StructureType = 33
	StructureTypeDescriptorSetAllocateInfo                 StructureType = 34
	StructureTypeWriteDescriptorSet                        StructureType = 35
	StructureTypeCopyDescriptorSet                         StructureType = 36
	StructureTypeFramebufferCreateInfo                     StructureType = 37
	StructureTypeRenderPassCreateInfo                      StructureType = 38
	StructureTypeCommandPoolCreateInfo                     StructureType = 39
	StructureTypeCommandBufferAllocateInfo                 StructureType = 40
	StructureTypeCommandBufferInheritanceInfo              StructureType = 41
	StructureTypeCommandBufferBeginInfo                    StructureType = 42
	StructureTypeRenderPassBeginInfo                       StructureType = 43
	StructureTypeMemoryBarrier                             StructureType = 46
	StructureTypeBufferMemoryBarrier                       StructureType = 44
	StructureTypeImageMemoryBarrier                        StructureType = 45
	StructureTypeSwapchainCreateInfoKhr                    StructureType = 1000001000
	StructureTypePresentInfoKhr                            StructureType = 1000001001
	StructureTypeWin32SurfaceCreateInfoKhr                  StructureType = 1000009000
	StructureTypeDebugUtilsMessengerCallbackDataExt         StructureType = 1000128003
	StructureTypeDebugUtilsMessengerCreateInfoExt           StructureType = 1000128004
	StructureTypeDebugUtilsObjectNameInfoExt                StructureType = 1000128000
	StructureTypeXlibSurfaceCreateInfoKhr                   StructureType = 1000004000
	StructureTypeWaylandSurfaceCreateInfoKhr                StructureType = 1000006000
	StructureTypeMetalSurfaceCreateInfoExt                  StructureType = 1000217000
)

// --- Core enums ---

type Format uint32

const (
	FormatUndefined Format = 0

	FormatR8Unorm  Format = 9
	FormatR8Snorm  Format = 10
	FormatR8Uint   Format = 13
	FormatR8Sint   Format = 14
	FormatR8g8Unorm Format = 16
	FormatR8g8Snorm Format = 17
	FormatR8g8Uint  Format = 20
	FormatR8g8Sint  Format = 21

	FormatR8g8b8a8Unorm Format = 37
	FormatR8g8b8a8Snorm Format = 38
	FormatR8g8b8a8Uint  Format = 41
	FormatR8g8b8a8Sint  Format = 42
	FormatR8g8b8a8Srgb  Format = 43
	FormatB8g8r8a8Unorm Format = 44
	FormatB8g8r8a8Srgb  Format = 50

	FormatA2b10g10r10UnormPack32 Format = 64
	FormatA2b10g10r10UintPack32  Format = 67

	FormatR16Uint  Format = 74
	FormatR16Sint  Format = 75
	FormatR16Sfloat Format = 76
	FormatR16g16Uint   Format = 81
	FormatR16g16Sint   Format = 82
	FormatR16g16Sfloat Format = 83
	FormatR16g16b16a16Uint   Format = 95
	FormatR16g16b16a16Sint   Format = 96
	FormatR16g16b16a16Sfloat Format = 97

	FormatR32Uint  Format = 98
	FormatR32Sint  Format = 99
	FormatR32Sfloat Format = 100
	FormatR32g32Uint   Format = 101
	FormatR32g32Sint   Format = 102
	FormatR32g32Sfloat Format = 103
	FormatR32g32b32Sfloat    Format = 106
	FormatR32g32b32a32Uint   Format = 107
	FormatR32g32b32a32Sint   Format = 108
	FormatR32g32b32a32Sfloat Format = 109

	FormatB10g11r11UfloatPack32 Format = 122
	FormatE5b9g9r9UfloatPack32  Format = 123

	FormatD16Unorm        Format = 124
	FormatX8D24UnormPack32 Format = 125
	FormatD32Sfloat       Format = 126
	FormatS8Uint          Format = 127
	FormatD24UnormS8Uint  Format = 129
	FormatD32SfloatS8Uint Format = 130

	FormatBc1RgbaUnormBlock Format = 133
	FormatBc1RgbaSrgbBlock  Format = 134
	FormatBc2UnormBlock     Format = 135
	FormatBc2SrgbBlock      Format = 136
	FormatBc3UnormBlock     Format = 137
	FormatBc3SrgbBlock      Format = 138
	FormatBc4UnormBlock     Format = 139
	FormatBc4SnormBlock     Format = 140
	FormatBc5UnormBlock     Format = 141
	FormatBc5SnormBlock     Format = 142
	FormatBc6hUfloatBlock   Format = 143
	FormatBc6hSfloatBlock   Format = 144
	FormatBc7UnormBlock     Format = 145
	FormatBc7SrgbBlock      Format = 146

	FormatEtc2R8g8b8UnormBlock   Format = 147
	FormatEtc2R8g8b8SrgbBlock    Format = 148
	FormatEtc2R8g8b8a1UnormBlock Format = 149
	FormatEtc2R8g8b8a1SrgbBlock  Format = 150
	FormatEtc2R8g8b8a8UnormBlock Format = 151
	FormatEtc2R8g8b8a8SrgbBlock  Format = 152
	FormatEacR11UnormBlock       Format = 153
	FormatEacR11SnormBlock       Format = 154
	FormatEacR11g11UnormBlock    Format = 155
	FormatEacR11g11SnormBlock    Format = 156

	FormatAstc4x4UnormBlock   Format = 157
	FormatAstc4x4SrgbBlock    Format = 158
	FormatAstc5x4UnormBlock   Format = 159
	FormatAstc5x4SrgbBlock    Format = 160
	FormatAstc5x5UnormBlock   Format = 161
	FormatAstc5x5SrgbBlock    Format = 162
	FormatAstc6x5UnormBlock   Format = 163
	FormatAstc6x5SrgbBlock    Format = 164
	FormatAstc6x6UnormBlock   Format = 165
	FormatAstc6x6SrgbBlock    Format = 166
	FormatAstc8x5UnormBlock   Format = 167
	FormatAstc8x5SrgbBlock    Format = 168
	FormatAstc8x6UnormBlock   Format = 169
	FormatAstc8x6SrgbBlock    Format = 170
	FormatAstc8x8UnormBlock   Format = 171
	FormatAstc8x8SrgbBlock    Format = 172
	FormatAstc10x5UnormBlock  Format = 173
	FormatAstc10x5SrgbBlock   Format = 174
	FormatAstc10x6UnormBlock  Format = 175
	FormatAstc10x6SrgbBlock   Format = 176
	FormatAstc10x8UnormBlock  Format = 177
	FormatAstc10x8SrgbBlock   Format = 178
	FormatAstc10x10UnormBlock Format = 179
	FormatAstc10x10SrgbBlock  Format = 180
	FormatAstc12x10UnormBlock Format = 181
	FormatAstc12x10SrgbBlock  Format = 182
	FormatAstc12x12UnormBlock Format = 183
	FormatAstc12x12SrgbBlock  Format = 184
)

type ImageLayout uint32

const (
	ImageLayoutUndefined                ImageLayout = 0
	ImageLayoutGeneral                  ImageLayout = 1
	ImageLayoutColorAttachmentOptimal   ImageLayout = 2
	ImageLayoutDepthStencilAttachmentOptimal ImageLayout = 3
	ImageLayoutDepthStencilReadOnlyOptimal   ImageLayout = 4
	ImageLayoutShaderReadOnlyOptimal     ImageLayout = 5
	ImageLayoutTransferSrcOptimal        ImageLayout = 6
	ImageLayoutTransferDstOptimal        ImageLayout = 7
	ImageLayoutPreinitialized            ImageLayout = 8
	ImageLayoutPresentSrcKhr             ImageLayout = 1000001002
)

type ImageType uint32

const (
	ImageType1d ImageType = 0
	ImageType2d ImageType = 1
	ImageType3d ImageType = 2
)

type ImageViewType uint32

const (
	ImageViewType1d        ImageViewType = 0
	ImageViewType2d        ImageViewType = 1
	ImageViewType3d        ImageViewType = 2
	ImageViewTypeCube      ImageViewType = 3
	ImageViewType1dArray   ImageViewType = 4
	ImageViewType2dArray   ImageViewType = 5
	ImageViewTypeCubeArray ImageViewType = 6
)

type ImageTiling uint32

const (
	ImageTilingOptimal ImageTiling = 0
	ImageTilingLinear  ImageTiling = 1
)

type SharingMode uint32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

type SampleCountFlagBits uint32

const (
	SampleCount1Bit  SampleCountFlagBits = 0x01
	SampleCount2Bit  SampleCountFlagBits = 0x02
	SampleCount4Bit  SampleCountFlagBits = 0x04
	SampleCount8Bit  SampleCountFlagBits = 0x08
	SampleCount16Bit SampleCountFlagBits = 0x10
)

type ImageUsageFlags uint32

const (
	ImageUsageTransferSrcBit            ImageUsageFlags = 0x01
	ImageUsageTransferDstBit            ImageUsageFlags = 0x02
	ImageUsageSampledBit                ImageUsageFlags = 0x04
	ImageUsageStorageBit                ImageUsageFlags = 0x08
	ImageUsageColorAttachmentBit        ImageUsageFlags = 0x10
	ImageUsageDepthStencilAttachmentBit ImageUsageFlags = 0x20
	ImageUsageTransientAttachmentBit    ImageUsageFlags = 0x40
	ImageUsageInputAttachmentBit        ImageUsageFlags = 0x80
)

type ImageCreateFlags uint32

type BufferUsageFlags uint32

const (
	BufferUsageTransferSrcBit   BufferUsageFlags = 0x001
	BufferUsageTransferDstBit   BufferUsageFlags = 0x002
	BufferUsageUniformTexelBufferBit BufferUsageFlags = 0x004
	BufferUsageStorageTexelBufferBit BufferUsageFlags = 0x008
	BufferUsageUniformBufferBit BufferUsageFlags = 0x010
	BufferUsageStorageBufferBit BufferUsageFlags = 0x020
	BufferUsageIndexBufferBit   BufferUsageFlags = 0x040
	BufferUsageVertexBufferBit  BufferUsageFlags = 0x080
	BufferUsageIndirectBufferBit BufferUsageFlags = 0x100
)

type MemoryPropertyFlags uint32

const (
	MemoryPropertyDeviceLocalBit     MemoryPropertyFlags = 0x01
	MemoryPropertyHostVisibleBit     MemoryPropertyFlags = 0x02
	MemoryPropertyHostCoherentBit    MemoryPropertyFlags = 0x04
	MemoryPropertyHostCachedBit      MemoryPropertyFlags = 0x08
	MemoryPropertyLazilyAllocatedBit MemoryPropertyFlags = 0x10
)

type MemoryHeapFlags uint32

const MemoryHeapDeviceLocalBit MemoryHeapFlags = 0x01

type ImageAspectFlags uint32

const (
	ImageAspectColorBit   ImageAspectFlags = 0x01
	ImageAspectDepthBit   ImageAspectFlags = 0x02
	ImageAspectStencilBit ImageAspectFlags = 0x04
)

type DescriptorType uint32

const (
	DescriptorTypeSampler              DescriptorType = 0
	DescriptorTypeCombinedImageSampler DescriptorType = 1
	DescriptorTypeSampledImage         DescriptorType = 2
	DescriptorTypeStorageImage         DescriptorType = 3
	DescriptorTypeUniformTexelBuffer   DescriptorType = 4
	DescriptorTypeStorageTexelBuffer   DescriptorType = 5
	DescriptorTypeUniformBuffer        DescriptorType = 6
	DescriptorTypeStorageBuffer        DescriptorType = 7
	DescriptorTypeUniformBufferDynamic DescriptorType = 8
	DescriptorTypeStorageBufferDynamic DescriptorType = 9
	DescriptorTypeInputAttachment      DescriptorType = 10
)

type ShaderStageFlags uint32

const (
	ShaderStageVertexBit   ShaderStageFlags = 0x01
	ShaderStageFragmentBit ShaderStageFlags = 0x10
	ShaderStageComputeBit  ShaderStageFlags = 0x20
	ShaderStageAllGraphics ShaderStageFlags = 0x1F
	ShaderStageAll         ShaderStageFlags = 0x7FFFFFFF
)

type PipelineBindPoint uint32

const (
	PipelineBindPointGraphics PipelineBindPoint = 0
	PipelineBindPointCompute  PipelineBindPoint = 1
)

type PipelineStageFlags uint32

const (
	PipelineStageTopOfPipeBit               PipelineStageFlags = 0x00001
	PipelineStageDrawIndirectBit             PipelineStageFlags = 0x00002
	PipelineStageVertexInputBit              PipelineStageFlags = 0x00004
	PipelineStageVertexShaderBit             PipelineStageFlags = 0x00008
	PipelineStageFragmentShaderBit           PipelineStageFlags = 0x00080
	PipelineStageColorAttachmentOutputBit    PipelineStageFlags = 0x00400
	PipelineStageComputeShaderBit            PipelineStageFlags = 0x00800
	PipelineStageTransferBit                 PipelineStageFlags = 0x01000
	PipelineStageBottomOfPipeBit             PipelineStageFlags = 0x02000
	PipelineStageAllGraphicsBit              PipelineStageFlags = 0x08000
	PipelineStageAllCommandsBit              PipelineStageFlags = 0x10000
)

type AccessFlags uint32

const (
	AccessIndirectCommandReadBit     AccessFlags = 0x0001
	AccessIndexReadBit               AccessFlags = 0x0002
	AccessVertexAttributeReadBit     AccessFlags = 0x0004
	AccessUniformReadBit             AccessFlags = 0x0008
	AccessShaderReadBit              AccessFlags = 0x0020
	AccessShaderWriteBit             AccessFlags = 0x0040
	AccessColorAttachmentReadBit     AccessFlags = 0x0080
	AccessColorAttachmentWriteBit    AccessFlags = 0x0100
	AccessTransferReadBit            AccessFlags = 0x0800
	AccessTransferWriteBit           AccessFlags = 0x1000
	AccessHostReadBit                AccessFlags = 0x2000
	AccessHostWriteBit               AccessFlags = 0x4000
	AccessMemoryReadBit              AccessFlags = 0x8000
	AccessMemoryWriteBit             AccessFlags = 0x10000
	AccessDepthStencilAttachmentReadBit  AccessFlags = 0x0100
	AccessDepthStencilAttachmentWriteBit AccessFlags = 0x0200
)

type DependencyFlags uint32

type AttachmentLoadOp uint32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp uint32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

type CommandPoolCreateFlags uint32

const (
	CommandPoolCreateTransientBit          CommandPoolCreateFlags = 0x01
	CommandPoolCreateResetCommandBufferBit CommandPoolCreateFlags = 0x02
)

type CommandPoolResetFlags uint32

type CommandBufferResetFlags uint32

type CommandBufferLevel uint32

const (
	CommandBufferLevelPrimary   CommandBufferLevel = 0
	CommandBufferLevelSecondary CommandBufferLevel = 1
)

type CommandBufferUsageFlags uint32

const (
	CommandBufferUsageOneTimeSubmitBit      CommandBufferUsageFlags = 0x01
	CommandBufferUsageRenderPassContinueBit CommandBufferUsageFlags = 0x02
	CommandBufferUsageSimultaneousUseBit    CommandBufferUsageFlags = 0x04
)

type QueryType uint32

const (
	QueryTypeOcclusion QueryType = 0
	QueryTypeTimestamp QueryType = 2
)

type PrimitiveTopology uint32

const (
	PrimitiveTopologyPointList    PrimitiveTopology = 0
	PrimitiveTopologyLineList     PrimitiveTopology = 1
	PrimitiveTopologyLineStrip    PrimitiveTopology = 2
	PrimitiveTopologyTriangleList PrimitiveTopology = 3
	PrimitiveTopologyTriangleStrip PrimitiveTopology = 4
)

type PolygonMode uint32

const (
	PolygonModeFill  PolygonMode = 0
	PolygonModeLine  PolygonMode = 1
	PolygonModePoint PolygonMode = 2
)

type CullModeFlags uint32

const (
	CullModeNone     CullModeFlags = 0
	CullModeFrontBit CullModeFlags = 0x01
	CullModeBackBit  CullModeFlags = 0x02
)

type FrontFace uint32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

type CompareOp uint32

const (
	CompareOpNever          CompareOp = 0
	CompareOpLess           CompareOp = 1
	CompareOpEqual          CompareOp = 2
	CompareOpLessOrEqual    CompareOp = 3
	CompareOpGreater        CompareOp = 4
	CompareOpNotEqual       CompareOp = 5
	CompareOpGreaterOrEqual CompareOp = 6
	CompareOpAlways         CompareOp = 7
)

type StencilOp uint32

const (
	StencilOpKeep              StencilOp = 0
	StencilOpZero              StencilOp = 1
	StencilOpReplace           StencilOp = 2
	StencilOpIncrementAndClamp StencilOp = 3
	StencilOpDecrementAndClamp StencilOp = 4
	StencilOpInvert            StencilOp = 5
	StencilOpIncrementAndWrap  StencilOp = 6
	StencilOpDecrementAndWrap  StencilOp = 7
)

type BlendFactor uint32

const (
	BlendFactorZero                  BlendFactor = 0
	BlendFactorOne                   BlendFactor = 1
	BlendFactorSrcColor              BlendFactor = 2
	BlendFactorOneMinusSrcColor      BlendFactor = 3
	BlendFactorDstColor              BlendFactor = 4
	BlendFactorOneMinusDstColor      BlendFactor = 5
	BlendFactorSrcAlpha              BlendFactor = 6
	BlendFactorOneMinusSrcAlpha      BlendFactor = 7
	BlendFactorDstAlpha              BlendFactor = 8
	BlendFactorOneMinusDstAlpha      BlendFactor = 9
	BlendFactorConstantColor         BlendFactor = 10
	BlendFactorOneMinusConstantColor BlendFactor = 11
	BlendFactorSrcAlphaSaturate      BlendFactor = 14
)

type BlendOp uint32

const (
	BlendOpAdd             BlendOp = 0
	BlendOpSubtract        BlendOp = 1
	BlendOpReverseSubtract BlendOp = 2
	BlendOpMin             BlendOp = 3
	BlendOpMax             BlendOp = 4
)

type ColorComponentFlags uint32

const (
	ColorComponentRBit ColorComponentFlags = 0x01
	ColorComponentGBit ColorComponentFlags = 0x02
	ColorComponentBBit ColorComponentFlags = 0x04
	ColorComponentABit ColorComponentFlags = 0x08
)

type VertexInputRate uint32

const (
	VertexInputRateVertex   VertexInputRate = 0
	VertexInputRateInstance VertexInputRate = 1
)

type Filter uint32

const (
	FilterNearest Filter = 0
	FilterLinear  Filter = 1
)

type SamplerMipmapMode uint32

const (
	SamplerMipmapModeNearest SamplerMipmapMode = 0
	SamplerMipmapModeLinear  SamplerMipmapMode = 1
)

type SamplerAddressMode uint32

const (
	SamplerAddressModeRepeat         SamplerAddressMode = 0
	SamplerAddressModeMirroredRepeat SamplerAddressMode = 1
	SamplerAddressModeClampToEdge    SamplerAddressMode = 2
	SamplerAddressModeClampToBorder  SamplerAddressMode = 3
)

type BorderColor uint32

type DescriptorPoolCreateFlags uint32

const DescriptorPoolCreateFreeDescriptorSetBit DescriptorPoolCreateFlags = 0x01

type DynamicState uint32

const (
	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1
)

type IndexType uint32

const (
	IndexTypeUint16 IndexType = 0
	IndexTypeUint32 IndexType = 1
)

type ObjectType uint32

const (
	ObjectTypeUnknown     ObjectType = 0
	ObjectTypeRenderPass  ObjectType = 18
	ObjectTypeFramebuffer ObjectType = 23
	ObjectTypeQueryPool   ObjectType = 14
)

type QueueFlags uint32

const (
	QueueGraphicsBit QueueFlags = 0x01
	QueueComputeBit  QueueFlags = 0x02
	QueueTransferBit QueueFlags = 0x04
)

type PhysicalDeviceType uint32

const (
	PhysicalDeviceTypeOther         PhysicalDeviceType = 0
	PhysicalDeviceTypeIntegratedGpu PhysicalDeviceType = 1
	PhysicalDeviceTypeDiscreteGpu   PhysicalDeviceType = 2
	PhysicalDeviceTypeVirtualGpu    PhysicalDeviceType = 3
	PhysicalDeviceTypeCpu           PhysicalDeviceType = 4
)

type ColorSpaceKHR uint32

const ColorSpaceSrgbNonlinearKhr ColorSpaceKHR = 0

type PresentModeKHR uint32

const (
	PresentModeImmediateKhr   PresentModeKHR = 0
	PresentModeMailboxKhr     PresentModeKHR = 1
	PresentModeFifoKhr        PresentModeKHR = 2
	PresentModeFifoRelaxedKhr PresentModeKHR = 3
)

type CompositeAlphaFlagsKHR uint32

const CompositeAlphaOpaqueBitKhr CompositeAlphaFlagsKHR = 0x01

type SurfaceTransformFlagsKHR uint32

const SurfaceTransformIdentityBitKhr SurfaceTransformFlagsKHR = 0x01

type DebugUtilsMessageSeverityFlagsEXT uint32
type DebugUtilsMessageSeverityFlagBitsEXT = DebugUtilsMessageSeverityFlagsEXT

const (
	DebugUtilsMessageSeverityVerboseBitExt DebugUtilsMessageSeverityFlagsEXT = 0x0001
	DebugUtilsMessageSeverityInfoBitExt    DebugUtilsMessageSeverityFlagsEXT = 0x0010
	DebugUtilsMessageSeverityWarningBitExt DebugUtilsMessageSeverityFlagsEXT = 0x0100
	DebugUtilsMessageSeverityErrorBitExt   DebugUtilsMessageSeverityFlagsEXT = 0x1000
)

type DebugUtilsMessageTypeFlagsEXT uint32
type DebugUtilsMessageTypeFlagBitsEXT = DebugUtilsMessageTypeFlagsEXT

const (
	DebugUtilsMessageTypeGeneralBitExt     DebugUtilsMessageTypeFlagsEXT = 0x01
	DebugUtilsMessageTypeValidationBitExt  DebugUtilsMessageTypeFlagsEXT = 0x02
	DebugUtilsMessageTypePerformanceBitExt DebugUtilsMessageTypeFlagsEXT = 0x04
)

type SemaphoreType uint32

const SemaphoreTypeTimeline SemaphoreType = 1

type ResolveModeFlags uint32

const ResolveModeAverageBit ResolveModeFlags = 0x02

// --- Geometry structures ---

type Extent2D struct {
	Width  uint32
	Height uint32
}

type Extent3D struct {
	Width  uint32
	Height uint32
	Depth  uint32
}

type Offset2D struct {
	X int32
	Y int32
}

type Offset3D struct {
	X int32
	Y int32
	Z int32
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X        float32
	Y        float32
	Width    float32
	Height   float32
	MinDepth float32
	MaxDepth float32
}

type ComponentMapping struct {
	R uint32
	G uint32
	B uint32
	A uint32
}

const ComponentSwizzleIdentity uint32 = 0

// --- Instance / device ---

type ApplicationInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	PApplicationName   *byte
	ApplicationVersion uint32
	PEngineName        *byte
	EngineVersion      uint32
	ApiVersion         uint32
}

type InstanceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	PApplicationInfo        *ApplicationInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
}

type DeviceQueueCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	QueueFamilyIndex uint32
	QueueCount       uint32
	PQueuePriorities *float32
}

type PhysicalDeviceFeatures struct {
	RobustBufferAccess Bool32
	FullDrawIndexUint32 Bool32
	ImageCubeArray Bool32
	IndependentBlend Bool32
	GeometryShader Bool32
	TessellationShader Bool32
	SampleRateShading Bool32
	DualSrcBlend Bool32
	LogicOp Bool32
	MultiDrawIndirect Bool32
	DrawIndirectFirstInstance Bool32
	DepthClamp Bool32
	DepthBiasClamp Bool32
	FillModeNonSolid Bool32
	DepthBounds Bool32
	WideLines Bool32
	LargePoints Bool32
	AlphaToOne Bool32
	MultiViewport Bool32
	SamplerAnisotropy Bool32
	TextureCompressionEtc2 Bool32
	TextureCompressionAstcLdr Bool32
	TextureCompressionBc Bool32
	OcclusionQueryPrecise Bool32
	PipelineStatisticsQuery Bool32
	VertexPipelineStoresAndAtomics Bool32
	FragmentStoresAndAtomics Bool32
	ShaderTessellationAndGeometryPointSize Bool32
	ShaderImageGatherExtended Bool32
	ShaderStorageImageExtendedFormats Bool32
	ShaderStorageImageMultisample Bool32
	ShaderStorageImageReadWithoutFormat Bool32
	ShaderStorageImageWriteWithoutFormat Bool32
	ShaderUniformBufferArrayDynamicIndexing Bool32
	ShaderSampledImageArrayDynamicIndexing Bool32
	ShaderStorageBufferArrayDynamicIndexing Bool32
	ShaderStorageImageArrayDynamicIndexing Bool32
	ShaderClipDistance Bool32
	ShaderCullDistance Bool32
	ShaderFloat64 Bool32
	ShaderInt64 Bool32
	ShaderInt16 Bool32
	ShaderResourceResidency Bool32
	ShaderResourceMinLod Bool32
	SparseBinding Bool32
	SparseResidencyBuffer Bool32
	SparseResidencyImage2D Bool32
	SparseResidencyImage3D Bool32
	SparseResidency2Samples Bool32
	SparseResidency4Samples Bool32
	SparseResidency8Samples Bool32
	SparseResidency16Samples Bool32
	SparseResidencyAliased Bool32
	VariableMultisampleRate Bool32
	InheritedQueries Bool32
}

type DeviceCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	QueueCreateInfoCount    uint32
	PQueueCreateInfos       *DeviceQueueCreateInfo
	EnabledLayerCount       uint32
	PpEnabledLayerNames     **byte
	EnabledExtensionCount   uint32
	PpEnabledExtensionNames **byte
	PEnabledFeatures        *PhysicalDeviceFeatures
}

type MemoryAllocateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	AllocationSize  DeviceSize
	MemoryTypeIndex uint32
}

type MemoryRequirements struct {
	Size           DeviceSize
	Alignment      DeviceSize
	MemoryTypeBits uint32
}

type MemoryRequirements2 struct {
	SType              StructureType
	PNext              unsafe.Pointer
	MemoryRequirements MemoryRequirements
}

type MemoryType struct {
	PropertyFlags MemoryPropertyFlags
	HeapIndex     uint32
}

type MemoryHeap struct {
	Size  DeviceSize
	Flags MemoryHeapFlags
}

type PhysicalDeviceMemoryProperties struct {
	MemoryTypeCount uint32
	MemoryTypes     [32]MemoryType
	MemoryHeapCount uint32
	MemoryHeaps     [16]MemoryHeap
}

type PhysicalDeviceLimits struct {
	MaxImageDimension1D uint32
	MaxImageDimension2D uint32
	MaxImageDimension3D uint32
	MaxImageDimensionCube uint32
	MaxImageArrayLayers uint32
	MaxUniformBufferRange uint32
	MaxStorageBufferRange uint32
	MaxPushConstantsSize uint32
	MaxMemoryAllocationCount uint32
	MaxSamplerAllocationCount uint32
	BufferImageGranularity DeviceSize
	MaxBoundDescriptorSets uint32
	MaxPerStageDescriptorSamplers uint32
	MaxPerStageDescriptorUniformBuffers uint32
	MaxPerStageDescriptorStorageBuffers uint32
	MaxPerStageDescriptorSampledImages uint32
	MaxPerStageDescriptorStorageImages uint32
	MaxColorAttachments uint32
	MaxViewports uint32
	MaxViewportDimensions [2]uint32
	MinMemoryMapAlignment uintptr
	MinUniformBufferOffsetAlignment DeviceSize
	MinStorageBufferOffsetAlignment DeviceSize
	MaxVertexInputAttributes uint32
	MaxVertexInputBindings uint32
	MaxComputeWorkGroupCount [3]uint32
	MaxComputeWorkGroupInvocations uint32
	MaxComputeWorkGroupSize [3]uint32
	TimestampComputeAndGraphics Bool32
	TimestampPeriod float32
	FramebufferColorSampleCounts SampleCountFlagBits
	FramebufferDepthSampleCounts SampleCountFlagBits
}

type PhysicalDeviceProperties struct {
	ApiVersion        uint32
	DriverVersion     uint32
	VendorID          uint32
	DeviceID          uint32
	DeviceType        PhysicalDeviceType
	DeviceName        [256]byte
	PipelineCacheUUID [16]byte
	Limits            PhysicalDeviceLimits
}

type QueueFamilyProperties struct {
	QueueFlags                  QueueFlags
	QueueCount                  uint32
	TimestampValidBits          uint32
	MinImageTransferGranularity Extent3D
}

// --- Buffers / images ---

type BufferCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Size                  DeviceSize
	Usage                 BufferUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
}

type BufferViewCreateInfo struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	Buffer Buffer
	Format Format
	Offset DeviceSize
	Range  DeviceSize
}

type ImageCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 ImageCreateFlags
	ImageType             ImageType
	Format                Format
	Extent                Extent3D
	MipLevels             uint32
	ArrayLayers           uint32
	Samples               SampleCountFlagBits
	Tiling                ImageTiling
	Usage                 ImageUsageFlags
	SharingMode           SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	InitialLayout         ImageLayout
}

type ImageSubresourceRange struct {
	AspectMask     ImageAspectFlags
	BaseMipLevel   uint32
	LevelCount     uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageSubresourceLayers struct {
	AspectMask     ImageAspectFlags
	MipLevel       uint32
	BaseArrayLayer uint32
	LayerCount     uint32
}

type ImageViewCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	Image            Image
	ViewType         ImageViewType
	Format           Format
	Components       ComponentMapping
	SubresourceRange ImageSubresourceRange
}

// --- Shaders / pipelines ---

type ShaderModuleCreateInfo struct {
	SType    StructureType
	PNext    unsafe.Pointer
	Flags    uint32
	CodeSize uintptr
	PCode    *uint32
}

type SpecializationMapEntry struct {
	ConstantID uint32
	Offset     uint32
	Size       uintptr
}

type SpecializationInfo struct {
	MapEntryCount uint32
	PMapEntries   *SpecializationMapEntry
	DataSize      uintptr
	PData         unsafe.Pointer
}

type PipelineShaderStageCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	Stage               ShaderStageFlags
	Module              ShaderModule
	PName               *byte
	PSpecializationInfo *SpecializationInfo
}

type VertexInputBindingDescription struct {
	Binding   uint32
	Stride    uint32
	InputRate VertexInputRate
}

type VertexInputAttributeDescription struct {
	Location uint32
	Binding  uint32
	Format   Format
	Offset   uint32
}

type PipelineVertexInputStateCreateInfo struct {
	SType                           StructureType
	PNext                           unsafe.Pointer
	Flags                           uint32
	VertexBindingDescriptionCount   uint32
	PVertexBindingDescriptions      *VertexInputBindingDescription
	VertexAttributeDescriptionCount uint32
	PVertexAttributeDescriptions    *VertexInputAttributeDescription
}

type PipelineInputAssemblyStateCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	Topology               PrimitiveTopology
	PrimitiveRestartEnable Bool32
}

type PipelineViewportStateCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         uint32
	ViewportCount uint32
	PViewports    *Viewport
	ScissorCount  uint32
	PScissors     *Rect2D
}

type PipelineRasterizationStateCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	DepthClampEnable        Bool32
	RasterizerDiscardEnable Bool32
	PolygonMode             PolygonMode
	CullMode                CullModeFlags
	FrontFace               FrontFace
	DepthBiasEnable         Bool32
	DepthBiasConstantFactor float32
	DepthBiasClamp          float32
	DepthBiasSlopeFactor    float32
	LineWidth               float32
}

type PipelineMultisampleStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	RasterizationSamples  SampleCountFlagBits
	SampleShadingEnable   Bool32
	MinSampleShading      float32
	PSampleMask           *SampleMask
	AlphaToCoverageEnable Bool32
	AlphaToOneEnable      Bool32
}

type StencilOpState struct {
	FailOp      StencilOp
	PassOp      StencilOp
	DepthFailOp StencilOp
	CompareOp   CompareOp
	CompareMask uint32
	WriteMask   uint32
	Reference   uint32
}

type PipelineDepthStencilStateCreateInfo struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	DepthTestEnable       Bool32
	DepthWriteEnable      Bool32
	DepthCompareOp        CompareOp
	DepthBoundsTestEnable Bool32
	StencilTestEnable     Bool32
	Front                 StencilOpState
	Back                  StencilOpState
	MinDepthBounds        float32
	MaxDepthBounds        float32
}

type PipelineColorBlendAttachmentState struct {
	BlendEnable         Bool32
	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp
	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp
	ColorWriteMask      ColorComponentFlags
}

type PipelineColorBlendStateCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	LogicOpEnable   Bool32
	LogicOp         uint32
	AttachmentCount uint32
	PAttachments    *PipelineColorBlendAttachmentState
	BlendConstants  [4]float32
}

type PipelineDynamicStateCreateInfo struct {
	SType             StructureType
	PNext             unsafe.Pointer
	Flags             uint32
	DynamicStateCount uint32
	PDynamicStates    *DynamicState
}

type GraphicsPipelineCreateInfo struct {
	SType               StructureType
	PNext               unsafe.Pointer
	Flags               uint32
	StageCount          uint32
	PStages             *PipelineShaderStageCreateInfo
	PVertexInputState   *PipelineVertexInputStateCreateInfo
	PInputAssemblyState *PipelineInputAssemblyStateCreateInfo
	PTessellationState  unsafe.Pointer
	PViewportState      *PipelineViewportStateCreateInfo
	PRasterizationState *PipelineRasterizationStateCreateInfo
	PMultisampleState   *PipelineMultisampleStateCreateInfo
	PDepthStencilState  *PipelineDepthStencilStateCreateInfo
	PColorBlendState    *PipelineColorBlendStateCreateInfo
	PDynamicState       *PipelineDynamicStateCreateInfo
	Layout              PipelineLayout
	RenderPass          RenderPass
	Subpass             uint32
	BasePipelineHandle  Pipeline
	BasePipelineIndex   int32
}

type ComputePipelineCreateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	Flags              uint32
	Stage              PipelineShaderStageCreateInfo
	Layout             PipelineLayout
	BasePipelineHandle Pipeline
	BasePipelineIndex  int32
}

type PushConstantRange struct {
	StageFlags ShaderStageFlags
	Offset     uint32
	Size       uint32
}

type PipelineLayoutCreateInfo struct {
	SType                  StructureType
	PNext                  unsafe.Pointer
	Flags                  uint32
	SetLayoutCount         uint32
	PSetLayouts            *DescriptorSetLayout
	PushConstantRangeCount uint32
	PPushConstantRanges    *PushConstantRange
}

type SamplerCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	Flags                   uint32
	MagFilter               Filter
	MinFilter               Filter
	MipmapMode              SamplerMipmapMode
	AddressModeU            SamplerAddressMode
	AddressModeV            SamplerAddressMode
	AddressModeW            SamplerAddressMode
	MipLodBias              float32
	AnisotropyEnable        Bool32
	MaxAnisotropy           float32
	CompareEnable           Bool32
	CompareOp               CompareOp
	MinLod                  float32
	MaxLod                  float32
	BorderColor             BorderColor
	UnnormalizedCoordinates Bool32
}

// --- Descriptors ---

type DescriptorSetLayoutBinding struct {
	Binding            uint32
	DescriptorType     DescriptorType
	DescriptorCount    uint32
	StageFlags         ShaderStageFlags
	PImmutableSamplers *Sampler
}

type DescriptorSetLayoutCreateInfo struct {
	SType        StructureType
	PNext        unsafe.Pointer
	Flags        uint32
	BindingCount uint32
	PBindings    *DescriptorSetLayoutBinding
}

type DescriptorPoolSize struct {
	Type            DescriptorType
	DescriptorCount uint32
}

type DescriptorPoolCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	Flags         DescriptorPoolCreateFlags
	MaxSets       uint32
	PoolSizeCount uint32
	PPoolSizes    *DescriptorPoolSize
}

type DescriptorSetAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	DescriptorPool     DescriptorPool
	DescriptorSetCount uint32
	PSetLayouts        *DescriptorSetLayout
}

type DescriptorImageInfo struct {
	Sampler     Sampler
	ImageView   ImageView
	ImageLayout ImageLayout
}

type DescriptorBufferInfo struct {
	Buffer Buffer
	Offset DeviceSize
	Range  DeviceSize
}

type WriteDescriptorSet struct {
	SType            StructureType
	PNext            unsafe.Pointer
	DstSet           DescriptorSet
	DstBinding       uint32
	DstArrayElement  uint32
	DescriptorCount  uint32
	DescriptorType   DescriptorType
	PImageInfo       *DescriptorImageInfo
	PBufferInfo      *DescriptorBufferInfo
	PTexelBufferView *BufferView
}

type CopyDescriptorSet struct {
	SType           StructureType
	PNext           unsafe.Pointer
	SrcSet          DescriptorSet
	SrcBinding      uint32
	SrcArrayElement uint32
	DstSet          DescriptorSet
	DstBinding      uint32
	DstArrayElement uint32
	DescriptorCount uint32
}

// --- Render passes / framebuffers ---

type AttachmentDescription struct {
	Flags          uint32
	Format         Format
	Samples        SampleCountFlagBits
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment uint32
	Layout     ImageLayout
}

type SubpassDescription struct {
	Flags                   uint32
	PipelineBindPoint       PipelineBindPoint
	InputAttachmentCount    uint32
	PInputAttachments       *AttachmentReference
	ColorAttachmentCount    uint32
	PColorAttachments       *AttachmentReference
	PResolveAttachments     *AttachmentReference
	PDepthStencilAttachment *AttachmentReference
	PreserveAttachmentCount uint32
	PPreserveAttachments    *uint32
}

type SubpassDependency struct {
	SrcSubpass      uint32
	DstSubpass      uint32
	SrcStageMask    PipelineStageFlags
	DstStageMask    PipelineStageFlags
	SrcAccessMask   AccessFlags
	DstAccessMask   AccessFlags
	DependencyFlags DependencyFlags
}

type RenderPassCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	AttachmentCount uint32
	PAttachments    *AttachmentDescription
	SubpassCount    uint32
	PSubpasses      *SubpassDescription
	DependencyCount uint32
	PDependencies   *SubpassDependency
}

type FramebufferCreateInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	RenderPass      RenderPass
	AttachmentCount uint32
	PAttachments    *ImageView
	Width           uint32
	Height          uint32
	Layers          uint32
}

// --- Command pools / buffers ---

type CommandPoolCreateInfo struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            CommandPoolCreateFlags
	QueueFamilyIndex uint32
}

type CommandBufferAllocateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	CommandPool        CommandPool
	Level              CommandBufferLevel
	CommandBufferCount uint32
}

type CommandBufferInheritanceInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	RenderPass           RenderPass
	Subpass              uint32
	Framebuffer          Framebuffer
	OcclusionQueryEnable Bool32
	QueryFlags           uint32
	PipelineStatistics   uint32
}

type CommandBufferBeginInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           CommandBufferUsageFlags
	PInheritanceInfo *CommandBufferInheritanceInfo
}

// SubpassContents selects whether a render pass's commands are recorded
// inline or deferred into secondary command buffers.
type SubpassContents uint32

const (
	SubpassContentsInline                  SubpassContents = 0
	SubpassContentsSecondaryCommandBuffers SubpassContents = 1
)

type RenderPassBeginInfo struct {
	SType           StructureType
	PNext           unsafe.Pointer
	RenderPass      RenderPass
	Framebuffer     Framebuffer
	RenderArea      Rect2D
	ClearValueCount uint32
	PClearValues    *ClearValue
}

// --- Copy / clear / barriers ---

type BufferCopy struct {
	SrcOffset DeviceSize
	DstOffset DeviceSize
	Size      DeviceSize
}

type ImageCopy struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffset      Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffset      Offset3D
	Extent         Extent3D
}

type BufferImageCopy struct {
	BufferOffset      DeviceSize
	BufferRowLength   uint32
	BufferImageHeight uint32
	ImageSubresource  ImageSubresourceLayers
	ImageOffset       Offset3D
	ImageExtent       Extent3D
}

type ImageBlit struct {
	SrcSubresource ImageSubresourceLayers
	SrcOffsets     [2]Offset3D
	DstSubresource ImageSubresourceLayers
	DstOffsets     [2]Offset3D
}

type ClearValue [16]byte

type ClearAttachment struct {
	AspectMask      ImageAspectFlags
	ColorAttachment uint32
	ClearValue      ClearValue
}

type ClearRect struct {
	Rect           Rect2D
	BaseArrayLayer uint32
	LayerCount     uint32
}

type MemoryBarrier struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SrcAccessMask AccessFlags
	DstAccessMask AccessFlags
}

type BufferMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Buffer              Buffer
	Offset              DeviceSize
	Size                DeviceSize
}

type ImageMemoryBarrier struct {
	SType               StructureType
	PNext               unsafe.Pointer
	SrcAccessMask       AccessFlags
	DstAccessMask       AccessFlags
	OldLayout           ImageLayout
	NewLayout           ImageLayout
	SrcQueueFamilyIndex uint32
	DstQueueFamilyIndex uint32
	Image               Image
	SubresourceRange    ImageSubresourceRange
}

// --- Submission / synchronization ---

type SubmitInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	WaitSemaphoreCount   uint32
	PWaitSemaphores      *Semaphore
	PWaitDstStageMask    *PipelineStageFlags
	CommandBufferCount   uint32
	PCommandBuffers      *CommandBuffer
	SignalSemaphoreCount uint32
	PSignalSemaphores    *Semaphore
}

type FenceCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

const FenceCreateSignaledBit uint32 = 0x01

type SemaphoreCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

type SemaphoreTypeCreateInfo struct {
	SType         StructureType
	PNext         unsafe.Pointer
	SemaphoreType SemaphoreType
	InitialValue  uint64
}

type SemaphoreWaitInfo struct {
	SType          StructureType
	PNext          unsafe.Pointer
	Flags          uint32
	SemaphoreCount uint32
	PSemaphores    *Semaphore
	PValues        *uint64
}

type TimelineSemaphoreSubmitInfo struct {
	SType                     StructureType
	PNext                     unsafe.Pointer
	WaitSemaphoreValueCount   uint32
	PWaitSemaphoreValues      *uint64
	SignalSemaphoreValueCount uint32
	PSignalSemaphoreValues    *uint64
}

type EventCreateInfo struct {
	SType StructureType
	PNext unsafe.Pointer
	Flags uint32
}

type QueryPoolCreateInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	Flags              uint32
	QueryType          QueryType
	QueryCount         uint32
	PipelineStatistics uint32
}

// --- WSI / surfaces ---

type SurfaceCapabilitiesKHR struct {
	MinImageCount           uint32
	MaxImageCount           uint32
	CurrentExtent           Extent2D
	MinImageExtent          Extent2D
	MaxImageExtent          Extent2D
	MaxImageArrayLayers     uint32
	SupportedTransforms     SurfaceTransformFlagsKHR
	CurrentTransform        SurfaceTransformFlagsKHR
	SupportedCompositeAlpha CompositeAlphaFlagsKHR
	SupportedUsageFlags     ImageUsageFlags
}

type SurfaceFormatKHR struct {
	Format     Format
	ColorSpace ColorSpaceKHR
}

type SwapchainCreateInfoKHR struct {
	SType                 StructureType
	PNext                 unsafe.Pointer
	Flags                 uint32
	Surface               SurfaceKHR
	MinImageCount         uint32
	ImageFormat           Format
	ImageColorSpace       ColorSpaceKHR
	ImageExtent           Extent2D
	ImageArrayLayers      uint32
	ImageUsage            ImageUsageFlags
	ImageSharingMode      SharingMode
	QueueFamilyIndexCount uint32
	PQueueFamilyIndices   *uint32
	PreTransform          SurfaceTransformFlagsKHR
	CompositeAlpha        CompositeAlphaFlagsKHR
	PresentMode           PresentModeKHR
	Clipped               Bool32
	OldSwapchain          SwapchainKHR
}

type PresentInfoKHR struct {
	SType              StructureType
	PNext              unsafe.Pointer
	WaitSemaphoreCount uint32
	PWaitSemaphores    *Semaphore
	SwapchainCount     uint32
	PSwapchains        *SwapchainKHR
	PImageIndices      *uint32
	PResults           *Result
}

type Win32SurfaceCreateInfoKHR struct {
	SType     StructureType
	PNext     unsafe.Pointer
	Flags     uint32
	Hinstance unsafe.Pointer
	Hwnd      unsafe.Pointer
}

type XlibSurfaceCreateInfoKHR struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	Dpy    unsafe.Pointer
	Window XlibWindow
}

type WaylandSurfaceCreateInfoKHR struct {
	SType   StructureType
	PNext   unsafe.Pointer
	Flags   uint32
	Display unsafe.Pointer
	Surface unsafe.Pointer
}

type MetalSurfaceCreateInfoEXT struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Flags  uint32
	PLayer *CAMetalLayer
}

// --- Debug utils ---

type DebugUtilsObjectNameInfoEXT struct {
	SType        StructureType
	PNext        unsafe.Pointer
	ObjectType   ObjectType
	ObjectHandle uint64
	PObjectName  *byte
}

type DebugUtilsLabelEXT struct {
	SType      StructureType
	PNext      unsafe.Pointer
	PLabelName *byte
	Color      [4]float32
}

type DebugUtilsMessengerCallbackDataEXT struct {
	SType            StructureType
	PNext            unsafe.Pointer
	Flags            uint32
	PMessageIdName   *byte
	MessageIdNumber  int32
	PMessage         *byte
	QueueLabelCount  uint32
	PQueueLabels     *DebugUtilsLabelEXT
	CmdBufLabelCount uint32
	PCmdBufLabels    *DebugUtilsLabelEXT
	ObjectCount      uint32
	PObjects         *DebugUtilsObjectNameInfoEXT
}

type DebugUtilsMessengerCreateInfoEXT struct {
	SType           StructureType
	PNext           unsafe.Pointer
	Flags           uint32
	MessageSeverity DebugUtilsMessageSeverityFlagsEXT
	MessageType     DebugUtilsMessageTypeFlagsEXT
	PfnUserCallback uintptr
	PUserData       unsafe.Pointer
}

// --- Dynamic rendering (VK_KHR_dynamic_rendering / 1.3 core) ---

type RenderingAttachmentInfo struct {
	SType              StructureType
	PNext              unsafe.Pointer
	ImageView          ImageView
	ImageLayout        ImageLayout
	ResolveMode        ResolveModeFlags
	ResolveImageView   ImageView
	ResolveImageLayout ImageLayout
	LoadOp             AttachmentLoadOp
	StoreOp            AttachmentStoreOp
	ClearValue         ClearValue
}

type RenderingInfo struct {
	SType                StructureType
	PNext                unsafe.Pointer
	Flags                uint32
	RenderArea           Rect2D
	LayerCount           uint32
	ViewMask             uint32
	ColorAttachmentCount uint32
	PColorAttachments    *RenderingAttachmentInfo
	PDepthAttachment     *RenderingAttachmentInfo
	PStencilAttachment   *RenderingAttachmentInfo
}

type PipelineRenderingCreateInfo struct {
	SType                   StructureType
	PNext                   unsafe.Pointer
	ViewMask                uint32
	ColorAttachmentCount    uint32
	PColorAttachmentFormats *Format
	DepthAttachmentFormat   Format
	StencilAttachmentFormat Format
}

// ClearValueColor/ClearValueDepthStencil constructors and ClearValue
// accessors live in const_ext.go.

// AllocationCallbacks mirrors VkAllocationCallbacks. The backend never
// installs custom host allocation callbacks, so every call site passes
// a nil *AllocationCallbacks and the driver's default allocator is used.
type AllocationCallbacks struct {
	PUserData             unsafe.Pointer
	PfnAllocation         uintptr
	PfnReallocation       uintptr
	PfnFree               uintptr
	PfnInternalAllocation uintptr
	PfnInternalFree       uintptr
}

type MemoryMapFlags uint32

type MappedMemoryRange struct {
	SType  StructureType
	PNext  unsafe.Pointer
	Memory DeviceMemory
	Offset DeviceSize
	Size   DeviceSize
}
