package rhi

import "time"

// Resource is the base interface for all GPU resources.
// Resources must be explicitly destroyed to free GPU memory.
type Resource interface {
	// Destroy releases the GPU resource.
	// After this call, the resource must not be used.
	// Calling Destroy multiple times is undefined behavior.
	Destroy()
}

// Buffer represents a GPU buffer.
// Buffers are contiguous memory regions accessible by the GPU.
type Buffer interface {
	Resource

	// State returns the buffer's current logical state, as tracked by
	// the last CommandEncoder.Transition call that targeted it.
	State() ResourceState
}

// Texture represents a GPU texture.
// Textures are multi-dimensional images with specific formats.
type Texture interface {
	Resource

	// State returns the texture's current logical state, as tracked by
	// the last CommandEncoder.Transition call that targeted it.
	State() ResourceState
}

// TextureView represents a view into a texture.
// Views specify how a texture is interpreted (format, dimensions, layers).
type TextureView interface {
	Resource
}

// Sampler represents a texture sampler.
// Samplers define how textures are filtered and addressed.
type Sampler interface {
	Resource
}

// ShaderModule represents a compiled shader module.
// Shader modules contain executable GPU code in a backend-specific format.
type ShaderModule interface {
	Resource
}

// BindGroupLayout defines the layout of a bind group.
// Layouts specify the structure of resource bindings for shaders.
type BindGroupLayout interface {
	Resource
}

// BindGroup represents bound resources.
// Bind groups associate actual resources with bind group layouts.
type BindGroup interface {
	Resource
}

// PipelineLayout defines the layout of a pipeline.
// Pipeline layouts specify the bind group layouts used by a pipeline.
type PipelineLayout interface {
	Resource

	// ObtainBindingGroup allocates one binding group (one native
	// descriptor set) from the layout's pool. Binding groups allocated
	// this way are owned by the caller and must be released with
	// Destroy.
	ObtainBindingGroup() (BindingGroup, error)
}

// RenderPipeline is a configured render pipeline.
// Render pipelines define the complete graphics pipeline state.
type RenderPipeline interface {
	Resource
}

// ComputePipeline is a configured compute pipeline.
// Compute pipelines define the compute shader and resource layout.
type ComputePipeline interface {
	Resource
}

// CommandBufferState tracks where a CommandBuffer sits in its lifecycle:
// Recording while an encoder is still filling it in, Ended once the
// encoder has finished recording, and Committed once it has been
// submitted to its owning queue.
type CommandBufferState uint32

const (
	// CommandBufferStateRecording is the state of a command buffer
	// returned by CommandEncoder.BeginEncoding, before EndEncoding.
	CommandBufferStateRecording CommandBufferState = iota

	// CommandBufferStateEnded is the state after EndEncoding and before
	// Commit/CommitAndWait.
	CommandBufferStateEnded

	// CommandBufferStateCommitted is the state after a successful
	// Commit or CommitAndWait call. A committed command buffer must not
	// be committed again.
	CommandBufferStateCommitted
)

// CommandBuffer holds recorded GPU commands.
// Command buffers progress Recording -> Ended -> Committed; Commit and
// CommitAndWait both require the Ended state.
type CommandBuffer interface {
	Resource

	// State reports where the command buffer currently sits in its
	// lifecycle.
	State() CommandBufferState

	// Present stashes a swapchain reference so that, at commit time,
	// the submission's signal semaphore chain and the subsequent
	// present call are wired to it. Present does not itself record or
	// submit anything; it only takes effect on the next Commit or
	// CommitAndWait.
	Present(swapchain Swapchain, fence Fence)

	// Commit submits the command buffer to its owning queue without
	// blocking the caller. If a present was requested via Present, the
	// submission signals the swapchain's present-ready semaphore and
	// queues the present call; fence, if non-nil, is signaled once the
	// submission completes.
	Commit(fence Fence) error

	// CommitAndWait submits the command buffer like Commit, then blocks
	// until fence is signaled (bounded by timeout) and the owning
	// queue goes idle before returning. Use this when the caller needs
	// a synchronization point with the GPU, e.g. before reading back a
	// mapped buffer.
	CommitAndWait(fence Fence, timeout time.Duration) error
}

// Fence is a GPU synchronization primitive.
// Fences allow CPU-GPU synchronization via signaled values.
type Fence interface {
	Resource
}

// Surface represents a rendering surface.
// Surfaces are platform-specific presentation targets (windows).
type Surface interface {
	Resource

	// Configure configures the surface with the given device and settings.
	// Must be called before acquiring textures.
	Configure(device Device, config *SurfaceConfiguration) error

	// Unconfigure removes the surface configuration.
	// Call before destroying the device.
	Unconfigure(device Device)

	// AcquireTexture acquires the next surface texture for rendering.
	// The texture must be presented via Queue.Present or discarded via DiscardTexture.
	// Returns ErrSurfaceOutdated if the surface needs reconfiguration.
	// Returns ErrSurfaceLost if the surface has been destroyed.
	// Returns ErrTimeout if the timeout expires before a texture is available.
	AcquireTexture(fence Fence) (*AcquiredSurfaceTexture, error)

	// DiscardTexture discards a surface texture without presenting it.
	// Use this if rendering failed or was canceled.
	DiscardTexture(texture SurfaceTexture)
}

// SurfaceTexture is a texture acquired from a surface.
// Surface textures have special lifetime constraints - they must be presented
// or discarded before the next frame.
type SurfaceTexture interface {
	Texture
}

// AcquiredSurfaceTexture bundles a surface texture with metadata.
type AcquiredSurfaceTexture struct {
	// Texture is the acquired surface texture.
	Texture SurfaceTexture

	// Suboptimal indicates the surface configuration is suboptimal but usable.
	// Consider reconfiguring the surface at a convenient time.
	Suboptimal bool
}

// Swapchain is the presentation engine connection created by
// Factory.CreateSwapchain: a ring of images acquired for rendering and
// handed back to the platform compositor via CommandBuffer.Present.
type Swapchain interface {
	Resource

	// AcquireNextImage blocks until the next image is available for
	// rendering (bounded by timeout) and returns it along with the
	// fence/semaphore handshake a CommandBuffer.Present call needs to
	// wait on before rendering to it. Returns ErrSurfaceOutdated if
	// Resize must be called before acquiring again, and ErrTimeout if
	// timeout elapses first.
	AcquireNextImage(timeout time.Duration) (*AcquiredSurfaceTexture, error)

	// Resize rebuilds the swapchain's images for a new extent, clamping
	// width/height to the surface's supported range. Any framebuffers a
	// backend cached against the swapchain's previous images are
	// invalidated.
	Resize(width, height uint32) error

	// Descriptor returns the configuration CreateSwapchain clamped the
	// swapchain to.
	Descriptor() SwapchainDescriptor
}
