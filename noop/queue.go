package noop

import (
	"github.com/gorhi/rhi"
	"github.com/gorhi/rhi/types"
)

// Queue implements rhi.Queue for the noop backend.
type Queue struct{}

// Submit simulates command buffer submission.
// If a fence is provided, it is signaled with the given value.
func (q *Queue) Submit(_ []rhi.CommandBuffer, fence rhi.Fence, fenceValue uint64) error {
	if fence != nil {
		if f, ok := fence.(*Fence); ok {
			f.value.Store(fenceValue)
		}
	}
	return nil
}

// WriteBuffer simulates immediate buffer writes.
// If the buffer has storage, copies data to it.
func (q *Queue) WriteBuffer(buffer rhi.Buffer, offset uint64, data []byte) error {
	if b, ok := buffer.(*Buffer); ok && b.data != nil {
		copy(b.data[offset:], data)
	}
	return nil
}

// ReadBuffer simulates immediate buffer reads.
// If the buffer has storage, copies data out of it; otherwise data is left zeroed.
func (q *Queue) ReadBuffer(buffer rhi.Buffer, offset uint64, data []byte) error {
	if b, ok := buffer.(*Buffer); ok && b.data != nil {
		copy(data, b.data[offset:])
	}
	return nil
}

// WriteTexture simulates immediate texture writes.
// This is a no-op since textures don't store data.
func (q *Queue) WriteTexture(_ *rhi.ImageCopyTexture, _ []byte, _ *rhi.ImageDataLayout, _ *types.Extent3D) {
}

// Present simulates surface presentation.
// Always succeeds.
func (q *Queue) Present(_ rhi.Surface, _ rhi.SurfaceTexture) error {
	return nil
}

// GetTimestampPeriod returns 1.0 nanosecond timestamp period.
func (q *Queue) GetTimestampPeriod() float32 {
	return 1.0
}
