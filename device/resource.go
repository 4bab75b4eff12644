package device

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// RawBuffer is a buffer together with the allocation backing it. It is exclusively owned: Destroy
// releases both exactly once and leaves the RawBuffer empty.
type RawBuffer struct {
	buffer     core1_0.Buffer
	allocation Allocation
	size       int
	mapped     unsafe.Pointer
}

// Initialized returns false for an empty or destroyed buffer
func (b *RawBuffer) Initialized() bool {
	return b != nil && b.allocation != nil
}

func (b *RawBuffer) Handle() core1_0.Buffer {
	return b.buffer
}

// Size is the size in bytes requested when the buffer was created
func (b *RawBuffer) Size() int {
	return b.size
}

// AllocationSize is the size of the memory backing the buffer, which may exceed Size
func (b *RawBuffer) AllocationSize() int {
	if b.allocation == nil {
		return 0
	}
	return b.allocation.Size()
}

// Mapped returns the persistent mapping for buffers created with AllocationMapped, or nil
func (b *RawBuffer) Mapped() unsafe.Pointer {
	return b.mapped
}

// Write copies data into the buffer at offset and flushes the written range. Buffers that are not
// persistently mapped are mapped for the duration of the call.
func (b *RawBuffer) Write(data []byte, offset int) error {
	if !b.Initialized() {
		return errors.New("attempted to write to an uninitialized buffer")
	}
	if offset < 0 || offset+len(data) > b.size {
		return errors.Newf("write of %d bytes at offset %d overflows buffer of size %d", len(data), offset, b.size)
	}
	if len(data) == 0 {
		return nil
	}

	ptr := b.mapped
	if ptr == nil {
		var err error
		ptr, _, err = b.allocation.Map()
		if err != nil {
			return errors.Wrap(err, "failed to map buffer memory")
		}
		defer func() {
			_ = b.allocation.Unmap()
		}()
	}

	copy(unsafe.Slice((*byte)(ptr), b.size)[offset:], data)

	_, err := b.allocation.Flush(offset, len(data))
	if err != nil {
		return errors.Wrap(err, "failed to flush buffer memory")
	}

	return nil
}

// Destroy releases the buffer and its memory. It is a no-op on an empty buffer.
func (b *RawBuffer) Destroy() error {
	if !b.Initialized() {
		return nil
	}

	if b.mapped != nil {
		err := b.allocation.Unmap()
		if err != nil {
			return err
		}
	}

	err := b.allocation.DestroyBuffer(b.buffer)
	*b = RawBuffer{}
	return err
}

// RawImage is an image together with the allocation backing it
type RawImage struct {
	image      core1_0.Image
	allocation Allocation
	format     core1_0.Format
	extent     core1_0.Extent2D
}

func (i *RawImage) Initialized() bool {
	return i != nil && i.allocation != nil
}

func (i *RawImage) Handle() core1_0.Image {
	return i.image
}

func (i *RawImage) Format() core1_0.Format {
	return i.format
}

func (i *RawImage) Extent() core1_0.Extent2D {
	return i.extent
}

func (i *RawImage) Size() int {
	if i.allocation == nil {
		return 0
	}
	return i.allocation.Size()
}

// Destroy releases the image and its memory. It is a no-op on an empty image.
func (i *RawImage) Destroy() error {
	if !i.Initialized() {
		return nil
	}

	err := i.allocation.DestroyImage(i.image)
	*i = RawImage{}
	return err
}

// ImageOptions describe a 2D image created by Device.CreateImage
type ImageOptions struct {
	Format core1_0.Format
	Extent core1_0.Extent2D
	Usage  core1_0.ImageUsageFlags
	// MipLevels defaults to 1
	MipLevels int
	// Samples defaults to core1_0.Samples1
	Samples core1_0.SampleCountFlags
	// Tiling defaults to core1_0.ImageTilingOptimal
	Tiling core1_0.ImageTiling
}

func (o ImageOptions) createInfo() core1_0.ImageCreateInfo {
	info := core1_0.ImageCreateInfo{
		ImageType: core1_0.ImageType2D,
		Format:    o.Format,
		Extent: core1_0.Extent3D{
			Width:  o.Extent.Width,
			Height: o.Extent.Height,
			Depth:  1,
		},
		MipLevels:     o.MipLevels,
		ArrayLayers:   1,
		Samples:       o.Samples,
		Tiling:        o.Tiling,
		Usage:         o.Usage,
		SharingMode:   core1_0.SharingModeExclusive,
		InitialLayout: core1_0.ImageLayoutUndefined,
	}

	if info.MipLevels == 0 {
		info.MipLevels = 1
	}
	if info.Samples == 0 {
		info.Samples = core1_0.Samples1
	}

	return info
}
