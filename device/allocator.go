package device

import (
	"log/slog"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/vam"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// Allocation is the memory backing a single RawBuffer or RawImage. *vam.Allocation satisfies it.
type Allocation interface {
	Size() int
	Map() (unsafe.Pointer, common.VkResult, error)
	Unmap() error
	Flush(offset, size int) (common.VkResult, error)
	DestroyBuffer(buffer core1_0.Buffer) error
	DestroyImage(image core1_0.Image) error
}

// MemoryAllocator creates resources together with the memory bound to them
type MemoryAllocator interface {
	CreateBuffer(info core1_0.BufferCreateInfo, usage MemoryUsage, flags AllocationFlags) (core1_0.Buffer, Allocation, error)
	CreateImage(info core1_0.ImageCreateInfo, usage MemoryUsage, flags AllocationFlags) (core1_0.Image, Allocation, error)
	Destroy() error
}

// AllocatorFactory builds the MemoryAllocator for a freshly created logical device
type AllocatorFactory func(logger *slog.Logger, instanceDriver core1_0.CoreInstanceDriver, driver core1_0.CoreDeviceDriver, physicalDevice core1_0.PhysicalDevice, flags CreateFlags) (MemoryAllocator, error)

type vamAllocator struct {
	allocator *vam.Allocator
}

// NewVAMAllocator is the default AllocatorFactory. It wraps a vam.Allocator created for the device.
func NewVAMAllocator(logger *slog.Logger, instanceDriver core1_0.CoreInstanceDriver, driver core1_0.CoreDeviceDriver, physicalDevice core1_0.PhysicalDevice, flags CreateFlags) (MemoryAllocator, error) {
	var options vam.CreateOptions
	if flags&DeviceCreateExternallySynchronized != 0 {
		options.Flags |= vam.AllocatorCreateExternallySynchronized
	}

	allocator, err := vam.New(logger, instanceDriver.Instance(), physicalDevice, driver.Device(), options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create memory allocator")
	}

	return &vamAllocator{allocator: allocator}, nil
}

func (a *vamAllocator) createInfo(usage MemoryUsage, flags AllocationFlags) vam.AllocationCreateInfo {
	return vam.AllocationCreateInfo{
		Usage: usage.vamUsage(),
		Flags: flags.vamFlags(),
	}
}

func (a *vamAllocator) CreateBuffer(info core1_0.BufferCreateInfo, usage MemoryUsage, flags AllocationFlags) (core1_0.Buffer, Allocation, error) {
	allocation := &vam.Allocation{}
	buffer, _, err := a.allocator.CreateBuffer(info, a.createInfo(usage, flags), allocation)
	if err != nil {
		return core1_0.Buffer{}, nil, err
	}

	return buffer, allocation, nil
}

func (a *vamAllocator) CreateImage(info core1_0.ImageCreateInfo, usage MemoryUsage, flags AllocationFlags) (core1_0.Image, Allocation, error) {
	allocation := &vam.Allocation{}
	image, _, err := a.allocator.CreateImage(info, a.createInfo(usage, flags), allocation)
	if err != nil {
		return core1_0.Image{}, nil, err
	}

	return image, allocation, nil
}

func (a *vamAllocator) Destroy() error {
	return a.allocator.Destroy()
}
