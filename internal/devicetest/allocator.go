package devicetest

import (
	"log/slog"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/easel/device"
)

// FakeAllocator is a device.MemoryAllocator backed by host memory. Every buffer it creates can be
// mapped and written.
type FakeAllocator struct {
	device core1_0.Device

	// Err is returned from every create call while it is set
	Err error

	Buffers     []*FakeAllocation
	Images      []*FakeAllocation
	BufferInfos []core1_0.BufferCreateInfo
	ImageInfos  []core1_0.ImageCreateInfo
	Usages      []device.MemoryUsage
	Flags       []device.AllocationFlags
	Destroyed   bool
}

func NewFakeAllocator(vkDevice core1_0.Device) *FakeAllocator {
	return &FakeAllocator{device: vkDevice}
}

// Factory returns a device.AllocatorFactory that hands out this allocator
func (a *FakeAllocator) Factory() device.AllocatorFactory {
	return func(_ *slog.Logger, _ core1_0.CoreInstanceDriver, _ core1_0.CoreDeviceDriver, _ core1_0.PhysicalDevice, _ device.CreateFlags) (device.MemoryAllocator, error) {
		return a, nil
	}
}

func (a *FakeAllocator) CreateBuffer(info core1_0.BufferCreateInfo, usage device.MemoryUsage, flags device.AllocationFlags) (core1_0.Buffer, device.Allocation, error) {
	if a.Err != nil {
		return core1_0.Buffer{}, nil, a.Err
	}

	allocation := &FakeAllocation{Data: make([]byte, info.Size)}
	a.Buffers = append(a.Buffers, allocation)
	a.BufferInfos = append(a.BufferInfos, info)
	a.Usages = append(a.Usages, usage)
	a.Flags = append(a.Flags, flags)

	return mocks.NewDummyBuffer(a.device), allocation, nil
}

func (a *FakeAllocator) CreateImage(info core1_0.ImageCreateInfo, usage device.MemoryUsage, flags device.AllocationFlags) (core1_0.Image, device.Allocation, error) {
	if a.Err != nil {
		return core1_0.Image{}, nil, a.Err
	}

	allocation := &FakeAllocation{Data: make([]byte, info.Extent.Width*info.Extent.Height*4)}
	a.Images = append(a.Images, allocation)
	a.ImageInfos = append(a.ImageInfos, info)
	a.Usages = append(a.Usages, usage)
	a.Flags = append(a.Flags, flags)

	return mocks.NewDummyImage(a.device), allocation, nil
}

func (a *FakeAllocator) Destroy() error {
	if a.Destroyed {
		return errors.New("allocator destroyed twice")
	}
	a.Destroyed = true
	return nil
}

// FakeAllocation is a device.Allocation over a byte slice
type FakeAllocation struct {
	Data []byte

	MapCount   int
	UnmapCount int
	Flushes    [][2]int
	Destroyed  int
}

func (a *FakeAllocation) Size() int {
	return len(a.Data)
}

func (a *FakeAllocation) Map() (unsafe.Pointer, common.VkResult, error) {
	a.MapCount++
	return unsafe.Pointer(unsafe.SliceData(a.Data)), core1_0.VKSuccess, nil
}

func (a *FakeAllocation) Unmap() error {
	if a.UnmapCount >= a.MapCount {
		return errors.New("unmapped an allocation that was not mapped")
	}
	a.UnmapCount++
	return nil
}

func (a *FakeAllocation) Flush(offset, size int) (common.VkResult, error) {
	a.Flushes = append(a.Flushes, [2]int{offset, size})
	return core1_0.VKSuccess, nil
}

func (a *FakeAllocation) DestroyBuffer(buffer core1_0.Buffer) error {
	a.Destroyed++
	return nil
}

func (a *FakeAllocation) DestroyImage(image core1_0.Image) error {
	a.Destroyed++
	return nil
}
