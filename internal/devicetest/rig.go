// Package devicetest builds a device.Device on top of mocked drivers for use in tests
package devicetest

import (
	"io"
	"log/slog"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/loader"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/core/v3/mocks/mocks1_2"
	"github.com/vkngwrapper/easel/device"
	"go.uber.org/mock/gomock"
)

// Setup describes the physical device a Rig pretends to have
type Setup struct {
	// Families defaults to a single family supporting graphics, compute and transfer
	Families []*core1_0.QueueFamilyProperties
	// PresentSupport defaults to true for every family
	PresentSupport []bool
	// Extensions defaults to device.RequiredExtensions
	Extensions []string
	Flags      device.CreateFlags
}

// Rig holds a device.Device created against mocked drivers and the mocks behind it
type Rig struct {
	Instance       *mocks1_2.MockCoreInstanceDriver
	Driver         *mocks1_2.MockCoreDeviceDriver
	PhysicalDevice core1_0.PhysicalDevice
	VkDevice       core1_0.Device
	Allocator      *FakeAllocator

	Queues map[int]core1_0.Queue
	Pools  map[int]core1_0.CommandPool

	Device *device.Device
}

// Logger returns a logger that discards everything
func Logger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// ExtensionMap builds the result of EnumerateDeviceExtensionProperties for a list of extension names
func ExtensionMap(names ...string) map[string]*core1_0.ExtensionProperties {
	extensions := make(map[string]*core1_0.ExtensionProperties, len(names))
	for _, name := range names {
		extensions[name] = &core1_0.ExtensionProperties{ExtensionName: name}
	}
	return extensions
}

// NewMocks creates the mocked drivers and handles without creating a device
func NewMocks(ctrl *gomock.Controller, setup Setup) *Rig {
	if setup.Families == nil {
		setup.Families = []*core1_0.QueueFamilyProperties{
			{QueueFlags: core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer, QueueCount: 1},
		}
	}
	if setup.Extensions == nil {
		setup.Extensions = device.RequiredExtensions
	}

	instance := mocks.NewDummyInstance(common.Vulkan1_2, nil)
	rig := &Rig{
		Instance:       mocks1_2.NewMockCoreInstanceDriver(ctrl),
		Driver:         mocks1_2.NewMockCoreDeviceDriver(ctrl),
		PhysicalDevice: mocks.NewDummyPhysicalDevice(instance, common.Vulkan1_2),
		VkDevice:       mocks.NewDummyDevice(common.Vulkan1_2, setup.Extensions),
		Queues:         make(map[int]core1_0.Queue),
		Pools:          make(map[int]core1_0.CommandPool),
	}
	rig.Allocator = NewFakeAllocator(rig.VkDevice)

	rig.Instance.EXPECT().Instance().Return(instance).AnyTimes()
	rig.Driver.EXPECT().Device().Return(rig.VkDevice).AnyTimes()
	rig.Driver.EXPECT().InstanceDriver().Return(rig.Instance).AnyTimes()

	rig.Instance.EXPECT().EnumeratePhysicalDevices().
		Return([]core1_0.PhysicalDevice{rig.PhysicalDevice}, core1_0.VKSuccess, nil).AnyTimes()
	rig.Instance.EXPECT().EnumerateDeviceExtensionProperties(rig.PhysicalDevice).
		Return(ExtensionMap(setup.Extensions...), core1_0.VKSuccess, nil).AnyTimes()
	rig.Instance.EXPECT().GetPhysicalDeviceProperties(rig.PhysicalDevice).
		Return(&core1_0.PhysicalDeviceProperties{DeviceName: "Mock GPU"}, nil).AnyTimes()
	rig.Instance.EXPECT().GetPhysicalDeviceQueueFamilyProperties(rig.PhysicalDevice).
		Return(setup.Families).AnyTimes()

	for family := range setup.Families {
		rig.Queues[family] = mocks.NewDummyQueue(rig.VkDevice)
		rig.Pools[family] = mocks.NewDummyCommandPool(rig.VkDevice)
	}

	return rig
}

// New creates a Rig with a live device.Device
func New(t require.TestingT, ctrl *gomock.Controller, setup Setup) *Rig {
	rig := NewMocks(ctrl, setup)

	presentSupport := setup.PresentSupport
	surfaceSupport := func(physicalDevice core1_0.PhysicalDevice, family int) (bool, error) {
		if presentSupport == nil {
			return true, nil
		}
		return presentSupport[family], nil
	}

	rig.Instance.EXPECT().CreateDevice(rig.PhysicalDevice, nil, gomock.Any()).Return(rig.Driver, core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().GetQueue(gomock.Any(), 0).DoAndReturn(func(family int, index int) core1_0.Queue {
		return rig.Queues[family]
	}).AnyTimes()
	rig.Driver.EXPECT().CreateCommandPool(nil, gomock.Any()).DoAndReturn(
		func(callbacks *loader.AllocationCallbacks, info core1_0.CommandPoolCreateInfo) (core1_0.CommandPool, common.VkResult, error) {
			return rig.Pools[info.QueueFamilyIndex], core1_0.VKSuccess, nil
		}).AnyTimes()

	var err error
	rig.Device, err = device.New(Logger(), rig.Instance, surfaceSupport, device.Options{
		Flags:        setup.Flags,
		NewAllocator: rig.Allocator.Factory(),
	})
	require.NoError(t, err)

	return rig
}

// ExpectDestroy sets up the driver calls made by device.Device.Destroy
func (r *Rig) ExpectDestroy() {
	r.Driver.EXPECT().DeviceWaitIdle().Return(core1_0.VKSuccess, nil)
	r.Driver.EXPECT().DestroyCommandPool(gomock.Any(), nil).AnyTimes()
	r.Driver.EXPECT().DestroyDevice(nil)
}

// ExpectCommandBuffers expects a single allocation of count command buffers from the pool of family
// and returns the dummy buffers handed out
func (r *Rig) ExpectCommandBuffers(family int, count int) []core1_0.CommandBuffer {
	buffers := make([]core1_0.CommandBuffer, 0, count)
	for i := 0; i < count; i++ {
		buffers = append(buffers, mocks.NewDummyCommandBuffer(r.Pools[family], r.VkDevice))
	}

	r.Driver.EXPECT().AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        r.Pools[family],
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: count,
	}).Return(buffers, core1_0.VKSuccess, nil)

	return buffers
}
