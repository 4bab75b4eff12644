package device_test

import (
	"log/slog"
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/easel/device"
	"github.com/vkngwrapper/easel/internal/devicetest"
	"github.com/vkngwrapper/easel/vkext"
	"github.com/vkngwrapper/extensions/v3/ext_memory_budget"
	"github.com/vkngwrapper/extensions/v3/khr_dedicated_allocation"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	"go.uber.org/mock/gomock"
)

var threeFamilies = []*core1_0.QueueFamilyProperties{
	{QueueFlags: core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer, QueueCount: 1},
	{QueueFlags: core1_0.QueueTransfer, QueueCount: 1},
	{QueueFlags: core1_0.QueueCompute, QueueCount: 1},
}

func TestNew_QueueSelection(t *testing.T) {
	ctrl := gomock.NewController(t)

	rig := devicetest.NewMocks(ctrl, devicetest.Setup{Families: threeFamilies})

	rig.Instance.EXPECT().CreateDevice(rig.PhysicalDevice, nil, gomock.Any()).DoAndReturn(
		func(physicalDevice core1_0.PhysicalDevice, callbacks any, info core1_0.DeviceCreateInfo) (core1_0.CoreDeviceDriver, common.VkResult, error) {
			require.Equal(t, []core1_0.DeviceQueueCreateInfo{
				{QueueFamilyIndex: 0, QueuePriorities: []float32{1.0}},
				{QueueFamilyIndex: 1, QueuePriorities: []float32{1.0}},
			}, info.QueueCreateInfos)
			require.Equal(t, []string{vkext.ShaderObjectExtensionName, khr_swapchain.ExtensionName}, info.EnabledExtensionNames)
			require.Equal(t, vkext.PhysicalDeviceVulkan13Features{
				DynamicRendering: true,
				Synchronization2: true,
				NextOptions: common.NextOptions{
					Next: vkext.PhysicalDeviceShaderObjectFeatures{ShaderObject: true},
				},
			}, info.Next)
			return rig.Driver, core1_0.VKSuccess, nil
		})

	rig.Driver.EXPECT().GetQueue(0, 0).Return(rig.Queues[0]).Times(2)
	rig.Driver.EXPECT().GetQueue(1, 0).Return(rig.Queues[1])
	rig.Driver.EXPECT().CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		Flags:            core1_0.CommandPoolCreateResetBuffer,
		QueueFamilyIndex: 0,
	}).Return(rig.Pools[0], core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
		Flags:            core1_0.CommandPoolCreateResetBuffer,
		QueueFamilyIndex: 1,
	}).Return(rig.Pools[1], core1_0.VKSuccess, nil)

	dev, err := device.New(devicetest.Logger(), rig.Instance, func(physicalDevice core1_0.PhysicalDevice, family int) (bool, error) {
		return family == 0, nil
	}, device.Options{NewAllocator: rig.Allocator.Factory()})
	require.NoError(t, err)

	require.Equal(t, device.QueueFamilyIndices{Graphics: 0, Present: 0, Transfer: 1}, dev.QueueFamilies())
	require.Equal(t, rig.Queues[0], dev.Queue(device.QueueGraphics))
	require.Equal(t, rig.Queues[0], dev.Queue(device.QueuePresent))
	require.Equal(t, rig.Queues[1], dev.Queue(device.QueueTransfer))
	require.Equal(t, rig.Pools[0], dev.CommandPool(device.QueueGraphics))
	require.Equal(t, rig.Pools[1], dev.CommandPool(device.QueueTransfer))
	require.Equal(t, rig.PhysicalDevice, dev.PhysicalDevice())
	require.Equal(t, rig.Allocator, dev.Allocator())

	gomock.InOrder(
		rig.Driver.EXPECT().DeviceWaitIdle().Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().DestroyCommandPool(rig.Pools[0], nil),
		rig.Driver.EXPECT().DestroyCommandPool(rig.Pools[1], nil),
		rig.Driver.EXPECT().DestroyDevice(nil),
	)
	require.NoError(t, dev.Destroy())
	require.True(t, rig.Allocator.Destroyed)
}

func TestNew_NoSuitableDevice(t *testing.T) {
	ctrl := gomock.NewController(t)

	rig := devicetest.NewMocks(ctrl, devicetest.Setup{Extensions: []string{khr_swapchain.ExtensionName}})

	_, err := device.New(devicetest.Logger(), rig.Instance, func(core1_0.PhysicalDevice, int) (bool, error) {
		return true, nil
	}, device.Options{NewAllocator: rig.Allocator.Factory()})
	require.True(t, errors.Is(err, device.ErrNoSuitableDevice))
}

func TestNew_NoGraphicsQueue(t *testing.T) {
	ctrl := gomock.NewController(t)

	rig := devicetest.NewMocks(ctrl, devicetest.Setup{
		Families: []*core1_0.QueueFamilyProperties{
			{QueueFlags: core1_0.QueueCompute | core1_0.QueueTransfer, QueueCount: 1},
		},
	})

	// No CreateDevice expectation: construction must fail before the logical device exists
	_, err := device.New(devicetest.Logger(), rig.Instance, func(core1_0.PhysicalDevice, int) (bool, error) {
		return true, nil
	}, device.Options{NewAllocator: rig.Allocator.Factory()})
	require.True(t, errors.Is(err, device.ErrNoGraphicsQueue))
}

func TestNew_CommandPoolFailureCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)

	rig := devicetest.NewMocks(ctrl, devicetest.Setup{Families: threeFamilies})

	rig.Instance.EXPECT().CreateDevice(rig.PhysicalDevice, nil, gomock.Any()).Return(rig.Driver, core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().GetQueue(gomock.Any(), 0).Return(rig.Queues[0]).Times(3)

	rig.Driver.EXPECT().CreateCommandPool(nil, gomock.Any()).Return(rig.Pools[0], core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().CreateCommandPool(nil, gomock.Any()).
		Return(core1_0.CommandPool{}, core1_0.VKErrorOutOfDeviceMemory, core1_0.VKErrorOutOfDeviceMemory.ToError())

	rig.Driver.EXPECT().DestroyCommandPool(rig.Pools[0], nil)
	rig.Driver.EXPECT().DestroyDevice(nil)

	dev, err := device.New(devicetest.Logger(), rig.Instance, func(core1_0.PhysicalDevice, int) (bool, error) {
		return true, nil
	}, device.Options{NewAllocator: rig.Allocator.Factory()})
	require.Error(t, err)
	require.Nil(t, dev)
	require.False(t, rig.Allocator.Destroyed)
}

func TestNew_AllocatorFailureCleansUp(t *testing.T) {
	ctrl := gomock.NewController(t)

	rig := devicetest.NewMocks(ctrl, devicetest.Setup{})

	rig.Instance.EXPECT().CreateDevice(rig.PhysicalDevice, nil, gomock.Any()).Return(rig.Driver, core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().GetQueue(0, 0).Return(rig.Queues[0]).Times(3)
	rig.Driver.EXPECT().CreateCommandPool(nil, gomock.Any()).Return(rig.Pools[0], core1_0.VKSuccess, nil)

	rig.Driver.EXPECT().DestroyCommandPool(rig.Pools[0], nil)
	rig.Driver.EXPECT().DestroyDevice(nil)

	allocatorErr := errors.New("out of heaps")
	dev, err := device.New(devicetest.Logger(), rig.Instance, func(core1_0.PhysicalDevice, int) (bool, error) {
		return true, nil
	}, device.Options{
		NewAllocator: func(*slog.Logger, core1_0.CoreInstanceDriver, core1_0.CoreDeviceDriver, core1_0.PhysicalDevice, device.CreateFlags) (device.MemoryAllocator, error) {
			return nil, allocatorErr
		},
	})
	require.True(t, errors.Is(err, allocatorErr))
	require.Nil(t, dev)
}

func TestCreateBuffer_Sharing(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	buffer, err := rig.Device.CreateBuffer(256, core1_0.BufferUsageVertexBuffer, device.MemoryUsagePreferDevice, 0)
	require.NoError(t, err)
	require.True(t, buffer.Initialized())
	require.Equal(t, 256, buffer.Size())
	require.Nil(t, buffer.Mapped())

	concurrent, err := rig.Device.CreateBuffer(64, core1_0.BufferUsageTransferSrc, device.MemoryUsagePreferHost,
		device.AllocationHostAccessSequentialWrite, 2, 0, 2)
	require.NoError(t, err)

	// A single distinct family stays exclusive
	exclusive, err := rig.Device.CreateBuffer(64, core1_0.BufferUsageTransferSrc, device.MemoryUsageAuto, 0, 1, 1)
	require.NoError(t, err)

	require.Equal(t, []core1_0.BufferCreateInfo{
		{Size: 256, Usage: core1_0.BufferUsageVertexBuffer, SharingMode: core1_0.SharingModeExclusive},
		{Size: 64, Usage: core1_0.BufferUsageTransferSrc, SharingMode: core1_0.SharingModeConcurrent, QueueFamilyIndices: []int{0, 2}},
		{Size: 64, Usage: core1_0.BufferUsageTransferSrc, SharingMode: core1_0.SharingModeExclusive},
	}, rig.Allocator.BufferInfos)
	require.Equal(t, []device.MemoryUsage{device.MemoryUsagePreferDevice, device.MemoryUsagePreferHost, device.MemoryUsageAuto}, rig.Allocator.Usages)

	require.NoError(t, buffer.Destroy())
	require.False(t, buffer.Initialized())
	require.NoError(t, concurrent.Destroy())
	require.NoError(t, exclusive.Destroy())
	require.Equal(t, 1, rig.Allocator.Buffers[0].Destroyed)
}

func TestCreateBuffer_AllocatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	rig.Allocator.Err = core1_0.VKErrorOutOfDeviceMemory.ToError()

	buffer, err := rig.Device.CreateBuffer(256, core1_0.BufferUsageVertexBuffer, device.MemoryUsageAuto, 0)
	require.Error(t, err)
	require.Nil(t, buffer)

	image, err := rig.Device.CreateImage(device.ImageOptions{
		Format: core1_0.FormatR8G8B8A8UnsignedNormalized,
		Extent: core1_0.Extent2D{Width: 4, Height: 4},
	}, device.MemoryUsageAuto, 0)
	require.Error(t, err)
	require.Nil(t, image)
}

func TestRawBuffer_DestroyOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	buffer, err := rig.Device.CreateBuffer(16, core1_0.BufferUsageVertexBuffer, device.MemoryUsageAuto, device.AllocationMapped)
	require.NoError(t, err)
	require.NotNil(t, buffer.Mapped())

	allocation := rig.Allocator.Buffers[0]
	require.NoError(t, buffer.Destroy())
	require.NoError(t, buffer.Destroy())
	require.Equal(t, 1, allocation.Destroyed)
	require.Equal(t, 1, allocation.UnmapCount)

	var empty device.RawBuffer
	require.False(t, empty.Initialized())
	require.NoError(t, empty.Destroy())
}

func TestRawBuffer_Write(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	buffer, err := rig.Device.CreateBuffer(8, core1_0.BufferUsageVertexBuffer, device.MemoryUsagePreferHost, device.AllocationHostAccessSequentialWrite)
	require.NoError(t, err)

	require.NoError(t, buffer.Write([]byte{1, 2, 3}, 4))

	allocation := rig.Allocator.Buffers[0]
	require.Equal(t, []byte{0, 0, 0, 0, 1, 2, 3, 0}, allocation.Data)
	require.Equal(t, [][2]int{{4, 3}}, allocation.Flushes)
	require.Equal(t, 1, allocation.MapCount)
	require.Equal(t, 1, allocation.UnmapCount)

	require.Error(t, buffer.Write([]byte{1, 2, 3}, 6))
}

func TestRawBuffer_WriteMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	buffer, err := rig.Device.CreateBuffer(4, core1_0.BufferUsageVertexBuffer, device.MemoryUsageAuto, device.AllocationMapped)
	require.NoError(t, err)

	require.NoError(t, buffer.Write([]byte{9, 8, 7, 6}, 0))

	allocation := rig.Allocator.Buffers[0]
	require.Equal(t, []byte{9, 8, 7, 6}, unsafe.Slice((*byte)(buffer.Mapped()), 4))
	// The persistent mapping is reused
	require.Equal(t, 1, allocation.MapCount)
	require.Equal(t, 0, allocation.UnmapCount)
}

func TestCreateImage(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	image, err := rig.Device.CreateImage(device.ImageOptions{
		Format: core1_0.FormatR8G8B8A8UnsignedNormalized,
		Extent: core1_0.Extent2D{Width: 16, Height: 8},
		Usage:  core1_0.ImageUsageSampled | core1_0.ImageUsageTransferDst,
	}, device.MemoryUsagePreferDevice, 0)
	require.NoError(t, err)
	require.Equal(t, core1_0.Extent2D{Width: 16, Height: 8}, image.Extent())

	require.Equal(t, []core1_0.ImageCreateInfo{{
		ImageType:     core1_0.ImageType2D,
		Format:        core1_0.FormatR8G8B8A8UnsignedNormalized,
		Extent:        core1_0.Extent3D{Width: 16, Height: 8, Depth: 1},
		MipLevels:     1,
		ArrayLayers:   1,
		Samples:       core1_0.Samples1,
		Tiling:        core1_0.ImageTilingOptimal,
		Usage:         core1_0.ImageUsageSampled | core1_0.ImageUsageTransferDst,
		SharingMode:   core1_0.SharingModeExclusive,
		InitialLayout: core1_0.ImageLayoutUndefined,
	}}, rig.Allocator.ImageInfos)

	require.NoError(t, image.Destroy())
	require.False(t, image.Initialized())
	require.Equal(t, 1, rig.Allocator.Images[0].Destroyed)
}

func TestCopyBufferToBuffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{Families: threeFamilies, PresentSupport: []bool{true, false, false}})

	src, err := rig.Device.CreateBuffer(128, core1_0.BufferUsageTransferSrc, device.MemoryUsagePreferHost, device.AllocationHostAccessSequentialWrite)
	require.NoError(t, err)
	dst, err := rig.Device.CreateBuffer(128, core1_0.BufferUsageTransferDst|core1_0.BufferUsageVertexBuffer, device.MemoryUsagePreferDevice, 0)
	require.NoError(t, err)

	commandBuffers := rig.ExpectCommandBuffers(1, 1)
	fence := mocks.NewDummyFence(rig.VkDevice)

	gomock.InOrder(
		rig.Driver.EXPECT().BeginCommandBuffer(commandBuffers[0], core1_0.CommandBufferBeginInfo{
			Flags: core1_0.CommandBufferUsageOneTimeSubmit,
		}).Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().CmdCopyBuffer(commandBuffers[0], src.Handle(), dst.Handle(), core1_0.BufferCopy{
			Size: 100,
		}).Return(nil),
		rig.Driver.EXPECT().EndCommandBuffer(commandBuffers[0]).Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().CreateFence(nil, core1_0.FenceCreateInfo{}).Return(fence, core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().QueueSubmit(rig.Queues[1], gomock.Any(), core1_0.SubmitInfo{
			CommandBuffers: commandBuffers,
		}).DoAndReturn(func(queue core1_0.Queue, submitFence *core1_0.Fence, submits ...core1_0.SubmitInfo) (common.VkResult, error) {
			require.Equal(t, fence, *submitFence)
			return core1_0.VKSuccess, nil
		}),
		rig.Driver.EXPECT().WaitForFences(true, common.NoTimeout, fence).Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().DestroyFence(fence, nil),
		rig.Driver.EXPECT().FreeCommandBuffers(commandBuffers[0]),
	)

	require.NoError(t, rig.Device.CopyBufferToBuffer(src, dst, 100))
}

func TestCopyBufferToBuffer_Oversized(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	src, err := rig.Device.CreateBuffer(16, core1_0.BufferUsageTransferSrc, device.MemoryUsageAuto, 0)
	require.NoError(t, err)
	dst, err := rig.Device.CreateBuffer(8, core1_0.BufferUsageTransferDst, device.MemoryUsageAuto, 0)
	require.NoError(t, err)

	require.Error(t, rig.Device.CopyBufferToBuffer(src, dst, 16))
	require.Error(t, rig.Device.CopyBufferToBuffer(src, &device.RawBuffer{}, 4))
}

func TestSyncPrimitives(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	fence := mocks.NewDummyFence(rig.VkDevice)
	semaphore := mocks.NewDummySemaphore(rig.VkDevice)

	rig.Driver.EXPECT().CreateFence(nil, core1_0.FenceCreateInfo{Flags: core1_0.FenceCreateSignaled}).Return(fence, core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{}).Return(semaphore, core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().WaitForFences(true, common.NoTimeout, fence).Return(core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().ResetFences(fence).Return(core1_0.VKSuccess, nil)

	createdFence, err := rig.Device.CreateFence(true)
	require.NoError(t, err)
	require.Equal(t, fence, createdFence)

	createdSemaphore, err := rig.Device.CreateSemaphore()
	require.NoError(t, err)
	require.Equal(t, semaphore, createdSemaphore)

	require.NoError(t, rig.Device.WaitFence(fence))
	require.NoError(t, rig.Device.ResetFence(fence))
}

func TestWriteJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})

	writer := jwriter.NewWriter()
	rig.Device.WriteJSON(&writer)

	require.JSONEq(t, `{
		"Name": "Mock GPU",
		"QueueFamilies": {"Graphics": 0, "Present": 0, "Transfer": 0},
		"Extensions": ["VK_EXT_shader_object", "VK_KHR_swapchain"],
		"AllocatorFeatures": {
			"DedicatedAllocations": false,
			"BindMemory2": false,
			"MemoryBudget": false,
			"MemoryPriority": false,
			"PortabilitySubset": false
		}
	}`, string(writer.Bytes()))
}

func TestWriteJSON_AllocatorFeatures(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{
		Extensions: append([]string{
			khr_dedicated_allocation.ExtensionName,
			ext_memory_budget.ExtensionName,
		}, device.RequiredExtensions...),
	})

	require.True(t, rig.Device.Extensions().DedicatedAllocations)
	require.True(t, rig.Device.Extensions().UseMemoryBudget)

	writer := jwriter.NewWriter()
	rig.Device.Extensions().WriteJSON(&writer)

	require.JSONEq(t, `{
		"DedicatedAllocations": true,
		"BindMemory2": false,
		"MemoryBudget": true,
		"MemoryPriority": false,
		"PortabilitySubset": false
	}`, string(writer.Bytes()))
}

func TestNew_AllocatorFactoryArguments(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.NewMocks(ctrl, devicetest.Setup{})

	rig.Instance.EXPECT().CreateDevice(rig.PhysicalDevice, nil, gomock.Any()).Return(rig.Driver, core1_0.VKSuccess, nil)
	rig.Driver.EXPECT().GetQueue(0, 0).Return(rig.Queues[0]).Times(3)
	rig.Driver.EXPECT().CreateCommandPool(nil, gomock.Any()).Return(rig.Pools[0], core1_0.VKSuccess, nil)

	var called bool
	_, err := device.New(devicetest.Logger(), rig.Instance, func(core1_0.PhysicalDevice, int) (bool, error) {
		return true, nil
	}, device.Options{
		Flags: device.DeviceCreateExternallySynchronized,
		NewAllocator: func(logger *slog.Logger, instanceDriver core1_0.CoreInstanceDriver, driver core1_0.CoreDeviceDriver, physicalDevice core1_0.PhysicalDevice, flags device.CreateFlags) (device.MemoryAllocator, error) {
			called = true
			require.Equal(t, rig.Instance, instanceDriver)
			require.Equal(t, rig.Driver, driver)
			require.Equal(t, rig.PhysicalDevice, physicalDevice)
			require.Equal(t, device.DeviceCreateExternallySynchronized, flags)
			return rig.Allocator, nil
		},
	})
	require.NoError(t, err)
	require.True(t, called)
}
