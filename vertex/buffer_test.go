package vertex_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/easel/device"
	"github.com/vkngwrapper/easel/internal/devicetest"
	"github.com/vkngwrapper/easel/vertex"
	"github.com/vkngwrapper/easel/vkext"
	vkext_mocks "github.com/vkngwrapper/easel/vkext/mocks"
	vkngmath "github.com/vkngwrapper/math"
	"go.uber.org/mock/gomock"
)

var triangle = []vertex.ColoredVertex{
	{Position: vkngmath.Vec2[float32]{X: 0, Y: -0.5}, Color: vkngmath.Vec3[float32]{X: 1, Y: 0, Z: 0}},
	{Position: vkngmath.Vec2[float32]{X: 0.5, Y: 0.5}, Color: vkngmath.Vec3[float32]{X: 0, Y: 1, Z: 0}},
	{Position: vkngmath.Vec2[float32]{X: -0.5, Y: 0.5}, Color: vkngmath.Vec3[float32]{X: 0, Y: 0, Z: 1}},
}

func TestNew_Dynamic(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})
	ext := vkext_mocks.NewMockDriver(ctrl)

	buffer, err := vertex.New(devicetest.Logger(), rig.Device, ext, vertex.StorageDynamic, vertex.ColoredLayout(), triangle)
	require.NoError(t, err)
	require.Equal(t, vertex.StorageDynamic, buffer.Storage())
	require.Equal(t, 3, buffer.VertexCount())

	require.Len(t, rig.Allocator.Buffers, 1)
	require.Equal(t, device.MemoryUsagePreferHost, rig.Allocator.Usages[0])
	require.Equal(t, device.AllocationHostAccessRandom|device.AllocationMapped, rig.Allocator.Flags[0])
	require.Equal(t, core1_0.BufferUsageVertexBuffer|core1_0.BufferUsageTransferSrc|core1_0.BufferUsageTransferDst,
		rig.Allocator.BufferInfos[0].Usage)
	require.Equal(t, vertex.Bytes(triangle), rig.Allocator.Buffers[0].Data)

	moved := []vertex.ColoredVertex{
		{Position: vkngmath.Vec2[float32]{X: 0.25, Y: 0.25}, Color: vkngmath.Vec3[float32]{X: 1, Y: 1, Z: 1}},
	}
	require.NoError(t, vertex.Update(buffer, 2, moved))
	require.Equal(t, vertex.Bytes(moved), rig.Allocator.Buffers[0].Data[40:60])
	require.Equal(t, [2]int{40, 20}, rig.Allocator.Buffers[0].Flushes[1])

	// Past the end of the buffer
	require.Error(t, vertex.Update(buffer, 3, moved))

	require.NoError(t, buffer.Destroy())
	require.NoError(t, buffer.Destroy())
	require.Equal(t, 1, rig.Allocator.Buffers[0].Destroyed)
}

func TestNew_Static(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})
	ext := vkext_mocks.NewMockDriver(ctrl)

	commandBuffers := rig.ExpectCommandBuffers(0, 1)
	fence := mocks.NewDummyFence(rig.VkDevice)

	gomock.InOrder(
		rig.Driver.EXPECT().BeginCommandBuffer(commandBuffers[0], gomock.Any()).Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().CmdCopyBuffer(commandBuffers[0], gomock.Any(), gomock.Any(), core1_0.BufferCopy{Size: 60}).Return(nil),
		rig.Driver.EXPECT().EndCommandBuffer(commandBuffers[0]).Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().CreateFence(nil, core1_0.FenceCreateInfo{}).Return(fence, core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().QueueSubmit(rig.Queues[0], gomock.Any(), gomock.Any()).Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().WaitForFences(true, common.NoTimeout, fence).Return(core1_0.VKSuccess, nil),
		rig.Driver.EXPECT().DestroyFence(fence, nil),
		rig.Driver.EXPECT().FreeCommandBuffers(commandBuffers[0]),
	)

	buffer, err := vertex.New(devicetest.Logger(), rig.Device, ext, vertex.StorageStatic, vertex.ColoredLayout(), triangle)
	require.NoError(t, err)
	require.Equal(t, 3, buffer.VertexCount())

	require.Len(t, rig.Allocator.Buffers, 2)

	staging := rig.Allocator.Buffers[0]
	require.Equal(t, core1_0.BufferUsageTransferSrc, rig.Allocator.BufferInfos[0].Usage)
	require.Equal(t, device.MemoryUsagePreferHost, rig.Allocator.Usages[0])
	require.Equal(t, vertex.Bytes(triangle), staging.Data)
	require.Equal(t, 1, staging.Destroyed)

	require.Equal(t, core1_0.BufferUsageVertexBuffer|core1_0.BufferUsageTransferDst, rig.Allocator.BufferInfos[1].Usage)
	require.Equal(t, core1_0.SharingModeExclusive, rig.Allocator.BufferInfos[1].SharingMode)
	require.Equal(t, device.MemoryUsagePreferDevice, rig.Allocator.Usages[1])
	require.Equal(t, 0, rig.Allocator.Buffers[1].Destroyed)

	require.Error(t, vertex.Update(buffer, 0, triangle))

	require.NoError(t, buffer.Destroy())
	require.Equal(t, 1, rig.Allocator.Buffers[1].Destroyed)
}

func TestNew_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})
	ext := vkext_mocks.NewMockDriver(ctrl)

	_, err := vertex.New[vertex.ColoredVertex](devicetest.Logger(), rig.Device, ext, vertex.StorageDynamic, vertex.ColoredLayout(), nil)
	require.Error(t, err)

	_, err = vertex.New(devicetest.Logger(), rig.Device, ext, vertex.StorageDynamic, vertex.Layout{Stride: 16}, triangle)
	require.Error(t, err)

	_, err = vertex.New(devicetest.Logger(), rig.Device, ext, vertex.Storage(7), vertex.ColoredLayout(), triangle)
	require.Error(t, err)

	require.Empty(t, rig.Allocator.Buffers)
}

func TestBindAndDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	rig := devicetest.New(t, ctrl, devicetest.Setup{})
	ext := vkext_mocks.NewMockDriver(ctrl)

	buffer, err := vertex.New(devicetest.Logger(), rig.Device, ext, vertex.StorageDynamic, vertex.ColoredLayout(), triangle)
	require.NoError(t, err)

	cmd := mocks.NewDummyCommandBuffer(rig.Pools[0], rig.VkDevice)

	gomock.InOrder(
		rig.Driver.EXPECT().CmdBindVertexBuffers(cmd, 0, []core1_0.Buffer{buffer.Handle()}, []int{0}),
		ext.EXPECT().CmdSetVertexInput(cmd,
			[]vkext.VertexInputBindingDescription{
				{Binding: 0, Stride: 20, InputRate: core1_0.VertexInputRateVertex, Divisor: 1},
			},
			[]vkext.VertexInputAttributeDescription{
				{Location: 0, Binding: 0, Format: core1_0.FormatR32G32SignedFloat, Offset: 0},
				{Location: 1, Binding: 0, Format: core1_0.FormatR32G32B32SignedFloat, Offset: 8},
			}),
		rig.Driver.EXPECT().CmdDraw(cmd, 3, 1, gomock.Any(), gomock.Any()),
	)

	buffer.Bind(cmd)
	buffer.Draw(cmd)
}
