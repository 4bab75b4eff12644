package swapchain_test

import (
	"testing"

	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/easel/swapchain"
	vkext_mocks "github.com/vkngwrapper/easel/vkext/mocks"
	"go.uber.org/mock/gomock"
)

func TestFrameInfo_SetViewportAndScissor(t *testing.T) {
	ctrl := gomock.NewController(t)
	ext := vkext_mocks.NewMockDriver(ctrl)

	device := mocks.NewDummyDevice(common.Vulkan1_2, nil)
	pool := mocks.NewDummyCommandPool(device)
	cmd := mocks.NewDummyCommandBuffer(pool, device)

	frame := swapchain.FrameInfo{
		ImageIndex: 1,
		Extent:     core1_0.Extent2D{Width: 1280, Height: 720},
	}

	gomock.InOrder(
		ext.EXPECT().CmdSetViewportWithCount(cmd, []core1_0.Viewport{
			{X: 0, Y: 0, Width: 1280, Height: 720, MinDepth: 0, MaxDepth: 1},
		}),
		ext.EXPECT().CmdSetScissorWithCount(cmd, []core1_0.Rect2D{
			{Offset: core1_0.Offset2D{X: 0, Y: 0}, Extent: core1_0.Extent2D{Width: 1280, Height: 720}},
		}),
	)

	frame.SetViewportAndScissor(ext, cmd)
}
