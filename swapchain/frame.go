package swapchain

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/vkext"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// FrameInfo describes the image acquired for the current frame
type FrameInfo struct {
	Image         core1_0.Image
	ImageIndex    int
	SurfaceFormat khr_surface.SurfaceFormat
	Extent        core1_0.Extent2D
}

// SetViewportAndScissor sets a single viewport and scissor covering the whole frame
func (f FrameInfo) SetViewportAndScissor(ext vkext.Driver, cmd core1_0.CommandBuffer) {
	ext.CmdSetViewportWithCount(cmd, []core1_0.Viewport{{
		X:        0,
		Y:        0,
		Width:    float32(f.Extent.Width),
		Height:   float32(f.Extent.Height),
		MinDepth: 0,
		MaxDepth: 1,
	}})
	ext.CmdSetScissorWithCount(cmd, []core1_0.Rect2D{{
		Offset: core1_0.Offset2D{X: 0, Y: 0},
		Extent: f.Extent,
	}})
}
