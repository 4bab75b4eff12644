package swapchain

import (
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
)

// ChooseSurfaceFormat prefers 8-bit BGRA sRGB with the sRGB nonlinear color space and otherwise
// takes the first format the surface reports
func ChooseSurfaceFormat(formats []khr_surface.SurfaceFormat) khr_surface.SurfaceFormat {
	for _, format := range formats {
		if format.Format == core1_0.FormatB8G8R8A8SRGB && format.ColorSpace == khr_surface.ColorSpaceSRGBNonlinear {
			return format
		}
	}

	return formats[0]
}

// ChoosePresentMode prefers mailbox and falls back to FIFO, which every surface supports
func ChoosePresentMode(modes []khr_surface.PresentMode) khr_surface.PresentMode {
	for _, mode := range modes {
		if mode == khr_surface.PresentModeMailbox {
			return mode
		}
	}

	return khr_surface.PresentModeFIFO
}

// ChooseImageCount requests one image more than the minimum, capped by the maximum. A maximum of 0
// means the surface has no limit.
func ChooseImageCount(minImageCount, maxImageCount int) int {
	count := minImageCount + 1
	if maxImageCount > 0 && count > maxImageCount {
		count = maxImageCount
	}
	return count
}

// ChooseExtent uses the surface's current extent unless it is undefined, in which case the window's
// framebuffer size is clamped to the supported range
func ChooseExtent(capabilities *khr_surface.SurfaceCapabilities, window Window) core1_0.Extent2D {
	if capabilities.CurrentExtent.Width != -1 {
		return capabilities.CurrentExtent
	}

	width, height := window.FramebufferSize()
	return core1_0.Extent2D{
		Width:  clamp(width, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width),
		Height: clamp(height, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height),
	}
}

func clamp(value, lower, upper int) int {
	if value < lower {
		return lower
	}
	if value > upper {
		return upper
	}
	return value
}
