package devicetest

import (
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/core/v3/mocks"
	"github.com/vkngwrapper/easel/swapchain"
	swapchain_mocks "github.com/vkngwrapper/easel/swapchain/mocks"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	khr_swapchain_mocks "github.com/vkngwrapper/extensions/v3/khr_swapchain/mocks"
	"go.uber.org/mock/gomock"
)

// PreferredFormat is the surface format swapchain negotiation picks when it is available
var PreferredFormat = khr_surface.SurfaceFormat{
	Format:     core1_0.FormatB8G8R8A8SRGB,
	ColorSpace: khr_surface.ColorSpaceSRGBNonlinear,
}

// SwapchainRig adds mocked surface and swapchain drivers to a Rig
type SwapchainRig struct {
	*Rig

	SurfaceDriver   *swapchain_mocks.MockSurfaceDriver
	SwapchainDriver *swapchain_mocks.MockSwapchainDriver
	Window          *swapchain_mocks.MockWindow
	Surface         khr_surface.Surface

	// Capabilities, Formats and PresentModes are what the surface reports on every reconfigure
	Capabilities khr_surface.SurfaceCapabilities
	Formats      []khr_surface.SurfaceFormat
	PresentModes []khr_surface.PresentMode
}

func NewSwapchainRig(t require.TestingT, ctrl *gomock.Controller, setup Setup) *SwapchainRig {
	return &SwapchainRig{
		Rig:             New(t, ctrl, setup),
		SurfaceDriver:   swapchain_mocks.NewMockSurfaceDriver(ctrl),
		SwapchainDriver: swapchain_mocks.NewMockSwapchainDriver(ctrl),
		Window:          swapchain_mocks.NewMockWindow(ctrl),
		Capabilities: khr_surface.SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    0,
			CurrentExtent:    core1_0.Extent2D{Width: 800, Height: 600},
			MinImageExtent:   core1_0.Extent2D{Width: 1, Height: 1},
			MaxImageExtent:   core1_0.Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: khr_surface.TransformIdentity,
		},
		Formats:      []khr_surface.SurfaceFormat{PreferredFormat},
		PresentModes: []khr_surface.PresentMode{khr_surface.PresentModeFIFO, khr_surface.PresentModeMailbox},
	}
}

// ExpectReconfigure sets up one full reconfiguration that replaces old with a new chain of
// imageCount images, and returns the new chain and its images
func (r *SwapchainRig) ExpectReconfigure(t require.TestingT, old khr_swapchain.Swapchain, imageCount int) (khr_swapchain.Swapchain, []core1_0.Image) {
	chain := khr_swapchain_mocks.NewDummySwapchain(r.VkDevice)
	images := make([]core1_0.Image, 0, imageCount)
	for i := 0; i < imageCount; i++ {
		images = append(images, mocks.NewDummyImage(r.VkDevice))
	}

	calls := []any{
		r.Driver.EXPECT().DeviceWaitIdle().Return(core1_0.VKSuccess, nil),
		r.SurfaceDriver.EXPECT().GetPhysicalDeviceSurfaceCapabilities(r.Surface, r.PhysicalDevice).
			DoAndReturn(func(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, common.VkResult, error) {
				capabilities := r.Capabilities
				return &capabilities, core1_0.VKSuccess, nil
			}),
		r.SurfaceDriver.EXPECT().GetPhysicalDeviceSurfaceFormats(r.Surface, r.PhysicalDevice).
			Return(r.Formats, core1_0.VKSuccess, nil),
		r.SurfaceDriver.EXPECT().GetPhysicalDeviceSurfacePresentModes(r.Surface, r.PhysicalDevice).
			Return(r.PresentModes, core1_0.VKSuccess, nil),
		r.SwapchainDriver.EXPECT().CreateSwapchain(gomock.Any()).DoAndReturn(
			func(info khr_swapchain.SwapchainCreateInfo) (khr_swapchain.Swapchain, common.VkResult, error) {
				require.Equal(t, old, info.OldSwapchain)
				return chain, core1_0.VKSuccess, nil
			}),
	}
	if old.Initialized() {
		calls = append(calls, r.SwapchainDriver.EXPECT().DestroySwapchain(old))
	}
	calls = append(calls, r.SwapchainDriver.EXPECT().GetSwapchainImages(chain).Return(images, core1_0.VKSuccess, nil))

	gomock.InOrder(calls...)

	return chain, images
}

// NewSwapchain creates a swapchain.Swapchain with imageCount images against the rig's mocks
func (r *SwapchainRig) NewSwapchain(t require.TestingT, imageCount int) (*swapchain.Swapchain, khr_swapchain.Swapchain, []core1_0.Image) {
	chain, images := r.ExpectReconfigure(t, khr_swapchain.Swapchain{}, imageCount)

	sc, err := swapchain.New(Logger(), r.Device, r.SurfaceDriver, r.SwapchainDriver, r.Surface, r.Window)
	require.NoError(t, err)

	return sc, chain, images
}
