package swapchain

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/device"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// ReconfigureListener is called synchronously at the end of every reconfiguration. Views onto the
// previous images are invalid by the time it runs.
type ReconfigureListener func(swapchain *Swapchain) error

// Swapchain is the chain of presentable images for one surface. It is reconfigured in place, so
// pointers to it stay valid across window resizes.
type Swapchain struct {
	logger *slog.Logger
	device *device.Device

	surfaceDriver SurfaceDriver
	driver        SwapchainDriver
	surface       khr_surface.Surface
	window        Window

	swapchain     khr_swapchain.Swapchain
	images        []core1_0.Image
	surfaceFormat khr_surface.SurfaceFormat
	presentMode   khr_surface.PresentMode
	extent        core1_0.Extent2D

	imageIndex         int
	pendingReconfigure bool
	reconfigureCount   int
	listener           ReconfigureListener
}

// New creates the swapchain for surface. The initial chain is negotiated immediately.
func New(logger *slog.Logger, device *device.Device, surfaceDriver SurfaceDriver, driver SwapchainDriver, surface khr_surface.Surface, window Window) (*Swapchain, error) {
	logger.Debug("Swapchain::New")

	swapchain := &Swapchain{
		logger:        logger,
		device:        device,
		surfaceDriver: surfaceDriver,
		driver:        driver,
		surface:       surface,
		window:        window,
	}

	err := swapchain.Reconfigure()
	if err != nil {
		swapchain.Destroy()
		return nil, err
	}

	return swapchain, nil
}

// OnReconfigure registers the single subscriber notified after every reconfiguration, replacing
// any previous subscriber
func (s *Swapchain) OnReconfigure(listener ReconfigureListener) {
	s.listener = listener
}

// Reconfigure renegotiates the surface parameters and rebuilds the chain, handing the previous
// chain to the driver for reuse. It waits for the device to go idle first.
func (s *Swapchain) Reconfigure() error {
	s.logger.Debug("Swapchain::Reconfigure")

	err := s.device.WaitIdle()
	if err != nil {
		return err
	}

	physicalDevice := s.device.PhysicalDevice()

	capabilities, _, err := s.surfaceDriver.GetPhysicalDeviceSurfaceCapabilities(s.surface, physicalDevice)
	if err != nil {
		return errors.Wrap(err, "failed to query surface capabilities")
	}

	formats, _, err := s.surfaceDriver.GetPhysicalDeviceSurfaceFormats(s.surface, physicalDevice)
	if err != nil {
		return errors.Wrap(err, "failed to query surface formats")
	}
	if len(formats) == 0 {
		return errors.New("surface reports no supported formats")
	}

	presentModes, _, err := s.surfaceDriver.GetPhysicalDeviceSurfacePresentModes(s.surface, physicalDevice)
	if err != nil {
		return errors.Wrap(err, "failed to query surface present modes")
	}

	surfaceFormat := ChooseSurfaceFormat(formats)
	presentMode := ChoosePresentMode(presentModes)
	extent := ChooseExtent(capabilities, s.window)
	imageCount := ChooseImageCount(capabilities.MinImageCount, capabilities.MaxImageCount)

	sharingMode := core1_0.SharingModeExclusive
	var queueFamilyIndices []int

	families := s.device.QueueFamilies()
	if families.Graphics != families.Present {
		sharingMode = core1_0.SharingModeConcurrent
		queueFamilyIndices = []int{families.Graphics, families.Present}
	}

	swapchain, _, err := s.driver.CreateSwapchain(khr_swapchain.SwapchainCreateInfo{
		Surface: s.surface,

		MinImageCount:    imageCount,
		ImageFormat:      surfaceFormat.Format,
		ImageColorSpace:  surfaceFormat.ColorSpace,
		ImageExtent:      extent,
		ImageArrayLayers: 1,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform:   capabilities.CurrentTransform,
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    presentMode,
		Clipped:        true,
		OldSwapchain:   s.swapchain,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create swapchain")
	}

	if s.swapchain.Initialized() {
		s.driver.DestroySwapchain(s.swapchain)
	}
	s.swapchain = swapchain

	images, _, err := s.driver.GetSwapchainImages(swapchain)
	if err != nil {
		return errors.Wrap(err, "failed to retrieve swapchain images")
	}

	s.images = images
	s.surfaceFormat = surfaceFormat
	s.presentMode = presentMode
	s.extent = extent
	s.imageIndex = 0
	s.pendingReconfigure = false
	s.reconfigureCount++

	s.logger.Debug("swapchain configured",
		slog.Int("images", len(images)),
		slog.Int("width", extent.Width),
		slog.Int("height", extent.Height),
		slog.String("format", surfaceFormat.Format.String()),
		slog.String("presentMode", presentMode.String()),
	)

	if s.listener != nil {
		return s.listener(s)
	}

	return nil
}

// Update applies a pending reconfiguration. It is the only place a reconfiguration requested by
// AcquireNextFrame or Present takes effect, and must be called between frames.
func (s *Swapchain) Update() error {
	if !s.pendingReconfigure {
		return nil
	}

	return s.Reconfigure()
}

// AcquireNextFrame acquires the next presentable image, signaling signal once it is ready to be
// rendered to. It returns false without error when the chain is out of date; the frame should be
// skipped and Update called before the next acquire. A suboptimal chain still returns a usable
// frame but schedules a reconfiguration.
func (s *Swapchain) AcquireNextFrame(signal core1_0.Semaphore) (FrameInfo, bool, error) {
	imageIndex, res, err := s.driver.AcquireNextImage(s.swapchain, &signal)
	if res == khr_swapchain.VKErrorOutOfDate {
		s.pendingReconfigure = true
		return FrameInfo{}, false, nil
	} else if err != nil {
		return FrameInfo{}, false, errors.Wrap(err, "failed to acquire swapchain image")
	}

	if res == khr_swapchain.VKSuboptimal {
		s.pendingReconfigure = true
	}

	s.imageIndex = imageIndex
	return FrameInfo{
		Image:         s.images[imageIndex],
		ImageIndex:    imageIndex,
		SurfaceFormat: s.surfaceFormat,
		Extent:        s.extent,
	}, true, nil
}

// Present queues the most recently acquired image for presentation once wait is signaled
func (s *Swapchain) Present(wait core1_0.Semaphore) error {
	s.device.LockQueues()
	res, err := s.driver.QueuePresent(s.device.Queue(device.QueuePresent), khr_swapchain.PresentInfo{
		WaitSemaphores: []core1_0.Semaphore{wait},
		Swapchains:     []khr_swapchain.Swapchain{s.swapchain},
		ImageIndices:   []int{s.imageIndex},
	})
	s.device.UnlockQueues()

	if res == khr_swapchain.VKErrorOutOfDate || res == khr_swapchain.VKSuboptimal {
		s.pendingReconfigure = true
		return nil
	} else if err != nil {
		return errors.Wrap(err, "failed to present swapchain image")
	}

	return nil
}

func (s *Swapchain) Handle() khr_swapchain.Swapchain {
	return s.swapchain
}

func (s *Swapchain) Images() []core1_0.Image {
	return s.images
}

func (s *Swapchain) SurfaceFormat() khr_surface.SurfaceFormat {
	return s.surfaceFormat
}

func (s *Swapchain) PresentMode() khr_surface.PresentMode {
	return s.presentMode
}

func (s *Swapchain) Extent() core1_0.Extent2D {
	return s.extent
}

// PendingReconfigure reports whether the next Update will rebuild the chain
func (s *Swapchain) PendingReconfigure() bool {
	return s.pendingReconfigure
}

// ReconfigureCount is the number of times the chain has been built, including the initial build
func (s *Swapchain) ReconfigureCount() int {
	return s.reconfigureCount
}

// Destroy destroys the chain. The surface belongs to the caller.
func (s *Swapchain) Destroy() {
	s.logger.Debug("Swapchain::Destroy")

	if s.swapchain.Initialized() {
		s.driver.DestroySwapchain(s.swapchain)
	}
	s.swapchain = khr_swapchain.Swapchain{}
	s.images = nil
}
