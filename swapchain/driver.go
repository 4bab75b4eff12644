package swapchain

//go:generate mockgen -source driver.go -destination ./mocks/driver.go -package mocks

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// Window is the drawable the surface was created from
type Window interface {
	// FramebufferSize returns the drawable size in pixels
	FramebufferSize() (int, int)
}

// SurfaceDriver answers the surface queries used to negotiate a swapchain
type SurfaceDriver interface {
	GetPhysicalDeviceSurfaceSupport(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice, queueFamilyIndex int) (bool, common.VkResult, error)
	GetPhysicalDeviceSurfaceCapabilities(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, common.VkResult, error)
	GetPhysicalDeviceSurfaceFormats(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) ([]khr_surface.SurfaceFormat, common.VkResult, error)
	GetPhysicalDeviceSurfacePresentModes(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) ([]khr_surface.PresentMode, common.VkResult, error)
}

// SwapchainDriver creates, acquires from and presents swapchains. Acquisition never times out.
type SwapchainDriver interface {
	CreateSwapchain(info khr_swapchain.SwapchainCreateInfo) (khr_swapchain.Swapchain, common.VkResult, error)
	DestroySwapchain(swapchain khr_swapchain.Swapchain)
	GetSwapchainImages(swapchain khr_swapchain.Swapchain) ([]core1_0.Image, common.VkResult, error)
	AcquireNextImage(swapchain khr_swapchain.Swapchain, signal *core1_0.Semaphore) (int, common.VkResult, error)
	QueuePresent(queue core1_0.Queue, info khr_swapchain.PresentInfo) (common.VkResult, error)
}

type surfaceDriver struct {
	driver khr_surface.ExtensionDriver
}

// NewSurfaceDriver adapts a khr_surface extension driver
func NewSurfaceDriver(driver khr_surface.ExtensionDriver) SurfaceDriver {
	return &surfaceDriver{driver: driver}
}

func (d *surfaceDriver) GetPhysicalDeviceSurfaceSupport(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice, queueFamilyIndex int) (bool, common.VkResult, error) {
	return d.driver.GetPhysicalDeviceSurfaceSupport(surface, physicalDevice, queueFamilyIndex)
}

func (d *surfaceDriver) GetPhysicalDeviceSurfaceCapabilities(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) (*khr_surface.SurfaceCapabilities, common.VkResult, error) {
	return d.driver.GetPhysicalDeviceSurfaceCapabilities(surface, physicalDevice)
}

func (d *surfaceDriver) GetPhysicalDeviceSurfaceFormats(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) ([]khr_surface.SurfaceFormat, common.VkResult, error) {
	return d.driver.GetPhysicalDeviceSurfaceFormats(surface, physicalDevice)
}

func (d *surfaceDriver) GetPhysicalDeviceSurfacePresentModes(surface khr_surface.Surface, physicalDevice core1_0.PhysicalDevice) ([]khr_surface.PresentMode, common.VkResult, error) {
	return d.driver.GetPhysicalDeviceSurfacePresentModes(surface, physicalDevice)
}

type swapchainDriver struct {
	driver khr_swapchain.ExtensionDriver
}

// NewSwapchainDriver adapts a khr_swapchain extension driver
func NewSwapchainDriver(driver khr_swapchain.ExtensionDriver) SwapchainDriver {
	return &swapchainDriver{driver: driver}
}

func (d *swapchainDriver) CreateSwapchain(info khr_swapchain.SwapchainCreateInfo) (khr_swapchain.Swapchain, common.VkResult, error) {
	return d.driver.CreateSwapchain(nil, info)
}

func (d *swapchainDriver) DestroySwapchain(swapchain khr_swapchain.Swapchain) {
	d.driver.DestroySwapchain(swapchain, nil)
}

func (d *swapchainDriver) GetSwapchainImages(swapchain khr_swapchain.Swapchain) ([]core1_0.Image, common.VkResult, error) {
	return d.driver.GetSwapchainImages(swapchain)
}

func (d *swapchainDriver) AcquireNextImage(swapchain khr_swapchain.Swapchain, signal *core1_0.Semaphore) (int, common.VkResult, error) {
	return d.driver.AcquireNextImage(swapchain, common.NoTimeout, signal, nil)
}

func (d *swapchainDriver) QueuePresent(queue core1_0.Queue, info khr_swapchain.PresentInfo) (common.VkResult, error) {
	return d.driver.QueuePresent(queue, info)
}
