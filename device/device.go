package device

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/internal/utils"
	"github.com/vkngwrapper/easel/vkext"
	"golang.org/x/exp/slices"
)

// SurfaceSupport reports whether a queue family of a physical device can present to the
// application's surface
type SurfaceSupport func(physicalDevice core1_0.PhysicalDevice, queueFamily int) (bool, error)

// Options contains optional settings when creating a Device
type Options struct {
	Flags CreateFlags
	// EnabledFeatures is passed to device creation as-is. It may be left nil.
	EnabledFeatures *core1_0.PhysicalDeviceFeatures
	// NewAllocator builds the MemoryAllocator. NewVAMAllocator is used when it is nil.
	NewAllocator AllocatorFactory
}

// Device owns the logical device, its queues and command pools, and the memory allocator. It must
// outlive every object created from it.
type Device struct {
	logger *slog.Logger

	instanceDriver core1_0.CoreInstanceDriver
	driver         core1_0.CoreDeviceDriver
	physicalDevice core1_0.PhysicalDevice
	deviceName     string
	extensions     *ExtensionData

	families QueueFamilyIndices
	queues   [queueRoleCount]core1_0.Queue
	pools    map[int]core1_0.CommandPool

	allocator  MemoryAllocator
	queueMutex utils.OptionalMutex
}

// New selects the first physical device that supports every extension in RequiredExtensions, creates
// a logical device with a queue for each role and a command pool for each distinct queue family, then
// creates the memory allocator. If any step fails, everything created so far is destroyed.
func New(logger *slog.Logger, instanceDriver core1_0.CoreInstanceDriver, surfaceSupport SurfaceSupport, options Options) (device *Device, err error) {
	logger.Debug("Device::New")

	physicalDevice, available, err := selectPhysicalDevice(logger, instanceDriver)
	if err != nil {
		return nil, err
	}

	properties, err := instanceDriver.GetPhysicalDeviceProperties(physicalDevice)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read physical device properties")
	}

	familyProperties := instanceDriver.GetPhysicalDeviceQueueFamilyProperties(physicalDevice)
	familyFlags := make([]core1_0.QueueFlags, 0, len(familyProperties))
	presentSupport := make([]bool, 0, len(familyProperties))
	for familyIndex, family := range familyProperties {
		supported, err := surfaceSupport(physicalDevice, familyIndex)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to query present support for queue family %d", familyIndex)
		}

		familyFlags = append(familyFlags, family.QueueFlags)
		presentSupport = append(presentSupport, supported)
	}

	families, err := SelectQueueFamilies(familyFlags, presentSupport)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to select queue families on %s", properties.DeviceName)
	}

	logger.Info("selected physical device",
		slog.String("name", properties.DeviceName),
		slog.Int("graphicsFamily", families.Graphics),
		slog.Int("presentFamily", families.Present),
		slog.Int("transferFamily", families.Transfer),
	)

	device = &Device{
		logger:         logger,
		instanceDriver: instanceDriver,
		physicalDevice: physicalDevice,
		deviceName:     properties.DeviceName,
		extensions:     NewExtensionData(available),
		families:       families,
		pools:          make(map[int]core1_0.CommandPool),
		queueMutex: utils.OptionalMutex{
			UseMutex: options.Flags&DeviceCreateExternallySynchronized == 0,
		},
	}
	defer func() {
		if err != nil {
			device.teardown()
			device = nil
		}
	}()

	uniqueFamilies := families.UniqueFamilies()
	queueCreateInfos := make([]core1_0.DeviceQueueCreateInfo, 0, len(uniqueFamilies))
	for _, family := range uniqueFamilies {
		queueCreateInfos = append(queueCreateInfos, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{1.0},
		})
	}

	device.driver, _, err = instanceDriver.CreateDevice(physicalDevice, nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueCreateInfos,
		EnabledFeatures:       options.EnabledFeatures,
		EnabledExtensionNames: device.extensions.Enabled,
		NextOptions: common.NextOptions{
			Next: vkext.PhysicalDeviceVulkan13Features{
				DynamicRendering: true,
				Synchronization2: true,
				NextOptions: common.NextOptions{
					Next: vkext.PhysicalDeviceShaderObjectFeatures{
						ShaderObject: true,
					},
				},
			},
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create logical device on %s", properties.DeviceName)
	}

	for role := QueueGraphics; role < queueRoleCount; role++ {
		device.queues[role] = device.driver.GetQueue(families.Family(role), 0)
	}

	for _, family := range uniqueFamilies {
		pool, _, err := device.driver.CreateCommandPool(nil, core1_0.CommandPoolCreateInfo{
			Flags:            core1_0.CommandPoolCreateResetBuffer,
			QueueFamilyIndex: family,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to create command pool for queue family %d", family)
		}
		device.pools[family] = pool
	}

	newAllocator := options.NewAllocator
	if newAllocator == nil {
		newAllocator = NewVAMAllocator
	}

	device.allocator, err = newAllocator(logger, instanceDriver, device.driver, physicalDevice, options.Flags)
	if err != nil {
		return nil, err
	}

	return device, nil
}

func selectPhysicalDevice(logger *slog.Logger, instanceDriver core1_0.CoreInstanceDriver) (core1_0.PhysicalDevice, map[string]*core1_0.ExtensionProperties, error) {
	physicalDevices, _, err := instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return core1_0.PhysicalDevice{}, nil, errors.Wrap(err, "failed to enumerate physical devices")
	}

	for index, physicalDevice := range physicalDevices {
		available, _, err := instanceDriver.EnumerateDeviceExtensionProperties(physicalDevice)
		if err != nil {
			return core1_0.PhysicalDevice{}, nil, errors.Wrap(err, "failed to enumerate device extensions")
		}

		missing := missingExtensions(available)
		if len(missing) == 0 {
			return physicalDevice, available, nil
		}

		logger.Debug("skipping physical device", slog.Int("index", index), slog.Any("missingExtensions", missing))
	}

	return core1_0.PhysicalDevice{}, nil, errors.Wrapf(ErrNoSuitableDevice, "checked %d physical devices", len(physicalDevices))
}

func (d *Device) Driver() core1_0.CoreDeviceDriver {
	return d.driver
}

func (d *Device) InstanceDriver() core1_0.CoreInstanceDriver {
	return d.instanceDriver
}

func (d *Device) PhysicalDevice() core1_0.PhysicalDevice {
	return d.physicalDevice
}

func (d *Device) Extensions() *ExtensionData {
	return d.extensions
}

func (d *Device) QueueFamilies() QueueFamilyIndices {
	return d.families
}

func (d *Device) Queue(role QueueRole) core1_0.Queue {
	return d.queues[role]
}

// CommandPool returns the pool serving the queue family of role
func (d *Device) CommandPool(role QueueRole) core1_0.CommandPool {
	return d.pools[d.families.Family(role)]
}

func (d *Device) Allocator() MemoryAllocator {
	return d.allocator
}

func distinctFamilies(queueFamilies []int) []int {
	families := slices.Clone(queueFamilies)
	slices.Sort(families)
	return slices.Compact(families)
}

// CreateBuffer creates a buffer of size bytes with memory chosen by the allocator. Passing two or more
// distinct queue families creates the buffer with concurrent sharing across them.
func (d *Device) CreateBuffer(size int, usage core1_0.BufferUsageFlags, memoryUsage MemoryUsage, flags AllocationFlags, queueFamilies ...int) (*RawBuffer, error) {
	info := core1_0.BufferCreateInfo{
		Size:        size,
		Usage:       usage,
		SharingMode: core1_0.SharingModeExclusive,
	}

	families := distinctFamilies(queueFamilies)
	if len(families) > 1 {
		info.SharingMode = core1_0.SharingModeConcurrent
		info.QueueFamilyIndices = families
	}

	buffer, allocation, err := d.allocator.CreateBuffer(info, memoryUsage, flags)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create buffer of size %d", size)
	}

	raw := &RawBuffer{
		buffer:     buffer,
		allocation: allocation,
		size:       size,
	}

	if flags&AllocationMapped != 0 {
		raw.mapped, _, err = allocation.Map()
		if err != nil {
			destroyErr := allocation.DestroyBuffer(buffer)
			return nil, errors.CombineErrors(errors.Wrap(err, "failed to map persistently mapped buffer"), destroyErr)
		}
	}

	return raw, nil
}

// CreateImage creates a 2D image with memory chosen by the allocator
func (d *Device) CreateImage(options ImageOptions, memoryUsage MemoryUsage, flags AllocationFlags, queueFamilies ...int) (*RawImage, error) {
	info := options.createInfo()

	families := distinctFamilies(queueFamilies)
	if len(families) > 1 {
		info.SharingMode = core1_0.SharingModeConcurrent
		info.QueueFamilyIndices = families
	}

	image, allocation, err := d.allocator.CreateImage(info, memoryUsage, flags)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %dx%d image", options.Extent.Width, options.Extent.Height)
	}

	return &RawImage{
		image:      image,
		allocation: allocation,
		format:     options.Format,
		extent:     options.Extent,
	}, nil
}

// CopyBufferToBuffer copies size bytes from the start of src to the start of dst on the transfer
// queue and blocks until the copy has completed
func (d *Device) CopyBufferToBuffer(src, dst *RawBuffer, size int) error {
	if !src.Initialized() || !dst.Initialized() {
		return errors.New("attempted to copy between uninitialized buffers")
	}
	if size > src.Size() || size > dst.Size() {
		return errors.Newf("copy of %d bytes exceeds source size %d or destination size %d", size, src.Size(), dst.Size())
	}

	commandBuffers, err := d.AllocateCommandBuffers(QueueTransfer, 1)
	if err != nil {
		return err
	}
	commandBuffer := commandBuffers[0]
	defer d.driver.FreeCommandBuffers(commandBuffer)

	_, err = d.driver.BeginCommandBuffer(commandBuffer, core1_0.CommandBufferBeginInfo{
		Flags: core1_0.CommandBufferUsageOneTimeSubmit,
	})
	if err != nil {
		return errors.Wrap(err, "failed to begin copy command buffer")
	}

	err = d.driver.CmdCopyBuffer(commandBuffer, src.Handle(), dst.Handle(), core1_0.BufferCopy{
		SrcOffset: 0,
		DstOffset: 0,
		Size:      size,
	})
	if err != nil {
		return errors.Wrap(err, "failed to record buffer copy")
	}

	_, err = d.driver.EndCommandBuffer(commandBuffer)
	if err != nil {
		return errors.Wrap(err, "failed to end copy command buffer")
	}

	fence, err := d.CreateFence(false)
	if err != nil {
		return err
	}
	defer d.driver.DestroyFence(fence, nil)

	err = d.Submit(QueueTransfer, &fence, core1_0.SubmitInfo{
		CommandBuffers: []core1_0.CommandBuffer{commandBuffer},
	})
	if err != nil {
		return err
	}

	return d.WaitFence(fence)
}

func (d *Device) CreateFence(signaled bool) (core1_0.Fence, error) {
	var flags core1_0.FenceCreateFlags
	if signaled {
		flags = core1_0.FenceCreateSignaled
	}

	fence, _, err := d.driver.CreateFence(nil, core1_0.FenceCreateInfo{Flags: flags})
	if err != nil {
		return core1_0.Fence{}, errors.Wrap(err, "failed to create fence")
	}
	return fence, nil
}

func (d *Device) CreateSemaphore() (core1_0.Semaphore, error) {
	semaphore, _, err := d.driver.CreateSemaphore(nil, core1_0.SemaphoreCreateInfo{})
	if err != nil {
		return core1_0.Semaphore{}, errors.Wrap(err, "failed to create semaphore")
	}
	return semaphore, nil
}

// AllocateCommandBuffers allocates primary command buffers from the pool serving role
func (d *Device) AllocateCommandBuffers(role QueueRole, count int) ([]core1_0.CommandBuffer, error) {
	pool, ok := d.pools[d.families.Family(role)]
	if !ok {
		return nil, errors.Newf("no command pool for queue role %s", role)
	}

	commandBuffers, _, err := d.driver.AllocateCommandBuffers(core1_0.CommandBufferAllocateInfo{
		CommandPool:        pool,
		Level:              core1_0.CommandBufferLevelPrimary,
		CommandBufferCount: count,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to allocate %d %s command buffers", count, role)
	}
	return commandBuffers, nil
}

// WaitFence blocks until fence is signaled
func (d *Device) WaitFence(fence core1_0.Fence) error {
	_, err := d.driver.WaitForFences(true, common.NoTimeout, fence)
	if err != nil {
		return errors.Wrap(err, "failed to wait for fence")
	}
	return nil
}

func (d *Device) ResetFence(fence core1_0.Fence) error {
	_, err := d.driver.ResetFences(fence)
	if err != nil {
		return errors.Wrap(err, "failed to reset fence")
	}
	return nil
}

// WaitIdle blocks until every queue on the device is idle
func (d *Device) WaitIdle() error {
	_, err := d.driver.DeviceWaitIdle()
	if err != nil {
		return errors.Wrap(err, "failed to wait for device idle")
	}
	return nil
}

// Submit submits to the queue for role while holding the device's queue mutex
func (d *Device) Submit(role QueueRole, fence *core1_0.Fence, submits ...core1_0.SubmitInfo) error {
	d.queueMutex.Lock()
	defer d.queueMutex.Unlock()

	_, err := d.driver.QueueSubmit(d.queues[role], fence, submits...)
	if err != nil {
		return errors.Wrapf(err, "failed to submit to %s queue", role)
	}
	return nil
}

// WriteJSON writes a description of the selected device, its queue families, its enabled
// extensions and the allocator features they turn on
func (d *Device) WriteJSON(writer *jwriter.Writer) {
	obj := writer.Object()
	defer obj.End()

	obj.Name("Name").String(d.deviceName)

	families := obj.Name("QueueFamilies").Object()
	for role := QueueGraphics; role < queueRoleCount; role++ {
		families.Name(role.String()).Int(d.families.Family(role))
	}
	families.End()

	extensions := obj.Name("Extensions").Array()
	for _, name := range d.extensions.Enabled {
		extensions.String(name)
	}
	extensions.End()

	d.extensions.WriteJSON(obj.Name("AllocatorFeatures"))
}

// Destroy waits for the device to go idle, then destroys the allocator, the command pools and the
// logical device
func (d *Device) Destroy() error {
	d.logger.Debug("Device::Destroy")

	err := d.WaitIdle()
	if err != nil {
		return err
	}

	return d.teardown()
}

func (d *Device) teardown() error {
	var err error
	if d.allocator != nil {
		err = d.allocator.Destroy()
		d.allocator = nil
	}

	if d.driver == nil {
		return err
	}

	for _, family := range d.families.UniqueFamilies() {
		pool, ok := d.pools[family]
		if ok {
			d.driver.DestroyCommandPool(pool, nil)
		}
	}
	d.pools = nil

	d.driver.DestroyDevice(nil)
	d.driver = nil

	return err
}

// LockQueues takes the queue mutex shared by every submission and presentation on this device
func (d *Device) LockQueues() {
	d.queueMutex.Lock()
}

func (d *Device) UnlockQueues() {
	d.queueMutex.Unlock()
}
