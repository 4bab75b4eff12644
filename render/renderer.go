package render

import (
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/loov/hrtime"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/device"
	"github.com/vkngwrapper/easel/swapchain"
	"github.com/vkngwrapper/easel/vkext"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
)

// FramesInFlight is the number of frames the CPU may record ahead of the GPU
const FramesInFlight = 2

// DefaultClearColor is the color every frame is cleared to before the callback runs
var DefaultClearColor = [4]float32{1, 0, 0, 1}

// RecordFunc records the commands for one frame. It runs inside a dynamic rendering scope that
// targets frame.Image. slot identifies which of the FramesInFlight slots is recording, for
// callers that keep per-slot resources.
type RecordFunc func(cmd core1_0.CommandBuffer, frame swapchain.FrameInfo, slot int) error

type Options struct {
	// ClearColor defaults to DefaultClearColor when nil
	ClearColor *[4]float32
}

type frameSlot struct {
	commandBuffer  core1_0.CommandBuffer
	inFlight       core1_0.Fence
	imageAvailable core1_0.Semaphore
	renderFinished core1_0.Semaphore
}

// WindowRenderer drives the acquire, record, submit and present cycle against a Swapchain, keeping
// FramesInFlight frames in flight
type WindowRenderer struct {
	logger    *slog.Logger
	device    *device.Device
	swapchain *swapchain.Swapchain
	ext       vkext.Driver

	clearColor   [4]float32
	slots        [FramesInFlight]frameSlot
	views        []core1_0.ImageView
	currentFrame int

	stats Statistics
	clock func() time.Duration
}

// NewWindowRenderer creates the per-slot command buffers and synchronization primitives along with
// one image view per swapchain image. The renderer registers itself as the swapchain's
// reconfiguration listener.
func NewWindowRenderer(logger *slog.Logger, device *device.Device, swapchain *swapchain.Swapchain, ext vkext.Driver, options Options) (*WindowRenderer, error) {
	logger.Debug("WindowRenderer::New")

	renderer := &WindowRenderer{
		logger:     logger,
		device:     device,
		swapchain:  swapchain,
		ext:        ext,
		clearColor: DefaultClearColor,
		clock:      hrtime.Now,
	}
	if options.ClearColor != nil {
		renderer.clearColor = *options.ClearColor
	}
	renderer.stats.Clear()

	err := renderer.createSlots()
	if err != nil {
		renderer.release()
		return nil, err
	}

	err = renderer.createViews()
	if err != nil {
		renderer.release()
		return nil, err
	}

	swapchain.OnReconfigure(renderer.onReconfigure)

	return renderer, nil
}

func (r *WindowRenderer) createSlots() error {
	commandBuffers, err := r.device.AllocateCommandBuffers(device.QueueGraphics, FramesInFlight)
	if err != nil {
		return err
	}

	for i := range r.slots {
		r.slots[i].commandBuffer = commandBuffers[i]
	}

	for i := range r.slots {
		slot := &r.slots[i]

		slot.inFlight, err = r.device.CreateFence(true)
		if err != nil {
			return err
		}

		slot.imageAvailable, err = r.device.CreateSemaphore()
		if err != nil {
			return err
		}

		slot.renderFinished, err = r.device.CreateSemaphore()
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *WindowRenderer) createViews() error {
	driver := r.device.Driver()
	format := r.swapchain.SurfaceFormat().Format

	for _, image := range r.swapchain.Images() {
		view, _, err := driver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
			Image:    image,
			ViewType: core1_0.ImageViewType2D,
			Format:   format,
			SubresourceRange: core1_0.ImageSubresourceRange{
				AspectMask:     core1_0.ImageAspectColor,
				BaseMipLevel:   0,
				LevelCount:     1,
				BaseArrayLayer: 0,
				LayerCount:     1,
			},
		})
		if err != nil {
			return errors.Wrap(err, "failed to create swapchain image view")
		}

		r.views = append(r.views, view)
	}

	return nil
}

func (r *WindowRenderer) destroyViews() {
	driver := r.device.Driver()
	for _, view := range r.views {
		driver.DestroyImageView(view, nil)
	}
	r.views = nil
}

func (r *WindowRenderer) onReconfigure(*swapchain.Swapchain) error {
	r.logger.Debug("WindowRenderer::RebuildViews")
	r.stats.AddReconfiguration()

	r.destroyViews()
	return r.createViews()
}

// RenderFrame renders and presents a single frame, calling record to fill the frame's command
// buffer. When the swapchain is out of date no work is done and nil is returned; the caller should
// call Swapchain.Update before the next frame. When record fails, nothing is drawn or presented
// but the slot's fence is signaled again, so a later RenderFrame does not block.
func (r *WindowRenderer) RenderFrame(record RecordFunc) error {
	start := r.clock()
	slot := &r.slots[r.currentFrame]
	driver := r.device.Driver()

	err := r.device.WaitFence(slot.inFlight)
	if err != nil {
		return err
	}

	frame, ok, err := r.swapchain.AcquireNextFrame(slot.imageAvailable)
	if err != nil {
		return err
	} else if !ok {
		r.logger.Debug("skipping frame", slog.Int("slot", r.currentFrame))
		r.stats.AddSkippedFrame()
		return nil
	}

	err = r.device.ResetFence(slot.inFlight)
	if err != nil {
		return err
	}

	cmd := slot.commandBuffer
	_, err = driver.ResetCommandBuffer(cmd, 0)
	if err != nil {
		return errors.Wrap(err, "failed to reset command buffer")
	}

	_, err = driver.BeginCommandBuffer(cmd, core1_0.CommandBufferBeginInfo{
		Flags: core1_0.CommandBufferUsageOneTimeSubmit,
	})
	if err != nil {
		return errors.Wrap(err, "failed to begin command buffer")
	}

	err = driver.CmdPipelineBarrier(cmd, core1_0.PipelineStageTopOfPipe, core1_0.PipelineStageColorAttachmentOutput, 0, nil, nil, []core1_0.ImageMemoryBarrier{
		colorBarrier(frame.Image,
			core1_0.ImageLayoutUndefined, core1_0.ImageLayoutColorAttachmentOptimal,
			0, core1_0.AccessColorAttachmentWrite),
	})
	if err != nil {
		return errors.Wrap(err, "failed to record attachment barrier")
	}

	r.ext.CmdBeginRendering(cmd, vkext.RenderingInfo{
		RenderArea: core1_0.Rect2D{
			Offset: core1_0.Offset2D{X: 0, Y: 0},
			Extent: frame.Extent,
		},
		LayerCount: 1,
		ColorAttachments: []vkext.RenderingAttachmentInfo{
			{
				ImageView:   r.views[frame.ImageIndex],
				ImageLayout: core1_0.ImageLayoutColorAttachmentOptimal,
				LoadOp:      core1_0.AttachmentLoadOpClear,
				StoreOp:     core1_0.AttachmentStoreOpStore,
				ClearColor:  r.clearColor,
			},
		},
	})

	recordErr := record(cmd, frame, r.currentFrame)
	r.ext.CmdEndRendering(cmd)
	if recordErr != nil {
		return r.abandonFrame(slot, errors.Wrap(recordErr, "failed to record frame"))
	}

	err = driver.CmdPipelineBarrier(cmd, core1_0.PipelineStageColorAttachmentOutput, core1_0.PipelineStageBottomOfPipe, 0, nil, nil, []core1_0.ImageMemoryBarrier{
		colorBarrier(frame.Image,
			core1_0.ImageLayoutColorAttachmentOptimal, khr_swapchain.ImageLayoutPresentSrc,
			core1_0.AccessColorAttachmentWrite, 0),
	})
	if err != nil {
		return errors.Wrap(err, "failed to record present barrier")
	}

	_, err = driver.EndCommandBuffer(cmd)
	if err != nil {
		return errors.Wrap(err, "failed to end command buffer")
	}

	err = r.device.Submit(device.QueueGraphics, &slot.inFlight, core1_0.SubmitInfo{
		WaitSemaphores:   []core1_0.Semaphore{slot.imageAvailable},
		WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
		CommandBuffers:   []core1_0.CommandBuffer{cmd},
		SignalSemaphores: []core1_0.Semaphore{slot.renderFinished},
	})
	if err != nil {
		return err
	}

	err = r.swapchain.Present(slot.renderFinished)
	if err != nil {
		return err
	}

	r.currentFrame = (r.currentFrame + 1) % FramesInFlight
	r.stats.AddFrame(r.clock() - start)

	return nil
}

// abandonFrame closes a command buffer whose recording failed and submits a batch that only waits
// on the slot's image-available semaphore and signals its fence, so the slot can be reused
func (r *WindowRenderer) abandonFrame(slot *frameSlot, cause error) error {
	r.logger.Debug("abandoning frame", slog.Int("slot", r.currentFrame))

	_, err := r.device.Driver().EndCommandBuffer(slot.commandBuffer)
	if err != nil {
		return errors.CombineErrors(cause, errors.Wrap(err, "failed to end abandoned command buffer"))
	}

	err = r.device.Submit(device.QueueGraphics, &slot.inFlight, core1_0.SubmitInfo{
		WaitSemaphores:   []core1_0.Semaphore{slot.imageAvailable},
		WaitDstStageMask: []core1_0.PipelineStageFlags{core1_0.PipelineStageColorAttachmentOutput},
	})
	return errors.CombineErrors(cause, err)
}

func colorBarrier(image core1_0.Image, oldLayout, newLayout core1_0.ImageLayout, srcAccess, dstAccess core1_0.AccessFlags) core1_0.ImageMemoryBarrier {
	return core1_0.ImageMemoryBarrier{
		SrcAccessMask:       srcAccess,
		DstAccessMask:       dstAccess,
		OldLayout:           oldLayout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: -1,
		DstQueueFamilyIndex: -1,
		Image:               image,
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     core1_0.ImageAspectColor,
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}
}

// CurrentFrame is the slot the next RenderFrame call will record into
func (r *WindowRenderer) CurrentFrame() int {
	return r.currentFrame
}

// ImageViews returns one view per swapchain image, indexed by FrameInfo.ImageIndex
func (r *WindowRenderer) ImageViews() []core1_0.ImageView {
	return r.views
}

// Statistics returns a copy of the frame counters collected since creation or the last
// ResetStatistics
func (r *WindowRenderer) Statistics() Statistics {
	return r.stats
}

func (r *WindowRenderer) ResetStatistics() {
	r.stats.Clear()
}

// Destroy waits for the device to go idle and destroys every object the renderer created
func (r *WindowRenderer) Destroy() error {
	r.logger.Debug("WindowRenderer::Destroy")

	err := r.device.WaitIdle()
	if err != nil {
		return err
	}

	r.swapchain.OnReconfigure(nil)
	r.release()
	return nil
}

func (r *WindowRenderer) release() {
	driver := r.device.Driver()

	r.destroyViews()

	var commandBuffers []core1_0.CommandBuffer
	for i := range r.slots {
		slot := &r.slots[i]

		if slot.renderFinished.Initialized() {
			driver.DestroySemaphore(slot.renderFinished, nil)
		}
		if slot.imageAvailable.Initialized() {
			driver.DestroySemaphore(slot.imageAvailable, nil)
		}
		if slot.inFlight.Initialized() {
			driver.DestroyFence(slot.inFlight, nil)
		}
		if slot.commandBuffer.Initialized() {
			commandBuffers = append(commandBuffers, slot.commandBuffer)
		}

		*slot = frameSlot{}
	}

	if len(commandBuffers) > 0 {
		driver.FreeCommandBuffers(commandBuffers...)
	}
}
