package main

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/config"
	"github.com/vkngwrapper/easel/device"
	"github.com/vkngwrapper/easel/render"
	"github.com/vkngwrapper/easel/shader"
	"github.com/vkngwrapper/easel/swapchain"
	"github.com/vkngwrapper/easel/vertex"
	"github.com/vkngwrapper/easel/vkext"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"
	vkngmath "github.com/vkngwrapper/math"
)

var triangle = []vertex.ColoredVertex{
	{Position: vkngmath.Vec2[float32]{X: 0, Y: -0.5}, Color: vkngmath.Vec3[float32]{X: 1, Y: 0, Z: 0}},
	{Position: vkngmath.Vec2[float32]{X: 0.5, Y: 0.5}, Color: vkngmath.Vec3[float32]{X: 0, Y: 1, Z: 0}},
	{Position: vkngmath.Vec2[float32]{X: -0.5, Y: 0.5}, Color: vkngmath.Vec3[float32]{X: 0, Y: 0, Z: 1}},
}

type sdlWindow struct {
	window *sdl.Window
}

func (w sdlWindow) FramebufferSize() (int, int) {
	width, height := w.window.VulkanGetDrawableSize()
	return int(width), int(height)
}

type app struct {
	logger *slog.Logger
	cfg    config.Config

	window        *sdl.Window
	instance      *instance
	surfaceDriver khr_surface.ExtensionDriver
	surface       khr_surface.Surface

	device    *device.Device
	ext       vkext.Driver
	swapchain *swapchain.Swapchain
	renderer  *render.WindowRenderer
	material  *shader.MaterialShader
	vertices  *vertex.Buffer
	reloader  *reloader
}

func run(logger *slog.Logger, cfg config.Config) error {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return errors.Wrap(err, "failed to initialize sdl")
	}
	defer sdl.Quit()

	a := &app{logger: logger, cfg: cfg}
	defer a.destroy()

	err = a.init()
	if err != nil {
		return err
	}

	return a.loop()
}

func (a *app) init() error {
	var err error
	a.window, err = sdl.CreateWindow(a.cfg.Window.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(a.cfg.Window.Width), int32(a.cfg.Window.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return errors.Wrap(err, "failed to create window")
	}

	a.instance, err = createInstance(a.logger, a.cfg.Vulkan, a.window)
	if err != nil {
		return err
	}

	a.surfaceDriver = khr_surface.CreateExtensionDriverFromCoreDriver(a.instance.driver)
	a.surface, err = vkng_sdl2.CreateSurface(a.instance.driver.Instance(), a.surfaceDriver, a.window)
	if err != nil {
		return errors.Wrap(err, "failed to create surface")
	}

	surfaceSupport := func(physicalDevice core1_0.PhysicalDevice, queueFamily int) (bool, error) {
		supported, _, err := a.surfaceDriver.GetPhysicalDeviceSurfaceSupport(a.surface, physicalDevice, queueFamily)
		return supported, err
	}

	a.device, err = device.New(a.logger, a.instance.driver, surfaceSupport, device.Options{})
	if err != nil {
		return err
	}
	a.logDevice()

	a.ext, err = vkext.CreateDriverFromCoreDriver(a.device.Driver())
	if err != nil {
		return err
	}

	a.swapchain, err = swapchain.New(a.logger, a.device,
		swapchain.NewSurfaceDriver(a.surfaceDriver),
		swapchain.NewSwapchainDriver(khr_swapchain.CreateExtensionDriverFromCoreDriver(a.device.Driver())),
		a.surface, sdlWindow{window: a.window})
	if err != nil {
		return err
	}

	clearColor := a.cfg.Render.ClearColor
	a.renderer, err = render.NewWindowRenderer(a.logger, a.device, a.swapchain, a.ext, render.Options{
		ClearColor: &clearColor,
	})
	if err != nil {
		return err
	}

	a.material, err = a.loadMaterial()
	if err != nil {
		return err
	}

	a.vertices, err = vertex.New(a.logger, a.device, a.ext, vertex.StorageStatic, vertex.ColoredLayout(), triangle)
	if err != nil {
		return err
	}

	if a.cfg.Shaders.Watch {
		a.reloader, err = newReloader(a.logger, a.cfg.Shaders.Vertex, a.cfg.Shaders.Fragment)
		if err != nil {
			return err
		}
	}

	return nil
}

func (a *app) loadMaterial() (*shader.MaterialShader, error) {
	return shader.NewMaterialShader(a.logger, a.ext, []shader.StageFile{
		{Path: a.cfg.Shaders.Vertex, Stage: core1_0.StageVertex},
		{Path: a.cfg.Shaders.Fragment, Stage: core1_0.StageFragment},
	}, a.cfg.Render.LinkedShaders)
}

func (a *app) logDevice() {
	writer := jwriter.NewWriter()
	a.device.WriteJSON(&writer)
	a.logger.Info("selected device", slog.String("device", string(writer.Bytes())))
}

func (a *app) loop() error {
	rendering := true

appLoop:
	for {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				break appLoop
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_MINIMIZED:
					rendering = false
				case sdl.WINDOWEVENT_RESTORED:
					rendering = true
				case sdl.WINDOWEVENT_RESIZED, sdl.WINDOWEVENT_SIZE_CHANGED:
					width, height := a.window.VulkanGetDrawableSize()
					rendering = width > 0 && height > 0
					if rendering {
						err := a.swapchain.Reconfigure()
						if err != nil {
							return err
						}
					}
				}
			}
		}

		if a.reloader != nil && a.reloader.changed() {
			a.reloadMaterial()
		}

		if !rendering {
			sdl.Delay(10)
			continue
		}

		err := a.renderer.RenderFrame(a.record)
		if err != nil {
			return err
		}

		err = a.swapchain.Update()
		if err != nil {
			return err
		}
	}

	a.logger.Info("frame statistics", slog.String("statistics", a.renderer.Statistics().JSON()))
	return a.device.WaitIdle()
}

func (a *app) record(cmd core1_0.CommandBuffer, frame swapchain.FrameInfo, _ int) error {
	frame.SetViewportAndScissor(a.ext, cmd)
	shader.SetGenericState(a.ext, cmd)
	a.material.Bind(cmd)
	a.vertices.Bind(cmd)
	a.vertices.Draw(cmd)
	return nil
}

// reloadMaterial swaps in a material built from the current shader files. A material that fails
// to build is logged and the previous one stays bound.
func (a *app) reloadMaterial() {
	material, err := a.loadMaterial()
	if err != nil {
		a.logger.Error("shader reload failed", slog.String("error", err.Error()))
		return
	}

	err = a.device.WaitIdle()
	if err != nil {
		material.Destroy()
		a.logger.Error("shader reload failed", slog.String("error", err.Error()))
		return
	}

	a.material.Destroy()
	a.material = material
	a.logger.Info("shaders reloaded")
}

func (a *app) destroy() {
	if a.device != nil {
		_ = a.device.WaitIdle()
	}

	if a.reloader != nil {
		a.reloader.close()
	}
	if a.vertices != nil {
		_ = a.vertices.Destroy()
	}
	if a.material != nil {
		a.material.Destroy()
	}
	if a.renderer != nil {
		_ = a.renderer.Destroy()
	}
	if a.swapchain != nil {
		a.swapchain.Destroy()
	}
	if a.ext != nil {
		a.ext.Destroy()
		a.ext = nil
	}
	if a.device != nil {
		err := a.device.Destroy()
		if err != nil {
			a.logger.Error("failed to destroy device", slog.String("error", err.Error()))
		}
	}
	if a.surface.Initialized() {
		a.surfaceDriver.DestroySurface(a.surface, nil)
	}
	if a.instance != nil {
		a.instance.destroy()
	}
	if a.window != nil {
		_ = a.window.Destroy()
	}
}
