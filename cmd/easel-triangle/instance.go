package main

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/config"
	"github.com/vkngwrapper/extensions/v3/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
)

const validationLayer = "VK_LAYER_KHRONOS_validation"

// Dynamic rendering and shader objects need 1.3
var apiVersion = common.APIVersion(common.CreateVersion(1, 3, 0))

type instance struct {
	logger *slog.Logger

	driver         core1_0.CoreInstanceDriver
	debugDriver    ext_debug_utils.ExtensionDriver
	debugMessenger ext_debug_utils.DebugUtilsMessenger
}

func createInstance(logger *slog.Logger, cfg config.Vulkan, window *sdl.Window) (*instance, error) {
	globalDriver, err := core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load vulkan")
	}

	inst := &instance{logger: logger}

	info := core1_0.InstanceCreateInfo{
		ApplicationName:    cfg.ApplicationName,
		ApplicationVersion: common.CreateVersion(1, 0, 0),
		EngineName:         "easel",
		EngineVersion:      common.CreateVersion(1, 0, 0),
		APIVersion:         apiVersion,
	}

	extensions, _, err := globalDriver.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate instance extensions")
	}

	for _, name := range window.VulkanGetInstanceExtensions() {
		if _, ok := extensions[name]; !ok {
			return nil, errors.Newf("missing instance extension %s required by sdl", name)
		}
		info.EnabledExtensionNames = append(info.EnabledExtensionNames, name)
	}

	if _, ok := extensions[khr_portability_enumeration.ExtensionName]; ok {
		info.EnabledExtensionNames = append(info.EnabledExtensionNames, khr_portability_enumeration.ExtensionName)
		info.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	if cfg.Validation {
		layers, _, err := globalDriver.AvailableLayers()
		if err != nil {
			return nil, errors.Wrap(err, "failed to enumerate instance layers")
		}
		if _, ok := layers[validationLayer]; !ok {
			return nil, errors.Newf("validation requested but %s is not installed", validationLayer)
		}

		info.EnabledLayerNames = append(info.EnabledLayerNames, validationLayer)
		info.EnabledExtensionNames = append(info.EnabledExtensionNames, ext_debug_utils.ExtensionName)
		info.Next = inst.debugMessengerInfo()
	}

	inst.driver, _, err = globalDriver.CreateInstance(nil, info)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create instance")
	}

	if cfg.Validation {
		inst.debugDriver = ext_debug_utils.CreateExtensionDriverFromCoreDriver(inst.driver)
		inst.debugMessenger, _, err = inst.debugDriver.CreateDebugUtilsMessenger(nil, inst.debugMessengerInfo())
		if err != nil {
			inst.driver.DestroyInstance(nil)
			return nil, errors.Wrap(err, "failed to create debug messenger")
		}
	}

	return inst, nil
}

func (i *instance) debugMessengerInfo() ext_debug_utils.DebugUtilsMessengerCreateInfo {
	return ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    i.logValidation,
	}
}

func (i *instance) logValidation(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
	level := slog.LevelWarn
	if severity&ext_debug_utils.SeverityError != 0 {
		level = slog.LevelError
	}

	i.logger.Log(context.Background(), level, data.Message, slog.String("type", msgType.String()))
	return false
}

func (i *instance) destroy() {
	if i.debugMessenger.Initialized() {
		i.debugDriver.DestroyDebugUtilsMessenger(i.debugMessenger, nil)
	}
	i.driver.DestroyInstance(nil)
}
