package vkext

/*
#include <stdlib.h>
#include <vulkan/vulkan.h>
*/
import "C"
import (
	"unsafe"

	"github.com/CannibalVox/cgoparam"
	"github.com/vkngwrapper/core/v3/common"
)

// PhysicalDeviceVulkan13Features enables the Vulkan 1.3 features required for rendering
// without render passes. It can be chained into core1_0.DeviceCreateInfo.
type PhysicalDeviceVulkan13Features struct {
	DynamicRendering bool
	Synchronization2 bool
	Maintenance4     bool

	common.NextOptions
}

func (o PhysicalDeviceVulkan13Features) PopulateCPointer(allocator *cgoparam.Allocator, preallocatedPointer unsafe.Pointer, next unsafe.Pointer) (unsafe.Pointer, error) {
	if preallocatedPointer == nil {
		preallocatedPointer = allocator.Malloc(C.sizeof_VkPhysicalDeviceVulkan13Features)
	}

	features := (*C.VkPhysicalDeviceVulkan13Features)(preallocatedPointer)
	*features = C.VkPhysicalDeviceVulkan13Features{}
	features.sType = C.VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_VULKAN_1_3_FEATURES
	features.pNext = next
	features.dynamicRendering = boolToVk(o.DynamicRendering)
	features.synchronization2 = boolToVk(o.Synchronization2)
	features.maintenance4 = boolToVk(o.Maintenance4)

	return preallocatedPointer, nil
}

// PhysicalDeviceShaderObjectFeatures enables VK_EXT_shader_object. It can be chained into
// core1_0.DeviceCreateInfo.
type PhysicalDeviceShaderObjectFeatures struct {
	ShaderObject bool

	common.NextOptions
}

func (o PhysicalDeviceShaderObjectFeatures) PopulateCPointer(allocator *cgoparam.Allocator, preallocatedPointer unsafe.Pointer, next unsafe.Pointer) (unsafe.Pointer, error) {
	if preallocatedPointer == nil {
		preallocatedPointer = allocator.Malloc(C.sizeof_VkPhysicalDeviceShaderObjectFeaturesEXT)
	}

	features := (*C.VkPhysicalDeviceShaderObjectFeaturesEXT)(preallocatedPointer)
	features.sType = C.VK_STRUCTURE_TYPE_PHYSICAL_DEVICE_SHADER_OBJECT_FEATURES_EXT
	features.pNext = next
	features.shaderObject = boolToVk(o.ShaderObject)

	return preallocatedPointer, nil
}
