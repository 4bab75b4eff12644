package vkext

/*
#cgo linux LDFLAGS: -lvulkan
#cgo freebsd LDFLAGS: -lvulkan
#cgo darwin LDFLAGS: -lvulkan
#cgo windows LDFLAGS: -lvulkan-1
#include <stdlib.h>
#include "procs.h"
*/
import "C"
import (
	"unsafe"

	"github.com/CannibalVox/cgoalloc"
	"github.com/CannibalVox/cgoparam"
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// VulkanDriver is the loader-backed implementation of Driver
type VulkanDriver struct {
	alloc  cgoalloc.Allocator
	procs  *C.easelDeviceProcs
	device C.VkDevice
}

var _ Driver = &VulkanDriver{}

// CreateDriverFromCoreDriver resolves every entry point in Driver against the device owned by
// the provided driver. The device must have been created with VK_EXT_shader_object enabled and
// the Vulkan 1.3 dynamic rendering feature active.
func CreateDriverFromCoreDriver(coreDriver core1_0.CoreDeviceDriver) (*VulkanDriver, error) {
	alloc := &cgoalloc.DefaultAllocator{}
	procs := (*C.easelDeviceProcs)(alloc.Malloc(C.sizeof_easelDeviceProcs))

	device := deviceHandle(coreDriver.Device())
	missing := C.easelLoadDeviceProcs(device, procs)
	if missing != nil {
		alloc.Free(unsafe.Pointer(procs))
		return nil, errors.Newf("device does not expose %s", C.GoString(missing))
	}

	return &VulkanDriver{
		alloc:  alloc,
		procs:  procs,
		device: device,
	}, nil
}

func (d *VulkanDriver) Destroy() {
	if d.procs == nil {
		return
	}

	d.alloc.Free(unsafe.Pointer(d.procs))
	d.procs = nil
}

func deviceHandle(device core1_0.Device) C.VkDevice {
	handle := device.Handle()
	return *(*C.VkDevice)(unsafe.Pointer(&handle))
}

func commandBufferHandle(cmd core1_0.CommandBuffer) C.VkCommandBuffer {
	handle := cmd.Handle()
	return *(*C.VkCommandBuffer)(unsafe.Pointer(&handle))
}

func imageViewHandle(view core1_0.ImageView) C.VkImageView {
	handle := view.Handle()
	return *(*C.VkImageView)(unsafe.Pointer(&handle))
}

func setLayoutHandle(layout core1_0.DescriptorSetLayout) C.VkDescriptorSetLayout {
	handle := layout.Handle()
	return *(*C.VkDescriptorSetLayout)(unsafe.Pointer(&handle))
}

func shaderHandle(shader Shader) C.VkShaderEXT {
	return *(*C.VkShaderEXT)(unsafe.Pointer(&shader))
}

func boolToVk(value bool) C.VkBool32 {
	if value {
		return C.VK_TRUE
	}
	return C.VK_FALSE
}

func (d *VulkanDriver) CreateShaders(infos []ShaderCreateInfo) ([]Shader, common.VkResult, error) {
	if len(infos) == 0 {
		return nil, core1_0.VKSuccess, nil
	}

	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	count := len(infos)
	createInfos := (*C.VkShaderCreateInfoEXT)(arena.Malloc(count * C.sizeof_VkShaderCreateInfoEXT))
	createSlice := unsafe.Slice(createInfos, count)

	for i, info := range infos {
		if len(info.Code) == 0 {
			return nil, core1_0.VKErrorUnknown, errors.Newf("shader %d (%s) has no code", i, info.Stage)
		}

		codeSize := len(info.Code) * 4
		code := arena.Malloc(codeSize)
		copy(unsafe.Slice((*uint32)(code), len(info.Code)), info.Code)

		name := info.Name
		if name == "" {
			name = "main"
		}

		createSlice[i] = C.VkShaderCreateInfoEXT{
			sType:     C.VK_STRUCTURE_TYPE_SHADER_CREATE_INFO_EXT,
			flags:     C.VkShaderCreateFlagsEXT(info.Flags),
			stage:     C.VkShaderStageFlagBits(info.Stage),
			nextStage: C.VkShaderStageFlags(info.NextStage),
			codeType:  C.VK_SHADER_CODE_TYPE_SPIRV_EXT,
			codeSize:  C.size_t(codeSize),
			pCode:     unsafe.Pointer(code),
			pName:     (*C.char)(arena.CString(name)),
		}

		if len(info.SetLayouts) > 0 {
			layouts := (*C.VkDescriptorSetLayout)(arena.Malloc(len(info.SetLayouts) * C.sizeof_VkDescriptorSetLayout))
			layoutSlice := unsafe.Slice(layouts, len(info.SetLayouts))
			for j, layout := range info.SetLayouts {
				layoutSlice[j] = setLayoutHandle(layout)
			}
			createSlice[i].setLayoutCount = C.uint32_t(len(info.SetLayouts))
			createSlice[i].pSetLayouts = layouts
		}

		if len(info.PushConstantRanges) > 0 {
			ranges := (*C.VkPushConstantRange)(arena.Malloc(len(info.PushConstantRanges) * C.sizeof_VkPushConstantRange))
			rangeSlice := unsafe.Slice(ranges, len(info.PushConstantRanges))
			for j, pushRange := range info.PushConstantRanges {
				rangeSlice[j] = C.VkPushConstantRange{
					stageFlags: C.VkShaderStageFlags(pushRange.StageFlags),
					offset:     C.uint32_t(pushRange.Offset),
					size:       C.uint32_t(pushRange.Size),
				}
			}
			createSlice[i].pushConstantRangeCount = C.uint32_t(len(info.PushConstantRanges))
			createSlice[i].pPushConstantRanges = ranges
		}
	}

	outShaders := (*C.VkShaderEXT)(arena.Malloc(count * C.sizeof_VkShaderEXT))
	res := common.VkResult(C.easelCreateShaders(d.procs, d.device, C.uint32_t(count), createInfos, outShaders))
	err := res.ToError()
	if err != nil {
		return nil, res, err
	}

	shaders := make([]Shader, count)
	for i, shader := range unsafe.Slice(outShaders, count) {
		shaders[i] = *(*Shader)(unsafe.Pointer(&shader))
	}

	return shaders, res, nil
}

func (d *VulkanDriver) DestroyShader(shader Shader) {
	if !shader.Initialized() {
		return
	}
	C.easelDestroyShader(d.procs, d.device, shaderHandle(shader))
}

func (d *VulkanDriver) CmdBindShaders(cmd core1_0.CommandBuffer, stages []core1_0.ShaderStageFlags, shaders []Shader) {
	if len(stages) != len(shaders) {
		panic(errors.Newf("CmdBindShaders: %d stages but %d shaders", len(stages), len(shaders)))
	}
	if len(stages) == 0 {
		return
	}

	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	stagePtr := (*C.VkShaderStageFlagBits)(arena.Malloc(len(stages) * C.sizeof_VkShaderStageFlagBits))
	shaderPtr := (*C.VkShaderEXT)(arena.Malloc(len(shaders) * C.sizeof_VkShaderEXT))
	stageSlice := unsafe.Slice(stagePtr, len(stages))
	shaderSlice := unsafe.Slice(shaderPtr, len(shaders))

	for i := range stages {
		stageSlice[i] = C.VkShaderStageFlagBits(stages[i])
		// A null handle unbinds the stage
		shaderSlice[i] = shaderHandle(shaders[i])
	}

	C.easelCmdBindShaders(d.procs, commandBufferHandle(cmd), C.uint32_t(len(stages)), stagePtr, shaderPtr)
}

func (d *VulkanDriver) CmdBeginRendering(cmd core1_0.CommandBuffer, info RenderingInfo) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	var attachments *C.VkRenderingAttachmentInfo
	if len(info.ColorAttachments) > 0 {
		attachments = (*C.VkRenderingAttachmentInfo)(arena.Malloc(len(info.ColorAttachments) * C.sizeof_VkRenderingAttachmentInfo))
		attachmentSlice := unsafe.Slice(attachments, len(info.ColorAttachments))
		for i, attachment := range info.ColorAttachments {
			attachmentSlice[i] = C.VkRenderingAttachmentInfo{
				sType:       C.VK_STRUCTURE_TYPE_RENDERING_ATTACHMENT_INFO,
				imageView:   imageViewHandle(attachment.ImageView),
				imageLayout: C.VkImageLayout(attachment.ImageLayout),
				resolveMode: C.VK_RESOLVE_MODE_NONE,
				loadOp:      C.VkAttachmentLoadOp(attachment.LoadOp),
				storeOp:     C.VkAttachmentStoreOp(attachment.StoreOp),
			}
			clear := (*[4]C.float)(unsafe.Pointer(&attachmentSlice[i].clearValue))
			for c := 0; c < 4; c++ {
				clear[c] = C.float(attachment.ClearColor[c])
			}
		}
	}

	layerCount := info.LayerCount
	if layerCount == 0 {
		layerCount = 1
	}

	renderingInfo := (*C.VkRenderingInfo)(arena.Malloc(C.sizeof_VkRenderingInfo))
	*renderingInfo = C.VkRenderingInfo{
		sType: C.VK_STRUCTURE_TYPE_RENDERING_INFO,
		renderArea: C.VkRect2D{
			offset: C.VkOffset2D{
				x: C.int32_t(info.RenderArea.Offset.X),
				y: C.int32_t(info.RenderArea.Offset.Y),
			},
			extent: C.VkExtent2D{
				width:  C.uint32_t(info.RenderArea.Extent.Width),
				height: C.uint32_t(info.RenderArea.Extent.Height),
			},
		},
		layerCount:           C.uint32_t(layerCount),
		colorAttachmentCount: C.uint32_t(len(info.ColorAttachments)),
		pColorAttachments:    attachments,
	}

	C.easelCmdBeginRendering(d.procs, commandBufferHandle(cmd), renderingInfo)
}

func (d *VulkanDriver) CmdEndRendering(cmd core1_0.CommandBuffer) {
	C.easelCmdEndRendering(d.procs, commandBufferHandle(cmd))
}

func (d *VulkanDriver) CmdSetViewportWithCount(cmd core1_0.CommandBuffer, viewports []core1_0.Viewport) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	ptr := (*C.VkViewport)(arena.Malloc(len(viewports) * C.sizeof_VkViewport))
	slice := unsafe.Slice(ptr, len(viewports))
	for i, viewport := range viewports {
		slice[i] = C.VkViewport{
			x:        C.float(viewport.X),
			y:        C.float(viewport.Y),
			width:    C.float(viewport.Width),
			height:   C.float(viewport.Height),
			minDepth: C.float(viewport.MinDepth),
			maxDepth: C.float(viewport.MaxDepth),
		}
	}

	C.easelCmdSetViewportWithCount(d.procs, commandBufferHandle(cmd), C.uint32_t(len(viewports)), ptr)
}

func (d *VulkanDriver) CmdSetScissorWithCount(cmd core1_0.CommandBuffer, scissors []core1_0.Rect2D) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	ptr := (*C.VkRect2D)(arena.Malloc(len(scissors) * C.sizeof_VkRect2D))
	slice := unsafe.Slice(ptr, len(scissors))
	for i, scissor := range scissors {
		slice[i] = C.VkRect2D{
			offset: C.VkOffset2D{x: C.int32_t(scissor.Offset.X), y: C.int32_t(scissor.Offset.Y)},
			extent: C.VkExtent2D{width: C.uint32_t(scissor.Extent.Width), height: C.uint32_t(scissor.Extent.Height)},
		}
	}

	C.easelCmdSetScissorWithCount(d.procs, commandBufferHandle(cmd), C.uint32_t(len(scissors)), ptr)
}

func (d *VulkanDriver) CmdSetRasterizerDiscardEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetRasterizerDiscardEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetVertexInput(cmd core1_0.CommandBuffer, bindings []VertexInputBindingDescription, attributes []VertexInputAttributeDescription) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	var bindingPtr *C.VkVertexInputBindingDescription2EXT
	if len(bindings) > 0 {
		bindingPtr = (*C.VkVertexInputBindingDescription2EXT)(arena.Malloc(len(bindings) * C.sizeof_VkVertexInputBindingDescription2EXT))
		bindingSlice := unsafe.Slice(bindingPtr, len(bindings))
		for i, binding := range bindings {
			divisor := binding.Divisor
			if divisor == 0 {
				divisor = 1
			}
			bindingSlice[i] = C.VkVertexInputBindingDescription2EXT{
				sType:     C.VK_STRUCTURE_TYPE_VERTEX_INPUT_BINDING_DESCRIPTION_2_EXT,
				binding:   C.uint32_t(binding.Binding),
				stride:    C.uint32_t(binding.Stride),
				inputRate: C.VkVertexInputRate(binding.InputRate),
				divisor:   C.uint32_t(divisor),
			}
		}
	}

	var attributePtr *C.VkVertexInputAttributeDescription2EXT
	if len(attributes) > 0 {
		attributePtr = (*C.VkVertexInputAttributeDescription2EXT)(arena.Malloc(len(attributes) * C.sizeof_VkVertexInputAttributeDescription2EXT))
		attributeSlice := unsafe.Slice(attributePtr, len(attributes))
		for i, attribute := range attributes {
			attributeSlice[i] = C.VkVertexInputAttributeDescription2EXT{
				sType:    C.VK_STRUCTURE_TYPE_VERTEX_INPUT_ATTRIBUTE_DESCRIPTION_2_EXT,
				location: C.uint32_t(attribute.Location),
				binding:  C.uint32_t(attribute.Binding),
				format:   C.VkFormat(attribute.Format),
				offset:   C.uint32_t(attribute.Offset),
			}
		}
	}

	C.easelCmdSetVertexInput(d.procs, commandBufferHandle(cmd),
		C.uint32_t(len(bindings)), bindingPtr,
		C.uint32_t(len(attributes)), attributePtr)
}

func (d *VulkanDriver) CmdSetPrimitiveTopology(cmd core1_0.CommandBuffer, topology core1_0.PrimitiveTopology) {
	C.easelCmdSetPrimitiveTopology(d.procs, commandBufferHandle(cmd), C.VkPrimitiveTopology(topology))
}

func (d *VulkanDriver) CmdSetPrimitiveRestartEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetPrimitiveRestartEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetLineWidth(cmd core1_0.CommandBuffer, width float32) {
	C.easelCmdSetLineWidth(d.procs, commandBufferHandle(cmd), C.float(width))
}

func (d *VulkanDriver) CmdSetCullMode(cmd core1_0.CommandBuffer, mode core1_0.CullModeFlags) {
	C.easelCmdSetCullMode(d.procs, commandBufferHandle(cmd), C.VkCullModeFlags(mode))
}

func (d *VulkanDriver) CmdSetFrontFace(cmd core1_0.CommandBuffer, face core1_0.FrontFace) {
	C.easelCmdSetFrontFace(d.procs, commandBufferHandle(cmd), C.VkFrontFace(face))
}

func (d *VulkanDriver) CmdSetDepthTestEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetDepthTestEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetDepthWriteEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetDepthWriteEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetDepthBoundsTestEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetDepthBoundsTestEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetDepthBiasEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetDepthBiasEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetStencilTestEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetStencilTestEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetBlendConstants(cmd core1_0.CommandBuffer, constants [4]float32) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	ptr := (*C.float)(arena.Malloc(4 * C.sizeof_float))
	slice := unsafe.Slice(ptr, 4)
	for i := range constants {
		slice[i] = C.float(constants[i])
	}

	C.easelCmdSetBlendConstants(d.procs, commandBufferHandle(cmd), ptr)
}

func (d *VulkanDriver) CmdSetDepthClampEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetDepthClampEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetRasterizationSamples(cmd core1_0.CommandBuffer, samples core1_0.SampleCountFlags) {
	C.easelCmdSetRasterizationSamples(d.procs, commandBufferHandle(cmd), C.VkSampleCountFlagBits(samples))
}

func (d *VulkanDriver) CmdSetSampleMask(cmd core1_0.CommandBuffer, samples core1_0.SampleCountFlags, mask []uint32) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	ptr := (*C.VkSampleMask)(arena.Malloc(len(mask) * C.sizeof_VkSampleMask))
	slice := unsafe.Slice(ptr, len(mask))
	for i, word := range mask {
		slice[i] = C.VkSampleMask(word)
	}

	C.easelCmdSetSampleMask(d.procs, commandBufferHandle(cmd), C.VkSampleCountFlagBits(samples), ptr)
}

func (d *VulkanDriver) CmdSetAlphaToCoverageEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetAlphaToCoverageEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetAlphaToOneEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetAlphaToOneEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetPolygonMode(cmd core1_0.CommandBuffer, mode core1_0.PolygonMode) {
	C.easelCmdSetPolygonMode(d.procs, commandBufferHandle(cmd), C.VkPolygonMode(mode))
}

func (d *VulkanDriver) CmdSetLogicOpEnable(cmd core1_0.CommandBuffer, enable bool) {
	C.easelCmdSetLogicOpEnable(d.procs, commandBufferHandle(cmd), boolToVk(enable))
}

func (d *VulkanDriver) CmdSetColorBlendEnable(cmd core1_0.CommandBuffer, firstAttachment int, enables []bool) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	ptr := (*C.VkBool32)(arena.Malloc(len(enables) * C.sizeof_VkBool32))
	slice := unsafe.Slice(ptr, len(enables))
	for i, enable := range enables {
		slice[i] = boolToVk(enable)
	}

	C.easelCmdSetColorBlendEnable(d.procs, commandBufferHandle(cmd), C.uint32_t(firstAttachment), C.uint32_t(len(enables)), ptr)
}

func (d *VulkanDriver) CmdSetColorBlendEquation(cmd core1_0.CommandBuffer, firstAttachment int, equations []ColorBlendEquation) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	ptr := (*C.VkColorBlendEquationEXT)(arena.Malloc(len(equations) * C.sizeof_VkColorBlendEquationEXT))
	slice := unsafe.Slice(ptr, len(equations))
	for i, equation := range equations {
		slice[i] = C.VkColorBlendEquationEXT{
			srcColorBlendFactor: C.VkBlendFactor(equation.SrcColorBlendFactor),
			dstColorBlendFactor: C.VkBlendFactor(equation.DstColorBlendFactor),
			colorBlendOp:        C.VkBlendOp(equation.ColorBlendOp),
			srcAlphaBlendFactor: C.VkBlendFactor(equation.SrcAlphaBlendFactor),
			dstAlphaBlendFactor: C.VkBlendFactor(equation.DstAlphaBlendFactor),
			alphaBlendOp:        C.VkBlendOp(equation.AlphaBlendOp),
		}
	}

	C.easelCmdSetColorBlendEquation(d.procs, commandBufferHandle(cmd), C.uint32_t(firstAttachment), C.uint32_t(len(equations)), ptr)
}

func (d *VulkanDriver) CmdSetColorWriteMask(cmd core1_0.CommandBuffer, firstAttachment int, masks []core1_0.ColorComponentFlags) {
	arena := cgoparam.GetAlloc()
	defer cgoparam.ReturnAlloc(arena)

	ptr := (*C.VkColorComponentFlags)(arena.Malloc(len(masks) * C.sizeof_VkColorComponentFlags))
	slice := unsafe.Slice(ptr, len(masks))
	for i, mask := range masks {
		slice[i] = C.VkColorComponentFlags(mask)
	}

	C.easelCmdSetColorWriteMask(d.procs, commandBufferHandle(cmd), C.uint32_t(firstAttachment), C.uint32_t(len(masks)), ptr)
}
