package vkext

//go:generate mockgen -source driver.go -destination ./mocks/driver.go -package mocks

import (
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// ShaderObjectExtensionName is the device extension that provides shader objects and the
// extended dynamic state commands used in place of pipelines
const ShaderObjectExtensionName = "VK_EXT_shader_object"

// Shader is a VkShaderEXT handle. The zero value is the null handle.
type Shader uint64

// Initialized returns true if this is a live shader handle
func (s Shader) Initialized() bool { return s != 0 }

// ShaderCreateInfo describes a single stage passed to CreateShaders
type ShaderCreateInfo struct {
	Flags ShaderCreateFlags
	// Stage is the single stage this shader will be bound to
	Stage core1_0.ShaderStageFlags
	// NextStage is the set of stages that may follow Stage. It is zero for the final stage.
	NextStage core1_0.ShaderStageFlags
	// Code is SPIR-V bytecode
	Code []uint32
	// Name is the entry point
	Name string

	SetLayouts         []core1_0.DescriptorSetLayout
	PushConstantRanges []core1_0.PushConstantRange
}

// RenderingAttachmentInfo is a color attachment used with CmdBeginRendering
type RenderingAttachmentInfo struct {
	ImageView   core1_0.ImageView
	ImageLayout core1_0.ImageLayout
	LoadOp      core1_0.AttachmentLoadOp
	StoreOp     core1_0.AttachmentStoreOp
	ClearColor  [4]float32
}

// RenderingInfo describes a dynamic rendering scope
type RenderingInfo struct {
	RenderArea       core1_0.Rect2D
	LayerCount       int
	ColorAttachments []RenderingAttachmentInfo
}

type VertexInputBindingDescription struct {
	Binding   int
	Stride    int
	InputRate core1_0.VertexInputRate
	Divisor   int
}

type VertexInputAttributeDescription struct {
	Location int
	Binding  int
	Format   core1_0.Format
	Offset   int
}

type ColorBlendEquation struct {
	SrcColorBlendFactor core1_0.BlendFactor
	DstColorBlendFactor core1_0.BlendFactor
	ColorBlendOp        core1_0.BlendOp
	SrcAlphaBlendFactor core1_0.BlendFactor
	DstAlphaBlendFactor core1_0.BlendFactor
	AlphaBlendOp        core1_0.BlendOp
}

// Driver exposes the dynamic rendering, shader object and dynamic state commands that are
// issued directly against the loader rather than through core1_0.CoreDeviceDriver
type Driver interface {
	CreateShaders(infos []ShaderCreateInfo) ([]Shader, common.VkResult, error)
	DestroyShader(shader Shader)
	CmdBindShaders(cmd core1_0.CommandBuffer, stages []core1_0.ShaderStageFlags, shaders []Shader)

	CmdBeginRendering(cmd core1_0.CommandBuffer, info RenderingInfo)
	CmdEndRendering(cmd core1_0.CommandBuffer)

	CmdSetViewportWithCount(cmd core1_0.CommandBuffer, viewports []core1_0.Viewport)
	CmdSetScissorWithCount(cmd core1_0.CommandBuffer, scissors []core1_0.Rect2D)
	CmdSetRasterizerDiscardEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetVertexInput(cmd core1_0.CommandBuffer, bindings []VertexInputBindingDescription, attributes []VertexInputAttributeDescription)
	CmdSetPrimitiveTopology(cmd core1_0.CommandBuffer, topology core1_0.PrimitiveTopology)
	CmdSetPrimitiveRestartEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetLineWidth(cmd core1_0.CommandBuffer, width float32)
	CmdSetCullMode(cmd core1_0.CommandBuffer, mode core1_0.CullModeFlags)
	CmdSetFrontFace(cmd core1_0.CommandBuffer, face core1_0.FrontFace)
	CmdSetDepthTestEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetDepthWriteEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetDepthBoundsTestEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetDepthBiasEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetStencilTestEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetBlendConstants(cmd core1_0.CommandBuffer, constants [4]float32)

	CmdSetDepthClampEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetRasterizationSamples(cmd core1_0.CommandBuffer, samples core1_0.SampleCountFlags)
	CmdSetSampleMask(cmd core1_0.CommandBuffer, samples core1_0.SampleCountFlags, mask []uint32)
	CmdSetAlphaToCoverageEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetAlphaToOneEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetPolygonMode(cmd core1_0.CommandBuffer, mode core1_0.PolygonMode)
	CmdSetLogicOpEnable(cmd core1_0.CommandBuffer, enable bool)
	CmdSetColorBlendEnable(cmd core1_0.CommandBuffer, firstAttachment int, enables []bool)
	CmdSetColorBlendEquation(cmd core1_0.CommandBuffer, firstAttachment int, equations []ColorBlendEquation)
	CmdSetColorWriteMask(cmd core1_0.CommandBuffer, firstAttachment int, masks []core1_0.ColorComponentFlags)

	// Destroy releases the resolved entry point table. It does not destroy the device.
	Destroy()
}
