package shader

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/vkext"
)

// Shader is a single shader object bound to one stage
type Shader struct {
	logger *slog.Logger
	ext    vkext.Driver

	handle vkext.Shader
	stage  core1_0.ShaderStageFlags
}

func createInfo(info StageInfo, flags vkext.ShaderCreateFlags) vkext.ShaderCreateInfo {
	return vkext.ShaderCreateInfo{
		Flags:              flags,
		Stage:              info.Stage,
		NextStage:          info.NextStage,
		Code:               info.Code,
		Name:               info.Name,
		SetLayouts:         info.Layout.SetLayouts,
		PushConstantRanges: info.Layout.PushConstantRanges,
	}
}

// NewShader creates an unlinked shader object for a single stage
func NewShader(logger *slog.Logger, ext vkext.Driver, info StageInfo) (*Shader, error) {
	logger.Debug("Shader::New", slog.String("stage", info.Stage.String()))

	handles, _, err := ext.CreateShaders([]vkext.ShaderCreateInfo{createInfo(info, 0)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s shader", info.Stage)
	}

	return &Shader{
		logger: logger,
		ext:    ext,
		handle: handles[0],
		stage:  info.Stage,
	}, nil
}

func (s *Shader) Handle() vkext.Shader {
	return s.handle
}

func (s *Shader) Stage() core1_0.ShaderStageFlags {
	return s.stage
}

// Bind binds this shader to its stage, leaving every other stage as it was
func (s *Shader) Bind(cmd core1_0.CommandBuffer) {
	s.ext.CmdBindShaders(cmd, []core1_0.ShaderStageFlags{s.stage}, []vkext.Shader{s.handle})
}

func (s *Shader) Destroy() {
	if !s.handle.Initialized() {
		return
	}

	s.logger.Debug("Shader::Destroy", slog.String("stage", s.stage.String()))
	s.ext.DestroyShader(s.handle)
	s.handle = 0
}

// LinkedShader is a set of stages created together with ShaderCreateLinkStage. The stages are
// always bound together.
type LinkedShader struct {
	shaders []*Shader

	stages  []core1_0.ShaderStageFlags
	handles []vkext.Shader
}

// NewLinkedShader creates every stage in infos with a single CreateShaders call. infos should
// already have passed through LinkStages.
func NewLinkedShader(logger *slog.Logger, ext vkext.Driver, infos []StageInfo) (*LinkedShader, error) {
	logger.Debug("LinkedShader::New", slog.Int("stages", len(infos)))

	createInfos := make([]vkext.ShaderCreateInfo, 0, len(infos))
	for _, info := range infos {
		createInfos = append(createInfos, createInfo(info, vkext.ShaderCreateLinkStage))
	}

	handles, _, err := ext.CreateShaders(createInfos)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create linked shaders")
	}

	linked := &LinkedShader{
		shaders: make([]*Shader, 0, len(handles)),
		stages:  make([]core1_0.ShaderStageFlags, 0, len(handles)),
		handles: handles,
	}
	for i, handle := range handles {
		linked.shaders = append(linked.shaders, &Shader{
			logger: logger,
			ext:    ext,
			handle: handle,
			stage:  infos[i].Stage,
		})
		linked.stages = append(linked.stages, infos[i].Stage)
	}

	return linked, nil
}

func (l *LinkedShader) Shaders() []*Shader {
	return l.shaders
}

// Bind binds every stage in the set with one call
func (l *LinkedShader) Bind(cmd core1_0.CommandBuffer) {
	l.shaders[0].ext.CmdBindShaders(cmd, l.stages, l.handles)
}

func (l *LinkedShader) Destroy() {
	for _, shader := range l.shaders {
		shader.Destroy()
	}
}

// BindNull unbinds every rasterization stage. Binding is incremental per stage, so this must be
// called before binding a material that does not cover every stage.
func BindNull(ext vkext.Driver, cmd core1_0.CommandBuffer) {
	ext.CmdBindShaders(cmd, RasterStages, make([]vkext.Shader, len(RasterStages)))
}

// SetGenericState sets every piece of dynamic state that shader objects require to a fixed
// baseline: filled, back-culled, clockwise triangle lists with alpha blending into attachment 0
// and no depth or stencil testing
func SetGenericState(ext vkext.Driver, cmd core1_0.CommandBuffer) {
	ext.CmdSetRasterizerDiscardEnable(cmd, false)

	ext.CmdSetVertexInput(cmd, nil, nil)
	ext.CmdSetPrimitiveTopology(cmd, core1_0.PrimitiveTopologyTriangleList)
	ext.CmdSetPrimitiveRestartEnable(cmd, false)

	ext.CmdSetRasterizationSamples(cmd, core1_0.Samples1)
	ext.CmdSetSampleMask(cmd, core1_0.Samples1, []uint32{0xFFFFFFFF})
	ext.CmdSetAlphaToCoverageEnable(cmd, false)
	ext.CmdSetAlphaToOneEnable(cmd, false)
	ext.CmdSetPolygonMode(cmd, core1_0.PolygonModeFill)
	ext.CmdSetLineWidth(cmd, 1)
	ext.CmdSetCullMode(cmd, core1_0.CullModeBack)
	ext.CmdSetFrontFace(cmd, core1_0.FrontFaceClockwise)
	ext.CmdSetDepthWriteEnable(cmd, false)
	ext.CmdSetDepthTestEnable(cmd, false)
	ext.CmdSetDepthBoundsTestEnable(cmd, false)
	ext.CmdSetDepthBiasEnable(cmd, false)
	ext.CmdSetDepthClampEnable(cmd, false)
	ext.CmdSetStencilTestEnable(cmd, false)

	ext.CmdSetLogicOpEnable(cmd, false)
	ext.CmdSetColorBlendEnable(cmd, 0, []bool{true})
	ext.CmdSetColorWriteMask(cmd, 0, []core1_0.ColorComponentFlags{
		core1_0.ColorComponentRed | core1_0.ColorComponentGreen | core1_0.ColorComponentBlue | core1_0.ColorComponentAlpha,
	})
	ext.CmdSetColorBlendEquation(cmd, 0, []vkext.ColorBlendEquation{
		{
			SrcColorBlendFactor: core1_0.BlendFactorSrcAlpha,
			DstColorBlendFactor: core1_0.BlendFactorOneMinusSrcAlpha,
			ColorBlendOp:        core1_0.BlendOpAdd,
			SrcAlphaBlendFactor: core1_0.BlendFactorOne,
			DstAlphaBlendFactor: core1_0.BlendFactorZero,
			AlphaBlendOp:        core1_0.BlendOpAdd,
		},
	})

	ext.CmdSetBlendConstants(cmd, [4]float32{0, 0, 0, 0})
}
