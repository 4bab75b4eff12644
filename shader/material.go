package shader

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/vkext"
)

// StageFile names the SPIR-V file for one stage of a material
type StageFile struct {
	Path  string
	Stage core1_0.ShaderStageFlags
	// EntryPoint defaults to "main"
	EntryPoint string

	Layout InputLayout
}

// MaterialShader is either a LinkedShader or a list of independently bound stages. Both are bound
// the same way.
type MaterialShader struct {
	ext vkext.Driver

	linked *LinkedShader
	stages []*Shader
	owned  bool
}

// NewMaterialShader loads and links the stages in files. When linked is true the stages are
// created as one LinkedShader, otherwise each stage is created on its own. Duplicate or missing
// stages are reported before any file is read.
func NewMaterialShader(logger *slog.Logger, ext vkext.Driver, files []StageFile, linked bool) (*MaterialShader, error) {
	logger.Debug("MaterialShader::New", slog.Int("stages", len(files)), slog.Bool("linked", linked))

	paths := make(map[core1_0.ShaderStageFlags]string, len(files))
	infos := make([]StageInfo, 0, len(files))
	for _, file := range files {
		paths[file.Stage] = file.Path
		infos = append(infos, StageInfo{
			Stage:  file.Stage,
			Name:   file.EntryPoint,
			Layout: file.Layout,
		})
	}

	infos, err := LinkStages(infos)
	if err != nil {
		return nil, err
	}

	for i := range infos {
		infos[i].Code, err = LoadCode(paths[infos[i].Stage])
		if err != nil {
			return nil, err
		}
	}

	material := &MaterialShader{ext: ext, owned: true}
	if linked {
		material.linked, err = NewLinkedShader(logger, ext, infos)
		if err != nil {
			return nil, err
		}
		return material, nil
	}

	for _, info := range infos {
		stage, err := NewShader(logger, ext, info)
		if err != nil {
			material.Destroy()
			return nil, errors.Wrap(err, "failed to create material stage")
		}
		material.stages = append(material.stages, stage)
	}

	return material, nil
}

// NewMaterialShaderFromStages wraps shaders that were created elsewhere. The material does not
// destroy them.
func NewMaterialShaderFromStages(ext vkext.Driver, stages []*Shader) *MaterialShader {
	return &MaterialShader{
		ext:    ext,
		stages: stages,
	}
}

func (m *MaterialShader) Linked() bool {
	return m.linked != nil
}

// Bind unbinds every stage, then binds the material's stages
func (m *MaterialShader) Bind(cmd core1_0.CommandBuffer) {
	BindNull(m.ext, cmd)

	if m.linked != nil {
		m.linked.Bind(cmd)
		return
	}

	for _, stage := range m.stages {
		stage.Bind(cmd)
	}
}

// Destroy destroys the material's shaders if it created them
func (m *MaterialShader) Destroy() {
	if !m.owned {
		return
	}

	if m.linked != nil {
		m.linked.Destroy()
		m.linked = nil
	}

	for _, stage := range m.stages {
		stage.Destroy()
	}
	m.stages = nil
}
