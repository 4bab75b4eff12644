package shader

import (
	"github.com/cockroachdb/errors"
	"github.com/dolthub/swiss"
	"github.com/vkngwrapper/core/v3/core1_0"
)

// RasterStages is the canonical order of the rasterization pipeline's shader stages
var RasterStages = []core1_0.ShaderStageFlags{
	core1_0.StageVertex,
	core1_0.StageTessellationControl,
	core1_0.StageTessellationEvaluation,
	core1_0.StageGeometry,
	core1_0.StageFragment,
}

// InputLayout describes the resources a stage reads from
type InputLayout struct {
	SetLayouts         []core1_0.DescriptorSetLayout
	PushConstantRanges []core1_0.PushConstantRange
}

// StageInfo is everything needed to create one shader stage
type StageInfo struct {
	Stage core1_0.ShaderStageFlags
	// NextStage is the stage bound after this one, or 0 for the fragment stage. LinkStages fills it in.
	NextStage core1_0.ShaderStageFlags
	// Name is the entry point, "main" when empty
	Name string
	Code []uint32

	Layout InputLayout
}

// LinkStages orders an unordered set of stages along the rasterization pipeline and sets each
// stage's NextStage to the nearest later stage that is present. The set must contain at most one
// shader per stage and must include the vertex and fragment stages.
func LinkStages(stages []StageInfo) ([]StageInfo, error) {
	byStage := swiss.NewMap[core1_0.ShaderStageFlags, StageInfo](uint32(len(RasterStages)))
	for _, stage := range stages {
		if byStage.Has(stage.Stage) {
			return nil, errors.Wrapf(ErrDuplicateStage, "stage %s", stage.Stage)
		}

		byStage.Put(stage.Stage, stage)
	}

	lastStage := RasterStages[len(RasterStages)-1]
	fragment, ok := byStage.Get(lastStage)
	if !ok {
		return nil, errors.Wrapf(ErrMissingStage, "stage %s", lastStage)
	}
	fragment.NextStage = 0

	linked := make([]StageInfo, len(RasterStages))
	linked[len(RasterStages)-1] = fragment
	present := 1

	for i := len(RasterStages) - 2; i >= 0; i-- {
		stage, ok := byStage.Get(RasterStages[i])
		if !ok {
			continue
		}

		stage.NextStage = lastStage
		lastStage = stage.Stage
		linked[i] = stage
		present++
	}

	if lastStage != RasterStages[0] {
		return nil, errors.Wrapf(ErrMissingStage, "stage %s", RasterStages[0])
	}

	if present != len(stages) {
		return nil, errors.Newf("%d stages are not part of the rasterization pipeline", len(stages)-present)
	}

	result := make([]StageInfo, 0, present)
	for _, stage := range linked {
		if stage.Stage != 0 {
			result = append(result, stage)
		}
	}

	return result, nil
}
