package shader

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestLinkStages_AllSubsets(t *testing.T) {
	for mask := 0; mask < 1<<len(RasterStages); mask++ {
		var stages []StageInfo
		// Reverse the input order so the result cannot depend on it
		for i := len(RasterStages) - 1; i >= 0; i-- {
			if mask&(1<<i) != 0 {
				stages = append(stages, StageInfo{Stage: RasterStages[i], Name: "main"})
			}
		}

		hasVertex := mask&1 != 0
		hasFragment := mask&(1<<(len(RasterStages)-1)) != 0

		linked, err := LinkStages(stages)
		if !hasFragment {
			require.ErrorIs(t, err, ErrMissingStage, "mask %05b", mask)
			require.ErrorContains(t, err, core1_0.StageFragment.String())
			continue
		}
		if !hasVertex {
			require.ErrorIs(t, err, ErrMissingStage, "mask %05b", mask)
			require.ErrorContains(t, err, core1_0.StageVertex.String())
			continue
		}

		require.NoError(t, err, "mask %05b", mask)
		require.Len(t, linked, len(stages))
		require.Equal(t, core1_0.StageVertex, linked[0].Stage)

		for i, stage := range linked {
			if i == len(linked)-1 {
				require.Equal(t, core1_0.StageFragment, stage.Stage)
				require.Equal(t, core1_0.ShaderStageFlags(0), stage.NextStage)
			} else {
				require.Equal(t, linked[i+1].Stage, stage.NextStage, "mask %05b stage %s", mask, stage.Stage)
			}
		}
	}
}

func TestLinkStages_VertexFragment(t *testing.T) {
	linked, err := LinkStages([]StageInfo{
		{Stage: core1_0.StageFragment, Name: "fragMain", Code: []uint32{2}},
		{Stage: core1_0.StageVertex, Name: "vertMain", Code: []uint32{1}},
	})
	require.NoError(t, err)
	require.Equal(t, []StageInfo{
		{Stage: core1_0.StageVertex, NextStage: core1_0.StageFragment, Name: "vertMain", Code: []uint32{1}},
		{Stage: core1_0.StageFragment, NextStage: 0, Name: "fragMain", Code: []uint32{2}},
	}, linked)
}

func TestLinkStages_Duplicate(t *testing.T) {
	_, err := LinkStages([]StageInfo{
		{Stage: core1_0.StageVertex},
		{Stage: core1_0.StageFragment},
		{Stage: core1_0.StageVertex},
	})
	require.ErrorIs(t, err, ErrDuplicateStage)
	require.False(t, errors.Is(err, ErrMissingStage))
}

func TestLinkStages_NonRasterStage(t *testing.T) {
	_, err := LinkStages([]StageInfo{
		{Stage: core1_0.StageVertex},
		{Stage: core1_0.StageCompute},
		{Stage: core1_0.StageFragment},
	})
	require.Error(t, err)
}

func TestLinkStages_Empty(t *testing.T) {
	_, err := LinkStages(nil)
	require.ErrorIs(t, err, ErrMissingStage)
}
