package device

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
)

func TestSelectQueueFamilies_DedicatedTransfer(t *testing.T) {
	indices, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer,
		core1_0.QueueTransfer,
		core1_0.QueueCompute,
	}, []bool{true, false, false})
	require.NoError(t, err)
	require.Equal(t, QueueFamilyIndices{Graphics: 0, Present: 0, Transfer: 1}, indices)
	require.Equal(t, []int{0, 1}, indices.UniqueFamilies())
}

func TestSelectQueueFamilies_TransferAliasesGraphics(t *testing.T) {
	indices, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueGraphics | core1_0.QueueCompute | core1_0.QueueTransfer,
		core1_0.QueueCompute | core1_0.QueueTransfer,
	}, []bool{true, true})
	require.NoError(t, err)
	require.Equal(t, QueueFamilyIndices{Graphics: 0, Present: 0, Transfer: 0}, indices)
	require.Equal(t, []int{0}, indices.UniqueFamilies())
}

func TestSelectQueueFamilies_SeparatePresent(t *testing.T) {
	indices, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueCompute,
		core1_0.QueueGraphics,
		core1_0.QueueCompute,
		core1_0.QueueTransfer,
	}, []bool{false, false, true, true})
	require.NoError(t, err)
	require.Equal(t, QueueFamilyIndices{Graphics: 1, Present: 2, Transfer: 3}, indices)
	require.Equal(t, []int{1, 3, 2}, indices.UniqueFamilies())
}

func TestSelectQueueFamilies_GraphicsPresentOverrides(t *testing.T) {
	indices, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueCompute,
		core1_0.QueueGraphics,
	}, []bool{true, true})
	require.NoError(t, err)
	// A graphics family that can present takes over the present role
	require.Equal(t, QueueFamilyIndices{Graphics: 1, Present: 1, Transfer: 1}, indices)
	require.Equal(t, []int{1}, indices.UniqueFamilies())
}

func TestSelectQueueFamilies_FirstMatchWins(t *testing.T) {
	indices, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueGraphics | core1_0.QueueTransfer,
		core1_0.QueueGraphics | core1_0.QueueTransfer,
		core1_0.QueueTransfer,
		core1_0.QueueTransfer,
	}, []bool{true, true, true, true})
	require.NoError(t, err)
	require.Equal(t, QueueFamilyIndices{Graphics: 0, Present: 0, Transfer: 2}, indices)
}

func TestSelectQueueFamilies_NoGraphics(t *testing.T) {
	_, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueCompute | core1_0.QueueTransfer,
		core1_0.QueueTransfer,
	}, []bool{true, true})
	require.True(t, errors.Is(err, ErrNoGraphicsQueue))
}

func TestSelectQueueFamilies_NoPresent(t *testing.T) {
	_, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueGraphics,
		core1_0.QueueTransfer,
	}, []bool{false, false})
	require.True(t, errors.Is(err, ErrNoPresentQueue))
}

func TestSelectQueueFamilies_MismatchedInput(t *testing.T) {
	_, err := SelectQueueFamilies([]core1_0.QueueFlags{core1_0.QueueGraphics}, nil)
	require.Error(t, err)
}

func TestQueueFamilyIndices_Family(t *testing.T) {
	indices := QueueFamilyIndices{Graphics: 2, Present: 1, Transfer: 0}
	require.Equal(t, 2, indices.Family(QueueGraphics))
	require.Equal(t, 1, indices.Family(QueuePresent))
	require.Equal(t, 0, indices.Family(QueueTransfer))
	require.Equal(t, -1, indices.Family(queueRoleCount))
}

func TestSelectQueueFamilies_PresentBeforeGraphics(t *testing.T) {
	indices, err := SelectQueueFamilies([]core1_0.QueueFlags{
		core1_0.QueueCompute,
		core1_0.QueueGraphics,
	}, []bool{true, false})
	require.NoError(t, err)
	require.Equal(t, QueueFamilyIndices{Graphics: 1, Present: 0, Transfer: 1}, indices)
	require.Equal(t, []int{1, 0}, indices.UniqueFamilies())
}
