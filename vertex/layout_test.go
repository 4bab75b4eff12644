package vertex

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/vkext"
	vkngmath "github.com/vkngwrapper/math"
)

func TestColoredLayout(t *testing.T) {
	layout := ColoredLayout()

	require.Equal(t, 20, layout.Stride)
	require.Equal(t, []Attribute{
		{Location: 0, Format: core1_0.FormatR32G32SignedFloat, Offset: 0},
		{Location: 1, Format: core1_0.FormatR32G32B32SignedFloat, Offset: 8},
	}, layout.Attributes)

	require.Equal(t, []vkext.VertexInputBindingDescription{
		{Binding: 0, Stride: 20, InputRate: core1_0.VertexInputRateVertex, Divisor: 1},
	}, layout.bindings())
	require.Equal(t, []vkext.VertexInputAttributeDescription{
		{Location: 0, Binding: 0, Format: core1_0.FormatR32G32SignedFloat, Offset: 0},
		{Location: 1, Binding: 0, Format: core1_0.FormatR32G32B32SignedFloat, Offset: 8},
	}, layout.attributes())
}

func TestBytes(t *testing.T) {
	require.Nil(t, Bytes[ColoredVertex](nil))

	vertices := []ColoredVertex{
		{Position: vkngmath.Vec2[float32]{X: 1, Y: 2}, Color: vkngmath.Vec3[float32]{X: 3, Y: 4, Z: 5}},
		{Position: vkngmath.Vec2[float32]{X: 6, Y: 7}, Color: vkngmath.Vec3[float32]{X: 8, Y: 9, Z: 10}},
	}
	data := Bytes(vertices)
	require.Len(t, data, 40)

	// Writes through the byte view land in the vertices
	data[20] = 0
	data[21] = 0
	data[22] = 0
	data[23] = 0
	require.Equal(t, float32(0), vertices[1].Position.X)
}
