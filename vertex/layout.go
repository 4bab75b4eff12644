package vertex

import (
	"unsafe"

	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/easel/vkext"
	vkngmath "github.com/vkngwrapper/math"
)

// Attribute is one vertex shader input read from binding 0
type Attribute struct {
	Location int
	Format   core1_0.Format
	Offset   int
}

// Layout describes how vertices are laid out in a Buffer
type Layout struct {
	Stride     int
	Attributes []Attribute
}

func (l Layout) bindings() []vkext.VertexInputBindingDescription {
	return []vkext.VertexInputBindingDescription{
		{
			Binding:   0,
			Stride:    l.Stride,
			InputRate: core1_0.VertexInputRateVertex,
			Divisor:   1,
		},
	}
}

func (l Layout) attributes() []vkext.VertexInputAttributeDescription {
	attributes := make([]vkext.VertexInputAttributeDescription, 0, len(l.Attributes))
	for _, attribute := range l.Attributes {
		attributes = append(attributes, vkext.VertexInputAttributeDescription{
			Location: attribute.Location,
			Binding:  0,
			Format:   attribute.Format,
			Offset:   attribute.Offset,
		})
	}
	return attributes
}

// ColoredVertex is a 2D position with a per-vertex color
type ColoredVertex struct {
	Position vkngmath.Vec2[float32]
	Color    vkngmath.Vec3[float32]
}

// ColoredLayout is the Layout of ColoredVertex: position at location 0, color at location 1
func ColoredLayout() Layout {
	v := ColoredVertex{}
	return Layout{
		Stride: int(unsafe.Sizeof(v)),
		Attributes: []Attribute{
			{Location: 0, Format: core1_0.FormatR32G32SignedFloat, Offset: int(unsafe.Offsetof(v.Position))},
			{Location: 1, Format: core1_0.FormatR32G32B32SignedFloat, Offset: int(unsafe.Offsetof(v.Color))},
		},
	}
}

// Bytes reinterprets a slice of plain vertex structs as bytes. T must not contain pointers.
func Bytes[T any](vertices []T) []byte {
	if len(vertices) == 0 {
		return nil
	}

	var zero T
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*int(unsafe.Sizeof(zero)))
}
