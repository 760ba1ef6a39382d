package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// BasicMaterial is an unlit, flat color material.
type BasicMaterial struct {
	ID    string
	Color mgl32.Vec4 // RGBA, 0..1

	// parameters is the shader-facing snapshot produced by Update
	parameters [4]float32
}

func NewBasicMaterial(c color.Color) *BasicMaterial {
	return &BasicMaterial{
		ID:    uuid.NewString(),
		Color: ColorToVec4(c),
	}
}

// Update copies the current color into the shader parameters.
func (m *BasicMaterial) Update() {
	m.parameters = [4]float32{m.Color[0], m.Color[1], m.Color[2], m.Color[3]}
}

func (m *BasicMaterial) Parameters() [4]float32 { return m.parameters }

// ColorToVec4 converts any color.Color to normalized non-premultiplied RGBA.
func ColorToVec4(c color.Color) mgl32.Vec4 {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return mgl32.Vec4{
		float32(n.R) / 255,
		float32(n.G) / 255,
		float32(n.B) / 255,
		float32(n.A) / 255,
	}
}
