package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

type LightType uint32

const (
	LightTypePoint       LightType = 0
	LightTypeDirectional LightType = 1
	LightTypeSpot        LightType = 2
	LightTypeAmbient     LightType = 3
)

func (t LightType) String() string {
	switch t {
	case LightTypePoint:
		return "point"
	case LightTypeDirectional:
		return "directional"
	case LightTypeSpot:
		return "spot"
	case LightTypeAmbient:
		return "ambient"
	default:
		return "unknown"
	}
}

// LightNode is a graph node that emits light.
type LightNode struct {
	*GraphNode

	Type        LightType
	Enabled     bool
	Color       [3]float32 // RGB
	Intensity   float32
	CastShadows bool
}

func NewLightNode(name string, lightType LightType) *LightNode {
	return &LightNode{
		GraphNode: NewGraphNode(name),
		Type:      lightType,
		Enabled:   true,
		Color:     [3]float32{1, 1, 1},
		Intensity: 1,
	}
}

// Direction is the world space direction the light shines in.
// Lights point down their local -Y axis.
func (l *LightNode) Direction() mgl32.Vec3 {
	d := l.WorldMatrix().Mul4x1(mgl32.Vec4{0, -1, 0, 0}).Vec3()
	if d.Len() == 0 {
		return mgl32.Vec3{0, -1, 0}
	}
	return d.Normalize()
}

// Light is the GPU representation of a light
type Light struct {
	Position  [4]float32 // xyz, w unused
	Direction [4]float32 // xyz, w unused
	Color     [4]float32 // rgb, intensity
	Params    [4]float32 // range, cone_angle_cos, type, cast_shadows
}

func (l *LightNode) Pack() Light {
	pos := l.WorldPosition()
	dir := l.Direction()

	shadows := float32(0)
	if l.CastShadows {
		shadows = 1
	}

	return Light{
		Position:  [4]float32{pos.X(), pos.Y(), pos.Z(), 1},
		Direction: [4]float32{dir.X(), dir.Y(), dir.Z(), 0},
		Color:     [4]float32{l.Color[0], l.Color[1], l.Color[2], l.Intensity},
		Params:    [4]float32{0, 0, float32(l.Type), shadows},
	}
}
