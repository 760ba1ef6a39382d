package lumen

import (
	"github.com/gekko3d/lumen/gfx"
	"github.com/gekko3d/lumen/scene"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/colornames"
)

const (
	directionalGlyphVertices = 32
	directionalGlyphBase     = 16
)

// directionalGlyphArrows is a center arrow and a smaller lower arrow, as line pairs.
// The light shines down -Y, so both arrows point that way.
var directionalGlyphArrows = [directionalGlyphBase]mgl32.Vec3{
	// Center arrow
	{0, 0, 0}, {0, -8, 0},       // Stalk
	{-0.5, -8, 0}, {0.5, -8, 0}, // Arrowhead base
	{0.5, -8, 0}, {0, -10, 0},   // Arrowhead side
	{0, -10, 0}, {-0.5, -8, 0},  // Arrowhead side
	// Lower arrow
	{0, 0, -2}, {0, -8, -2},
	{-0.25, -8, -2}, {0.25, -8, -2},
	{0.25, -8, -2}, {0, -10, -2},
	{0, -10, -2}, {-0.25, -8, -2},
}

// directionalGlyphPositions returns the 32 glyph vertices. Vertex 16+i is vertex 8+i
// turned 120 degrees about +Y, filled in order, so 16..23 is the lower arrow at 120
// degrees and 24..31 the same arrow at 240 degrees.
func directionalGlyphPositions() [directionalGlyphVertices]mgl32.Vec3 {
	var positions [directionalGlyphVertices]mgl32.Vec3
	copy(positions[:], directionalGlyphArrows[:])

	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(120))
	for i := 0; i < directionalGlyphBase; i++ {
		positions[i+16] = rot.Mul4x1(positions[i+8].Vec4(1)).Vec3()
	}
	return positions
}

// newDirectionalGlyph builds the shared debug material and line mesh used to show
// directional lights in the designer.
func newDirectionalGlyph() (*scene.BasicMaterial, *gfx.VertexBuffer, *scene.Mesh) {
	material := scene.NewBasicMaterial(colornames.Yellow)
	material.Update()

	format := gfx.NewVertexFormat(gfx.VertexElement{
		Semantic:      "vertex_position",
		NumComponents: 3,
		Type:          gfx.Float32,
	})

	positions := directionalGlyphPositions()
	data := make([]float32, 0, directionalGlyphVertices*3)
	for _, p := range positions {
		data = append(data, p.X(), p.Y(), p.Z())
	}

	vertexBuffer := gfx.NewVertexBuffer(format, directionalGlyphVertices, gfx.BufferUsageStatic)
	if err := vertexBuffer.WriteFloat32s(data); err != nil {
		panic(err)
	}

	mesh := scene.NewMesh(vertexBuffer, scene.Primitive{
		Type:    gfx.PrimLines,
		Base:    0,
		Count:   vertexBuffer.NumVertices(),
		Indexed: false,
	})

	return material, vertexBuffer, mesh
}
