package lumen

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTransformHierarchy(t *testing.T) {
	app := NewApp()
	app.UseModules(HierarchyModule{}, DirectionalLightModule{})
	cmd := app.Commands()

	rig := cmd.AddEntity("rig")
	rig.Node().Local.Position = mgl32.Vec3{10, 0, 0}

	sun := cmd.AddEntity("sun")
	sun.Node().Local.Position = mgl32.Vec3{0, 5, 0}
	cmd.SetParent(sun, rig)

	lights, _ := Resource[DirectionalLightSystem](app)
	if _, err := lights.AddComponent(sun, nil); err != nil {
		t.Fatalf("Failed to add light: %v", err)
	}
	light, _ := lights.Light(sun)

	app.Update()

	if p := light.Node().WorldPosition(); p != (mgl32.Vec3{10, 5, 0}) {
		t.Errorf("Light position incorrect: expected (10, 5, 0), got %v", p)
	}

	// Tilt the rig 90 deg about Z: the light's -Y axis turns to +X.
	rig.Node().Local.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 0, 1})
	app.Update()

	d := light.Node().Direction()
	if !closeTo(d.X(), 1) || !closeTo(d.Y(), 0) || !closeTo(d.Z(), 0) {
		t.Errorf("Light direction incorrect: expected (1, 0, 0), got %v", d)
	}
}

func closeTo(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 0.001
}
