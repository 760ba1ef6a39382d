package lumen

import (
	"github.com/gekko3d/lumen/scene"
)

// LightBuffer holds the packed lights handed to the renderer each frame.
type LightBuffer struct {
	Lights []scene.Light
}

// DirectionalLightModule installs the directional light system and the per-frame light packing.
type DirectionalLightModule struct{}

func (DirectionalLightModule) Install(app *App, cmd *Commands) {
	sys := NewDirectionalLightSystem(app.ctx)
	cmd.AddResources(sys, &LightBuffer{})

	app.UseSystem(
		System(lightPackingSystem).
			InStage(PreRender),
	)
}

// lightPackingSystem rebuilds the light list from the scene's registered models.
func lightPackingSystem(ctx *Context, buffer *LightBuffer) {
	buffer.Lights = append(buffer.Lights[:0], ctx.Scene.PackLights()...)
}
