package lumen

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSceneYAML = `
entities:
  - name: rig
    position: [0, 10, 0]
  - name: sun
    parent: rig
    rotation: [0, 0, 90]
    directionalLight:
      color: "#ff8000"
      intensity: 2
      castShadows: true
  - name: fill
    directionalLight:
      enable: false
`

func TestLoadScene(t *testing.T) {
	app, lights := newLightTestApp(t, true)
	cmd := app.Commands()

	def, err := ParseScene([]byte(testSceneYAML))
	require.NoError(t, err)

	entities, err := LoadScene(cmd, def)
	require.NoError(t, err)
	require.Len(t, entities, 3)

	rig, sun, fill := entities[0], entities[1], entities[2]
	assert.Equal(t, "sun", sun.Name())
	assert.True(t, rig.Node().HasChild(sun.Node()))
	assert.Equal(t, mgl32.Vec3{0, 10, 0}, rig.Node().Local.Position)
	assert.False(t, lights.HasComponent(rig))

	light, ok := lights.Light(sun)
	require.True(t, ok)
	assert.True(t, light.Enabled(), "unset fields fall back to defaults")
	assert.Equal(t, "0xff8000", FormatRGB(light.Color()))
	assert.Equal(t, float32(2), light.Intensity())
	assert.True(t, light.CastShadows())
	assert.Len(t, light.Model().MeshInstances, 1)

	fillLight, ok := lights.Light(fill)
	require.True(t, ok)
	assert.False(t, fillLight.Enabled())
	assert.Equal(t, float32(1), fillLight.Intensity())

	app.Update()
	buffer, _ := Resource[LightBuffer](app)
	require.Len(t, buffer.Lights, 1)
	// Rolled 90 deg about Z, the sun shines along +X.
	assert.InDelta(t, 1, buffer.Lights[0].Direction[0], 1e-4)
	assert.InDelta(t, 10, buffer.Lights[0].Position[1], 1e-4)
}

func TestLoadScene_Errors(t *testing.T) {
	cases := map[string]string{
		"unnamed":   "entities:\n  - position: [0, 0, 0]\n",
		"duplicate": "entities:\n  - name: a\n  - name: a\n",
		"parent":    "entities:\n  - name: a\n    parent: ghost\n",
		"property":  "entities:\n  - name: a\n    directionalLight:\n      color: red\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			app, _ := newLightTestApp(t, false)
			def, err := ParseScene([]byte(doc))
			require.NoError(t, err)

			_, err = LoadScene(app.Commands(), def)
			assert.Error(t, err)
		})
	}
}

func TestLoadScene_WithoutLightSystem(t *testing.T) {
	app := NewApp()
	def, err := ParseScene([]byte("entities:\n  - name: a\n    directionalLight: {}\n"))
	require.NoError(t, err)

	_, err = LoadScene(app.Commands(), def)
	assert.ErrorContains(t, err, "not installed")
}

func TestLoadSceneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSceneYAML), 0644))

	app, lights := newLightTestApp(t, false)
	entities, err := LoadSceneFile(app.Commands(), path)
	require.NoError(t, err)
	assert.Len(t, entities, 3)
	assert.Len(t, lights.Components(), 2)

	_, err = LoadSceneFile(app.Commands(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadScene_Lifetime(t *testing.T) {
	app := NewAppBuilder().
		UseModule(TimeModule{Step: time.Second}, DirectionalLightModule{}, LifecycleModule{}).
		Build()
	def, err := ParseScene([]byte(`
entities:
  - name: flare
    lifetime: 1.5
    directionalLight: {}
`))
	require.NoError(t, err)

	entities, err := LoadScene(app.Commands(), def)
	require.NoError(t, err)
	flare := entities[0]

	lifetimes, _ := Resource[LifetimeSystem](app)
	require.True(t, lifetimes.HasComponent(flare))

	app.Run(2)
	_, ok := app.Commands().Entity(flare.ID())
	assert.False(t, ok)
	assert.Empty(t, app.Context().Scene.Models())

	_, err = LoadScene(NewApp().Commands(), def)
	assert.Error(t, err)
}
