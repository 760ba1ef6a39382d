package lumen

import (
	"maps"

	"github.com/gekko3d/lumen/gfx"
	"github.com/gekko3d/lumen/scene"
	"golang.org/x/image/colornames"
)

const DirectionalLightSystemId = "directionallight"

const (
	propEnable      = "enable"
	propColor       = "color"
	propIntensity   = "intensity"
	propCastShadows = "castShadows"
	propModel       = "model"
)

// directionalLightProperties is the subset handed to the generic initializer, model first
// so the light node exists before the other properties are applied to it.
var directionalLightProperties = []string{propModel, propEnable, propColor, propIntensity, propCastShadows}

func directionalLightSchema() Schema {
	return Schema{
		{
			Name:        propEnable,
			DisplayName: "Enable",
			Description: "Enable or disable the light",
			Type:        PropertyBoolean,
			Default:     true,
			Exposed:     true,
		},
		{
			Name:        propColor,
			DisplayName: "Color",
			Description: "Light color",
			Type:        PropertyRGB,
			Default:     colornames.White,
			Exposed:     true,
		},
		{
			Name:        propIntensity,
			DisplayName: "Intensity",
			Description: "Factors the light color",
			Type:        PropertyNumber,
			Default:     float32(1),
			Options:     &NumberOptions{Min: 0, Max: 10, Step: 0.05},
			Exposed:     true,
		},
		{
			Name:        propCastShadows,
			DisplayName: "Cast shadows",
			Description: "Cast shadows from this light",
			Type:        PropertyBoolean,
			Default:     false,
			Exposed:     true,
		},
		{
			Name:    propModel,
			Type:    PropertyModel,
			Default: nil,
			Exposed: false,
		},
	}
}

// DirectionalLightSystem manages directional light components. The debug material and
// glyph mesh are built once and shared by every component of the system.
type DirectionalLightSystem struct {
	*ComponentSystem

	Material     *scene.BasicMaterial
	VertexBuffer *gfx.VertexBuffer
	Mesh         *scene.Mesh
}

func NewDirectionalLightSystem(ctx *Context) *DirectionalLightSystem {
	sys := &DirectionalLightSystem{}
	sys.Material, sys.VertexBuffer, sys.Mesh = newDirectionalGlyph()
	sys.ComponentSystem = NewComponentSystem(ctx, DirectionalLightSystemId, directionalLightSchema(), sys)

	sys.OnSet(sys.onSet)
	sys.OnRemove(sys.onRemove)
	return sys
}

// InitializeComponent creates the light node and its model, registers the model with the
// scene and parents the node to the entity before the properties are applied.
func (s *DirectionalLightSystem) InitializeComponent(c *Component, data Data) error {
	node := scene.NewLightNode("directionallight", scene.LightTypeDirectional)

	model := scene.NewModel()
	model.Graph = node.GraphNode
	model.Lights = []*scene.LightNode{node}

	if s.ctx.Designer {
		model.MeshInstances = []*scene.MeshInstance{
			scene.NewMeshInstance(node.GraphNode, s.Mesh, s.Material),
		}
	}

	s.ctx.Scene.AddModel(model)
	c.Entity().AddChild(node.GraphNode)

	props := make(Data, len(data)+1)
	maps.Copy(props, data)
	props[propModel] = model

	if err := s.InitializeComponentData(c, props, directionalLightProperties); err != nil {
		c.Entity().RemoveChild(node.GraphNode)
		s.ctx.Scene.RemoveModel(model)
		return err
	}
	return nil
}

func (s *DirectionalLightSystem) onSet(c *Component, name string, _, value any) {
	light := directionalLightNode(c.data)
	if light == nil {
		return
	}

	switch name {
	case propEnable:
		light.Enabled = value.(bool)
	case propColor:
		light.Color = value.([3]float32)
	case propIntensity:
		light.Intensity = value.(float32)
	case propCastShadows:
		light.CastShadows = value.(bool)
	}
}

// onRemove must run once per initialized component; the base system guarantees that.
func (s *DirectionalLightSystem) onRemove(e *Entity, data Data) {
	model := data[propModel].(*scene.Model)

	e.RemoveChild(model.Graph)
	s.ctx.Scene.RemoveModel(model)
	delete(data, propModel)
}

// Light returns the typed view of the entity's directional light, if it has one.
func (s *DirectionalLightSystem) Light(e *Entity) (DirectionalLight, bool) {
	c, ok := s.Component(e)
	if !ok {
		return DirectionalLight{}, false
	}
	return DirectionalLight{c}, true
}

func directionalLightNode(data Data) *scene.LightNode {
	model, _ := data[propModel].(*scene.Model)
	if model == nil || len(model.Lights) == 0 {
		return nil
	}
	return model.Lights[0]
}

// DirectionalLight is a typed view over a directional light component.
type DirectionalLight struct {
	*Component
}

func (l DirectionalLight) Enabled() bool {
	v, _ := l.data[propEnable].(bool)
	return v
}

func (l DirectionalLight) Color() [3]float32 {
	v, _ := l.data[propColor].([3]float32)
	return v
}

func (l DirectionalLight) Intensity() float32 {
	v, _ := l.data[propIntensity].(float32)
	return v
}

func (l DirectionalLight) CastShadows() bool {
	v, _ := l.data[propCastShadows].(bool)
	return v
}

// Model is nil once the component has been removed.
func (l DirectionalLight) Model() *scene.Model {
	m, _ := l.data[propModel].(*scene.Model)
	return m
}

func (l DirectionalLight) Node() *scene.LightNode {
	return directionalLightNode(l.data)
}

func (l DirectionalLight) SetEnabled(v bool) error      { return l.Set(propEnable, v) }
func (l DirectionalLight) SetColor(v [3]float32) error  { return l.Set(propColor, v) }
func (l DirectionalLight) SetIntensity(v float32) error { return l.Set(propIntensity, v) }
func (l DirectionalLight) SetCastShadows(v bool) error  { return l.Set(propCastShadows, v) }
