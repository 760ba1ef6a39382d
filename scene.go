package lumen

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// SceneDef defines the initial entities of a scene.
type SceneDef struct {
	Entities []EntityDef `yaml:"entities"`
}

type EntityDef struct {
	Name     string     `yaml:"name"`
	Parent   string     `yaml:"parent,omitempty"` // name of an entity defined in the same file
	Position [3]float32 `yaml:"position"`
	Rotation [3]float32 `yaml:"rotation"` // Euler angles in degrees, XYZ order

	DirectionalLight *DirectionalLightDef `yaml:"directionalLight,omitempty"`
	Lifetime         *float32             `yaml:"lifetime,omitempty"` // seconds
}

// DirectionalLightDef leaves unset fields to the schema defaults.
type DirectionalLightDef struct {
	Enable      *bool    `yaml:"enable,omitempty"`
	Color       string   `yaml:"color,omitempty"` // 0xRRGGBB or #RRGGBB
	Intensity   *float32 `yaml:"intensity,omitempty"`
	CastShadows *bool    `yaml:"castShadows,omitempty"`
}

func (d DirectionalLightDef) data() Data {
	data := Data{}
	if d.Enable != nil {
		data[propEnable] = *d.Enable
	}
	if d.Color != "" {
		data[propColor] = d.Color
	}
	if d.Intensity != nil {
		data[propIntensity] = *d.Intensity
	}
	if d.CastShadows != nil {
		data[propCastShadows] = *d.CastShadows
	}
	return data
}

func ParseScene(data []byte) (*SceneDef, error) {
	var def SceneDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}
	return &def, nil
}

func LoadSceneFile(cmd *Commands, filename string) ([]*Entity, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("load scene: %w", err)
	}
	def, err := ParseScene(data)
	if err != nil {
		return nil, err
	}
	return LoadScene(cmd, def)
}

// LoadScene spawns the entities of def, restores parenting, then adds components.
func LoadScene(cmd *Commands, def *SceneDef) ([]*Entity, error) {
	byName := make(map[string]*Entity)
	var entities []*Entity

	// First pass: create entities
	for _, ed := range def.Entities {
		if ed.Name == "" {
			return entities, fmt.Errorf("load scene: entity %d has no name", len(entities))
		}
		if _, ok := byName[ed.Name]; ok {
			return entities, fmt.Errorf("load scene: duplicate entity name %q", ed.Name)
		}

		e := cmd.AddEntity(ed.Name)
		e.node.Local.Position = mgl32.Vec3(ed.Position)
		e.node.Local.Rotation = mgl32.AnglesToQuat(
			mgl32.DegToRad(ed.Rotation[0]),
			mgl32.DegToRad(ed.Rotation[1]),
			mgl32.DegToRad(ed.Rotation[2]),
			mgl32.XYZ,
		)
		byName[ed.Name] = e
		entities = append(entities, e)
	}

	// Second pass: restore hierarchy
	for _, ed := range def.Entities {
		if ed.Parent == "" {
			continue
		}
		parent, ok := byName[ed.Parent]
		if !ok {
			return entities, fmt.Errorf("load scene: entity %q has unknown parent %q", ed.Name, ed.Parent)
		}
		cmd.SetParent(byName[ed.Name], parent)
	}

	// Third pass: components
	for _, ed := range def.Entities {
		e := byName[ed.Name]
		if ed.DirectionalLight != nil {
			lights, ok := Resource[DirectionalLightSystem](cmd.app)
			if !ok {
				return entities, fmt.Errorf("load scene: entity %q has a directional light but the system is not installed", ed.Name)
			}
			if _, err := lights.AddComponent(e, ed.DirectionalLight.data()); err != nil {
				return entities, fmt.Errorf("load scene: entity %q: %w", ed.Name, err)
			}
		}
		if ed.Lifetime != nil {
			lifetimes, ok := Resource[LifetimeSystem](cmd.app)
			if !ok {
				return entities, fmt.Errorf("load scene: entity %q has a lifetime but the system is not installed", ed.Name)
			}
			if _, err := lifetimes.AddComponent(e, Data{propTimeLeft: *ed.Lifetime}); err != nil {
				return entities, fmt.Errorf("load scene: entity %q: %w", ed.Name, err)
			}
		}
	}

	cmd.app.Logger().Infof("scene loaded: %d entities", len(entities))
	return entities, nil
}
