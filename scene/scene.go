package scene

import (
	"slices"

	"github.com/google/uuid"
)

// Model groups a graph with the lights and mesh instances that hang off it.
type Model struct {
	ID            string
	Graph         *GraphNode
	Lights        []*LightNode
	MeshInstances []*MeshInstance
}

func NewModel() *Model {
	return &Model{
		ID: uuid.NewString(),
	}
}

type Scene struct {
	models []*Model
}

func NewScene() *Scene {
	return &Scene{
		models: []*Model{},
	}
}

// AddModel registers model. No deduplication is done.
func (s *Scene) AddModel(model *Model) {
	s.models = append(s.models, model)
}

func (s *Scene) RemoveModel(model *Model) {
	for i, m := range s.models {
		if m == model {
			s.models = append(s.models[:i], s.models[i+1:]...)
			return
		}
	}
}

func (s *Scene) HasModel(model *Model) bool {
	return slices.Contains(s.models, model)
}

func (s *Scene) Models() []*Model {
	return slices.Clone(s.models)
}

// MeshInstances returns every mesh instance of every registered model.
func (s *Scene) MeshInstances() []*MeshInstance {
	var res []*MeshInstance
	for _, m := range s.models {
		res = append(res, m.MeshInstances...)
	}
	return res
}

// PackLights returns the GPU representation of all enabled lights in registration order.
func (s *Scene) PackLights() []Light {
	var res []Light
	for _, m := range s.models {
		for _, l := range m.Lights {
			if !l.Enabled {
				continue
			}
			res = append(res, l.Pack())
		}
	}
	return res
}
