package lumen

import (
	"fmt"

	"github.com/gekko3d/lumen/scene"
)

// Context is the explicitly owned engine state handed to every component system.
type Context struct {
	Scene    *scene.Scene
	Root     *scene.GraphNode
	Designer bool // running inside the editor; enables debug glyphs
	Logger   Logger
	Systems  *SystemRegistry
}

func NewContext(designer bool) *Context {
	return &Context{
		Scene:    scene.NewScene(),
		Root:     scene.NewGraphNode("root"),
		Designer: designer,
		Logger:   NewNopLogger(),
		Systems:  NewSystemRegistry(),
	}
}

// SystemRegistry keeps component systems by id in registration order.
type SystemRegistry struct {
	order   []string
	systems map[string]*ComponentSystem
}

func NewSystemRegistry() *SystemRegistry {
	return &SystemRegistry{
		systems: make(map[string]*ComponentSystem),
	}
}

func (r *SystemRegistry) Add(system *ComponentSystem) {
	if _, ok := r.systems[system.ID()]; ok {
		panic(fmt.Sprintf("component system %q is already registered", system.ID()))
	}
	r.systems[system.ID()] = system
	r.order = append(r.order, system.ID())
}

func (r *SystemRegistry) Get(id string) (*ComponentSystem, bool) {
	s, ok := r.systems[id]
	return s, ok
}

func (r *SystemRegistry) All() []*ComponentSystem {
	res := make([]*ComponentSystem, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, r.systems[id])
	}
	return res
}
