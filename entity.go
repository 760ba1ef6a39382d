package lumen

import (
	"github.com/gekko3d/lumen/scene"
)

type EntityId uint64

// Entity is a scene-graph node that component systems attach to.
type Entity struct {
	id   EntityId
	node *scene.GraphNode
}

func (e *Entity) ID() EntityId           { return e.id }
func (e *Entity) Name() string           { return e.node.Name() }
func (e *Entity) Node() *scene.GraphNode { return e.node }

func (e *Entity) AddChild(node *scene.GraphNode) {
	e.node.AddChild(node)
}

func (e *Entity) RemoveChild(node *scene.GraphNode) bool {
	return e.node.RemoveChild(node)
}

func (e *Entity) HasChild(node *scene.GraphNode) bool {
	return e.node.HasChild(node)
}
