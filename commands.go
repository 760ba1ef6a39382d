package lumen

import (
	"maps"
	"slices"

	"github.com/gekko3d/lumen/scene"
)

type Commands struct {
	app *App
}

func (cmd *Commands) Context() *Context { return cmd.app.ctx }

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// AddEntity creates an entity right away and parents its node to the context root.
func (cmd *Commands) AddEntity(name string) *Entity {
	app := cmd.app
	e := &Entity{
		id:   app.nextEntityId(),
		node: scene.NewGraphNode(name),
	}
	app.ctx.Root.AddChild(e.node)
	app.entities[e.id] = e
	return e
}

// SetParent moves child's node under parent's node.
func (cmd *Commands) SetParent(child *Entity, parent *Entity) {
	if old := child.node.Parent(); old != nil {
		old.RemoveChild(child.node)
	}
	parent.node.AddChild(child.node)
}

// RemoveEntity is deferred until the end of the current stage.
func (cmd *Commands) RemoveEntity(e *Entity) {
	cmd.app.pendingRemovals = append(cmd.app.pendingRemovals, e.id)
}

func (cmd *Commands) Entity(id EntityId) (*Entity, bool) {
	e, ok := cmd.app.entities[id]
	return e, ok
}

// Entities returns all live entities ordered by id.
func (cmd *Commands) Entities() []*Entity {
	ids := slices.Sorted(maps.Keys(cmd.app.entities))
	res := make([]*Entity, 0, len(ids))
	for _, id := range ids {
		res = append(res, cmd.app.entities[id])
	}
	return res
}
