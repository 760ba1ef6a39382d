package scene

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl32"
)

// GraphNode is a named node of the scene graph with a local transform.
// World matrices are cached and refreshed by SyncHierarchy.
type GraphNode struct {
	name     string
	parent   *GraphNode
	children []*GraphNode

	Local Transform
	world mgl32.Mat4
}

func NewGraphNode(name string) *GraphNode {
	return &GraphNode{
		name:  name,
		Local: NewTransform(),
		world: mgl32.Ident4(),
	}
}

func (n *GraphNode) Name() string            { return n.name }
func (n *GraphNode) SetName(name string)     { n.name = name }
func (n *GraphNode) Parent() *GraphNode      { return n.parent }
func (n *GraphNode) WorldMatrix() mgl32.Mat4 { return n.world }

// Children returns a copy of the child list.
func (n *GraphNode) Children() []*GraphNode {
	return slices.Clone(n.children)
}

// AddChild appends child. Attaching a node that already has a parent is a programming error.
func (n *GraphNode) AddChild(child *GraphNode) {
	if child.parent != nil {
		panic(fmt.Sprintf("GraphNode %q already has parent %q", child.name, child.parent.name))
	}
	if child == n {
		panic(fmt.Sprintf("GraphNode %q cannot be its own child", n.name))
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child and reports whether it was a child of n.
func (n *GraphNode) RemoveChild(child *GraphNode) bool {
	idx := slices.Index(n.children, child)
	if idx < 0 {
		return false
	}
	n.children = slices.Delete(n.children, idx, idx+1)
	child.parent = nil
	return true
}

func (n *GraphNode) HasChild(child *GraphNode) bool {
	return slices.Contains(n.children, child)
}

// SyncHierarchy recomputes world matrices for n and all descendants.
func (n *GraphNode) SyncHierarchy() {
	if n.parent != nil {
		n.world = n.parent.world.Mul4(n.Local.ObjectToWorld())
	} else {
		n.world = n.Local.ObjectToWorld()
	}
	for _, c := range n.children {
		c.SyncHierarchy()
	}
}

// WorldPosition returns the translation part of the cached world matrix.
func (n *GraphNode) WorldPosition() mgl32.Vec3 {
	return n.world.Col(3).Vec3()
}
