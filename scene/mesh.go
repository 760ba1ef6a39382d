package scene

import (
	"github.com/gekko3d/lumen/gfx"
	"github.com/google/uuid"
)

type Primitive struct {
	Type    gfx.PrimType
	Base    int
	Count   int
	Indexed bool
}

// Mesh is geometry shared between mesh instances. IndexBuffer is nil for unindexed meshes.
type Mesh struct {
	ID           string
	VertexBuffer *gfx.VertexBuffer
	IndexBuffer  []uint16
	Primitive    Primitive
}

func NewMesh(vb *gfx.VertexBuffer, prim Primitive) *Mesh {
	return &Mesh{
		ID:           uuid.NewString(),
		VertexBuffer: vb,
		Primitive:    prim,
	}
}

// MeshInstance places a shared mesh and material at a graph node.
type MeshInstance struct {
	Node     *GraphNode
	Mesh     *Mesh
	Material *BasicMaterial
}

func NewMeshInstance(node *GraphNode, mesh *Mesh, material *BasicMaterial) *MeshInstance {
	return &MeshInstance{
		Node:     node,
		Mesh:     mesh,
		Material: material,
	}
}
