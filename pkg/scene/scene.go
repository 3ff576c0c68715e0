package scene

import "github.com/go-gl/mathgl/mgl32"

// NodeHandle identifies a node in a Graph. The zero handle is
// invalid; RootHandle is the implicit root.
type NodeHandle int

const (
	InvalidHandle NodeHandle = 0
	RootHandle    NodeHandle = 1
)

// MeshData is triangle geometry ready for upload. Positions and
// normals are packed xyz, UVs xy, indices reference vertices.
type MeshData struct {
	Positions []float32
	Normals   []float32
	UVs       []float32
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *MeshData) VertexCount() int {
	return len(m.Positions) / 3
}

// Append merges other into m, offsetting its indices.
func (m *MeshData) Append(other *MeshData) {
	base := uint32(m.VertexCount())
	m.Positions = append(m.Positions, other.Positions...)
	m.Normals = append(m.Normals, other.Normals...)
	m.UVs = append(m.UVs, other.UVs...)
	for _, i := range other.Indices {
		m.Indices = append(m.Indices, base+i)
	}
}

// Material is the unlit neon appearance of a node's mesh.
type Material struct {
	Color      mgl32.Vec4
	Emissive   mgl32.Vec3
	Brightness float32
}

type node struct {
	parent    NodeHandle
	children  []NodeHandle
	transform Transform
	mesh      *MeshData
	material  Material
	visible   bool
}

// Graph is a flat-arena scene tree. Handles stay valid for the life
// of the graph; nodes are never removed, only hidden.
type Graph struct {
	nodes []node
}

// NewGraph returns a graph containing only the root node.
func NewGraph() *Graph {
	g := &Graph{}
	// Slot 0 is a sentinel so the zero handle stays invalid.
	g.nodes = append(g.nodes, node{}, node{
		transform: Identity(),
		visible:   true,
	})
	return g
}

// Spawn adds a child of parent with the given local transform and
// returns its handle.
func (g *Graph) Spawn(parent NodeHandle, t Transform) NodeHandle {
	h := NodeHandle(len(g.nodes))
	g.nodes = append(g.nodes, node{
		parent:    parent,
		transform: t,
		visible:   true,
	})
	g.nodes[parent].children = append(g.nodes[parent].children, h)
	return h
}

// SpawnMesh adds a child carrying a mesh and material.
func (g *Graph) SpawnMesh(parent NodeHandle, t Transform, mesh *MeshData, mat Material) NodeHandle {
	h := g.Spawn(parent, t)
	g.nodes[h].mesh = mesh
	g.nodes[h].material = mat
	return h
}

// Transform returns the node's local transform.
func (g *Graph) Transform(h NodeHandle) Transform {
	return g.nodes[h].transform
}

// SetTransform replaces the node's local transform.
func (g *Graph) SetTransform(h NodeHandle, t Transform) {
	g.nodes[h].transform = t
}

// WorldTransform composes the node's transform with all ancestors.
func (g *Graph) WorldTransform(h NodeHandle) Transform {
	if h == RootHandle {
		return g.nodes[h].transform
	}
	return g.WorldTransform(g.nodes[h].parent).Mul(g.nodes[h].transform)
}

// Parent returns the node's parent handle.
func (g *Graph) Parent(h NodeHandle) NodeHandle {
	return g.nodes[h].parent
}

// SetVisible toggles the node and its subtree for rendering.
func (g *Graph) SetVisible(h NodeHandle, v bool) {
	g.nodes[h].visible = v
}

// Visible reports the node's own visibility flag.
func (g *Graph) Visible(h NodeHandle) bool {
	return g.nodes[h].visible
}

// Material returns the node's material.
func (g *Graph) Material(h NodeHandle) Material {
	return g.nodes[h].material
}

// SetBrightness updates the node material's brightness scalar.
func (g *Graph) SetBrightness(h NodeHandle, b float32) {
	g.nodes[h].material.Brightness = b
}

// Mesh returns the node's mesh, or nil.
func (g *Graph) Mesh(h NodeHandle) *MeshData {
	return g.nodes[h].mesh
}

// Len returns the number of spawned nodes, excluding the root.
func (g *Graph) Len() int {
	return len(g.nodes) - 2
}

// Walk visits every visible node depth-first with its accumulated
// world transform, skipping hidden subtrees.
func (g *Graph) Walk(fn func(h NodeHandle, world Transform, mesh *MeshData, mat Material)) {
	g.walk(RootHandle, g.nodes[RootHandle].transform, fn)
}

func (g *Graph) walk(h NodeHandle, world Transform, fn func(NodeHandle, Transform, *MeshData, Material)) {
	n := &g.nodes[h]
	if !n.visible {
		return
	}
	if n.mesh != nil {
		fn(h, world, n.mesh, n.material)
	}
	for _, c := range n.children {
		g.walk(c, world.Mul(g.nodes[c].transform), fn)
	}
}
