package terrain

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"neonhex/pkg/hexgrid"
	"neonhex/pkg/scene"
)

// minEdgeLength below which an edge line is considered degenerate
// and silently skipped.
const minEdgeLength = 1e-3

// ComputeNormal returns the normalized face normal of a triangle, or
// the zero vector for degenerate input.
func ComputeNormal(v0, v1, v2 mgl32.Vec3) mgl32.Vec3 {
	n := v1.Sub(v0).Cross(v2.Sub(v0))
	if n.Len() < 1e-8 {
		return mgl32.Vec3{}
	}
	return n.Normalize()
}

// BuildEdgeLine returns a thin box mesh stretched between two world
// points. Returns nil when the segment is too short to orient.
func BuildEdgeLine(from, to mgl32.Vec3, thickness float32) *scene.MeshData {
	dir := to.Sub(from)
	length := dir.Len()
	if length < minEdgeLength {
		return nil
	}
	rot := mgl32.QuatBetweenVectors(mgl32.Vec3{1, 0, 0}, dir.Mul(1/length))
	mid := from.Add(dir.Mul(0.5))

	box := buildCuboid(length, thickness, thickness)
	for i := 0; i < box.VertexCount(); i++ {
		p := mgl32.Vec3{box.Positions[3*i], box.Positions[3*i+1], box.Positions[3*i+2]}
		p = rot.Rotate(p).Add(mid)
		box.Positions[3*i] = p.X()
		box.Positions[3*i+1] = p.Y()
		box.Positions[3*i+2] = p.Z()

		n := mgl32.Vec3{box.Normals[3*i], box.Normals[3*i+1], box.Normals[3*i+2]}
		n = rot.Rotate(n)
		box.Normals[3*i] = n.X()
		box.Normals[3*i+1] = n.Y()
		box.Normals[3*i+2] = n.Z()
	}
	return box
}

// BuildQuadFace returns a flat two-triangle quad over four world
// points in loop order, with a single normal from the first triangle.
func BuildQuadFace(v0, v1, v2, v3 mgl32.Vec3) *scene.MeshData {
	n := ComputeNormal(v0, v1, v2)
	m := &scene.MeshData{
		Indices: []uint32{0, 1, 2, 0, 2, 3},
		UVs:     []float32{0, 0, 1, 0, 1, 1, 0, 1},
	}
	for _, v := range []mgl32.Vec3{v0, v1, v2, v3} {
		m.Positions = append(m.Positions, v.X(), v.Y(), v.Z())
		m.Normals = append(m.Normals, n.X(), n.Y(), n.Z())
	}
	return m
}

// BuildTriFace returns a single flat triangle over three world points.
func BuildTriFace(v0, v1, v2 mgl32.Vec3) *scene.MeshData {
	n := ComputeNormal(v0, v1, v2)
	m := &scene.MeshData{
		Indices: []uint32{0, 1, 2},
		UVs:     []float32{0, 0, 1, 0, 0.5, 1},
	}
	for _, v := range []mgl32.Vec3{v0, v1, v2} {
		m.Positions = append(m.Positions, v.X(), v.Y(), v.Z())
		m.Normals = append(m.Normals, n.X(), n.Y(), n.Z())
	}
	return m
}

// BuildHexFace returns a unit-radius hexagonal face in the XZ plane,
// centered at the origin, normal up, built as a six-triangle fan.
// Disc nodes scale it by (radius, 1, radius).
func BuildHexFace() *scene.MeshData {
	m := &scene.MeshData{
		Positions: []float32{0, 0, 0},
		Normals:   []float32{0, 1, 0},
		UVs:       []float32{0.5, 0.5},
	}
	corners := hexgrid.UnitCorners()
	for _, c := range corners {
		m.Positions = append(m.Positions, c.X(), 0, c.Y())
		m.Normals = append(m.Normals, 0, 1, 0)
		m.UVs = append(m.UVs, (c.X()+1)/2, (c.Y()+1)/2)
	}
	for i := 0; i < 6; i++ {
		a := uint32(1 + i)
		b := uint32(1 + (i+1)%6)
		m.Indices = append(m.Indices, 0, a, b)
	}
	return m
}

// BuildCylinder returns an open unit cylinder: radius 0.5, height 1,
// centered at the origin, axis along Y. Pole nodes scale it into
// place.
func BuildCylinder(segments int) *scene.MeshData {
	m := &scene.MeshData{}
	for i := 0; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		x := float32(math.Cos(a))
		z := float32(math.Sin(a))
		u := float32(i) / float32(segments)
		m.Positions = append(m.Positions, 0.5*x, -0.5, 0.5*z, 0.5*x, 0.5, 0.5*z)
		m.Normals = append(m.Normals, x, 0, z, x, 0, z)
		m.UVs = append(m.UVs, u, 0, u, 1)
	}
	for i := 0; i < segments; i++ {
		b := uint32(2 * i)
		m.Indices = append(m.Indices,
			b, b+1, b+3,
			b, b+3, b+2)
	}
	return m
}

func buildCuboid(sx, sy, sz float32) *scene.MeshData {
	hx, hy, hz := sx/2, sy/2, sz/2
	type face struct {
		normal  mgl32.Vec3
		corners [4]mgl32.Vec3
	}
	faces := []face{
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{hx, -hy, -hz}, {hx, hy, -hz}, {hx, hy, hz}, {hx, -hy, hz}}},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-hx, -hy, hz}, {-hx, hy, hz}, {-hx, hy, -hz}, {-hx, -hy, -hz}}},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-hx, hy, -hz}, {-hx, hy, hz}, {hx, hy, hz}, {hx, hy, -hz}}},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-hx, -hy, hz}, {-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, -hy, hz}}},
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz}}},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{hx, -hy, -hz}, {-hx, -hy, -hz}, {-hx, hy, -hz}, {hx, hy, -hz}}},
	}
	m := &scene.MeshData{}
	for _, f := range faces {
		base := uint32(m.VertexCount())
		for _, c := range f.corners {
			m.Positions = append(m.Positions, c.X(), c.Y(), c.Z())
			m.Normals = append(m.Normals, f.normal.X(), f.normal.Y(), f.normal.Z())
		}
		m.UVs = append(m.UVs, 0, 0, 1, 0, 1, 1, 0, 1)
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}
