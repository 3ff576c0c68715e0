package terrain

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNormal(t *testing.T) {
	n := ComputeNormal(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, 0, float64(n.X()), 1e-6)
	assert.InDelta(t, 1, float64(n.Y()), 1e-6)
	assert.InDelta(t, 0, float64(n.Z()), 1e-6)
}

func TestComputeNormalDegenerate(t *testing.T) {
	// Collinear points produce a zero vector, not a panic or NaN.
	n := ComputeNormal(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{2, 2, 2})
	assert.Equal(t, mgl32.Vec3{}, n)

	n = ComputeNormal(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{1, 2, 3})
	assert.Equal(t, mgl32.Vec3{}, n)
}

func TestBuildEdgeLineSpansEndpoints(t *testing.T) {
	from := mgl32.Vec3{0, 0, 0}
	to := mgl32.Vec3{0, 3, 4}
	m := BuildEdgeLine(from, to, 0.03)
	require.NotNil(t, m)
	assert.Equal(t, 24, m.VertexCount())
	assert.Len(t, m.Indices, 36)

	// The box must reach both endpoints along its long axis.
	var minD, maxD float32 = 1e9, -1e9
	axis := to.Sub(from).Normalize()
	for i := 0; i < m.VertexCount(); i++ {
		p := mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
		d := p.Sub(from).Dot(axis)
		if d < minD {
			minD = d
		}
		if d > maxD {
			maxD = d
		}
	}
	assert.InDelta(t, 0, float64(minD), 1e-4)
	assert.InDelta(t, 5, float64(maxD), 1e-4)
}

func TestBuildEdgeLineDegenerate(t *testing.T) {
	a := mgl32.Vec3{1, 2, 3}
	assert.Nil(t, BuildEdgeLine(a, a, 0.03))
	assert.Nil(t, BuildEdgeLine(a, a.Add(mgl32.Vec3{0.0001, 0, 0}), 0.03))
}

func TestBuildQuadFace(t *testing.T) {
	m := BuildQuadFace(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{1, 0, 0},
		mgl32.Vec3{1, 0, 1},
		mgl32.Vec3{0, 0, 1},
	)
	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)
	assert.Equal(t, []float32{0, 0, 1, 0, 1, 1, 0, 1}, m.UVs)

	// One flat normal shared by all four vertices.
	n0 := mgl32.Vec3{m.Normals[0], m.Normals[1], m.Normals[2]}
	for i := 1; i < 4; i++ {
		assert.Equal(t, n0, mgl32.Vec3{m.Normals[3*i], m.Normals[3*i+1], m.Normals[3*i+2]})
	}
	assert.InDelta(t, 1, float64(n0.Len()), 1e-5)
}

func TestBuildTriFace(t *testing.T) {
	m := BuildTriFace(
		mgl32.Vec3{0, 0, 0},
		mgl32.Vec3{2, 0, 0},
		mgl32.Vec3{1, 0, 2},
	)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2}, m.Indices)
	assert.Equal(t, []float32{0, 0, 1, 0, 0.5, 1}, m.UVs)
}

func TestBuildHexFace(t *testing.T) {
	m := BuildHexFace()
	assert.Equal(t, 7, m.VertexCount())
	assert.Len(t, m.Indices, 18)
	// Unit radius rim, flat at y=0.
	for i := 1; i < 7; i++ {
		p := mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
		assert.InDelta(t, 1, float64(p.Len()), 1e-5)
		assert.Equal(t, float32(0), p.Y())
	}
}

func TestBuildCylinder(t *testing.T) {
	m := BuildCylinder(12)
	assert.Equal(t, 2*(12+1), m.VertexCount())
	assert.Len(t, m.Indices, 12*6)
	for i := 0; i < m.VertexCount(); i++ {
		p := mgl32.Vec3{m.Positions[3*i], m.Positions[3*i+1], m.Positions[3*i+2]}
		r := mgl32.Vec2{p.X(), p.Z()}.Len()
		assert.InDelta(t, 0.5, float64(r), 1e-5)
		assert.True(t, p.Y() == 0.5 || p.Y() == -0.5)
	}
}
