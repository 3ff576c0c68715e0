package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec3Near(t *testing.T, want, got mgl32.Vec3, tol float64) {
	t.Helper()
	assert.InDelta(t, float64(want.X()), float64(got.X()), tol)
	assert.InDelta(t, float64(want.Y()), float64(got.Y()), tol)
	assert.InDelta(t, float64(want.Z()), float64(got.Z()), tol)
}

func TestIdentityMulIsNeutral(t *testing.T) {
	b := Transform{
		Translation: mgl32.Vec3{1, 2, 3},
		Rotation:    mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}),
		Scale:       mgl32.Vec3{2, 2, 2},
	}
	out := Identity().Mul(b)
	vec3Near(t, b.Translation, out.Translation, 1e-6)
	vec3Near(t, b.Scale, out.Scale, 1e-6)
}

func TestMulScalesChildTranslation(t *testing.T) {
	parent := Identity()
	parent.Scale = mgl32.Vec3{2, 3, 4}
	child := FromTranslation(mgl32.Vec3{1, 1, 1})
	out := parent.Mul(child)
	vec3Near(t, mgl32.Vec3{2, 3, 4}, out.Translation, 1e-6)
}

func TestMulRotatesChildTranslation(t *testing.T) {
	parent := Identity()
	parent.Rotation = mgl32.QuatRotate(mgl32.DegToRad(90), mgl32.Vec3{0, 1, 0})
	child := FromTranslation(mgl32.Vec3{1, 0, 0})
	out := parent.Mul(child)
	vec3Near(t, mgl32.Vec3{0, 0, -1}, out.Translation, 1e-5)
}

func TestInverseTransformCancels(t *testing.T) {
	parent := Transform{
		Translation: mgl32.Vec3{5, -2, 8},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{4, 4, 4},
	}
	inv := Transform{
		Translation: mgl32.Vec3{-5.0 / 4, 2.0 / 4, -8.0 / 4},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1.0 / 4, 1.0 / 4, 1.0 / 4},
	}
	out := parent.Mul(inv)
	vec3Near(t, mgl32.Vec3{0, 0, 0}, out.Translation, 1e-5)
	vec3Near(t, mgl32.Vec3{1, 1, 1}, out.Scale, 1e-6)
}

func TestTransformPoint(t *testing.T) {
	tr := Transform{
		Translation: mgl32.Vec3{10, 0, 0},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{2, 2, 2},
	}
	vec3Near(t, mgl32.Vec3{12, 2, 2}, tr.TransformPoint(mgl32.Vec3{1, 1, 1}), 1e-6)
}

func TestMat4MatchesTransformPoint(t *testing.T) {
	tr := Transform{
		Translation: mgl32.Vec3{1, 2, 3},
		Rotation:    mgl32.QuatRotate(0.4, mgl32.Vec3{0, 0, 1}),
		Scale:       mgl32.Vec3{2, 0.5, 1},
	}
	p := mgl32.Vec3{3, -1, 2}
	want := tr.TransformPoint(p)
	got4 := tr.Mat4().Mul4x1(p.Vec4(1))
	vec3Near(t, want, got4.Vec3(), 1e-5)
}

func TestGraphSpawnAndWorldTransform(t *testing.T) {
	g := NewGraph()
	parent := g.Spawn(RootHandle, FromTranslation(mgl32.Vec3{1, 0, 0}))
	child := g.Spawn(parent, FromTranslation(mgl32.Vec3{0, 2, 0}))
	w := g.WorldTransform(child)
	vec3Near(t, mgl32.Vec3{1, 2, 0}, w.Translation, 1e-6)
	assert.Equal(t, parent, g.Parent(child))
	assert.Equal(t, 2, g.Len())
}

func TestGraphWalkSkipsHidden(t *testing.T) {
	g := NewGraph()
	mesh := &MeshData{Positions: []float32{0, 0, 0}}
	a := g.SpawnMesh(RootHandle, Identity(), mesh, Material{})
	b := g.Spawn(RootHandle, Identity())
	g.SpawnMesh(b, Identity(), mesh, Material{})
	g.SetVisible(b, false)

	var seen []NodeHandle
	g.Walk(func(h NodeHandle, _ Transform, _ *MeshData, _ Material) {
		seen = append(seen, h)
	})
	require.Len(t, seen, 1)
	assert.Equal(t, a, seen[0])
}

func TestGraphWalkAccumulatesTransforms(t *testing.T) {
	g := NewGraph()
	parent := g.Spawn(RootHandle, Transform{
		Translation: mgl32.Vec3{0, 0, 0},
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{3, 3, 3},
	})
	mesh := &MeshData{Positions: []float32{0, 0, 0}}
	g.SpawnMesh(parent, FromTranslation(mgl32.Vec3{1, 0, 0}), mesh, Material{})

	var got Transform
	g.Walk(func(_ NodeHandle, world Transform, _ *MeshData, _ Material) {
		got = world
	})
	vec3Near(t, mgl32.Vec3{3, 0, 0}, got.Translation, 1e-6)
	vec3Near(t, mgl32.Vec3{3, 3, 3}, got.Scale, 1e-6)
}

func TestMeshAppendOffsetsIndices(t *testing.T) {
	a := &MeshData{
		Positions: []float32{0, 0, 0, 1, 0, 0, 0, 1, 0},
		Normals:   []float32{0, 1, 0, 0, 1, 0, 0, 1, 0},
		UVs:       []float32{0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
	b := &MeshData{
		Positions: []float32{2, 0, 0, 3, 0, 0, 2, 1, 0},
		Normals:   []float32{0, 1, 0, 0, 1, 0, 0, 1, 0},
		UVs:       []float32{0, 0, 1, 0, 0, 1},
		Indices:   []uint32{0, 1, 2},
	}
	a.Append(b)
	assert.Equal(t, 6, a.VertexCount())
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5}, a.Indices)
}
