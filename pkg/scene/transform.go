package scene

import "github.com/go-gl/mathgl/mgl32"

// Transform is a translation, rotation and nonuniform scale applied
// in scale-rotate-translate order.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// Identity returns the neutral transform.
func Identity() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// FromTranslation returns a pure translation.
func FromTranslation(t mgl32.Vec3) Transform {
	tr := Identity()
	tr.Translation = t
	return tr
}

func mulComponents(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

// Mul composes a parent transform with a child transform, producing
// the child's transform in the parent's outer space.
func (a Transform) Mul(b Transform) Transform {
	return Transform{
		Translation: a.Translation.Add(a.Rotation.Rotate(mulComponents(a.Scale, b.Translation))),
		Rotation:    a.Rotation.Mul(b.Rotation),
		Scale:       mulComponents(a.Scale, b.Scale),
	}
}

// TransformPoint applies the transform to a point.
func (a Transform) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return a.Translation.Add(a.Rotation.Rotate(mulComponents(a.Scale, p)))
}

// Mat4 returns the homogeneous matrix of the transform.
func (a Transform) Mat4() mgl32.Mat4 {
	t := mgl32.Translate3D(a.Translation.X(), a.Translation.Y(), a.Translation.Z())
	r := a.Rotation.Mat4()
	s := mgl32.Scale3D(a.Scale.X(), a.Scale.Y(), a.Scale.Z())
	return t.Mul4(r).Mul4(s)
}
