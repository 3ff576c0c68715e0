package terrain

import (
	"github.com/go-gl/mathgl/mgl32"

	"neonhex/internal/util"
	"neonhex/pkg/config"
	"neonhex/pkg/hexgrid"
	"neonhex/pkg/scene"
)

const poleSegments = 12

// DiscEntities records the scene nodes spawned for one hex.
type DiscEntities struct {
	Disc scene.NodeHandle
	Pole scene.NodeHandle // InvalidHandle when the hex has no pole
}

// Grid ties the terrain field to its spawned scene nodes.
type Grid struct {
	Field *Field
	Root  scene.NodeHandle
	Discs map[hexgrid.Hex]DiscEntities
}

// DiscMaterial is the neon face appearance.
func DiscMaterial() scene.Material {
	return scene.Material{
		Color:      mgl32.Vec4{0.02, 0.05, 0.08, 1},
		Emissive:   mgl32.Vec3{0.0, 0.85, 1.0},
		Brightness: 1,
	}
}

// PoleMaterial is the appearance of the height stems.
func PoleMaterial() scene.Material {
	return scene.Material{
		Color:      mgl32.Vec4{0.02, 0.02, 0.06, 1},
		Emissive:   mgl32.Vec3{0.8, 0.2, 1.0},
		Brightness: 1,
	}
}

// EdgeMaterial is the appearance of petal edge lines.
func EdgeMaterial() scene.Material {
	return scene.Material{
		Color:      mgl32.Vec4{0, 0, 0, 1},
		Emissive:   mgl32.Vec3{1.0, 0.35, 0.9},
		Brightness: 1,
	}
}

// FaceMaterial is the translucent fill of petal faces.
func FaceMaterial() scene.Material {
	return scene.Material{
		Color:      mgl32.Vec4{0.0, 0.4, 0.5, 0.35},
		Emissive:   mgl32.Vec3{0.0, 0.3, 0.4},
		Brightness: 1,
	}
}

// PoleGeometry returns the stem height for a face at the given
// elevation. A pole spans from the ground plane up to height - gap;
// faces at or below the gap get no pole.
func PoleGeometry(height, gap float32) (float32, bool) {
	ph := height - gap
	if ph <= 0 {
		return 0, false
	}
	return ph, true
}

// PoleFadeBrightness dims a pole near the viewpoint: minAlpha at
// zero distance, full brightness at fadeDistance and beyond.
func PoleFadeBrightness(dist, fadeDistance, minAlpha float32) float32 {
	t := util.Clamp(dist/fadeDistance, 0, 1)
	return minAlpha + t*(1-minAlpha)
}

// Generate spawns one disc node per generated hex, plus its height
// pole when the face sits above the gap. Returns the hex-to-node
// registry used by the reveal engine.
func Generate(g *scene.Graph, f *Field, cfg *config.GridConfig) *Grid {
	root := g.Spawn(scene.RootHandle, scene.Identity())
	grid := &Grid{
		Field: f,
		Root:  root,
		Discs: make(map[hexgrid.Hex]DiscEntities, f.Len()),
	}

	faceMesh := BuildHexFace()
	poleMesh := BuildCylinder(poleSegments)
	discMat := DiscMaterial()
	poleMat := PoleMaterial()

	for _, h := range f.Hexes() {
		t, ok := f.DiscTransform(h)
		if !ok {
			continue
		}
		disc := g.SpawnMesh(root, t, faceMesh, discMat)
		ent := DiscEntities{Disc: disc, Pole: scene.InvalidHandle}

		height, _ := f.Height(h)
		radius, _ := f.Radius(h)
		if ph, ok := PoleGeometry(height, cfg.Gap); ok {
			// Local transform divides out the parent's x/z scale so
			// the pole footprint is independent of the hex radius.
			poleRadius := radius * cfg.PoleFactor
			pt := scene.Identity()
			pt.Translation = mgl32.Vec3{0, ph/2 - height, 0}
			pt.Scale = mgl32.Vec3{poleRadius / 0.5 / radius, ph, poleRadius / 0.5 / radius}
			ent.Pole = g.SpawnMesh(disc, pt, poleMesh, poleMat)
		}
		grid.Discs[h] = ent
	}
	return grid
}

// UpdatePoleFade rescales every pole's brightness by its planar
// distance from the viewpoint.
func (grid *Grid) UpdatePoleFade(g *scene.Graph, viewpoint mgl32.Vec2, fadeDistance, minAlpha float32) {
	for h, ent := range grid.Discs {
		if ent.Pole == scene.InvalidHandle {
			continue
		}
		c := grid.Field.HexToWorld(h)
		dist := util.Distance2D(viewpoint.X(), viewpoint.Y(), c.X(), c.Y())
		g.SetBrightness(ent.Pole, PoleFadeBrightness(dist, fadeDistance, minAlpha))
	}
}
