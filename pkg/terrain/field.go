package terrain

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"

	"neonhex/internal/noise"
	"neonhex/pkg/config"
	"neonhex/pkg/hexgrid"
	"neonhex/pkg/scene"
)

// Cell is the stored data for one generated hex.
type Cell struct {
	Height float32
	Radius float32
}

// Field holds the generated terrain: one Cell per hex inside the
// generation radius. Built once at startup, read-only afterwards.
// Hexes outside the region are absent, not zero.
type Field struct {
	layout hexgrid.Layout
	cells  map[hexgrid.Hex]Cell
	order  []hexgrid.Hex
}

// BuildField samples height and radius noise for every hex in the
// configured region. Deterministic for a given config.
func BuildField(cfg *config.GridConfig) *Field {
	heightNoise := noise.NewSampler(cfg.HeightSeed, cfg.HeightOctave, cfg.HeightScale)
	radiusNoise := noise.NewSampler(cfg.RadiusSeed, cfg.RadiusOctave, cfg.RadiusScale)

	f := &Field{
		layout: hexgrid.Layout{Scale: cfg.Spacing},
		cells:  make(map[hexgrid.Hex]Cell),
	}
	for _, h := range hexgrid.Hexagon(hexgrid.Hex{}, cfg.Radius) {
		p := f.layout.HexToWorld(h)
		x, z := float64(p.X()), float64(p.Y())
		f.cells[h] = Cell{
			Height: noise.MapToRange(heightNoise.Sample(x, z), 0, cfg.MaxHeight),
			Radius: noise.MapToRange(radiusNoise.Sample(x, z), cfg.MinHexRadius, cfg.MaxHexRadius),
		}
		f.order = append(f.order, h)
	}
	return f
}

// NewField builds a field directly from cell data, ordered row-major
// for deterministic iteration.
func NewField(spacing float32, cells map[hexgrid.Hex]Cell) *Field {
	copied := make(map[hexgrid.Hex]Cell, len(cells))
	order := make([]hexgrid.Hex, 0, len(cells))
	for h, c := range cells {
		copied[h] = c
		order = append(order, h)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].R != order[j].R {
			return order[i].R < order[j].R
		}
		return order[i].Q < order[j].Q
	})
	return &Field{
		layout: hexgrid.Layout{Scale: spacing},
		cells:  copied,
		order:  order,
	}
}

// Len returns the number of generated hexes.
func (f *Field) Len() int {
	return len(f.cells)
}

// Hexes returns every generated hex in deterministic order.
func (f *Field) Hexes() []hexgrid.Hex {
	return f.order
}

// Layout returns the world layout of the field.
func (f *Field) Layout() hexgrid.Layout {
	return f.layout
}

// Contains reports whether the hex was generated.
func (f *Field) Contains(h hexgrid.Hex) bool {
	_, ok := f.cells[h]
	return ok
}

// Height returns the hex's elevation if present.
func (f *Field) Height(h hexgrid.Hex) (float32, bool) {
	c, ok := f.cells[h]
	return c.Height, ok
}

// Radius returns the hex's visual radius if present.
func (f *Field) Radius(h hexgrid.Hex) (float32, bool) {
	c, ok := f.cells[h]
	return c.Radius, ok
}

// HexToWorld returns the world-plane center of the hex.
func (f *Field) HexToWorld(h hexgrid.Hex) mgl32.Vec2 {
	return f.layout.HexToWorld(h)
}

// WorldToHex returns the hex containing the world-plane point.
func (f *Field) WorldToHex(p mgl32.Vec2) hexgrid.Hex {
	return f.layout.WorldToHex(p)
}

// Vertex returns the world position of corner i of the hex's face.
// All six corners share the hex's height.
func (f *Field) Vertex(h hexgrid.Hex, i int) (mgl32.Vec3, bool) {
	c, ok := f.cells[h]
	if !ok {
		return mgl32.Vec3{}, false
	}
	center := f.layout.HexToWorld(h)
	off := hexgrid.UnitCorners()[i].Mul(c.Radius)
	return mgl32.Vec3{center.X() + off.X(), c.Height, center.Y() + off.Y()}, true
}

// InterpolateHeight blends the heights of nearby hex vertices with
// inverse-distance weighting. Bounded to the containing hex and its
// six neighbors. Snaps to a vertex's exact height when the query is
// effectively on top of it. Falls back to the center hex's height
// outside vertex range, then to zero.
func (f *Field) InterpolateHeight(p mgl32.Vec2) float32 {
	center := f.layout.WorldToHex(p)

	var sum, weight float32
	candidates := [7]hexgrid.Hex{center}
	neighbors := center.Neighbors()
	copy(candidates[1:], neighbors[:])

	for _, h := range candidates {
		c, ok := f.cells[h]
		if !ok {
			continue
		}
		hc := f.layout.HexToWorld(h)
		for i := 0; i < 6; i++ {
			off := hexgrid.UnitCorners()[i].Mul(c.Radius)
			dx := p.X() - (hc.X() + off.X())
			dz := p.Y() - (hc.Y() + off.Y())
			d2 := dx*dx + dz*dz
			if d2 < 1e-3 {
				return c.Height
			}
			sum += c.Height / d2
			weight += 1 / d2
		}
	}
	if weight == 0 {
		if c, ok := f.cells[center]; ok {
			return c.Height
		}
		return 0
	}
	return sum / weight
}

// DiscTransform returns the placement of the hex's face node:
// translate to (cx, height, cz), scale (radius, 1, radius).
func (f *Field) DiscTransform(h hexgrid.Hex) (scene.Transform, bool) {
	c, ok := f.cells[h]
	if !ok {
		return scene.Transform{}, false
	}
	center := f.layout.HexToWorld(h)
	t := scene.Identity()
	t.Translation = mgl32.Vec3{center.X(), c.Height, center.Y()}
	t.Scale = mgl32.Vec3{c.Radius, 1, c.Radius}
	return t, true
}

// InverseTransform returns the transform that cancels the hex's disc
// placement, so children authored in world space render correctly
// under the scaled, height-offset disc node.
func (f *Field) InverseTransform(h hexgrid.Hex) (scene.Transform, bool) {
	c, ok := f.cells[h]
	if !ok {
		return scene.Transform{}, false
	}
	center := f.layout.HexToWorld(h)
	t := scene.Identity()
	t.Translation = mgl32.Vec3{-center.X() / c.Radius, -c.Height, -center.Y() / c.Radius}
	t.Scale = mgl32.Vec3{1 / c.Radius, 1, 1 / c.Radius}
	return t, true
}

// FindEquivalentVertex locates which of the hex's own corners names
// the given grid junction and returns its world position.
func (f *Field) FindEquivalentVertex(h hexgrid.Hex, junction hexgrid.GridVertex) (mgl32.Vec3, bool) {
	if !f.Contains(h) {
		return mgl32.Vec3{}, false
	}
	for i := 0; i < 6; i++ {
		if (hexgrid.GridVertex{Hex: h, Direction: i}).Equivalent(junction) {
			return f.Vertex(h, i)
		}
	}
	return mgl32.Vec3{}, false
}
