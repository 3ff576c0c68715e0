package terrain

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"neonhex/pkg/config"
	"neonhex/pkg/hexgrid"
	"neonhex/pkg/scene"
)

// RevealMode selects which petal pieces get spawned.
type RevealMode int

const (
	// ModePerimeter spawns only the lines along each hex's own rim.
	ModePerimeter RevealMode = iota
	// ModeCrossGap spawns only the gap-spanning lines and faces.
	ModeCrossGap
	// ModeFull spawns both the rim lines and the gap geometry.
	ModeFull
)

// ParseRevealMode maps a config string to a RevealMode.
func ParseRevealMode(s string) (RevealMode, error) {
	switch s {
	case "perimeter":
		return ModePerimeter, nil
	case "crossgap":
		return ModeCrossGap, nil
	case "full":
		return ModeFull, nil
	}
	return ModePerimeter, fmt.Errorf("unknown render mode %q", s)
}

// QuadPetal is the gap-fill strip across one shared edge, owned by
// one hex and keyed by its even edge index.
type QuadPetal struct {
	Node         scene.NodeHandle
	EdgeIndex    int
	NeighborDisc scene.NodeHandle
}

// TriPetal is the gap-fill triangle at one 3-hex junction, owned by
// the junction's canonical origin hex.
type TriPetal struct {
	Node          scene.NodeHandle
	VertexIndex   int
	NeighborDiscs [2]scene.NodeHandle
}

// RevealState tracks which hex the viewpoint occupies. Changed is
// true for exactly one update after a transition; the first update
// always counts as a transition.
type RevealState struct {
	Current  hexgrid.Hex
	Previous *hexgrid.Hex
	Changed  bool
}

// Reveal spawns petal geometry incrementally as the viewpoint moves.
// drawn grows monotonically; petals are never despawned.
type Reveal struct {
	State RevealState

	graph *scene.Graph
	grid  *Grid
	mode  RevealMode

	edgeThickness float32
	revealRadius  int

	drawn map[hexgrid.Hex]struct{}
	Quads map[hexgrid.Hex][]QuadPetal
	Tris  map[hexgrid.Hex][]TriPetal
}

// NewReveal wires the reveal engine to a spawned grid.
func NewReveal(g *scene.Graph, grid *Grid, cfg *config.PetalConfig, mode RevealMode) *Reveal {
	return &Reveal{
		graph:         g,
		grid:          grid,
		mode:          mode,
		edgeThickness: cfg.EdgeThickness,
		revealRadius:  cfg.RevealRadius,
		drawn:         make(map[hexgrid.Hex]struct{}),
		Quads:         make(map[hexgrid.Hex][]QuadPetal),
		Tris:          make(map[hexgrid.Hex][]TriPetal),
	}
}

// Track updates the occupied hex from the viewpoint's planar
// position and reports whether a transition happened.
func (r *Reveal) Track(xz mgl32.Vec2) bool {
	newHex := r.grid.Field.WorldToHex(xz)
	if newHex != r.State.Current || r.State.Previous == nil {
		prev := r.State.Current
		r.State.Previous = &prev
		r.State.Current = newHex
		r.State.Changed = true
	} else {
		r.State.Changed = false
	}
	return r.State.Changed
}

// RevealAround spawns the petal sets of every undrawn hex within the
// reveal radius of center. Already drawn hexes are skipped, so
// repeated calls are no-ops.
func (r *Reveal) RevealAround(center hexgrid.Hex) {
	for _, h := range hexgrid.Hexagon(center, r.revealRadius) {
		if !r.grid.Field.Contains(h) {
			continue
		}
		if _, done := r.drawn[h]; done {
			continue
		}
		r.drawn[h] = struct{}{}
		r.spawnPetals(h)
	}
}

// Drawn reports whether the hex's petals have been spawned.
func (r *Reveal) Drawn(h hexgrid.Hex) bool {
	_, ok := r.drawn[h]
	return ok
}

// QuadCount is the total number of quad petals spawned so far.
func (r *Reveal) QuadCount() int {
	n := 0
	for _, q := range r.Quads {
		n += len(q)
	}
	return n
}

// TriCount is the total number of tri petals spawned so far.
func (r *Reveal) TriCount() int {
	n := 0
	for _, t := range r.Tris {
		n += len(t)
	}
	return n
}

func (r *Reveal) spawnPetals(h hexgrid.Hex) {
	for _, e := range [3]int{0, 2, 4} {
		r.spawnQuadPetal(h, e)
	}
	for d := 0; d < 2; d++ {
		r.spawnTriPetal(h, d)
	}
}

// petalRoot spawns the petal's parent node under the owner disc,
// cancelling the disc placement so children carry plain world
// coordinates.
func (r *Reveal) petalRoot(h hexgrid.Hex) (scene.NodeHandle, bool) {
	ent, ok := r.grid.Discs[h]
	if !ok {
		return scene.InvalidHandle, false
	}
	inv, ok := r.grid.Field.InverseTransform(h)
	if !ok {
		return scene.InvalidHandle, false
	}
	return r.graph.Spawn(ent.Disc, inv), true
}

func (r *Reveal) spawnLine(parent scene.NodeHandle, from, to mgl32.Vec3) {
	mesh := BuildEdgeLine(from, to, r.edgeThickness)
	if mesh == nil {
		return
	}
	r.graph.SpawnMesh(parent, scene.Identity(), mesh, EdgeMaterial())
}

func (r *Reveal) spawnQuadPetal(h hexgrid.Hex, e int) {
	f := r.grid.Field
	n := h.Neighbor(e)
	if !f.Contains(n) {
		return
	}

	// Own-side corners e and e+1; facing corners on the neighbor are
	// the opposite edge's corners in reversed order.
	v0, ok0 := f.Vertex(h, e)
	v1, ok1 := f.Vertex(h, (e+1)%6)
	n0, ok2 := f.Vertex(n, (e+4)%6)
	n1, ok3 := f.Vertex(n, (e+3)%6)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return
	}

	parent, ok := r.petalRoot(h)
	if !ok {
		return
	}
	if r.mode == ModePerimeter || r.mode == ModeFull {
		r.spawnLine(parent, v0, v1)
		r.spawnLine(parent, n0, n1)
	}
	if r.mode == ModeCrossGap || r.mode == ModeFull {
		r.spawnLine(parent, v0, n0)
		r.spawnLine(parent, v1, n1)
		r.graph.SpawnMesh(parent, scene.Identity(), BuildQuadFace(v0, v1, n1, n0), FaceMaterial())
	}

	r.Quads[h] = append(r.Quads[h], QuadPetal{
		Node:         parent,
		EdgeIndex:    e,
		NeighborDisc: r.grid.Discs[n].Disc,
	})
}

func (r *Reveal) spawnTriPetal(h hexgrid.Hex, d int) {
	if r.mode != ModeCrossGap && r.mode != ModeFull {
		return
	}
	f := r.grid.Field
	junction := hexgrid.GridVertex{Hex: h, Direction: d}
	coords := junction.Coordinates()
	if coords[0] != h {
		return
	}
	for _, c := range coords {
		if !f.Contains(c) {
			return
		}
	}

	p0, ok0 := f.FindEquivalentVertex(coords[0], junction)
	p1, ok1 := f.FindEquivalentVertex(coords[1], junction)
	p2, ok2 := f.FindEquivalentVertex(coords[2], junction)
	if !ok0 || !ok1 || !ok2 {
		return
	}

	parent, ok := r.petalRoot(h)
	if !ok {
		return
	}
	r.spawnLine(parent, p0, p1)
	r.spawnLine(parent, p1, p2)
	r.spawnLine(parent, p2, p0)
	r.graph.SpawnMesh(parent, scene.Identity(), BuildTriFace(p0, p1, p2), FaceMaterial())

	r.Tris[h] = append(r.Tris[h], TriPetal{
		Node:        parent,
		VertexIndex: d,
		NeighborDiscs: [2]scene.NodeHandle{
			r.grid.Discs[coords[1]].Disc,
			r.grid.Discs[coords[2]].Disc,
		},
	})
}
