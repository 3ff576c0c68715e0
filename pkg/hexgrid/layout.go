package hexgrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const sqrt3 = 1.7320508075688772

// Layout converts between axial hex coordinates and world-plane
// positions for a pointy-top grid with uniform cell scale.
type Layout struct {
	Scale float32
}

// HexToWorld returns the world-plane center of the hex. X maps to
// world X and Y to world Z.
func (l Layout) HexToWorld(h Hex) mgl32.Vec2 {
	s := float64(l.Scale)
	x := s * (sqrt3*float64(h.Q) + sqrt3/2*float64(h.R))
	y := s * (1.5 * float64(h.R))
	return mgl32.Vec2{float32(x), float32(y)}
}

// WorldToHex returns the hex containing the world-plane point,
// using cube rounding on the fractional axial coordinates.
func (l Layout) WorldToHex(p mgl32.Vec2) Hex {
	s := float64(l.Scale)
	x := float64(p.X()) / s
	y := float64(p.Y()) / s
	q := sqrt3/3*x - 1.0/3*y
	r := 2.0 / 3 * y
	return roundAxial(q, r)
}

func roundAxial(q, r float64) Hex {
	s := -q - r
	rq := math.Round(q)
	rr := math.Round(r)
	rs := math.Round(s)
	dq := math.Abs(rq - q)
	dr := math.Abs(rr - r)
	ds := math.Abs(rs - s)
	if dq > dr && dq > ds {
		rq = -rr - rs
	} else if dr > ds {
		rr = -rq - rs
	}
	return Hex{int(rq), int(rr)}
}

// UnitCorners are the six corner offsets of a unit-radius pointy-top
// hex, starting at 30 degrees and advancing counterclockwise. Corner
// i and corner i+1 bound edge i.
func UnitCorners() [6]mgl32.Vec2 {
	var out [6]mgl32.Vec2
	for i := 0; i < 6; i++ {
		a := math.Pi / 6 * float64(1+2*i)
		out[i] = mgl32.Vec2{float32(math.Cos(a)), float32(math.Sin(a))}
	}
	return out
}

// Corner returns the world-plane position of corner i of hex h for a
// cell of the given radius.
func (l Layout) Corner(h Hex, i int, radius float32) mgl32.Vec2 {
	c := l.HexToWorld(h)
	off := UnitCorners()[i].Mul(radius)
	return c.Add(off)
}
