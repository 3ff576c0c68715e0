package hexgrid

// Hex is an axial coordinate on a pointy-top hexagonal grid.
type Hex struct {
	Q int
	R int
}

// EdgeNeighborOffsets maps an edge index to the axial offset of the
// neighbor sharing that edge. Edge e is bounded by corners e and e+1.
var EdgeNeighborOffsets = [6]Hex{
	{0, 1},
	{-1, 1},
	{-1, 0},
	{0, -1},
	{1, -1},
	{1, 0},
}

func (h Hex) Add(o Hex) Hex {
	return Hex{h.Q + o.Q, h.R + o.R}
}

// Neighbor returns the hex across edge e.
func (h Hex) Neighbor(e int) Hex {
	return h.Add(EdgeNeighborOffsets[e])
}

// Neighbors returns all six adjacent hexes in edge order.
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, off := range EdgeNeighborOffsets {
		out[i] = h.Add(off)
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Distance is the hex grid distance between two cells.
func (h Hex) Distance(o Hex) int {
	dq := h.Q - o.Q
	dr := h.R - o.R
	return (abs(dq) + abs(dr) + abs(dq+dr)) / 2
}

// Hexagon enumerates every hex within the given radius of center,
// center included, in deterministic row-major (r, then q) order.
func Hexagon(center Hex, radius int) []Hex {
	out := make([]Hex, 0, 1+3*radius*(radius+1))
	for r := -radius; r <= radius; r++ {
		qMin := -radius
		if -r-radius > qMin {
			qMin = -r - radius
		}
		qMax := radius
		if -r+radius < qMax {
			qMax = -r + radius
		}
		for q := qMin; q <= qMax; q++ {
			out = append(out, Hex{center.Q + q, center.R + r})
		}
	}
	return out
}
