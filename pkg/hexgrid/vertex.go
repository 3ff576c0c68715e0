package hexgrid

// GridVertex identifies a corner of the hex grid. Every physical
// corner is shared by three hexes and six (hex, corner) pairs name
// it; the canonical form uses direction 0 or 1 only, so each corner
// has exactly one canonical identity.
type GridVertex struct {
	Hex       Hex
	Direction int
}

// Canonical reduces the vertex to its canonical form.
func (v GridVertex) Canonical() GridVertex {
	switch v.Direction {
	case 0, 1:
		return v
	case 2:
		return GridVertex{v.Hex.Add(Hex{-1, 0}), 0}
	case 3:
		return GridVertex{v.Hex.Add(Hex{0, -1}), 1}
	case 4:
		return GridVertex{v.Hex.Add(Hex{0, -1}), 0}
	case 5:
		return GridVertex{v.Hex.Add(Hex{1, -1}), 1}
	}
	panic("hexgrid: vertex direction out of range")
}

// Coordinates returns the three hexes meeting at this corner, with
// the canonical origin hex first.
func (v GridVertex) Coordinates() [3]Hex {
	c := v.Canonical()
	if c.Direction == 0 {
		return [3]Hex{c.Hex, c.Hex.Add(Hex{1, 0}), c.Hex.Add(Hex{0, 1})}
	}
	return [3]Hex{c.Hex, c.Hex.Add(Hex{0, 1}), c.Hex.Add(Hex{-1, 1})}
}

// Equivalent reports whether two vertices name the same physical
// corner.
func (v GridVertex) Equivalent(o GridVertex) bool {
	return v.Canonical() == o.Canonical()
}
