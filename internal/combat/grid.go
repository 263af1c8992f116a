package combat

import "math"

var (
	orthoDirs = []Coord{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	diagDirs  = []Coord{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	allDirs   = append(append([]Coord{}, orthoDirs...), diagDirs...)
)

// Grid is the fixed-size board. It holds no unit state; callers pass the roster in.
type Grid struct {
	Width, Height int
}

func NewGrid(w, h int) *Grid { return &Grid{Width: w, Height: h} }

func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

// stepRule splits a range into its step budget and whether diagonal steps are allowed.
// The fractional part only switches diagonals on; it never adds a step.
func stepRule(r float64) (steps int, diag bool) {
	whole, frac := math.Modf(r)
	return int(whole), frac != 0
}

// Reachable returns every in-board tile reachable from origin within the step budget of r.
// Tiles in blocked are never entered nor expanded from. origin is always included.
func (g *Grid) Reachable(origin Coord, r float64, blocked CoordSet) CoordSet {
	steps, diag := stepRule(r)
	dirs := orthoDirs
	if diag {
		dirs = allDirs
	}

	type node struct {
		c Coord
		d int
	}
	visited := NewCoordSet(origin)
	queue := []node{{origin, 0}}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		if n.d >= steps {
			continue
		}
		for _, d := range dirs {
			next := n.c.Add(d)
			if !g.InBounds(next) || visited.Has(next) || blocked.Has(next) {
				continue
			}
			visited.Add(next)
			queue = append(queue, node{next, n.d + 1})
		}
	}
	return visited
}

// AttackRing is the set a weapon threatens from p: its range minus its dead zone,
// both measured as if the board were empty.
func (g *Grid) AttackRing(p Coord, w Weapon) CoordSet {
	return g.Reachable(p, w.Range, nil).Minus(g.Reachable(p, w.DeadZone, nil))
}
