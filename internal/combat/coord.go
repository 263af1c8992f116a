package combat

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Coord is a tile position on the board. It is comparable and used directly as a map key.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (c Coord) Add(d Coord) Coord { return Coord{c.X + d.X, c.Y + d.Y} }
func (c Coord) Key() string       { return strconv.Itoa(c.X) + "," + strconv.Itoa(c.Y) }
func (c Coord) String() string    { return c.Key() }

// ParseCoord reads a key produced by Coord.Key.
func ParseCoord(key string) (Coord, error) {
	xs, ys, ok := strings.Cut(key, ",")
	if !ok {
		return Coord{}, fmt.Errorf("coord %q: missing separator", key)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Coord{}, fmt.Errorf("coord %q: %w", key, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Coord{}, fmt.Errorf("coord %q: %w", key, err)
	}
	return Coord{X: x, Y: y}, nil
}

type CoordSet map[Coord]struct{}

func NewCoordSet(cs ...Coord) CoordSet {
	s := make(CoordSet, len(cs))
	for _, c := range cs {
		s[c] = struct{}{}
	}
	return s
}

func (s CoordSet) Add(c Coord) { s[c] = struct{}{} }
func (s CoordSet) Len() int    { return len(s) }

func (s CoordSet) Has(c Coord) bool {
	_, ok := s[c]
	return ok
}

// Union adds every member of o to s.
func (s CoordSet) Union(o CoordSet) {
	for c := range o {
		s[c] = struct{}{}
	}
}

// Minus returns a new set holding the members of s not in o.
func (s CoordSet) Minus(o CoordSet) CoordSet {
	out := make(CoordSet, len(s))
	for c := range s {
		if !o.Has(c) {
			out[c] = struct{}{}
		}
	}
	return out
}

// Sorted lists the members row by row.
func (s CoordSet) Sorted() []Coord {
	out := make([]Coord, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
