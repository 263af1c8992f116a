package combat

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Layer is the highlight drawn under a tile. Lower values take precedence.
type Layer int

const (
	LayerNone Layer = iota
	LayerAttackInPlace
	LayerMoveRange
	LayerAttackAlongMove
	LayerEnemyThreat
)

var layerNames = [...]string{"none", "attack_in_place", "move_range", "attack_along_move", "enemy_threat"}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

func (l Layer) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

type OverlayOptions struct {
	// Target defaults to the first unit of the player faction when nil or not in the roster.
	Target *Unit
	// RelationToTarget labels units relative to the target instead of the player faction.
	RelationToTarget bool

	ShowAttackInPlace   bool
	ShowMoveRange       bool
	ShowAttackAlongMove bool
	ShowEnemyThreat     bool
}

type Tile struct {
	Coord        Coord        `json:"coord"`
	Glyph        string       `json:"glyph"`
	Relationship Relationship `json:"relationship,omitempty"`
	Layer        Layer        `json:"layer"`
	Color        string       `json:"color,omitempty"` // occupant faction colour
	Occupied     bool         `json:"occupied"`
}

// RenderData is the per-tile classification handed to a renderer. Tiles is indexed [y][x].
type RenderData struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Target *Coord   `json:"target,omitempty"`
	Tiles  [][]Tile `json:"tiles"`
}

func (rd *RenderData) At(c Coord) Tile { return rd.Tiles[c.Y][c.X] }

// Count returns how many tiles carry layer l.
func (rd *RenderData) Count(l Layer) int {
	n := 0
	for _, row := range rd.Tiles {
		for _, t := range row {
			if t.Layer == l {
				n++
			}
		}
	}
	return n
}

// RelationTo labels u from the point of view of target.
func RelationTo(target, u *Unit) Relationship {
	switch {
	case u == target:
		return RelTarget
	case u.Faction != nil && target.Faction != nil && u.Faction.ID == target.Faction.ID:
		return RelFriendly
	case target.IsHostileTo(u):
		return RelEnemy
	default:
		return RelAlly
	}
}

func resolveTarget(units []*Unit, want *Unit) *Unit {
	if want != nil {
		for _, u := range units {
			if u == want {
				return u
			}
		}
	}
	for _, u := range units {
		if u.Faction != nil && u.Faction.ID == PlayerFactionID {
			return u
		}
	}
	return nil
}

// hostilePositions collects the tiles of living units f is hostile to.
func hostilePositions(f *Faction, units []*Unit) CoordSet {
	out := CoordSet{}
	for _, u := range units {
		if u.Alive() && f.IsHostile(u.Faction) {
			out.Add(u.Pos)
		}
	}
	return out
}

// MoveRange is where u can move this turn: living hostile units block both stopping and passing.
func (g *Grid) MoveRange(u *Unit, units []*Unit) CoordSet {
	return g.Reachable(u.Pos, u.MoveRange, hostilePositions(u.Faction, units))
}

type ringKey struct {
	p             Coord
	rng, deadZone float64
}

// ringCache memoises attack rings for the lifetime of one overlay request.
type ringCache struct {
	g     *Grid
	mu    sync.Mutex
	rings map[ringKey]CoordSet
}

func newRingCache(g *Grid) *ringCache {
	return &ringCache{g: g, rings: map[ringKey]CoordSet{}}
}

func (rc *ringCache) ring(p Coord, w Weapon) CoordSet {
	k := ringKey{p, w.Range, w.DeadZone}
	rc.mu.Lock()
	s, ok := rc.rings[k]
	rc.mu.Unlock()
	if ok {
		return s
	}
	s = rc.g.AttackRing(p, w)
	rc.mu.Lock()
	rc.rings[k] = s
	rc.mu.Unlock()
	return s
}

// attackFrom unions the rings of every weapon fired from every tile in from.
func (rc *ringCache) attackFrom(weapons []Weapon, from CoordSet) CoordSet {
	out := CoordSet{}
	for p := range from {
		for _, w := range weapons {
			out.Union(rc.ring(p, w))
		}
	}
	return out
}

// enemyThreat is everything the target's living enemies can hit after moving. Each
// enemy moves around the units its own faction is hostile to; that blocked set is
// built once per faction.
func (rc *ringCache) enemyThreat(target *Unit, units []*Unit) CoordSet {
	var enemies []*Unit
	blockedBy := map[string]CoordSet{}
	for _, u := range units {
		if !u.Alive() || !target.IsHostileTo(u) {
			continue
		}
		enemies = append(enemies, u)
		if _, ok := blockedBy[u.Faction.ID]; !ok {
			blockedBy[u.Faction.ID] = hostilePositions(u.Faction, units)
		}
	}

	parts := make([]CoordSet, len(enemies))
	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, e := range enemies {
		i, e := i, e
		blocked := blockedBy[e.Faction.ID]
		eg.Go(func() error {
			moves := rc.g.Reachable(e.Pos, e.MoveRange, blocked)
			parts[i] = rc.attackFrom(e.Weapons, moves)
			return nil
		})
	}
	_ = eg.Wait()

	out := CoordSet{}
	for _, p := range parts {
		out.Union(p)
	}
	return out
}

// Overlay classifies every tile of the board for display. Each layer is computed only
// when requested; when several apply to a tile the lowest-numbered layer wins, and the
// move range layer only shows on empty tiles.
func (g *Grid) Overlay(units []*Unit, opts OverlayOptions) *RenderData {
	target := resolveTarget(units, opts.Target)
	rc := newRingCache(g)

	var inPlace, moves, along, threat CoordSet
	if target != nil {
		if opts.ShowAttackInPlace {
			inPlace = rc.attackFrom(target.Weapons, NewCoordSet(target.Pos))
		}
		if opts.ShowMoveRange || opts.ShowAttackAlongMove {
			reach := g.MoveRange(target, units)
			if opts.ShowMoveRange {
				moves = reach
			}
			if opts.ShowAttackAlongMove {
				along = rc.attackFrom(target.Weapons, reach)
			}
		}
		if opts.ShowEnemyThreat {
			threat = rc.enemyThreat(target, units)
		}
	}

	occupant := map[Coord]*Unit{}
	for _, u := range units {
		if !u.Alive() {
			continue
		}
		if _, taken := occupant[u.Pos]; !taken {
			occupant[u.Pos] = u
		}
	}

	rd := &RenderData{Width: g.Width, Height: g.Height, Tiles: make([][]Tile, g.Height)}
	if target != nil {
		pos := target.Pos
		rd.Target = &pos
	}
	for y := 0; y < g.Height; y++ {
		row := make([]Tile, g.Width)
		for x := 0; x < g.Width; x++ {
			c := Coord{X: x, Y: y}
			t := Tile{Coord: c, Glyph: "."}
			u := occupant[c]
			if u != nil {
				rel := u.Relationship
				if opts.RelationToTarget && target != nil {
					rel = RelationTo(target, u)
				}
				t.Occupied = true
				t.Relationship = rel
				t.Glyph = string(rel.Glyph())
				if u.Faction != nil {
					t.Color = u.Faction.Color
				}
			}
			switch {
			case inPlace.Has(c):
				t.Layer = LayerAttackInPlace
			case u == nil && moves.Has(c):
				t.Layer = LayerMoveRange
			case along.Has(c):
				t.Layer = LayerAttackAlongMove
			case threat.Has(c):
				t.Layer = LayerEnemyThreat
			}
			row[x] = t
		}
		rd.Tiles[y] = row
	}
	return rd
}
