package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func manhattan(a, b Coord) int { return abs(a.X-b.X) + abs(a.Y-b.Y) }
func chebyshev(a, b Coord) int { return max(abs(a.X-b.X), abs(a.Y-b.Y)) }

// expectedSet lists every board tile within dist of origin under metric.
func expectedSet(g *Grid, origin Coord, n int, metric func(a, b Coord) int) CoordSet {
	out := CoordSet{}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			c := Coord{x, y}
			if metric(origin, c) <= n {
				out.Add(c)
			}
		}
	}
	return out
}

func TestReachable_IntegerRangeIsManhattanDiamond(t *testing.T) {
	g := NewGrid(9, 7)
	for _, origin := range []Coord{{4, 3}, {0, 0}, {8, 6}, {2, 5}} {
		for n := 0; n <= 5; n++ {
			got := g.Reachable(origin, float64(n), nil)
			assert.Equal(t, expectedSet(g, origin, n, manhattan), got, "origin %v range %d", origin, n)
		}
	}
}

func TestReachable_FractionalRangeEnablesDiagonals(t *testing.T) {
	g := NewGrid(9, 7)
	for _, origin := range []Coord{{4, 3}, {0, 0}, {8, 1}} {
		for n := 0; n <= 4; n++ {
			got := g.Reachable(origin, float64(n)+0.5, nil)
			assert.Equal(t, expectedSet(g, origin, n, chebyshev), got, "origin %v range %d.5", origin, n)
		}
	}
}

func TestReachable_FractionIsOnlyAModeFlag(t *testing.T) {
	g := NewGrid(9, 9)
	origin := Coord{4, 4}
	assert.Equal(t, g.Reachable(origin, 2.5, nil), g.Reachable(origin, 2.1, nil))
	assert.False(t, g.Reachable(origin, 2.9, nil).Has(Coord{4, 7}), "fraction must not add a step")
}

func TestReachable_OriginAlwaysIncluded(t *testing.T) {
	g := NewGrid(5, 5)
	origin := Coord{2, 2}
	got := g.Reachable(origin, 0, nil)
	assert.Equal(t, NewCoordSet(origin), got)

	got = g.Reachable(origin, 1, NewCoordSet(origin))
	assert.True(t, got.Has(origin))
	assert.Equal(t, 5, got.Len())
}

func TestReachable_BlockedTilesAreHardObstacles(t *testing.T) {
	// A wall across column 2 with a gap at the bottom row.
	g := NewGrid(5, 5)
	wall := NewCoordSet(Coord{2, 0}, Coord{2, 1}, Coord{2, 2}, Coord{2, 3})
	got := g.Reachable(Coord{0, 0}, 8, wall)

	for c := range wall {
		assert.False(t, got.Has(c), "blocked %v entered", c)
	}
	assert.True(t, got.Has(Coord{2, 4}))
	assert.True(t, got.Has(Coord{3, 4}))
	// (3,0) is 3 steps away in open ground but 11 around the wall.
	assert.False(t, got.Has(Coord{3, 0}))
}

func TestReachable_StaysOnBoard(t *testing.T) {
	g := NewGrid(3, 2)
	for c := range g.Reachable(Coord{0, 0}, 10.5, nil) {
		assert.True(t, g.InBounds(c), "%v off board", c)
	}
	assert.Equal(t, 6, g.Reachable(Coord{0, 0}, 10.5, nil).Len())
}

func TestAttackRing_DiagonalOneStep(t *testing.T) {
	g := NewGrid(5, 5)
	ring := g.AttackRing(Coord{2, 2}, Weapon{Range: 1.5})
	want := NewCoordSet(
		Coord{1, 1}, Coord{2, 1}, Coord{3, 1},
		Coord{1, 2}, Coord{3, 2},
		Coord{1, 3}, Coord{2, 3}, Coord{3, 3},
	)
	assert.Equal(t, want, ring)
}

func TestAttackRing_DeadZoneCutsNearField(t *testing.T) {
	g := NewGrid(9, 9)
	p := Coord{4, 4}
	ring := g.AttackRing(p, Weapon{Range: 3, DeadZone: 1})
	for c := range ring {
		d := manhattan(p, c)
		assert.True(t, d >= 2 && d <= 3, "%v at distance %d", c, d)
	}
	assert.Equal(t, 8+12, ring.Len())
}

func TestAttackRing_EmptyWhenDeadZoneCoversRange(t *testing.T) {
	g := NewGrid(9, 9)
	p := Coord{4, 4}
	assert.Zero(t, g.AttackRing(p, Weapon{Range: 2, DeadZone: 2}).Len())
	assert.Zero(t, g.AttackRing(p, Weapon{Range: 2, DeadZone: 3}).Len())
	assert.Zero(t, g.AttackRing(p, Weapon{Range: 1.5, DeadZone: 2.5}).Len())
}

func TestMoveRange_HostileUnitsBlockPassage(t *testing.T) {
	player := &Faction{ID: "player", hostileTo: map[string]bool{"enemy": true}}
	enemy := &Faction{ID: "enemy", hostileTo: map[string]bool{"player": true}}
	hero := &Unit{Pos: Coord{0, 0}, HP: 10, MoveRange: 2, Faction: player}
	foe := &Unit{Pos: Coord{2, 0}, HP: 10, MoveRange: 2, Faction: enemy}

	g := NewGrid(5, 5)
	got := g.MoveRange(hero, []*Unit{hero, foe})
	want := NewCoordSet(Coord{0, 0}, Coord{1, 0}, Coord{0, 1}, Coord{1, 1}, Coord{0, 2})
	assert.Equal(t, want, got)

	foe.HP = 0
	assert.True(t, g.MoveRange(hero, []*Unit{hero, foe}).Has(Coord{2, 0}), "defeated units do not block")
}
