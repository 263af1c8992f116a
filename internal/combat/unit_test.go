package combat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func armed(weapons ...Weapon) *Unit {
	return &Unit{Pos: Coord{0, 0}, HP: 10, Weapons: weapons}
}

func TestBestWeaponAgainst(t *testing.T) {
	g := NewGrid(9, 9)
	bow := Weapon{ID: "bow", Range: 3, DeadZone: 1, Power: 5}
	sword := Weapon{ID: "sword", Range: 1, Power: 8}
	axe := Weapon{ID: "axe", Range: 1, Power: 8}
	u := armed(bow, sword, axe)
	origin := Coord{4, 4}

	got := u.BestWeaponAgainst(origin, Coord{4, 5}, g)
	require.NotNil(t, got)
	assert.Equal(t, "sword", got.ID, "equal power keeps the earlier weapon")

	got = u.BestWeaponAgainst(origin, Coord{4, 7}, g)
	require.NotNil(t, got)
	assert.Equal(t, "bow", got.ID)

	assert.Nil(t, u.BestWeaponAgainst(origin, Coord{4, 8}, g))
	assert.Nil(t, u.BestWeaponAgainst(origin, origin, g), "no ring covers the firing tile")
}

func TestBestWeaponAgainst_PrefersPower(t *testing.T) {
	g := NewGrid(9, 9)
	u := armed(Weapon{ID: "spear", Range: 1.5, Power: 7}, Weapon{ID: "sword", Range: 1, Power: 8})
	origin := Coord{4, 4}

	assert.Equal(t, "sword", u.BestWeaponAgainst(origin, Coord{3, 4}, g).ID)
	assert.Equal(t, "spear", u.BestWeaponAgainst(origin, Coord{5, 5}, g).ID, "only the spear reaches diagonally")
}

func TestBestWeaponAgainst_FiresFromOrigin(t *testing.T) {
	g := NewGrid(9, 9)
	u := armed(Weapon{ID: "sword", Range: 1, Power: 8})
	require.Equal(t, Coord{0, 0}, u.Pos)

	assert.NotNil(t, u.BestWeaponAgainst(Coord{6, 6}, Coord{6, 7}, g))
	assert.Nil(t, u.BestWeaponAgainst(Coord{6, 6}, Coord{0, 1}, g))
}

func TestBestWeaponAgainst_Unarmed(t *testing.T) {
	assert.Nil(t, armed().BestWeaponAgainst(Coord{1, 1}, Coord{1, 2}, NewGrid(3, 3)))
}

func TestRelationshipGlyph(t *testing.T) {
	assert.Equal(t, 'P', RelPlayer.Glyph())
	assert.Equal(t, 'T', RelTarget.Glyph())
	assert.Equal(t, 'E', RelEnemy.Glyph())
	assert.Equal(t, 'A', RelAlly.Glyph())
	assert.Equal(t, 'F', RelFriendly.Glyph())
	assert.Equal(t, '.', RelNone.Glyph())
}

func TestFaction_HostilityIsDirected(t *testing.T) {
	a := &Faction{ID: "a", hostileTo: map[string]bool{"b": true}}
	b := &Faction{ID: "b", hostileTo: map[string]bool{}}
	assert.True(t, a.IsHostile(b))
	assert.False(t, b.IsHostile(a))
	assert.False(t, a.IsHostile(nil))
	var none *Faction
	assert.False(t, none.IsHostile(a))
}

func TestWeapon_JSONMatchesRecordSpelling(t *testing.T) {
	tpl, ok := testCatalog().WeaponTemplate("bow")
	require.True(t, ok)
	b, err := json.Marshal(NewWeapon("bow", tpl))
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 1.0, got["deadZone"])
	assert.NotContains(t, got, "dead_zone")
}
