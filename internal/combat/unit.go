package combat

import "srpg/internal/config"

type Relationship string

const (
	RelNone     Relationship = ""
	RelPlayer   Relationship = "player"
	RelTarget   Relationship = "target"
	RelEnemy    Relationship = "enemy"
	RelAlly     Relationship = "ally"
	RelFriendly Relationship = "friendly"
)

var relationshipGlyph = map[Relationship]rune{
	RelPlayer:   'P',
	RelTarget:   'T',
	RelEnemy:    'E',
	RelAlly:     'A',
	RelFriendly: 'F',
}

func (r Relationship) Glyph() rune {
	if g, ok := relationshipGlyph[r]; ok {
		return g
	}
	return '.'
}

type Unit struct {
	TemplateID string
	Name       string
	MoveRange  float64
	MaxHP      float64
	Power      float64

	Pos     Coord
	HP      float64
	Faction *Faction // owned by the scene
	Weapons []Weapon

	Relationship Relationship
}

func newUnit(tpl config.UnitTemplate, def config.UnitDef, f *Faction, weapons []Weapon) *Unit {
	hp := tpl.MaxHP
	if def.HP != nil {
		hp = *def.HP
	}
	return &Unit{
		TemplateID: tpl.ID,
		Name:       tpl.Name,
		MoveRange:  tpl.MoveRange,
		MaxHP:      tpl.MaxHP,
		Power:      tpl.Power,
		Pos:        Coord{X: def.X, Y: def.Y},
		HP:         hp,
		Faction:    f,
		Weapons:    weapons,
	}
}

// Alive reports whether the unit still takes part in spatial queries.
func (u *Unit) Alive() bool { return u != nil && u.HP > 0 }

func (u *Unit) IsHostileTo(other *Unit) bool {
	if u == nil || other == nil {
		return false
	}
	return u.Faction.IsHostile(other.Faction)
}

// BestWeaponAgainst returns the most powerful weapon whose attack ring, fired from
// origin, covers target. On equal power the earlier weapon in the loadout wins.
// It returns nil when no weapon reaches.
func (u *Unit) BestWeaponAgainst(origin, target Coord, g *Grid) *Weapon {
	var best *Weapon
	for i := range u.Weapons {
		w := &u.Weapons[i]
		if !g.AttackRing(origin, *w).Has(target) {
			continue
		}
		if best == nil || w.Power > best.Power {
			best = w
		}
	}
	return best
}
