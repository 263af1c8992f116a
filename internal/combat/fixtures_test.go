package combat

import "srpg/internal/config"

func ptr[T any](v T) *T { return &v }

func testCatalog() *Catalog {
	return NewCatalog(
		[]config.UnitTemplate{
			{ID: "footman", Name: "Footman", MoveRange: 2, MaxHP: 20, Power: 5},
			{ID: "rider", Name: "Rider", MoveRange: 3.5, MaxHP: 24, Power: 7},
			{ID: "sentry", Name: "Sentry", MoveRange: 1, MaxHP: 16, Power: 4},
		},
		[]config.WeaponTemplate{
			{ID: "sword", Name: "Sword", Range: 1, Power: 8},
			{ID: "axe", Name: "Axe", Range: 1, Power: 8},
			{ID: "spear", Name: "Spear", Range: 1.5, Power: 7},
			{ID: "bow", Name: "Bow", Range: 3, DeadZone: 1, Power: 5},
		},
	)
}

// duel is a two-faction scene with mutual hostility.
func duel(w, h int, units ...config.UnitDef) config.SceneDef {
	return config.SceneDef{
		ID:  "duel",
		Map: config.MapDef{X: w, Y: h},
		Factions: []config.FactionDef{
			{ID: "player", Name: "Blue", Color: "blue", HostileTo: []string{"enemy"}},
			{ID: "enemy", Name: "Red", Color: "red", HostileTo: []string{"player"}},
		},
		Units: units,
	}
}

func place(tpl, faction string, x, y int, weapons ...string) config.UnitDef {
	return config.UnitDef{X: x, Y: y, Template: tpl, Faction: faction, Weapons: weapons}
}
