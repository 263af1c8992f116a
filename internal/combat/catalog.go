package combat

import "srpg/internal/config"

// Catalog holds the unit and weapon templates scenes are built from. Scenes borrow
// a catalog; share one to let scenes see each other's templates, or give each
// scene its own to keep them apart.
type Catalog struct {
	units   map[string]config.UnitTemplate
	weapons map[string]config.WeaponTemplate
}

func NewCatalog(units []config.UnitTemplate, weapons []config.WeaponTemplate) *Catalog {
	c := &Catalog{
		units:   map[string]config.UnitTemplate{},
		weapons: map[string]config.WeaponTemplate{},
	}
	for _, u := range units {
		c.AddUnitTemplate(u)
	}
	for _, w := range weapons {
		c.AddWeaponTemplate(w)
	}
	return c
}

// AddUnitTemplate registers t under its id, replacing any earlier template.
func (c *Catalog) AddUnitTemplate(t config.UnitTemplate)     { c.units[t.ID] = t }
func (c *Catalog) AddWeaponTemplate(t config.WeaponTemplate) { c.weapons[t.ID] = t }

func (c *Catalog) UnitTemplate(id string) (config.UnitTemplate, bool) {
	if c == nil {
		return config.UnitTemplate{}, false
	}
	t, ok := c.units[id]
	return t, ok
}

func (c *Catalog) WeaponTemplate(id string) (config.WeaponTemplate, bool) {
	if c == nil {
		return config.WeaponTemplate{}, false
	}
	t, ok := c.weapons[id]
	return t, ok
}

func (c *Catalog) Len() (units, weapons int) {
	if c == nil {
		return 0, 0
	}
	return len(c.units), len(c.weapons)
}
