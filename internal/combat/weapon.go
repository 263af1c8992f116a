package combat

import "srpg/internal/config"

// Weapon ranges follow the movement rule: the integer part is the step budget and a
// fractional part enables diagonal steps.
type Weapon struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Range    float64 `json:"range"`
	DeadZone float64 `json:"deadZone"`
	Power    float64 `json:"power"`
}

func NewWeapon(id string, def config.WeaponTemplate) Weapon {
	return Weapon{ID: id, Name: def.Name, Range: def.Range, DeadZone: def.DeadZone, Power: def.Power}
}
