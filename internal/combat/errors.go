package combat

import "errors"

var (
	ErrInvalidSceneID        = errors.New("scene id must be a non-empty string")
	ErrInvalidMapSize        = errors.New("scene map dimensions must be positive numbers")
	ErrInvalidFactionID      = errors.New("faction id must be a non-empty string")
	ErrInvalidUnitTemplateID = errors.New("unit template id must be a non-empty string")
	ErrUnknownFaction        = errors.New("unknown faction")
	ErrUnknownUnitTemplate   = errors.New("unknown unit template")
	ErrUnknownWeaponTemplate = errors.New("unknown weapon template")
)
