package config

// UnitTemplate is a designer-authored unit class. Scenes place units by template id.
type UnitTemplate struct {
	ID        string  `yaml:"id" json:"id" jsonschema:"required"`
	Name      string  `yaml:"name" json:"name"`
	MoveRange float64 `yaml:"moveRange" json:"moveRange" jsonschema:"description=Step budget; a fractional part enables diagonal steps"`
	MaxHP     float64 `yaml:"hp_max" json:"hp_max"`
	Power     float64 `yaml:"power" json:"power"`
}

type WeaponTemplate struct {
	ID       string  `yaml:"id" json:"id" jsonschema:"required"`
	Name     string  `yaml:"name" json:"name"`
	Range    float64 `yaml:"range" json:"range" jsonschema:"description=Step budget; a fractional part enables diagonal steps"`
	DeadZone float64 `yaml:"deadZone" json:"deadZone,omitempty" jsonschema:"description=Minimum range; tiles within it cannot be hit"`
	Power    float64 `yaml:"power" json:"power"`
}
