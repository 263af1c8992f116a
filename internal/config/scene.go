package config

// SceneDef describes one battle: board size, factions and unit placements.
type SceneDef struct {
	ID       string       `yaml:"id" json:"id" jsonschema:"required"`
	Map      MapDef       `yaml:"map" json:"map" jsonschema:"required"`
	Units    []UnitDef    `yaml:"units" json:"units"`
	Factions []FactionDef `yaml:"factionsConfig" json:"factionsConfig"`

	// IDNotString is set when the record wrote its id as a non-string value.
	IDNotString bool `yaml:"-" json:"-"`
}

type MapDef struct {
	X int `yaml:"x" json:"x" jsonschema:"required,description=Board width"`
	Y int `yaml:"y" json:"y" jsonschema:"required,description=Board height"`
}

type UnitDef struct {
	X        int      `yaml:"x" json:"x"`
	Y        int      `yaml:"y" json:"y"`
	Template string   `yaml:"id" json:"id" jsonschema:"required,description=Unit template id"`
	Faction  string   `yaml:"factions" json:"factions" jsonschema:"required"`
	Weapons  []string `yaml:"weapon" json:"weapon"`
	HP       *float64 `yaml:"hp,omitempty" json:"hp,omitempty" jsonschema:"description=Overrides the template hp_max"`
}

type FactionDef struct {
	ID        string   `yaml:"id" json:"id" jsonschema:"required"`
	Name      string   `yaml:"name" json:"name"`
	Color     string   `yaml:"color" json:"color" jsonschema:"description=Named ANSI colour or #rrggbb"`
	HostileTo []string `yaml:"hostileTo" json:"hostileTo"`
	Order     *float64 `yaml:"order,omitempty" json:"order,omitempty" jsonschema:"description=Turn order; unordered factions act last"`

	IDNotString bool `yaml:"-" json:"-"`
}
