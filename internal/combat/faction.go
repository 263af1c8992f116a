package combat

import (
	"sort"

	"srpg/internal/config"
)

const PlayerFactionID = "player"

type Faction struct {
	ID        string
	Name      string
	Color     string
	Order     *float64 // nil when the faction takes no part in turn ordering
	hostileTo map[string]bool
}

func NewFaction(def config.FactionDef) *Faction {
	f := &Faction{ID: def.ID, Name: def.Name, Color: def.Color, hostileTo: map[string]bool{}}
	if def.Order != nil {
		o := *def.Order
		f.Order = &o
	}
	for _, id := range def.HostileTo {
		f.hostileTo[id] = true
	}
	return f
}

// IsHostile reports whether f treats other as an enemy. The relation is directed.
func (f *Faction) IsHostile(other *Faction) bool {
	if f == nil || other == nil {
		return false
	}
	return f.hostileTo[other.ID]
}

func (f *Faction) HostileTo() []string {
	out := make([]string, 0, len(f.hostileTo))
	for id := range f.hostileTo {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
