package combat

import (
	"fmt"
	"log/slog"
	"sort"

	"srpg/internal/config"
)

// Scene owns the board, the factions and the unit roster of one battle.
type Scene struct {
	ID string

	grid     *Grid
	catalog  *Catalog
	factions map[string]*Faction
	order    []string // faction ids in descriptor order
	units    []*Unit
	logger   *slog.Logger
}

type SceneOption func(*Scene)

func WithLogger(l *slog.Logger) SceneOption {
	return func(s *Scene) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewScene validates def against the catalog and builds the battle. Any invalid
// reference fails the whole construction.
func NewScene(def config.SceneDef, catalog *Catalog, opts ...SceneOption) (*Scene, error) {
	s := &Scene{
		ID:       def.ID,
		catalog:  catalog,
		factions: map[string]*Faction{},
		logger:   slog.Default(),
	}
	for _, o := range opts {
		o(s)
	}

	if def.IDNotString {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidSceneID, def.ID)
	}
	if def.ID == "" {
		return nil, ErrInvalidSceneID
	}
	if def.Map.X <= 0 || def.Map.Y <= 0 {
		return nil, fmt.Errorf("scene %s: %w: %dx%d", def.ID, ErrInvalidMapSize, def.Map.X, def.Map.Y)
	}
	s.grid = NewGrid(def.Map.X, def.Map.Y)

	for i, fd := range def.Factions {
		if fd.IDNotString || fd.ID == "" {
			return nil, fmt.Errorf("scene %s: factionsConfig[%d]: %w", def.ID, i, ErrInvalidFactionID)
		}
		if _, dup := s.factions[fd.ID]; !dup {
			s.order = append(s.order, fd.ID)
		}
		s.factions[fd.ID] = NewFaction(fd)
	}
	for _, f := range s.factions {
		for _, id := range f.HostileTo() {
			if _, ok := s.factions[id]; !ok {
				s.logger.Warn("faction hostile to unknown faction", "scene", def.ID, "faction", f.ID, "hostileTo", id)
			}
		}
	}

	for i, ud := range def.Units {
		u, err := s.buildUnit(ud)
		if err != nil {
			return nil, fmt.Errorf("scene %s: units[%d]: %w", def.ID, i, err)
		}
		s.units = append(s.units, u)
	}

	s.UpdateUnitRelationships()
	s.logger.Debug("scene built", "scene", s.ID, "width", s.grid.Width, "height", s.grid.Height,
		"factions", len(s.order), "units", len(s.units))
	return s, nil
}

func (s *Scene) buildUnit(ud config.UnitDef) (*Unit, error) {
	if ud.Template == "" {
		return nil, ErrInvalidUnitTemplateID
	}
	f, ok := s.factions[ud.Faction]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownFaction, ud.Faction)
	}
	tpl, ok := s.catalog.UnitTemplate(ud.Template)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownUnitTemplate, ud.Template)
	}
	weapons := make([]Weapon, 0, len(ud.Weapons))
	for _, wid := range ud.Weapons {
		wt, ok := s.catalog.WeaponTemplate(wid)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownWeaponTemplate, wid)
		}
		weapons = append(weapons, NewWeapon(wid, wt))
	}
	return newUnit(tpl, ud, f, weapons), nil
}

func (s *Scene) Grid() *Grid       { return s.grid }
func (s *Scene) Units() []*Unit    { return s.units }
func (s *Scene) Catalog() *Catalog { return s.catalog }

func (s *Scene) Faction(id string) (*Faction, bool) {
	f, ok := s.factions[id]
	return f, ok
}

// UpdateUnitRelationships labels every unit relative to the player faction. Without a
// player faction nobody is hostile, so every unit is an ally.
func (s *Scene) UpdateUnitRelationships() {
	player := s.factions[PlayerFactionID]
	for _, u := range s.units {
		switch {
		case player != nil && u.Faction == player:
			u.Relationship = RelPlayer
		case player.IsHostile(u.Faction):
			u.Relationship = RelEnemy
		default:
			u.Relationship = RelAlly
		}
	}
}

// OrderedFactions lists factions with a turn order ascending by it, then the
// unordered ones in descriptor order.
func (s *Scene) OrderedFactions() []*Faction {
	var ordered, rest []*Faction
	for _, id := range s.order {
		f := s.factions[id]
		if f.Order != nil {
			ordered = append(ordered, f)
		} else {
			rest = append(rest, f)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool { return *ordered[i].Order < *ordered[j].Order })
	return append(ordered, rest...)
}

// LivingUnits returns the units of a faction that still have hit points.
func (s *Scene) LivingUnits(factionID string) []*Unit {
	var out []*Unit
	for _, u := range s.units {
		if u.Alive() && u.Faction != nil && u.Faction.ID == factionID {
			out = append(out, u)
		}
	}
	return out
}

// Player returns the first unit of the player faction, or nil.
func (s *Scene) Player() *Unit { return resolveTarget(s.units, nil) }

func (s *Scene) Overlay(opts OverlayOptions) *RenderData {
	rd := s.grid.Overlay(s.units, opts)
	s.logger.Debug("overlay composed", "scene", s.ID,
		"attack_in_place", rd.Count(LayerAttackInPlace),
		"move_range", rd.Count(LayerMoveRange),
		"attack_along_move", rd.Count(LayerAttackAlongMove),
		"enemy_threat", rd.Count(LayerEnemyThreat))
	return rd
}
