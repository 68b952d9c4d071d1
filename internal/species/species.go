// Package species holds the data-driven species table: per-species metadata,
// level-indexed stat tables and evolution links.
package species

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"monster_arena/internal/config"
	apperrors "monster_arena/internal/errors"
)

type Stats struct {
	MaxHP   int
	Attack  int
	Defense int
	Speed   int
}

func (s Stats) add(o Stats, times int) Stats {
	return Stats{
		MaxHP:   s.MaxHP + o.MaxHP*times,
		Attack:  s.Attack + o.Attack*times,
		Defense: s.Defense + o.Defense*times,
		Speed:   s.Speed + o.Speed*times,
	}
}

type StatTable struct {
	Base   Stats
	Growth Stats
	Levels map[int]Stats
}

// At returns the stats for level. Levels below 1 are treated as 1.
func (t StatTable) At(level int) Stats {
	if level < 1 {
		level = 1
	}
	if s, ok := t.Levels[level]; ok {
		return s
	}
	return t.Base.add(t.Growth, level-1)
}

type Species struct {
	ID          string
	Name        string
	Description string
	Element     string
	Spawnable   bool
	Evolution   *Species
	Simple      StatTable
	Complex     StatTable
}

// Stats returns the stats for level from the simple or the complex table.
func (s *Species) Stats(simple bool, level int) Stats {
	if simple {
		return s.Simple.At(level)
	}
	return s.Complex.At(level)
}

func (s *Species) String() string { return s.Name }

type Registry struct {
	all  []*Species
	byID map[string]*Species
}

// FromConfig builds a registry, keeping table order and resolving evolution links.
func FromConfig(cfg *config.SpeciesConfig) (*Registry, error) {
	if cfg == nil || len(cfg.Species) == 0 {
		return nil, apperrors.New(apperrors.CodeInvalidConfiguration, "species table is empty")
	}
	reg := &Registry{byID: make(map[string]*Species, len(cfg.Species))}
	title := cases.Title(language.English)
	for _, def := range cfg.Species {
		id := strings.ToLower(strings.TrimSpace(def.ID))
		if id == "" {
			return nil, apperrors.New(apperrors.CodeInvalidConfiguration, "species id is required")
		}
		if _, dup := reg.byID[id]; dup {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidConfiguration,
				fmt.Sprintf("duplicate species %q", id), map[string]string{"species": id})
		}
		name := def.Name
		if name == "" {
			name = title.String(strings.ReplaceAll(id, "_", " "))
		}
		sp := &Species{
			ID:          id,
			Name:        name,
			Description: def.Description,
			Element:     def.Element,
			Spawnable:   def.Spawnable,
			Simple:      tableFromDef(def.Simple),
			Complex:     tableFromDef(def.Complex),
		}
		if sp.Simple.At(1).MaxHP <= 0 {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidConfiguration,
				fmt.Sprintf("species %q has no max hp", id), map[string]string{"species": id})
		}
		reg.all = append(reg.all, sp)
		reg.byID[id] = sp
	}
	for _, def := range cfg.Species {
		target := strings.ToLower(strings.TrimSpace(def.EvolvesTo))
		if target == "" {
			continue
		}
		id := strings.ToLower(strings.TrimSpace(def.ID))
		evo, ok := reg.byID[target]
		if !ok || target == id {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidConfiguration,
				fmt.Sprintf("species %q evolves into unknown species %q", id, target),
				map[string]string{"species": id, "evolves_to": target})
		}
		reg.byID[id].Evolution = evo
	}
	return reg, nil
}

func tableFromDef(def config.StatTableDef) StatTable {
	t := StatTable{Base: statsFromDef(def.Base), Growth: statsFromDef(def.Growth)}
	if len(def.Levels) > 0 {
		t.Levels = make(map[int]Stats, len(def.Levels))
		for lvl, s := range def.Levels {
			t.Levels[lvl] = statsFromDef(s)
		}
	}
	return t
}

func statsFromDef(d config.StatsDef) Stats {
	return Stats{MaxHP: d.MaxHP, Attack: d.Attack, Defense: d.Defense, Speed: d.Speed}
}

// Default builds the registry from the embedded species table.
func Default() (*Registry, error) {
	cfg, err := config.DefaultSpecies()
	if err != nil {
		return nil, err
	}
	return FromConfig(cfg)
}

// All returns every species in table order.
func (r *Registry) All() []*Species { return r.all }

// Spawnable returns the spawnable species in table order.
func (r *Registry) Spawnable() []*Species {
	out := make([]*Species, 0, len(r.all))
	for _, sp := range r.all {
		if sp.Spawnable {
			out = append(out, sp)
		}
	}
	return out
}

func (r *Registry) Lookup(id string) (*Species, bool) {
	sp, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	return sp, ok
}

// LookupAll resolves ids in order and fails on the first unknown one.
func (r *Registry) LookupAll(ids []string) ([]*Species, error) {
	out := make([]*Species, 0, len(ids))
	for _, id := range ids {
		sp, ok := r.Lookup(id)
		if !ok {
			return nil, apperrors.WithMetadata(apperrors.CodeInvalidConfiguration,
				fmt.Sprintf("unknown species %q", id), map[string]string{"species": id})
		}
		out = append(out, sp)
	}
	return out, nil
}
