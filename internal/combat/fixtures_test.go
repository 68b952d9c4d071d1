package combat

import (
	"testing"

	"monster_arena/internal/config"
	"monster_arena/internal/monster"
	"monster_arena/internal/species"
	"monster_arena/internal/team"
	"monster_arena/internal/turn"
)

func table(hp, atk, def, spd int) config.StatTableDef {
	return config.StatTableDef{Base: config.StatsDef{MaxHP: hp, Attack: atk, Defense: def, Speed: spd}}
}

func arenaRegistry(t *testing.T) *species.Registry {
	t.Helper()
	reg, err := species.FromConfig(&config.SpeciesConfig{Species: []config.SpeciesDef{
		{ID: "striker", Spawnable: true, EvolvesTo: "champion", Simple: table(10, 50, 1, 10)},
		{ID: "champion", Spawnable: false, Simple: table(30, 60, 5, 12)},
		{ID: "tank", Spawnable: true, Simple: table(20, 4, 1, 5)},
		{ID: "mirror", Spawnable: true, Simple: table(10, 50, 1, 5)},
		{ID: "snail", Spawnable: true, Simple: table(3, 1, 1, 1)},
	}})
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func newTeam(t *testing.T, mode team.Mode, ids ...string) *team.Team {
	t.Helper()
	reg := arenaRegistry(t)
	provided, err := reg.LookupAll(ids)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	tm, err := team.New(team.Config{Mode: mode, Selection: team.Provided, Provided: provided})
	if err != nil {
		t.Fatalf("new team: %v", err)
	}
	return tm
}

// scriptedSide plays script in order, then fallback (or the team's own
// choice when fallback is zero).
type scriptedSide struct {
	*team.Team
	script   []turn.Action
	fallback turn.Action
}

func (s *scriptedSide) ChooseAction(self, opponent *monster.Monster) turn.Action {
	if len(s.script) > 0 {
		a := s.script[0]
		s.script = s.script[1:]
		return a
	}
	if s.fallback != 0 {
		return s.fallback
	}
	return s.Team.ChooseAction(self, opponent)
}

func withStats(hp, atk, def, spd int) *monster.Monster {
	sp := &species.Species{
		ID:     "probe",
		Name:   "Probe",
		Simple: species.StatTable{Base: species.Stats{MaxHP: hp, Attack: atk, Defense: def, Speed: spd}},
	}
	return monster.New(sp, true, 1)
}
