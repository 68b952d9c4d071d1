package team

import (
	"testing"

	"monster_arena/internal/config"
	"monster_arena/internal/monster"
	"monster_arena/internal/species"
)

// seqRand replays fixed draws.
type seqRand struct {
	values []int
	calls  [][2]int
}

func (r *seqRand) UniformInt(low, high int) int {
	r.calls = append(r.calls, [2]int{low, high})
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

func stats(hp, atk, def, spd int) config.StatTableDef {
	return config.StatTableDef{
		Base:   config.StatsDef{MaxHP: hp, Attack: atk, Defense: def, Speed: spd},
		Growth: config.StatsDef{MaxHP: 1, Attack: 1, Defense: 1, Speed: 1},
	}
}

func testRegistry(t *testing.T) *species.Registry {
	t.Helper()
	reg, err := species.FromConfig(&config.SpeciesConfig{Species: []config.SpeciesDef{
		{ID: "ant", Spawnable: true, Simple: stats(10, 5, 3, 5)},
		{ID: "bee", Spawnable: true, Simple: stats(6, 7, 2, 8)},
		{ID: "cat", Spawnable: true, Simple: stats(12, 4, 6, 2)},
		{ID: "dragon", Spawnable: false, Simple: stats(30, 20, 20, 20)},
		{ID: "eel", Spawnable: true, Simple: stats(8, 6, 4, 6)},
	}})
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return reg
}

func lookup(t *testing.T, reg *species.Registry, ids ...string) []*species.Species {
	t.Helper()
	out, err := reg.LookupAll(ids)
	if err != nil {
		t.Fatalf("lookup %v: %v", ids, err)
	}
	return out
}

func providedTeam(t *testing.T, mode Mode, key SortKey, ids ...string) *Team {
	t.Helper()
	reg := testRegistry(t)
	tm, err := New(Config{Mode: mode, Selection: Provided, SortKey: key, Provided: lookup(t, reg, ids...)})
	if err != nil {
		t.Fatalf("new team: %v", err)
	}
	return tm
}

func drain(t *testing.T, tm *Team) []string {
	t.Helper()
	var ids []string
	for tm.Size() > 0 {
		m, err := tm.Retrieve()
		if err != nil {
			t.Fatalf("retrieve: %v", err)
		}
		ids = append(ids, m.Species().ID)
	}
	return ids
}

func ids(ms []*monster.Monster) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Species().ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
