// Package team holds a side's monsters behind one of three disciplines
// (stack, circular queue, priority order) and picks the side's action each turn.
package team

import (
	"fmt"
	"strings"

	apperrors "monster_arena/internal/errors"
	"monster_arena/internal/monster"
	"monster_arena/internal/species"
	"monster_arena/internal/turn"
	"monster_arena/internal/util"
)

type Mode int

const (
	Front    Mode = iota + 1 // LIFO
	Back                     // FIFO, circular
	Optimise                 // ordered by SortKey
)

type Selection int

const (
	Random Selection = iota + 1
	Manual
	Provided
)

type SortKey int

const (
	SortHP SortKey = iota + 1
	SortAttack
	SortDefense
	SortSpeed
	SortLevel
)

var (
	modeNames      = map[Mode]string{Front: "front", Back: "back", Optimise: "optimise"}
	selectionNames = map[Selection]string{Random: "random", Manual: "manual", Provided: "provided"}
	sortKeyNames   = map[SortKey]string{
		SortHP: "hp", SortAttack: "attack", SortDefense: "defense", SortSpeed: "speed", SortLevel: "level",
	}
)

func (m Mode) String() string      { return nameOr(modeNames, m) }
func (s Selection) String() string { return nameOr(selectionNames, s) }
func (k SortKey) String() string   { return nameOr(sortKeyNames, k) }

func nameOr[K comparable](names map[K]string, k K) string {
	if n, ok := names[k]; ok {
		return n
	}
	return "unknown"
}

func parseName[K comparable](kind string, names map[K]string, s string) (K, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, n := range names {
		if n == s {
			return k, nil
		}
	}
	var zero K
	return zero, apperrors.WithMetadata(apperrors.CodeInvalidConfiguration,
		fmt.Sprintf("%s %q not supported", kind, s), map[string]string{kind: s})
}

func ParseMode(s string) (Mode, error) { return parseName("team_mode", modeNames, s) }

func ParseSelection(s string) (Selection, error) {
	return parseName("selection_mode", selectionNames, s)
}

// ParseSortKey accepts the empty string as SortHP.
func ParseSortKey(s string) (SortKey, error) {
	if strings.TrimSpace(s) == "" {
		return SortHP, nil
	}
	return parseName("sort_key", sortKeyNames, s)
}

func (k SortKey) valueOf(m *monster.Monster) float64 {
	switch k {
	case SortAttack:
		return float64(m.Attack())
	case SortDefense:
		return float64(m.Defense())
	case SortSpeed:
		return float64(m.Speed())
	case SortLevel:
		return float64(m.Level())
	}
	return m.HP()
}

// Config describes how a team is stored and selected.
type Config struct {
	Mode      Mode
	Selection Selection
	SortKey   SortKey // Optimise only; zero means SortHP

	Provided []*species.Species // Provided selection
	Registry *species.Registry  // Random and Manual selection
	Rand     util.Rand          // Random selection
	Console  *Console           // Manual selection

	Level        int // starting level, zero means 1
	ComplexStats bool
}

type Team struct {
	mode    Mode
	sortKey SortKey
	simple  bool
	level   int
	roster  roster
	lineup  []*species.Species
}

// New builds the roster for cfg.Mode and fills it using cfg.Selection.
func New(cfg Config) (*Team, error) {
	t := &Team{mode: cfg.Mode, sortKey: cfg.SortKey, simple: !cfg.ComplexStats, level: cfg.Level}
	if t.sortKey == 0 {
		t.sortKey = SortHP
	}
	if t.level < 1 {
		t.level = 1
	}
	switch cfg.Mode {
	case Front:
		t.roster = newStack()
	case Back:
		t.roster = newQueue()
	case Optimise:
		if _, ok := sortKeyNames[t.sortKey]; !ok {
			return nil, apperrors.New(apperrors.CodeInvalidConfiguration,
				fmt.Sprintf("sort key %d not supported", t.sortKey))
		}
		t.roster = newSorted(t.sortKey.valueOf)
	default:
		return nil, apperrors.New(apperrors.CodeInvalidConfiguration,
			fmt.Sprintf("team mode %d not supported", cfg.Mode))
	}

	var err error
	switch cfg.Selection {
	case Random:
		err = t.selectRandomly(cfg.Registry, cfg.Rand)
	case Manual:
		err = t.selectManually(cfg.Registry, cfg.Console)
	case Provided:
		err = t.selectProvided(cfg.Provided)
	default:
		err = apperrors.New(apperrors.CodeInvalidConfiguration,
			fmt.Sprintf("selection mode %d not supported", cfg.Selection))
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Team) Mode() Mode       { return t.mode }
func (t *Team) SortKey() SortKey { return t.sortKey }
func (t *Team) Size() int        { return t.roster.size() }

// Lineup returns the starting species in selection order.
func (t *Team) Lineup() []*species.Species {
	return append([]*species.Species(nil), t.lineup...)
}

func (t *Team) Add(m *monster.Monster) error { return t.roster.add(m) }

func (t *Team) Retrieve() (*monster.Monster, error) { return t.roster.retrieve() }

// Special reorders the team without changing its size; see the roster
// implementations for each discipline's rule.
func (t *Team) Special() { t.roster.special() }

// Regenerate empties the team and re-adds a full-HP monster for every starting
// species, in selection order, using the current discipline.
func (t *Team) Regenerate() error {
	t.roster.clear()
	for _, sp := range t.lineup {
		if err := t.roster.add(t.spawn(sp)); err != nil {
			return err
		}
	}
	return nil
}

func (t *Team) ChooseAction(self, opponent *monster.Monster) turn.Action {
	if self.Speed() >= opponent.Speed() || self.HP() >= opponent.HP() {
		return turn.Attack
	}
	return turn.Swap
}

func (t *Team) String() string {
	members := t.roster.list()
	parts := make([]string, len(members))
	for i, m := range members {
		parts[i] = m.String()
	}
	return "[" + strings.Join(parts, "; ") + "]"
}

func (t *Team) spawn(sp *species.Species) *monster.Monster {
	return monster.New(sp, t.simple, t.level)
}

// recruit adds a fresh monster of sp and records it in the lineup.
func (t *Team) recruit(sp *species.Species) error {
	if err := t.roster.add(t.spawn(sp)); err != nil {
		return err
	}
	t.lineup = append(t.lineup, sp)
	return nil
}
