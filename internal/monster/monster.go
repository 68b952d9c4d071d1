// Package monster implements the combatant entity shared by every species.
package monster

import (
	"fmt"

	"monster_arena/internal/species"
)

// Monster is one combatant. HP is fractional: damage is never rounded.
type Monster struct {
	species       *species.Species
	simple        bool
	level         int
	originalLevel int
	hp            float64
}

// New creates a monster at full HP. Levels below 1 are raised to 1.
func New(sp *species.Species, simple bool, level int) *Monster {
	if level < 1 {
		level = 1
	}
	m := &Monster{species: sp, simple: simple, level: level, originalLevel: level}
	m.hp = float64(m.MaxHP())
	return m
}

func (m *Monster) Species() *species.Species { return m.species }
func (m *Monster) Name() string              { return m.species.Name }
func (m *Monster) Simple() bool              { return m.simple }
func (m *Monster) Level() int                { return m.level }
func (m *Monster) OriginalLevel() int        { return m.originalLevel }
func (m *Monster) HP() float64               { return m.hp }

func (m *Monster) stats() species.Stats { return m.species.Stats(m.simple, m.level) }

func (m *Monster) MaxHP() int   { return m.stats().MaxHP }
func (m *Monster) Attack() int  { return m.stats().Attack }
func (m *Monster) Defense() int { return m.stats().Defense }
func (m *Monster) Speed() int   { return m.stats().Speed }

// SetHP clamps val into [0, MaxHP].
func (m *Monster) SetHP(val float64) {
	maxHP := float64(m.MaxHP())
	switch {
	case val < 0:
		val = 0
	case val > maxHP:
		val = maxHP
	}
	m.hp = val
}

// Damage subtracts amount from HP and reports whether the monster fainted.
func (m *Monster) Damage(amount float64) bool {
	m.SetHP(m.hp - amount)
	return !m.Alive()
}

func (m *Monster) Alive() bool { return m.hp > 0 }

// Heal restores full HP.
func (m *Monster) Heal() { m.hp = float64(m.MaxHP()) }

func (m *Monster) deficit() float64 { return float64(m.MaxHP()) - m.hp }

// LevelUp raises the level by one and keeps the absolute HP deficit.
func (m *Monster) LevelUp() {
	deficit := m.deficit()
	m.level++
	m.SetHP(float64(m.MaxHP()) - deficit)
}

func (m *Monster) ReadyToEvolve() bool {
	return m.species.Evolution != nil && m.level > m.originalLevel
}

// Evolve returns the evolved monster at the same level with the same absolute
// HP deficit. It returns nil when the monster is not ready.
func (m *Monster) Evolve() *Monster {
	if !m.ReadyToEvolve() {
		return nil
	}
	next := New(m.species.Evolution, m.simple, m.level)
	next.SetHP(float64(next.MaxHP()) - m.deficit())
	return next
}

func (m *Monster) String() string {
	return fmt.Sprintf("LV.%d %s, %g/%d HP", m.level, m.species.Name, m.hp, m.MaxHP())
}
