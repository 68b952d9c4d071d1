package combat

import "monster_arena/internal/monster"

// CalcDamage returns the damage attacker deals to defender. The result is
// fractional and applied without rounding.
func CalcDamage(attacker, defender *monster.Monster) float64 {
	atk := float64(attacker.Attack())
	def := float64(defender.Defense())
	switch {
	case atk/2 > def:
		return atk - def
	case atk > def:
		return atk*5/8 - def/4
	default:
		return atk / 4
	}
}
