// Package combat implements the timing-bar attack and arrow-sequence defense
// used when an enemy catches the player.
package combat

import (
	"math"
	"math/rand"
)

// Combatant is anything that can trade blows. Both the player and enemies
// implement this interface.
type Combatant interface {
	GetName() string
	IsAlive() bool
	GetHP() int
	GetMaxHP() int
	GetAttack() int
	TakeDamage(amount int) int // Returns damage dealt
}

// Phase is the current step of an encounter.
type Phase int

const (
	PhaseAttack Phase = iota
	PhaseDefense
	PhaseVictory
	PhaseDefeat
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseAttack:
		return "attack"
	case PhaseDefense:
		return "defense"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

// Arrow is one key of a defense sequence.
type Arrow int

const (
	ArrowUp Arrow = iota
	ArrowDown
	ArrowLeft
	ArrowRight
)

// ArrowMissed stands in for an arrow that was not pressed in time. It never
// matches a sequence entry.
const ArrowMissed Arrow = -1

// String returns the arrow glyph.
func (a Arrow) String() string {
	return string(a.Rune())
}

// Rune returns the arrow glyph.
func (a Arrow) Rune() rune {
	switch a {
	case ArrowUp:
		return '↑'
	case ArrowDown:
		return '↓'
	case ArrowLeft:
		return '←'
	case ArrowRight:
		return '→'
	default:
		return '?'
	}
}

// SequenceLength is the number of arrows in a defense sequence.
const SequenceLength = 5

// attackBonus is the exclusive upper bound of the random bonus added to attack.
const attackBonus = 6

// TimingMultiplier scales damage by how close t is to the middle of the bar:
// 1 at t=0.5, falling linearly to 0 at either end. t is clamped to [0,1].
func TimingMultiplier(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	return 1 - math.Abs(t-0.5)/0.5
}

// AttackDamage rolls the player's damage for an attack released at t.
func AttackDamage(attack int, t float64, rng *rand.Rand) int {
	return int(float64(attack+rng.Intn(attackBonus)) * TimingMultiplier(t))
}

// RollSequence draws a defense sequence.
func RollSequence(rng *rand.Rand) []Arrow {
	seq := make([]Arrow, SequenceLength)
	for i := range seq {
		seq[i] = Arrow(rng.Intn(4))
	}
	return seq
}

// DefenseDamage is the damage taken for a defense attempt: enemyAttack/len(seq)
// for every arrow that is wrong or missing. Extra input is ignored.
func DefenseDamage(enemyAttack int, seq, input []Arrow) int {
	if len(seq) == 0 {
		return 0
	}
	per := enemyAttack / len(seq)
	damage := 0
	for i, want := range seq {
		if i >= len(input) || input[i] != want {
			damage += per
		}
	}
	return damage
}
