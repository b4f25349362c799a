package combat

import "math/rand"

// Encounter is a single fight between the player and one enemy. It alternates
// attack and defense phases until one side falls.
type Encounter struct {
	Player   Combatant
	Enemy    Combatant
	Phase    Phase
	Sequence []Arrow // Current defense sequence, set in PhaseDefense
	Rounds   int
}

// NewEncounter starts a fight in the attack phase.
func NewEncounter(player, enemy Combatant) *Encounter {
	return &Encounter{Player: player, Enemy: enemy, Phase: PhaseAttack}
}

// Attack resolves the attack phase with the bar released at t. It returns the
// damage dealt, or -1 if the encounter is not in the attack phase. When the
// enemy survives a defense sequence is rolled.
func (e *Encounter) Attack(t float64, rng *rand.Rand) int {
	if e.Phase != PhaseAttack {
		return -1
	}
	damage := e.Enemy.TakeDamage(AttackDamage(e.Player.GetAttack(), t, rng))
	if !e.Enemy.IsAlive() {
		e.Phase = PhaseVictory
		return damage
	}
	e.Sequence = RollSequence(rng)
	e.Phase = PhaseDefense
	return damage
}

// Defend resolves the defense phase. It returns the damage taken, or -1 if
// the encounter is not in the defense phase.
func (e *Encounter) Defend(input []Arrow) int {
	if e.Phase != PhaseDefense {
		return -1
	}
	damage := e.Player.TakeDamage(DefenseDamage(e.Enemy.GetAttack(), e.Sequence, input))
	e.Sequence = nil
	e.Rounds++
	if !e.Player.IsAlive() {
		e.Phase = PhaseDefeat
		return damage
	}
	e.Phase = PhaseAttack
	return damage
}

// Over reports whether one side has fallen.
func (e *Encounter) Over() bool {
	return e.Phase == PhaseVictory || e.Phase == PhaseDefeat
}
