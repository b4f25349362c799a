package game

import (
	"context"

	"github.com/godofthunder8756/Valdmir-Roguelike/internal/combat"
	"github.com/godofthunder8756/Valdmir-Roguelike/internal/entity"
)

func (s *Session) startCombat(e *entity.Enemy) {
	s.resume = s.state
	s.state = StateCombat
	s.foe = e
	s.encounter = combat.NewEncounter(s.player, e)
	s.log.WithField("enemy", e.Name).Debug("combat started")
	s.say("Engaged in combat with %s!", e.Name)
}

// AttackInput strikes with the attack bar released at t in [0,1].
func (s *Session) AttackInput(t float64) {
	if s.state != StateCombat {
		return
	}
	damage := s.encounter.Attack(t, s.rng)
	if damage < 0 {
		return
	}
	s.say("You dealt %d damage to the %s.", damage, s.foe.Name)
	if s.encounter.Phase != combat.PhaseVictory {
		return
	}

	s.say("You defeated the %s!", s.foe.Name)
	s.player.Reward(s.foe.XP, s.foe.Gold)
	s.scene.RemoveEnemy(s.foe)
	s.endEncounter()

	// The deepest level has no stairs; clearing it ends the visit.
	if s.state == StateDungeon && s.dungeon.Depth >= s.dungeon.MaxDepth && len(s.scene.Enemies) == 0 {
		s.descend(context.Background())
	}
}

// DefenseInput answers the current defense sequence. Arrows missing from the
// end of input count as misses.
func (s *Session) DefenseInput(input []combat.Arrow) {
	if s.state != StateCombat {
		return
	}
	damage := s.encounter.Defend(input)
	if damage < 0 {
		return
	}
	if damage > 0 {
		s.say("You took %d damage from the %s.", damage, s.foe.Name)
	}
	if s.encounter.Phase == combat.PhaseDefeat {
		s.say("You have been defeated!")
		s.log.WithField("enemy", s.foe.Name).Info("player defeated")
		s.running = false
	}
}

func (s *Session) endEncounter() {
	s.encounter = nil
	s.foe = nil
	s.state = s.resume
}

func (s *Session) startTrade(v *entity.Villager) {
	s.resume = s.state
	s.state = StateShopping
	s.log.WithField("villager", v.Name).Debug("trade started")
	s.say("Trading with villager...")
}

// Buy purchases the item at index i of the shop catalogue and closes the
// dialog. An index outside the catalogue does nothing.
func (s *Session) Buy(i int) {
	if s.state != StateShopping {
		return
	}
	item := s.tables.Items.At(i)
	if item == nil {
		return
	}
	if s.player.Buy(item.Name, item.Price) {
		s.say("Bought %s for %d gold.", item.Name, item.Price)
	} else {
		s.say("Not enough gold.")
	}
	s.state = s.resume
}

// ExitDialog closes the shop.
func (s *Session) ExitDialog() {
	if s.state == StateShopping {
		s.state = s.resume
	}
}
