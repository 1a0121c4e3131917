package game

import (
	"github.com/chronic-echo/chronic_echo/internal/battle"
	"github.com/chronic-echo/chronic_echo/internal/input"
)

// resultFrames is how long a battle result stays on screen.
const resultFrames = 120

// battleKeys maps pad buttons to battle commands.
var battleKeys = []struct {
	button input.Buttons
	action battle.Action
}{
	{input.ButtonA, battle.ActionAttack},
	{input.ButtonB, battle.ActionDefend},
	{input.ButtonX, battle.ActionTimeStop},
	{input.ButtonY, battle.ActionSlowMotion},
	{input.ButtonL, battle.ActionRewind},
	{input.ButtonR, battle.ActionEscape},
}

func (s *Session) tickBattle(pressed input.Buttons) {
	if s.Battle.Over() {
		s.resultTicks++
		if s.resultTicks >= resultFrames || (s.resultTicks > resultFrames/4 && pressed.Has(input.ButtonA)) {
			s.finishBattle()
		}
		return
	}

	if s.Battle.State() == battle.StateActive && s.Battle.PlayerTurn() {
		for _, k := range battleKeys {
			if !pressed.Has(k.button) {
				continue
			}
			if s.Battle.Submit(k.action) {
				s.Battle.ResolveTurn()
			} else {
				s.Log.Add("Not enough time energy.", MsgWarning)
			}
			break
		}
	}
	s.Battle.Update()
}

// finishBattle closes the result screen and folds the outcome back into the
// session.
func (s *Session) finishBattle() {
	outcome := s.Battle.State()
	s.Battle.End()
	s.resultTicks = 0

	switch outcome {
	case battle.StateVictory:
		leveled := s.Progression.LevelsGained > s.levelsBefore
		s.applyProgression(leveled)
		if leveled {
			s.Log.Addf(MsgReward, "Reached level %d! %d stat points to spend.",
				s.Progression.Stats.Level, s.Progression.Stats.StatPoints)
		}
	case battle.StateDefeat:
		s.Log.Add("Darkness folds over you...", MsgDanger)
		s.gameOver = true
	default:
		s.syncProgression()
	}
}
