package game

import (
	"github.com/chronic-echo/chronic_echo/internal/battle"
	"github.com/chronic-echo/chronic_echo/internal/player"
)

// Dialogue events, fired by nodes that carry an event number.
const (
	EventRest        = 1
	EventTimeAmulet  = 2
	EventGiftPotion  = 3
	EventIronSword   = 4
	EventTimeCrystal = 5
	EventBossBattle  = 6
	EventPocketWatch = 7
)

// Equipment ids handed out by events.
const (
	itemTimeAmulet  = 3
	itemIronSword   = 4
	itemPocketWatch = 6
)

// fireEvent applies the side effect of a dialogue node.
func (s *Session) fireEvent(ev int) {
	switch ev {
	case EventRest:
		s.Player.Heal(s.Player.MaxHealth)
		s.Player.RestoreTimeEnergy(s.Player.MaxTimeEnergy)
		s.syncProgression()
		s.Log.Add("You rest. Health and time energy restored.", MsgReward)
	case EventTimeAmulet:
		s.grantOnce(ev, itemTimeAmulet)
	case EventIronSword:
		s.grantOnce(ev, itemIronSword)
	case EventPocketWatch:
		s.grantOnce(ev, itemPocketWatch)
	case EventGiftPotion:
		s.giveOnce(ev, player.ItemPotion)
	case EventTimeCrystal:
		s.giveOnce(ev, player.ItemTimeCrystal)
	case EventBossBattle:
		s.Dialogue.End()
		s.startBattle(battle.EnemyBoss)
	}
}

// grantOnce hands out a piece of equipment the first time ev fires.
func (s *Session) grantOnce(ev int, id uint8) {
	if s.Flags[ev] {
		s.Log.Add("There is nothing more to take.", MsgInfo)
		return
	}
	if !s.Progression.Grant(id) {
		s.Log.Add("Your bag is full.", MsgWarning)
		return
	}
	s.Flags[ev] = true
	s.Log.Addf(MsgReward, "Received %s.", s.Data.Equipment.Name(id))
}

// giveOnce adds one consumable the first time ev fires. A full bag leaves
// the gift unclaimed.
func (s *Session) giveOnce(ev int, kind player.ItemKind) {
	if s.Flags[ev] {
		s.Log.Add("There is nothing more to take.", MsgInfo)
		return
	}
	if !s.Player.Inventory.AddItem(kind, 1) {
		s.Log.Add("You can't carry any more.", MsgWarning)
		return
	}
	s.Flags[ev] = true
	s.Log.Addf(MsgReward, "Received %s.", player.ItemName(kind))
}
