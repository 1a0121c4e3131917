package game

import (
	"github.com/chronic-echo/chronic_echo/internal/input"
	"github.com/chronic-echo/chronic_echo/internal/player"
	"github.com/chronic-echo/chronic_echo/internal/progression"
)

type rowKind uint8

const (
	rowSlot rowKind = iota
	rowStat
	rowItem
)

// menuRow is one selectable line of the status panel.
type menuRow struct {
	kind rowKind
	slot progression.Slot
	stat progression.Stat
	item player.ItemKind
}

// menuRows lists the panel: equipment slots, spendable stats, usable items.
var menuRows = func() []menuRow {
	var rows []menuRow
	for slot := progression.Slot(0); slot < progression.SlotCount; slot++ {
		rows = append(rows, menuRow{kind: rowSlot, slot: slot})
	}
	for _, st := range []progression.Stat{
		progression.StatHP, progression.StatAttack, progression.StatDefense,
		progression.StatTimePower, progression.StatTimeRegen,
	} {
		rows = append(rows, menuRow{kind: rowStat, stat: st})
	}
	rows = append(rows,
		menuRow{kind: rowItem, item: player.ItemPotion},
		menuRow{kind: rowItem, item: player.ItemTimeCrystal},
	)
	return rows
}()

type menu struct {
	open   bool
	cursor int
}

func (s *Session) openMenu() {
	s.History.StopRewind()
	s.menu = menu{open: true}
}

// tickMenu handles the status panel: Up/Down move, A acts on the row, X
// empties an equipment slot, B or Start closes.
func (s *Session) tickMenu(pressed input.Buttons) {
	n := len(menuRows)
	switch {
	case pressed.Any(input.ButtonB | input.ButtonStart):
		s.menu.open = false
	case pressed.Has(input.ButtonUp):
		s.menu.cursor = (s.menu.cursor + n - 1) % n
	case pressed.Has(input.ButtonDown):
		s.menu.cursor = (s.menu.cursor + 1) % n
	case pressed.Has(input.ButtonA):
		s.activateRow(menuRows[s.menu.cursor])
	case pressed.Has(input.ButtonX):
		if row := menuRows[s.menu.cursor]; row.kind == rowSlot && s.Progression.Unequip(row.slot) {
			s.applyProgression(false)
		}
	}
}

func (s *Session) activateRow(row menuRow) {
	switch row.kind {
	case rowSlot:
		if s.equipNext(row.slot) {
			s.applyProgression(false)
		}
	case rowStat:
		if s.Progression.SpendStatPoint(row.stat) {
			s.applyProgression(false)
			s.Log.Addf(MsgReward, "%s raised.", progression.StatName(row.stat))
		}
	case rowItem:
		if s.Player.UseItem(row.item) {
			s.syncProgression()
			s.Log.Addf(MsgInfo, "Used %s.", player.ItemName(row.item))
		}
	}
}

// equipNext equips the first carried item that fits slot.
func (s *Session) equipNext(slot progression.Slot) bool {
	for i, id := range s.Progression.Inventory.Items {
		item, ok := s.Data.Equipment.Lookup(id)
		if !ok || item.Slot != slot {
			continue
		}
		if s.Progression.Equip(i, slot) {
			s.Log.Addf(MsgInfo, "Equipped %s.", item.Name)
			return true
		}
	}
	return false
}
