package player

// ItemKind identifies a carried consumable. Equipment lives in the
// progression inventory, not here.
type ItemKind uint8

const (
	ItemNone ItemKind = iota
	ItemPotion      // restores health
	ItemTimeCrystal // restores time energy
	ItemKindCount   // sentinel
)

// Inventory limits.
const (
	MaxInventorySlots = 16
	MaxStack          = 99
)

// InventorySlot holds one item stack.
type InventorySlot struct {
	Kind     ItemKind
	Quantity int
}

// Inventory is the character's item bag.
type Inventory struct {
	Slots [MaxInventorySlots]InventorySlot
}

// FindSlot returns the index of the slot holding the given kind, or -1.
func (inv *Inventory) FindSlot(kind ItemKind) int {
	for i, slot := range inv.Slots {
		if slot.Kind == kind && slot.Quantity > 0 {
			return i
		}
	}
	return -1
}

// FindEmptySlot returns the index of the first empty slot, or -1.
func (inv *Inventory) FindEmptySlot() int {
	for i, slot := range inv.Slots {
		if slot.Kind == ItemNone || slot.Quantity == 0 {
			return i
		}
	}
	return -1
}

// AddItem stacks amount onto an existing slot or claims an empty one.
// Stacks are capped at MaxStack; returns false if nothing could be added.
func (inv *Inventory) AddItem(kind ItemKind, amount int) bool {
	if kind == ItemNone || kind >= ItemKindCount || amount <= 0 {
		return false
	}
	idx := inv.FindSlot(kind)
	if idx >= 0 {
		if inv.Slots[idx].Quantity >= MaxStack {
			return false
		}
		inv.Slots[idx].Quantity = min(inv.Slots[idx].Quantity+amount, MaxStack)
		return true
	}
	idx = inv.FindEmptySlot()
	if idx < 0 {
		return false
	}
	inv.Slots[idx] = InventorySlot{Kind: kind, Quantity: min(amount, MaxStack)}
	return true
}

// RemoveItem takes amount of kind out of the bag. Returns true if successful.
func (inv *Inventory) RemoveItem(kind ItemKind, amount int) bool {
	idx := inv.FindSlot(kind)
	if idx < 0 || inv.Slots[idx].Quantity < amount {
		return false
	}
	inv.Slots[idx].Quantity -= amount
	if inv.Slots[idx].Quantity == 0 {
		inv.Slots[idx].Kind = ItemNone
	}
	return true
}

// Count returns how many of kind are carried.
func (inv *Inventory) Count(kind ItemKind) int {
	idx := inv.FindSlot(kind)
	if idx < 0 {
		return 0
	}
	return inv.Slots[idx].Quantity
}

// Valid reports whether the slot is empty or holds a known kind in a legal
// stack size.
func (s InventorySlot) Valid() bool {
	if s.Kind == ItemNone {
		return s.Quantity == 0
	}
	return s.Kind < ItemKindCount && s.Quantity >= 1 && s.Quantity <= MaxStack
}

// UsedSlots returns the number of non-empty slots.
func (inv *Inventory) UsedSlots() int {
	n := 0
	for _, slot := range inv.Slots {
		if slot.Kind != ItemNone && slot.Quantity > 0 {
			n++
		}
	}
	return n
}

type itemEntry struct {
	Name string
}

var itemTable = [ItemKindCount]itemEntry{
	ItemNone:        {"Empty"},
	ItemPotion:      {"Potion"},
	ItemTimeCrystal: {"Time Crystal"},
}

// ItemName returns the display name for an item kind.
func ItemName(k ItemKind) string {
	if k < ItemKindCount {
		return itemTable[k].Name
	}
	return "Unknown"
}
