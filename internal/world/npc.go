package world

import "strings"

// NPCKind identifies the role of a non-player character.
type NPCKind uint8

const (
	NPCVillager NPCKind = iota
	NPCMerchant
	NPCElder
	NPCGuard
)

// Position is a pixel position component.
type Position struct {
	X, Y int16
}

// NPC is the identity component of a non-player character. Greeting is the
// single line spoken when Dialogue is -1.
type NPC struct {
	Kind     NPCKind
	Name     string
	Greeting string
	Dialogue int
	SpriteID int
	Area     int
	Active   bool
}

// NPCTemplate holds per-kind defaults.
type NPCTemplate struct {
	Kind     NPCKind
	Label    string
	SpriteID int
	Greeting string
}

// NPCTemplates defines defaults for each kind.
var NPCTemplates = map[NPCKind]NPCTemplate{
	NPCVillager: {NPCVillager, "villager", 10, "Hello, traveler!"},
	NPCMerchant: {NPCMerchant, "merchant", 11, "Care to see my wares?"},
	NPCElder:    {NPCElder, "elder", 12, "The mountains remember."},
	NPCGuard:    {NPCGuard, "guard", 13, "Move along."},
}

// ParseNPCKind resolves a kind label from a data file.
func ParseNPCKind(label string) (NPCKind, bool) {
	label = strings.ToLower(label)
	for k, t := range NPCTemplates {
		if t.Label == label {
			return k, true
		}
	}
	return 0, false
}

// NewNPC builds an NPC component from its definition, falling back to the
// kind's template for anything left blank.
func NewNPC(def NPCDef, area int) NPC {
	kind, _ := ParseNPCKind(def.Kind)
	tmpl := NPCTemplates[kind]
	n := NPC{
		Kind:     kind,
		Name:     def.Name,
		Greeting: def.Greeting,
		Dialogue: -1,
		SpriteID: tmpl.SpriteID,
		Area:     area,
		Active:   true,
	}
	if n.Name == "" {
		n.Name = strings.ToUpper(tmpl.Label[:1]) + tmpl.Label[1:]
	}
	if def.Dialogue != nil {
		n.Dialogue = *def.Dialogue
	}
	if n.Greeting == "" {
		n.Greeting = tmpl.Greeting
	}
	return n
}
