package world

import (
	"github.com/mlange-42/ark/ecs"
)

// Viewport and interaction constants, in pixels.
const (
	ScreenWidth   = 256
	ScreenHeight  = 224
	cameraOffsetX = 128
	cameraOffsetY = 112

	TalkRadius = 32

	// Largest top-left pixel position a 16px sprite can occupy.
	MaxX = PixelWidth - TileSize
	MaxY = PixelHeight - TileSize
)

// Exit sends the player from a door tile into another area.
type Exit struct {
	Area             int
	ArriveX, ArriveY int16
}

// Area is one map with its residents.
type Area struct {
	Name          string
	Background    int
	Grid          *TileGrid
	Exits         []Exit
	EncounterRate int
	Encounters    []string
	NPCs          []ecs.Entity
}

// NPCInfo is a read-only view of an NPC.
type NPCInfo struct {
	ID       int
	Name     string
	Greeting string
	Dialogue int
	Kind     NPCKind
	SpriteID int
	X, Y     int16
}

// World owns every area and the ECS store holding NPCs.
type World struct {
	ECS     *ecs.World
	Areas   []*Area
	Current int
	CameraX int
	CameraY int

	posMap *ecs.Map[Position]
	npcMap *ecs.Map[NPC]
}

// New builds the world from area definitions. NPCs are created once here
// and live for the whole session.
func New(defs []AreaDef) *World {
	w := ecs.NewWorld(64)
	spawn := ecs.NewMap2[Position, NPC](w)

	wd := &World{
		ECS:    w,
		posMap: ecs.NewMap[Position](w),
		npcMap: ecs.NewMap[NPC](w),
	}

	for i := range defs {
		d := &defs[i]
		area := &Area{
			Name:          d.Name,
			Background:    d.Background,
			Grid:          d.ToTileGrid(),
			EncounterRate: d.EncounterRate,
			Encounters:    d.Encounters,
		}
		for _, ex := range d.Exits {
			area.Exits = append(area.Exits, Exit{Area: ex.Area, ArriveX: ex.Arrive[0], ArriveY: ex.Arrive[1]})
		}
		for _, nd := range d.NPCs {
			npc := NewNPC(nd, i)
			e := spawn.NewEntity(&Position{X: nd.X, Y: nd.Y}, &npc)
			area.NPCs = append(area.NPCs, e)
		}
		wd.Areas = append(wd.Areas, area)
	}
	return wd
}

// Area returns the current area.
func (w *World) Area() *Area {
	return w.Areas[w.Current]
}

// TransitionTo makes area the current one. Unknown indices are ignored.
func (w *World) TransitionTo(area int) bool {
	if area < 0 || area >= len(w.Areas) {
		return false
	}
	w.Current = area
	w.CameraX, w.CameraY = 0, 0
	return true
}

// TileAt returns the tile under pixel position (x, y).
func (w *World) TileAt(x, y int16) Tile {
	return w.Area().Grid.Get(int(x)/TileSize, int(y)/TileSize)
}

// Blocked reports whether pixel position (x, y) lies on a colliding tile or
// off the map.
func (w *World) Blocked(x, y int16) bool {
	if x < 0 || y < 0 || x > MaxX || y > MaxY {
		return true
	}
	return !w.Area().Grid.IsWalkable(int(x)/TileSize, int(y)/TileSize)
}

// ExitAt returns the exit on the door tile under (x, y).
func (w *World) ExitAt(x, y int16) (Exit, bool) {
	t := w.TileAt(x, y)
	if t.Kind != TileDoor || t.Exit < 0 || t.Exit >= len(w.Area().Exits) {
		return Exit{}, false
	}
	return w.Area().Exits[t.Exit], true
}

// UpdateCamera centers the view on (px, py), clamped to the map.
func (w *World) UpdateCamera(px, py int16) {
	w.CameraX = clamp(int(px)-cameraOffsetX, 0, PixelWidth-ScreenWidth)
	w.CameraY = clamp(int(py)-cameraOffsetY, 0, PixelHeight-ScreenHeight)
}

// NPC resolves id as the id-th active NPC of the current area.
func (w *World) NPC(id int) (NPCInfo, bool) {
	if id < 0 {
		return NPCInfo{}, false
	}
	n := 0
	for _, e := range w.Area().NPCs {
		npc := w.npcMap.Get(e)
		if !npc.Active {
			continue
		}
		if n == id {
			return w.info(id, e), true
		}
		n++
	}
	return NPCInfo{}, false
}

// NearestNPC returns the closest active NPC within TalkRadius of (x, y).
func (w *World) NearestNPC(x, y int16) (NPCInfo, bool) {
	best, bestDist := -1, TalkRadius*TalkRadius
	var bestEntity ecs.Entity
	n := 0
	for _, e := range w.Area().NPCs {
		if !w.npcMap.Get(e).Active {
			continue
		}
		pos := w.posMap.Get(e)
		dx, dy := int(pos.X)-int(x), int(pos.Y)-int(y)
		if d := dx*dx + dy*dy; d < bestDist {
			best, bestDist, bestEntity = n, d, e
		}
		n++
	}
	if best < 0 {
		return NPCInfo{}, false
	}
	return w.info(best, bestEntity), true
}

// NPCs lists the active NPCs of the current area in id order.
func (w *World) NPCs() []NPCInfo {
	var out []NPCInfo
	for _, e := range w.Area().NPCs {
		if w.npcMap.Get(e).Active {
			out = append(out, w.info(len(out), e))
		}
	}
	return out
}

// SetNPCActive shows or hides the id-th NPC of the current area, counting
// hidden ones too.
func (w *World) SetNPCActive(index int, active bool) bool {
	npcs := w.Area().NPCs
	if index < 0 || index >= len(npcs) {
		return false
	}
	w.npcMap.Get(npcs[index]).Active = active
	return true
}

func (w *World) info(id int, e ecs.Entity) NPCInfo {
	npc := w.npcMap.Get(e)
	pos := w.posMap.Get(e)
	return NPCInfo{
		ID:       id,
		Name:     npc.Name,
		Greeting: npc.Greeting,
		Dialogue: npc.Dialogue,
		Kind:     npc.Kind,
		SpriteID: npc.SpriteID,
		X:        pos.X,
		Y:        pos.Y,
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
