package world

import (
	"encoding/json"
	"fmt"
)

// AreaDef is the JSON definition of one area.
type AreaDef struct {
	Name          string    `json:"name"`
	Background    int       `json:"background"`
	Tiles         []string  `json:"tiles"`
	EncounterRate int       `json:"encounter_rate"` // per mille per step in forest
	Encounters    []string  `json:"encounters"`     // enemy names
	NPCs          []NPCDef  `json:"npcs"`
	Exits         []ExitDef `json:"exits"`
}

// NPCDef places a non-player character.
type NPCDef struct {
	Kind     string `json:"kind"`
	Name     string `json:"name"`
	X        int16  `json:"x"`
	Y        int16  `json:"y"`
	Greeting string `json:"greeting"`
	Dialogue *int    `json:"dialogue"` // root node, nil for greeting only
}

// ExitDef links a door tile to a position in another area.
type ExitDef struct {
	Tile   [2]int   `json:"tile"`
	Area   int      `json:"area"`
	Arrive [2]int16 `json:"arrive"`
}

// LoadAreas parses the area list from JSON bytes.
func LoadAreas(data []byte) ([]AreaDef, error) {
	var defs []AreaDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse areas: %w", err)
	}
	if len(defs) == 0 {
		return nil, fmt.Errorf("parse areas: no areas defined")
	}
	for i, d := range defs {
		if len(d.Tiles) != AreaHeight {
			return nil, fmt.Errorf("area %q: tile rows (%d) != %d", d.Name, len(d.Tiles), AreaHeight)
		}
		for _, ex := range d.Exits {
			if ex.Area < 0 || ex.Area >= len(defs) {
				return nil, fmt.Errorf("area %d exit targets unknown area %d", i, ex.Area)
			}
		}
		for _, n := range d.NPCs {
			if _, ok := ParseNPCKind(n.Kind); !ok {
				return nil, fmt.Errorf("area %q: unknown npc kind %q", d.Name, n.Kind)
			}
		}
	}
	return defs, nil
}

// ToTileGrid converts an AreaDef into a TileGrid.
func (d *AreaDef) ToTileGrid() *TileGrid {
	grid := NewTileGrid(AreaWidth, AreaHeight)
	for y, row := range d.Tiles {
		for x, ch := range row {
			if x >= AreaWidth {
				break
			}
			grid.Set(x, y, charToTile(ch))
		}
	}
	for i, ex := range d.Exits {
		t := grid.Get(ex.Tile[0], ex.Tile[1])
		t.Exit = i
		grid.Set(ex.Tile[0], ex.Tile[1], t)
	}
	return grid
}

func charToTile(ch rune) Tile {
	switch ch {
	case '~':
		return Tile{Kind: TileWater, Exit: -1}
	case '^':
		return Tile{Kind: TileMountain, Exit: -1}
	case 'T':
		return Tile{Kind: TileForest, Exit: -1}
	case '#':
		return Tile{Kind: TileBuilding, Exit: -1}
	case '+':
		return Tile{Kind: TileDoor, Exit: -1}
	case '=':
		return Tile{Kind: TilePath, Exit: -1}
	default:
		return Tile{Kind: TileGrass, Exit: -1}
	}
}
