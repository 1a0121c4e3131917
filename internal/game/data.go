package game

import (
	"fmt"
	"io/fs"

	"github.com/chronic-echo/chronic_echo/internal/dialogue"
	"github.com/chronic-echo/chronic_echo/internal/progression"
	"github.com/chronic-echo/chronic_echo/internal/world"
)

// Data is every table the game reads at startup.
type Data struct {
	Areas     []world.AreaDef
	Dialogue  dialogue.Table
	Equipment progression.Database
}

// LoadData reads data/areas.json, data/dialogue.json and
// data/equipment.json from fsys.
func LoadData(fsys fs.FS) (*Data, error) {
	raw, err := fs.ReadFile(fsys, "data/areas.json")
	if err != nil {
		return nil, fmt.Errorf("load areas: %w", err)
	}
	areas, err := world.LoadAreas(raw)
	if err != nil {
		return nil, err
	}

	raw, err = fs.ReadFile(fsys, "data/dialogue.json")
	if err != nil {
		return nil, fmt.Errorf("load dialogue: %w", err)
	}
	table, err := dialogue.LoadTable(raw)
	if err != nil {
		return nil, err
	}

	raw, err = fs.ReadFile(fsys, "data/equipment.json")
	if err != nil {
		return nil, fmt.Errorf("load equipment: %w", err)
	}
	db, err := progression.LoadDatabase(raw)
	if err != nil {
		return nil, err
	}

	for _, a := range areas {
		for _, npc := range a.NPCs {
			if npc.Dialogue == nil {
				continue
			}
			if _, ok := table[*npc.Dialogue]; !ok {
				return nil, fmt.Errorf("area %q: %s starts at missing dialogue node %d", a.Name, npc.Name, *npc.Dialogue)
			}
		}
		for _, name := range a.Encounters {
			if _, ok := enemyByName(name); !ok {
				return nil, fmt.Errorf("area %q: unknown enemy %q", a.Name, name)
			}
		}
	}

	return &Data{Areas: areas, Dialogue: table, Equipment: db}, nil
}
