package game

import (
	"strings"

	"github.com/chronic-echo/chronic_echo/internal/battle"
	"github.com/chronic-echo/chronic_echo/internal/world"
)

// encounterRoll is the denominator of an area's encounter rate.
const encounterRoll = 1000

// enemyByName resolves an enemy name from the area data.
func enemyByName(name string) (battle.EnemyKind, bool) {
	for k := battle.EnemyKind(0); k < battle.EnemyKindCount; k++ {
		if strings.EqualFold(battle.EnemyName(k), name) {
			return k, true
		}
	}
	return 0, false
}

// rollEncounter decides whether stepping onto a new tile starts a fight and
// against what. Only forest tiles in areas with a rate can trigger one.
func (s *Session) rollEncounter(tile world.Tile) (battle.EnemyKind, bool) {
	area := s.World.Area()
	if tile.Kind != world.TileForest || area.EncounterRate <= 0 || len(area.Encounters) == 0 {
		return 0, false
	}
	if s.Rand.IntN(encounterRoll) >= area.EncounterRate {
		return 0, false
	}
	return enemyByName(area.Encounters[s.Rand.IntN(len(area.Encounters))])
}

// startBattle hands control to the battle engine.
func (s *Session) startBattle(kind battle.EnemyKind) bool {
	s.History.StopRewind()
	s.levelsBefore = s.Progression.LevelsGained
	s.resultTicks = 0
	return s.Battle.Start(kind)
}
