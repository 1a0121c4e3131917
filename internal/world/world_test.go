package world

import (
	"encoding/json"
	"strings"
	"testing"
)

func testRows() []string {
	rows := make([]string, AreaHeight)
	for y := range rows {
		rows[y] = strings.Repeat(".", AreaWidth)
	}
	rows[0] = strings.Repeat("^", AreaWidth)
	rows[5] = "....~~~~" + strings.Repeat(".", AreaWidth-8)
	rows[10] = "..####+." + strings.Repeat(".", AreaWidth-8)
	rows[12] = "TTTT" + strings.Repeat(".", AreaWidth-4)
	return rows
}

func testDefs(t *testing.T) []AreaDef {
	t.Helper()
	defs := []AreaDef{
		{
			Name:  "Village",
			Tiles: testRows(),
			NPCs: []NPCDef{
				{Kind: "villager", Name: "Villager", X: 200, Y: 150},
				{Kind: "merchant", X: 250, Y: 180},
			},
			Exits:         []ExitDef{{Tile: [2]int{6, 10}, Area: 1, Arrive: [2]int16{32, 32}}},
			EncounterRate: 5,
			Encounters:    []string{"SLIME"},
		},
		{
			Name:  "Cave",
			Tiles: testRows(),
		},
	}
	data, err := json.Marshal(defs)
	if err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadAreas(data)
	if err != nil {
		t.Fatalf("LoadAreas: %v", err)
	}
	return loaded
}

func TestCollision(t *testing.T) {
	w := New(testDefs(t))

	tests := []struct {
		name    string
		x, y    int16
		blocked bool
	}{
		{"grass", 16, 32, false},
		{"mountain row", 40, 0, true},
		{"water", 4 * TileSize, 5 * TileSize, true},
		{"building", 2 * TileSize, 10 * TileSize, true},
		{"door", 6 * TileSize, 10 * TileSize, false},
		{"forest", 0, 12 * TileSize, false},
		{"negative", -1, 40, true},
		{"past edge", MaxX + 1, 40, true},
	}
	for _, tt := range tests {
		if got := w.Blocked(tt.x, tt.y); got != tt.blocked {
			t.Errorf("%s: Blocked(%d,%d) = %v, want %v", tt.name, tt.x, tt.y, got, tt.blocked)
		}
	}
}

func TestExitAndTransition(t *testing.T) {
	w := New(testDefs(t))

	ex, ok := w.ExitAt(6*TileSize+3, 10*TileSize+3)
	if !ok {
		t.Fatal("door exit not found")
	}
	if ex.Area != 1 || ex.ArriveX != 32 {
		t.Errorf("exit = %+v", ex)
	}
	if _, ok := w.ExitAt(16, 32); ok {
		t.Error("grass should have no exit")
	}

	if !w.TransitionTo(ex.Area) || w.Area().Name != "Cave" {
		t.Fatalf("transition failed, area = %q", w.Area().Name)
	}
	if w.TransitionTo(7) {
		t.Error("unknown area accepted")
	}
	if _, ok := w.NPC(0); ok {
		t.Error("cave has no NPCs")
	}
}

func TestNPCLookup(t *testing.T) {
	w := New(testDefs(t))

	n, ok := w.NPC(1)
	if !ok {
		t.Fatal("npc 1 not found")
	}
	if n.Name != "Merchant" || n.Greeting != NPCTemplates[NPCMerchant].Greeting {
		t.Errorf("npc 1 = %+v", n)
	}
	if _, ok := w.NPC(2); ok {
		t.Error("npc 2 should not exist")
	}
	if _, ok := w.NPC(-1); ok {
		t.Error("negative id accepted")
	}

	w.SetNPCActive(0, false)
	n, ok = w.NPC(0)
	if !ok || n.Name != "Merchant" {
		t.Errorf("after hiding villager, npc 0 = %+v", n)
	}
	if len(w.NPCs()) != 1 {
		t.Errorf("active npcs = %d", len(w.NPCs()))
	}
}

func TestNearestNPC(t *testing.T) {
	w := New(testDefs(t))

	n, ok := w.NearestNPC(190, 140)
	if !ok || n.Name != "Villager" {
		t.Fatalf("nearest = %+v, %v", n, ok)
	}
	if _, ok := w.NearestNPC(120, 104); ok {
		t.Error("no NPC should be in range of the start position")
	}
}

func TestCameraClamp(t *testing.T) {
	w := New(testDefs(t))

	w.UpdateCamera(0, 0)
	if w.CameraX != 0 || w.CameraY != 0 {
		t.Errorf("camera = (%d,%d)", w.CameraX, w.CameraY)
	}
	w.UpdateCamera(300, 200)
	if w.CameraX != 172 || w.CameraY != 88 {
		t.Errorf("camera = (%d,%d), want (172,88)", w.CameraX, w.CameraY)
	}
	w.UpdateCamera(MaxX, MaxY)
	if w.CameraX != PixelWidth-ScreenWidth || w.CameraY != PixelHeight-ScreenHeight {
		t.Errorf("camera = (%d,%d)", w.CameraX, w.CameraY)
	}
}

func TestLoadAreasErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad json", `{`},
		{"empty", `[]`},
		{"short map", `[{"name": "x", "tiles": ["...."]}]`},
	}
	for _, tt := range tests {
		if _, err := LoadAreas([]byte(tt.data)); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}

	defs := []AreaDef{{Name: "x", Tiles: testRows(), NPCs: []NPCDef{{Kind: "dragon"}}}}
	data, _ := json.Marshal(defs)
	if _, err := LoadAreas(data); err == nil {
		t.Error("unknown npc kind accepted")
	}
}
