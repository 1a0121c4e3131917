// Package assets embeds the game's data tables.
package assets

import "embed"

// Data holds areas.json, dialogue.json and equipment.json under data/.
//
//go:embed data/*.json
var Data embed.FS
