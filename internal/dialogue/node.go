package dialogue

import (
	"encoding/json"
	"fmt"
)

// MaxChoices is the most answers a node can offer.
const MaxChoices = 4

// Choice is one selectable answer.
type Choice struct {
	Text    string
	Target  int // 0 ends the conversation
	Enabled bool
}

// Node is one line of dialogue.
type Node struct {
	ID      int
	Speaker string
	Text    string
	Choices []Choice
	Next    int // followed when there are no choices; 0 ends
	Event   int // 0 for none
}

// Table maps node ids to nodes. Read-only after load.
type Table map[int]Node

type choiceDef struct {
	Text    string `json:"text"`
	Target  int    `json:"target"`
	Enabled *bool  `json:"enabled"`
}

type nodeDef struct {
	ID      int         `json:"id"`
	Speaker string      `json:"speaker"`
	Text    string      `json:"text"`
	Choices []choiceDef `json:"choices"`
	Next    int         `json:"next"`
	Event   int         `json:"event"`
}

// LoadTable parses dialogue nodes from JSON. Choices are enabled unless
// the file says otherwise.
func LoadTable(data []byte) (Table, error) {
	var defs []nodeDef
	if err := json.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("parse dialogue: %w", err)
	}
	t := make(Table, len(defs))
	for _, d := range defs {
		if _, dup := t[d.ID]; dup {
			return nil, fmt.Errorf("duplicate dialogue node %d", d.ID)
		}
		if len(d.Choices) > MaxChoices {
			return nil, fmt.Errorf("dialogue node %d has %d choices, max %d", d.ID, len(d.Choices), MaxChoices)
		}
		n := Node{ID: d.ID, Speaker: d.Speaker, Text: d.Text, Next: d.Next, Event: d.Event}
		for _, c := range d.Choices {
			enabled := c.Enabled == nil || *c.Enabled
			n.Choices = append(n.Choices, Choice{Text: c.Text, Target: c.Target, Enabled: enabled})
		}
		t[d.ID] = n
	}
	return t, nil
}
