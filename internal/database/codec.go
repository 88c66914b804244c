package database

import (
	"encoding/json"
	"fmt"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Encode serializes a snapshot to the persisted JSON layout:
// {"<list>": [{"id","title","description","assigned","priority","comments":[{"timestamp","comment"}]}]}
func Encode(snap models.Snapshot) ([]byte, error) {
	out := make(models.Snapshot, len(snap))
	for listID, cards := range snap {
		normalized := make([]models.Card, len(cards))
		for i, c := range cards {
			c = c.Clone()
			if c.Comments == nil {
				c.Comments = []models.Comment{}
			}
			normalized[i] = c
		}
		out[listID] = normalized
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode board: %w", err)
	}
	return data, nil
}

// Decode parses the persisted JSON layout.
// Missing sequences decode as empty, never nil.
func Decode(data []byte) (models.Snapshot, error) {
	var snap models.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to decode board: %w", err)
	}
	if snap == nil {
		snap = models.Snapshot{}
	}
	for listID, cards := range snap {
		if cards == nil {
			cards = []models.Card{}
		}
		for i := range cards {
			if cards[i].Comments == nil {
				cards[i].Comments = []models.Comment{}
			}
		}
		snap[listID] = cards
	}
	return snap, nil
}
