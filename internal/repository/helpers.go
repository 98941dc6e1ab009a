package repository

import (
	"encoding/json"
	"fmt"
)

// encodeFactions stores the ordered faction list as a JSON array.
func encodeFactions(factions []string) (string, error) {
	if factions == nil {
		factions = []string{}
	}
	data, err := json.Marshal(factions)
	if err != nil {
		return "", fmt.Errorf("encoding factions: %w", err)
	}
	return string(data), nil
}

func decodeFactions(raw string) ([]string, error) {
	factions := []string{}
	if raw == "" {
		return factions, nil
	}
	if err := json.Unmarshal([]byte(raw), &factions); err != nil {
		return nil, fmt.Errorf("decoding factions: %w", err)
	}
	return factions, nil
}
