package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"vitrine/server/internal/models"
)

// LoadSeed reads a JSON seed file with bootstrap cities and properties.
func LoadSeed(path string) (*models.SeedData, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %v", err)
	}

	var seed models.SeedData
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %v", err)
	}

	return &seed, nil
}
