package config

import (
	"os"
	"wav-intake-service/internal/app/models"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// LoadColumnMap returns the column mapping for the configured sheet layout.
// Without an override file the default headers apply. The override file only
// needs the entries that differ; absent entries keep their defaults.
func LoadColumnMap(internalConfig *InternalConfig) (models.ColumnMap, error) {
	columnMap := models.DefaultColumnMap()
	path := internalConfig.Intake.ColumnMapFile
	if path == "" {
		return columnMap, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return columnMap, exceptions.ErrColumnMapFile(err, path)
	}
	if err := json.Unmarshal(contents, &columnMap); err != nil {
		return columnMap, exceptions.ErrColumnMapFile(err, path)
	}
	return columnMap, nil
}
