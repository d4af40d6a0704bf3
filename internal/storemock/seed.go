package storemock

import (
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Seed loads a db.json style file ({"vagas": [...], "usuarios": [...]}) into
// an empty store. A store that already holds documents is left alone, so the
// seed is safe to run on every start.
func (s *Store) Seed(path string, logger *zap.Logger) error {
	if path == "" {
		return nil
	}

	var count int64
	if err := s.DB.Model(&Documento{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Info("storemock: store already populated, skipping seed", zap.Int64("documents", count))
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("storemock: no seed file, starting empty", zap.String("path", path))
			return nil
		}
		return fmt.Errorf("storemock: read seed file: %w", err)
	}

	var collections map[string][]map[string]any
	if err := json.Unmarshal(raw, &collections); err != nil {
		return fmt.Errorf("storemock: parse seed file: %w", err)
	}

	seeded := 0
	for collection, docs := range collections {
		for _, doc := range docs {
			if _, err := s.Create(collection, doc); err != nil {
				return fmt.Errorf("storemock: seed %s: %w", collection, err)
			}
			seeded++
		}
	}
	logger.Info("storemock: seed loaded", zap.String("path", path), zap.Int("documents", seeded))
	return nil
}
