package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"wellvest-go-be/models"
)

// UpdateHealthData shallow-merges data into the named bucket: new keys are
// added, given keys overwritten, untouched keys kept. The merged payload is
// then forwarded to the remote service tagged with the bucket's category.
func (s *Store) UpdateHealthData(ctx context.Context, category models.HealthCategory, data map[string]any) error {
	if !models.ValidHealthCategory(category) {
		return fmt.Errorf("unknown health category %q", category)
	}

	s.mu.Lock()
	bucket := s.health[category]
	for k, v := range data {
		bucket[k] = v
	}
	merged := make(map[string]any, len(bucket))
	for k, v := range bucket {
		merged[k] = v
	}
	s.persistStateLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.spawn(func() {
		if err := s.remote.SaveHealthData(ctx, userID, category, merged); err != nil {
			s.log.Warn("health data failed to sync",
				zap.String("category", string(category)), zap.Error(err))
		}
	})
	return nil
}

// HealthData returns a copy of one bucket.
func (s *Store) HealthData(category models.HealthCategory) map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.health[category]
	out := make(map[string]any, len(bucket))
	for k, v := range bucket {
		out[k] = v
	}
	return out
}

// bucketHealthEntries rebuilds the four named buckets from the flat remote
// entry list, later entries' keys overwriting earlier ones.
func bucketHealthEntries(entries []models.HealthEntry) map[models.HealthCategory]map[string]any {
	buckets := emptyBuckets()
	for _, entry := range entries {
		if !models.ValidHealthCategory(entry.Category) {
			continue
		}
		for k, v := range entry.Payload {
			buckets[entry.Category][k] = v
		}
	}
	return buckets
}
