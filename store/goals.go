package store

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wellvest-go-be/models"
)

// AddSavingsGoal appends the goal immediately, then creates it remotely and
// patches the client temp id with the server-assigned one.
func (s *Store) AddSavingsGoal(ctx context.Context, g models.SavingsGoal) models.SavingsGoal {
	s.mu.Lock()
	if g.ID == "" {
		g.ID = tempID("goal")
	}
	if g.UserID == "" {
		g.UserID = s.user.ID
	}
	s.goals.Append(g)
	s.persistStateLocked()
	epoch := s.epoch
	clientID := g.ID
	payload := g
	s.mu.Unlock()

	s.spawn(func() {
		saved, err := s.remote.AddSavingsGoal(ctx, payload)
		if err != nil {
			s.log.Warn("savings goal add failed to sync",
				zap.String("id", clientID), zap.Error(err))
			return
		}
		s.patchSavingsGoalID(epoch, clientID, saved.ID)
	})
	return g
}

func (s *Store) patchSavingsGoalID(epoch uint64, clientID, serverID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return
	}
	if s.goals.PatchID(clientID, serverID) {
		s.persistStateLocked()
	}
}

// UpdateSavingsGoal applies a partial edit. Current and target are stored as
// given; only AddGoalProgress clamps. A no-op when the id is unknown.
func (s *Store) UpdateSavingsGoal(ctx context.Context, id string, updates models.SavingsGoalUpdate) {
	s.mu.Lock()
	g, ok := s.goals.At(id)
	if !ok {
		s.mu.Unlock()
		return
	}
	updates.Apply(g)
	s.persistStateLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.spawn(func() {
		if err := s.remote.UpdateSavingsGoal(ctx, userID, id, updates); err != nil {
			s.log.Warn("savings goal update failed to sync",
				zap.String("id", id), zap.Error(err))
		}
	})
}

// DeleteSavingsGoal removes the goal locally, then remotely in the background.
func (s *Store) DeleteSavingsGoal(ctx context.Context, id string) {
	s.mu.Lock()
	if _, ok := s.goals.Remove(id); !ok {
		s.mu.Unlock()
		return
	}
	s.persistStateLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.spawn(func() {
		if err := s.remote.DeleteSavingsGoal(ctx, userID, id); err != nil {
			s.log.Warn("savings goal delete failed to sync",
				zap.String("id", id), zap.Error(err))
		}
	})
}

// AddGoalProgress adds amount to the goal's current progress, clamped at the
// target. Current never exceeds target through this path.
func (s *Store) AddGoalProgress(ctx context.Context, id string, amount decimal.Decimal) {
	s.mu.Lock()
	g, ok := s.goals.At(id)
	if !ok {
		s.mu.Unlock()
		return
	}
	next := g.Current.Add(amount)
	if next.GreaterThan(g.Target) {
		next = g.Target
	}
	g.Current = next
	s.persistStateLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.spawn(func() {
		updates := models.SavingsGoalUpdate{Current: &next}
		if err := s.remote.UpdateSavingsGoal(ctx, userID, id, updates); err != nil {
			s.log.Warn("goal progress failed to sync",
				zap.String("id", id), zap.Error(err))
		}
	})
}

// SavingsGoals returns a copy of the goal collection.
func (s *Store) SavingsGoals() []models.SavingsGoal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.goals.Items()
}
