package store

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wellvest-go-be/models"
)

// AddTransaction appends the transaction and adjusts the balance immediately,
// then pushes the create to the remote service in the background. On a
// successful create the client temp id is patched to the server-assigned id;
// on failure the optimistic insert stands and the error is only logged.
func (s *Store) AddTransaction(ctx context.Context, t models.Transaction) models.Transaction {
	s.mu.Lock()
	if t.ID == "" {
		t.ID = tempID("tx")
	}
	if t.UserID == "" {
		t.UserID = s.user.ID
	}
	s.transactions.Append(t)
	s.balance = s.balance.Add(t.Signed())
	s.persistStateLocked()
	epoch := s.epoch
	clientID := t.ID
	payload := t
	s.mu.Unlock()

	s.spawn(func() {
		saved, err := s.remote.AddTransaction(ctx, payload)
		if err != nil {
			s.log.Warn("transaction add failed to sync",
				zap.String("id", clientID), zap.Error(err))
			return
		}
		s.patchTransactionID(epoch, clientID, saved.ID)
	})
	return t
}

func (s *Store) patchTransactionID(epoch uint64, clientID, serverID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		// Session was reset while the create was in flight.
		return
	}
	if s.transactions.PatchID(clientID, serverID) {
		s.persistStateLocked()
	}
}

// UpdateTransaction applies a partial edit. When amount or type change, the
// old signed contribution is fully reversed before the new one is applied, so
// changing both at once never double counts. A no-op when the id is unknown.
func (s *Store) UpdateTransaction(ctx context.Context, id string, updates models.TransactionUpdate) {
	s.mu.Lock()
	t, ok := s.transactions.At(id)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.balance = s.balance.Sub(t.Signed())
	updates.Apply(t)
	s.balance = s.balance.Add(t.Signed())
	s.persistStateLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.spawn(func() {
		if err := s.remote.UpdateTransaction(ctx, userID, id, updates); err != nil {
			s.log.Warn("transaction update failed to sync",
				zap.String("id", id), zap.Error(err))
		}
	})
}

// DeleteTransaction reverses the transaction's signed contribution and removes
// it, then deletes remotely in the background. A no-op when the id is unknown.
func (s *Store) DeleteTransaction(ctx context.Context, id string) {
	s.mu.Lock()
	removed, ok := s.transactions.Remove(id)
	if !ok {
		s.mu.Unlock()
		return
	}
	s.balance = s.balance.Sub(removed.Signed())
	s.persistStateLocked()
	userID := s.user.ID
	s.mu.Unlock()

	s.spawn(func() {
		if err := s.remote.DeleteTransaction(ctx, userID, id); err != nil {
			s.log.Warn("transaction delete failed to sync",
				zap.String("id", id), zap.Error(err))
		}
	})
}

// Transactions returns a copy of the transaction collection.
func (s *Store) Transactions() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transactions.Items()
}

// Balance returns the derived balance: the signed sum over all transactions.
func (s *Store) Balance() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}
