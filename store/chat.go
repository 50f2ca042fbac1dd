package store

import (
	"context"
	"time"

	"go.uber.org/zap"

	"wellvest-go-be/models"
)

// AddChatMessage appends the message, evicting the oldest entries beyond the
// 100 most recent, then persists it remotely and patches the temp id on
// acknowledgement.
func (s *Store) AddChatMessage(ctx context.Context, m models.ChatMessage) models.ChatMessage {
	s.mu.Lock()
	if m.ID == "" {
		m.ID = tempID("msg")
	}
	if m.UserID == "" {
		m.UserID = s.user.ID
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	s.chat.Append(m)
	s.chat.TrimFront(maxChatHistory)
	epoch := s.epoch
	clientID := m.ID
	payload := m
	s.mu.Unlock()

	s.spawn(func() {
		saved, err := s.remote.AddChatMessage(ctx, payload)
		if err != nil {
			s.log.Warn("chat message failed to sync",
				zap.String("id", clientID), zap.Error(err))
			return
		}
		s.patchChatMessageID(epoch, clientID, saved.ID)
	})
	return m
}

func (s *Store) patchChatMessageID(epoch uint64, clientID, serverID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if epoch != s.epoch {
		return
	}
	// PatchID is a no-op when the message was already evicted by the cap.
	s.chat.PatchID(clientID, serverID)
}

// ClearChatHistory empties the conversation immediately and issues a remote
// delete-all in the background. A remote failure does not restore the local
// history.
func (s *Store) ClearChatHistory(ctx context.Context) {
	s.mu.Lock()
	s.chat.Replace(nil)
	userID := s.user.ID
	s.mu.Unlock()

	s.spawn(func() {
		if err := s.remote.ClearChatMessages(ctx, userID); err != nil {
			s.log.Warn("chat history clear failed to sync", zap.Error(err))
		}
	})
}

// ChatMessages returns a copy of the conversation, oldest first.
func (s *Store) ChatMessages() []models.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chat.Items()
}
