package remote

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"wellvest-go-be/models"
)

// GormService implements Service against the Supabase postgres database.
type GormService struct {
	db *gorm.DB
}

// NewGormService wraps an open database handle.
func NewGormService(db *gorm.DB) *GormService {
	return &GormService{db: db}
}

func (s *GormService) AddTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	// Drop the client temp id so postgres assigns the real one.
	t.ID = ""
	if err := s.db.WithContext(ctx).Create(&t).Error; err != nil {
		return models.Transaction{}, err
	}
	return t, nil
}

func (s *GormService) UpdateTransaction(ctx context.Context, userID, id string, updates models.TransactionUpdate) error {
	cols := updates.Columns()
	if len(cols) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(cols)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormService) DeleteTransaction(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Transaction{}).Error
}

func (s *GormService) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	var txns []models.Transaction
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&txns).Error
	return txns, err
}

func (s *GormService) AddSavingsGoal(ctx context.Context, g models.SavingsGoal) (models.SavingsGoal, error) {
	g.ID = ""
	if err := s.db.WithContext(ctx).Create(&g).Error; err != nil {
		return models.SavingsGoal{}, err
	}
	return g, nil
}

func (s *GormService) UpdateSavingsGoal(ctx context.Context, userID, id string, updates models.SavingsGoalUpdate) error {
	cols := updates.Columns()
	if len(cols) == 0 {
		return nil
	}
	result := s.db.WithContext(ctx).Model(&models.SavingsGoal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(cols)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormService) DeleteSavingsGoal(ctx context.Context, userID, id string) error {
	return s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavingsGoal{}).Error
}

func (s *GormService) ListSavingsGoals(ctx context.Context, userID string) ([]models.SavingsGoal, error) {
	var goals []models.SavingsGoal
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&goals).Error
	return goals, err
}

func (s *GormService) SaveHealthData(ctx context.Context, userID string, category models.HealthCategory, payload map[string]any) error {
	entry := models.HealthEntry{
		UserID:   userID,
		Category: category,
		Payload:  payload,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "category"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *GormService) ListHealthEntries(ctx context.Context, userID string) ([]models.HealthEntry, error) {
	var entries []models.HealthEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at ASC").
		Find(&entries).Error
	return entries, err
}

func (s *GormService) AddChatMessage(ctx context.Context, m models.ChatMessage) (models.ChatMessage, error) {
	m.ID = ""
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return models.ChatMessage{}, err
	}
	return m, nil
}

func (s *GormService) ListChatMessages(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&msgs).Error
	return msgs, err
}

func (s *GormService) ClearChatMessages(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ChatMessage{}).Error
}

func (s *GormService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, ErrNotFound
	}
	if err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (s *GormService) UpdateProfileSettings(ctx context.Context, userID string, settings models.Settings) error {
	profile := models.Profile{
		UserID:   userID,
		Settings: &settings,
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"settings", "updated_at"}),
		}).
		Create(&profile).Error
}
