package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType decides whether a transaction raises or lowers the balance.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ChatRole identifies who authored a chat message.
type ChatRole string

const (
	RoleUser  ChatRole = "user"
	RoleModel ChatRole = "model"
)

// HealthCategory names one of the fixed health data buckets.
type HealthCategory string

const (
	CategoryCycleData     HealthCategory = "cycleData"
	CategoryMentalHealth  HealthCategory = "mentalHealth"
	CategoryContraception HealthCategory = "contraception"
	CategoryMensHealth    HealthCategory = "mensHealth"
)

// HealthCategories lists every bucket in a stable order.
var HealthCategories = []HealthCategory{
	CategoryCycleData,
	CategoryMentalHealth,
	CategoryContraception,
	CategoryMensHealth,
}

// ValidHealthCategory reports whether c names a known bucket.
func ValidHealthCategory(c HealthCategory) bool {
	for _, known := range HealthCategories {
		if c == known {
			return true
		}
	}
	return false
}

// User represents the signed-in user. An empty ID means anonymous/local-only.
type User struct {
	ID              string `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name            string `json:"name"`
	Email           string `gorm:"uniqueIndex" json:"email"`
	Phone           string `json:"phone"`
	AvatarURL       string `json:"avatar_url"`
	IsAuthenticated bool   `gorm:"-" json:"is_authenticated"`
}

// Transaction represents a monetary event. Amount is always non-negative;
// Type decides the sign of its contribution to the balance.
type Transaction struct {
	ID        string          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string          `json:"title"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	Date      time.Time       `json:"date"`
	Type      TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Icon      string          `json:"icon"`
	Color     string          `json:"color"`
	Recurring bool            `gorm:"default:false" json:"recurring"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Signed returns the transaction's contribution to the balance, positive for
// income and negative for expense.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// SavingsGoal tracks progress toward a target amount.
type SavingsGoal struct {
	ID        string          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `gorm:"type:numeric(14,2)" json:"target"`
	Current   decimal.Decimal `gorm:"type:numeric(14,2)" json:"current"`
	Color     string          `json:"color"`
	Icon      string          `json:"icon"`
	Deadline  *time.Time      `json:"deadline,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HealthEntry is one remote record of schema-less wellness data, tagged with
// the bucket it belongs to. Entries of the same category are merged client-side,
// later entries winning per key.
type HealthEntry struct {
	ID        string         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    string         `gorm:"type:uuid;not null;uniqueIndex:idx_health_user_category" json:"user_id"`
	Category  HealthCategory `gorm:"type:varchar(32);not null;uniqueIndex:idx_health_user_category" json:"category"`
	Payload   map[string]any `gorm:"serializer:json" json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ChatMessage is one turn of the AI companion conversation.
type ChatMessage struct {
	ID        string    `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Role      ChatRole  `gorm:"type:varchar(10);not null" json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Settings holds the user's preferences. Persisted locally on every change and
// mirrored to the remote profile when a user id is present.
type Settings struct {
	DarkMode      bool   `json:"dark_mode"`
	Notifications bool   `json:"notifications"`
	Biometrics    bool   `json:"biometrics"`
	Language      string `json:"language"`
	Currency      string `json:"currency"`
}

// DefaultSettings returns the settings a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		Language:      "en",
		Currency:      "USD",
	}
}

// Profile is the remote per-user profile row: identity fields plus the mirrored
// settings blob.
type Profile struct {
	UserID    string    `gorm:"type:uuid;primary_key" json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	Settings  *Settings `gorm:"serializer:json" json:"settings,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
