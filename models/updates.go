package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionUpdate carries a partial transaction edit. Nil fields are left
// untouched.
type TransactionUpdate struct {
	Title     *string          `json:"title,omitempty"`
	Category  *string          `json:"category,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	Date      *time.Time       `json:"date,omitempty"`
	Type      *TransactionType `json:"type,omitempty"`
	Icon      *string          `json:"icon,omitempty"`
	Color     *string          `json:"color,omitempty"`
	Recurring *bool            `json:"recurring,omitempty"`
}

// Apply copies the set fields onto t.
func (u TransactionUpdate) Apply(t *Transaction) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Category != nil {
		t.Category = *u.Category
	}
	if u.Amount != nil {
		t.Amount = *u.Amount
	}
	if u.Date != nil {
		t.Date = *u.Date
	}
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.Icon != nil {
		t.Icon = *u.Icon
	}
	if u.Color != nil {
		t.Color = *u.Color
	}
	if u.Recurring != nil {
		t.Recurring = *u.Recurring
	}
}

// Columns renders the set fields as a column map for a remote partial update.
func (u TransactionUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Title != nil {
		cols["title"] = *u.Title
	}
	if u.Category != nil {
		cols["category"] = *u.Category
	}
	if u.Amount != nil {
		cols["amount"] = *u.Amount
	}
	if u.Date != nil {
		cols["date"] = *u.Date
	}
	if u.Type != nil {
		cols["type"] = *u.Type
	}
	if u.Icon != nil {
		cols["icon"] = *u.Icon
	}
	if u.Color != nil {
		cols["color"] = *u.Color
	}
	if u.Recurring != nil {
		cols["recurring"] = *u.Recurring
	}
	return cols
}

// SavingsGoalUpdate carries a partial savings goal edit.
type SavingsGoalUpdate struct {
	Name     *string          `json:"name,omitempty"`
	Target   *decimal.Decimal `json:"target,omitempty"`
	Current  *decimal.Decimal `json:"current,omitempty"`
	Color    *string          `json:"color,omitempty"`
	Icon     *string          `json:"icon,omitempty"`
	Deadline *time.Time       `json:"deadline,omitempty"`
}

// Apply copies the set fields onto g.
func (u SavingsGoalUpdate) Apply(g *SavingsGoal) {
	if u.Name != nil {
		g.Name = *u.Name
	}
	if u.Target != nil {
		g.Target = *u.Target
	}
	if u.Current != nil {
		g.Current = *u.Current
	}
	if u.Color != nil {
		g.Color = *u.Color
	}
	if u.Icon != nil {
		g.Icon = *u.Icon
	}
	if u.Deadline != nil {
		g.Deadline = u.Deadline
	}
}

// Columns renders the set fields as a column map for a remote partial update.
func (u SavingsGoalUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Name != nil {
		cols["name"] = *u.Name
	}
	if u.Target != nil {
		cols["target"] = *u.Target
	}
	if u.Current != nil {
		cols["current"] = *u.Current
	}
	if u.Color != nil {
		cols["color"] = *u.Color
	}
	if u.Icon != nil {
		cols["icon"] = *u.Icon
	}
	if u.Deadline != nil {
		cols["deadline"] = *u.Deadline
	}
	return cols
}

// SettingsUpdate carries a partial settings edit.
type SettingsUpdate struct {
	DarkMode      *bool   `json:"dark_mode,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	Biometrics    *bool   `json:"biometrics,omitempty"`
	Language      *string `json:"language,omitempty"`
	Currency      *string `json:"currency,omitempty"`
}

// Apply copies the set fields onto s.
func (u SettingsUpdate) Apply(s *Settings) {
	if u.DarkMode != nil {
		s.DarkMode = *u.DarkMode
	}
	if u.Notifications != nil {
		s.Notifications = *u.Notifications
	}
	if u.Biometrics != nil {
		s.Biometrics = *u.Biometrics
	}
	if u.Language != nil {
		s.Language = *u.Language
	}
	if u.Currency != nil {
		s.Currency = *u.Currency
	}
}
