package models

import "github.com/Dan9191/fintrack/internal/projection"

// Income represents a recurring income source
type Income struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Source    string `json:"source"`
	Amount    string `json:"amount"`
	Frequency string `json:"frequency"`
	IsActive  bool   `json:"isActive"`
}

// IncomeUpdate carries the fields of a partial update
type IncomeUpdate struct {
	Source    *string `json:"source"`
	Amount    *string `json:"amount"`
	Frequency *string `json:"frequency"`
	IsActive  *bool   `json:"isActive"`
}

// Apply copies the non-nil fields onto i
func (u IncomeUpdate) Apply(i *Income) {
	setString(&i.Source, u.Source)
	setString(&i.Amount, u.Amount)
	setString(&i.Frequency, u.Frequency)
	setBool(&i.IsActive, u.IsActive)
}

// Projection converts the record to the projection engine's view
func (i Income) Projection() projection.Income {
	return projection.Income{Amount: projection.Amount(i.Amount)}
}
