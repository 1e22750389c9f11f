package models

import "github.com/Dan9191/fintrack/internal/projection"

// Bill statuses
const (
	BillStatusPaid    = "paid"
	BillStatusPending = "pending"
	BillStatusOverdue = "overdue"
)

// Bill represents a bill owed by a user
type Bill struct {
	ID             int64  `json:"id"`
	UserID         int64  `json:"userId"`
	Name           string `json:"name"`
	Amount         string `json:"amount"`
	Category       string `json:"category"`
	DueDate        string `json:"dueDate"` // YYYY-MM-DD
	Status         string `json:"status"`
	IsRecurring    bool   `json:"isRecurring"`
	AutoPayEnabled bool   `json:"autoPayEnabled"`
	Icon           string `json:"icon,omitempty"`
	Color          string `json:"color,omitempty"`
}

// BillUpdate carries the fields of a partial update
type BillUpdate struct {
	Name           *string `json:"name"`
	Amount         *string `json:"amount"`
	Category       *string `json:"category"`
	DueDate        *string `json:"dueDate"`
	Status         *string `json:"status"`
	IsRecurring    *bool   `json:"isRecurring"`
	AutoPayEnabled *bool   `json:"autoPayEnabled"`
	Icon           *string `json:"icon"`
	Color          *string `json:"color"`
}

// Apply copies the non-nil fields onto b
func (u BillUpdate) Apply(b *Bill) {
	setString(&b.Name, u.Name)
	setString(&b.Amount, u.Amount)
	setString(&b.Category, u.Category)
	setString(&b.DueDate, u.DueDate)
	setString(&b.Status, u.Status)
	setBool(&b.IsRecurring, u.IsRecurring)
	setBool(&b.AutoPayEnabled, u.AutoPayEnabled)
	setString(&b.Icon, u.Icon)
	setString(&b.Color, u.Color)
}

// Projection converts the record to the projection engine's view
func (b Bill) Projection() projection.Bill {
	return projection.Bill{
		Name:     b.Name,
		Amount:   projection.Amount(b.Amount),
		Status:   projection.BillStatus(b.Status),
		Category: b.Category,
	}
}
