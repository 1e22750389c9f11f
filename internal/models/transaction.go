package models

import "github.com/Dan9191/fintrack/internal/projection"

// Transaction represents a financial transaction.
// Amount is a decimal string; the sign is carried by Type.
type Transaction struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Type          string `json:"type"` // income or expense
	Date          string `json:"date"` // YYYY-MM-DD
	PaymentMethod string `json:"paymentMethod,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// TransactionUpdate carries the fields of a partial update
type TransactionUpdate struct {
	Amount        *string `json:"amount"`
	Description   *string `json:"description"`
	Category      *string `json:"category"`
	Type          *string `json:"type"`
	Date          *string `json:"date"`
	PaymentMethod *string `json:"paymentMethod"`
}

// Apply copies the non-nil fields onto t
func (u TransactionUpdate) Apply(t *Transaction) {
	setString(&t.Amount, u.Amount)
	setString(&t.Description, u.Description)
	setString(&t.Category, u.Category)
	setString(&t.Type, u.Type)
	setString(&t.Date, u.Date)
	setString(&t.PaymentMethod, u.PaymentMethod)
}

// Projection converts the record to the projection engine's view
func (t Transaction) Projection() projection.Transaction {
	return projection.Transaction{
		Type:     projection.TransactionType(t.Type),
		Amount:   projection.Amount(t.Amount),
		Category: t.Category,
		Date:     t.Date,
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
