package models

// Budget represents a spending limit for a category
type Budget struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Period   string `json:"period"`
	Spent    string `json:"spent"`
}

// BudgetUpdate carries the fields of a partial update
type BudgetUpdate struct {
	Category *string `json:"category"`
	Amount   *string `json:"amount"`
	Period   *string `json:"period"`
	Spent    *string `json:"spent"`
}

// Apply copies the non-nil fields onto b
func (u BudgetUpdate) Apply(b *Budget) {
	setString(&b.Category, u.Category)
	setString(&b.Amount, u.Amount)
	setString(&b.Period, u.Period)
	setString(&b.Spent, u.Spent)
}
