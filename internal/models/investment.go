package models

import "github.com/Dan9191/fintrack/internal/projection"

// Investment represents a holding. The PF fields only apply to provident fund
// accounts (Type "pf").
type Investment struct {
	ID                int64  `json:"id"`
	UserID            int64  `json:"userId"`
	Symbol            string `json:"symbol"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Shares            string `json:"shares,omitempty"`
	AvgCost           string `json:"avgCost,omitempty"`
	CurrentValue      string `json:"currentValue,omitempty"`
	PFCurrentCompany  string `json:"pfCurrentCompany,omitempty"`
	PFPreviousCompany string `json:"pfPreviousCompany,omitempty"`
	PFCurrentAge      string `json:"pfCurrentAge,omitempty"`
}

// InvestmentUpdate carries the fields of a partial update
type InvestmentUpdate struct {
	Symbol            *string `json:"symbol"`
	Name              *string `json:"name"`
	Type              *string `json:"type"`
	Shares            *string `json:"shares"`
	AvgCost           *string `json:"avgCost"`
	CurrentValue      *string `json:"currentValue"`
	PFCurrentCompany  *string `json:"pfCurrentCompany"`
	PFPreviousCompany *string `json:"pfPreviousCompany"`
	PFCurrentAge      *string `json:"pfCurrentAge"`
}

// Apply copies the non-nil fields onto inv
func (u InvestmentUpdate) Apply(inv *Investment) {
	setString(&inv.Symbol, u.Symbol)
	setString(&inv.Name, u.Name)
	setString(&inv.Type, u.Type)
	setString(&inv.Shares, u.Shares)
	setString(&inv.AvgCost, u.AvgCost)
	setString(&inv.CurrentValue, u.CurrentValue)
	setString(&inv.PFCurrentCompany, u.PFCurrentCompany)
	setString(&inv.PFPreviousCompany, u.PFPreviousCompany)
	setString(&inv.PFCurrentAge, u.PFCurrentAge)
}

// Projection converts the record to the projection engine's view
func (inv Investment) Projection() projection.Investment {
	return projection.Investment{
		Type:         projection.InvestmentType(inv.Type),
		CurrentValue: projection.Amount(inv.CurrentValue),
	}
}
