package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/fintrack/internal/models"
)

const investmentColumns = `id, user_id, symbol, name, type, shares, avg_cost, current_value,
	pf_current_company, pf_previous_company, pf_current_age`

func scanInvestment(s interface{ Scan(...any) error }, inv *models.Investment) error {
	return s.Scan(&inv.ID, &inv.UserID, &inv.Symbol, &inv.Name, &inv.Type, &inv.Shares, &inv.AvgCost,
		&inv.CurrentValue, &inv.PFCurrentCompany, &inv.PFPreviousCompany, &inv.PFCurrentAge)
}

// ListInvestments returns a user's holdings
func (r *Repository) ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+investmentColumns+` FROM fintrack.investments WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list investments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	investments := []models.Investment{}
	for rows.Next() {
		var inv models.Investment
		if err := scanInvestment(rows, &inv); err != nil {
			return nil, fmt.Errorf("failed to scan investment: %w", err)
		}
		investments = append(investments, inv)
	}
	return investments, rows.Err()
}

// GetInvestment retrieves a holding by id
func (r *Repository) GetInvestment(ctx context.Context, id int64) (*models.Investment, error) {
	var inv models.Investment
	err := scanInvestment(r.db.QueryRowContext(ctx,
		`SELECT `+investmentColumns+` FROM fintrack.investments WHERE id = $1`, id), &inv)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("investment %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find investment: %w", err)
	}
	return &inv, nil
}

// CreateInvestment inserts a holding
func (r *Repository) CreateInvestment(ctx context.Context, inv *models.Investment) error {
	query := `
		INSERT INTO fintrack.investments (user_id, symbol, name, type, shares, avg_cost, current_value,
			pf_current_company, pf_previous_company, pf_current_age)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, inv.UserID, inv.Symbol, inv.Name, inv.Type, inv.Shares, inv.AvgCost,
		inv.CurrentValue, inv.PFCurrentCompany, inv.PFPreviousCompany, inv.PFCurrentAge).Scan(&inv.ID)
	if err != nil {
		return fmt.Errorf("failed to create investment: %w", err)
	}
	return nil
}

// UpdateInvestment overwrites the mutable fields of a holding
func (r *Repository) UpdateInvestment(ctx context.Context, inv *models.Investment) error {
	return r.execAffectingOne(ctx, "update investment", `
		UPDATE fintrack.investments
		SET symbol = $2, name = $3, type = $4, shares = $5, avg_cost = $6, current_value = $7,
		    pf_current_company = $8, pf_previous_company = $9, pf_current_age = $10
		WHERE id = $1`,
		inv.ID, inv.Symbol, inv.Name, inv.Type, inv.Shares, inv.AvgCost, inv.CurrentValue,
		inv.PFCurrentCompany, inv.PFPreviousCompany, inv.PFCurrentAge)
}

// DeleteInvestment removes a holding
func (r *Repository) DeleteInvestment(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "delete investment", `DELETE FROM fintrack.investments WHERE id = $1`, id)
}
