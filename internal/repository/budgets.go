package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/fintrack/internal/models"
)

const budgetColumns = `id, user_id, category, amount, period, spent`

func scanBudget(s interface{ Scan(...any) error }, b *models.Budget) error {
	return s.Scan(&b.ID, &b.UserID, &b.Category, &b.Amount, &b.Period, &b.Spent)
}

// ListBudgets returns a user's budgets
func (r *Repository) ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+budgetColumns+` FROM fintrack.budgets WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}
	defer func() { _ = rows.Close() }()

	budgets := []models.Budget{}
	for rows.Next() {
		var b models.Budget
		if err := scanBudget(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan budget: %w", err)
		}
		budgets = append(budgets, b)
	}
	return budgets, rows.Err()
}

// GetBudget retrieves a budget by id
func (r *Repository) GetBudget(ctx context.Context, id int64) (*models.Budget, error) {
	var b models.Budget
	err := scanBudget(r.db.QueryRowContext(ctx, `SELECT `+budgetColumns+` FROM fintrack.budgets WHERE id = $1`, id), &b)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("budget %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}
	return &b, nil
}

// CreateBudget inserts a budget
func (r *Repository) CreateBudget(ctx context.Context, b *models.Budget) error {
	query := `
		INSERT INTO fintrack.budgets (user_id, category, amount, period, spent)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, b.UserID, b.Category, b.Amount, b.Period, b.Spent).Scan(&b.ID); err != nil {
		return fmt.Errorf("failed to create budget: %w", err)
	}
	return nil
}

// UpdateBudget overwrites the mutable fields of a budget
func (r *Repository) UpdateBudget(ctx context.Context, b *models.Budget) error {
	return r.execAffectingOne(ctx, "update budget", `
		UPDATE fintrack.budgets
		SET category = $2, amount = $3, period = $4, spent = $5
		WHERE id = $1`,
		b.ID, b.Category, b.Amount, b.Period, b.Spent)
}

// DeleteBudget removes a budget
func (r *Repository) DeleteBudget(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "delete budget", `DELETE FROM fintrack.budgets WHERE id = $1`, id)
}
