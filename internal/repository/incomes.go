package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/fintrack/internal/models"
)

const incomeColumns = `id, user_id, source, amount, frequency, is_active`

func scanIncome(s interface{ Scan(...any) error }, i *models.Income) error {
	return s.Scan(&i.ID, &i.UserID, &i.Source, &i.Amount, &i.Frequency, &i.IsActive)
}

// ListIncomes returns a user's income sources
func (r *Repository) ListIncomes(ctx context.Context, userID int64) ([]models.Income, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+incomeColumns+` FROM fintrack.incomes WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	incomes := []models.Income{}
	for rows.Next() {
		var i models.Income
		if err := scanIncome(rows, &i); err != nil {
			return nil, fmt.Errorf("failed to scan income: %w", err)
		}
		incomes = append(incomes, i)
	}
	return incomes, rows.Err()
}

// GetIncome retrieves an income source by id
func (r *Repository) GetIncome(ctx context.Context, id int64) (*models.Income, error) {
	var i models.Income
	err := scanIncome(r.db.QueryRowContext(ctx, `SELECT `+incomeColumns+` FROM fintrack.incomes WHERE id = $1`, id), &i)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("income %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find income: %w", err)
	}
	return &i, nil
}

// CreateIncome inserts an income source
func (r *Repository) CreateIncome(ctx context.Context, i *models.Income) error {
	query := `
		INSERT INTO fintrack.incomes (user_id, source, amount, frequency, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, i.UserID, i.Source, i.Amount, i.Frequency, i.IsActive).Scan(&i.ID); err != nil {
		return fmt.Errorf("failed to create income: %w", err)
	}
	return nil
}

// UpdateIncome overwrites the mutable fields of an income source
func (r *Repository) UpdateIncome(ctx context.Context, i *models.Income) error {
	return r.execAffectingOne(ctx, "update income", `
		UPDATE fintrack.incomes
		SET source = $2, amount = $3, frequency = $4, is_active = $5
		WHERE id = $1`,
		i.ID, i.Source, i.Amount, i.Frequency, i.IsActive)
}

// DeleteIncome removes an income source
func (r *Repository) DeleteIncome(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "delete income", `DELETE FROM fintrack.incomes WHERE id = $1`, id)
}
