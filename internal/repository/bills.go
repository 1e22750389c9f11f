package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/fintrack/internal/models"
)

const billColumns = `id, user_id, name, amount, category, due_date, status, is_recurring, auto_pay_enabled, icon, color`

func scanBill(s interface{ Scan(...any) error }, b *models.Bill) error {
	return s.Scan(&b.ID, &b.UserID, &b.Name, &b.Amount, &b.Category, &b.DueDate, &b.Status,
		&b.IsRecurring, &b.AutoPayEnabled, &b.Icon, &b.Color)
}

// ListBills returns a user's bills in insertion order
func (r *Repository) ListBills(ctx context.Context, userID int64) ([]models.Bill, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+billColumns+` FROM fintrack.bills WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer func() { _ = rows.Close() }()

	bills := []models.Bill{}
	for rows.Next() {
		var b models.Bill
		if err := scanBill(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}
	return bills, rows.Err()
}

// GetBill retrieves a bill by id
func (r *Repository) GetBill(ctx context.Context, id int64) (*models.Bill, error) {
	var b models.Bill
	err := scanBill(r.db.QueryRowContext(ctx, `SELECT `+billColumns+` FROM fintrack.bills WHERE id = $1`, id), &b)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find bill: %w", err)
	}
	return &b, nil
}

// CreateBill inserts a bill
func (r *Repository) CreateBill(ctx context.Context, b *models.Bill) error {
	query := `
		INSERT INTO fintrack.bills (user_id, name, amount, category, due_date, status, is_recurring, auto_pay_enabled, icon, color)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.db.QueryRowContext(ctx, query, b.UserID, b.Name, b.Amount, b.Category, b.DueDate, b.Status,
		b.IsRecurring, b.AutoPayEnabled, b.Icon, b.Color).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}
	return nil
}

// UpdateBill overwrites the mutable fields of a bill
func (r *Repository) UpdateBill(ctx context.Context, b *models.Bill) error {
	return r.execAffectingOne(ctx, "update bill", `
		UPDATE fintrack.bills
		SET name = $2, amount = $3, category = $4, due_date = $5, status = $6,
		    is_recurring = $7, auto_pay_enabled = $8, icon = $9, color = $10
		WHERE id = $1`,
		b.ID, b.Name, b.Amount, b.Category, b.DueDate, b.Status, b.IsRecurring, b.AutoPayEnabled, b.Icon, b.Color)
}

// DeleteBill removes a bill
func (r *Repository) DeleteBill(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "delete bill", `DELETE FROM fintrack.bills WHERE id = $1`, id)
}
