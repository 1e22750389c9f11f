package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/fintrack/internal/models"
)

const transactionColumns = `id, user_id, amount, description, category, type, date, payment_method, created_at`

func scanTransaction(s interface{ Scan(...any) error }, t *models.Transaction) error {
	return s.Scan(&t.ID, &t.UserID, &t.Amount, &t.Description, &t.Category, &t.Type, &t.Date, &t.PaymentMethod, &t.CreatedAt)
}

// ListTransactions returns a user's transactions in insertion order
func (r *Repository) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+transactionColumns+` FROM fintrack.transactions WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	txs := []models.Transaction{}
	for rows.Next() {
		var t models.Transaction
		if err := scanTransaction(rows, &t); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		txs = append(txs, t)
	}
	return txs, rows.Err()
}

// GetTransaction retrieves a transaction by id
func (r *Repository) GetTransaction(ctx context.Context, id int64) (*models.Transaction, error) {
	var t models.Transaction
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM fintrack.transactions WHERE id = $1`, id)
	err := scanTransaction(row, &t)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return &t, nil
}

// CreateTransaction inserts a transaction
func (r *Repository) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	query := `
		INSERT INTO fintrack.transactions (user_id, amount, description, category, type, date, payment_method, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, CURRENT_TIMESTAMP)
		RETURNING id, created_at`
	err := r.db.QueryRowContext(ctx, query, t.UserID, t.Amount, t.Description, t.Category, t.Type, t.Date, t.PaymentMethod).
		Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// UpdateTransaction overwrites the mutable fields of a transaction
func (r *Repository) UpdateTransaction(ctx context.Context, t *models.Transaction) error {
	return r.execAffectingOne(ctx, "update transaction", `
		UPDATE fintrack.transactions
		SET amount = $2, description = $3, category = $4, type = $5, date = $6, payment_method = $7
		WHERE id = $1`,
		t.ID, t.Amount, t.Description, t.Category, t.Type, t.Date, t.PaymentMethod)
}

// DeleteTransaction removes a transaction
func (r *Repository) DeleteTransaction(ctx context.Context, id int64) error {
	return r.execAffectingOne(ctx, "delete transaction", `DELETE FROM fintrack.transactions WHERE id = $1`, id)
}
