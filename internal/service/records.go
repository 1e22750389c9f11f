package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Dan9191/fintrack/internal/models"
	"github.com/Dan9191/fintrack/internal/repository"
)

// ownedRecord loads a record and checks that it belongs to the caller
func ownedRecord[T any](ctx context.Context, get func(context.Context, int64) (*T, error), id int64, owner func(*T) int64) (*T, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	rec, err := get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if owner(rec) != userID {
		return nil, ErrForbidden
	}
	return rec, nil
}

// Transactions

func (s *Service) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListTransactions(ctx, userID)
}

func (s *Service) CreateTransaction(ctx context.Context, t *models.Transaction) error {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return err
	}
	t.UserID = userID
	t.Type = strings.ToLower(strings.TrimSpace(t.Type))
	if t.Type == "" {
		t.Type = "expense"
	}
	if err := s.repo.CreateTransaction(ctx, t); err != nil {
		return err
	}
	s.log.Infof("Transaction %d created for user %d", t.ID, userID)
	return nil
}

func (s *Service) UpdateTransaction(ctx context.Context, id int64, u models.TransactionUpdate) (*models.Transaction, error) {
	t, err := ownedRecord(ctx, s.repo.GetTransaction, id, func(t *models.Transaction) int64 { return t.UserID })
	if err != nil {
		return nil, err
	}
	u.Apply(t)
	if err := s.repo.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *Service) DeleteTransaction(ctx context.Context, id int64) error {
	if _, err := ownedRecord(ctx, s.repo.GetTransaction, id, func(t *models.Transaction) int64 { return t.UserID }); err != nil {
		return err
	}
	return s.repo.DeleteTransaction(ctx, id)
}

// Bills

func (s *Service) ListBills(ctx context.Context) ([]models.Bill, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBills(ctx, userID)
}

func (s *Service) CreateBill(ctx context.Context, b *models.Bill) error {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return err
	}
	b.UserID = userID
	if b.Status == "" {
		b.Status = models.BillStatusPending
	}
	if err := s.repo.CreateBill(ctx, b); err != nil {
		return err
	}
	s.log.Infof("Bill %d (%s) created for user %d", b.ID, b.Name, userID)
	return nil
}

func (s *Service) UpdateBill(ctx context.Context, id int64, u models.BillUpdate) (*models.Bill, error) {
	b, err := ownedRecord(ctx, s.repo.GetBill, id, func(b *models.Bill) int64 { return b.UserID })
	if err != nil {
		return nil, err
	}
	u.Apply(b)
	if err := s.repo.UpdateBill(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBill(ctx context.Context, id int64) error {
	if _, err := ownedRecord(ctx, s.repo.GetBill, id, func(b *models.Bill) int64 { return b.UserID }); err != nil {
		return err
	}
	return s.repo.DeleteBill(ctx, id)
}

// Incomes

func (s *Service) ListIncomes(ctx context.Context) ([]models.Income, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListIncomes(ctx, userID)
}

// CreateIncome stores a new income source. Sources are active unless the
// payload says otherwise.
func (s *Service) CreateIncome(ctx context.Context, u models.IncomeUpdate) (*models.Income, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	i := &models.Income{UserID: userID, Frequency: "monthly", IsActive: true}
	u.Apply(i)
	if err := s.repo.CreateIncome(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) UpdateIncome(ctx context.Context, id int64, u models.IncomeUpdate) (*models.Income, error) {
	i, err := ownedRecord(ctx, s.repo.GetIncome, id, func(i *models.Income) int64 { return i.UserID })
	if err != nil {
		return nil, err
	}
	u.Apply(i)
	if err := s.repo.UpdateIncome(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

func (s *Service) DeleteIncome(ctx context.Context, id int64) error {
	if _, err := ownedRecord(ctx, s.repo.GetIncome, id, func(i *models.Income) int64 { return i.UserID }); err != nil {
		return err
	}
	return s.repo.DeleteIncome(ctx, id)
}

// Investments

func (s *Service) ListInvestments(ctx context.Context) ([]models.Investment, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListInvestments(ctx, userID)
}

func (s *Service) CreateInvestment(ctx context.Context, inv *models.Investment) error {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return err
	}
	inv.UserID = userID
	inv.Type = strings.ToLower(strings.TrimSpace(inv.Type))
	return s.repo.CreateInvestment(ctx, inv)
}

func (s *Service) UpdateInvestment(ctx context.Context, id int64, u models.InvestmentUpdate) (*models.Investment, error) {
	inv, err := ownedRecord(ctx, s.repo.GetInvestment, id, func(inv *models.Investment) int64 { return inv.UserID })
	if err != nil {
		return nil, err
	}
	u.Apply(inv)
	if err := s.repo.UpdateInvestment(ctx, inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (s *Service) DeleteInvestment(ctx context.Context, id int64) error {
	if _, err := ownedRecord(ctx, s.repo.GetInvestment, id, func(inv *models.Investment) int64 { return inv.UserID }); err != nil {
		return err
	}
	return s.repo.DeleteInvestment(ctx, id)
}

// Budgets

func (s *Service) ListBudgets(ctx context.Context) ([]models.Budget, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBudgets(ctx, userID)
}

func (s *Service) CreateBudget(ctx context.Context, b *models.Budget) error {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return err
	}
	b.UserID = userID
	if b.Spent == "" {
		b.Spent = "0"
	}
	return s.repo.CreateBudget(ctx, b)
}

func (s *Service) UpdateBudget(ctx context.Context, id int64, u models.BudgetUpdate) (*models.Budget, error) {
	b, err := ownedRecord(ctx, s.repo.GetBudget, id, func(b *models.Budget) int64 { return b.UserID })
	if err != nil {
		return nil, err
	}
	u.Apply(b)
	if err := s.repo.UpdateBudget(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) DeleteBudget(ctx context.Context, id int64) error {
	if _, err := ownedRecord(ctx, s.repo.GetBudget, id, func(b *models.Budget) int64 { return b.UserID }); err != nil {
		return err
	}
	return s.repo.DeleteBudget(ctx, id)
}
