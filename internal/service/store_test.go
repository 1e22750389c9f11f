package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/Dan9191/fintrack/internal/config"
	"github.com/Dan9191/fintrack/internal/models"
	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/Dan9191/fintrack/internal/repository"
	"github.com/sirupsen/logrus"
)

var (
	_ Store = (*repository.Repository)(nil)
	_ Store = (*repository.Memory)(nil)
)

var fixedNow = time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)

// failingStore rejects every new transaction
type failingStore struct {
	*repository.Memory
}

func (failingStore) CreateTransaction(context.Context, *models.Transaction) error {
	return errors.New("failed to create transaction: connection reset")
}

// lateUniqueStore misses the username lookup, so duplicates only surface
// when the insert hits the unique key
type lateUniqueStore struct {
	*repository.Memory
}

func (lateUniqueStore) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	return nil, fmt.Errorf("user %q: %w", username, repository.ErrNotFound)
}

func newTestServiceWith(t *testing.T, store Store) *Service {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	cfg := &config.Config{
		JWTSecret:          "test-secret",
		JWTTTL:             time.Hour,
		DefaultAssumptions: projection.DefaultAssumptions(),
	}
	svc := NewService(store, log, cfg)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func newTestService(t *testing.T) (*Service, *repository.Memory) {
	t.Helper()
	store := repository.NewMemory()
	return newTestServiceWith(t, store), store
}

func seedBills(t *testing.T, store Store, bills ...models.Bill) {
	t.Helper()
	for i := range bills {
		if err := store.CreateBill(context.Background(), &bills[i]); err != nil {
			t.Fatalf("seed bill: %v", err)
		}
	}
}

func seedTransactions(t *testing.T, store Store, txs ...models.Transaction) {
	t.Helper()
	for i := range txs {
		if err := store.CreateTransaction(context.Background(), &txs[i]); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
}

func seedIncomes(t *testing.T, store Store, incomes ...models.Income) {
	t.Helper()
	for i := range incomes {
		if err := store.CreateIncome(context.Background(), &incomes[i]); err != nil {
			t.Fatalf("seed income: %v", err)
		}
	}
}

func seedInvestments(t *testing.T, store Store, investments ...models.Investment) {
	t.Helper()
	for i := range investments {
		if err := store.CreateInvestment(context.Background(), &investments[i]); err != nil {
			t.Fatalf("seed investment: %v", err)
		}
	}
}
