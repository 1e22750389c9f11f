package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Dan9191/fintrack/internal/models"
)

// table is one in-memory relation keyed by id
type table[T any] struct {
	kind  string
	rows  []T
	id    func(*T) *int64
	owner func(*T) int64
}

func (t *table[T]) list(userID int64) []T {
	out := []T{}
	for i := range t.rows {
		if t.owner(&t.rows[i]) == userID {
			out = append(out, t.rows[i])
		}
	}
	return out
}

func (t *table[T]) get(id int64) (*T, error) {
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			row := t.rows[i]
			return &row, nil
		}
	}
	return nil, fmt.Errorf("%s %d: %w", t.kind, id, ErrNotFound)
}

func (t *table[T]) insert(row *T, id int64) {
	*t.id(row) = id
	t.rows = append(t.rows, *row)
}

func (t *table[T]) update(row *T) error {
	id := *t.id(row)
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			t.rows[i] = *row
			return nil
		}
	}
	return fmt.Errorf("update %s: %w", t.kind, ErrNotFound)
}

func (t *table[T]) remove(id int64) error {
	for i := range t.rows {
		if *t.id(&t.rows[i]) == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("delete %s: %w", t.kind, ErrNotFound)
}

// Memory is an in-memory implementation of the repository, used when no
// database is configured and in tests. Data is lost on restart.
type Memory struct {
	mu           sync.Mutex
	nextID       int64
	users        []models.User
	transactions table[models.Transaction]
	bills        table[models.Bill]
	incomes      table[models.Income]
	investments  table[models.Investment]
	budgets      table[models.Budget]
}

// NewMemory creates an empty in-memory repository
func NewMemory() *Memory {
	return &Memory{
		transactions: table[models.Transaction]{
			kind:  "transaction",
			id:    func(t *models.Transaction) *int64 { return &t.ID },
			owner: func(t *models.Transaction) int64 { return t.UserID },
		},
		bills: table[models.Bill]{
			kind:  "bill",
			id:    func(b *models.Bill) *int64 { return &b.ID },
			owner: func(b *models.Bill) int64 { return b.UserID },
		},
		incomes: table[models.Income]{
			kind:  "income",
			id:    func(i *models.Income) *int64 { return &i.ID },
			owner: func(i *models.Income) int64 { return i.UserID },
		},
		investments: table[models.Investment]{
			kind:  "investment",
			id:    func(inv *models.Investment) *int64 { return &inv.ID },
			owner: func(inv *models.Investment) int64 { return inv.UserID },
		},
		budgets: table[models.Budget]{
			kind:  "budget",
			id:    func(b *models.Budget) *int64 { return &b.ID },
			owner: func(b *models.Budget) int64 { return b.UserID },
		},
	}
}

func (m *Memory) newID() int64 {
	m.nextID++
	return m.nextID
}

func (m *Memory) CreateUser(_ context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == user.Username {
			return fmt.Errorf("failed to create user %q: %w", user.Username, ErrDuplicate)
		}
	}
	user.ID = m.newID()
	user.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	m.users = append(m.users, *user)
	return nil
}

func (m *Memory) FindUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", ErrNotFound)
}

func (m *Memory) FindUserByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user: %w", ErrNotFound)
}

func (m *Memory) ListUsers(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.User(nil), m.users...), nil
}

// Transactions

func (m *Memory) ListTransactions(_ context.Context, userID int64) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions.list(userID), nil
}

func (m *Memory) GetTransaction(_ context.Context, id int64) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions.get(id)
}

func (m *Memory) CreateTransaction(_ context.Context, t *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	t.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	m.transactions.insert(t, m.newID())
	return nil
}

func (m *Memory) UpdateTransaction(_ context.Context, t *models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions.update(t)
}

func (m *Memory) DeleteTransaction(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transactions.remove(id)
}

// Bills

func (m *Memory) ListBills(_ context.Context, userID int64) ([]models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bills.list(userID), nil
}

func (m *Memory) GetBill(_ context.Context, id int64) (*models.Bill, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bills.get(id)
}

func (m *Memory) CreateBill(_ context.Context, b *models.Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bills.insert(b, m.newID())
	return nil
}

func (m *Memory) UpdateBill(_ context.Context, b *models.Bill) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bills.update(b)
}

func (m *Memory) DeleteBill(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bills.remove(id)
}

// Incomes

func (m *Memory) ListIncomes(_ context.Context, userID int64) ([]models.Income, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incomes.list(userID), nil
}

func (m *Memory) GetIncome(_ context.Context, id int64) (*models.Income, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incomes.get(id)
}

func (m *Memory) CreateIncome(_ context.Context, i *models.Income) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.incomes.insert(i, m.newID())
	return nil
}

func (m *Memory) UpdateIncome(_ context.Context, i *models.Income) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incomes.update(i)
}

func (m *Memory) DeleteIncome(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.incomes.remove(id)
}

// Investments

func (m *Memory) ListInvestments(_ context.Context, userID int64) ([]models.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.investments.list(userID), nil
}

func (m *Memory) GetInvestment(_ context.Context, id int64) (*models.Investment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.investments.get(id)
}

func (m *Memory) CreateInvestment(_ context.Context, inv *models.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.investments.insert(inv, m.newID())
	return nil
}

func (m *Memory) UpdateInvestment(_ context.Context, inv *models.Investment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.investments.update(inv)
}

func (m *Memory) DeleteInvestment(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.investments.remove(id)
}

// Budgets

func (m *Memory) ListBudgets(_ context.Context, userID int64) ([]models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.budgets.list(userID), nil
}

func (m *Memory) GetBudget(_ context.Context, id int64) (*models.Budget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.budgets.get(id)
}

func (m *Memory) CreateBudget(_ context.Context, b *models.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.budgets.insert(b, m.newID())
	return nil
}

func (m *Memory) UpdateBudget(_ context.Context, b *models.Budget) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.budgets.update(b)
}

func (m *Memory) DeleteBudget(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.budgets.remove(id)
}
