package service

import (
	"context"
	"errors"
	"time"

	"github.com/Dan9191/fintrack/internal/config"
	"github.com/Dan9191/fintrack/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("record belongs to another user")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidInput       = errors.New("invalid input")
)

// Store is the persistence the service needs. *repository.Repository
// implements it.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	CreateTransaction(ctx context.Context, t *models.Transaction) error
	UpdateTransaction(ctx context.Context, t *models.Transaction) error
	DeleteTransaction(ctx context.Context, id int64) error

	ListBills(ctx context.Context, userID int64) ([]models.Bill, error)
	GetBill(ctx context.Context, id int64) (*models.Bill, error)
	CreateBill(ctx context.Context, b *models.Bill) error
	UpdateBill(ctx context.Context, b *models.Bill) error
	DeleteBill(ctx context.Context, id int64) error

	ListIncomes(ctx context.Context, userID int64) ([]models.Income, error)
	GetIncome(ctx context.Context, id int64) (*models.Income, error)
	CreateIncome(ctx context.Context, i *models.Income) error
	UpdateIncome(ctx context.Context, i *models.Income) error
	DeleteIncome(ctx context.Context, id int64) error

	ListInvestments(ctx context.Context, userID int64) ([]models.Investment, error)
	GetInvestment(ctx context.Context, id int64) (*models.Investment, error)
	CreateInvestment(ctx context.Context, inv *models.Investment) error
	UpdateInvestment(ctx context.Context, inv *models.Investment) error
	DeleteInvestment(ctx context.Context, id int64) error

	ListBudgets(ctx context.Context, userID int64) ([]models.Budget, error)
	GetBudget(ctx context.Context, id int64) (*models.Budget, error)
	CreateBudget(ctx context.Context, b *models.Budget) error
	UpdateBudget(ctx context.Context, b *models.Budget) error
	DeleteBudget(ctx context.Context, id int64) error
}

// Service handles business logic
type Service struct {
	repo   Store
	log    *logrus.Logger
	config *config.Config
	now    func() time.Time
}

// NewService initializes a new service
func NewService(repo Store, log *logrus.Logger, cfg *config.Config) *Service {
	return &Service{repo: repo, log: log, config: cfg, now: time.Now}
}

type ctxKey struct{}

// WithUserID returns a context carrying the authenticated user's id
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, ctxKey{}, userID)
}

// UserIDFromContext returns the authenticated user's id
func UserIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(ctxKey{}).(int64)
	if !ok || id == 0 {
		return 0, ErrUnauthorized
	}
	return id, nil
}

// today returns the current date at midnight UTC
func (s *Service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
