package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/Dan9191/fintrack/internal/models"
	"github.com/Dan9191/fintrack/internal/service"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const runTimeout = 5 * time.Minute

// BillService is the part of the service the daily job drives
type BillService interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	AutoPopulateNextCycleBills(ctx context.Context, userID int64) ([]models.Bill, error)
	MarkOverdueBills(ctx context.Context, userID int64) (int, error)
	DueBillReminders(ctx context.Context, userID int64, days int) ([]service.BillReminder, error)
}

// Notifier delivers bill reminders
type Notifier interface {
	SendBillReminder(user models.User, bill models.Bill, dueDate time.Time, isOverdue bool) error
}

// Summary counts what one run did
type Summary struct {
	Users         int
	BillsCreated  int
	BillsOverdue  int
	RemindersSent int
	Failures      int
}

// Scheduler runs the bill maintenance job on a cron schedule
type Scheduler struct {
	cron         *cron.Cron
	bills        BillService
	notifier     Notifier
	reminderDays int
	log          *logrus.Logger
}

// New creates a scheduler. A nil notifier disables reminder emails.
func New(bills BillService, notifier Notifier, reminderDays int, log *logrus.Logger) *Scheduler {
	cronLog := cron.PrintfLogger(log)
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
		bills:        bills,
		notifier:     notifier,
		reminderDays: reminderDays,
		log:          log,
	}
}

// Start schedules the job with a standard five-field cron spec and starts
// the cron loop
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("failed to schedule bill job %q: %w", spec, err)
	}
	s.cron.Start()
	s.log.Infof("Bill scheduler started with spec %q", spec)
	return nil
}

// Stop halts the cron loop and returns a context that is done once a running
// job finishes
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()
	s.RunOnce(ctx)
}

// RunOnce rolls recurring bills forward, marks overdue bills and sends
// reminders for every user. A failure for one user does not stop the others.
func (s *Scheduler) RunOnce(ctx context.Context) Summary {
	var sum Summary

	users, err := s.bills.ListUsers(ctx)
	if err != nil {
		s.log.Errorf("Scheduler failed to list users: %v", err)
		sum.Failures++
		return sum
	}
	sum.Users = len(users)

	for _, user := range users {
		created, err := s.bills.AutoPopulateNextCycleBills(ctx, user.ID)
		sum.BillsCreated += len(created)
		if err != nil {
			s.log.Errorf("Failed to populate recurring bills for user %d: %v", user.ID, err)
			sum.Failures++
		}

		marked, err := s.bills.MarkOverdueBills(ctx, user.ID)
		sum.BillsOverdue += marked
		if err != nil {
			s.log.Errorf("Failed to mark overdue bills for user %d: %v", user.ID, err)
			sum.Failures++
		}

		if s.notifier == nil || user.Email == "" {
			continue
		}
		reminders, err := s.bills.DueBillReminders(ctx, user.ID, s.reminderDays)
		if err != nil {
			s.log.Errorf("Failed to collect reminders for user %d: %v", user.ID, err)
			sum.Failures++
			continue
		}
		for _, r := range reminders {
			if err := s.notifier.SendBillReminder(user, r.Bill, r.DueDate, r.Overdue); err != nil {
				sum.Failures++
				continue
			}
			sum.RemindersSent++
		}
	}

	s.log.WithFields(logrus.Fields{
		"users":          sum.Users,
		"bills_created":  sum.BillsCreated,
		"bills_overdue":  sum.BillsOverdue,
		"reminders_sent": sum.RemindersSent,
		"failures":       sum.Failures,
	}).Info("Bill scheduler run finished")
	return sum
}
