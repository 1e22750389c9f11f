package service

import (
	"context"
	"strings"
	"time"

	"github.com/Dan9191/fintrack/internal/models"
)

const dateLayout = "2006-01-02"

// addMonthClamped moves t one month ahead, clamping to the last day of the
// target month (Jan 31 -> Feb 28)
func addMonthClamped(t time.Time) time.Time {
	y, m, d := t.Date()
	firstOfNext := time.Date(y, m+1, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfNext.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfNext.Year(), firstOfNext.Month(), d, 0, 0, 0, 0, time.UTC)
}

func parseDueDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type billSeries struct {
	name, category, amount string
}

// AutoPopulateNextCycleBills creates the next monthly occurrence of each
// recurring bill series once the series' latest bill falls in the current
// month or earlier. A series is the set of recurring bills sharing name,
// category and amount. New bills are "paid" when autopay is on and
// "pending" otherwise.
func (s *Service) AutoPopulateNextCycleBills(ctx context.Context, userID int64) ([]models.Bill, error) {
	bills, err := s.repo.ListBills(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing := make(map[billSeries]map[string]bool)
	latest := make(map[billSeries]models.Bill)
	latestDue := make(map[billSeries]time.Time)
	var order []billSeries

	for _, b := range bills {
		key := billSeries{b.Name, b.Category, b.Amount}
		if existing[key] == nil {
			existing[key] = make(map[string]bool)
		}
		existing[key][b.DueDate] = true

		if !b.IsRecurring {
			continue
		}
		due, ok := parseDueDate(b.DueDate)
		if !ok {
			s.log.Debugf("Unable to parse bill due date: %q", b.DueDate)
			continue
		}
		prev, seen := latestDue[key]
		if !seen {
			order = append(order, key)
		}
		if !seen || due.After(prev) {
			latest[key] = b
			latestDue[key] = due
		}
	}

	today := s.today()
	var created []models.Bill
	for _, key := range order {
		due := latestDue[key]
		if due.Year() > today.Year() || (due.Year() == today.Year() && due.Month() > today.Month()) {
			continue
		}

		next := addMonthClamped(due).Format(dateLayout)
		if existing[key][next] {
			continue
		}

		source := latest[key]
		status := models.BillStatusPending
		if source.AutoPayEnabled {
			status = models.BillStatusPaid
		}
		bill := models.Bill{
			UserID:         userID,
			Name:           source.Name,
			Amount:         source.Amount,
			Category:       source.Category,
			DueDate:        next,
			Status:         status,
			IsRecurring:    true,
			AutoPayEnabled: source.AutoPayEnabled,
			Icon:           source.Icon,
			Color:          source.Color,
		}
		if err := s.repo.CreateBill(ctx, &bill); err != nil {
			return created, err
		}
		existing[key][next] = true
		created = append(created, bill)
		s.log.Infof("Created next cycle of bill %q for user %d due %s", bill.Name, userID, next)
	}
	return created, nil
}

// MarkOverdueBills flips pending bills whose due date has passed to overdue
func (s *Service) MarkOverdueBills(ctx context.Context, userID int64) (int, error) {
	bills, err := s.repo.ListBills(ctx, userID)
	if err != nil {
		return 0, err
	}
	today := s.today()
	marked := 0
	for i := range bills {
		b := &bills[i]
		if !strings.EqualFold(b.Status, models.BillStatusPending) {
			continue
		}
		due, ok := parseDueDate(b.DueDate)
		if !ok || !due.Before(today) {
			continue
		}
		b.Status = models.BillStatusOverdue
		if err := s.repo.UpdateBill(ctx, b); err != nil {
			return marked, err
		}
		marked++
	}
	if marked > 0 {
		s.log.Infof("Marked %d bills overdue for user %d", marked, userID)
	}
	return marked, nil
}

// BillReminder is a bill that needs a reminder email
type BillReminder struct {
	Bill    models.Bill
	DueDate time.Time
	Overdue bool
}

// DueBillReminders returns unpaid bills due within the next `days` days and
// bills already overdue
func (s *Service) DueBillReminders(ctx context.Context, userID int64, days int) ([]BillReminder, error) {
	bills, err := s.repo.ListBills(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := s.today()
	horizon := today.AddDate(0, 0, days)

	var reminders []BillReminder
	for _, b := range bills {
		if strings.EqualFold(b.Status, models.BillStatusPaid) {
			continue
		}
		due, ok := parseDueDate(b.DueDate)
		if !ok {
			continue
		}
		switch {
		case strings.EqualFold(b.Status, models.BillStatusOverdue) || due.Before(today):
			reminders = append(reminders, BillReminder{Bill: b, DueDate: due, Overdue: true})
		case !due.After(horizon):
			reminders = append(reminders, BillReminder{Bill: b, DueDate: due})
		}
	}
	return reminders, nil
}

// ListUsers returns every registered user
func (s *Service) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}
