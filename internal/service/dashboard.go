package service

import (
	"context"
	"strings"

	"github.com/Dan9191/fintrack/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	defaultBillCategory = "Bills & Utilities"
	recentItems         = 5
)

var currencySymbols = strings.NewReplacer("$", "", ",", "", "€", "", "£", "", "¥", "")

// parseAmount reads a stored amount, tolerating currency symbols and
// thousands separators. Unreadable amounts count as zero.
func parseAmount(amount string) decimal.Decimal {
	clean := strings.TrimSpace(currencySymbols.Replace(amount))
	if clean == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero
	}
	return d
}

type cashFlow struct {
	incomeFromRecords      decimal.Decimal
	incomeFromTransactions decimal.Decimal
	transactionExpenses    decimal.Decimal
	billExpenses           decimal.Decimal
}

func (c cashFlow) income() decimal.Decimal   { return c.incomeFromRecords.Add(c.incomeFromTransactions) }
func (c cashFlow) expenses() decimal.Decimal { return c.transactionExpenses.Add(c.billExpenses) }

// savingsRate returns net cash flow as a percentage of income, 0 without income
func (c cashFlow) savingsRate() float64 {
	income := c.income()
	if !income.IsPositive() {
		return 0
	}
	return income.Sub(c.expenses()).Div(income).Mul(decimal.NewFromInt(100)).InexactFloat64()
}

func (c cashFlow) summary() models.CashFlowSummary {
	return models.CashFlowSummary{
		TotalIncome:            c.income().InexactFloat64(),
		IncomeFromRecords:      c.incomeFromRecords.InexactFloat64(),
		IncomeFromTransactions: c.incomeFromTransactions.InexactFloat64(),
		TotalExpenses:          c.expenses().InexactFloat64(),
		TransactionExpenses:    c.transactionExpenses.InexactFloat64(),
		BillExpenses:           c.billExpenses.InexactFloat64(),
	}
}

// summarizeCashFlow totals active income sources, income and expense
// transactions, and every bill regardless of status
func summarizeCashFlow(txs []models.Transaction, bills []models.Bill, incomes []models.Income) cashFlow {
	var c cashFlow
	for _, i := range incomes {
		if i.IsActive {
			c.incomeFromRecords = c.incomeFromRecords.Add(parseAmount(i.Amount))
		}
	}
	for _, t := range txs {
		switch {
		case strings.EqualFold(t.Type, "income"):
			c.incomeFromTransactions = c.incomeFromTransactions.Add(parseAmount(t.Amount))
		case strings.EqualFold(t.Type, "expense"):
			c.transactionExpenses = c.transactionExpenses.Add(parseAmount(t.Amount))
		}
	}
	for _, b := range bills {
		c.billExpenses = c.billExpenses.Add(parseAmount(b.Amount))
	}
	return c
}

func sumInvestments(investments []models.Investment) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investments {
		total = total.Add(parseAmount(inv.CurrentValue))
	}
	return total
}

// Dashboard rolls recurring bills forward and returns the dashboard totals
func (s *Service) Dashboard(ctx context.Context) (*models.DashboardSummary, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.AutoPopulateNextCycleBills(ctx, userID); err != nil {
		s.log.Warnf("Failed to populate recurring bills for user %d: %v", userID, err)
	}

	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":      userID,
		"incomes":      len(snap.incomes),
		"transactions": len(snap.transactions),
		"bills":        len(snap.bills),
		"investments":  len(snap.investments),
	}).Debug("Dashboard calculation")

	flow := summarizeCashFlow(snap.transactions, snap.bills, snap.incomes)
	investments := sumInvestments(snap.investments)

	breakdown := make(map[string]decimal.Decimal)
	for _, t := range snap.transactions {
		if strings.EqualFold(t.Type, "expense") {
			breakdown[t.Category] = breakdown[t.Category].Add(parseAmount(t.Amount))
		}
	}
	for _, b := range snap.bills {
		category := strings.TrimSpace(b.Category)
		if category == "" {
			category = defaultBillCategory
		}
		breakdown[category] = breakdown[category].Add(parseAmount(b.Amount))
	}
	categoryBreakdown := make(map[string]float64, len(breakdown))
	for k, v := range breakdown {
		categoryBreakdown[k] = v.InexactFloat64()
	}

	return &models.DashboardSummary{
		TotalBalance:           flow.income().Sub(flow.expenses()).Add(investments).InexactFloat64(),
		MonthlyIncome:          flow.income().InexactFloat64(),
		MonthlyExpenses:        flow.expenses().InexactFloat64(),
		IncomeFromRecords:      flow.incomeFromRecords.InexactFloat64(),
		IncomeFromTransactions: flow.incomeFromTransactions.InexactFloat64(),
		TransactionExpenses:    flow.transactionExpenses.InexactFloat64(),
		BillExpenses:           flow.billExpenses.InexactFloat64(),
		SavingsRate:            flow.savingsRate(),
		CategoryBreakdown:      categoryBreakdown,
		TotalInvestments:       investments.InexactFloat64(),
		RecentTransactions:     lastReversed(snap.transactions, recentItems),
		RecentBills:            lastReversed(snap.bills, recentItems),
	}, nil
}

// lastReversed returns the last n items, newest first
func lastReversed[T any](items []T, n int) []T {
	start := len(items) - n
	if start < 0 {
		start = 0
	}
	out := make([]T, 0, len(items)-start)
	for i := len(items) - 1; i >= start; i-- {
		out = append(out, items[i])
	}
	return out
}
