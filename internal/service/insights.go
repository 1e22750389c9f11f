package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Dan9191/fintrack/internal/models"
	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/shopspring/decimal"
)

const (
	pfInterestRate    = 8.25
	defaultAgeNoPF    = 30
	savingsPerYear    = 12
	pfTypeIdentifier  = "pf"
	retirementKeyPref = "age"
)

var retirementAges = []int{50, 55, 60}

var (
	// share of monthly savings suggested for investing
	investmentShare = decimal.RequireFromString("0.3")

	// flat growth of current assets at 1, 5 and 10 years
	assetGrowth = [3]decimal.Decimal{
		decimal.RequireFromString("1.07"),
		decimal.RequireFromString("1.4"),
		decimal.RequireFromString("1.97"),
	}

	horizonMonths = [3]int64{12, 60, 120}
)

var (
	savingsInsights = []string{
		"Your spending on Food & Dining is 15% above average",
		"Consider setting up automatic savings transfers",
		"Your emergency fund should cover 3-6 months of expenses",
	}

	investmentRecommendations = []string{
		"Consider increasing your 401(k) contribution",
		"Diversify your investment portfolio",
		"Look into index funds for long-term growth",
	}
)

func horizons(f func(i int) decimal.Decimal) models.HorizonProjection {
	return models.HorizonProjection{
		OneYear:   f(0).InexactFloat64(),
		FiveYears: f(1).InexactFloat64(),
		TenYears:  f(2).InexactFloat64(),
	}
}

type snapshot struct {
	transactions []models.Transaction
	bills        []models.Bill
	incomes      []models.Income
	investments  []models.Investment
}

func (s *Service) loadSnapshot(ctx context.Context, userID int64) (*snapshot, error) {
	var (
		snap snapshot
		err  error
	)
	if snap.transactions, err = s.repo.ListTransactions(ctx, userID); err != nil {
		return nil, err
	}
	if snap.bills, err = s.repo.ListBills(ctx, userID); err != nil {
		return nil, err
	}
	if snap.incomes, err = s.repo.ListIncomes(ctx, userID); err != nil {
		return nil, err
	}
	if snap.investments, err = s.repo.ListInvestments(ctx, userID); err != nil {
		return nil, err
	}
	return &snap, nil
}

// insightInput converts a snapshot into the projection engine's records.
// Every income entry is passed through, matching what the incomes list shows.
func (snap *snapshot) insightInput(a projection.Assumptions) projection.InsightInput {
	in := projection.InsightInput{
		Transactions: make([]projection.Transaction, 0, len(snap.transactions)),
		Bills:        make([]projection.Bill, 0, len(snap.bills)),
		Incomes:      make([]projection.Income, 0, len(snap.incomes)),
		Investments:  make([]projection.Investment, 0, len(snap.investments)),
		Assumptions:  a,
	}
	for _, t := range snap.transactions {
		in.Transactions = append(in.Transactions, t.Projection())
	}
	for _, b := range snap.bills {
		in.Bills = append(in.Bills, b.Projection())
	}
	for _, i := range snap.incomes {
		in.Incomes = append(in.Incomes, i.Projection())
	}
	for _, inv := range snap.investments {
		in.Investments = append(in.Investments, inv.Projection())
	}
	return in
}

// DefaultAssumptions returns the configured assumptions used when the caller
// supplies none
func (s *Service) DefaultAssumptions() projection.Assumptions {
	return s.config.DefaultAssumptions
}

// InsightMetrics runs the projection engine over the caller's records
func (s *Service) InsightMetrics(ctx context.Context, a projection.Assumptions) (*projection.InsightMetrics, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	metrics := projection.CalculateInsightMetrics(snap.insightInput(a))
	return &metrics, nil
}

// SIPProjection tabulates a monthly SIP at the standard horizons
func (s *Service) SIPProjection(monthlyInstallment, annualRatePercent float64) []projection.ProjectionPoint {
	return projection.ProjectSIP(monthlyInstallment, annualRatePercent, projection.ProjectionYears)
}

// Insights returns the savings overview with the standing advice lists
func (s *Service) Insights(ctx context.Context) (*models.Insights, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	flow := summarizeCashFlow(snap.transactions, snap.bills, snap.incomes)
	savings := flow.income().Sub(flow.expenses())

	return &models.Insights{
		CurrentSavingsRate:          flow.savingsRate(),
		ProjectedMonthlySavings:     savings.InexactFloat64(),
		ProjectedAnnualSavings:      savings.Mul(decimal.NewFromInt(savingsPerYear)).InexactFloat64(),
		RecommendedInvestmentAmount: savings.Mul(investmentShare).InexactFloat64(),
		CashFlowSummary:             flow.summary(),
		Insights:                    savingsInsights,
		InvestmentRecommendations:   investmentRecommendations,
	}, nil
}

// NetWorthProjection grows net savings plus investments by the flat
// 1.07, 1.4 and 1.97 multipliers
func (s *Service) NetWorthProjection(ctx context.Context) (*models.NetWorthProjection, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	flow := summarizeCashFlow(snap.transactions, snap.bills, snap.incomes)
	savings := flow.income().Sub(flow.expenses())
	assets := savings.Add(sumInvestments(snap.investments))
	projected := horizons(func(i int) decimal.Decimal { return assets.Mul(assetGrowth[i]) })

	return &models.NetWorthProjection{
		CurrentAssets:      assets.InexactFloat64(),
		CurrentSavingsRate: flow.savingsRate(),
		CurrentSavings:     savings.InexactFloat64(),
		CashFlowSummary:    flow.summary(),
		ProjectedNetWorth:  projected,
		FutureNetWorth:     projected,
	}, nil
}

// SavingsProjection projects the caller's provident fund balance to the
// retirement ages. The PF principal includes balances held with current and
// previous employers; the current age is the value-weighted mean of the ages
// recorded on each PF holding.
func (s *Service) SavingsProjection(ctx context.Context) (*models.SavingsProjection, error) {
	userID, err := UserIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	snap, err := s.loadSnapshot(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load records: %w", err)
	}

	flow := summarizeCashFlow(snap.transactions, snap.bills, snap.incomes)
	currentSavings := flow.income().Sub(flow.expenses())
	investments := sumInvestments(snap.investments)

	var currentPF, currentCompany, previousCompany, weightedAge decimal.Decimal
	for _, inv := range snap.investments {
		if !strings.EqualFold(strings.TrimSpace(inv.Type), pfTypeIdentifier) {
			continue
		}
		value := parseAmount(inv.CurrentValue)
		currentPF = currentPF.Add(value)
		currentCompany = currentCompany.Add(parseAmount(inv.PFCurrentCompany))
		previousCompany = previousCompany.Add(parseAmount(inv.PFPreviousCompany))
		weightedAge = weightedAge.Add(value.Mul(parseAmount(inv.PFCurrentAge)))
	}
	principal := currentPF.Add(currentCompany).Add(previousCompany).InexactFloat64()

	age := float64(defaultAgeNoPF)
	if currentPF.IsPositive() {
		age = weightedAge.Div(currentPF).InexactFloat64()
	}

	retirement := make(map[string]float64, len(retirementAges))
	for _, retireAt := range retirementAges {
		years := math.Max(0, float64(retireAt)-age)
		retirement[fmt.Sprintf("%s%d", retirementKeyPref, retireAt)] =
			projection.CompoundFutureValue(principal, pfInterestRate, years, 1)
	}

	// months of savings plus investments grown by the flat multipliers
	future := horizons(func(i int) decimal.Decimal {
		return currentSavings.Mul(decimal.NewFromInt(horizonMonths[i])).Add(investments.Mul(assetGrowth[i]))
	})

	return &models.SavingsProjection{
		CurrentSavings:          currentSavings.InexactFloat64(),
		ProjectedMonthlySavings: currentSavings.InexactFloat64(),
		ProjectedAnnualSavings:  currentSavings.Mul(decimal.NewFromInt(savingsPerYear)).InexactFloat64(),
		TotalInvestments:        investments.InexactFloat64(),
		CashFlowSummary:         flow.summary(),
		FutureNetWorth:          future,
		PFInterestRate:          pfInterestRate,
		PFPrincipal:             principal,
		PFCurrentCompanyTotal:   currentCompany.InexactFloat64(),
		PFPreviousCompanyTotal:  previousCompany.InexactFloat64(),
		PFInferredCurrentAge:    age,
		PFRetirementProjection:  retirement,
	}, nil
}
