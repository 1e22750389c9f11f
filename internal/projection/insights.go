package projection

import "math"

const (
	// share of the monthly savings potential assumed to go toward bills
	debtRepaymentShare = 0.4
	sipExampleYears    = 10
)

// CalculateInsightMetrics derives the insight figures from a snapshot.
//
// monthlyExpenses adds every expense transaction supplied, regardless of
// date, to the unpaid (pending or overdue) bills. Invested assets compound at
// the nominal expected return while the yearly savings surplus compounds once
// a year at the real rate (expected return minus inflation).
func CalculateInsightMetrics(in InsightInput) InsightMetrics {
	var m InsightMetrics

	for _, inv := range in.Investments {
		value := ToNumber(inv.CurrentValue)
		m.TotalInvestedAssets += value
		switch inv.Type.Bucket() {
		case RiskEquityLike:
			m.RiskExposureSummary.EquityLikeAssets += value
		case RiskStable:
			m.RiskExposureSummary.StableAssets += value
		}
	}

	for _, inc := range in.Incomes {
		m.MonthlyIncome += ToNumber(inc.Amount)
	}

	var expenseFromTransactions float64
	for _, t := range in.Transactions {
		if t.IsExpense() {
			expenseFromTransactions += ToNumber(t.Amount)
		}
	}

	var monthlyBills float64
	for _, b := range in.Bills {
		if !b.IsPaid() {
			monthlyBills += ToNumber(b.Amount)
		}
	}

	m.MonthlyExpenses = expenseFromTransactions + monthlyBills
	m.MonthlySavingsPotential = math.Max(m.MonthlyIncome-m.MonthlyExpenses, 0)

	a := in.Assumptions
	netWorthAt := func(years float64) float64 {
		assets := CompoundFutureValue(m.TotalInvestedAssets, a.ExpectedReturn, years, 1)
		savings := CompoundFutureValue(m.MonthlySavingsPotential*12, a.ExpectedReturn-a.Inflation, years, 1)
		return assets + savings
	}
	m.ProjectedNetWorth = NetWorthProjection{
		One:  netWorthAt(1),
		Five: netWorthAt(5),
		Ten:  netWorthAt(10),
	}

	if monthlyBills > 0 {
		denominator := math.Max(m.MonthlySavingsPotential*debtRepaymentShare, 1)
		m.ExpectedDebtReductionTimelineMonths = int(math.Ceil(monthlyBills * 12 / denominator))
	}

	m.SIPCorpusExample = SIPFutureValue(m.MonthlySavingsPotential, a.ExpectedReturn, sipExampleYears, 12)

	return m
}
