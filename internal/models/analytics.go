package models

// DashboardSummary represents the dashboard totals
type DashboardSummary struct {
	TotalBalance           float64            `json:"totalBalance"`
	MonthlyIncome          float64            `json:"monthlyIncome"`
	MonthlyExpenses        float64            `json:"monthlyExpenses"`
	IncomeFromRecords      float64            `json:"incomeFromRecords"`
	IncomeFromTransactions float64            `json:"incomeFromTransactions"`
	TransactionExpenses    float64            `json:"transactionExpenses"`
	BillExpenses           float64            `json:"billExpenses"`
	SavingsRate            float64            `json:"savingsRate"` // percent of income
	CategoryBreakdown      map[string]float64 `json:"categoryBreakdown"`
	TotalInvestments       float64            `json:"totalInvestments"`
	RecentTransactions     []Transaction      `json:"recentTransactions"`
	RecentBills            []Bill             `json:"recentBills"`
}

// CashFlowSummary splits income and expenses by source. Income records
// count only while active; every bill counts as an expense.
type CashFlowSummary struct {
	TotalIncome            float64 `json:"totalIncome"`
	IncomeFromRecords      float64 `json:"incomeFromRecords"`
	IncomeFromTransactions float64 `json:"incomeFromTransactions"`
	TotalExpenses          float64 `json:"totalExpenses"`
	TransactionExpenses    float64 `json:"transactionExpenses"`
	BillExpenses           float64 `json:"billExpenses"`
}

// HorizonProjection holds a value at the 1, 5 and 10 year horizons
type HorizonProjection struct {
	OneYear   float64 `json:"oneYear"`
	FiveYears float64 `json:"fiveYears"`
	TenYears  float64 `json:"tenYears"`
}

// Insights represents the savings overview and the advice shown with it
type Insights struct {
	CurrentSavingsRate          float64 `json:"currentSavingsRate"`
	ProjectedMonthlySavings     float64 `json:"projectedMonthlySavings"`
	ProjectedAnnualSavings      float64 `json:"projectedAnnualSavings"`
	RecommendedInvestmentAmount float64 `json:"recommendedInvestmentAmount"`
	CashFlowSummary
	Insights                  []string `json:"insights"`
	InvestmentRecommendations []string `json:"investmentRecommendations"`
}

// SavingsProjection represents the savings outlook and the provident fund
// retirement projection
type SavingsProjection struct {
	CurrentSavings          float64 `json:"currentSavings"`
	ProjectedMonthlySavings float64 `json:"projectedMonthlySavings"`
	ProjectedAnnualSavings  float64 `json:"projectedAnnualSavings"`
	TotalInvestments        float64 `json:"totalInvestments"`
	CashFlowSummary
	FutureNetWorth         HorizonProjection  `json:"futureNetWorth"`
	PFInterestRate         float64            `json:"pfInterestRate"`
	PFPrincipal            float64            `json:"pfPrincipal"`
	PFCurrentCompanyTotal  float64            `json:"pfCurrentCompanyTotal"`
	PFPreviousCompanyTotal float64            `json:"pfPreviousCompanyTotal"`
	PFInferredCurrentAge   float64            `json:"pfInferredCurrentAge"`
	PFRetirementProjection map[string]float64 `json:"pfRetirementProjection"` // keyed "age50", "age55", "age60"
}

// NetWorthProjection grows current assets (net savings plus investments) by
// fixed multipliers. Debts are not tracked, so CurrentDebts is always 0.
type NetWorthProjection struct {
	CurrentAssets      float64 `json:"currentAssets"`
	CurrentDebts       float64 `json:"currentDebts"`
	CurrentSavingsRate float64 `json:"currentSavingsRate"`
	CurrentSavings     float64 `json:"currentSavings"`
	CashFlowSummary
	ProjectedNetWorth HorizonProjection `json:"projectedNetWorth"`
	FutureNetWorth    HorizonProjection `json:"futureNetWorth"`
}

// ImportResult summarizes a CSV import
type ImportResult struct {
	Imported int `json:"imported"`
	Total    int `json:"total"`
}

// ReferenceRate is the central bank key rate plus bank margin
type ReferenceRate struct {
	KeyRate float64 `json:"keyRate"`
	Margin  float64 `json:"margin"`
	Rate    float64 `json:"rate"`
	Cached  bool    `json:"cached"`
}
