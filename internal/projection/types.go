// Package projection derives savings, net-worth and risk figures from
// snapshots of a user's financial records. Everything here is pure: callers
// fetch the records, pass them in, and get a fresh result back.
package projection

import "strings"

// TransactionType carries the sign of a transaction; amounts are magnitudes.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// BillStatus is the settlement state of a bill.
type BillStatus string

const (
	BillPaid    BillStatus = "paid"
	BillPending BillStatus = "pending"
	BillOverdue BillStatus = "overdue"
)

// InvestmentType enumerates the holdings the app knows about.
type InvestmentType string

const (
	InvestmentPF         InvestmentType = "pf"
	InvestmentMutualFund InvestmentType = "mutual-fund"
	InvestmentStock      InvestmentType = "stock"
	InvestmentFD         InvestmentType = "fd"
	InvestmentCrypto     InvestmentType = "crypto"
	InvestmentGold       InvestmentType = "gold"
	InvestmentOther      InvestmentType = "other"
	InvestmentETF        InvestmentType = "etf"
	InvestmentBond       InvestmentType = "bond"
	InvestmentRealEstate InvestmentType = "real-estate"
)

// RiskBucket is the coarse risk class of an investment type.
type RiskBucket int

const (
	RiskUnclassified RiskBucket = iota
	RiskEquityLike
	RiskStable
)

// Bucket reports which risk bucket t falls into. etf, bond and real-estate
// are deliberately left unclassified and count toward neither bucket.
func (t InvestmentType) Bucket() RiskBucket {
	switch InvestmentType(strings.ToLower(string(t))) {
	case InvestmentStock, InvestmentMutualFund, InvestmentCrypto:
		return RiskEquityLike
	case InvestmentFD, InvestmentGold, InvestmentPF, InvestmentOther:
		return RiskStable
	default:
		return RiskUnclassified
	}
}

// Transaction is the engine's view of a ledger entry.
type Transaction struct {
	Type     TransactionType `json:"type"`
	Amount   Amount          `json:"amount"`
	Category string          `json:"category"`
	Date     string          `json:"date"`
}

// IsExpense compares case-insensitively.
func (t Transaction) IsExpense() bool {
	return strings.EqualFold(string(t.Type), string(TransactionExpense))
}

// Bill is the engine's view of a bill.
type Bill struct {
	Name     string     `json:"name"`
	Amount   Amount     `json:"amount"`
	Status   BillStatus `json:"status"`
	Category string     `json:"category"`
}

// IsPaid compares case-insensitively.
func (b Bill) IsPaid() bool {
	return strings.EqualFold(string(b.Status), string(BillPaid))
}

// Investment is the engine's view of a holding.
type Investment struct {
	Type         InvestmentType `json:"type"`
	CurrentValue Amount         `json:"currentValue"`
}

// Income is a recurring monthly income source.
type Income struct {
	Amount Amount `json:"amount"`
}

// Assumptions are the user-editable rate assumptions, in percent per year.
// ExpenseGrowth is surfaced for display and editing only; no formula reads it.
type Assumptions struct {
	ExpectedReturn float64 `json:"expectedReturn" toml:"expected_return"`
	Inflation      float64 `json:"inflation" toml:"inflation"`
	ExpenseGrowth  float64 `json:"expenseGrowth" toml:"expense_growth"`
}

// DefaultAssumptions returns 11% return, 5% inflation and 6% expense growth.
func DefaultAssumptions() Assumptions {
	return Assumptions{
		ExpectedReturn: 11,
		Inflation:      5,
		ExpenseGrowth:  6,
	}
}

// InsightInput is a full snapshot of one user's records.
type InsightInput struct {
	Investments  []Investment  `json:"investments"`
	Bills        []Bill        `json:"bills"`
	Transactions []Transaction `json:"transactions"`
	Incomes      []Income      `json:"incomes"`
	Assumptions  Assumptions   `json:"assumptions"`
}

// NetWorthProjection holds net worth at the 1, 5 and 10 year horizons.
type NetWorthProjection struct {
	One  float64 `json:"one"`
	Five float64 `json:"five"`
	Ten  float64 `json:"ten"`
}

// RiskExposure splits the portfolio into the two classified buckets. The two
// sums need not add up to TotalInvestedAssets.
type RiskExposure struct {
	EquityLikeAssets float64 `json:"equityLikeAssets"`
	StableAssets     float64 `json:"stableAssets"`
}

// InsightMetrics is the result of CalculateInsightMetrics.
type InsightMetrics struct {
	TotalInvestedAssets                 float64            `json:"totalInvestedAssets"`
	MonthlyIncome                       float64            `json:"monthlyIncome"`
	MonthlyExpenses                     float64            `json:"monthlyExpenses"`
	MonthlySavingsPotential             float64            `json:"monthlySavingsPotential"`
	ProjectedNetWorth                   NetWorthProjection `json:"projectedNetWorth"`
	ExpectedDebtReductionTimelineMonths int                `json:"expectedDebtReductionTimelineMonths"`
	RiskExposureSummary                 RiskExposure       `json:"riskExposureSummary"`
	SIPCorpusExample                    float64            `json:"sipCorpusExample"`
}
