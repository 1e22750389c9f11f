package projection

import (
	"encoding/json"
	"math"
	"testing"
)

func approxEqual(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.6f, want %.6f (±%g)", name, got, want, tol)
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		in   any
		want float64
	}{
		{nil, 0},
		{"", 0},
		{"abc", 0},
		{"12.5", 12.5},
		{"-3", -3},
		{"0", 0},
		{"  42 ", 42},
		{"12abc", 12},
		{".5", 0.5},
		{"1e3", 1000},
		{"1e", 1},
		{"Infinity", 0},
		{"NaN", 0},
		{"1e400", 0},
		{json.Number("7.25"), 7.25},
		{3, 3},
		{2.5, 2.5},
		{math.Inf(1), 0},
		{true, 0},
		{Amount("19.99"), 19.99},
		{Amount("true"), 0},
	}
	for _, tt := range tests {
		if got := ToNumber(tt.in); got != tt.want {
			t.Errorf("ToNumber(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	body := `{
		"incomes":[{"amount":5000},{"amount":"250.5"},{"amount":null},{"amount":true},{"amount":{"v":1}}],
		"transactions":[{"type":"expense","amount":2000}],
		"bills":[{"amount":300,"status":"pending"}],
		"investments":[{"type":"mutual-fund","currentValue":1e4}]
	}`
	var in InsightInput
	if err := json.Unmarshal([]byte(body), &in); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	want := []float64{5000, 250.5, 0, 0, 0}
	for i, inc := range in.Incomes {
		if got := ToNumber(inc.Amount); got != want[i] {
			t.Errorf("income %d (%q) = %v, want %v", i, inc.Amount, got, want[i])
		}
	}

	in.Assumptions = DefaultAssumptions()
	m := CalculateInsightMetrics(in)
	approxEqual(t, "MonthlyIncome", m.MonthlyIncome, 5250.5, 1e-9)
	approxEqual(t, "MonthlyExpenses", m.MonthlyExpenses, 2300, 1e-9)
	approxEqual(t, "TotalInvestedAssets", m.TotalInvestedAssets, 10000, 1e-9)
}

func TestCompoundFutureValue_ZeroYearsIsIdentity(t *testing.T) {
	for _, p := range []float64{0, 1, 1234.56, -50} {
		for _, r := range []float64{-100, -5, 0, 11, 250} {
			if got := CompoundFutureValue(p, r, 0, 1); got != p {
				t.Errorf("CompoundFutureValue(%v, %v, 0) = %v, want %v", p, r, got, p)
			}
		}
	}
}

func TestCompoundFutureValue(t *testing.T) {
	approxEqual(t, "10% one year", CompoundFutureValue(1000, 10, 1, 1), 1100, 1e-9)
	if got := CompoundFutureValue(1000, 0, 5, 1); got != 1000 {
		t.Errorf("zero rate = %v, want 1000", got)
	}
	approxEqual(t, "negative rate", CompoundFutureValue(1000, -10, 2, 1), 810, 1e-9)
	approxEqual(t, "monthly compounding", CompoundFutureValue(1000, 12, 1, 12), 1000*math.Pow(1.01, 12), 1e-9)
	// non-positive compounding frequency falls back to yearly
	approxEqual(t, "default compounding", CompoundFutureValue(1000, 10, 1, 0), 1100, 1e-9)
}

func TestSIPFutureValue(t *testing.T) {
	if got := SIPFutureValue(1000, 0, 5, 12); got != 60000 {
		t.Errorf("zero rate SIP = %v, want 60000", got)
	}
	if got := SIPFutureValue(1000, -4, 2, 12); got != 24000 {
		t.Errorf("negative rate SIP = %v, want 24000", got)
	}

	got := SIPFutureValue(1000, 12, 1, 12)
	if got <= 12000 {
		t.Fatalf("SIP with positive rate = %v, want > 12000", got)
	}
	approxEqual(t, "annuity-due SIP", got, 12809.33, 0.01)

	// one period of growth more than an ordinary annuity
	ordinary := 1000 * (math.Pow(1.01, 12) - 1) / 0.01
	approxEqual(t, "due vs ordinary", got, ordinary*1.01, 1e-6)

	approxEqual(t, "default installments", SIPFutureValue(1000, 12, 1, 0), got, 1e-9)
}

func TestProjectSIP(t *testing.T) {
	points := ProjectSIP(1000, 12, ProjectionYears)
	if len(points) != len(ProjectionYears) {
		t.Fatalf("got %d points, want %d", len(points), len(ProjectionYears))
	}
	for i, p := range points {
		if p.Years != ProjectionYears[i] {
			t.Errorf("point %d years = %d, want %d", i, p.Years, ProjectionYears[i])
		}
		if p.Invested != float64(12000*p.Years) {
			t.Errorf("point %d invested = %v", i, p.Invested)
		}
		if p.Gain <= 0 {
			t.Errorf("point %d gain = %v, want > 0", i, p.Gain)
		}
	}
}

func TestCalculateInsightMetrics_EmptyInput(t *testing.T) {
	m := CalculateInsightMetrics(InsightInput{Assumptions: DefaultAssumptions()})
	if m != (InsightMetrics{}) {
		t.Errorf("empty input produced %+v, want all zeros", m)
	}
}

func TestCalculateInsightMetrics_SavingsNeverNegative(t *testing.T) {
	m := CalculateInsightMetrics(InsightInput{
		Incomes:      []Income{{Amount: "1000"}},
		Transactions: []Transaction{{Type: TransactionExpense, Amount: "1500"}},
		Assumptions:  DefaultAssumptions(),
	})
	if m.MonthlySavingsPotential != 0 {
		t.Errorf("MonthlySavingsPotential = %v, want 0", m.MonthlySavingsPotential)
	}
	if m.MonthlyExpenses != 1500 {
		t.Errorf("MonthlyExpenses = %v, want 1500", m.MonthlyExpenses)
	}
	if m.SIPCorpusExample != 0 {
		t.Errorf("SIPCorpusExample = %v, want 0", m.SIPCorpusExample)
	}
}

func TestCalculateInsightMetrics_PaidBillsExcluded(t *testing.T) {
	paid := CalculateInsightMetrics(InsightInput{
		Bills: []Bill{{Name: "Power", Amount: "500", Status: BillPaid}},
	})
	if paid.MonthlyExpenses != 0 {
		t.Errorf("paid bill counted: MonthlyExpenses = %v", paid.MonthlyExpenses)
	}
	if paid.ExpectedDebtReductionTimelineMonths != 0 {
		t.Errorf("paid bill produced timeline %d", paid.ExpectedDebtReductionTimelineMonths)
	}

	pending := CalculateInsightMetrics(InsightInput{
		Bills: []Bill{
			{Name: "Power", Amount: "500", Status: BillPending},
			{Name: "Water", Amount: "100", Status: "PAID"},
		},
	})
	if pending.MonthlyExpenses != 500 {
		t.Errorf("MonthlyExpenses = %v, want 500", pending.MonthlyExpenses)
	}
	// 6000 / max(0 × 0.4, 1)
	if pending.ExpectedDebtReductionTimelineMonths != 6000 {
		t.Errorf("timeline = %d, want 6000", pending.ExpectedDebtReductionTimelineMonths)
	}
}

func TestCalculateInsightMetrics_RiskBuckets(t *testing.T) {
	m := CalculateInsightMetrics(InsightInput{
		Investments: []Investment{
			{Type: InvestmentStock, CurrentValue: "100"},
			{Type: InvestmentPF, CurrentValue: "200"},
			{Type: InvestmentETF, CurrentValue: "50"},
		},
	})
	want := RiskExposure{EquityLikeAssets: 100, StableAssets: 200}
	if m.RiskExposureSummary != want {
		t.Errorf("RiskExposureSummary = %+v, want %+v", m.RiskExposureSummary, want)
	}
	if m.TotalInvestedAssets != 350 {
		t.Errorf("TotalInvestedAssets = %v, want 350", m.TotalInvestedAssets)
	}
}

func TestCalculateInsightMetrics_ExpensesIgnoreDates(t *testing.T) {
	m := CalculateInsightMetrics(InsightInput{
		Transactions: []Transaction{
			{Type: TransactionExpense, Amount: "100", Date: "2020-01-01"},
			{Type: "Expense", Amount: "200", Date: "2024-06-15"},
			{Type: TransactionIncome, Amount: "999", Date: "2024-06-15"},
			{Type: TransactionExpense, Amount: "n/a"},
		},
	})
	if m.MonthlyExpenses != 300 {
		t.Errorf("MonthlyExpenses = %v, want 300", m.MonthlyExpenses)
	}
	if m.MonthlyIncome != 0 {
		t.Errorf("income transactions must not count as monthly income, got %v", m.MonthlyIncome)
	}
}

func TestCalculateInsightMetrics_EndToEnd(t *testing.T) {
	m := CalculateInsightMetrics(InsightInput{
		Incomes:      []Income{{Amount: "5000"}},
		Transactions: []Transaction{{Type: TransactionExpense, Amount: "2000"}},
		Bills:        []Bill{{Amount: "300", Status: BillPending}},
		Investments:  []Investment{{Type: InvestmentMutualFund, CurrentValue: "10000"}},
		Assumptions:  Assumptions{ExpectedReturn: 11, Inflation: 5, ExpenseGrowth: 6},
	})

	if m.MonthlyIncome != 5000 {
		t.Errorf("MonthlyIncome = %v", m.MonthlyIncome)
	}
	if m.MonthlyExpenses != 2300 {
		t.Errorf("MonthlyExpenses = %v", m.MonthlyExpenses)
	}
	if m.MonthlySavingsPotential != 2700 {
		t.Errorf("MonthlySavingsPotential = %v", m.MonthlySavingsPotential)
	}
	if m.TotalInvestedAssets != 10000 {
		t.Errorf("TotalInvestedAssets = %v", m.TotalInvestedAssets)
	}

	wantOne := CompoundFutureValue(10000, 11, 1, 1) + CompoundFutureValue(2700*12, 6, 1, 1)
	approxEqual(t, "ProjectedNetWorth.One", m.ProjectedNetWorth.One, wantOne, 1e-9)
	approxEqual(t, "ProjectedNetWorth.One literal", m.ProjectedNetWorth.One, 11100+34344, 1e-6)
	approxEqual(t, "ProjectedNetWorth.Five", m.ProjectedNetWorth.Five,
		CompoundFutureValue(10000, 11, 5, 1)+CompoundFutureValue(32400, 6, 5, 1), 1e-9)
	approxEqual(t, "ProjectedNetWorth.Ten", m.ProjectedNetWorth.Ten,
		CompoundFutureValue(10000, 11, 10, 1)+CompoundFutureValue(32400, 6, 10, 1), 1e-9)

	// ceil(3600 / 1080)
	if m.ExpectedDebtReductionTimelineMonths != 4 {
		t.Errorf("ExpectedDebtReductionTimelineMonths = %d, want 4", m.ExpectedDebtReductionTimelineMonths)
	}
	if m.RiskExposureSummary.EquityLikeAssets != 10000 || m.RiskExposureSummary.StableAssets != 0 {
		t.Errorf("RiskExposureSummary = %+v", m.RiskExposureSummary)
	}
	approxEqual(t, "SIPCorpusExample", m.SIPCorpusExample, SIPFutureValue(2700, 11, 10, 12), 1e-9)
}

func TestCalculateInsightMetrics_ExpenseGrowthUnused(t *testing.T) {
	in := InsightInput{
		Incomes:     []Income{{Amount: "4000"}},
		Investments: []Investment{{Type: InvestmentFD, CurrentValue: "2500"}},
		Assumptions: Assumptions{ExpectedReturn: 9, Inflation: 4, ExpenseGrowth: 6},
	}
	a := CalculateInsightMetrics(in)
	in.Assumptions.ExpenseGrowth = 40
	b := CalculateInsightMetrics(in)
	if a != b {
		t.Errorf("ExpenseGrowth changed the result: %+v vs %+v", a, b)
	}
}

func TestInsightMetrics_JSONFieldNames(t *testing.T) {
	raw, err := json.Marshal(InsightMetrics{})
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{
		"totalInvestedAssets", "monthlyIncome", "monthlyExpenses", "monthlySavingsPotential",
		"projectedNetWorth", "expectedDebtReductionTimelineMonths", "riskExposureSummary", "sipCorpusExample",
	} {
		if _, ok := fields[k]; !ok {
			t.Errorf("missing JSON field %q in %s", k, raw)
		}
	}
}
