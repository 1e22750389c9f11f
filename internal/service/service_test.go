package service

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Dan9191/fintrack/internal/models"
	"github.com/Dan9191/fintrack/internal/projection"
	"github.com/Dan9191/fintrack/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestRegisterLoginAndParseToken(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "s3cret", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if resp.Token == "" || resp.User.ID == 0 {
		t.Fatalf("Register response = %+v", resp)
	}
	if resp.User.PasswordHash == "s3cret" {
		t.Fatal("password stored in clear text")
	}

	userID, err := svc.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if userID != resp.User.ID {
		t.Errorf("ParseToken = %d, want %d", userID, resp.User.ID)
	}

	if _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "x"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("duplicate Register err = %v, want ErrUsernameTaken", err)
	}
	if _, err := svc.Register(ctx, RegisterRequest{Username: " "}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty Register err = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.Login(ctx, "alice", "s3cret"); err != nil {
		t.Errorf("Login: %v", err)
	}
	if _, err := svc.Login(ctx, "alice", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login wrong password err = %v", err)
	}
	if _, err := svc.Login(ctx, "bob", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login unknown user err = %v", err)
	}

	if _, err := svc.ParseToken("garbage"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("ParseToken(garbage) err = %v", err)
	}

	user, err := svc.CurrentUser(WithUserID(ctx, userID))
	if err != nil || user.Username != "alice" {
		t.Errorf("CurrentUser = %+v, %v", user, err)
	}
}

func TestUserIDFromContext_Missing(t *testing.T) {
	if _, err := UserIDFromContext(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestRecordOwnership(t *testing.T) {
	svc, store := newTestService(t)
	alice := WithUserID(context.Background(), 1)
	bob := WithUserID(context.Background(), 2)

	bill := &models.Bill{Name: "Rent", Amount: "1200", DueDate: "2025-03-01"}
	if err := svc.CreateBill(alice, bill); err != nil {
		t.Fatalf("CreateBill: %v", err)
	}
	if bill.Status != models.BillStatusPending || bill.UserID != 1 {
		t.Errorf("created bill = %+v", bill)
	}

	if _, err := svc.UpdateBill(bob, bill.ID, models.BillUpdate{Amount: strPtr("1")}); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign update err = %v, want ErrForbidden", err)
	}
	if err := svc.DeleteBill(bob, bill.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("foreign delete err = %v, want ErrForbidden", err)
	}
	if _, err := svc.UpdateBill(alice, 999, models.BillUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing update err = %v, want ErrNotFound", err)
	}

	paid := models.BillStatusPaid
	updated, err := svc.UpdateBill(alice, bill.ID, models.BillUpdate{Status: &paid})
	if err != nil {
		t.Fatalf("UpdateBill: %v", err)
	}
	if updated.Status != paid || updated.Amount != "1200" {
		t.Errorf("partial update = %+v", updated)
	}
	if stored, _ := store.GetBill(context.Background(), bill.ID); stored.Status != paid {
		t.Errorf("stored status = %q", stored.Status)
	}

	budget := &models.Budget{Category: "Food", Amount: "400", Period: "monthly"}
	if err := svc.CreateBudget(alice, budget); err != nil {
		t.Fatalf("CreateBudget: %v", err)
	}
	if budget.Spent != "0" {
		t.Errorf("budget spent default = %q, want 0", budget.Spent)
	}

	income, err := svc.CreateIncome(alice, models.IncomeUpdate{Source: strPtr("Salary"), Amount: strPtr("5000")})
	if err != nil {
		t.Fatalf("CreateIncome: %v", err)
	}
	if !income.IsActive {
		t.Error("new income should default to active")
	}

	if err := svc.DeleteBill(alice, bill.ID); err != nil {
		t.Errorf("DeleteBill: %v", err)
	}
	if left, _ := store.ListBills(context.Background(), 1); len(left) != 0 {
		t.Errorf("bills left after delete: %d", len(left))
	}
}

func TestDashboard(t *testing.T) {
	svc, store := newTestService(t)
	ctx := WithUserID(context.Background(), 1)

	seedIncomes(t, store,
		models.Income{UserID: 1, Source: "Salary", Amount: "5000", IsActive: true},
		models.Income{UserID: 1, Source: "Old job", Amount: "1000", IsActive: false},
	)
	seedTransactions(t, store,
		models.Transaction{UserID: 1, Type: "income", Amount: "200", Category: "Gift"},
		models.Transaction{UserID: 1, Type: "expense", Amount: "$1,500.00", Category: "Food"},
		models.Transaction{UserID: 1, Type: "Expense", Amount: "500", Category: "Food", Description: "latest"},
		models.Transaction{UserID: 2, Type: "expense", Amount: "999", Category: "Food"},
	)
	seedBills(t, store, models.Bill{UserID: 1, Name: "Power", Amount: "300", Status: "paid", DueDate: "2025-03-01"})
	seedInvestments(t, store, models.Investment{UserID: 1, Type: "stock", CurrentValue: "10000"})

	d, err := svc.Dashboard(ctx)
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}

	if d.MonthlyIncome != 5200 || d.IncomeFromRecords != 5000 || d.IncomeFromTransactions != 200 {
		t.Errorf("income = %v (%v + %v)", d.MonthlyIncome, d.IncomeFromRecords, d.IncomeFromTransactions)
	}
	if d.MonthlyExpenses != 2300 || d.TransactionExpenses != 2000 || d.BillExpenses != 300 {
		t.Errorf("expenses = %v (%v + %v)", d.MonthlyExpenses, d.TransactionExpenses, d.BillExpenses)
	}
	if d.TotalBalance != 12900 {
		t.Errorf("TotalBalance = %v, want 12900", d.TotalBalance)
	}
	if math.Abs(d.SavingsRate-2900.0/5200.0*100) > 1e-9 {
		t.Errorf("SavingsRate = %v", d.SavingsRate)
	}
	if d.CategoryBreakdown["Food"] != 2000 || d.CategoryBreakdown[defaultBillCategory] != 300 {
		t.Errorf("CategoryBreakdown = %v", d.CategoryBreakdown)
	}
	if len(d.RecentTransactions) != 3 || d.RecentTransactions[0].Description != "latest" {
		t.Errorf("RecentTransactions = %+v", d.RecentTransactions)
	}
}

func TestLastReversed(t *testing.T) {
	got := lastReversed([]int{1, 2, 3, 4, 5, 6, 7}, 5)
	want := []int{7, 6, 5, 4, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	if len(lastReversed([]int{}, 5)) != 0 {
		t.Error("empty input should give empty output")
	}
}

func TestParseAmount(t *testing.T) {
	tests := map[string]string{
		"1,234.50": "1234.5",
		"$99":      "99",
		"€ 10":     "10",
		"":         "0",
		"abc":      "0",
		" 7 ":      "7",
	}
	for in, want := range tests {
		if got := parseAmount(in).String(); got != want {
			t.Errorf("parseAmount(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestInsightMetrics_UsesEngine(t *testing.T) {
	svc, store := newTestService(t)
	ctx := WithUserID(context.Background(), 1)

	seedIncomes(t, store, models.Income{UserID: 1, Amount: "5000", IsActive: true})
	seedTransactions(t, store, models.Transaction{UserID: 1, Type: "expense", Amount: "2000"})
	seedBills(t, store, models.Bill{UserID: 1, Amount: "300", Status: "pending"})
	seedInvestments(t, store, models.Investment{UserID: 1, Type: "mutual-fund", CurrentValue: "10000"})

	got, err := svc.InsightMetrics(ctx, svc.DefaultAssumptions())
	if err != nil {
		t.Fatalf("InsightMetrics: %v", err)
	}

	want := projection.CalculateInsightMetrics(projection.InsightInput{
		Incomes:      []projection.Income{{Amount: "5000"}},
		Transactions: []projection.Transaction{{Type: "expense", Amount: "2000"}},
		Bills:        []projection.Bill{{Amount: "300", Status: "pending"}},
		Investments:  []projection.Investment{{Type: "mutual-fund", CurrentValue: "10000"}},
		Assumptions:  projection.DefaultAssumptions(),
	})
	if *got != want {
		t.Errorf("InsightMetrics = %+v, want %+v", *got, want)
	}
	if got.MonthlySavingsPotential != 2700 {
		t.Errorf("MonthlySavingsPotential = %v", got.MonthlySavingsPotential)
	}

	if _, err := svc.InsightMetrics(context.Background(), svc.DefaultAssumptions()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unauthenticated err = %v", err)
	}
}

func TestRegister_DuplicateOnInsert(t *testing.T) {
	svc := newTestServiceWith(t, lateUniqueStore{repository.NewMemory()})
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "pw"}); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if _, err := svc.Register(ctx, RegisterRequest{Username: "alice", Password: "pw"}); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("second Register err = %v, want ErrUsernameTaken", err)
	}
}

func TestSavingsProjection(t *testing.T) {
	svc, store := newTestService(t)
	ctx := WithUserID(context.Background(), 1)

	seedInvestments(t, store,
		models.Investment{UserID: 1, Type: "PF", CurrentValue: "100000", PFCurrentCompany: "20000", PFPreviousCompany: "10000", PFCurrentAge: "40"},
		models.Investment{UserID: 1, Type: "stock", CurrentValue: "5000"},
	)

	p, err := svc.SavingsProjection(ctx)
	if err != nil {
		t.Fatalf("SavingsProjection: %v", err)
	}
	if p.PFPrincipal != 130000 {
		t.Errorf("PFPrincipal = %v, want 130000", p.PFPrincipal)
	}
	if p.PFInferredCurrentAge != 40 {
		t.Errorf("PFInferredCurrentAge = %v, want 40", p.PFInferredCurrentAge)
	}
	if p.TotalInvestments != 105000 {
		t.Errorf("TotalInvestments = %v", p.TotalInvestments)
	}
	for age, years := range map[string]float64{"age50": 10, "age55": 15, "age60": 20} {
		want := projection.CompoundFutureValue(130000, pfInterestRate, years, 1)
		if math.Abs(p.PFRetirementProjection[age]-want) > 1e-6 {
			t.Errorf("%s = %v, want %v", age, p.PFRetirementProjection[age], want)
		}
	}
}

func TestSavingsProjection_NoPF(t *testing.T) {
	svc, _ := newTestService(t)
	p, err := svc.SavingsProjection(WithUserID(context.Background(), 1))
	if err != nil {
		t.Fatalf("SavingsProjection: %v", err)
	}
	if p.PFInferredCurrentAge != defaultAgeNoPF {
		t.Errorf("age = %v, want %d", p.PFInferredCurrentAge, defaultAgeNoPF)
	}
	if p.PFRetirementProjection["age60"] != 0 {
		t.Errorf("projection without PF = %v", p.PFRetirementProjection)
	}
}

// seedCashFlow stores 5000 income, 2000 expenses and 10000 invested
func seedCashFlow(t *testing.T, store Store) {
	t.Helper()
	seedIncomes(t, store,
		models.Income{UserID: 1, Amount: "4000", IsActive: true},
		models.Income{UserID: 1, Amount: "999", IsActive: false},
	)
	seedTransactions(t, store,
		models.Transaction{UserID: 1, Type: "income", Amount: "1000"},
		models.Transaction{UserID: 1, Type: "expense", Amount: "1500"},
	)
	seedBills(t, store, models.Bill{UserID: 1, Name: "Power", Amount: "500", Status: "paid"})
	seedInvestments(t, store, models.Investment{UserID: 1, Type: "stock", CurrentValue: "10000"})
}

func wantCashFlow(t *testing.T, got models.CashFlowSummary) {
	t.Helper()
	want := models.CashFlowSummary{
		TotalIncome:            5000,
		IncomeFromRecords:      4000,
		IncomeFromTransactions: 1000,
		TotalExpenses:          2000,
		TransactionExpenses:    1500,
		BillExpenses:           500,
	}
	if got != want {
		t.Errorf("cash flow = %+v, want %+v", got, want)
	}
}

func TestSavingsProjection_CashFlowAndFutureNetWorth(t *testing.T) {
	svc, store := newTestService(t)
	seedCashFlow(t, store)

	p, err := svc.SavingsProjection(WithUserID(context.Background(), 1))
	if err != nil {
		t.Fatalf("SavingsProjection: %v", err)
	}
	wantCashFlow(t, p.CashFlowSummary)
	if p.CurrentSavings != 3000 || p.ProjectedMonthlySavings != 3000 || p.ProjectedAnnualSavings != 36000 {
		t.Errorf("savings = %+v", p)
	}
	want := models.HorizonProjection{OneYear: 46700, FiveYears: 194000, TenYears: 379700}
	if p.FutureNetWorth != want {
		t.Errorf("FutureNetWorth = %+v, want %+v", p.FutureNetWorth, want)
	}
}

func TestInsights(t *testing.T) {
	svc, store := newTestService(t)
	seedCashFlow(t, store)

	got, err := svc.Insights(WithUserID(context.Background(), 1))
	if err != nil {
		t.Fatalf("Insights: %v", err)
	}
	wantCashFlow(t, got.CashFlowSummary)
	if got.CurrentSavingsRate != 60 || got.ProjectedMonthlySavings != 3000 || got.ProjectedAnnualSavings != 36000 {
		t.Errorf("insights = %+v", got)
	}
	if got.RecommendedInvestmentAmount != 900 {
		t.Errorf("RecommendedInvestmentAmount = %v, want 900", got.RecommendedInvestmentAmount)
	}
	if len(got.Insights) != 3 || len(got.InvestmentRecommendations) != 3 {
		t.Errorf("advice = %v / %v", got.Insights, got.InvestmentRecommendations)
	}

	if _, err := svc.Insights(context.Background()); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unauthenticated err = %v", err)
	}
}

func TestNetWorthProjection(t *testing.T) {
	svc, store := newTestService(t)
	seedCashFlow(t, store)

	got, err := svc.NetWorthProjection(WithUserID(context.Background(), 1))
	if err != nil {
		t.Fatalf("NetWorthProjection: %v", err)
	}
	wantCashFlow(t, got.CashFlowSummary)
	if got.CurrentAssets != 13000 || got.CurrentDebts != 0 || got.CurrentSavings != 3000 || got.CurrentSavingsRate != 60 {
		t.Errorf("net worth = %+v", got)
	}
	want := models.HorizonProjection{OneYear: 13910, FiveYears: 18200, TenYears: 25610}
	if got.ProjectedNetWorth != want || got.FutureNetWorth != want {
		t.Errorf("projections = %+v / %+v, want %+v", got.ProjectedNetWorth, got.FutureNetWorth, want)
	}
}

func TestAutoPopulateNextCycleBills(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedBills(t, store,
		models.Bill{UserID: 1, Name: "Internet", Amount: "50", Category: "Utilities", DueDate: "2025-03-05", Status: "paid", IsRecurring: true},
		models.Bill{UserID: 1, Name: "Gym", Amount: "30", Category: "Health", DueDate: "2025-01-31", Status: "paid", IsRecurring: true, AutoPayEnabled: true},
		models.Bill{UserID: 1, Name: "One-off", Amount: "10", DueDate: "2025-03-01", Status: "pending"},
		models.Bill{UserID: 1, Name: "Broken", Amount: "10", DueDate: "soon", Status: "pending", IsRecurring: true},
		models.Bill{UserID: 1, Name: "Insurance", Amount: "90", DueDate: "2025-05-01", Status: "pending", IsRecurring: true},
	)

	created, err := svc.AutoPopulateNextCycleBills(ctx, 1)
	if err != nil {
		t.Fatalf("AutoPopulateNextCycleBills: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created %d bills, want 2: %+v", len(created), created)
	}

	byName := map[string]models.Bill{}
	for _, b := range created {
		byName[b.Name] = b
	}
	if b := byName["Internet"]; b.DueDate != "2025-04-05" || b.Status != models.BillStatusPending || !b.IsRecurring {
		t.Errorf("Internet next cycle = %+v", b)
	}
	if b := byName["Gym"]; b.DueDate != "2025-02-28" || b.Status != models.BillStatusPaid {
		t.Errorf("Gym next cycle = %+v", b)
	}

	// the Internet series now ends in April, past the current month
	again, err := svc.AutoPopulateNextCycleBills(ctx, 1)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	for _, b := range again {
		if b.Name == "Internet" {
			t.Errorf("Internet populated twice: %+v", b)
		}
	}
}

func TestAddMonthClamped(t *testing.T) {
	tests := map[string]string{
		"2025-01-31": "2025-02-28",
		"2024-01-31": "2024-02-29",
		"2025-12-15": "2026-01-15",
		"2025-03-31": "2025-04-30",
	}
	for in, want := range tests {
		d, _ := parseDueDate(in)
		if got := addMonthClamped(d).Format(dateLayout); got != want {
			t.Errorf("addMonthClamped(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestMarkOverdueAndReminders(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	seedBills(t, store,
		models.Bill{UserID: 1, Name: "Late", Amount: "10", DueDate: "2025-03-10", Status: "pending"},
		models.Bill{UserID: 1, Name: "Soon", Amount: "20", DueDate: "2025-03-20", Status: "pending"},
		models.Bill{UserID: 1, Name: "Settled", Amount: "30", DueDate: "2025-03-01", Status: "paid"},
		models.Bill{UserID: 1, Name: "Later", Amount: "40", DueDate: "2025-04-30", Status: "pending"},
	)

	marked, err := svc.MarkOverdueBills(ctx, 1)
	if err != nil {
		t.Fatalf("MarkOverdueBills: %v", err)
	}
	bills, _ := store.ListBills(ctx, 1)
	if marked != 1 || bills[0].Status != models.BillStatusOverdue {
		t.Errorf("marked = %d, bills = %+v", marked, bills)
	}

	reminders, err := svc.DueBillReminders(ctx, 1, 7)
	if err != nil {
		t.Fatalf("DueBillReminders: %v", err)
	}
	if len(reminders) != 2 {
		t.Fatalf("got %d reminders, want 2: %+v", len(reminders), reminders)
	}
	if reminders[0].Bill.Name != "Late" || !reminders[0].Overdue {
		t.Errorf("first reminder = %+v", reminders[0])
	}
	if reminders[1].Bill.Name != "Soon" || reminders[1].Overdue {
		t.Errorf("second reminder = %+v", reminders[1])
	}
}

func TestImportCSV(t *testing.T) {
	svc, store := newTestService(t)
	ctx := WithUserID(context.Background(), 1)

	csvData := strings.Join([]string{
		"date,description,amount,category,type,paymentMethod",
		"15-03-2025,Coffee,4.50,Food,expense,Card",
		"2025-03-16,Salary,3000,Income,Income",
		"bad,row",
		"2025-03-17,Book,12,,",
	}, "\n")

	res, err := svc.ImportCSV(ctx, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Total != 4 || res.Imported != 3 {
		t.Errorf("result = %+v, want 3 of 4", res)
	}

	stored, _ := store.ListTransactions(ctx, 1)
	if len(stored) != 3 {
		t.Fatalf("stored %d transactions, want 3", len(stored))
	}
	first := stored[0]
	if first.Date != "2025-03-15" || first.PaymentMethod != "Card" || first.UserID != 1 {
		t.Errorf("first = %+v", first)
	}
	if stored[1].Type != "income" || stored[1].PaymentMethod != "Unknown" {
		t.Errorf("second = %+v", stored[1])
	}
	if third := stored[2]; third.Category != "Other" || third.Type != "expense" {
		t.Errorf("third = %+v", third)
	}

	empty, err := svc.ImportCSV(ctx, strings.NewReader(""))
	if err != nil || empty.Total != 0 {
		t.Errorf("empty import = %+v, %v", empty, err)
	}
}

func TestImportCSV_StoreFailureSkipsRow(t *testing.T) {
	svc := newTestServiceWith(t, failingStore{repository.NewMemory()})

	res, err := svc.ImportCSV(WithUserID(context.Background(), 1),
		strings.NewReader("h\n2025-01-01,Tea,3,Food\n"))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Imported != 0 || res.Total != 1 {
		t.Errorf("result = %+v", res)
	}
}

func TestImportCSV_MalformedRowSkipped(t *testing.T) {
	svc, store := newTestService(t)
	ctx := WithUserID(context.Background(), 1)

	csvData := strings.Join([]string{
		"date,description,amount,category",
		"2025-03-01,Rent,900,Housing",
		`2025-03-02,12" pizza,15,Food`,
		"2025-03-03,Bus,2,Transport",
	}, "\n")

	res, err := svc.ImportCSV(ctx, strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("ImportCSV: %v", err)
	}
	if res.Total != 3 || res.Imported != 2 {
		t.Errorf("result = %+v, want 2 of 3", res)
	}
	stored, _ := store.ListTransactions(ctx, 1)
	if len(stored) != 2 || stored[1].Description != "Bus" {
		t.Errorf("stored = %+v", stored)
	}
}
