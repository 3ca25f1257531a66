package services

import (
	"context"
	"testing"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

func newSummaryService(db *gorm.DB) *SummaryService {
	return NewSummaryService(
		repositories.NewUserRepository(db),
		repositories.NewInvestmentRepository(db),
	)
}

func TestSummaryEmptyUser(t *testing.T) {
	db := setupTestDB(t)
	bank := seedBank(t, db)
	user := seedUser(t, db, bank)

	svc := newSummaryService(db)
	result, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if result.Deposit.Bank != bank.Name {
		t.Errorf("deposit bank = %q, want %q", result.Deposit.Bank, bank.Name)
	}
	if result.Deposit.Balance != user.DepositAmount {
		t.Errorf("deposit balance = %d, want %d", result.Deposit.Balance, user.DepositAmount)
	}
	if result.InvestLimit.RemainTotal != user.NetInvestLimit {
		t.Errorf("remainTotal = %d, want %d", result.InvestLimit.RemainTotal, user.NetInvestLimit)
	}
	if result.Overview.EarningRate != 0 {
		t.Errorf("earningRate = %v, want 0 with nothing completed", result.Overview.EarningRate)
	}
	if result.Overview.Asset != user.DepositAmount {
		t.Errorf("asset = %d, want %d", result.Overview.Asset, user.DepositAmount)
	}
	if result.InvestStatus.TotalInvest != 0 {
		t.Errorf("totalInvest = %d, want 0", result.InvestStatus.TotalInvest)
	}
}

func TestSummaryStatusBreakdown(t *testing.T) {
	db := setupTestDB(t)
	bank := seedBank(t, db)
	user := seedUser(t, db, bank)

	normal := seedDeal(t, db, "정상 상환 상품", "MORTGAGE", "A", "NORMAL", 9.0, 12)
	applying := seedDeal(t, db, "모집중 상품", "PERSONAL", "B", "APPLYING", 12.0, 6)
	delayed := seedDeal(t, db, "연체 상품", "PERSONAL", "C", "DELAY", 16.0, 6)
	loss := seedDeal(t, db, "부실 상각 상품", "CORPORATE", "D", "NONPERFORM_COMPLETION", 18.0, 6)

	// NORMAL: 1,000,000 in, 400,000 principal and 12,000 interest paid
	seedSubscription(t, db, user.ID, normal.ID, 1_000_000, []models.UserPayback{
		paid(400_000, 12_000, 3_300, 1_200),
		unpaid(600_000, 18_000, 4_900, 1_800),
	})
	// APPLYING: 500,000 in, nothing paid
	seedSubscription(t, db, user.ID, applying.ID, 500_000, []models.UserPayback{
		unpaid(500_000, 15_000, 4_100, 1_500),
	})
	// DELAY: 300,000 in, 100,000 paid back
	seedSubscription(t, db, user.ID, delayed.ID, 300_000, []models.UserPayback{
		paid(100_000, 4_000, 1_100, 400),
		unpaid(200_000, 8_000, 2_200, 800),
	})
	// Written off: 200,000 in, 50,000 recovered before the writeoff
	seedSubscription(t, db, user.ID, loss.ID, 200_000, []models.UserPayback{
		paid(50_000, 2_000, 550, 200),
		unpaid(150_000, 6_000, 1_650, 600),
	})

	svc := newSummaryService(db)
	result, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	status := result.InvestStatus
	if status.TotalInvest != 2_000_000 {
		t.Errorf("totalInvest = %d, want 2000000", status.TotalInvest)
	}
	if status.Complete != 550_000 {
		t.Errorf("complete = %d, want 550000", status.Complete)
	}
	// Applying folds into the normal bucket
	if status.Normal != 1_100_000 {
		t.Errorf("normal = %d, want 1100000", status.Normal)
	}
	if status.Delay != 200_000 {
		t.Errorf("delay = %d, want 200000", status.Delay)
	}
	if status.Loss != 150_000 {
		t.Errorf("loss = %d, want 150000", status.Loss)
	}
	// Outstanding capital at risk excludes the written-off bucket
	if status.Invest != 1_300_000 {
		t.Errorf("invest = %d, want 1300000", status.Invest)
	}

	if result.Overview.Asset != user.DepositAmount+1_300_000 {
		t.Errorf("asset = %d, want %d", result.Overview.Asset, user.DepositAmount+1_300_000)
	}
	// paid interest 18,000 minus paid commission 1,800
	if result.Overview.PaidRevenue != 16_200 {
		t.Errorf("paidRevenue = %d, want 16200", result.Overview.PaidRevenue)
	}
	// (totalRevenue 58,500 - loss 150,000) / complete 550,000 * 100 = -16.64
	if result.Overview.EarningRate != -16.64 {
		t.Errorf("earningRate = %v, want -16.64", result.Overview.EarningRate)
	}

	if result.InvestLimit.RemainTotal != user.NetInvestLimit-1_300_000 {
		t.Errorf("remainTotal = %d, want %d", result.InvestLimit.RemainTotal, user.NetInvestLimit-1_300_000)
	}
	// Only the mortgage subscription counts against the estate limit
	if result.InvestLimit.RemainEstate != user.NetMortgageInvestLimit-600_000 {
		t.Errorf("remainEstate = %d, want %d", result.InvestLimit.RemainEstate, user.NetMortgageInvestLimit-600_000)
	}
}

func TestSummaryLimitsGoNegative(t *testing.T) {
	db := setupTestDB(t)
	bank := seedBank(t, db)
	user := &models.User{
		Username:               "smallcap",
		Email:                  "smallcap@example.com",
		Password:               "x",
		DepositBankID:          bank.ID,
		DepositAccount:         "110-111-222333",
		NetInvestLimit:         100_000,
		NetMortgageInvestLimit: 100_000,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	deal := seedDeal(t, db, "아파트 담보 1호", "MORTGAGE", "A", "NORMAL", 9.0, 12)
	seedSubscription(t, db, user.ID, deal.ID, 500_000, []models.UserPayback{
		unpaid(500_000, 15_000, 4_100, 1_500),
	})

	svc := newSummaryService(db)
	result, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if result.InvestLimit.RemainTotal != -400_000 {
		t.Errorf("remainTotal = %d, want -400000", result.InvestLimit.RemainTotal)
	}
	if result.InvestLimit.RemainEstate != -400_000 {
		t.Errorf("remainEstate = %d, want -400000", result.InvestLimit.RemainEstate)
	}
}

func TestOverviewEarningRate(t *testing.T) {
	tests := []struct {
		name                                  string
		totalRevenue, lossAmount, completeAmt int64
		want                                  float64
	}{
		{"zero complete yields zero", 10_000, 0, 0, 0},
		{"plain rate", 50_000, 0, 1_000_000, 5.0},
		{"loss drags the rate negative", 10_000, 110_000, 1_000_000, -10.0},
		{"rounds to two decimals", 10_000, 0, 300_000, 3.33},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := overviewEarningRate(tt.totalRevenue, tt.lossAmount, tt.completeAmt)
			if got != tt.want {
				t.Errorf("overviewEarningRate(%d, %d, %d) = %v, want %v",
					tt.totalRevenue, tt.lossAmount, tt.completeAmt, got, tt.want)
			}
		})
	}
}
