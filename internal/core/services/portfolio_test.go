package services

import (
	"context"
	"testing"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/adapters/persistence/repositories"
)

func holding(amount int64, grade, category string, rate float64) *models.UserDeal {
	return &models.UserDeal{
		Amount: amount,
		Deal: &models.Deal{
			Grade:       grade,
			Category:    category,
			EarningRate: rate,
		},
	}
}

func TestPortfolioEmpty(t *testing.T) {
	p := NewPortfolio()

	if got := p.Grade(); got != "" {
		t.Errorf("Grade() = %q, want empty", got)
	}
	if got := p.Category(); got != "" {
		t.Errorf("Category() = %q, want empty", got)
	}
	if got := p.EarningRate(); got != 0 {
		t.Errorf("EarningRate() = %v, want 0", got)
	}
}

func TestPortfolioWeightedRate(t *testing.T) {
	p := NewPortfolio()
	p.Ingest(holding(1_000_000, "A", "MORTGAGE", 10.0))
	p.Ingest(holding(3_000_000, "B", "MORTGAGE", 14.0))

	// (10*1M + 14*3M) / 4M = 13.00
	if got := p.EarningRate(); got != 13.0 {
		t.Errorf("EarningRate() = %v, want 13.0", got)
	}
}

func TestPortfolioRateRounding(t *testing.T) {
	p := NewPortfolio()
	p.Ingest(holding(1_000_000, "A", "MORTGAGE", 10.0))
	p.Ingest(holding(2_000_000, "B", "MORTGAGE", 14.0))

	// (10 + 28) / 3 = 12.666... rounds to 12.67
	if got := p.EarningRate(); got != 12.67 {
		t.Errorf("EarningRate() = %v, want 12.67", got)
	}
}

func TestPortfolioDominantGradeAndCategory(t *testing.T) {
	p := NewPortfolio()
	p.Ingest(holding(5_000_000, "A_PLUS", "MORTGAGE", 8.0))
	p.Ingest(holding(1_000_000, "C", "PERSONAL", 16.0))
	p.Ingest(holding(2_000_000, "C", "PERSONAL", 15.0))

	if got := p.Grade(); got != "A+" {
		t.Errorf("Grade() = %q, want A+", got)
	}
	if got := p.Category(); got != "부동산 담보" {
		t.Errorf("Category() = %q, want 부동산 담보", got)
	}
}

func TestPortfolioTieBreak(t *testing.T) {
	// Equal amounts in two grades resolve to the smaller label
	// regardless of ingest order
	orders := [][]*models.UserDeal{
		{
			holding(1_000_000, "B", "PERSONAL", 12.0),
			holding(1_000_000, "A", "MORTGAGE", 9.0),
		},
		{
			holding(1_000_000, "A", "MORTGAGE", 9.0),
			holding(1_000_000, "B", "PERSONAL", 12.0),
		},
	}

	for i, deals := range orders {
		p := NewPortfolio()
		for _, d := range deals {
			p.Ingest(d)
		}
		if got := p.Grade(); got != "A" {
			t.Errorf("order %d: Grade() = %q, want A", i, got)
		}
	}
}

func TestPortfolioIngestOrderIndependence(t *testing.T) {
	deals := []*models.UserDeal{
		holding(1_000_000, "A", "MORTGAGE", 10.0),
		holding(3_000_000, "B", "PERSONAL", 14.0),
		holding(500_000, "C", "CORPORATE", 18.0),
	}

	forward := NewPortfolio()
	for _, d := range deals {
		forward.Ingest(d)
	}

	backward := NewPortfolio()
	for i := len(deals) - 1; i >= 0; i-- {
		backward.Ingest(deals[i])
	}

	if forward.Grade() != backward.Grade() {
		t.Errorf("Grade depends on ingest order: %q vs %q", forward.Grade(), backward.Grade())
	}
	if forward.Category() != backward.Category() {
		t.Errorf("Category depends on ingest order: %q vs %q", forward.Category(), backward.Category())
	}
	if forward.EarningRate() != backward.EarningRate() {
		t.Errorf("EarningRate depends on ingest order: %v vs %v", forward.EarningRate(), backward.EarningRate())
	}
}

func TestPortfolioServiceGet(t *testing.T) {
	db := setupTestDB(t)
	bank := seedBank(t, db)
	user := seedUser(t, db, bank)
	mortgage := seedDeal(t, db, "아파트 담보 1호", "MORTGAGE", "A", "NORMAL", 9.0, 12)
	personal := seedDeal(t, db, "개인 신용 3호", "PERSONAL", "C", "DELAY", 15.0, 6)

	seedSubscription(t, db, user.ID, mortgage.ID, 3_000_000, nil)
	seedSubscription(t, db, user.ID, personal.ID, 1_000_000, nil)

	svc := NewPortfolioService(repositories.NewInvestmentRepository(db))
	result, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if result.Grade != "A" {
		t.Errorf("grade = %q, want A", result.Grade)
	}
	if result.Category != "부동산 담보" {
		t.Errorf("category = %q, want 부동산 담보", result.Category)
	}
	// (9*3M + 15*1M) / 4M = 10.50
	if result.EarningRate != 10.5 {
		t.Errorf("earningRate = %v, want 10.5", result.EarningRate)
	}
}

func TestPortfolioServiceGetEmpty(t *testing.T) {
	db := setupTestDB(t)
	bank := seedBank(t, db)
	user := seedUser(t, db, bank)

	svc := NewPortfolioService(repositories.NewInvestmentRepository(db))
	result, err := svc.Get(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if result.Grade != "" || result.Category != "" || result.EarningRate != 0 {
		t.Errorf("empty portfolio = %+v, want zero values", result)
	}
}

func TestPortfolioIgnoresMissingDeal(t *testing.T) {
	p := NewPortfolio()
	p.Ingest(nil)
	p.Ingest(&models.UserDeal{Amount: 1_000_000})

	if got := p.EarningRate(); got != 0 {
		t.Errorf("EarningRate() = %v, want 0", got)
	}
}
