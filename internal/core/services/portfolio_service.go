package services

import (
	"context"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/adapters/persistence/repositories"
	"github.com/Pratiable/22percent/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Portfolio accumulates a user's subscriptions into an amount-weighted
// classification. Each subscription is folded in exactly once; the
// finalizing queries are idempotent and independent of ingest order.
type Portfolio struct {
	totalAmount      int64
	weightedRate     decimal.Decimal
	amountByGrade    map[string]int64
	amountByCategory map[string]int64
}

// NewPortfolio creates an empty portfolio accumulator
func NewPortfolio() *Portfolio {
	return &Portfolio{
		weightedRate:     decimal.Zero,
		amountByGrade:    make(map[string]int64),
		amountByCategory: make(map[string]int64),
	}
}

// Ingest folds one subscription into the accumulator. The deal
// relation must be loaded.
func (p *Portfolio) Ingest(userDeal *models.UserDeal) {
	if userDeal == nil || userDeal.Deal == nil {
		return
	}

	amount := userDeal.Amount
	p.totalAmount += amount
	p.weightedRate = p.weightedRate.Add(
		decimal.NewFromFloat(userDeal.Deal.EarningRate).Mul(decimal.NewFromInt(amount)))

	p.amountByGrade[domain.DealGrade(userDeal.Deal.Grade).Label()] += amount
	p.amountByCategory[domain.DealCategory(userDeal.Deal.Category).Label()] += amount
}

// Grade returns the label of the grade holding the largest invested
// amount, or "" for an empty portfolio
func (p *Portfolio) Grade() string {
	return dominantLabel(p.amountByGrade)
}

// Category returns the label of the category holding the largest
// invested amount, or "" for an empty portfolio
func (p *Portfolio) Category() string {
	return dominantLabel(p.amountByCategory)
}

// EarningRate returns the amount-weighted average earning rate rounded
// to two decimals. An empty portfolio yields 0, never a division by
// zero.
func (p *Portfolio) EarningRate() float64 {
	if p.totalAmount == 0 {
		return 0
	}
	rate, _ := p.weightedRate.
		Div(decimal.NewFromInt(p.totalAmount)).
		Round(2).
		Float64()
	return rate
}

// dominantLabel picks the label with the largest amount. Ties resolve
// to the lexicographically smaller label so the result is
// deterministic across map iteration orders.
func dominantLabel(amounts map[string]int64) string {
	best := ""
	var bestAmount int64
	for label, amount := range amounts {
		if best == "" || amount > bestAmount || (amount == bestAmount && label < best) {
			best = label
			bestAmount = amount
		}
	}
	return best
}

// PortfolioResult is the final classification of a user's holdings
type PortfolioResult struct {
	Grade       string  `json:"grade"`
	EarningRate float64 `json:"earningRate"`
	Category    string  `json:"category"`
}

// PortfolioService classifies a user's investment portfolio
type PortfolioService struct {
	investmentRepo *repositories.InvestmentRepository
}

// NewPortfolioService creates a new portfolio service
func NewPortfolioService(investmentRepo *repositories.InvestmentRepository) *PortfolioService {
	return &PortfolioService{investmentRepo: investmentRepo}
}

// Get builds the portfolio classification for a user
func (s *PortfolioService) Get(ctx context.Context, userID uint) (*PortfolioResult, error) {
	userDeals, err := s.investmentRepo.ListByUser(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}

	portfolio := NewPortfolio()
	for _, userDeal := range userDeals {
		portfolio.Ingest(userDeal)
	}

	return &PortfolioResult{
		Grade:       portfolio.Grade(),
		EarningRate: portfolio.EarningRate(),
		Category:    portfolio.Category(),
	}, nil
}
