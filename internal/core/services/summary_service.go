package services

import (
	"context"

	"github.com/Pratiable/22percent/internal/adapters/persistence/repositories"
	"github.com/Pratiable/22percent/internal/core/domain"

	"github.com/shopspring/decimal"
)

// StatusSums holds the per-status aggregates of one summary bucket
type StatusSums struct {
	TotalAmount     int64 `json:"total_amount"`
	TotalInterest   int64 `json:"total_interest"`
	TotalCommission int64 `json:"total_commission"`
	PaidPrincipal   int64 `json:"paid_principal"`
	PaidInterest    int64 `json:"paid_interest"`
	PaidCommission  int64 `json:"paid_commission"`
}

// Outstanding returns the capital not yet returned for the bucket
func (s StatusSums) Outstanding() int64 {
	return s.TotalAmount - s.PaidPrincipal
}

// DepositResult describes the user's deposit account
type DepositResult struct {
	Bank    string `json:"bank"`
	Account string `json:"account"`
	Balance int64  `json:"balance"`
}

// InvestLimitResult describes remaining investment capacity.
// Remaining values may go negative to signal an over-limit position.
type InvestLimitResult struct {
	Total        int64 `json:"total"`
	RemainTotal  int64 `json:"remainTotal"`
	RemainEstate int64 `json:"remainEstate"`
}

// OverviewResult holds the headline portfolio metrics
type OverviewResult struct {
	EarningRate float64 `json:"earningRate"`
	Asset       int64   `json:"asset"`
	PaidRevenue int64   `json:"paidRevenue"`
}

// InvestStatusResult breaks outstanding capital down by deal status
type InvestStatusResult struct {
	TotalInvest int64 `json:"totalInvest"`
	Complete    int64 `json:"complete"`
	Delay       int64 `json:"delay"`
	Invest      int64 `json:"invest"`
	Loss        int64 `json:"loss"`
	Normal      int64 `json:"normal"`
	Overdue     int64 `json:"overdue"`
	Nonperform  int64 `json:"nonperform"`
}

// SummaryResult is the full financial summary of a user
type SummaryResult struct {
	Deposit      DepositResult      `json:"deposit"`
	InvestLimit  InvestLimitResult  `json:"investLimit"`
	Overview     OverviewResult     `json:"overview"`
	InvestStatus InvestStatusResult `json:"investStatus"`
}

// SummaryService computes cross-status financial summaries
type SummaryService struct {
	userRepo       repositories.UserRepository
	investmentRepo *repositories.InvestmentRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(userRepo repositories.UserRepository, investmentRepo *repositories.InvestmentRepository) *SummaryService {
	return &SummaryService{
		userRepo:       userRepo,
		investmentRepo: investmentRepo,
	}
}

// Get builds the financial summary for a user
func (s *SummaryService) Get(ctx context.Context, userID uint) (*SummaryResult, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	userDeals, err := s.investmentRepo.ListByUser(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}

	// Partition into one disjoint bucket per status. Every status gets
	// a bucket, held or not.
	sums := make(map[domain.DealStatus]StatusSums, len(domain.AllDealStatuses()))
	for _, status := range domain.AllDealStatuses() {
		sums[status] = StatusSums{}
	}
	for _, userDeal := range userDeals {
		if userDeal.Deal == nil {
			continue
		}
		status := domain.DealStatus(userDeal.Deal.Status)
		bucket := sums[status]

		all := SumPaybacks(userDeal.Paybacks)
		paid := SumPaidPaybacks(userDeal.Paybacks)

		bucket.TotalAmount += userDeal.Amount
		bucket.TotalInterest += all.Interest
		bucket.TotalCommission += all.Commission
		bucket.PaidPrincipal += paid.Principal
		bucket.PaidInterest += paid.Interest
		bucket.PaidCommission += paid.Commission
		sums[status] = bucket
	}

	var investedAmount, completeAmount, paidRevenue, totalRevenue int64
	for _, bucket := range sums {
		investedAmount += bucket.TotalAmount
		completeAmount += bucket.PaidPrincipal
		paidRevenue += bucket.PaidInterest - bucket.PaidCommission
		totalRevenue += bucket.TotalInterest - bucket.TotalCommission
	}

	lossAmount := sums[domain.DealNonperformCompletion].Outstanding()

	// Capital currently at risk excludes the loss bucket
	investAmount := sums[domain.DealApplying].Outstanding() +
		sums[domain.DealNormal].Outstanding() +
		sums[domain.DealDelay].Outstanding() +
		sums[domain.DealOverdue].Outstanding() +
		sums[domain.DealNonperform].Outstanding()

	investMortgageAmount, err := s.mortgageOutstanding(ctx, userID)
	if err != nil {
		return nil, err
	}

	deposit := DepositResult{
		Account: user.DepositAccount,
		Balance: user.DepositAmount,
	}
	if user.DepositBank != nil {
		deposit.Bank = user.DepositBank.Name
	}

	return &SummaryResult{
		Deposit: deposit,
		InvestLimit: InvestLimitResult{
			Total:        user.NetInvestLimit,
			RemainTotal:  user.NetInvestLimit - investAmount,
			RemainEstate: user.NetMortgageInvestLimit - investMortgageAmount,
		},
		Overview: OverviewResult{
			EarningRate: overviewEarningRate(totalRevenue, lossAmount, completeAmount),
			Asset:       user.DepositAmount + investAmount,
			PaidRevenue: paidRevenue,
		},
		InvestStatus: InvestStatusResult{
			TotalInvest: investedAmount,
			Complete:    completeAmount,
			Delay:       sums[domain.DealDelay].Outstanding(),
			Invest:      investAmount,
			Loss:        lossAmount,
			Normal:      sums[domain.DealNormal].Outstanding() + sums[domain.DealApplying].Outstanding(),
			Overdue:     sums[domain.DealOverdue].Outstanding(),
			Nonperform:  sums[domain.DealNonperform].Outstanding(),
		},
	}, nil
}

// mortgageOutstanding sums the principal of not-yet-paid rows over the
// user's MORTGAGE subscriptions
func (s *SummaryService) mortgageOutstanding(ctx context.Context, userID uint) (int64, error) {
	mortgageDeals, err := s.investmentRepo.ListByUserAndCategory(ctx, userID, domain.CategoryMortgage)
	if err != nil {
		return 0, err
	}

	var outstanding int64
	for _, userDeal := range mortgageDeals {
		outstanding += SumUnpaidPaybacks(userDeal.Paybacks).Principal
	}
	return outstanding, nil
}

// overviewEarningRate computes (totalRevenue - loss) / complete * 100
// rounded to two decimals. A zero complete amount yields 0 rather than
// a division fault.
func overviewEarningRate(totalRevenue, lossAmount, completeAmount int64) float64 {
	if completeAmount == 0 {
		return 0
	}
	rate, _ := decimal.NewFromInt(totalRevenue - lossAmount).
		Div(decimal.NewFromInt(completeAmount)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return rate
}
