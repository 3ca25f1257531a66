package services

import (
	"context"
	"errors"
	"time"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/adapters/persistence/repositories"
	"github.com/Pratiable/22percent/internal/core/domain"
	"github.com/Pratiable/22percent/internal/pkg/export"
	"github.com/Pratiable/22percent/internal/pkg/pagination"

	"gorm.io/gorm"
)

// cancelWindow is how long a fresh subscription stays locked before it
// becomes cancelable
const cancelWindow = 24 * time.Hour

// InvestmentService handles investment history, deal information and
// the batch subscription transaction
type InvestmentService struct {
	db             *gorm.DB
	dealRepo       *repositories.DealRepository
	investmentRepo *repositories.InvestmentRepository
	userRepo       repositories.UserRepository
}

// NewInvestmentService creates a new investment service
func NewInvestmentService(
	db *gorm.DB,
	dealRepo *repositories.DealRepository,
	investmentRepo *repositories.InvestmentRepository,
	userRepo repositories.UserRepository,
) *InvestmentService {
	return &InvestmentService{
		db:             db,
		dealRepo:       dealRepo,
		investmentRepo: investmentRepo,
		userRepo:       userRepo,
	}
}

// ============================================================
// Investment history
// ============================================================

// HistoryInput narrows and windows the investment history
type HistoryInput struct {
	Window *pagination.Window
	Status string
	Search string
}

// HistorySummary aggregates the filtered set of subscriptions
type HistorySummary struct {
	Total        int64 `json:"total"`
	PaidTotal    int64 `json:"paidTotal"`
	PaidInterest int64 `json:"paidInterest"`
}

// HistoryItem is one subscription line in the history view
type HistoryItem struct {
	ID           uint    `json:"id"`
	DealIndex    uint    `json:"dealIndex"`
	Item         string  `json:"item"`
	Amount       int64   `json:"amount"`
	Principal    int64   `json:"principal"`
	Interest     int64   `json:"interest"`
	Date         string  `json:"date"`
	Grade        string  `json:"grade"`
	InterestRate float64 `json:"interestRate"`
	Term         int     `json:"term"`
	Status       string  `json:"status"`
	Repayment    int     `json:"repayment"`
	Cycle        int     `json:"cycle"`
	IsCancelable bool    `json:"isCancelable"`
}

// HistoryResult is the full history response
type HistoryResult struct {
	Summary HistorySummary   `json:"summary"`
	Count   map[string]int64 `json:"count"`
	Items   []HistoryItem    `json:"items"`
}

// History returns a user's investment history: per-status counts, an
// aggregate summary of the filtered set and a windowed item list.
func (s *InvestmentService) History(ctx context.Context, userID uint, input *HistoryInput) (*HistoryResult, error) {
	countAll, err := s.investmentRepo.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	count := map[string]int64{"all": countAll}
	for _, status := range domain.AllDealStatuses() {
		statusCount, err := s.investmentRepo.CountByUserAndStatus(ctx, userID, status)
		if err != nil {
			return nil, err
		}
		count[string(status)] = statusCount
	}

	userDeals, err := s.investmentRepo.ListByUser(ctx, userID, input.Status, input.Search)
	if err != nil {
		return nil, err
	}

	var summary HistorySummary
	for _, userDeal := range userDeals {
		paid := SumPaidPaybacks(userDeal.Paybacks)
		summary.Total += userDeal.Amount
		summary.PaidTotal += paid.Principal
		summary.PaidInterest += paid.Interest
	}

	from, to := input.Window.Slice(len(userDeals))
	items := make([]HistoryItem, 0, to-from)
	for _, userDeal := range userDeals[from:to] {
		items = append(items, buildHistoryItem(userDeal))
	}

	return &HistoryResult{
		Summary: summary,
		Count:   count,
		Items:   items,
	}, nil
}

func buildHistoryItem(userDeal *models.UserDeal) HistoryItem {
	all := SumPaybacks(userDeal.Paybacks)
	paid := SumPaidPaybacks(userDeal.Paybacks)

	repayment := 0
	if userDeal.Amount > 0 {
		repayment = int(paid.Principal * 100 / userDeal.Amount)
	}

	item := HistoryItem{
		ID:           userDeal.ID,
		Amount:       userDeal.Amount,
		Principal:    all.Principal,
		Interest:     all.Interest,
		Date:         userDeal.CreatedAt.Local().Format("06.01.02"),
		Repayment:    repayment,
		Cycle:        CountPaid(userDeal.Paybacks),
		IsCancelable: userDeal.CreatedAt.Add(cancelWindow).Before(time.Now()),
	}
	if userDeal.Deal != nil {
		item.DealIndex = userDeal.Deal.ID
		item.Item = userDeal.Deal.Name
		item.Grade = userDeal.Deal.GradeLabel()
		item.InterestRate = userDeal.Deal.EarningRate
		item.Term = userDeal.Deal.RepaymentPeriod
		item.Status = userDeal.Deal.Status
	}
	return item
}

// ============================================================
// Export
// ============================================================

// ExportRows builds the tabular export of all of a user's
// subscriptions, newest first
func (s *InvestmentService) ExportRows(ctx context.Context, userID uint) ([]export.InvestmentRow, error) {
	userDeals, err := s.investmentRepo.ListByUser(ctx, userID, "", "")
	if err != nil {
		return nil, err
	}

	rows := make([]export.InvestmentRow, 0, len(userDeals))
	for _, userDeal := range userDeals {
		paid := SumPaidPaybacks(userDeal.Paybacks)
		row := export.InvestmentRow{
			Date:           userDeal.CreatedAt.Local().Format("2006-01-02"),
			InvestmentID:   userDeal.ID,
			Amount:         userDeal.Amount,
			PaidPrincipal:  paid.Principal,
			PaidInterest:   paid.Interest,
			PaidTax:        paid.Tax,
			PaidCommission: paid.Commission,
		}
		if userDeal.Deal != nil {
			row.DealName = userDeal.Deal.Name
			row.Grade = userDeal.Deal.GradeLabel()
			row.EarningRate = userDeal.Deal.EarningRate
			row.Term = userDeal.Deal.RepaymentPeriod
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ============================================================
// Deal information
// ============================================================

// DealInfo is the subscription-facing view of one deal
type DealInfo struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Category         string  `json:"category"`
	Grade            string  `json:"grade"`
	EarningRate      float64 `json:"earningRate"`
	RepaymentPeriod  int     `json:"repaymentPeriod"`
	Amount           int64   `json:"amount"`
	InvestmentOption []int64 `json:"investmentOption"`
}

// DealInfoResult carries the deals plus the signed user's deposit info
type DealInfoResult struct {
	InvestInfo     []DealInfo `json:"investInfo"`
	DepositAmount  int64      `json:"depositAmount"`
	Name           string     `json:"name"`
	DepositBank    string     `json:"depositBank"`
	DepositAccount string     `json:"depositAccount"`
}

// GetDealInfo returns the subscription view of the requested deals
func (s *InvestmentService) GetDealInfo(ctx context.Context, userID uint, dealIDs []uint) (*DealInfoResult, error) {
	if len(dealIDs) == 0 {
		return nil, domain.ErrMalformedRequest
	}

	deals, err := s.dealRepo.ListByIDs(ctx, dealIDs)
	if err != nil {
		return nil, err
	}
	if len(deals) != len(dealIDs) {
		return nil, domain.ErrInvalidDeal
	}

	investInfo := make([]DealInfo, 0, len(deals))
	for _, deal := range deals {
		subscribed, err := s.dealRepo.SumSubscribedAmount(ctx, deal.ID)
		if err != nil {
			return nil, err
		}
		options, err := s.dealRepo.ListScheduleOptions(ctx, deal.ID)
		if err != nil {
			return nil, err
		}

		investInfo = append(investInfo, DealInfo{
			ID:               deal.ID,
			Name:             deal.Name,
			Category:         deal.CategoryLabel(),
			Grade:            deal.GradeLabel(),
			EarningRate:      deal.EarningRate,
			RepaymentPeriod:  deal.RepaymentPeriod,
			Amount:           subscribed,
			InvestmentOption: options,
		})
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := &DealInfoResult{
		InvestInfo:     investInfo,
		DepositAmount:  user.DepositAmount,
		Name:           user.Username,
		DepositAccount: user.DepositAccount,
	}
	if user.DepositBank != nil {
		result.DepositBank = user.DepositBank.Name
	}
	return result, nil
}

// ============================================================
// Batch subscription transaction
// ============================================================

// SubscriptionRequest is one requested (deal, amount) pair
type SubscriptionRequest struct {
	DealID uint  `json:"id"`
	Amount int64 `json:"amount"`
}

// pendingSubscription is a validated pair with its matched schedule
type pendingSubscription struct {
	dealID uint
	amount int64
	rounds []*models.PaybackSchedule
}

// Subscribe validates the whole batch against deal availability and
// offered schedule options, then persists every subscription and its
// payback rows inside one transaction. Any invalid pair or conflict
// rejects the entire batch; no partial state is ever committed.
func (s *InvestmentService) Subscribe(ctx context.Context, userID uint, requests []SubscriptionRequest) error {
	if len(requests) == 0 {
		return domain.ErrMalformedRequest
	}

	pending := make([]pendingSubscription, 0, len(requests))
	for _, req := range requests {
		if req.DealID == 0 || req.Amount <= 0 {
			return domain.ErrMalformedRequest
		}

		if _, err := s.dealRepo.GetByIDAndStatus(ctx, req.DealID, domain.DealApplying); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrInvalidDeal
			}
			return err
		}

		rounds, err := s.dealRepo.GetScheduleRounds(ctx, req.DealID, req.Amount)
		if err != nil {
			return err
		}
		if len(rounds) == 0 {
			return domain.ErrInvalidOption
		}

		pending = append(pending, pendingSubscription{
			dealID: req.DealID,
			amount: req.Amount,
			rounds: rounds,
		})
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := s.investmentRepo.WithTx(tx)

		for _, sub := range pending {
			userDeal := &models.UserDeal{
				UserID: userID,
				DealID: sub.dealID,
				Amount: sub.amount,
			}
			if err := txRepo.CreateUserDeal(ctx, userDeal); err != nil {
				return err
			}

			paybacks := make([]models.UserPayback, 0, len(sub.rounds))
			for _, round := range sub.rounds {
				paybacks = append(paybacks, models.UserPayback{
					UserDealID:  userDeal.ID,
					Principal:   round.Principal,
					Interest:    round.Interest,
					Tax:         round.Tax,
					Commission:  round.Commission,
					Round:       round.Round,
					PaybackDate: round.PaybackDate,
					State:       string(domain.PaybackToBePaid),
				})
			}
			if err := txRepo.BulkCreatePaybacks(ctx, paybacks); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateInvestment
		}
		return err
	}
	return nil
}
