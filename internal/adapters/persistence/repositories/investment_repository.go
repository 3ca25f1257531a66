package repositories

import (
	"context"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/core/domain"

	"gorm.io/gorm"
)

// InvestmentRepository handles user_deal and user_payback data access
type InvestmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository
func NewInvestmentRepository(db *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction
func (r *InvestmentRepository) WithTx(tx *gorm.DB) *InvestmentRepository {
	return &InvestmentRepository{db: tx}
}

// ListByUser lists a user's subscriptions with their deal and payback
// rows, newest first. status narrows by deal status; search matches
// the deal name or deal id.
func (r *InvestmentRepository) ListByUser(ctx context.Context, userID uint, status, search string) ([]*models.UserDeal, error) {
	query := r.db.WithContext(ctx).
		Preload("Deal").
		Preload("Paybacks").
		Joins("JOIN deals ON deals.id = user_deals.deal_id").
		Where("user_deals.user_id = ?", userID)

	if status != "" {
		query = query.Where("deals.status = ?", status)
	}
	if search != "" {
		query = query.Where("deals.name LIKE ? OR deals.id LIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var userDeals []*models.UserDeal
	err := query.Order("user_deals.created_at DESC").Find(&userDeals).Error
	return userDeals, err
}

// CountByUser counts all subscriptions of a user
func (r *InvestmentRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserDeal{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// CountByUserAndStatus counts a user's subscriptions in deals of the
// given status
func (r *InvestmentRepository) CountByUserAndStatus(ctx context.Context, userID uint, status domain.DealStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.UserDeal{}).
		Joins("JOIN deals ON deals.id = user_deals.deal_id").
		Where("user_deals.user_id = ? AND deals.status = ?", userID, string(status)).
		Count(&count).Error
	return count, err
}

// ListByUserAndCategory lists a user's subscriptions in deals of the
// given category, with payback rows
func (r *InvestmentRepository) ListByUserAndCategory(ctx context.Context, userID uint, category domain.DealCategory) ([]*models.UserDeal, error) {
	var userDeals []*models.UserDeal
	err := r.db.WithContext(ctx).
		Preload("Paybacks").
		Joins("JOIN deals ON deals.id = user_deals.deal_id").
		Where("user_deals.user_id = ? AND deals.category = ?", userID, string(category)).
		Find(&userDeals).Error
	return userDeals, err
}

// CreateUserDeal creates a subscription row. A duplicate (user, deal)
// pair surfaces as gorm.ErrDuplicatedKey.
func (r *InvestmentRepository) CreateUserDeal(ctx context.Context, userDeal *models.UserDeal) error {
	return r.db.WithContext(ctx).Create(userDeal).Error
}

// BulkCreatePaybacks creates all payback rows of a subscription in one
// insert
func (r *InvestmentRepository) BulkCreatePaybacks(ctx context.Context, paybacks []models.UserPayback) error {
	if len(paybacks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&paybacks).Error
}
