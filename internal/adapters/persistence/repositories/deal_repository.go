package repositories

import (
	"context"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/core/domain"

	"gorm.io/gorm"
)

// DealRepository handles read access to deals and their payback
// schedule templates. Deals are owned by an external deal-management
// process; nothing here mutates them.
type DealRepository struct {
	db *gorm.DB
}

// NewDealRepository creates a new deal repository
func NewDealRepository(db *gorm.DB) *DealRepository {
	return &DealRepository{db: db}
}

// GetByIDAndStatus gets a deal by ID filtered to the given status
func (r *DealRepository) GetByIDAndStatus(ctx context.Context, id uint, status domain.DealStatus) (*models.Deal, error) {
	var deal models.Deal
	err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, string(status)).
		First(&deal).Error
	if err != nil {
		return nil, err
	}
	return &deal, nil
}

// ListByIDs gets deals by a set of IDs
func (r *DealRepository) ListByIDs(ctx context.Context, ids []uint) ([]*models.Deal, error) {
	var deals []*models.Deal
	err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Order("id ASC").
		Find(&deals).Error
	return deals, err
}

// SumSubscribedAmount sums all subscription amounts placed on a deal
func (r *DealRepository) SumSubscribedAmount(ctx context.Context, dealID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.UserDeal{}).
		Where("deal_id = ?", dealID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// GetScheduleRounds gets the payback schedule rounds for a deal at the
// given option amount, ordered by round
func (r *DealRepository) GetScheduleRounds(ctx context.Context, dealID uint, option int64) ([]*models.PaybackSchedule, error) {
	var rounds []*models.PaybackSchedule
	err := r.db.WithContext(ctx).
		Where("deal_id = ? AND `option` = ?", dealID, option).
		Order("payback_round ASC").
		Find(&rounds).Error
	return rounds, err
}

// HasSchedule reports whether a payback schedule exists for
// (deal, option)
func (r *DealRepository) HasSchedule(ctx context.Context, dealID uint, option int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PaybackSchedule{}).
		Where("deal_id = ? AND `option` = ?", dealID, option).
		Count(&count).Error
	return count > 0, err
}

// ListScheduleOptions lists the distinct option amounts offered for a
// deal, ascending
func (r *DealRepository) ListScheduleOptions(ctx context.Context, dealID uint) ([]int64, error) {
	var options []int64
	err := r.db.WithContext(ctx).
		Model(&models.PaybackSchedule{}).
		Where("deal_id = ?", dealID).
		Distinct().
		Order("`option` ASC").
		Pluck("option", &options).Error
	return options, err
}
