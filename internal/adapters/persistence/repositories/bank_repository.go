package repositories

import (
	"context"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// bankRepository implements BankRepository interface
type bankRepository struct {
	db *gorm.DB
}

// NewBankRepository creates a new bank repository
func NewBankRepository(db *gorm.DB) BankRepository {
	return &bankRepository{db: db}
}

// GetByCode gets a bank by code
func (r *bankRepository) GetByCode(ctx context.Context, code string) (*models.Bank, error) {
	var bank models.Bank
	err := r.db.WithContext(ctx).
		Where("code = ?", code).
		First(&bank).Error
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

// List lists all banks
func (r *bankRepository) List(ctx context.Context) ([]*models.Bank, error) {
	var banks []*models.Bank
	err := r.db.WithContext(ctx).
		Order("code ASC").
		Find(&banks).Error
	return banks, err
}
