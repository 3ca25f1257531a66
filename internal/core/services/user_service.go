package services

import (
	"context"
	"errors"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// UserService handles user profile operations
type UserService struct {
	userRepo repositories.UserRepository
	bankRepo repositories.BankRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repositories.UserRepository, bankRepo repositories.BankRepository) *UserService {
	return &UserService{
		userRepo: userRepo,
		bankRepo: bankRepo,
	}
}

// GetProfile returns a user's profile with deposit bank info
func (s *UserService) GetProfile(ctx context.Context, userID uint) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

// UpdateDepositAccountInput represents a deposit account change
type UpdateDepositAccountInput struct {
	DepositBank    string `json:"deposit_bank"`
	DepositAccount string `json:"deposit_account"`
}

// UpdateDepositAccount changes the user's payout account
func (s *UserService) UpdateDepositAccount(ctx context.Context, userID uint, input *UpdateDepositAccountInput) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	bank, err := s.bankRepo.GetByCode(ctx, input.DepositBank)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBankNotFound
		}
		return nil, err
	}

	user.DepositBankID = bank.ID
	user.DepositAccount = input.DepositAccount
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	user.DepositBank = bank

	return user.ToResponse(), nil
}

// List lists users with pagination (admin)
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.UserResponse, int64, error) {
	users, total, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, total, nil
}

// ListBanks lists the supported deposit banks
func (s *UserService) ListBanks(ctx context.Context) ([]*models.Bank, error) {
	return s.bankRepo.List(ctx)
}
