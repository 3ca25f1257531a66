package services

import (
	"testing"
	"time"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with the full schema
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedBank(t *testing.T, db *gorm.DB) *models.Bank {
	t.Helper()
	bank := &models.Bank{Code: "004", Name: "국민은행"}
	if err := db.Create(bank).Error; err != nil {
		t.Fatalf("seed bank: %v", err)
	}
	return bank
}

func seedUser(t *testing.T, db *gorm.DB, bank *models.Bank) *models.User {
	t.Helper()
	user := &models.User{
		Username:               "investor",
		Email:                  "investor@example.com",
		Password:               "x",
		DepositBankID:          bank.ID,
		DepositAccount:         "110-234-567890",
		DepositAmount:          500_000,
		NetInvestLimit:         30_000_000,
		NetMortgageInvestLimit: 10_000_000,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user
}

func seedDeal(t *testing.T, db *gorm.DB, name, category, grade, status string, rate float64, period int) *models.Deal {
	t.Helper()
	deal := &models.Deal{
		Name:            name,
		Category:        category,
		Grade:           grade,
		Status:          status,
		EarningRate:     rate,
		RepaymentPeriod: period,
	}
	if err := db.Create(deal).Error; err != nil {
		t.Fatalf("seed deal: %v", err)
	}
	return deal
}

// seedSchedule creates rounds of an option's payback schedule with an
// even principal split and the remainder on the last round
func seedSchedule(t *testing.T, db *gorm.DB, dealID uint, option int64, rounds int, interest, tax, commission int64) {
	t.Helper()
	base := option / int64(rounds)
	for round := 1; round <= rounds; round++ {
		principal := base
		if round == rounds {
			principal = option - base*int64(rounds-1)
		}
		row := &models.PaybackSchedule{
			DealID:      dealID,
			Option:      option,
			Principal:   principal,
			Interest:    interest,
			Tax:         tax,
			Commission:  commission,
			Round:       round,
			PaybackDate: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, round, 0),
		}
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("seed schedule: %v", err)
		}
	}
}

// seedSubscription creates a user_deal with payback rows in the given
// states, one round per state
func seedSubscription(t *testing.T, db *gorm.DB, userID, dealID uint, amount int64, paybacks []models.UserPayback) *models.UserDeal {
	t.Helper()
	userDeal := &models.UserDeal{UserID: userID, DealID: dealID, Amount: amount}
	if err := db.Create(userDeal).Error; err != nil {
		t.Fatalf("seed subscription: %v", err)
	}
	for i := range paybacks {
		paybacks[i].UserDealID = userDeal.ID
		if paybacks[i].Round == 0 {
			paybacks[i].Round = i + 1
		}
		if paybacks[i].PaybackDate.IsZero() {
			paybacks[i].PaybackDate = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, i+1, 0)
		}
		if err := db.Create(&paybacks[i]).Error; err != nil {
			t.Fatalf("seed payback: %v", err)
		}
	}
	return userDeal
}
