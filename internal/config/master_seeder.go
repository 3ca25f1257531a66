package config

import (
	"log"
	"time"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/core/domain"

	"gorm.io/gorm"
)

// SeedMasterData seeds banks and a starter set of deals with their
// payback schedule templates. In production deals come from the
// deal-management system; these rows exist so a fresh environment is
// usable immediately.
func SeedMasterData(db *gorm.DB) error {
	if err := seedBanks(db); err != nil {
		return err
	}

	if err := seedDeals(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedBanks(db *gorm.DB) error {
	var count int64
	db.Model(&models.Bank{}).Count(&count)
	if count > 0 {
		return nil
	}

	banks := []models.Bank{
		{Code: "004", Name: "국민은행"},
		{Code: "088", Name: "신한은행"},
		{Code: "020", Name: "우리은행"},
		{Code: "081", Name: "하나은행"},
		{Code: "090", Name: "카카오뱅크"},
	}
	return db.Create(&banks).Error
}

func seedDeals(db *gorm.DB) error {
	var count int64
	db.Model(&models.Deal{}).Count(&count)
	if count > 0 {
		return nil
	}

	deals := []models.Deal{
		{
			Name:            "역삼동 오피스텔 담보 1호",
			Category:        string(domain.CategoryMortgage),
			Grade:           string(domain.GradeAPlus),
			Status:          string(domain.DealApplying),
			EarningRate:     8.5,
			RepaymentPeriod: 12,
		},
		{
			Name:            "성수동 상가 담보 3호",
			Category:        string(domain.CategoryMortgage),
			Grade:           string(domain.GradeA),
			Status:          string(domain.DealApplying),
			EarningRate:     9.2,
			RepaymentPeriod: 6,
		},
		{
			Name:            "개인 신용 포트폴리오 21호",
			Category:        string(domain.CategoryPersonal),
			Grade:           string(domain.GradeB),
			Status:          string(domain.DealApplying),
			EarningRate:     11.8,
			RepaymentPeriod: 12,
		},
		{
			Name:            "법인 운전자금 7호",
			Category:        string(domain.CategoryCorporate),
			Grade:           string(domain.GradeBPlus),
			Status:          string(domain.DealNormal),
			EarningRate:     10.4,
			RepaymentPeriod: 12,
		},
	}
	if err := db.Create(&deals).Error; err != nil {
		return err
	}

	// One schedule template per offered option amount
	options := []int64{100_000, 500_000, 1_000_000}
	for _, deal := range deals {
		if deal.Status != string(domain.DealApplying) {
			continue
		}
		for _, option := range options {
			rounds := buildScheduleRounds(&deal, option)
			if err := db.Create(&rounds).Error; err != nil {
				return err
			}
		}
	}

	return nil
}

// buildScheduleRounds spreads an option amount over the deal's
// repayment period: even principal with the remainder on the last
// round, simple monthly interest, 27.5% tax and a fixed commission.
func buildScheduleRounds(deal *models.Deal, option int64) []models.PaybackSchedule {
	months := deal.RepaymentPeriod
	principal := option / int64(months)
	lastPrincipal := option - principal*int64(months-1)
	monthlyInterest := int64(float64(option) * deal.EarningRate / 100 / 12)

	rounds := make([]models.PaybackSchedule, 0, months)
	for i := 1; i <= months; i++ {
		roundPrincipal := principal
		if i == months {
			roundPrincipal = lastPrincipal
		}
		rounds = append(rounds, models.PaybackSchedule{
			DealID:      deal.ID,
			Option:      option,
			Principal:   roundPrincipal,
			Interest:    monthlyInterest,
			Tax:         monthlyInterest * 275 / 1000,
			Commission:  monthlyInterest / 10,
			Round:       i,
			PaybackDate: time.Now().AddDate(0, i, 0),
		})
	}
	return rounds
}
