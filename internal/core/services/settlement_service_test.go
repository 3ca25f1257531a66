package services

import (
	"context"
	"testing"
	"time"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/core/domain"
)

func TestSettleDue(t *testing.T) {
	db := setupTestDB(t)
	bank := seedBank(t, db)
	user := seedUser(t, db, bank)
	deal := seedDeal(t, db, "정상 상환 상품", "MORTGAGE", "A", "NORMAL", 9.0, 12)

	now := time.Date(2026, time.August, 29, 0, 10, 0, 0, time.UTC)
	seedSubscription(t, db, user.ID, deal.ID, 1_000_000, []models.UserPayback{
		{Principal: 200_000, State: string(domain.PaybackToBePaid), Round: 1, PaybackDate: now.AddDate(0, 0, -30)},
		{Principal: 200_000, State: string(domain.PaybackToBePaid), Round: 2, PaybackDate: now},
		{Principal: 200_000, State: string(domain.PaybackToBePaid), Round: 3, PaybackDate: now.AddDate(0, 1, 0)},
		{Principal: 200_000, State: string(domain.PaybackPaid), Round: 4, PaybackDate: now.AddDate(0, 0, -60)},
	})

	svc := NewSettlementService(db)
	settled, err := svc.SettleDue(context.Background(), now)
	if err != nil {
		t.Fatalf("SettleDue() error = %v", err)
	}
	if settled != 2 {
		t.Errorf("settled = %d, want 2", settled)
	}

	var unpaidCount, paidCount int64
	db.Model(&models.UserPayback{}).Where("state = ?", string(domain.PaybackToBePaid)).Count(&unpaidCount)
	db.Model(&models.UserPayback{}).Where("state = ?", string(domain.PaybackPaid)).Count(&paidCount)
	if unpaidCount != 1 || paidCount != 3 {
		t.Errorf("rows after settlement = (%d unpaid, %d paid), want (1, 3)", unpaidCount, paidCount)
	}

	// A second run has nothing left to settle
	settled, err = svc.SettleDue(context.Background(), now)
	if err != nil {
		t.Fatalf("second SettleDue() error = %v", err)
	}
	if settled != 0 {
		t.Errorf("second run settled = %d, want 0", settled)
	}
}
