package services

import (
	"context"
	"log"
	"time"

	"github.com/Pratiable/22percent/internal/adapters/persistence/models"
	"github.com/Pratiable/22percent/internal/core/domain"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// SettlementService runs the daily payback settlement job. It is the
// settlement process the ledger core only observes: due TO_BE_PAID
// rows flip to PAID here, never inside a read path.
type SettlementService struct {
	db   *gorm.DB
	cron *cron.Cron
}

// NewSettlementService creates a new settlement service
func NewSettlementService(db *gorm.DB) *SettlementService {
	return &SettlementService{
		db:   db,
		cron: cron.New(),
	}
}

// Start schedules the daily settlement run (00:10)
func (s *SettlementService) Start() {
	s.cron.AddFunc("10 0 * * *", func() {
		settled, err := s.SettleDue(context.Background(), time.Now())
		if err != nil {
			log.Printf("❌ Payback settlement failed: %v", err)
			return
		}
		if settled > 0 {
			log.Printf("💸 Settled %d due payback rows", settled)
		}
	})
	s.cron.Start()
	log.Println("🚀 SettlementService started")
}

// Stop stops the cron scheduler
func (s *SettlementService) Stop() {
	s.cron.Stop()
	log.Println("🛑 SettlementService stopped")
}

// SettleDue marks every TO_BE_PAID row due on or before the given day
// as PAID and returns how many rows were settled
func (s *SettlementService) SettleDue(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&models.UserPayback{}).
		Where("state = ?", string(domain.PaybackToBePaid)).
		Where("payback_date <= ?", now).
		Update("state", string(domain.PaybackPaid))
	return result.RowsAffected, result.Error
}
