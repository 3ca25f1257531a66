package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/Pratiable/22percent/internal/core/domain"
)

// ============================================================
// Auth & User Tables
// ============================================================

// Bank represents the banks master table (read-only after seeding)
type Bank struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:10;uniqueIndex;not null" json:"code"`
	Name string `gorm:"size:50;not null" json:"name"`
}

func (Bank) TableName() string {
	return "banks"
}

// User represents users table
type User struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email          string         `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password       string         `gorm:"size:255;not null" json:"-"`
	Role           string         `gorm:"size:20;default:'USER'" json:"role"`
	IsActive       bool           `gorm:"default:true" json:"is_active"`
	DepositBankID  uint           `gorm:"not null" json:"deposit_bank_id"`
	DepositAccount string         `gorm:"size:30;not null" json:"deposit_account"`
	DepositAmount  int64          `gorm:"not null;default:0" json:"deposit_amount"`
	// Regulatory caps on capital at risk, in KRW
	NetInvestLimit         int64          `gorm:"not null;default:0" json:"net_invest_limit"`
	NetMortgageInvestLimit int64          `gorm:"not null;default:0" json:"net_mortgage_invest_limit"`
	CreatedAt              time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt              time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`

	DepositBank *Bank `gorm:"foreignKey:DepositBankID" json:"deposit_bank,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID             uint      `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           string    `json:"role"`
	IsActive       bool      `json:"is_active"`
	DepositBank    string    `json:"deposit_bank,omitempty"`
	DepositAccount string    `json:"deposit_account"`
	DepositAmount  int64     `json:"deposit_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	resp := &UserResponse{
		ID:             u.ID,
		Username:       u.Username,
		Email:          u.Email,
		Role:           u.Role,
		IsActive:       u.IsActive,
		DepositAccount: u.DepositAccount,
		DepositAmount:  u.DepositAmount,
		CreatedAt:      u.CreatedAt,
	}
	if u.DepositBank != nil {
		resp.DepositBank = u.DepositBank.Name
	}
	return resp
}

// RefreshToken represents refresh_tokens table
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"index;not null" json:"user_id"`
	TokenHash string     `gorm:"size:255;not null;index" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	RevokedAt *time.Time `gorm:"index" json:"revoked_at"`
	User      User       `gorm:"foreignKey:UserID" json:"-"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

// ============================================================
// Ledger Tables
// ============================================================

// Deal represents deals table. Deals are created and moved through
// their lifecycle by a separate deal-management process; this service
// only reads them.
type Deal struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Category        string    `gorm:"size:20;not null;index" json:"category"`
	Grade           string    `gorm:"size:10;not null" json:"grade"`
	Status          string    `gorm:"size:30;not null;index" json:"status"`
	EarningRate     float64   `gorm:"type:decimal(5,2);not null" json:"earning_rate"`
	RepaymentPeriod int       `gorm:"not null" json:"repayment_period"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Deal) TableName() string {
	return "deals"
}

// GradeLabel returns the display label of the deal grade
func (d *Deal) GradeLabel() string {
	return domain.DealGrade(d.Grade).Label()
}

// CategoryLabel returns the display label of the deal category
func (d *Deal) CategoryLabel() string {
	return domain.DealCategory(d.Category).Label()
}

// PaybackSchedule represents payback_schedules table. One row per
// round per offered option amount; template data consumed verbatim
// when a subscription is created.
type PaybackSchedule struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	DealID      uint      `gorm:"not null;index:idx_schedule_deal_option" json:"deal_id"`
	Option      int64     `gorm:"not null;index:idx_schedule_deal_option" json:"option"`
	Principal   int64     `gorm:"not null" json:"principal"`
	Interest    int64     `gorm:"not null" json:"interest"`
	Tax         int64     `gorm:"not null" json:"tax"`
	Commission  int64     `gorm:"not null" json:"commission"`
	Round       int       `gorm:"column:payback_round;not null" json:"round"`
	PaybackDate time.Time `gorm:"type:date;not null" json:"payback_date"`

	Deal *Deal `gorm:"foreignKey:DealID" json:"-"`
}

func (PaybackSchedule) TableName() string {
	return "payback_schedules"
}

// UserDeal represents user_deals table: one user's subscription to a
// deal. The composite unique index serializes duplicate attempts at
// the store.
type UserDeal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_deal" json:"user_id"`
	DealID    uint      `gorm:"not null;uniqueIndex:idx_user_deal" json:"deal_id"`
	Amount    int64     `gorm:"not null" json:"amount"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	User     *User         `gorm:"foreignKey:UserID" json:"-"`
	Deal     *Deal         `gorm:"foreignKey:DealID" json:"deal,omitempty"`
	Paybacks []UserPayback `gorm:"foreignKey:UserDealID" json:"paybacks,omitempty"`
}

func (UserDeal) TableName() string {
	return "user_deals"
}

// UserPayback represents user_paybacks table: one scheduled repayment
// event. Rows are created TO_BE_PAID at subscription time and flipped
// to PAID by the settlement job.
type UserPayback struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserDealID  uint      `gorm:"not null;index" json:"user_deal_id"`
	Principal   int64     `gorm:"not null" json:"principal"`
	Interest    int64     `gorm:"not null" json:"interest"`
	Tax         int64     `gorm:"not null" json:"tax"`
	Commission  int64     `gorm:"not null" json:"commission"`
	Round       int       `gorm:"column:payback_round;not null" json:"round"`
	PaybackDate time.Time `gorm:"type:date;not null" json:"payback_date"`
	State       string    `gorm:"size:20;not null;index" json:"state"`

	UserDeal *UserDeal `gorm:"foreignKey:UserDealID" json:"-"`
}

func (UserPayback) TableName() string {
	return "user_paybacks"
}

// IsPaid reports whether the row has been settled
func (p *UserPayback) IsPaid() bool {
	return p.State == string(domain.PaybackPaid)
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate runs auto migration for all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Bank{},
		&User{},
		&RefreshToken{},
		&Deal{},
		&PaybackSchedule{},
		&UserDeal{},
		&UserPayback{},
	)
}
