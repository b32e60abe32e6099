package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"goldledger/internal/models"
)

// Ledger is the persistence surface for investor records, audits, and rate
// snapshots. Mutations that read-modify-write an investor run inside InTx
// and lock the row via GetInvestorByEmailForUpdate, so concurrent buy/sell
// calls for one email serialize.
type Ledger interface {
	InTx(ctx context.Context, fn func(tx *gorm.DB) error) error

	GetInvestorByEmail(ctx context.Context, email string) (*models.Investor, error)
	GetInvestorByEmailForUpdate(ctx context.Context, tx *gorm.DB, email string) (*models.Investor, error)
	ListInvestorsByEmail(ctx context.Context, email string) ([]models.Investor, error)
	ListInvestors(ctx context.Context, limit int) ([]models.Investor, error)
	CreateInvestorTx(ctx context.Context, tx *gorm.DB, item *models.Investor) error
	UpdateInvestorAmountTx(ctx context.Context, tx *gorm.DB, id uint, amount decimal.Decimal) error

	InsertAuditTx(ctx context.Context, tx *gorm.DB, item *models.LedgerAudit) error

	InsertRateSnapshot(ctx context.Context, item *models.RateSnapshot) error
	ListRateSnapshots(ctx context.Context, limit int) ([]models.RateSnapshot, error)
}
