package gormrepository

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"goldledger/internal/models"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(fn)
}

func (s *Store) GetInvestorByEmail(ctx context.Context, email string) (*models.Investor, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	var item models.Investor
	err := s.db.WithContext(ctx).
		Where("email = ?", email).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetInvestorByEmailForUpdate locks the investor row for the duration of the
// surrounding transaction. Must be called with the tx handed to an InTx fn.
func (s *Store) GetInvestorByEmailForUpdate(ctx context.Context, tx *gorm.DB, email string) (*models.Investor, error) {
	if tx == nil {
		return nil, nil
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	var item models.Investor
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("email = ?", email).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListInvestorsByEmail(ctx context.Context, email string) ([]models.Investor, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}
	var items []models.Investor
	if err := s.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListInvestors(ctx context.Context, limit int) ([]models.Investor, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var items []models.Investor
	if err := s.db.WithContext(ctx).
		Order("created_at asc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) CreateInvestorTx(ctx context.Context, tx *gorm.DB, item *models.Investor) error {
	if tx == nil || item == nil {
		return nil
	}
	return tx.WithContext(ctx).Create(item).Error
}

func (s *Store) UpdateInvestorAmountTx(ctx context.Context, tx *gorm.DB, id uint, amount decimal.Decimal) error {
	if tx == nil || id == 0 {
		return nil
	}
	return tx.WithContext(ctx).
		Model(&models.Investor{}).
		Where("id = ?", id).
		Update("amount", amount).Error
}

func (s *Store) InsertAuditTx(ctx context.Context, tx *gorm.DB, item *models.LedgerAudit) error {
	if tx == nil || item == nil {
		return nil
	}
	return tx.WithContext(ctx).Create(item).Error
}

func (s *Store) InsertRateSnapshot(ctx context.Context, item *models.RateSnapshot) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) ListRateSnapshots(ctx context.Context, limit int) ([]models.RateSnapshot, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var items []models.RateSnapshot
	if err := s.db.WithContext(ctx).
		Model(&models.RateSnapshot{}).
		Order("quoted_at desc").
		Limit(limit).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
