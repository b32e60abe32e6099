package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateSnapshot is a periodically persisted quote, price per 100 grams.
type RateSnapshot struct {
	ID       uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Price    decimal.Decimal `gorm:"type:numeric(20,10);not null" json:"price"`
	Currency string          `gorm:"type:varchar(10);not null" json:"currency"`
	QuotedAt time.Time       `gorm:"type:timestamptz;not null;index" json:"quoted_at"`
}

func (RateSnapshot) TableName() string {
	return "rate_snapshots"
}
