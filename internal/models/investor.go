package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Risk levels accepted at investment creation.
const (
	RiskConservative = "conservative"
	RiskBalanced     = "balanced"
	RiskAggressive   = "aggressive"
)

// Investor is one identity's cumulative gold investment. Amount is invested
// principal in currency, never gold weight; it must stay non-negative.
type Investor struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Username  string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email     string          `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	Amount    decimal.Decimal `gorm:"type:numeric(30,10);not null" json:"amount"`
	RiskLevel string          `gorm:"type:varchar(20);not null" json:"risk_level"`
	// IsActive is carried over from the original schema; nothing reads it.
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;autoUpdateTime" json:"updated_at"`
}

func (Investor) TableName() string {
	return "investors"
}

// ValidRiskLevel reports whether the already-normalized value is one of the
// three accepted risk levels.
func ValidRiskLevel(v string) bool {
	switch v {
	case RiskConservative, RiskBalanced, RiskAggressive:
		return true
	}
	return false
}
