package models

import (
	"time"

	"gorm.io/datatypes"
)

// Audit operations.
const (
	AuditOpBuy  = "buy"
	AuditOpSell = "sell"
)

// LedgerAudit records one successful mutation, written in the same
// transaction as the mutation itself.
type LedgerAudit struct {
	ID         uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	InvestorID uint           `gorm:"not null;index" json:"investor_id"`
	Email      string         `gorm:"type:varchar(100);not null;index" json:"email"`
	Operation  string         `gorm:"type:varchar(10);not null" json:"operation"`
	Details    datatypes.JSON `gorm:"type:jsonb;not null" json:"details"`
	CreatedAt  time.Time      `gorm:"type:timestamptz;autoCreateTime" json:"created_at"`
}

func (LedgerAudit) TableName() string {
	return "ledger_audits"
}
