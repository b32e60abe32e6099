package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"goldledger/internal/models"
	"goldledger/internal/rate"
	"goldledger/internal/repository"
)

var hundred = decimal.NewFromInt(100)

// InvestmentService owns every read and mutation over investor records.
// Buy and Sell run inside a transaction with the investor row locked, so
// concurrent calls for the same email serialize instead of racing on
// read-modify-write.
type InvestmentService struct {
	Ledger   repository.Ledger
	Quoter   rate.Quoter
	Logger   *zap.Logger
	Currency string
	// Location is the zone quote timestamps are rendered in. Nil means UTC.
	Location *time.Location
}

type BuyRequest struct {
	Username  string          `json:"username" binding:"required"`
	Email     string          `json:"email" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
	RiskLevel string          `json:"risk_level"`
}

type SellRequest struct {
	Email        string          `json:"email" binding:"required"`
	WeightToSell decimal.Decimal `json:"weightToSell"`
}

type Receipt struct {
	ID             uint            `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	NewAmount      decimal.Decimal `json:"new_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	RiskLevel      string          `json:"risk_level"`
	CreatedAt      time.Time       `json:"created_at"`
}

type SellReceipt struct {
	ID             uint            `json:"id"`
	Username       string          `json:"username"`
	Email          string          `json:"email"`
	PreviousAmount decimal.Decimal `json:"previous_amount"`
	SoldAmount     decimal.Decimal `json:"sold_amount"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	RiskLevel      string          `json:"risk_level"`
	CreatedAt      time.Time       `json:"created_at"`
}

type HoldingsView struct {
	Email             string          `json:"email"`
	Username          string          `json:"username"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	RatePer100g       decimal.Decimal `json:"current_gold_rate_per_100g"`
	GoldHoldingsGrams decimal.Decimal `json:"gold_holdings_grams"`
	RiskLevel         string          `json:"risk_level"`
	LastUpdated       time.Time       `json:"last_updated"`
}

type PortfolioEntry struct {
	ID        uint            `json:"id"`
	Username  string          `json:"username"`
	Email     string          `json:"email"`
	Amount    decimal.Decimal `json:"amount"`
	RiskLevel string          `json:"risk_level"`
	CreatedAt time.Time       `json:"created_at"`
}

type RateView struct {
	Price    decimal.Decimal `json:"price"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
	Timezone string          `json:"timezone"`
}

// NormalizeRiskLevel case-normalizes a risk level before validation.
func NormalizeRiskLevel(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Buy opens a new investment for an unknown email or augments an existing
// one. On the augment path the stored risk level wins; the request value is
// validated but never overwrites it.
func (s *InvestmentService) Buy(ctx context.Context, req BuyRequest) (*Receipt, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(req.Email)
	if username == "" || email == "" {
		return nil, ErrMissingIdentity
	}
	if !req.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}
	risk := NormalizeRiskLevel(req.RiskLevel)
	if !models.ValidRiskLevel(risk) {
		return nil, ErrInvalidRiskLevel
	}

	var receipt *Receipt
	err := s.Ledger.InTx(ctx, func(tx *gorm.DB) error {
		existing, err := s.Ledger.GetInvestorByEmailForUpdate(ctx, tx, email)
		if err != nil {
			return err
		}

		if existing == nil {
			item := &models.Investor{
				Username:  username,
				Email:     email,
				Amount:    req.Amount,
				RiskLevel: risk,
				IsActive:  true,
			}
			if err := s.Ledger.CreateInvestorTx(ctx, tx, item); err != nil {
				return err
			}
			receipt = &Receipt{
				ID:             item.ID,
				Username:       item.Username,
				Email:          item.Email,
				PreviousAmount: decimal.Zero,
				NewAmount:      req.Amount,
				TotalAmount:    req.Amount,
				RiskLevel:      item.RiskLevel,
				CreatedAt:      item.CreatedAt,
			}
			return s.audit(ctx, tx, item.ID, email, models.AuditOpBuy, map[string]any{
				"previous_amount": decimal.Zero,
				"new_amount":      req.Amount,
				"total_amount":    req.Amount,
			})
		}

		previous := existing.Amount
		total := previous.Add(req.Amount)
		if err := s.Ledger.UpdateInvestorAmountTx(ctx, tx, existing.ID, total); err != nil {
			return err
		}
		receipt = &Receipt{
			ID:             existing.ID,
			Username:       existing.Username,
			Email:          existing.Email,
			PreviousAmount: previous,
			NewAmount:      req.Amount,
			TotalAmount:    total,
			RiskLevel:      existing.RiskLevel,
			CreatedAt:      existing.CreatedAt,
		}
		return s.audit(ctx, tx, existing.ID, email, models.AuditOpBuy, map[string]any{
			"previous_amount": previous,
			"new_amount":      req.Amount,
			"total_amount":    total,
		})
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Sell liquidates the requested gold weight at a single freshly drawn quote.
// The same quote bounds the sale and prices the debit; both the ownership
// bound and the non-negative amount check are enforced independently.
func (s *InvestmentService) Sell(ctx context.Context, req SellRequest) (*SellReceipt, error) {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		return nil, ErrNotFound
	}
	if !req.WeightToSell.IsPositive() {
		return nil, ErrInvalidWeight
	}

	quote := s.Quoter.Quote()

	var receipt *SellReceipt
	err := s.Ledger.InTx(ctx, func(tx *gorm.DB) error {
		existing, err := s.Ledger.GetInvestorByEmailForUpdate(ctx, tx, email)
		if err != nil {
			return err
		}
		if existing == nil {
			return ErrNotFound
		}

		ownedGrams := existing.Amount.Div(quote.Price).Mul(hundred)
		if req.WeightToSell.GreaterThan(ownedGrams) {
			return fmt.Errorf("%w: own %s grams", ErrInsufficientHoldings, ownedGrams.Round(2).String())
		}

		soldAmount := req.WeightToSell.Div(hundred).Mul(quote.Price)
		total := existing.Amount.Sub(soldAmount)
		if total.IsNegative() {
			return ErrInsufficientAmount
		}

		if err := s.Ledger.UpdateInvestorAmountTx(ctx, tx, existing.ID, total); err != nil {
			return err
		}
		receipt = &SellReceipt{
			ID:             existing.ID,
			Username:       existing.Username,
			Email:          existing.Email,
			PreviousAmount: existing.Amount,
			SoldAmount:     soldAmount,
			TotalAmount:    total,
			RiskLevel:      existing.RiskLevel,
			CreatedAt:      existing.CreatedAt,
		}
		return s.audit(ctx, tx, existing.ID, email, models.AuditOpSell, map[string]any{
			"previous_amount": existing.Amount,
			"weight_sold":     req.WeightToSell,
			"rate_per_100g":   quote.Price,
			"sold_amount":     soldAmount,
			"total_amount":    total,
		})
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// Holdings values the investor's principal in gold grams at a fresh quote,
// rounded to 2 decimal places.
func (s *InvestmentService) Holdings(ctx context.Context, email string) (*HoldingsView, error) {
	existing, err := s.Ledger.GetInvestorByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}
	quote := s.Quoter.Quote()
	grams := existing.Amount.Div(quote.Price).Mul(hundred).Round(2)
	return &HoldingsView{
		Email:             existing.Email,
		Username:          existing.Username,
		TotalAmount:       existing.Amount,
		RatePer100g:       quote.Price,
		GoldHoldingsGrams: grams,
		RiskLevel:         existing.RiskLevel,
		LastUpdated:       time.Now().UTC(),
	}, nil
}

// Portfolio lists every record for the email. An empty result is reported as
// not found so the conversational layer gets one "no investments" signal.
func (s *InvestmentService) Portfolio(ctx context.Context, email string) ([]PortfolioEntry, error) {
	items, err := s.Ledger.ListInvestorsByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNotFound
	}
	entries := make([]PortfolioEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, PortfolioEntry{
			ID:        it.ID,
			Username:  it.Username,
			Email:     it.Email,
			Amount:    it.Amount,
			RiskLevel: it.RiskLevel,
			CreatedAt: it.CreatedAt,
		})
	}
	return entries, nil
}

// Rate draws a fresh quote and formats it for the rate endpoint.
func (s *InvestmentService) Rate() RateView {
	return rateView(s.Quoter.Quote(), s.Location)
}

// rateView renders the quote clock in loc, so the date, time, and zone
// abbreviation all describe the same wall clock.
func rateView(q rate.Quote, loc *time.Location) RateView {
	if loc == nil {
		loc = time.UTC
	}
	at := q.At.In(loc)
	return RateView{
		Price:    q.Price,
		Date:     at.Format("2006-01-02"),
		Time:     at.Format("15:04:05"),
		Timezone: at.Format("MST"),
	}
}

// SnapshotRate persists the current quote. Cron job body.
func (s *InvestmentService) SnapshotRate(ctx context.Context) error {
	quote := s.Quoter.Quote()
	err := s.Ledger.InsertRateSnapshot(ctx, &models.RateSnapshot{
		Price:    quote.Price,
		Currency: s.Currency,
		QuotedAt: quote.At,
	})
	if err != nil {
		return err
	}
	if s.Logger != nil {
		s.Logger.Debug("rate snapshot persisted", zap.String("price", quote.Price.String()))
	}
	return nil
}

func (s *InvestmentService) audit(ctx context.Context, tx *gorm.DB, investorID uint, email, op string, details map[string]any) error {
	raw, err := json.Marshal(details)
	if err != nil {
		return err
	}
	return s.Ledger.InsertAuditTx(ctx, tx, &models.LedgerAudit{
		InvestorID: investorID,
		Email:      email,
		Operation:  op,
		Details:    datatypes.JSON(raw),
	})
}
