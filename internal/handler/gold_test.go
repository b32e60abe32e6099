package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"goldledger/internal/models"
	"goldledger/internal/rate"
	"goldledger/internal/service"
)

type stubLedger struct {
	investors map[string]models.Investor
	snapshots []models.RateSnapshot
	nextID    uint
	failWith  error
}

func newStubLedger() *stubLedger {
	return &stubLedger{investors: map[string]models.Investor{}}
}

func (s *stubLedger) InTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	if s.failWith != nil {
		return s.failWith
	}
	return fn(nil)
}

func (s *stubLedger) GetInvestorByEmail(ctx context.Context, email string) (*models.Investor, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if item, ok := s.investors[email]; ok {
		return &item, nil
	}
	return nil, nil
}

func (s *stubLedger) GetInvestorByEmailForUpdate(ctx context.Context, tx *gorm.DB, email string) (*models.Investor, error) {
	return s.GetInvestorByEmail(ctx, email)
}

func (s *stubLedger) ListInvestorsByEmail(ctx context.Context, email string) ([]models.Investor, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	if item, ok := s.investors[email]; ok {
		return []models.Investor{item}, nil
	}
	return nil, nil
}

func (s *stubLedger) ListInvestors(ctx context.Context, limit int) ([]models.Investor, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	var items []models.Investor
	for _, item := range s.investors {
		items = append(items, item)
	}
	return items, nil
}

func (s *stubLedger) CreateInvestorTx(ctx context.Context, tx *gorm.DB, item *models.Investor) error {
	s.nextID++
	item.ID = s.nextID
	s.investors[item.Email] = *item
	return nil
}

func (s *stubLedger) UpdateInvestorAmountTx(ctx context.Context, tx *gorm.DB, id uint, amount decimal.Decimal) error {
	for email, item := range s.investors {
		if item.ID == id {
			item.Amount = amount
			s.investors[email] = item
		}
	}
	return nil
}

func (s *stubLedger) InsertAuditTx(ctx context.Context, tx *gorm.DB, item *models.LedgerAudit) error {
	return nil
}

func (s *stubLedger) InsertRateSnapshot(ctx context.Context, item *models.RateSnapshot) error {
	s.snapshots = append(s.snapshots, *item)
	return nil
}

func (s *stubLedger) ListRateSnapshots(ctx context.Context, limit int) ([]models.RateSnapshot, error) {
	return s.snapshots, nil
}

func newTestRouter(price string) (*gin.Engine, *stubLedger) {
	gin.SetMode(gin.TestMode)
	ledger := newStubLedger()
	p, _ := decimal.NewFromString(price)
	svc := &service.InvestmentService{
		Ledger:   ledger,
		Quoter:   rate.Fixed(p),
		Currency: "INR",
	}
	r := gin.New()
	h := &GoldHandler{Service: svc, Repo: ledger}
	h.Register(r)
	return r, ledger
}

func do(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGoldRateEndpoint(t *testing.T) {
	r, _ := newTestRouter("99987.72")
	w := do(r, http.MethodGet, "/gold_rate", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got service.RateView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.True(t, got.Price.Equal(decimal.NewFromFloat(99987.72)))
	require.Equal(t, "UTC", got.Timezone)
	require.NotEmpty(t, got.Date)
	require.NotEmpty(t, got.Time)
}

func TestBuyGoldEndpoint(t *testing.T) {
	r, _ := newTestRouter("100000")
	w := do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 1000, "risk_level": "Conservative",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got service.Receipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.True(t, got.PreviousAmount.IsZero())
	require.True(t, got.TotalAmount.Equal(decimal.NewFromInt(1000)))
	require.Equal(t, "conservative", got.RiskLevel)

	w = do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 500, "risk_level": "conservative",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.True(t, got.PreviousAmount.Equal(decimal.NewFromInt(1000)))
	require.True(t, got.TotalAmount.Equal(decimal.NewFromInt(1500)))
}

func TestBuyGoldEndpoint_Validation(t *testing.T) {
	r, ledger := newTestRouter("100000")

	w := do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 1000, "risk_level": "moderate",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": -5, "risk_level": "balanced",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/buy_gold", gin.H{"amount": 1000})
	require.Equal(t, http.StatusBadRequest, w.Code)

	require.Empty(t, ledger.investors)
}

func TestBuyGoldEndpoint_MalformedBody(t *testing.T) {
	r, _ := newTestRouter("100000")
	req := httptest.NewRequest(http.MethodPost, "/buy_gold", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGoldHoldingsEndpoint(t *testing.T) {
	r, _ := newTestRouter("100000")
	w := do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 50000, "risk_level": "balanced",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/gold_holdings/a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got service.HoldingsView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.True(t, got.GoldHoldingsGrams.Equal(decimal.NewFromInt(50)), "grams=%s", got.GoldHoldingsGrams)
	require.True(t, got.RatePer100g.Equal(decimal.NewFromInt(100000)))

	w = do(r, http.MethodGet, "/gold_holdings/ghost@x.com", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestSellGoldEndpoint(t *testing.T) {
	r, _ := newTestRouter("99987.72")
	w := do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 1500, "risk_level": "conservative",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/sell_gold", gin.H{"email": "a@x.com", "weightToSell": 1.0})
	require.Equal(t, http.StatusOK, w.Code)

	var got service.SellReceipt
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.True(t, got.SoldAmount.Equal(decimal.NewFromFloat(999.8772)), "sold=%s", got.SoldAmount)
	require.True(t, got.TotalAmount.Equal(decimal.NewFromFloat(500.1228)), "total=%s", got.TotalAmount)
}

func TestSellGoldEndpoint_Failures(t *testing.T) {
	r, _ := newTestRouter("100000")

	w := do(r, http.MethodPost, "/sell_gold", gin.H{"email": "ghost@x.com", "weightToSell": 1.0})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 1000, "risk_level": "balanced",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPost, "/sell_gold", gin.H{"email": "a@x.com", "weightToSell": 5.0})
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/sell_gold", gin.H{"email": "a@x.com", "weightToSell": 0})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioEndpoint(t *testing.T) {
	r, _ := newTestRouter("100000")

	w := do(r, http.MethodGet, "/portfolio/a@x.com", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 1000, "risk_level": "conservative",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/portfolio/a@x.com", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []service.PortfolioEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "alice", got[0].Username)
}

func TestInvestmentsEndpoint(t *testing.T) {
	r, _ := newTestRouter("100000")

	w := do(r, http.MethodGet, "/investments", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.Investor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Empty(t, got)

	w = do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 1000, "risk_level": "conservative",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/investments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "alice", got[0].Username)
}

func TestInternalErrorIsGeneric(t *testing.T) {
	r, ledger := newTestRouter("100000")
	ledger.failWith = errors.New("connection refused: db host unreachable")

	w := do(r, http.MethodPost, "/buy_gold", gin.H{
		"username": "alice", "email": "a@x.com", "amount": 1000, "risk_level": "balanced",
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.NotContains(t, w.Body.String(), "unreachable")
	require.Contains(t, w.Body.String(), "internal error")
}

func TestRateHistoryEndpoint(t *testing.T) {
	r, ledger := newTestRouter("99987.72")
	ledger.snapshots = []models.RateSnapshot{
		{ID: 1, Price: decimal.NewFromFloat(99987.72), Currency: "INR"},
	}
	w := do(r, http.MethodGet, "/gold_rate/history?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got []models.RateSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
}
