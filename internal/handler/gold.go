package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goldledger/internal/models"
	"goldledger/internal/repository"
	"goldledger/internal/service"
)

type GoldHandler struct {
	Service *service.InvestmentService
	Repo    repository.Ledger
	Logger  *zap.Logger
}

func (h *GoldHandler) Register(r *gin.Engine) {
	r.GET("/", h.root)
	r.GET("/gold_rate", h.rate)
	r.GET("/gold_rate/history", h.rateHistory)
	r.POST("/buy_gold", h.buy)
	r.GET("/investments", h.investments)
	r.GET("/gold_holdings/:email", h.holdings)
	r.POST("/sell_gold", h.sell)
	r.GET("/portfolio/:email", h.portfolio)
}

// @Summary Welcome message
// @Tags root
// @Success 200 {object} map[string]string
// @Router / [get]
func (h *GoldHandler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Digital Gold API"})
}

// @Summary Current gold rate per 100 grams
// @Tags rates
// @Success 200 {object} service.RateView
// @Router /gold_rate [get]
func (h *GoldHandler) rate(c *gin.Context) {
	c.JSON(http.StatusOK, h.Service.Rate())
}

// @Summary Recent persisted rate snapshots
// @Tags rates
// @Param limit query int false "max rows" default(100)
// @Success 200 {array} models.RateSnapshot
// @Router /gold_rate/history [get]
func (h *GoldHandler) rateHistory(c *gin.Context) {
	limit := intQuery(c, "limit", 100)
	items, err := h.Repo.ListRateSnapshots(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Buy gold: open a new investment or add to an existing one
// @Tags ledger
// @Accept json
// @Param request body service.BuyRequest true "buy request"
// @Success 200 {object} service.Receipt
// @Failure 400 {object} apiError
// @Router /buy_gold [post]
func (h *GoldHandler) buy(c *gin.Context) {
	var req service.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	receipt, err := h.Service.Buy(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// @Summary All investor records
// @Tags ledger
// @Param limit query int false "max rows" default(100)
// @Success 200 {array} models.Investor
// @Router /investments [get]
func (h *GoldHandler) investments(c *gin.Context) {
	items, err := h.Repo.ListInvestors(c.Request.Context(), intQuery(c, "limit", 100))
	if err != nil {
		h.fail(c, err)
		return
	}
	if items == nil {
		items = []models.Investor{}
	}
	c.JSON(http.StatusOK, items)
}

// @Summary Gold holdings valued at a fresh quote
// @Tags ledger
// @Param email path string true "investor email"
// @Success 200 {object} service.HoldingsView
// @Failure 404 {object} apiError
// @Router /gold_holdings/{email} [get]
func (h *GoldHandler) holdings(c *gin.Context) {
	view, err := h.Service.Holdings(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Sell gold by weight in grams
// @Tags ledger
// @Accept json
// @Param request body service.SellRequest true "sell request"
// @Success 200 {object} service.SellReceipt
// @Failure 400 {object} apiError
// @Failure 404 {object} apiError
// @Router /sell_gold [post]
func (h *GoldHandler) sell(c *gin.Context) {
	var req service.SellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body")
		return
	}
	receipt, err := h.Service.Sell(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// @Summary All investment records for an email
// @Tags ledger
// @Param email path string true "investor email"
// @Success 200 {array} service.PortfolioEntry
// @Failure 404 {object} apiError
// @Router /portfolio/{email} [get]
func (h *GoldHandler) portfolio(c *gin.Context) {
	entries, err := h.Service.Portfolio(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// fail maps the service taxonomy to status codes. Internal faults get a
// generic message; the detail goes to the log only.
func (h *GoldHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		Error(c, http.StatusNotFound, err.Error())
	case service.IsValidation(err):
		Error(c, http.StatusBadRequest, err.Error())
	default:
		if h.Logger != nil {
			h.Logger.Error("ledger operation failed",
				zap.String("path", c.FullPath()),
				zap.Error(err),
			)
		}
		Error(c, http.StatusInternalServerError, "internal error")
	}
}

func intQuery(c *gin.Context, key string, def int) int {
	if val := c.Query(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return def
}
