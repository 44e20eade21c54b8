package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/dto"
	"github.com/printkit/pricelist_backend/internal/middleware"
)

// currencyHandler handles HTTP requests for currencies and their rate ledgers.
type currencyHandler struct {
	currencyService portssvc.CurrencyLedgerSvcFacade
}

func newCurrencyHandler(cs portssvc.CurrencyLedgerSvcFacade) *currencyHandler {
	return &currencyHandler{currencyService: cs}
}

// registerCurrencyRoutes registers currency routes, both nested under a price
// list and addressed directly by currency ID.
func registerCurrencyRoutes(rg *gin.RouterGroup, cs portssvc.CurrencyLedgerSvcFacade) {
	h := newCurrencyHandler(cs)

	lists := rg.Group("/pricelists/:listID/currencies")
	{
		lists.POST("", h.addCurrency)
		lists.GET("", h.listCurrencies)
	}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("/:currencyID", h.getCurrency)
		currencies.PATCH("/:currencyID", h.updateCurrency)
		currencies.DELETE("/:currencyID", h.removeCurrency)
		currencies.POST("/:currencyID/rates", h.recordRate)
		currencies.GET("/:currencyID/rates", h.listRates)
		currencies.GET("/:currencyID/rate", h.rateAt)
	}
}

// addCurrency godoc
// @Summary Define a currency on a price list
// @Description Adds a currency, optionally seeding its first rate record. Codes are uppercased and unique per list.
// @Tags currencies
// @Accept json
// @Produce json
// @Param listID path string true "Price List ID"
// @Param currency body dto.CreateCurrencyRequest true "Currency details"
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Duplicate code or second base currency"
// @Security BearerAuth
// @Router /pricelists/{listID}/currencies [post]
func (h *currencyHandler) addCurrency(c *gin.Context) {
	var req dto.CreateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.AddCurrency(c.Request.Context(), c.Param("listID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to add currency")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Currency added",
		slog.String("currency_id", currency.CurrencyID), slog.String("code", currency.Code))
	c.JSON(http.StatusCreated, dto.ToCurrencyResponse(currency))
}

// listCurrencies godoc
// @Summary List a price list's currencies
// @Tags currencies
// @Produce json
// @Param listID path string true "Price List ID"
// @Success 200 {array} dto.CurrencyResponse
// @Security BearerAuth
// @Router /pricelists/{listID}/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), c.Param("listID"))
	if err != nil {
		respondError(c, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// getCurrency godoc
// @Summary Get a currency
// @Tags currencies
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{currencyID} [get]
func (h *currencyHandler) getCurrency(c *gin.Context) {
	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), c.Param("currencyID"))
	if err != nil {
		respondError(c, err, "Failed to get currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// updateCurrency godoc
// @Summary Update a currency
// @Description Changes title/symbol. A supplied rate that differs from the current one appends a new rate record; the base currency's rate cannot change.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Param currency body dto.UpdateCurrencyRequest true "Fields to update"
// @Success 200 {object} dto.CurrencyResponse
// @Failure 400 {object} ErrorResponse "Invalid rate or base rate change"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{currencyID} [patch]
func (h *currencyHandler) updateCurrency(c *gin.Context) {
	var req dto.UpdateCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	currency, err := h.currencyService.UpdateCurrency(c.Request.Context(), c.Param("currencyID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update currency")
		return
	}
	c.JSON(http.StatusOK, dto.ToCurrencyResponse(currency))
}

// removeCurrency godoc
// @Summary Remove a currency
// @Description Deletes a non-base currency and its rate history.
// @Tags currencies
// @Param currencyID path string true "Currency ID"
// @Success 204 "No Content"
// @Failure 400 {object} ErrorResponse "Base currency cannot be deleted"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{currencyID} [delete]
func (h *currencyHandler) removeCurrency(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.currencyService.RemoveCurrency(c.Request.Context(), c.Param("currencyID"), userID); err != nil {
		respondError(c, err, "Failed to remove currency")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordRate godoc
// @Summary Record an exchange rate
// @Description Appends a rate record to a non-base currency's history. History is append only; the record takes effect from now on.
// @Tags currencies
// @Accept json
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Param rate body dto.RecordRateRequest true "Rate to record"
// @Success 201 {object} dto.RateResponse
// @Failure 400 {object} ErrorResponse "Invalid rate or base currency"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies/{currencyID}/rates [post]
func (h *currencyHandler) recordRate(c *gin.Context) {
	var req dto.RecordRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.currencyService.RecordRate(c.Request.Context(), c.Param("currencyID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record rate")
		return
	}
	c.JSON(http.StatusCreated, dto.ToRateResponse(record))
}

// listRates godoc
// @Summary List a currency's rate history
// @Description Returns the full append-only rate history, oldest record first.
// @Tags currencies
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Success 200 {array} dto.RateResponse
// @Security BearerAuth
// @Router /currencies/{currencyID}/rates [get]
func (h *currencyHandler) listRates(c *gin.Context) {
	rates, err := h.currencyService.ListRates(c.Request.Context(), c.Param("currencyID"))
	if err != nil {
		respondError(c, err, "Failed to list rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateResponse(rates))
}

// rateAt godoc
// @Summary Resolve the rate in force at an instant
// @Description Returns the rate strictly in force before the given instant (RFC 3339); defaults to now.
// @Tags currencies
// @Produce json
// @Param currencyID path string true "Currency ID"
// @Param at query string false "Instant (RFC 3339)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No rate defined before the instant"
// @Security BearerAuth
// @Router /currencies/{currencyID}/rate [get]
func (h *currencyHandler) rateAt(c *gin.Context) {
	at, ok := parseAtQuery(c)
	if !ok {
		return
	}

	rate, err := h.currencyService.RateAt(c.Request.Context(), c.Param("currencyID"), at)
	if err != nil {
		respondError(c, err, "Failed to resolve rate")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rate": rate.String()})
}
