package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/dto"
)

// quoteHandler exposes the price resolution endpoint.
type quoteHandler struct {
	quoteService portssvc.QuoteSvc
}

func newQuoteHandler(qs portssvc.QuoteSvc) *quoteHandler {
	return &quoteHandler{quoteService: qs}
}

func registerQuoteRoutes(rg *gin.RouterGroup, qs portssvc.QuoteSvc) {
	h := newQuoteHandler(qs)
	rg.GET("/pricelists/:listID/quote", h.quote)
}

// quote godoc
// @Summary Quote a product's price
// @Description Resolves what a product costs on the price list in the requested currency at the requested instant. Omitting the currency quotes in the list's base currency; omitting the instant quotes as of now. Converted amounts round half-even to 2 digits.
// @Tags quotes
// @Produce json
// @Param listID path string true "Price List ID"
// @Param productID query string true "Product ID"
// @Param currency query string false "Target currency code"
// @Param at query string false "Instant (RFC 3339)"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Product not assigned, or no price/rate before the instant"
// @Security BearerAuth
// @Router /pricelists/{listID}/quote [get]
func (h *quoteHandler) quote(c *gin.Context) {
	productID := c.Query("productID")
	if productID == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "productID query parameter required"})
		return
	}
	at, ok := parseAtQuery(c)
	if !ok {
		return
	}

	quote, err := h.quoteService.Quote(c.Request.Context(), c.Param("listID"), productID, c.Query("currency"), at)
	if err != nil {
		respondError(c, err, "Failed to resolve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}
