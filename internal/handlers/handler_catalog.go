package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/printkit/pricelist_backend/internal/apperrors"

	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/dto"
)

// catalogHandler handles HTTP requests for product assignments and their
// price ledgers.
type catalogHandler struct {
	priceLedgerService portssvc.PriceLedgerSvcFacade
}

func newCatalogHandler(ps portssvc.PriceLedgerSvcFacade) *catalogHandler {
	return &catalogHandler{priceLedgerService: ps}
}

// registerCatalogRoutes registers assignment routes, nested under a price list
// for creation/listing and addressed directly by assignment ID otherwise.
func registerCatalogRoutes(rg *gin.RouterGroup, ps portssvc.PriceLedgerSvcFacade) {
	h := newCatalogHandler(ps)

	lists := rg.Group("/pricelists/:listID")
	{
		lists.POST("/products", h.assignProduct)
		lists.GET("/products", h.listAssignments)
		lists.GET("/assignable-products", h.listAssignableProducts)
	}

	assignments := rg.Group("/assignments")
	{
		assignments.GET("/:assignmentID", h.getAssignment)
		assignments.DELETE("/:assignmentID", h.unassignProduct)
		assignments.POST("/:assignmentID/prices", h.recordPrice)
		assignments.GET("/:assignmentID/prices", h.listPrices)
		assignments.GET("/:assignmentID/price", h.priceAt)
	}
}

// assignProduct godoc
// @Summary Assign a product to a price list
// @Description Attaches a product, optionally seeding its first base-currency price record.
// @Tags catalog
// @Accept json
// @Produce json
// @Param listID path string true "Price List ID"
// @Param assignment body dto.AssignProductRequest true "Product to assign"
// @Success 201 {object} dto.AssignmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Product already assigned"
// @Security BearerAuth
// @Router /pricelists/{listID}/products [post]
func (h *catalogHandler) assignProduct(c *gin.Context) {
	var req dto.AssignProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	assignment, err := h.priceLedgerService.AssignProduct(c.Request.Context(), c.Param("listID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to assign product")
		return
	}
	c.JSON(http.StatusCreated, dto.ToAssignmentResponse(assignment))
}

// listAssignments godoc
// @Summary List a price list's product assignments
// @Description Returns each assignment with its base-currency price currently in force, when one exists.
// @Tags catalog
// @Produce json
// @Param listID path string true "Price List ID"
// @Success 200 {array} dto.AssignmentResponse
// @Security BearerAuth
// @Router /pricelists/{listID}/products [get]
func (h *catalogHandler) listAssignments(c *gin.Context) {
	assignments, err := h.priceLedgerService.ListAssignments(c.Request.Context(), c.Param("listID"))
	if err != nil {
		respondError(c, err, "Failed to list assignments")
		return
	}

	res := dto.ToListAssignmentResponse(assignments)
	for i := range assignments {
		price, err := h.priceLedgerService.PriceAt(c.Request.Context(), assignments[i].AssignmentID, time.Time{})
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				continue
			}
			respondError(c, err, "Failed to resolve current price")
			return
		}
		res[i].CurrentPrice = &price
	}
	c.JSON(http.StatusOK, res)
}

// listAssignableProducts godoc
// @Summary List products not yet on the price list
// @Description Pages through the caller's products that can still be assigned, ordered by title. Pass the returned nextToken to fetch the following page.
// @Tags catalog
// @Produce json
// @Param listID path string true "Price List ID"
// @Param nextToken query string false "Keyset token from the previous page"
// @Param limit query int false "Page size" default(50)
// @Success 200 {object} dto.AssignableProductsResponse
// @Failure 400 {object} ErrorResponse "Invalid token"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists/{listID}/assignable-products [get]
func (h *catalogHandler) listAssignableProducts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = parsed
	}

	products, nextToken, err := h.priceLedgerService.ListAssignableProducts(
		c.Request.Context(), c.Param("listID"), userID, c.Query("nextToken"), limit, userID)
	if err != nil {
		respondError(c, err, "Failed to list assignable products")
		return
	}

	res := dto.AssignableProductsResponse{
		Products:  make([]dto.ProductResponse, len(products)),
		NextToken: nextToken,
	}
	for i := range products {
		res.Products[i] = dto.ToProductResponse(&products[i])
	}
	c.JSON(http.StatusOK, res)
}

// getAssignment godoc
// @Summary Get an assignment
// @Tags catalog
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {object} dto.AssignmentResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments/{assignmentID} [get]
func (h *catalogHandler) getAssignment(c *gin.Context) {
	assignment, err := h.priceLedgerService.GetAssignmentByID(c.Request.Context(), c.Param("assignmentID"))
	if err != nil {
		respondError(c, err, "Failed to get assignment")
		return
	}
	c.JSON(http.StatusOK, dto.ToAssignmentResponse(assignment))
}

// unassignProduct godoc
// @Summary Unassign a product
// @Description Removes the assignment and its entire price history.
// @Tags catalog
// @Param assignmentID path string true "Assignment ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments/{assignmentID} [delete]
func (h *catalogHandler) unassignProduct(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.priceLedgerService.UnassignProduct(c.Request.Context(), c.Param("assignmentID"), userID); err != nil {
		respondError(c, err, "Failed to unassign product")
		return
	}
	c.Status(http.StatusNoContent)
}

// recordPrice godoc
// @Summary Record a base-currency price
// @Description Appends a price record to the assignment's history. History is append only; the record takes effect from now on.
// @Tags catalog
// @Accept json
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Param price body dto.RecordPriceRequest true "Price to record"
// @Success 201 {object} dto.PriceRecordResponse
// @Failure 400 {object} ErrorResponse "Invalid price"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /assignments/{assignmentID}/prices [post]
func (h *catalogHandler) recordPrice(c *gin.Context) {
	var req dto.RecordPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	record, err := h.priceLedgerService.RecordPrice(c.Request.Context(), c.Param("assignmentID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to record price")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPriceRecordResponse(record))
}

// listPrices godoc
// @Summary List an assignment's price history
// @Description Returns the full append-only price history, oldest record first.
// @Tags catalog
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Success 200 {array} dto.PriceRecordResponse
// @Security BearerAuth
// @Router /assignments/{assignmentID}/prices [get]
func (h *catalogHandler) listPrices(c *gin.Context) {
	records, err := h.priceLedgerService.ListPrices(c.Request.Context(), c.Param("assignmentID"))
	if err != nil {
		respondError(c, err, "Failed to list prices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceRecordResponse(records))
}

// priceAt godoc
// @Summary Resolve the base price in force at an instant
// @Description Returns the base-currency price strictly in force before the given instant (RFC 3339); defaults to now.
// @Tags catalog
// @Produce json
// @Param assignmentID path string true "Assignment ID"
// @Param at query string false "Instant (RFC 3339)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No price defined before the instant"
// @Security BearerAuth
// @Router /assignments/{assignmentID}/price [get]
func (h *catalogHandler) priceAt(c *gin.Context) {
	at, ok := parseAtQuery(c)
	if !ok {
		return
	}

	price, err := h.priceLedgerService.PriceAt(c.Request.Context(), c.Param("assignmentID"), at)
	if err != nil {
		respondError(c, err, "Failed to resolve price")
		return
	}
	c.JSON(http.StatusOK, gin.H{"price": price.String()})
}

// parseAtQuery reads an optional RFC 3339 "at" query parameter. A zero time
// means "now" downstream.
func parseAtQuery(c *gin.Context) (time.Time, bool) {
	raw := c.Query("at")
	if raw == "" {
		return time.Time{}, true
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid 'at' timestamp, expected RFC 3339"})
		return time.Time{}, false
	}
	return parsed, true
}
