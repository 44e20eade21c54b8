package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/printkit/pricelist_backend/internal/core/ports/services"
	"github.com/printkit/pricelist_backend/internal/dto"
	"github.com/printkit/pricelist_backend/internal/middleware"
)

// priceListHandler handles HTTP requests for price list headers and memberships.
type priceListHandler struct {
	priceListService portssvc.PriceListSvcFacade
}

func newPriceListHandler(ps portssvc.PriceListSvcFacade) *priceListHandler {
	return &priceListHandler{priceListService: ps}
}

// registerPriceListRoutes registers the price list and membership routes.
func registerPriceListRoutes(rg *gin.RouterGroup, ps portssvc.PriceListSvcFacade) {
	h := newPriceListHandler(ps)

	lists := rg.Group("/pricelists")
	{
		lists.POST("", h.createPriceList)
		lists.GET("", h.listPriceLists)
		lists.GET("/:listID", h.getPriceList)
		lists.PATCH("/:listID", h.updatePriceList)
		lists.DELETE("/:listID", h.deletePriceList)

		lists.POST("/:listID/members", h.addMember)
		lists.GET("/:listID/members", h.listMembers)
		lists.DELETE("/:listID/members/:userID", h.removeMember)
	}
}

// createPriceList godoc
// @Summary Create a price list
// @Description Creates a price list owned by the caller, together with its base currency seeded at rate 1.00.
// @Tags pricelists
// @Accept json
// @Produce json
// @Param pricelist body dto.CreatePriceListRequest true "Price list details"
// @Success 201 {object} dto.PriceListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Title already taken"
// @Security BearerAuth
// @Router /pricelists [post]
func (h *priceListHandler) createPriceList(c *gin.Context) {
	var req dto.CreatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.priceListService.CreatePriceList(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create price list")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Price list created", slog.String("price_list_id", list.PriceListID))
	c.JSON(http.StatusCreated, dto.ToPriceListResponse(list))
}

// listPriceLists godoc
// @Summary List price lists
// @Description Lists every price list for staff, the caller's own lists otherwise.
// @Tags pricelists
// @Produce json
// @Success 200 {array} dto.PriceListResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists [get]
func (h *priceListHandler) listPriceLists(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	lists, err := h.priceListService.ListPriceLists(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list price lists")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPriceListResponse(lists))
}

// getPriceList godoc
// @Summary Get a price list
// @Tags pricelists
// @Produce json
// @Param listID path string true "Price List ID"
// @Success 200 {object} dto.PriceListResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists/{listID} [get]
func (h *priceListHandler) getPriceList(c *gin.Context) {
	list, err := h.priceListService.GetPriceListByID(c.Request.Context(), c.Param("listID"))
	if err != nil {
		respondError(c, err, "Failed to get price list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// updatePriceList godoc
// @Summary Update a price list
// @Description Updates title, description and active flag. Owner, staff or admin member only.
// @Tags pricelists
// @Accept json
// @Produce json
// @Param listID path string true "Price List ID"
// @Param pricelist body dto.UpdatePriceListRequest true "Fields to update"
// @Success 200 {object} dto.PriceListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists/{listID} [patch]
func (h *priceListHandler) updatePriceList(c *gin.Context) {
	var req dto.UpdatePriceListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	list, err := h.priceListService.UpdatePriceList(c.Request.Context(), c.Param("listID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update price list")
		return
	}
	c.JSON(http.StatusOK, dto.ToPriceListResponse(list))
}

// deletePriceList godoc
// @Summary Delete a price list
// @Description Removes the list and everything it owns: currencies, rates, assignments and price records.
// @Tags pricelists
// @Param listID path string true "Price List ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists/{listID} [delete]
func (h *priceListHandler) deletePriceList(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.priceListService.DeletePriceList(c.Request.Context(), c.Param("listID"), userID); err != nil {
		respondError(c, err, "Failed to delete price list")
		return
	}
	c.Status(http.StatusNoContent)
}

// addMember godoc
// @Summary Add a member
// @Description Attaches a user to the price list with a role. ADMIN members may mutate the list like the owner.
// @Tags pricelists
// @Accept json
// @Produce json
// @Param listID path string true "Price List ID"
// @Param member body dto.AddMemberRequest true "Member details"
// @Success 201 {object} dto.MembershipResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists/{listID}/members [post]
func (h *priceListHandler) addMember(c *gin.Context) {
	var req dto.AddMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	membership, err := h.priceListService.AddMember(c.Request.Context(), c.Param("listID"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to add member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMembershipResponse(membership))
}

// listMembers godoc
// @Summary List members
// @Tags pricelists
// @Produce json
// @Param listID path string true "Price List ID"
// @Success 200 {array} dto.MembershipResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists/{listID}/members [get]
func (h *priceListHandler) listMembers(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	memberships, err := h.priceListService.ListMembers(c.Request.Context(), c.Param("listID"), userID)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}

	res := make([]dto.MembershipResponse, len(memberships))
	for i := range memberships {
		res[i] = dto.ToMembershipResponse(&memberships[i])
	}
	c.JSON(http.StatusOK, res)
}

// removeMember godoc
// @Summary Remove a member
// @Description Deactivates the membership; the row is kept for history.
// @Tags pricelists
// @Param listID path string true "Price List ID"
// @Param userID path string true "Member User ID"
// @Success 204 "No Content"
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricelists/{listID}/members/{userID} [delete]
func (h *priceListHandler) removeMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.priceListService.RemoveMember(c.Request.Context(), c.Param("listID"), c.Param("userID"), userID); err != nil {
		respondError(c, err, "Failed to remove member")
		return
	}
	c.Status(http.StatusNoContent)
}
