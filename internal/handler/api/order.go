package api

import (
	"errors"
	"net/http"

	reqdto "food-preorder/internal/handler/dto/request"
	resdto "food-preorder/internal/handler/dto/response"
	"food-preorder/internal/handler/httperr"
	"food-preorder/internal/handler/middleware"
	"food-preorder/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type OrderHandler struct {
	orderUseCase usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

// @Summary Place an order against a pickup slot
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateOrderRequest true "New order"
// @Success 201 {object} readmodel.OrderRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}

	var req reqdto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Time slot not found", nil)
		case errors.Is(err, usecase.ErrSlotFull):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is fully booked", nil)
		case errors.Is(err, usecase.ErrSlotExpired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot has already started", nil)
		case errors.Is(err, usecase.ErrMenuItemUnavailable):
			httperr.AbortWithError(c, http.StatusConflict, err, "A menu item is unavailable", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// @Summary List orders
// @Description Customers see their own orders, kitchen roles see all.
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {array} readmodel.OrderRM
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	orders, err := h.orderUseCase.ListOrders(c.Request.Context(), userID, role)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// @Summary Get one order
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} readmodel.OrderRM
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	order, err := h.orderUseCase.GetOrder(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to access this order", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Set order status (kitchen workflow)
// @Tags orders
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body reqdto.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} readmodel.OrderRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /orders/{id} [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	var req reqdto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order status", nil)
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Cancel an order
// @Description Owners may cancel until the grace deadline, admins at any time before pickup prep completes.
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} readmodel.OrderRM
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /orders/{id}/cancel [post]
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid order ID", nil)
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errors.New("missing user context"), "User not authenticated", nil)
		return
	}
	role, _ := middleware.GetUserRole(c)

	order, err := h.orderUseCase.CancelOrder(c.Request.Context(), id, userID, role)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrOrderNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Order not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to cancel this order", nil)
		case errors.Is(err, usecase.ErrOrderCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order is already cancelled", nil)
		case errors.Is(err, usecase.ErrOrderNotCancellable):
			httperr.AbortWithError(c, http.StatusConflict, err, "Order can no longer be cancelled", nil)
		case errors.Is(err, usecase.ErrCancelTooLate):
			httperr.AbortWithError(c, http.StatusConflict, err, "Cancellation deadline has passed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// @Summary Preview the time-based status sweep
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SweepPreviewResponse
// @Router /orders/auto-update [get]
func (h *OrderHandler) PreviewSweep(c *gin.Context) {
	candidates, err := h.orderUseCase.PreviewSweep(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.SweepPreviewResponse{
		Candidates: candidates,
		Total:      len(candidates),
	})
}

// @Summary Apply the time-based status sweep
// @Tags orders
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.SweepApplyResponse
// @Router /orders/auto-update [post]
func (h *OrderHandler) ApplySweep(c *gin.Context) {
	updated, err := h.orderUseCase.ApplySweep(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.SweepApplyResponse{
		Updated: updated,
		Total:   len(updated),
	})
}
