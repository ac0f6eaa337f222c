package api

import (
	"errors"
	"net/http"

	reqdto "food-preorder/internal/handler/dto/request"
	"food-preorder/internal/handler/httperr"
	"food-preorder/internal/usecase"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slotUseCase usecase.SlotUseCase
}

func NewSlotHandler(slotUseCase usecase.SlotUseCase) *SlotHandler {
	return &SlotHandler{
		slotUseCase: slotUseCase,
	}
}

// @Summary List pickup slots with live availability
// @Tags slots
// @Produce json
// @Success 200 {array} readmodel.TimeSlotRM
// @Router /slots [get]
func (h *SlotHandler) List(c *gin.Context) {
	slots, err := h.slotUseCase.ListSlots(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, slots)
}

// @Summary Create a pickup slot
// @Tags slots
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateSlotRequest true "New slot"
// @Success 201 {object} readmodel.TimeSlotRM
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /slots [post]
func (h *SlotHandler) Create(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	slot, err := h.slotUseCase.CreateSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "A slot with this window already exists", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, slot)
}
