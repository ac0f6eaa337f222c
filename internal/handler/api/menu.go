package api

import (
	"errors"
	"net/http"

	reqdto "food-preorder/internal/handler/dto/request"
	"food-preorder/internal/handler/httperr"
	"food-preorder/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	menuUseCase usecase.MenuUseCase
}

func NewMenuHandler(menuUseCase usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{
		menuUseCase: menuUseCase,
	}
}

// @Summary Browse the menu grouped by category
// @Tags menu
// @Produce json
// @Success 200 {array} readmodel.MenuCategoryRM
// @Router /menu [get]
func (h *MenuHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.menuUseCase.GetCatalog(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, catalog)
}

// @Summary Create a menu item
// @Tags menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateMenuItemRequest true "New item"
// @Success 201 {object} readmodel.MenuItemRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu [post]
func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	item, err := h.menuUseCase.CreateItem(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Menu category not found", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

// @Summary Update a menu item
// @Tags menu
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Fields to change"
// @Success 200 {object} readmodel.MenuItemRM
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/{id} [patch]
func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid menu item ID", nil)
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	item, err := h.menuUseCase.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrMenuItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Menu item not found", nil)
		case errors.Is(err, usecase.ErrCategoryNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Menu category not found", nil)
		case errors.Is(err, usecase.ErrDomainValidationFailed):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request data", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Delete a menu item
// @Tags menu
// @Security BearerAuth
// @Param id path string true "Menu item ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /menu/{id} [delete]
func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid menu item ID", nil)
		return
	}

	if err := h.menuUseCase.DeleteItem(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, usecase.ErrMenuItemNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Menu item not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
