package api

import (
	"net/http"

	"little-lemon/internal/domain"
	"little-lemon/internal/domain/menu"
	reqdto "little-lemon/internal/handler/dto/request"
	resdto "little-lemon/internal/handler/dto/response"
	"little-lemon/internal/handler/httperr"
	"little-lemon/internal/pkg/errs"
	"little-lemon/internal/usecase/commands"
	"little-lemon/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	DetailMenuItemNotFound = "No item in the menu matches the id provided"
	DetailMenuItemCreated  = "The item was added to menu successfully"
	DetailMenuItemUpdated  = "The item in the menu has been updated successfully"
	DetailMenuItemDeleted  = "The menu item has been deleted successfully"
	DetailMenuEmptyUpdate  = "Provide at least one of the following fields to update a menu item"
)

type MenuHandler struct {
	cmds commands.MenuCommands
	q    queries.MenuQueries
}

func NewMenuHandler(cmds commands.MenuCommands, q queries.MenuQueries) *MenuHandler {
	return &MenuHandler{cmds: cmds, q: q}
}

// @Summary List menu
// @Description List every menu item ordered by title
// @Tags menu
// @Produce json
// @Success 200 {array} resdto.MenuItemResponse
// @Router /menu [get]
func (h *MenuHandler) List(c *gin.Context) {
	items, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuItemList(items))
}

// @Summary Get menu item
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} resdto.MenuItemResponse
// @Failure 404 {object} httperr.Response
// @Router /menu/{id} [get]
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	item, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMenuItemView(item))
}

// @Summary Create menu item
// @Description Managers only
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateMenuItemRequest true "Menu item"
// @Success 201 {object} resdto.MenuItemEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /menu [post]
func (h *MenuHandler) Create(c *gin.Context) {
	var req reqdto.CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.FieldErrors(err))
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToCommand())
	if err != nil {
		h.abortCommandErr(c, err)
		return
	}

	item, err := h.q.GetByID(c.Request.Context(), result.ID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.MenuItemEnvelope{
		Detail:   DetailMenuItemCreated,
		MenuItem: resdto.FromMenuItemView(item),
	})
}

// @Summary Update menu item
// @Description Managers only. PUT and PATCH both accept any subset of fields.
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Param request body reqdto.UpdateMenuItemRequest true "Fields to change"
// @Success 200 {object} resdto.MenuItemEnvelope
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/{id} [patch]
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil && !reqdto.IsEmptyBody(err) {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", reqdto.FieldErrors(err))
		return
	}
	if req.IsEmpty() {
		// An unknown id wins over the missing fields.
		if _, err := h.q.GetByID(c.Request.Context(), id); err != nil {
			h.abortQueryErr(c, err)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, menu.ErrEmptyPatch, DetailMenuEmptyUpdate, menu.UpdatableFields)
		return
	}

	err := h.cmds.Update(c.Request.Context(), id, req.ToCommand())
	if err != nil {
		h.abortCommandErr(c, err)
		return
	}

	item, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		h.abortQueryErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MenuItemEnvelope{
		Detail:   DetailMenuItemUpdated,
		MenuItem: resdto.FromMenuItemView(item),
	})
}

// @Summary Delete menu item
// @Description Managers only
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path int true "Menu item ID"
// @Success 200 {object} resdto.DetailResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /menu/{id} [delete]
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		h.abortCommandErr(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.DetailResponse{Detail: DetailMenuItemDeleted})
}

func (h *MenuHandler) abortCommandErr(c *gin.Context, err error) {
	var verr *domain.ValidationError
	switch {
	case errs.Is(err, menu.ErrEmptyPatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, DetailMenuEmptyUpdate, menu.UpdatableFields)
	case errs.Is(err, commands.ErrMenuItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, DetailMenuItemNotFound, nil)
	case errs.As(err, &verr):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", verr.Fields)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
	}
}

func (h *MenuHandler) abortQueryErr(c *gin.Context, err error) {
	if errs.Is(err, queries.ErrMenuItemNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, DetailMenuItemNotFound, nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, detailInternal, nil)
}
