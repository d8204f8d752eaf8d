package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// CategoryHandler handles HTTP requests for book categories.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type createCategoryRequest struct {
	Name string `json:"category_name" validate:"required,min=2"`
}

// List handles GET /categories.
//
// @Summary      List all categories
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Category
// @Router       /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// Create handles POST /categories.
//
// @Summary      Add a category
// @Tags         categories
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        body  body      createCategoryRequest  true  "Category"
// @Success      201   {string}  string
// @Failure      403   {object}  map[string]string
// @Router       /categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req createCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	body, err := h.service.Create(c.Request().Context(), &domain.Category{Name: req.Name})
	if err != nil {
		return err
	}
	return c.String(http.StatusCreated, body)
}

// Update handles PUT /categories/:category_id with a partial JSON document.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        category_id  path      int             true  "Category id"
// @Param        body         body      map[string]any  true  "Fields to update"
// @Success      200          {string}  string
// @Router       /categories/{category_id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "category_id")
	if err != nil {
		return err
	}

	updates := map[string]any{}
	if err := c.Bind(&updates); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	body, err := h.service.Update(c.Request().Context(), id, updates)
	if err != nil {
		return err
	}
	return c.String(http.StatusOK, body)
}

// Delete handles DELETE /categories/:category_id.
//
// @Summary      Delete a category
// @Tags         categories
// @Security     BearerAuth
// @Param        category_id  path  int  true  "Category id"
// @Success      204
// @Router       /categories/{category_id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "category_id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
