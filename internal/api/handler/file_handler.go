package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/api/metrics"
	"github.com/elibrary/library-system/internal/core/ports"
)

// FileHandler serves stored documents and runs bundle exports.
type FileHandler struct {
	storage ports.FileStorage
	export  ports.ExportService
}

func NewFileHandler(storage ports.FileStorage, export ports.ExportService) *FileHandler {
	return &FileHandler{storage: storage, export: export}
}

// Serve handles GET /uploads/:filename, returning the stored PDF inline.
//
// @Summary      Serve an uploaded document
// @Tags         files
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        filename  path  string  true  "Stored file name"
// @Success      200
// @Failure      404  {object}  map[string]string
// @Router       /uploads/{filename} [get]
func (h *FileHandler) Serve(c echo.Context) error {
	path, err := h.storage.Resolve(c.Param("filename"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "file not found")
	}

	c.Response().Header().Set(echo.HeaderContentType, "application/pdf")
	c.Response().Header().Set(echo.HeaderContentDisposition, `inline; filename="`+c.Param("filename")+`"`)
	return c.File(path)
}

type exportRequest struct {
	BookIDs []int `json:"book_ids" validate:"required,min=1"`
}

// Export handles POST /books/export: bundles the requested books' files
// into a zip archive.
//
// @Summary      Export books as a zip bundle
// @Tags         files
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      exportRequest  true  "Book ids to bundle"
// @Success      200   {object}  ports.ExportResult
// @Failure      403   {object}  map[string]string
// @Router       /books/export [post]
func (h *FileHandler) Export(c echo.Context) error {
	var req exportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.export.ExportBooks(c.Request().Context(), req.BookIDs)
	if err != nil {
		metrics.ExportsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.ExportsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}
