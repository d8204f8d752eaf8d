package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/elibrary/library-system/internal/api/metrics"
	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/ports"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /books.
//
// @Summary      List all books
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Book
// @Failure      401  {object}  map[string]string
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	books, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Get handles GET /books/:book_id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        book_id  path      int  true  "Book id"
// @Success      200      {object}  domain.Book
// @Failure      404      {object}  map[string]string
// @Router       /books/{book_id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	id, err := pathID(c, "book_id")
	if err != nil {
		return err
	}

	book, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, book)
}

// Search handles GET /books/search?q=.
//
// @Summary      Search books by title or author
// @Tags         books
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search query"
// @Success      200  {array}   domain.Book
// @Router       /books/search [get]
func (h *BookHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	books, err := h.service.Search(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, books)
}

// Create handles POST /books: multipart form with the book fields and a
// PDF file part.
//
// @Summary      Add a book with its PDF
// @Tags         books
// @Accept       multipart/form-data
// @Produce      plain
// @Security     BearerAuth
// @Param        title   formData  string  true   "Title"
// @Param        author  formData  string  true   "Author"
// @Param        file    formData  file    true   "PDF document"
// @Success      201     {string}  string
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	title := c.FormValue("title")
	author := c.FormValue("author")
	if title == "" || author == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title and author are required")
	}

	var categoryID *int
	if raw := c.FormValue("category_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "category_id must be an integer")
		}
		categoryID = &id
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	body, err := h.service.Create(c.Request().Context(), ports.CreateBookInput{
		Title:       title,
		Author:      author,
		Description: c.FormValue("description"),
		CategoryID:  categoryID,
		UploadedBy:  user.Username,
		FileName:    fh.Filename,
		File:        src,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotPDF) {
			return echo.NewHTTPError(http.StatusBadRequest, "only PDF uploads are accepted")
		}
		return err
	}

	metrics.BooksUploadedTotal.Inc()
	return c.String(http.StatusCreated, body)
}

// Update handles PUT /books/:book_id with a partial JSON document.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      plain
// @Security     BearerAuth
// @Param        book_id  path      int             true  "Book id"
// @Param        body     body      map[string]any  true  "Fields to update"
// @Success      200      {string}  string
// @Failure      404      {object}  map[string]string
// @Router       /books/{book_id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	id, err := pathID(c, "book_id")
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

// Delete handles DELETE /books/:book_id.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        book_id  path  int  true  "Book id"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /books/{book_id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "book_id")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" must be an integer")
	}
	return id, nil
}
