package handler

import (
	"net/http"
	"strings"

	"book-catalog/internal/domains/book/model"
	service "book-catalog/internal/domains/book/service"
	"book-catalog/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler serves the read-only dataset. It never filters: search runs on the
// client against the downloaded catalog.
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the catalog endpoints on rg.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog", h.GetCatalog)
	rg.GET("/authors", h.ListAuthors)
	rg.GET("/genres", h.ListGenres)
	rg.GET("/books/:id", h.GetBookDetail)
}

// GetCatalog - GET /v1/catalog
// Returns books, author and genre maps and the page size in one payload.
func (h *Handler) GetCatalog(c *gin.Context) {
	snapshot, err := h.service.GetSnapshot(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, snapshot, &response.Meta{
		Total:    len(snapshot.Books),
		PageSize: snapshot.PageSize,
	})
}

// ListAuthors - GET /v1/authors
func (h *Handler) ListAuthors(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.ListAuthors(c.Request.Context()))
}

// ListGenres - GET /v1/genres
func (h *Handler) ListGenres(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.ListGenres(c.Request.Context()))
}

// GetBookDetail - GET /v1/books/:id
func (h *Handler) GetBookDetail(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "invalid book id")
		return
	}

	detail, err := h.service.GetBookDetail(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}

	response.Success(c, http.StatusOK, detail)
}
