package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/interfaces/http/response"
	"aeronest.backend/internal/usecases"
)

// CatalogHandler handles public storefront endpoints
type CatalogHandler struct {
	catalogUsecase *usecases.CatalogUsecase
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogUsecase *usecases.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListEntries lists merchant cards
// GET /api/v1/catalog?category=
func (h *CatalogHandler) ListEntries(c *gin.Context) {
	entries, err := h.catalogUsecase.ListEntries(c.Request.Context(), c.Query("category"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"catalog": entries})
}

// ListItems lists one merchant's items
// GET /api/v1/items?catalogId=
func (h *CatalogHandler) ListItems(c *gin.Context) {
	catalogID, err := uuid.Parse(c.Query("catalogId"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Параметр catalogId обязателен"))
		return
	}

	items, err := h.catalogUsecase.ListItems(c.Request.Context(), catalogID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"items": items})
}

// ListPartners lists delivery partners
// GET /api/v1/partners
func (h *CatalogHandler) ListPartners(c *gin.Context) {
	partners, err := h.catalogUsecase.ListPartners(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"partners": partners})
}
