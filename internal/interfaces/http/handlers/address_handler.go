package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/interfaces/http/middleware"
	"aeronest.backend/internal/interfaces/http/response"
	"aeronest.backend/internal/usecases"
)

// AddressHandler handles delivery address endpoints
type AddressHandler struct {
	addressUsecase *usecases.AddressUsecase
}

// NewAddressHandler creates a new address handler
func NewAddressHandler(addressUsecase *usecases.AddressUsecase) *AddressHandler {
	return &AddressHandler{addressUsecase: addressUsecase}
}

// List returns the user's addresses
// GET /api/v1/user/addresses
func (h *AddressHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	addresses, err := h.addressUsecase.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"addresses": addresses})
}

// Create saves a new address
// POST /api/v1/user/addresses
func (h *AddressHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	var input entities.CreateAddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	addr, err := h.addressUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"address": addr})
}

// Delete removes an address
// DELETE /api/v1/user/addresses/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Некорректный идентификатор адреса"))
		return
	}

	if err := h.addressUsecase.Delete(c.Request.Context(), addressID, userID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
