package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/interfaces/http/middleware"
	"aeronest.backend/internal/interfaces/http/response"
	"aeronest.backend/internal/usecases"
)

// UserHandler handles wallet balance endpoints
type UserHandler struct {
	walletUsecase *usecases.WalletUsecase
}

// NewUserHandler creates a new user handler
func NewUserHandler(walletUsecase *usecases.WalletUsecase) *UserHandler {
	return &UserHandler{walletUsecase: walletUsecase}
}

// GetBalance returns the current balance
// GET /api/v1/user/balance
func (h *UserHandler) GetBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	balance, err := h.walletUsecase.GetBalance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance.StringFixed(2)})
}

// DeductBalance withdraws an amount from the balance
// POST /api/v1/user/balance/deduct
func (h *UserHandler) DeductBalance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	var input struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	newBalance, err := h.walletUsecase.Deduct(c.Request.Context(), userID, input.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": newBalance.StringFixed(2)})
}
