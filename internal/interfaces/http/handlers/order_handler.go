package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"aeronest.backend/internal/domain/entities"
	domainerrors "aeronest.backend/internal/domain/errors"
	"aeronest.backend/internal/interfaces/http/middleware"
	"aeronest.backend/internal/interfaces/http/response"
	"aeronest.backend/internal/usecases"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	orderUsecase *usecases.OrderUsecase
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUsecase *usecases.OrderUsecase) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase}
}

// Create places an order
// POST /api/v1/orders/create
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	var input entities.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	orderID, err := h.orderUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"orderId": orderID})
}

// My lists the user's latest orders
// GET /api/v1/orders/my
func (h *OrderHandler) My(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	orders, err := h.orderUsecase.My(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// Active returns the user's current undelivered order, or null
// GET /api/v1/orders/active
func (h *OrderHandler) Active(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	order, err := h.orderUsecase.Active(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}
