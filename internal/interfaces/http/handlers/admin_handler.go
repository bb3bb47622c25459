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

// AdminHandler handles the back-office endpoints
type AdminHandler struct {
	adminUsecase *usecases.AdminUsecase
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase *usecases.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// UpdateOrderStatus overwrites an order's status
// PATCH /api/v1/admin/orders/:id
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Некорректный идентификатор заказа"))
		return
	}

	var input entities.UpdateOrderStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	order, err := h.adminUsecase.UpdateOrderStatus(c.Request.Context(), orderID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"id":        order.ID,
		"status":    order.Status,
		"amount":    order.Amount.StringFixed(2),
		"createdAt": order.CreatedAt,
	})
}

// RecentOrders lists the latest orders with customer info
// GET /api/v1/admin/orders/recent?limit=
func (h *AdminHandler) RecentOrders(c *gin.Context) {
	orders, err := h.adminUsecase.RecentOrders(c.Request.Context(), c.Query("limit"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// OrderStats counts orders awaiting dispatch
// GET /api/v1/admin/orders/stats
func (h *AdminHandler) OrderStats(c *gin.Context) {
	count, err := h.adminUsecase.ConfirmedOrdersCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"confirmedOrders": count})
}

// DashboardStats aggregates the dashboard numbers
// GET /api/v1/admin/dashboard/stats
func (h *AdminHandler) DashboardStats(c *gin.Context) {
	stats, err := h.adminUsecase.DashboardStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"activeOrders": stats.ActiveOrders,
		"activeUsers":  stats.ActiveUsers,
		"successRate":  stats.SuccessRate,
		"revenue24h":   stats.Revenue24h.StringFixed(2),
	})
}

// ListUsers returns every user with order activity
// GET /api/v1/admin/users
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"users": users})
}

// DeleteUser removes a user account
// DELETE /api/v1/admin/users/:id
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Требуется авторизация"))
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Некорректный идентификатор пользователя"))
		return
	}

	if err := h.adminUsecase.DeleteUser(c.Request.Context(), actorID, targetID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

// ListReferrals returns every referral code with usage stats
// GET /api/v1/admin/referrals
func (h *AdminHandler) ListReferrals(c *gin.Context) {
	referrals, err := h.adminUsecase.ListReferrals(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"referrals": referrals})
}

// CreateReferral mints a referral code
// POST /api/v1/admin/referrals
func (h *AdminHandler) CreateReferral(c *gin.Context) {
	var input entities.CreateReferralInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	referral, err := h.adminUsecase.CreateReferral(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"referral": referral})
}
