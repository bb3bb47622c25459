package response

import (
	"errors"

	"github.com/gin-gonic/gin"
	domainerrors "aeronest.backend/internal/domain/errors"
)

// Success sends the success envelope
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// Error sends the error envelope. Non-AppError values are treated as
// internal errors unless they match a known sentinel.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"success": false,
		"error":   appErr.Message,
		"code":    appErr.Code,
	})
}

// AbortError sends the error envelope and aborts the handler chain
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("Ресурс не найден")
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(401, domainerrors.CodeInvalidCredentials,
			"Неверный email или пароль", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("Требуется авторизация")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("Недостаточно прав")
	case errors.Is(err, domainerrors.ErrInvalidInput), errors.Is(err, domainerrors.ErrBadRequest):
		return domainerrors.BadRequest(err.Error())
	case errors.Is(err, domainerrors.ErrAlreadyExists), errors.Is(err, domainerrors.ErrConflict):
		return domainerrors.Conflict(err.Error())
	case errors.Is(err, domainerrors.ErrInsufficientFunds):
		return domainerrors.InsufficientFunds("Недостаточно средств")
	case errors.Is(err, domainerrors.ErrReferralLimitReached):
		return domainerrors.LimitExceeded(err.Error())
	case errors.Is(err, domainerrors.ErrTooManyAttempts):
		return domainerrors.TooManyAttempts(err.Error())
	default:
		return domainerrors.InternalError(err)
	}
}
