package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	domainerrors "aeronest.backend/internal/domain/errors"
)

func perform(fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	fn(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccessEnvelope(t *testing.T) {
	w, body := perform(func(c *gin.Context) {
		Success(c, http.StatusOK, gin.H{"balance": "60.00"})
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	data, ok := body["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "60.00", data["balance"])
}

func TestErrorEnvelope_AppError(t *testing.T) {
	w, body := perform(func(c *gin.Context) {
		Error(c, domainerrors.InsufficientFunds("Недостаточно средств"))
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Недостаточно средств", body["error"])
	assert.Equal(t, domainerrors.CodeInsufficientFunds, body["code"])
}

func TestErrorEnvelope_SentinelMapping(t *testing.T) {
	w, _ := perform(func(c *gin.Context) {
		Error(c, domainerrors.ErrNotFound)
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = perform(func(c *gin.Context) {
		Error(c, domainerrors.ErrInvalidCredentials)
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = perform(func(c *gin.Context) {
		Error(c, domainerrors.ErrTooManyAttempts)
	})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestErrorEnvelope_UnknownError(t *testing.T) {
	w, body := perform(func(c *gin.Context) {
		Error(c, errors.New("boom"))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, domainerrors.CodeInternalError, body["code"])
	// internal detail is not leaked
	assert.Equal(t, "internal server error", body["error"])
}
