package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newIdentityRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/whoami", IdentityMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, UserIDFromContext(c))
	})
	return router
}

func TestIdentityFromHeader(t *testing.T) {
	router := newIdentityRouter()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-User-ID", "alice")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice", w.Body.String())
}

func TestIdentityFromQueryFallback(t *testing.T) {
	router := newIdentityRouter()

	req := httptest.NewRequest("GET", "/whoami?userId=bob", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "bob", w.Body.String())
}

func TestIdentityMissing(t *testing.T) {
	router := newIdentityRouter()

	req := httptest.NewRequest("GET", "/whoami", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIdentityBlankHeaderRejected(t *testing.T) {
	router := newIdentityRouter()

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("X-User-ID", "   ")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
