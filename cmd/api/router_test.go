package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(apiToken string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("/api")
	protected.Use(TokenMiddleware(apiToken))
	protected.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"pong": true})
	})
	return r
}

func doRequest(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/ping", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTokenMiddlewareAcceptsValidToken(t *testing.T) {
	r := newTestRouter("secret")
	w := doRequest(r, "Bearer secret")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTokenMiddlewareRejectsMissingHeader(t *testing.T) {
	r := newTestRouter("secret")
	w := doRequest(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenMiddlewareRejectsWrongToken(t *testing.T) {
	r := newTestRouter("secret")
	w := doRequest(r, "Bearer wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenMiddlewareRejectsNonBearerScheme(t *testing.T) {
	r := newTestRouter("secret")
	w := doRequest(r, "Basic secret")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTokenMiddlewareDisabledWithoutToken(t *testing.T) {
	r := newTestRouter("")
	w := doRequest(r, "Bearer anything")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
