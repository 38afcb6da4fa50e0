package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vasandree/hits-docker-practice/utils"
)

const testSecret = "test-secret"

func newAuthRouter(t *testing.T, roles ...string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"role": utils.CurrentRole(c)})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_RoleEnforcement(t *testing.T) {
	r := newAuthRouter(t, "admin")

	adminToken, err := utils.GenerateToken(uuid.New(), "admin", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	customerToken, err := utils.GenerateToken(uuid.New(), "customer", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	if w := get(r, adminToken); w.Code != http.StatusOK {
		t.Errorf("admin status = %d, want %d: %s", w.Code, http.StatusOK, w.Body)
	}
	if w := get(r, customerToken); w.Code != http.StatusForbidden {
		t.Errorf("customer status = %d, want %d: %s", w.Code, http.StatusForbidden, w.Body)
	}
}

func TestAuthMiddleware_MissingOrBadToken(t *testing.T) {
	r := newAuthRouter(t)

	if w := get(r, ""); w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if w := get(r, "not-a-jwt"); w.Code != http.StatusUnauthorized {
		t.Errorf("garbage token status = %d, want %d", w.Code, http.StatusUnauthorized)
	}

	wrongKey, err := utils.GenerateToken(uuid.New(), "admin", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if w := get(r, wrongKey); w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
