package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"nexus/utils"
)

func newAuthRouter(requiredRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/guarded", SessionAuthMiddleware(requiredRole), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doGet(t *testing.T, r *gin.Engine, token string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestSessionAuthMiddleware(t *testing.T) {
	r := newAuthRouter("provider")

	if code := doGet(t, r, ""); code != http.StatusUnauthorized {
		t.Fatalf("missing token: expected 401, got %d", code)
	}
	if code := doGet(t, r, "not-a-token"); code != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", code)
	}

	clientToken, err := utils.GenerateToken("session", "client", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code := doGet(t, r, clientToken); code != http.StatusForbidden {
		t.Fatalf("wrong role: expected 403, got %d", code)
	}

	providerToken, err := utils.GenerateToken("session", "provider", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code := doGet(t, r, providerToken); code != http.StatusOK {
		t.Fatalf("matching role: expected 200, got %d", code)
	}

	// An empty required role accepts any valid session token.
	anyRole := newAuthRouter("")
	if code := doGet(t, anyRole, clientToken); code != http.StatusOK {
		t.Fatalf("any-role route: expected 200, got %d", code)
	}
}
