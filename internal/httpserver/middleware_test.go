package httpserver

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Bossax/creagy-project-tracker/internal/util"
)

func authTestRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"employee_id": c.GetInt64("employee_id")})
	})
	return r
}

func TestAuthMiddleware_missingToken(t *testing.T) {
	t.Parallel()

	r := authTestRouter("secret")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/protected", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_invalidToken(t *testing.T) {
	t.Parallel()

	r := authTestRouter("secret")
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddleware_validToken(t *testing.T) {
	t.Parallel()

	token, err := util.GenerateJWT(7, "secret")
	if err != nil {
		t.Fatal(err)
	}

	r := authTestRouter("secret")
	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"employee_id":7}` {
		t.Errorf("body = %s", body)
	}
}
