package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pkl-management-backend/middleware"
	"pkl-management-backend/utils"

	"github.com/gin-gonic/gin"
)

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": c.GetString("userID"), "role": c.GetString("role")})
	})
	return r
}

func TestCORS(t *testing.T) {
	t.Run("it should answer a preflight from any origin", func(t *testing.T) {
		r := newEngine(middleware.CORS([]string{"*"}))
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("unmatch: status: (actual, expected) = (%d, %d)", w.Code, http.StatusNoContent)
		}
		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("unmatch: (actual, expected) = (%q, %q)", got, "*")
		}
	})

	t.Run("it should echo an allowed origin from the list", func(t *testing.T) {
		r := newEngine(middleware.CORS([]string{"https://pkl.kampus.ac.id"}))
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://pkl.kampus.ac.id")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://pkl.kampus.ac.id" {
			t.Errorf("unmatch: (actual, expected) = (%q, %q)", got, "https://pkl.kampus.ac.id")
		}
	})
}

func TestAuthMiddleware(t *testing.T) {
	secret := []byte("rahasia")
	r := newEngine(middleware.AuthMiddleware(secret))

	serve := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("it should reject a request without a bearer token", func(t *testing.T) {
		for _, header := range []string{"", "Basic abc", "Bearer   "} {
			if w := serve(header); w.Code != http.StatusUnauthorized {
				t.Errorf("%q: unmatch: (actual, expected) = (%d, 401)", header, w.Code)
			}
		}
	})

	t.Run("it should pass the user id and role on", func(t *testing.T) {
		token, err := utils.GenerateToken(secret, time.Hour, "u1", "dosen")
		if err != nil {
			t.Fatal(err)
		}
		w := serve("Bearer " + token)
		if w.Code != http.StatusOK {
			t.Fatalf("unmatch: (actual, expected) = (%d, 200), body %s", w.Code, w.Body.String())
		}
		if w.Body.String() != `{"role":"dosen","userID":"u1"}` {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})
}
