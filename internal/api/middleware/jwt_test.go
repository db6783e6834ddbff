package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testJWTConfig = JWTConfig{
	SigningKey: []byte("0123456789abcdef0123456789abcdef"),
	Issuer:     "satfab",
	ExpiresIn:  time.Hour,
}

func newAuthedRouter(signingKey []byte) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(signingKey))
	router.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"username": GetUsername(c.Request.Context()),
			"role":     GetRole(c.Request.Context()),
		})
	})
	return router
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	token, expiresAt, err := GenerateToken(testJWTConfig, "alice", "engineer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if time.Until(expiresAt) <= 0 {
		t.Fatalf("expiresAt %v is not in the future", expiresAt)
	}

	router := newAuthedRouter(testJWTConfig.SigningKey)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{`"username":"alice"`, `"role":"engineer"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("body %s missing %s", body, want)
		}
	}
}

func TestJWTAuth_MissingAndMalformedHeader(t *testing.T) {
	router := newAuthedRouter(testJWTConfig.SigningKey)

	for _, tc := range []struct {
		name   string
		header string
	}{
		{"missing", ""},
		{"not bearer", "Basic dXNlcjpwYXNz"},
		{"garbage token", "Bearer not.a.jwt"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), `"code":"UNAUTHORIZED"`) {
				t.Fatalf("body %s missing UNAUTHORIZED code", rec.Body.String())
			}
		})
	}
}

func TestJWTAuth_WrongKeyRejected(t *testing.T) {
	token, _, err := GenerateToken(testJWTConfig, "alice", "engineer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := newAuthedRouter([]byte("another-secret-key-32-bytes-long!"))
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	expired := testJWTConfig
	expired.ExpiresIn = -time.Minute

	token, _, err := GenerateToken(expired, "alice", "engineer")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	router := newAuthedRouter(testJWTConfig.SigningKey)
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "token expired") {
		t.Fatalf("body %s missing expiry message", rec.Body.String())
	}
}
