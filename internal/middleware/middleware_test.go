package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret-key-32-characters")

func signToken(t *testing.T, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(testSecret)
	require.NoError(t, err)
	return token
}

func protectedRouter(requiredRole string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	group := router.Group("/protected")
	group.Use(BearerAuth(testSecret))
	if requiredRole != "" {
		group.Use(RequireRole(requiredRole))
	}
	group.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userID": c.GetUint("userID"),
			"role":   c.GetString("userRole"),
		})
	})
	return router
}

func getWithToken(router *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected/ping", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestBearerAuthValidToken(t *testing.T) {
	router := protectedRouter("")

	// Login-style token: HS256 with a numeric uid
	token := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  7,
		"role": "staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	w := getWithToken(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerAuthOAuthStyleToken(t *testing.T) {
	router := protectedRouter("")

	// Token-endpoint-style token: HS512 with a string uid and aud
	token := signToken(t, jwt.SigningMethodHS512, jwt.MapClaims{
		"uid":   "7",
		"role":  "admin",
		"aud":   "till_client",
		"scope": "read write",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := getWithToken(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBearerAuthRejections(t *testing.T) {
	router := protectedRouter("")

	expired := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  7,
		"role": "staff",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	})
	missingRole := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": 7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	badRole := signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  7,
		"role": "fry-cook",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	wrongKey, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  7,
		"role": "staff",
		"exp":  time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"missing header", ""},
		{"expired token", expired},
		{"missing role claim", missingRole},
		{"unknown role", badRole},
		{"wrong signing key", wrongKey},
		{"garbage token", "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getWithToken(router, tt.token)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	staffToken := func(t *testing.T) string {
		return signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
			"uid":  7,
			"role": "staff",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
	}
	adminToken := func(t *testing.T) string {
		return signToken(t, jwt.SigningMethodHS256, jwt.MapClaims{
			"uid":  8,
			"role": "admin",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
	}

	t.Run("staff passes staff gate", func(t *testing.T) {
		w := getWithToken(protectedRouter("staff"), staffToken(t))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("staff blocked from admin gate", func(t *testing.T) {
		w := getWithToken(protectedRouter("admin"), staffToken(t))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin passes every gate", func(t *testing.T) {
		w := getWithToken(protectedRouter("staff"), adminToken(t))
		assert.Equal(t, http.StatusOK, w.Code)

		w = getWithToken(protectedRouter("admin"), adminToken(t))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
