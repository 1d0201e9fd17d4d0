package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"tourism_backend/internal/models"
	"tourism_backend/internal/utils"
)

var testSecret = []byte("secret-de-test")

func authTestRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(CtxUserID),
			"role":    c.GetString(CtxRole),
		})
	})
	return r
}

func TestAuthRequired(t *testing.T) {
	r := authTestRouter(testSecret)

	request := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("token valide", func(t *testing.T) {
		user := models.User{ID: "u-42", Role: models.RoleAdmin}
		token, err := utils.GenerateJWT(user, testSecret)
		if err != nil {
			t.Fatal(err)
		}
		rec := request("Bearer " + token)
		if rec.Code != http.StatusOK {
			t.Fatalf("statut = %d, attendu 200 (%s)", rec.Code, rec.Body)
		}
	})

	t.Run("en-tête absent", func(t *testing.T) {
		if rec := request(""); rec.Code != http.StatusUnauthorized {
			t.Errorf("statut = %d, attendu 401", rec.Code)
		}
	})

	t.Run("format invalide", func(t *testing.T) {
		if rec := request("Basic abc"); rec.Code != http.StatusUnauthorized {
			t.Errorf("statut = %d, attendu 401", rec.Code)
		}
	})

	t.Run("mauvais secret", func(t *testing.T) {
		token, err := utils.GenerateJWT(models.User{ID: "u-42"}, []byte("autre-secret"))
		if err != nil {
			t.Fatal(err)
		}
		if rec := request("Bearer " + token); rec.Code != http.StatusUnauthorized {
			t.Errorf("statut = %d, attendu 401", rec.Code)
		}
	})

	t.Run("token expiré", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":  "u-42",
			"role": models.RoleUser,
			"iat":  time.Now().Add(-48 * time.Hour).Unix(),
			"exp":  time.Now().Add(-24 * time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		if err != nil {
			t.Fatal(err)
		}
		if rec := request("Bearer " + token); rec.Code != http.StatusUnauthorized {
			t.Errorf("statut = %d, attendu 401", rec.Code)
		}
	})

	t.Run("sub manquant", func(t *testing.T) {
		claims := jwt.MapClaims{
			"role": models.RoleUser,
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
		if err != nil {
			t.Fatal(err)
		}
		if rec := request("Bearer " + token); rec.Code != http.StatusUnauthorized {
			t.Errorf("statut = %d, attendu 401", rec.Code)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AuthRequired(testSecret), RequireAdmin, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	request := func(role string) *httptest.ResponseRecorder {
		token, err := utils.GenerateJWT(models.User{ID: "u-1", Role: role}, testSecret)
		if err != nil {
			t.Fatal(err)
		}
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("admin autorisé", func(t *testing.T) {
		if rec := request(models.RoleAdmin); rec.Code != http.StatusOK {
			t.Errorf("statut = %d, attendu 200", rec.Code)
		}
	})

	t.Run("utilisateur refusé", func(t *testing.T) {
		if rec := request(models.RoleUser); rec.Code != http.StatusForbidden {
			t.Errorf("statut = %d, attendu 403", rec.Code)
		}
	})
}
