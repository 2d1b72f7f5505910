package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rafiul1009/minicart/auth"
	"github.com/rafiul1009/minicart/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, userType string) *models.User {
	t.Helper()
	user := models.User{Name: "T", Email: email, Type: userType}
	require.NoError(t, user.SetPassword("pw"))
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func requestAs(t *testing.T, r *gin.Engine, user *models.User) *httptest.ResponseRecorder {
	t.Helper()
	token, err := auth.GenerateToken(user)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: auth.CookieName, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	admin := createUser(t, db, "admin@example.com", models.UserTypeAdmin)
	user := createUser(t, db, "user@example.com", models.UserTypeUser)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin-only", ValidateToken, RequireAdmin(db), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	assert.Equal(t, http.StatusOK, requestAs(t, r, admin).Code)
	assert.Equal(t, http.StatusForbidden, requestAs(t, r, user).Code)

	// No cookie
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
