package userControllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rafiul1009/minicart/middleware"
	"github.com/rafiul1009/minicart/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{},
		&models.Order{}, &models.OrderItem{},
	))
	return db
}

func newAuthRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/register", Register(db))
	r.POST("/auth/login", Login(db))
	r.GET("/auth/me", middleware.ValidateToken, GetUserDetails(db))
	r.GET("/auth/me/orders", middleware.ValidateToken, GetUserOrders(db))
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	r := newAuthRouter(db)

	w := postJSON(t, r, "/auth/register", `{"name": "Jane", "email": "jane@example.com", "password": "hunter2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "hunter2")
	assert.NotContains(t, w.Body.String(), `"password"`)
	require.NotEmpty(t, w.Result().Cookies(), "register should set the auth cookie")

	// Duplicate email
	w = postJSON(t, r, "/auth/register", `{"name": "Jane", "email": "jane@example.com", "password": "hunter2"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password
	w = postJSON(t, r, "/auth/login", `{"email": "jane@example.com", "password": "wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Valid login, then the cookie authenticates /auth/me
	w = postJSON(t, r, "/auth/login", `{"email": "jane@example.com", "password": "hunter2"}`)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jane@example.com")

	// No cookie at all
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUserOrdersNewestFirst(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	r := newAuthRouter(db)

	w := postJSON(t, r, "/auth/register", `{"name": "Jane", "email": "jane@example.com", "password": "hunter2"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()

	var user models.User
	require.NoError(t, db.Where("email = ?", "jane@example.com").First(&user).Error)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	older := models.Order{UserID: user.ID, Ref: "ref-older", Total: decimal.RequireFromString("5.00"), CreatedAt: base}
	newer := models.Order{UserID: user.ID, Ref: "ref-newer", Total: decimal.RequireFromString("9.00"), CreatedAt: base.Add(time.Hour)}
	other := models.Order{UserID: user.ID + 1, Ref: "ref-other", Total: decimal.RequireFromString("1.00"), CreatedAt: base}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)
	require.NoError(t, db.Create(&other).Error)

	req := httptest.NewRequest(http.MethodGet, "/auth/me/orders", nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []models.Order `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "ref-newer", resp.Data[0].Ref)
	assert.Equal(t, "ref-older", resp.Data[1].Ref)
}
