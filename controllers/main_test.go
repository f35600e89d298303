package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eatn-dev/eatn-menu-api/config"
	"github.com/eatn-dev/eatn-menu-api/models"
	"github.com/eatn-dev/eatn-menu-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// setupRouter wires the full router against a fresh in-memory database, the
// same way the process does at startup, minus postgres.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	// A pooled in-memory sqlite would hand each connection its own database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Category{},
		&models.Subcategory{},
		&models.MenuItem{},
		&models.Tag{},
	))

	config.DB = db
	return routes.SetupRouter()
}

func do(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// messageBody matches {data:{message, returning:{...}}} responses.
type messageBody struct {
	Data struct {
		Message   string          `json:"message"`
		Returning map[string]uint `json:"returning"`
	} `json:"data"`
}

// errorBody matches {data:{errors:{field:[messages]}}} responses.
type errorBody struct {
	Data struct {
		Errors map[string][]string `json:"errors"`
	} `json:"data"`
}

func createCategory(t *testing.T, r http.Handler, name string) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/categories", gin.H{"name": name})
	require.Equal(t, http.StatusOK, w.Code)
	var body messageBody
	decode(t, w, &body)
	return body.Data.Returning["categoryId"]
}

func createSubcategory(t *testing.T, r http.Handler, name string, categoryID uint) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/subcategories", gin.H{"name": name, "categoryId": categoryID})
	require.Equal(t, http.StatusOK, w.Code)
	var body messageBody
	decode(t, w, &body)
	return body.Data.Returning["subcategoryId"]
}

func createMenuItem(t *testing.T, r http.Handler, name string, subcategoryID *uint) uint {
	t.Helper()
	payload := gin.H{
		"name":        name,
		"price":       4.20,
		"quantity":    "300g",
		"description": "A test dish",
	}
	if subcategoryID != nil {
		payload["subcategoryId"] = *subcategoryID
	}
	w := do(t, r, http.MethodPost, "/items", payload)
	require.Equal(t, http.StatusOK, w.Code)
	var body messageBody
	decode(t, w, &body)
	return body.Data.Returning["menuItemId"]
}

func createTag(t *testing.T, r http.Handler, name string) uint {
	t.Helper()
	w := do(t, r, http.MethodPost, "/tags", gin.H{
		"name":    name,
		"bgColor": "#ff0000",
		"fgColor": "#fff",
		"icon":    "pepper",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var body messageBody
	decode(t, w, &body)
	return body.Data.Returning["tagId"]
}
