package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/barakatna/platform/backend/internal/models"
	"github.com/barakatna/platform/backend/internal/services"
)

func setupRuleRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := OpenTestDB(t)
	require.NoError(t, db.AutoMigrate(&models.BusinessRule{}, &models.ClientType{}))

	ruleHandler := NewRuleHandler(services.NewRuleService(db))
	ctHandler := NewClientTypeHandler(services.NewClientTypeService(db))

	r := gin.New()
	r.GET("/rules", ruleHandler.List)
	r.POST("/rules", ruleHandler.Create)
	r.GET("/rules/:uuid", ruleHandler.Get)
	r.DELETE("/rules/:uuid", ruleHandler.Delete)
	r.GET("/client-types", ctHandler.List)
	r.POST("/client-types", ctHandler.Create)
	r.DELETE("/client-types/:code", ctHandler.Delete)
	return r
}

func TestRuleHandler_CreateListDelete(t *testing.T) {
	r := setupRuleRouter(t)

	w := postJSON(r, "/client-types", `{"code":"elderly","name":"Elderly Care","enabled":true}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/rules", `{"name":"eligibility-age","client_type_code":"elderly","priority":10,"conditions":"{\"field\":\"age\"}"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var rule models.BusinessRule
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rule))
	require.NotEmpty(t, rule.UUID)

	// Unknown client type is a bad request.
	w = postJSON(r, "/rules", `{"name":"orphan","client_type_code":"ghost"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate name conflicts.
	w = postJSON(r, "/rules", `{"name":"eligibility-age"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	req, _ := http.NewRequest("GET", "/rules?client_type=elderly", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "eligibility-age")

	// The referencing rule blocks client type deletion.
	req, _ = http.NewRequest("DELETE", "/client-types/elderly", nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusConflict, rec.Code)

	req, _ = http.NewRequest("DELETE", "/rules/"+rule.UUID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req, _ = http.NewRequest("GET", "/rules/"+rule.UUID, nil)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
