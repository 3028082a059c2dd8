package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCatalogEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/catalog", GetCatalog)

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Categories []struct {
			Name  string `json:"name"`
			Items []struct {
				ID    string  `json:"id"`
				Price float64 `json:"price"`
			} `json:"items"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Categories, 5)
	assert.Equal(t, "Laundry", payload.Categories[0].Name)
	assert.Equal(t, "wash", payload.Categories[0].Items[0].ID)
	assert.Equal(t, 18.99, payload.Categories[0].Items[0].Price)
}
