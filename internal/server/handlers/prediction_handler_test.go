package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifsetiawan/motocare/internal/domain/models"
	"github.com/arifsetiawan/motocare/internal/service/prediction"
)

func predictionEngine(store *prediction.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewPredictionHandler(store, nil)
	r.GET("/api/predictions", handler.List)
	r.GET("/api/predictions/:date", handler.ListByDate)
	return r
}

func getPredictions(t *testing.T, engine *gin.Engine, path string) (int, []models.PredictionRecord) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed struct {
		Predictions []models.PredictionRecord `json:"predictions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w.Code, parsed.Predictions
}

func storedRecords() []models.PredictionRecord {
	return []models.PredictionRecord{
		{PhoneNumber: "+62811111111", Date: "2031-01-15", SpareParts: []models.SparePart{models.SparePartCatalog[0]}, AvgKmPerMonth: 1000.5},
		{PhoneNumber: "+62822222222", Date: "2031-01-16", SpareParts: []models.SparePart{models.SparePartCatalog[3]}, AvgKmPerMonth: 980},
	}
}

func TestListReturnsAllPredictions(t *testing.T) {
	engine := predictionEngine(prediction.NewStore(storedRecords()))

	code, predictions := getPredictions(t, engine, "/api/predictions")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, storedRecords(), predictions)
}

func TestListByDateFilters(t *testing.T) {
	engine := predictionEngine(prediction.NewStore(storedRecords()))

	code, predictions := getPredictions(t, engine, "/api/predictions/2031-01-16")

	assert.Equal(t, http.StatusOK, code)
	require.Len(t, predictions, 1)
	assert.Equal(t, "+62822222222", predictions[0].PhoneNumber)
}

func TestListByDateNoMatchIsEmptyListNot404(t *testing.T) {
	engine := predictionEngine(prediction.NewStore(storedRecords()))

	req := httptest.NewRequest(http.MethodGet, "/api/predictions/1999-12-31", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"predictions": []}`, w.Body.String())
}
