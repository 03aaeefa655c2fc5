package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arifsetiawan/motocare/internal/service/prediction"
)

// PredictionHandler serves read-only prediction queries.
type PredictionHandler struct {
	store  *prediction.Store
	logger *zap.Logger
}

// NewPredictionHandler constructs the HTTP handler adapter.
func NewPredictionHandler(store *prediction.Store, logger *zap.Logger) *PredictionHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PredictionHandler{store: store, logger: logger}
}

// List returns every stored prediction.
func (h *PredictionHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"predictions": h.store.GetAll()})
}

// ListByDate returns the predictions whose date matches the path parameter
// exactly. No match is an empty list, not a 404.
func (h *PredictionHandler) ListByDate(c *gin.Context) {
	date := c.Param("date")
	c.JSON(http.StatusOK, gin.H{"predictions": h.store.GetByDate(date)})
}
