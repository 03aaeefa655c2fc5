package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arifsetiawan/motocare/internal/domain/models"
	"github.com/arifsetiawan/motocare/internal/service/notification"
	"github.com/arifsetiawan/motocare/pkg/clients/wasender"
)

// NotificationHandler handles reminder-relay requests.
type NotificationHandler struct {
	svc    notification.Dispatcher
	logger *zap.Logger
}

// NewNotificationHandler constructs the HTTP handler adapter.
func NewNotificationHandler(svc notification.Dispatcher, logger *zap.Logger) *NotificationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationHandler{svc: svc, logger: logger}
}

// Send relays a JSON array of notification requests to the messaging gateway.
// Delivery is sequential and halts on the first failure; messages sent before
// that failure are not recalled.
func (h *NotificationHandler) Send(c *gin.Context) {
	var requests []models.NotificationRequest
	if err := c.ShouldBindJSON(&requests); err != nil {
		h.logger.Warn("invalid notification payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return
	}

	result, err := h.svc.Dispatch(c.Request.Context(), requests)
	if err != nil {
		var upstream *wasender.UpstreamError

		switch {
		case errors.Is(err, notification.ErrNotConfigured):
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Notification service not configured"})
		case errors.As(err, &upstream):
			h.logger.Error("notification rejected upstream", zap.Int("sent", result.Sent), zap.Int("status", upstream.StatusCode))
			c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("Failed to send notification: %s", upstream.Body)})
		default:
			h.logger.Error("notification transport failure", zap.Int("sent", result.Sent), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": fmt.Sprintf("Error sending notification: %s", err.Error())})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Notification sent successfully"})
}
