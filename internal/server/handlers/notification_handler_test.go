package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arifsetiawan/motocare/internal/domain/models"
	"github.com/arifsetiawan/motocare/internal/service/notification"
	"github.com/arifsetiawan/motocare/pkg/clients/wasender"
)

type stubDispatcher struct {
	result models.DispatchResult
	err    error
	got    []models.NotificationRequest
}

func (s *stubDispatcher) Dispatch(ctx context.Context, requests []models.NotificationRequest) (models.DispatchResult, error) {
	s.got = requests
	return s.result, s.err
}

func notificationEngine(svc notification.Dispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/send-notification", NewNotificationHandler(svc, nil).Send)
	return r
}

func postNotifications(t *testing.T, engine *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/send-notification", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestSendSuccess(t *testing.T) {
	svc := &stubDispatcher{result: models.DispatchResult{Sent: 1}}
	engine := notificationEngine(svc)

	w, body := postNotifications(t, engine,
		`[{"phone_number":"+62812345678","date":"2031-01-15","spare_parts":[{"name":"Chain","price":150000,"reason":"Stretched and worn"}]}]`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Notification sent successfully", body["message"])
	require.Len(t, svc.got, 1)
	assert.Equal(t, "+62812345678", svc.got[0].PhoneNumber)
}

func TestSendNotConfigured(t *testing.T) {
	svc := &stubDispatcher{err: notification.ErrNotConfigured}
	engine := notificationEngine(svc)

	w, body := postNotifications(t, engine, `[{"phone_number":"+62812345678"}]`)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Notification service not configured", body["message"])
}

func TestSendUpstreamRejection(t *testing.T) {
	svc := &stubDispatcher{
		result: models.DispatchResult{Sent: 1},
		err:    &wasender.UpstreamError{StatusCode: 500, Body: "quota exceeded"},
	}
	engine := notificationEngine(svc)

	w, body := postNotifications(t, engine, `[{"phone_number":"+62812345678"}]`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send notification: quota exceeded", body["message"])
}

func TestSendTransportFault(t *testing.T) {
	svc := &stubDispatcher{err: context.DeadlineExceeded}
	engine := notificationEngine(svc)

	w, body := postNotifications(t, engine, `[{"phone_number":"+62812345678"}]`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, body["message"], "Error sending notification: ")
	assert.Contains(t, body["message"], context.DeadlineExceeded.Error())
}

func TestSendInvalidBody(t *testing.T) {
	svc := &stubDispatcher{}
	engine := notificationEngine(svc)

	w, body := postNotifications(t, engine, `{"not":"an array"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid request body", body["message"])
	assert.Nil(t, svc.got)
}
