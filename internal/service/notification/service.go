package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/arifsetiawan/motocare/internal/config"
	"github.com/arifsetiawan/motocare/internal/domain/models"
	"github.com/arifsetiawan/motocare/internal/repository/mongodb"
	"github.com/arifsetiawan/motocare/pkg/clients/wasender"
)

// ErrNotConfigured signals that the gateway credentials are absent. No send
// is attempted in that case.
var ErrNotConfigured = errors.New("notification service not configured")

// Dispatcher describes the dispatch operation consumers depend on.
type Dispatcher interface {
	Dispatch(ctx context.Context, requests []models.NotificationRequest) (models.DispatchResult, error)
}

// Service relays reminder messages to the gateway, one at a time, halting on
// the first failure.
type Service struct {
	cfg    config.NotifConfig
	client wasender.Client
	audit  mongodb.Repository
	logger *zap.Logger
}

// NewService wires a dispatcher instance. The audit repository is optional;
// nil disables dispatch logging.
func NewService(cfg config.NotifConfig, client wasender.Client, audit mongodb.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cfg: cfg, client: client, audit: audit, logger: logger}
}

// Dispatch sends one message per request in input order. The result's Sent
// count tells the caller how many messages went out before a failure; those
// sends are irreversible, so a failed dispatch is not transactional. An empty
// input with valid credentials succeeds without any network call.
func (s *Service) Dispatch(ctx context.Context, requests []models.NotificationRequest) (models.DispatchResult, error) {
	if s.cfg.APIKey == "" || s.cfg.BaseURL == "" {
		return models.DispatchResult{}, ErrNotConfigured
	}

	result := models.DispatchResult{}

	for i, req := range requests {
		message := RenderMessage(req)

		if err := s.client.SendMessage(ctx, wasender.SendMessageRequest{Receiver: req.PhoneNumber, Text: message}); err != nil {
			s.logger.Error("dispatch aborted",
				zap.Int("request_index", i),
				zap.Int("sent_before_failure", result.Sent),
				zap.String("receiver", req.PhoneNumber),
				zap.Error(err))
			return result, err
		}

		result.Sent++
		s.recordDispatch(ctx, req, message)
	}

	s.logger.Info("dispatch completed", zap.Int("sent", result.Sent))
	return result, nil
}

// RenderMessage builds the reminder body: a greeting naming the customer's
// phone number and service date, then one numbered line per spare part.
func RenderMessage(req models.NotificationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Halo %s,\n\nJangan lupa service motor kalian pada tanggal %s.\n\nBerikut adalah prediksi spare part yang harus diganti:\n", req.PhoneNumber, req.Date)
	for i, part := range req.SpareParts {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, part.Name, part.Reason)
	}
	return b.String()
}

// recordDispatch writes the audit entry best-effort; a failed write never
// fails the dispatch.
func (s *Service) recordDispatch(ctx context.Context, req models.NotificationRequest, message string) {
	if s.audit == nil {
		return
	}

	entry := mongodb.DispatchLog{
		Receiver:    req.PhoneNumber,
		ServiceDate: req.Date,
		Message:     message,
		SentAt:      time.Now(),
	}

	if err := s.audit.SaveDispatchLog(ctx, entry); err != nil {
		s.logger.Warn("failed to record dispatch log", zap.String("receiver", req.PhoneNumber), zap.Error(err))
	}
}
