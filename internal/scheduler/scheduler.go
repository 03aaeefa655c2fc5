package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/arifsetiawan/motocare/internal/config"
	"github.com/arifsetiawan/motocare/internal/domain/models"
	"github.com/arifsetiawan/motocare/internal/service/notification"
	"github.com/arifsetiawan/motocare/internal/service/prediction"
)

// Scheduler optionally dispatches reminders for the current date's stored
// predictions on a cron schedule. It is inert when no schedule is configured.
type Scheduler struct {
	cron       *cron.Cron
	store      *prediction.Store
	dispatcher notification.Dispatcher
	schedule   string
	logger     *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.ReminderConfig, store *prediction.Store, dispatcher notification.Dispatcher, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:       cron.New(),
		store:      store,
		dispatcher: dispatcher,
		schedule:   cfg.CronSchedule,
		logger:     logger,
	}
}

// Start registers the reminder job and starts the cron loop. A missing
// schedule leaves the scheduler stopped.
func (s *Scheduler) Start() {
	if s.schedule == "" {
		s.logger.Info("reminder scheduler disabled")
		return
	}

	if _, err := s.cron.AddFunc(s.schedule, s.sendTodayReminders); err != nil {
		s.logger.Error("failed to schedule reminder job", zap.String("schedule", s.schedule), zap.Error(err))
		return
	}

	s.logger.Info("reminder scheduler started", zap.String("schedule", s.schedule))
	s.cron.Start()
}

// Stop stops the cron loop.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) sendTodayReminders() {
	today := time.Now().Format(models.DateLayout)
	records := s.store.GetByDate(today)
	if len(records) == 0 {
		s.logger.Info("no reminders due today", zap.String("date", today))
		return
	}

	requests := make([]models.NotificationRequest, 0, len(records))
	for _, record := range records {
		requests = append(requests, models.NotificationRequest{
			PhoneNumber:   record.PhoneNumber,
			Date:          record.Date,
			SpareParts:    record.SpareParts,
			AvgKmPerMonth: record.AvgKmPerMonth,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result, err := s.dispatcher.Dispatch(ctx, requests)
	if err != nil {
		s.logger.Error("scheduled dispatch failed", zap.String("date", today), zap.Int("sent", result.Sent), zap.Error(err))
		return
	}

	s.logger.Info("scheduled reminders sent", zap.String("date", today), zap.Int("sent", result.Sent))
}
