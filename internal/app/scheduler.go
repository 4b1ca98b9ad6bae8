package app

import (
	"context"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/service"
	"go.uber.org/zap"
)

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	appointmentService *service.AppointmentService
	logger             *zap.Logger
	stopChan           chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(appointmentService *service.AppointmentService, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		appointmentService: appointmentService,
		logger:             logger,
		stopChan:           make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler")

	go s.runAutoCompleteTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runAutoCompleteTask периодически закрывает прошедшие подтверждённые записи
func (s *Scheduler) runAutoCompleteTask(ctx context.Context) {
	// Первый запуск сразу при старте
	s.completePastAppointments(ctx)

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.completePastAppointments(ctx)
		case <-s.stopChan:
			s.logger.Info("Auto-complete task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Auto-complete task cancelled")
			return
		}
	}
}

// completePastAppointments переводит подтверждённые записи, у которых
// время окончания уже прошло, в статус done
func (s *Scheduler) completePastAppointments(ctx context.Context) {
	count, err := s.appointmentService.CompletePast(ctx, time.Now())
	if err != nil {
		s.logger.Error("Failed to auto-complete appointments", zap.Error(err))
		return
	}

	if count > 0 {
		s.logger.Info("Auto-completed past appointments", zap.Int64("count", count))
	}
}
