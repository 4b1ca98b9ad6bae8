package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/calendar"
	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

// Ошибки доменного уровня (для маппинга в пользовательские сообщения)
var (
	ErrAppointmentNotFound  = errors.New("appointment not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrOutsideBusinessHours = errors.New("target time is outside business hours")
	ErrInvalidSlot          = errors.New("invalid time slot")
)

// AppointmentStore — узкий интерфейс хранилища записей, который потребляет
// календарь. Реализуется repository.AppointmentRepository.
type AppointmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	ListRange(ctx context.Context, from, to time.Time, staffID *uuid.UUID) ([]*model.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error
	Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) error
	CompletePastConfirmed(ctx context.Context, now time.Time) (int64, error)
}

// BusinessHours — рабочее окно салона, определяет ось времени сетки
type BusinessHours struct {
	OpenHour        int
	CloseHour       int
	SlotStepMinutes int
}

// Slots возвращает метки слотов для этих рабочих часов
func (h BusinessHours) Slots() []string {
	return calendar.TimeSlots(h.OpenHour, h.CloseHour, h.SlotStepMinutes)
}

type AppointmentService struct {
	store  AppointmentStore
	hours  BusinessHours
	logger *zap.Logger
}

func NewAppointmentService(store AppointmentStore, hours BusinessHours, logger *zap.Logger) *AppointmentService {
	return &AppointmentService{
		store:  store,
		hours:  hours,
		logger: logger,
	}
}

func (s *AppointmentService) Hours() BusinessHours {
	return s.hours
}

// FetchWeek получает записи недели опорной даты, опционально одного мастера.
// staffFilter — model.StaffFilterAll либо UUID мастера.
func (s *AppointmentService) FetchWeek(ctx context.Context, ref time.Time, staffFilter string) ([]*model.Appointment, error) {
	from, to := calendar.WeekRange(ref)

	var staffID *uuid.UUID
	if staffFilter != model.StaffFilterAll {
		id, err := uuid.Parse(staffFilter)
		if err != nil {
			return nil, fmt.Errorf("parse staff filter: %w", err)
		}
		staffID = &id
	}

	appointments, err := s.store.ListRange(ctx, from, to, staffID)
	if err != nil {
		return nil, fmt.Errorf("fetch week appointments: %w", err)
	}

	return appointments, nil
}

// GetByID получает одну запись
func (s *AppointmentService) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appt, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get appointment: %w", err)
	}
	if appt == nil {
		return nil, ErrAppointmentNotFound
	}
	return appt, nil
}

// UpdateStatus меняет статус записи с проверкой графа переходов.
// Мутация выполняется с ограниченным числом ретраев; при окончательной
// неудаче запись в хранилище остаётся нетронутой.
func (s *AppointmentService) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus model.AppointmentStatus) (*model.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !model.CanTransition(appt.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, appt.Status, newStatus)
	}

	err = s.withRetry(ctx, "update status", func(ctx context.Context) error {
		return s.store.UpdateStatus(ctx, id, newStatus)
	})
	if err != nil {
		return nil, fmt.Errorf("update appointment status: %w", err)
	}

	s.logger.Info("Appointment status updated",
		zap.String("appointment_id", id.String()),
		zap.String("from", string(appt.Status)),
		zap.String("to", string(newStatus)))

	appt.Status = newStatus
	return appt, nil
}

// Reschedule переносит запись на слот newSlot ("HH:MM") дня newDay.
// Цель должна попадать в рабочие часы салона целиком, с учётом длительности.
func (s *AppointmentService) Reschedule(ctx context.Context, id uuid.UUID, newDay time.Time, newSlot string) (*model.Appointment, error) {
	appt, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newStart, err := slotStart(newDay, newSlot)
	if err != nil {
		return nil, err
	}

	if !s.withinBusinessHours(newStart, appt.DurationMinutes) {
		return nil, fmt.Errorf("%w: %s %s", ErrOutsideBusinessHours, newDay.Format("2006-01-02"), newSlot)
	}

	err = s.withRetry(ctx, "reschedule", func(ctx context.Context) error {
		return s.store.Reschedule(ctx, id, newStart)
	})
	if err != nil {
		return nil, fmt.Errorf("reschedule appointment: %w", err)
	}

	s.logger.Info("Appointment rescheduled",
		zap.String("appointment_id", id.String()),
		zap.Time("from", appt.StartTime),
		zap.Time("to", newStart))

	appt.StartTime = newStart
	return appt, nil
}

// CompletePast закрывает прошедшие подтверждённые записи (фоновая задача)
func (s *AppointmentService) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	return s.store.CompletePastConfirmed(ctx, now)
}

// withRetry выполняет мутацию с экспоненциальным backoff.
// Сетевые сбои транзиентны, поэтому ретраим всё, кроме отмены контекста.
func (s *AppointmentService) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(2, retry.NewExponential(200*time.Millisecond))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}
		if ctx.Err() != nil {
			return err
		}
		s.logger.Warn("Store mutation failed, will retry",
			zap.String("operation", op),
			zap.Int("attempt", attempt),
			zap.Error(err))
		return retry.RetryableError(err)
	})
}

// withinBusinessHours проверяет, что запись целиком умещается в рабочие часы
func (s *AppointmentService) withinBusinessHours(start time.Time, durationMinutes int) bool {
	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := startMinutes + durationMinutes
	return startMinutes >= s.hours.OpenHour*60 && endMinutes <= s.hours.CloseHour*60
}

// slotStart собирает время начала из дня и метки слота "HH:MM"
func slotStart(day time.Time, slot string) (time.Time, error) {
	var h, m int
	if n, err := fmt.Sscanf(slot, "%d:%d", &h, &m); err != nil || n != 2 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, day.Location()), nil
}
