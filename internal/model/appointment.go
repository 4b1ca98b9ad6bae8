package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "pending"   // Ожидает подтверждения
	AppointmentStatusConfirmed AppointmentStatus = "confirmed" // Подтверждена
	AppointmentStatusDone      AppointmentStatus = "done"      // Клиент пришёл, визит завершён
	AppointmentStatusCanceled  AppointmentStatus = "canceled"  // Отменена
)

// AllAppointmentStatuses — закрытый список статусов в порядке отображения
var AllAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusPending,
	AppointmentStatusConfirmed,
	AppointmentStatusDone,
	AppointmentStatusCanceled,
}

// ParseAppointmentStatus парсит статус из callback data
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	switch AppointmentStatus(s) {
	case AppointmentStatusPending, AppointmentStatusConfirmed,
		AppointmentStatusDone, AppointmentStatusCanceled:
		return AppointmentStatus(s), true
	}
	return "", false
}

// CanTransition проверяет допустимость смены статуса.
// Граф почти свободный: запрещён только возврат done -> pending
// (завершённый визит не может снова стать ожидающим).
func CanTransition(from, to AppointmentStatus) bool {
	if from == AppointmentStatusDone && to == AppointmentStatusPending {
		return false
	}
	return true
}

type Appointment struct {
	ID              uuid.UUID         `json:"id"`
	ClientName      string            `json:"client_name"`
	ServiceName     string            `json:"service_name"`
	StartTime       time.Time         `json:"start_time"`
	DurationMinutes int               `json:"duration_minutes"` // всегда > 0
	StaffID         uuid.UUID         `json:"staff_id"`
	Status          AppointmentStatus `json:"status"`
	CreatedAt       time.Time         `json:"created_at"`
}

// EndTime возвращает время окончания записи
func (a *Appointment) EndTime() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}
