package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/Freeeeeet/salon_bot/internal/repository/base"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentRepository struct {
	*base.Repository
}

func NewAppointmentRepository(pool *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{Repository: base.NewRepository(pool)}
}

const appointmentColumns = `id, client_name, service_name, start_time, duration_minutes, staff_id, status, created_at`

// Create создаёт новую запись (используется внешним booking-потоком и сидами)
func (r *AppointmentRepository) Create(ctx context.Context, appt *model.Appointment) error {
	if appt.DurationMinutes <= 0 {
		return fmt.Errorf("create appointment: duration must be positive, got %d", appt.DurationMinutes)
	}

	query := `
		INSERT INTO appointments (id, client_name, service_name, start_time, duration_minutes, staff_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at
	`

	if appt.ID == uuid.Nil {
		appt.ID = uuid.New()
	}

	err := r.QueryRow(
		ctx, query,
		appt.ID,
		appt.ClientName,
		appt.ServiceName,
		appt.StartTime,
		appt.DurationMinutes,
		appt.StaffID,
		appt.Status,
	).Scan(&appt.CreatedAt)

	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}

	return nil
}

// GetByID получает запись по ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE id = $1
	`

	var appt model.Appointment
	err := r.QueryRow(ctx, query, id).Scan(
		&appt.ID,
		&appt.ClientName,
		&appt.ServiceName,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.StaffID,
		&appt.Status,
		&appt.CreatedAt,
	)

	if err != nil {
		if base.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get appointment by id: %w", err)
	}

	return &appt, nil
}

// ListRange получает записи в диапазоне [from, to), опционально по одному мастеру
func (r *AppointmentRepository) ListRange(ctx context.Context, from, to time.Time, staffID *uuid.UUID) ([]*model.Appointment, error) {
	query := `
		SELECT ` + appointmentColumns + `
		FROM appointments
		WHERE start_time >= $1
		  AND start_time < $2
		  AND ($3::uuid IS NULL OR staff_id = $3)
		ORDER BY start_time, client_name
	`

	rows, err := r.Query(ctx, query, from, to, staffID)
	if err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*model.Appointment
	for rows.Next() {
		var appt model.Appointment
		err := rows.Scan(
			&appt.ID,
			&appt.ClientName,
			&appt.ServiceName,
			&appt.StartTime,
			&appt.DurationMinutes,
			&appt.StaffID,
			&appt.Status,
			&appt.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan appointment: %w", err)
		}
		appointments = append(appointments, &appt)
	}

	return appointments, nil
}

// UpdateStatus меняет статус записи
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $1
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("update appointment status: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("update appointment status: appointment %s not found", id)
	}

	return nil
}

// Reschedule переносит запись на новое время начала
func (r *AppointmentRepository) Reschedule(ctx context.Context, id uuid.UUID, newStart time.Time) error {
	query := `
		UPDATE appointments
		SET start_time = $1
		WHERE id = $2
	`

	affected, err := r.ExecAffected(ctx, query, newStart, id)
	if err != nil {
		return fmt.Errorf("reschedule appointment: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("reschedule appointment: appointment %s not found", id)
	}

	return nil
}

// CompletePastConfirmed переводит подтверждённые записи с прошедшим временем
// окончания в статус done, возвращает количество обновлённых
func (r *AppointmentRepository) CompletePastConfirmed(ctx context.Context, now time.Time) (int64, error) {
	affected, err := r.ExecAffected(ctx, `
		UPDATE appointments
		SET status = 'done'
		WHERE status = 'confirmed'
		  AND start_time + duration_minutes * interval '1 minute' < $1
	`, now)
	if err != nil {
		return 0, fmt.Errorf("complete past appointments: %w", err)
	}

	return affected, nil
}
