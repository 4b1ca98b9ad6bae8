package model

import (
	"testing"
	"time"
)

func TestCanTransition(t *testing.T) {
	for _, from := range AllAppointmentStatuses {
		for _, to := range AllAppointmentStatuses {
			got := CanTransition(from, to)
			want := !(from == AppointmentStatusDone && to == AppointmentStatusPending)
			if got != want {
				t.Errorf("CanTransition(%s, %s) = %v, ожидалось %v", from, to, got, want)
			}
		}
	}
}

func TestParseAppointmentStatus(t *testing.T) {
	for _, status := range AllAppointmentStatuses {
		got, ok := ParseAppointmentStatus(string(status))
		if !ok || got != status {
			t.Errorf("ParseAppointmentStatus(%q) = %q, %v", status, got, ok)
		}
	}

	if _, ok := ParseAppointmentStatus("unknown"); ok {
		t.Error("неизвестный статус не должен парситься")
	}
	if _, ok := ParseAppointmentStatus(""); ok {
		t.Error("пустой статус не должен парситься")
	}
}

func TestEndTime(t *testing.T) {
	appt := &Appointment{
		StartTime:       time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 90,
	}

	want := time.Date(2025, time.March, 12, 11, 30, 0, 0, time.UTC)
	if got := appt.EndTime(); !got.Equal(want) {
		t.Errorf("EndTime() = %v, ожидалось %v", got, want)
	}
}
