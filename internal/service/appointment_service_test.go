package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// fakeAppointmentStore — хранилище в памяти с управляемыми сбоями мутаций
type fakeAppointmentStore struct {
	appointments map[uuid.UUID]*model.Appointment

	failMutations int // сколько первых мутаций завершить ошибкой
	mutationCalls int
}

func newFakeStore(appointments ...*model.Appointment) *fakeAppointmentStore {
	s := &fakeAppointmentStore{appointments: make(map[uuid.UUID]*model.Appointment)}
	for _, appt := range appointments {
		s.appointments[appt.ID] = appt
	}
	return s
}

func (s *fakeAppointmentStore) GetByID(_ context.Context, id uuid.UUID) (*model.Appointment, error) {
	appt, ok := s.appointments[id]
	if !ok {
		return nil, nil
	}
	copied := *appt
	return &copied, nil
}

func (s *fakeAppointmentStore) ListRange(_ context.Context, from, to time.Time, staffID *uuid.UUID) ([]*model.Appointment, error) {
	var result []*model.Appointment
	for _, appt := range s.appointments {
		if appt.StartTime.Before(from) || !appt.StartTime.Before(to) {
			continue
		}
		if staffID != nil && appt.StaffID != *staffID {
			continue
		}
		copied := *appt
		result = append(result, &copied)
	}
	return result, nil
}

func (s *fakeAppointmentStore) UpdateStatus(_ context.Context, id uuid.UUID, status model.AppointmentStatus) error {
	if err := s.maybeFail(); err != nil {
		return err
	}
	appt, ok := s.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}
	appt.Status = status
	return nil
}

func (s *fakeAppointmentStore) Reschedule(_ context.Context, id uuid.UUID, newStart time.Time) error {
	if err := s.maybeFail(); err != nil {
		return err
	}
	appt, ok := s.appointments[id]
	if !ok {
		return errors.New("appointment not found")
	}
	appt.StartTime = newStart
	return nil
}

func (s *fakeAppointmentStore) CompletePastConfirmed(_ context.Context, now time.Time) (int64, error) {
	var count int64
	for _, appt := range s.appointments {
		if appt.Status == model.AppointmentStatusConfirmed && appt.EndTime().Before(now) {
			appt.Status = model.AppointmentStatusDone
			count++
		}
	}
	return count, nil
}

func (s *fakeAppointmentStore) maybeFail() error {
	s.mutationCalls++
	if s.mutationCalls <= s.failMutations {
		return errors.New("connection reset")
	}
	return nil
}

func testHours() BusinessHours {
	return BusinessHours{OpenHour: 9, CloseHour: 21, SlotStepMinutes: 60}
}

func testAppointment(status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		ID:              uuid.New(),
		ClientName:      "Мария",
		ServiceName:     "Маникюр",
		StartTime:       time.Date(2025, time.March, 12, 10, 0, 0, 0, time.UTC),
		DurationMinutes: 60,
		StaffID:         uuid.New(),
		Status:          status,
	}
}

func TestUpdateStatus(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusPending)
	store := newFakeStore(appt)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	updated, err := svc.UpdateStatus(context.Background(), appt.ID, model.AppointmentStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != model.AppointmentStatusConfirmed {
		t.Errorf("возвращённая запись должна иметь новый статус, получено %s", updated.Status)
	}
	if store.appointments[appt.ID].Status != model.AppointmentStatusConfirmed {
		t.Errorf("статус в хранилище должен обновиться, получено %s", store.appointments[appt.ID].Status)
	}
}

func TestUpdateStatusRejectsInvalidTransition(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusDone)
	store := newFakeStore(appt)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), appt.ID, model.AppointmentStatusPending)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("ожидалась ErrInvalidTransition, получено %v", err)
	}
	if store.appointments[appt.ID].Status != model.AppointmentStatusDone {
		t.Errorf("запрещённый переход не должен менять хранилище, получено %s", store.appointments[appt.ID].Status)
	}
}

func TestUpdateStatusRetriesTransientFailure(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusPending)
	store := newFakeStore(appt)
	store.failMutations = 1 // первая попытка падает, вторая проходит
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	updated, err := svc.UpdateStatus(context.Background(), appt.ID, model.AppointmentStatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus после ретрая: %v", err)
	}
	if updated.Status != model.AppointmentStatusConfirmed {
		t.Errorf("после успешного ретрая статус должен обновиться, получено %s", updated.Status)
	}
	if store.mutationCalls != 2 {
		t.Errorf("ожидалось 2 попытки мутации, получено %d", store.mutationCalls)
	}
}

func TestUpdateStatusPersistentFailureLeavesStoreUntouched(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusPending)
	store := newFakeStore(appt)
	store.failMutations = 100 // все попытки падают
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), appt.ID, model.AppointmentStatusConfirmed)
	if err == nil {
		t.Fatal("ожидалась ошибка после исчерпания ретраев")
	}
	if store.appointments[appt.ID].Status != model.AppointmentStatusPending {
		t.Errorf("после окончательной неудачи статус в хранилище не должен измениться, получено %s",
			store.appointments[appt.ID].Status)
	}
}

func TestUpdateStatusNotFound(t *testing.T) {
	store := newFakeStore()
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), model.AppointmentStatusConfirmed)
	if !errors.Is(err, ErrAppointmentNotFound) {
		t.Fatalf("ожидалась ErrAppointmentNotFound, получено %v", err)
	}
}

func TestReschedule(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusConfirmed)
	store := newFakeStore(appt)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	newDay := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	updated, err := svc.Reschedule(context.Background(), appt.ID, newDay, "15:00")
	if err != nil {
		t.Fatalf("Reschedule: %v", err)
	}

	want := time.Date(2025, time.March, 14, 15, 0, 0, 0, time.UTC)
	if !updated.StartTime.Equal(want) {
		t.Errorf("ожидалось время начала %v, получено %v", want, updated.StartTime)
	}
	if !store.appointments[appt.ID].StartTime.Equal(want) {
		t.Errorf("время в хранилище должно обновиться, получено %v", store.appointments[appt.ID].StartTime)
	}
}

func TestRescheduleRejectsOutsideBusinessHours(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusConfirmed)
	store := newFakeStore(appt)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	newDay := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	originalStart := appt.StartTime

	// Последний час перед закрытием: запись на 60 минут уместится,
	// а слот после закрытия — нет
	if _, err := svc.Reschedule(context.Background(), appt.ID, newDay, "21:00"); !errors.Is(err, ErrOutsideBusinessHours) {
		t.Errorf("слот в час закрытия: ожидалась ErrOutsideBusinessHours, получено %v", err)
	}
	if _, err := svc.Reschedule(context.Background(), appt.ID, newDay, "08:00"); !errors.Is(err, ErrOutsideBusinessHours) {
		t.Errorf("слот до открытия: ожидалась ErrOutsideBusinessHours, получено %v", err)
	}
	if !store.appointments[appt.ID].StartTime.Equal(originalStart) {
		t.Errorf("отклонённый перенос не должен менять хранилище, получено %v", store.appointments[appt.ID].StartTime)
	}
}

func TestRescheduleRejectsDurationOverflow(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusConfirmed)
	appt.DurationMinutes = 120
	store := newFakeStore(appt)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	// 20:00 + 120 минут выходит за закрытие в 21:00
	newDay := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Reschedule(context.Background(), appt.ID, newDay, "20:00"); !errors.Is(err, ErrOutsideBusinessHours) {
		t.Errorf("запись должна умещаться в рабочие часы целиком, получено %v", err)
	}
}

func TestRescheduleRejectsInvalidSlot(t *testing.T) {
	appt := testAppointment(model.AppointmentStatusConfirmed)
	store := newFakeStore(appt)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	newDay := time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC)
	if _, err := svc.Reschedule(context.Background(), appt.ID, newDay, "abc"); !errors.Is(err, ErrInvalidSlot) {
		t.Errorf("ожидалась ErrInvalidSlot, получено %v", err)
	}
}

func TestFetchWeek(t *testing.T) {
	inWeek := testAppointment(model.AppointmentStatusConfirmed)
	nextWeek := testAppointment(model.AppointmentStatusConfirmed)
	nextWeek.StartTime = inWeek.StartTime.AddDate(0, 0, 14)

	store := newFakeStore(inWeek, nextWeek)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	got, err := svc.FetchWeek(context.Background(), inWeek.StartTime, model.StaffFilterAll)
	if err != nil {
		t.Fatalf("FetchWeek: %v", err)
	}
	if len(got) != 1 || got[0].ID != inWeek.ID {
		t.Errorf("в выборку должна попасть только запись текущей недели, получено %d", len(got))
	}

	// Фильтр по мастеру
	filtered, err := svc.FetchWeek(context.Background(), inWeek.StartTime, inWeek.StaffID.String())
	if err != nil {
		t.Fatalf("FetchWeek с фильтром: %v", err)
	}
	if len(filtered) != 1 {
		t.Errorf("фильтр по мастеру должен вернуть его записи, получено %d", len(filtered))
	}

	if _, err := svc.FetchWeek(context.Background(), inWeek.StartTime, "not-a-uuid"); err == nil {
		t.Error("невалидный фильтр мастера должен возвращать ошибку")
	}
}

func TestCompletePast(t *testing.T) {
	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)

	past := testAppointment(model.AppointmentStatusConfirmed)
	past.StartTime = now.Add(-3 * time.Hour)
	future := testAppointment(model.AppointmentStatusConfirmed)
	future.StartTime = now.Add(2 * time.Hour)
	pastPending := testAppointment(model.AppointmentStatusPending)
	pastPending.StartTime = now.Add(-3 * time.Hour)

	store := newFakeStore(past, future, pastPending)
	svc := NewAppointmentService(store, testHours(), zap.NewNop())

	count, err := svc.CompletePast(context.Background(), now)
	if err != nil {
		t.Fatalf("CompletePast: %v", err)
	}
	if count != 1 {
		t.Errorf("должна закрыться одна прошедшая подтверждённая запись, получено %d", count)
	}
	if store.appointments[past.ID].Status != model.AppointmentStatusDone {
		t.Errorf("прошедшая подтверждённая запись должна стать завершённой")
	}
	if store.appointments[future.ID].Status != model.AppointmentStatusConfirmed {
		t.Errorf("будущая запись не должна меняться")
	}
	if store.appointments[pastPending.ID].Status != model.AppointmentStatusPending {
		t.Errorf("неподтверждённая запись не должна закрываться автоматически")
	}
}
