package calendar

import (
	"testing"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/google/uuid"
)

func makeAppointment(day time.Time, hour, minute int, client string, staffID uuid.UUID) *model.Appointment {
	return &model.Appointment{
		ID:              uuid.New(),
		ClientName:      client,
		ServiceName:     "Маникюр",
		StartTime:       time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()),
		DurationMinutes: 60,
		StaffID:         staffID,
		Status:          model.AppointmentStatusConfirmed,
	}
}

func TestBuildGridMatchesDayAndTime(t *testing.T) {
	days := WeekDays(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	slots := TimeSlots(9, 21, 60)
	staffID := uuid.New()

	// Две записи в одно время суток, но в разные дни
	monday10 := makeAppointment(days[1], 10, 0, "Мария", staffID)
	tuesday10 := makeAppointment(days[2], 10, 0, "Ольга", staffID)

	grid := BuildGrid(days, slots, []*model.Appointment{monday10, tuesday10})

	mondayCell := grid.ForCell(days[1], "10:00")
	if len(mondayCell) != 1 || mondayCell[0].ClientName != "Мария" {
		t.Errorf("в ячейке понедельника 10:00 должна быть только Мария, получено %d записей", len(mondayCell))
	}

	tuesdayCell := grid.ForCell(days[2], "10:00")
	if len(tuesdayCell) != 1 || tuesdayCell[0].ClientName != "Ольга" {
		t.Errorf("в ячейке вторника 10:00 должна быть только Ольга, получено %d записей", len(tuesdayCell))
	}

	// Запись не должна дублироваться по всем дням с тем же временем
	for i, d := range days {
		if i == 1 || i == 2 {
			continue
		}
		if cell := grid.ForCell(d, "10:00"); len(cell) != 0 {
			t.Errorf("день %d: ячейка 10:00 должна быть пустой, получено %d записей", i, len(cell))
		}
	}
}

func TestBuildGridRoundsDownToSlot(t *testing.T) {
	days := WeekDays(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	slots := TimeSlots(9, 21, 60)
	staffID := uuid.New()

	appt := makeAppointment(days[3], 14, 30, "Ирина", staffID)
	grid := BuildGrid(days, slots, []*model.Appointment{appt})

	if cell := grid.ForCell(days[3], "14:00"); len(cell) != 1 {
		t.Errorf("запись 14:30 должна попасть в слот 14:00, получено %d записей", len(cell))
	}
	if cell := grid.ForCell(days[3], "15:00"); len(cell) != 0 {
		t.Errorf("запись 14:30 не должна попадать в слот 15:00")
	}
}

func TestBuildGridSkipsOutOfHours(t *testing.T) {
	days := WeekDays(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	slots := TimeSlots(9, 21, 60)
	staffID := uuid.New()

	early := makeAppointment(days[1], 7, 0, "Мария", staffID)
	late := makeAppointment(days[1], 22, 0, "Ольга", staffID)
	inHours := makeAppointment(days[1], 12, 0, "Ирина", staffID)

	grid := BuildGrid(days, slots, []*model.Appointment{early, late, inHours})

	if grid.Total() != 1 {
		t.Errorf("в сетку должна попасть только запись в рабочие часы, получено %d", grid.Total())
	}
}

func TestBuildGridSortsCell(t *testing.T) {
	days := WeekDays(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC))
	slots := TimeSlots(9, 21, 60)
	staffID := uuid.New()

	later := makeAppointment(days[1], 10, 30, "Анна", staffID)
	earlier := makeAppointment(days[1], 10, 0, "Вера", staffID)

	grid := BuildGrid(days, slots, []*model.Appointment{later, earlier})

	cell := grid.ForCell(days[1], "10:00")
	if len(cell) != 2 {
		t.Fatalf("обе записи должны попасть в одну ячейку, получено %d", len(cell))
	}
	if cell[0].ClientName != "Вера" || cell[1].ClientName != "Анна" {
		t.Errorf("записи в ячейке должны быть отсортированы по времени начала: %s, %s",
			cell[0].ClientName, cell[1].ClientName)
	}
}

func TestFilterByStaff(t *testing.T) {
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	staffA := uuid.New()
	staffB := uuid.New()

	appointments := []*model.Appointment{
		makeAppointment(day, 10, 0, "Мария", staffA),
		makeAppointment(day, 11, 0, "Ольга", staffB),
		makeAppointment(day, 12, 0, "Ирина", staffA),
	}

	all := FilterByStaff(appointments, model.StaffFilterAll)
	if len(all) != 3 {
		t.Errorf("сентинел должен возвращать все записи, получено %d", len(all))
	}

	onlyA := FilterByStaff(appointments, staffA.String())
	if len(onlyA) != 2 {
		t.Fatalf("ожидалось 2 записи мастера A, получено %d", len(onlyA))
	}
	for _, appt := range onlyA {
		if appt.StaffID != staffA {
			t.Errorf("в выборке оказалась чужая запись: %s", appt.ClientName)
		}
	}

	// Возврат к "все мастера" восстанавливает полный список
	backToAll := FilterByStaff(appointments, model.StaffFilterAll)
	if len(backToAll) != 3 {
		t.Errorf("после сброса фильтра должны вернуться все записи, получено %d", len(backToAll))
	}

	if got := FilterByStaff(appointments, "not-a-uuid"); got != nil {
		t.Errorf("невалидный фильтр должен давать пустую выборку, получено %d записей", len(got))
	}
}
