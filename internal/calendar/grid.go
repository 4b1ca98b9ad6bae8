package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/google/uuid"
)

// cellKey — пара (день, слот), по которой записи раскладываются по ячейкам сетки
type cellKey struct {
	Day  string // "2006-01-02"
	Slot string // "HH:MM"
}

const dayKeyFormat = "2006-01-02"

// Grid — недельная сетка записей. Записи индексируются по ячейкам один раз
// при построении, чтобы не фильтровать весь список на каждую ячейку.
type Grid struct {
	Days  [DaysInWeek]time.Time
	Slots []string
	cells map[cellKey][]*model.Appointment
	total int
}

// BuildGrid раскладывает записи по ячейкам (день, слот).
// Запись попадает в ячейку только своего календарного дня: совпадения
// только по времени суток недостаточно. Слот записи — метка времени,
// округлённая вниз до шага сетки.
func BuildGrid(days [DaysInWeek]time.Time, slots []string, appointments []*model.Appointment) *Grid {
	g := &Grid{
		Days:  days,
		Slots: slots,
		cells: make(map[cellKey][]*model.Appointment),
	}

	slotSet := make(map[string]struct{}, len(slots))
	for _, s := range slots {
		slotSet[s] = struct{}{}
	}

	step := slotStepMinutes(slots)

	for _, appt := range appointments {
		slot := slotLabel(appt.StartTime, step)
		if _, ok := slotSet[slot]; !ok {
			// Запись вне рабочих часов сетки не отображается в ячейках
			continue
		}
		key := cellKey{Day: appt.StartTime.Format(dayKeyFormat), Slot: slot}
		g.cells[key] = append(g.cells[key], appt)
		g.total++
	}

	// Стабильный порядок карточек внутри ячейки
	for key := range g.cells {
		cell := g.cells[key]
		sort.Slice(cell, func(i, j int) bool {
			if !cell[i].StartTime.Equal(cell[j].StartTime) {
				return cell[i].StartTime.Before(cell[j].StartTime)
			}
			return cell[i].ClientName < cell[j].ClientName
		})
	}

	return g
}

// ForCell возвращает записи ячейки (день, слот). Ячейка сама ничего не
// фильтрует — она получает уже разложенные записи.
func (g *Grid) ForCell(day time.Time, slot string) []*model.Appointment {
	return g.cells[cellKey{Day: day.Format(dayKeyFormat), Slot: slot}]
}

// Total возвращает количество записей, попавших в сетку
func (g *Grid) Total() int {
	return g.total
}

// FilterByStaff возвращает записи выбранного мастера.
// Сентинел model.StaffFilterAll возвращает исходный список без копирования.
func FilterByStaff(appointments []*model.Appointment, staffFilter string) []*model.Appointment {
	if staffFilter == model.StaffFilterAll {
		return appointments
	}

	staffID, err := uuid.Parse(staffFilter)
	if err != nil {
		return nil
	}

	var filtered []*model.Appointment
	for _, appt := range appointments {
		if appt.StaffID == staffID {
			filtered = append(filtered, appt)
		}
	}
	return filtered
}

// slotStepMinutes вычисляет шаг сетки по первым двум слотам
func slotStepMinutes(slots []string) int {
	if len(slots) < 2 {
		return 60
	}
	return slotMinutes(slots[1]) - slotMinutes(slots[0])
}

func slotMinutes(slot string) int {
	var h, m int
	if n, err := fmt.Sscanf(slot, "%d:%d", &h, &m); err != nil || n != 2 {
		return 0
	}
	return h*60 + m
}

// slotLabel округляет время начала записи вниз до шага сетки
func slotLabel(t time.Time, step int) string {
	if step <= 0 {
		step = 60
	}
	minutes := t.Hour()*60 + t.Minute()
	minutes -= minutes % step
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
