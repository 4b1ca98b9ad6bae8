package calendar

import (
	"fmt"
	"time"
)

// DaysInWeek — количество дней в отображаемом окне недели
const DaysInWeek = 7

// NormalizeToDay нормализует время к началу дня
func NormalizeToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDays возвращает 7 дней недели для опорной даты.
// Неделя начинается с воскресенья, все даты нормализованы к началу дня,
// поэтому результат не зависит от времени суток опорной даты.
func WeekDays(ref time.Time) [DaysInWeek]time.Time {
	start := WeekStart(ref)

	var days [DaysInWeek]time.Time
	for i := 0; i < DaysInWeek; i++ {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// WeekStart возвращает воскресенье недели, в которую попадает дата
func WeekStart(ref time.Time) time.Time {
	normalized := NormalizeToDay(ref)
	// time.Sunday == 0, поэтому Weekday() и есть смещение от начала недели
	return normalized.AddDate(0, 0, -int(normalized.Weekday()))
}

// WeekRange возвращает полуинтервал [начало недели, начало следующей недели)
// для выборки записей из хранилища
func WeekRange(ref time.Time) (time.Time, time.Time) {
	start := WeekStart(ref)
	return start, start.AddDate(0, 0, DaysInWeek)
}

// TimeSlots возвращает упорядоченный список меток времени "HH:MM"
// от открытия до закрытия салона с заданным шагом в минутах.
// Последний слот начинается строго до часа закрытия.
func TimeSlots(openHour, closeHour, stepMinutes int) []string {
	if stepMinutes <= 0 {
		stepMinutes = 60
	}

	var slots []string
	for minutes := openHour * 60; minutes < closeHour*60; minutes += stepMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return slots
}

// SameDay сравнивает только календарные даты, игнорируя время суток
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday проверяет, совпадает ли календарная дата с сегодняшней
func IsToday(d, now time.Time) bool {
	return SameDay(d, now)
}
