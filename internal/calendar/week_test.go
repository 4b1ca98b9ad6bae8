package calendar

import (
	"testing"
	"time"
)

func TestWeekDays(t *testing.T) {
	// Среда, середина дня
	ref := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)
	days := WeekDays(ref)

	if got := days[0].Weekday(); got != time.Sunday {
		t.Fatalf("неделя должна начинаться с воскресенья, получено %v", got)
	}

	containsRef := false
	for i, d := range days {
		if d.Hour() != 0 || d.Minute() != 0 || d.Second() != 0 {
			t.Errorf("день %d не нормализован к началу дня: %v", i, d)
		}
		if i > 0 && !days[i-1].Before(d) {
			t.Errorf("дни должны строго возрастать: %v >= %v", days[i-1], d)
		}
		if i > 0 {
			if diff := d.Sub(days[i-1]); diff != 24*time.Hour {
				t.Errorf("соседние дни должны отличаться на сутки, получено %v", diff)
			}
		}
		if SameDay(d, ref) {
			containsRef = true
		}
	}
	if !containsRef {
		t.Error("неделя должна содержать опорную дату")
	}
}

func TestWeekDaysIgnoresTimeOfDay(t *testing.T) {
	day := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)

	morning := WeekDays(day.Add(1 * time.Minute))
	evening := WeekDays(day.Add(23*time.Hour + 59*time.Minute))

	for i := range morning {
		if !morning[i].Equal(evening[i]) {
			t.Fatalf("окно недели зависит от времени суток: %v != %v", morning[i], evening[i])
		}
	}
}

func TestWeekNavigationRoundTrip(t *testing.T) {
	// Переход через границу месяца: 29 января -> +7 дней -> -7 дней
	ref := time.Date(2025, time.January, 29, 10, 0, 0, 0, time.UTC)

	start := WeekStart(ref)
	next := WeekStart(ref.AddDate(0, 0, 7))
	back := next.AddDate(0, 0, -7)

	if got := next.Sub(start); got != 7*24*time.Hour {
		t.Errorf("следующая неделя должна начинаться ровно через 7 дней, получено %v", got)
	}
	if !back.Equal(start) {
		t.Errorf("навигация вперёд-назад должна возвращать исходную неделю: %v != %v", back, start)
	}
	if next.Month() != time.February {
		t.Errorf("следующая неделя должна начинаться в феврале, получено %v", next.Month())
	}
}

func TestWeekRange(t *testing.T) {
	ref := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)
	from, to := WeekRange(ref)

	if from.Weekday() != time.Sunday {
		t.Errorf("начало диапазона должно быть воскресеньем, получено %v", from.Weekday())
	}
	if got := to.Sub(from); got != 7*24*time.Hour {
		t.Errorf("диапазон должен покрывать ровно 7 суток, получено %v", got)
	}
	if ref.Before(from) || !ref.Before(to) {
		t.Errorf("опорная дата должна попадать в полуинтервал [%v, %v)", from, to)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots(9, 21, 60)

	if len(slots) != 12 {
		t.Fatalf("ожидалось 12 слотов, получено %d", len(slots))
	}
	if slots[0] != "09:00" {
		t.Errorf("первый слот должен совпадать с открытием, получен %q", slots[0])
	}
	if slots[len(slots)-1] != "20:00" {
		t.Errorf("последний слот должен начинаться строго до закрытия, получен %q", slots[len(slots)-1])
	}
	for i := 1; i < len(slots); i++ {
		if slots[i-1] >= slots[i] {
			t.Errorf("слоты должны строго возрастать: %q >= %q", slots[i-1], slots[i])
		}
	}
}

func TestTimeSlotsHalfHourStep(t *testing.T) {
	slots := TimeSlots(10, 12, 30)

	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if len(slots) != len(want) {
		t.Fatalf("ожидалось %d слотов, получено %d: %v", len(want), len(slots), slots)
	}
	for i := range want {
		if slots[i] != want[i] {
			t.Errorf("слот %d: ожидался %q, получен %q", i, want[i], slots[i])
		}
	}
}

func TestIsToday(t *testing.T) {
	now := time.Date(2025, time.March, 12, 14, 0, 0, 0, time.UTC)

	if !IsToday(time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC), now) {
		t.Error("та же календарная дата должна считаться сегодняшней")
	}
	if IsToday(time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC), now) {
		t.Error("другая дата не должна считаться сегодняшней")
	}
}
