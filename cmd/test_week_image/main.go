package main

import (
	"fmt"
	"os"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/calendar"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/google/uuid"
)

func main() {
	// Создаем тестовые данные
	now := time.Now()
	days := calendar.WeekDays(now)
	slots := calendar.TimeSlots(9, 21, 60)

	masterA := uuid.New()
	masterB := uuid.New()
	staffNames := map[uuid.UUID]string{
		masterA: "Алина",
		masterB: "Вера",
	}

	appointments := []*model.Appointment{
		appt(days[1], 10, 0, 60, "Мария", "Маникюр", masterA, model.AppointmentStatusConfirmed),
		appt(days[1], 14, 0, 90, "Ольга", "Окрашивание", masterB, model.AppointmentStatusPending),
		appt(days[2], 10, 0, 60, "Ирина", "Стрижка", masterB, model.AppointmentStatusConfirmed),
		appt(days[2], 16, 0, 30, "Дарья", "Брови", masterA, model.AppointmentStatusCanceled),
		appt(days[3], 9, 0, 120, "Светлана", "Педикюр", masterA, model.AppointmentStatusDone),
		appt(days[4], 11, 0, 60, "Анна", "Укладка", masterB, model.AppointmentStatusConfirmed),
		// Две записи в одной ячейке
		appt(days[4], 13, 0, 60, "Екатерина", "Маникюр", masterA, model.AppointmentStatusConfirmed),
		appt(days[4], 13, 30, 30, "Полина", "Брови", masterB, model.AppointmentStatusPending),
	}

	grid := calendar.BuildGrid(days, slots, appointments)

	// Генерируем изображение
	imageData, err := common.GenerateWeekImage(grid, staffNames, now)
	if err != nil {
		fmt.Printf("Ошибка генерации изображения: %v\n", err)
		os.Exit(1)
	}

	// Сохраняем в файл
	filename := "week.png"
	err = os.WriteFile(filename, imageData, 0644)
	if err != nil {
		fmt.Printf("Ошибка сохранения файла: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Изображение успешно сохранено в %s\n", filename)
	fmt.Printf("📅 Период: %s - %s\n", formatting.FormatDate(days[0]), formatting.FormatDate(days[6]))
	fmt.Printf("📊 Записей в сетке: %d\n", grid.Total())
}

func appt(day time.Time, hour, minute, duration int, client, service string, staffID uuid.UUID, status model.AppointmentStatus) *model.Appointment {
	return &model.Appointment{
		ID:              uuid.New(),
		ClientName:      client,
		ServiceName:     service,
		StartTime:       time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location()),
		DurationMinutes: duration,
		StaffID:         staffID,
		Status:          status,
	}
}
