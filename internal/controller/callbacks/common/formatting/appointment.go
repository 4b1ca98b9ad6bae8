package formatting

import (
	"fmt"

	"github.com/Freeeeeet/salon_bot/internal/model"
)

// FormatAppointmentInfo форматирует карточку записи для экрана деталей
func FormatAppointmentInfo(appt *model.Appointment, staffName string) string {
	statusDisplay := GetStatusDisplay(appt.Status)

	if staffName == "" {
		staffName = "—"
	}

	return fmt.Sprintf(
		"%s <b>Запись</b>\n\n"+
			"👤 Клиент: %s\n"+
			"💅 Услуга: %s\n"+
			"🧑‍🎨 Мастер: %s\n"+
			"📅 Дата: %s\n"+
			"🕐 Время: %s\n"+
			"⏱ Длительность: %s\n"+
			"📊 Статус: %s",
		statusDisplay.Emoji,
		appt.ClientName,
		appt.ServiceName,
		staffName,
		FormatDateWithWeekday(appt.StartTime),
		FormatTimeRange(appt.StartTime, appt.EndTime()),
		FormatDuration(appt.DurationMinutes),
		statusDisplay.Text,
	)
}

// FormatAppointmentLine форматирует запись в одну строку для кнопки-карточки
func FormatAppointmentLine(appt *model.Appointment) string {
	statusDisplay := GetStatusDisplay(appt.Status)

	return fmt.Sprintf("%s %s %s • %s • %s",
		statusDisplay.Emoji,
		GetWeekdayShort(int(appt.StartTime.Weekday())),
		appt.StartTime.Format("02.01 15:04"),
		appt.ClientName,
		appt.ServiceName,
	)
}
