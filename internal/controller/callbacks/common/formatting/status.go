package formatting

import "github.com/Freeeeeet/salon_bot/internal/model"

// StatusDisplay представляет отображение статуса записи
type StatusDisplay struct {
	Emoji string
	Text  string
}

// GetStatusDisplay возвращает emoji и текст для статуса записи.
// Неизвестный статус получает нейтральное отображение, а не панику:
// битая запись не должна ломать рендеринг.
func GetStatusDisplay(status model.AppointmentStatus) StatusDisplay {
	displays := map[model.AppointmentStatus]StatusDisplay{
		model.AppointmentStatusPending:   {"⏳", "Ожидает подтверждения"},
		model.AppointmentStatusConfirmed: {"✅", "Подтверждена"},
		model.AppointmentStatusDone:      {"✔️", "Завершена"},
		model.AppointmentStatusCanceled:  {"❌", "Отменена"},
	}

	if display, ok := displays[status]; ok {
		return display
	}

	return StatusDisplay{"⚪️", "Неизвестно"}
}
