package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// CancelButton создаёт кнопку "Отмена"
func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Отмена", callbackData)
}

// BackToCalendarButton создаёт кнопку возврата к календарю
func BackToCalendarButton() models.InlineKeyboardButton {
	return Button("📅 К календарю", "back_to_calendar")
}

// WeekNavRow создаёт ряд навигации по неделям для заданного смещения
func WeekNavRow(weekOffset int) []models.InlineKeyboardButton {
	row := []models.InlineKeyboardButton{
		Button("⬅️ Пред. неделя", fmt.Sprintf("cal_week:%d", weekOffset-1)),
	}
	if weekOffset != 0 {
		row = append(row, Button("📍 Сегодня", "cal_week:0"))
	}
	row = append(row, Button("След. неделя ➡️", fmt.Sprintf("cal_week:%d", weekOffset+1)))
	return row
}

// AddBackToCalendarButton добавляет кнопку возврата к календарю
func (b *Builder) AddBackToCalendarButton() *Builder {
	return b.Row(BackToCalendarButton())
}
