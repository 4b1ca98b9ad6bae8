package formatting

import (
	"testing"

	"github.com/Freeeeeet/salon_bot/internal/model"
)

func TestGetStatusDisplay(t *testing.T) {
	tests := []struct {
		status model.AppointmentStatus
		emoji  string
		text   string
	}{
		{model.AppointmentStatusPending, "⏳", "Ожидает подтверждения"},
		{model.AppointmentStatusConfirmed, "✅", "Подтверждена"},
		{model.AppointmentStatusDone, "✔️", "Завершена"},
		{model.AppointmentStatusCanceled, "❌", "Отменена"},
	}

	for _, tt := range tests {
		display := GetStatusDisplay(tt.status)
		if display.Emoji != tt.emoji || display.Text != tt.text {
			t.Errorf("GetStatusDisplay(%s) = {%s %s}, ожидалось {%s %s}",
				tt.status, display.Emoji, display.Text, tt.emoji, tt.text)
		}
	}
}

func TestGetStatusDisplayUnknown(t *testing.T) {
	// Битая запись с неизвестным статусом получает нейтральный бейдж
	display := GetStatusDisplay(model.AppointmentStatus("garbage"))
	if display.Emoji != "⚪️" || display.Text != "Неизвестно" {
		t.Errorf("неизвестный статус должен давать нейтральное отображение, получено {%s %s}",
			display.Emoji, display.Text)
	}
}
