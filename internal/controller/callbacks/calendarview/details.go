package calendarview

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ========================
// Appointment Details Handlers
// ========================

// HandleViewAppointment показывает детали записи: appt:<uuid>
func HandleViewAppointment(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	apptID, err := common.ParseUUIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse appointment ID", zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		h.Logger.Error("Failed to get message from callback")
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	showAppointmentDetails(ctx, b, callback, h, msg, apptID)
}

// HandleSetStatus меняет статус записи: appt_status:<uuid>:<status>
func HandleSetStatus(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	args, err := common.CallbackParts(callback.Data, 2)
	if err != nil {
		h.Logger.Error("Invalid callback format", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	apptID, err := uuid.Parse(args[0])
	if err != nil {
		h.Logger.Error("Failed to parse appointment ID", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	newStatus, ok := model.ParseAppointmentStatus(args[1])
	if !ok {
		h.Logger.Error("Unknown appointment status", zap.String("status", args[1]))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неизвестный статус")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	// Мутация уходит в хранилище с ретраями; при окончательной неудаче
	// запись не меняется и экран продолжает показывать прежний статус
	_, err = h.AppointmentService.UpdateStatus(ctx, apptID, newStatus)
	if err != nil {
		h.Logger.Error("Failed to update appointment status",
			zap.Error(err),
			zap.String("appointment_id", apptID.String()),
			zap.String("new_status", string(newStatus)))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		showAppointmentDetails(ctx, b, callback, h, msg, apptID)
		return
	}

	statusDisplay := formatting.GetStatusDisplay(newStatus)
	common.AnswerCallback(ctx, b, callback.ID, statusDisplay.Emoji+" "+statusDisplay.Text)
	showAppointmentDetails(ctx, b, callback, h, msg, apptID)
}

// showAppointmentDetails рендерит экран деталей со сменой статуса и переносом
func showAppointmentDetails(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, msg *models.Message, apptID uuid.UUID) {
	appt, err := h.AppointmentService.GetByID(ctx, apptID)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	staffName := ""
	if staff, staffErr := h.StaffService.GetByID(ctx, appt.StaffID); staffErr == nil {
		staffName = staff.Name
	}

	text := formatting.FormatAppointmentInfo(appt, staffName)

	kb := keyboard.NewBuilder()
	kb.AddRows(statusButtons(appt))
	kb.Row(keyboard.Button("🔀 Перенести", "move:"+appt.ID.String()))
	kb.AddBackToCalendarButton()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb.Build(),
	})
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	common.AnswerCallback(ctx, b, callback.ID, "")
}

// statusButtons строит кнопки достижимых статусов (по две в ряд)
func statusButtons(appt *model.Appointment) [][]models.InlineKeyboardButton {
	var buttons []models.InlineKeyboardButton
	for _, status := range model.AllAppointmentStatuses {
		if status == appt.Status || !model.CanTransition(appt.Status, status) {
			continue
		}
		display := formatting.GetStatusDisplay(status)
		buttons = append(buttons, keyboard.Button(
			fmt.Sprintf("%s %s", display.Emoji, display.Text),
			fmt.Sprintf("appt_status:%s:%s", appt.ID, status),
		))
	}

	var rows [][]models.InlineKeyboardButton
	for i := 0; i < len(buttons); i += 2 {
		end := i + 2
		if end > len(buttons) {
			end = len(buttons)
		}
		rows = append(rows, buttons[i:end])
	}
	return rows
}
