package calendarview

import (
	"context"

	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ========================
// Staff Filter Handlers
// ========================

// HandleStaffFilterMenu показывает меню выбора мастера
func HandleStaffFilterMenu(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		h.Logger.Error("Failed to get message from callback")
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	staff, err := h.StaffService.List(ctx)
	if err != nil {
		h.Logger.Error("Failed to fetch staff for filter menu", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	vs := h.StateManager.View(callback.From.ID)

	kb := keyboard.NewBuilder()

	allLabel := "Все мастера"
	if vs.StaffFilter == model.StaffFilterAll {
		allLabel = "✓ " + allLabel
	}
	kb.Row(keyboard.Button(allLabel, "cal_staff:"+model.StaffFilterAll))

	for _, member := range staff {
		label := member.Name
		if vs.StaffFilter == member.ID.String() {
			label = "✓ " + label
		}
		kb.Row(keyboard.Button(label, "cal_staff:"+member.ID.String()))
	}
	kb.AddBackToCalendarButton()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "🧑‍🎨 <b>Фильтр по мастеру</b>\n\nПоказывать записи:",
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb.Build(),
	})
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleStaffFilterSet применяет выбранный фильтр: cal_staff:<all|uuid>
func HandleStaffFilterSet(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	args, err := common.CallbackParts(callback.Data, 1)
	if err != nil {
		h.Logger.Error("Invalid callback format", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	filter := args[0]
	if filter != model.StaffFilterAll {
		// Значение обязано быть сентинелом либо ID известного мастера
		id, parseErr := uuid.Parse(filter)
		if parseErr != nil {
			h.Logger.Error("Invalid staff filter value", zap.String("value", filter))
			common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
			return
		}
		if _, getErr := h.StaffService.GetByID(ctx, id); getErr != nil {
			common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(getErr))
			return
		}
	}

	h.StateManager.SetStaffFilter(callback.From.ID, filter)
	ShowCalendar(ctx, b, callback, h)
}
