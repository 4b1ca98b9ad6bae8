package calendarview

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/calendar"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/salon_bot/internal/controller/state"
	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ========================
// Calendar View Handlers
// ========================

// HandleWeekNav переключает отображаемую неделю: cal_week:<offset>
func HandleWeekNav(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	args, err := common.CallbackParts(callback.Data, 1)
	if err != nil {
		h.Logger.Error("Invalid callback format", zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	offset, err := strconv.Atoi(args[0])
	if err != nil {
		h.Logger.Error("Failed to parse week offset", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверное смещение")
		return
	}

	h.StateManager.SetWeekOffset(callback.From.ID, offset)
	ShowCalendar(ctx, b, callback, h)
}

// HandleBackToCalendar возвращает пользователя на экран календаря
func HandleBackToCalendar(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	// Возврат к календарю сбрасывает незавершённый перенос
	if move, ok := h.StateManager.Move(callback.From.ID); ok {
		move.Machine.Cancel()
		h.StateManager.ClearMove(callback.From.ID)
	}
	ShowCalendar(ctx, b, callback, h)
}

// ShowCalendar рендерит экран календаря: картинку недельной сетки
// и клавиатуру с карточками записей
func ShowCalendar(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		h.Logger.Error("Failed to get message from callback")
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	RenderCalendar(ctx, b, h, msg.Chat.ID, msg.ID, callback.From.ID)
	common.AnswerCallback(ctx, b, callback.ID, "")
}

// RenderCalendar строит и отправляет экран календаря.
// replaceMessageID > 0 — старое сообщение удаляется после отправки нового.
func RenderCalendar(ctx context.Context, b *bot.Bot, h *callbacktypes.Handler, chatID int64, replaceMessageID int, telegramID int64) {
	vs := h.StateManager.View(telegramID)

	now := time.Now()
	ref := now.AddDate(0, 0, calendar.DaysInWeek*vs.WeekOffset)
	days := calendar.WeekDays(ref)

	// Загружаем записи недели; при ошибке показываем экран ошибки
	// вместо частично загруженной сетки
	appointments, err := h.AppointmentService.FetchWeek(ctx, ref, vs.StaffFilter)
	if err != nil {
		h.Logger.Error("Failed to fetch week appointments",
			zap.Error(err),
			zap.Int("week_offset", vs.WeekOffset),
			zap.String("staff_filter", vs.StaffFilter))
		renderFetchError(ctx, b, chatID, replaceMessageID)
		return
	}

	staffNames, err := h.StaffService.NamesByID(ctx)
	if err != nil {
		h.Logger.Error("Failed to fetch staff", zap.Error(err))
		renderFetchError(ctx, b, chatID, replaceMessageID)
		return
	}

	slots := h.AppointmentService.Hours().Slots()
	grid := calendar.BuildGrid(days, slots, appointments)

	caption := buildCaption(vs.StaffFilter, days, grid.Total(), staffNames)
	kb := buildCalendarKeyboard(appointments, vs)

	imageData, imgErr := common.GenerateWeekImage(grid, staffNames, now)
	if imgErr == nil {
		_, sendErr := b.SendPhoto(ctx, &bot.SendPhotoParams{
			ChatID:      chatID,
			Photo:       &models.InputFileUpload{Filename: "week.png", Data: bytes.NewReader(imageData)},
			Caption:     caption,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
		if sendErr == nil {
			if replaceMessageID > 0 {
				b.DeleteMessage(ctx, &bot.DeleteMessageParams{
					ChatID:    chatID,
					MessageID: replaceMessageID,
				})
			}
			return
		}
		h.Logger.Warn("Failed to send calendar photo", zap.Error(sendErr))
	} else {
		h.Logger.Warn("Failed to generate week image", zap.Error(imgErr))
	}

	// Фолбэк: календарь текстом
	if replaceMessageID > 0 {
		b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   replaceMessageID,
			Text:        caption,
			ParseMode:   models.ParseModeHTML,
			ReplyMarkup: kb,
		})
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        caption,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
}

// renderFetchError показывает экран ошибки загрузки с кнопкой повтора
func renderFetchError(ctx context.Context, b *bot.Bot, chatID int64, replaceMessageID int) {
	text := "⚠️ Не удалось загрузить календарь.\nПопробуйте ещё раз."
	kb := keyboard.NewBuilder().
		Row(keyboard.Button("🔄 Повторить", "back_to_calendar")).
		Build()

	if replaceMessageID > 0 {
		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   replaceMessageID,
			Text:        text,
			ReplyMarkup: kb,
		})
		if err == nil {
			return
		}
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: kb,
	})
}

// buildCaption собирает подпись к сетке: диапазон недели, фильтр, количество записей
func buildCaption(staffFilter string, days [calendar.DaysInWeek]time.Time, total int, staffNames map[uuid.UUID]string) string {
	filterLabel := "все мастера"
	if staffFilter != model.StaffFilterAll {
		if id, err := uuid.Parse(staffFilter); err == nil {
			if name, ok := staffNames[id]; ok {
				filterLabel = name
			}
		}
	}

	return fmt.Sprintf(
		"🗓 <b>Неделя %s</b>\n"+
			"🧑‍🎨 Мастер: %s\n"+
			"📋 %d %s",
		formatting.FormatWeekRange(days[0], days[calendar.DaysInWeek-1]),
		filterLabel,
		total,
		formatting.PluralizeAppointments(total),
	)
}

// buildCalendarKeyboard собирает клавиатуру: карточки записей,
// навигация по неделям и фильтр по мастеру
func buildCalendarKeyboard(appointments []*model.Appointment, vs state.ViewState) *models.InlineKeyboardMarkup {
	kb := keyboard.NewBuilder()

	for _, appt := range appointments {
		kb.Row(keyboard.Button(
			formatting.FormatAppointmentLine(appt),
			"appt:"+appt.ID.String(),
		))
	}

	kb.AddRow(keyboard.WeekNavRow(vs.WeekOffset))
	kb.Row(keyboard.Button("🧑‍🎨 Фильтр по мастеру", "cal_staff_menu"))

	return kb.Build()
}
