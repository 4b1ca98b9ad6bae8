package handlers

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/calendarview"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/salon_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handlers обрабатывает текстовые команды бота
type Handlers struct {
	deps *callbacktypes.Handler
}

func NewHandlers(
	appointmentService *service.AppointmentService,
	staffService *service.StaffService,
	stateManager callbacktypes.StateManager,
	logger *zap.Logger,
) *Handlers {
	return &Handlers{
		deps: &callbacktypes.Handler{
			AppointmentService: appointmentService,
			StaffService:       staffService,
			StateManager:       stateManager,
			Logger:             logger,
		},
	}
}

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.deps.Logger.Info("HandleStart called",
		zap.Int64("user_id", update.Message.From.ID),
		zap.String("user_name", update.Message.From.FirstName))

	text := "💅 <b>Календарь салона</b>\n\n" +
		"Здесь вся запись салона на неделю: сетка по дням и мастерам, " +
		"смена статусов и перенос записей.\n\n" +
		"Откройте календарь, чтобы начать."

	kb := keyboard.NewBuilder().
		Row(keyboard.Button("📅 Открыть календарь", "back_to_calendar")).
		Build()

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb,
	})
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	text := "❓ <b>Справка</b>\n\n" +
		"/calendar — календарь записей на неделю\n" +
		"/today — вернуться к текущей неделе\n" +
		"/masters — список мастеров салона\n" +
		"/help — эта справка\n\n" +
		"На экране календаря:\n" +
		"• нажатие на карточку — детали записи и смена статуса\n" +
		"• «Перенести» — перенос записи на другой день и время\n" +
		"• стрелки — навигация по неделям\n" +
		"• фильтр — записи одного мастера"

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
}

// HandleCalendar обрабатывает команду /calendar
func (h *Handlers) HandleCalendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	calendarview.RenderCalendar(ctx, b, h.deps, update.Message.Chat.ID, 0, update.Message.From.ID)
}

// HandleToday сбрасывает календарь на текущую неделю и все мастера
func (h *Handlers) HandleToday(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	h.deps.StateManager.ResetView(update.Message.From.ID)
	calendarview.RenderCalendar(ctx, b, h.deps, update.Message.Chat.ID, 0, update.Message.From.ID)
}

// HandleMasters показывает список мастеров салона
func (h *Handlers) HandleMasters(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}

	staff, err := h.deps.StaffService.List(ctx)
	if err != nil {
		h.deps.Logger.Error("Failed to fetch staff", zap.Error(err))
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "⚠️ Не удалось загрузить список мастеров",
		})
		return
	}

	text := fmt.Sprintf("🧑‍🎨 <b>Мастера салона</b> — %d %s\n\n",
		len(staff), formatting.PluralizeMasters(len(staff)))
	for i, member := range staff {
		text += fmt.Sprintf("%d. %s\n", i+1, member.Name)
	}
	if len(staff) == 0 {
		text += "Пока никого нет."
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:    update.Message.Chat.ID,
		Text:      text,
		ParseMode: models.ParseModeHTML,
	})
}
