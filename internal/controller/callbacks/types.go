package callbacks

import (
	"context"

	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/salon_bot/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// Handler — входная точка обработки callback query
type Handler struct {
	inner *callbacktypes.Handler
}

func NewHandler(
	appointmentService *service.AppointmentService,
	staffService *service.StaffService,
	stateManager callbacktypes.StateManager,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		inner: &callbacktypes.Handler{
			AppointmentService: appointmentService,
			StaffService:       staffService,
			StateManager:       stateManager,
			Logger:             logger,
		},
	}
}

// HandleCallbackQuery обрабатывает нажатия на inline кнопки
func (h *Handler) HandleCallbackQuery(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	Route(ctx, b, update.CallbackQuery, h.inner)
}
