package callbacktypes

import (
	"github.com/Freeeeeet/salon_bot/internal/controller/state"
	"github.com/Freeeeeet/salon_bot/internal/service"
	"go.uber.org/zap"
)

// StateManager — интерфейс для управления состоянием календаря пользователей
type StateManager interface {
	View(telegramID int64) state.ViewState
	SetWeekOffset(telegramID int64, offset int)
	SetStaffFilter(telegramID int64, filter string)
	ResetView(telegramID int64)
	StartMove(telegramID int64, move *state.MoveState)
	Move(telegramID int64) (*state.MoveState, bool)
	ClearMove(telegramID int64)
}

// Handler содержит общие зависимости для всех callback handlers
type Handler struct {
	AppointmentService *service.AppointmentService
	StaffService       *service.StaffService
	StateManager       StateManager
	Logger             *zap.Logger
}
