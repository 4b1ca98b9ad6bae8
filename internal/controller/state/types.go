package state

import (
	"github.com/Freeeeeet/salon_bot/internal/dnd"
	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/google/uuid"
)

// ViewState — состояние календаря пользователя: какая неделя открыта
// и какой фильтр по мастеру выбран
type ViewState struct {
	WeekOffset  int    // смещение в неделях относительно текущей
	StaffFilter string // model.StaffFilterAll либо UUID мастера
}

// DefaultViewState — календарь открывается на текущей неделе со всеми мастерами
func DefaultViewState() ViewState {
	return ViewState{
		WeekOffset:  0,
		StaffFilter: model.StaffFilterAll,
	}
}

// MoveState — незавершённый жест переноса записи.
// Автомат dnd наблюдает за ходом жеста, остальные поля — координаты
// карточки и выбранная цель.
type MoveState struct {
	Machine       *dnd.Machine
	AppointmentID uuid.UUID
	FromDay       string // "2006-01-02"
	FromSlot      string // "HH:MM"
	TargetDay     string // выбранный день, пока не выбран слот
}
