package common

import (
	"errors"

	"github.com/Freeeeeet/salon_bot/internal/service"
)

// Общие ошибки для обработчиков
var (
	ErrNoMessage     = errors.New("no message in callback")
	ErrInvalidFormat = errors.New("invalid callback format")
)

// ErrorMessage возвращает пользовательское сообщение для ошибки
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, service.ErrAppointmentNotFound):
		return "❌ Запись не найдена"
	case errors.Is(err, service.ErrStaffNotFound):
		return "❌ Мастер не найден"
	case errors.Is(err, service.ErrInvalidTransition):
		return "❌ Такая смена статуса невозможна"
	case errors.Is(err, service.ErrOutsideBusinessHours):
		return "❌ Это время вне рабочих часов салона"
	case errors.Is(err, service.ErrInvalidSlot):
		return "❌ Неверное время"
	case errors.Is(err, ErrNoMessage):
		return "❌ Ошибка обработки сообщения"
	case errors.Is(err, ErrInvalidFormat):
		return "❌ Неверный формат данных"
	default:
		return "❌ Произошла ошибка"
	}
}
