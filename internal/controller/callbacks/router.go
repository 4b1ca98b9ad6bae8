package callbacks

import (
	"context"
	"strings"

	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/calendarview"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// ========================
// Callback Data Patterns
// ========================
// These constants define the callback data formats used throughout the bot

// Calendar view navigation
const (
	BackToCalendar = "back_to_calendar"
	CalWeek        = "cal_week:" // cal_week:offset
	CalStaffMenu   = "cal_staff_menu"
	CalStaffSet    = "cal_staff:" // cal_staff:all | cal_staff:staff_uuid
)

// Appointment details and status
const (
	ViewAppointment = "appt:"        // appt:appointment_uuid
	SetStatus       = "appt_status:" // appt_status:appointment_uuid:status
)

// Move (drag-and-drop reschedule) flow
const (
	MoveStart  = "move:"      // move:appointment_uuid
	MoveDay    = "move_day:"  // move_day:appointment_uuid:2006-01-02
	MoveSlot   = "move_slot:" // move_slot:appointment_uuid:2006-01-02:15:04
	MoveCancel = "move_cancel"
)

// ========================
// Main Callback Router
// ========================

// Route распределяет callback query по соответствующим обработчикам
func Route(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	data := callback.Data

	h.Logger.Info("Routing callback",
		zap.String("data", data),
		zap.Int64("user_id", callback.From.ID),
		zap.String("user_name", callback.From.FirstName))

	switch {
	// ===== Calendar View =====
	case data == BackToCalendar:
		calendarview.HandleBackToCalendar(ctx, b, callback, h)
	case strings.HasPrefix(data, CalWeek):
		calendarview.HandleWeekNav(ctx, b, callback, h)
	case data == CalStaffMenu:
		calendarview.HandleStaffFilterMenu(ctx, b, callback, h)
	case strings.HasPrefix(data, CalStaffSet):
		calendarview.HandleStaffFilterSet(ctx, b, callback, h)

	// ===== Appointment Details =====
	case strings.HasPrefix(data, SetStatus):
		calendarview.HandleSetStatus(ctx, b, callback, h)
	case strings.HasPrefix(data, ViewAppointment):
		calendarview.HandleViewAppointment(ctx, b, callback, h)

	// ===== Move Flow =====
	case data == MoveCancel:
		calendarview.HandleMoveCancel(ctx, b, callback, h)
	case strings.HasPrefix(data, MoveDay):
		calendarview.HandleMoveDay(ctx, b, callback, h)
	case strings.HasPrefix(data, MoveSlot):
		calendarview.HandleMoveSlot(ctx, b, callback, h)
	case strings.HasPrefix(data, MoveStart):
		calendarview.HandleMoveStart(ctx, b, callback, h)

	case data == "noop":
		// No operation - просто подтверждаем callback
		common.AnswerCallback(ctx, b, callback.ID, "")

	default:
		h.Logger.Warn("Unknown callback data", zap.String("data", data))
		common.AnswerCallback(ctx, b, callback.ID, "")
	}
}
