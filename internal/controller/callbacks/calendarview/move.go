package calendarview

import (
	"context"
	"fmt"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/calendar"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/callbacktypes"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/keyboard"
	"github.com/Freeeeeet/salon_bot/internal/controller/state"
	"github.com/Freeeeeet/salon_bot/internal/dnd"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ========================
// Move (drag-and-drop) Handlers
// ========================
//
// Перенос записи — это жест drag-and-drop, растянутый на несколько нажатий:
// взять карточку (move:), выбрать день (move_day:), отпустить на слоте
// (move_slot:). За жестом наблюдает автомат dnd: выбор исходной ячейки
// остаётся кликом и открывает детали вместо переноса.

const (
	dayKeyFormat = "2006-01-02"

	// Размеры ячейки в условных пикселях для автомата жеста.
	// Любая соседняя ячейка дальше порога активации.
	cellUnitWidth  = 100.0
	cellUnitHeight = 50.0
)

// cellPoint переводит координаты ячейки (день, слот) в точку жеста.
// Индекс дня считается из компонентов календарной даты: соседние дни
// различаются минимум на единицу независимо от пояса и перевода часов.
func cellPoint(day time.Time, slot string) dnd.Point {
	dayIndex := day.Year()*366 + day.YearDay()
	var h, m int
	fmt.Sscanf(slot, "%d:%d", &h, &m)
	return dnd.Point{
		X: float64(dayIndex) * cellUnitWidth,
		Y: float64(h*60+m) / 60.0 * cellUnitHeight,
	}
}

// HandleMoveStart берёт карточку записи: move:<uuid>
func HandleMoveStart(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	apptID, err := common.ParseUUIDFromCallback(callback.Data)
	if err != nil {
		h.Logger.Error("Failed to parse appointment ID", zap.Error(err), zap.String("data", callback.Data))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	appt, err := h.AppointmentService.GetByID(ctx, apptID)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		return
	}

	fromDay := appt.StartTime.Format(dayKeyFormat)
	fromSlot := appt.StartTime.Format("15:04")

	machine := dnd.NewMachine(dnd.DefaultActivationDistance)
	if err := machine.Press(cellPoint(appt.StartTime, fromSlot), apptID.String()); err != nil {
		h.Logger.Error("Failed to start move gesture", zap.Error(err))
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	h.StateManager.StartMove(callback.From.ID, &state.MoveState{
		Machine:       machine,
		AppointmentID: apptID,
		FromDay:       fromDay,
		FromSlot:      fromSlot,
	})

	showDayPicker(ctx, b, callback, h, msg, appt.StartTime, apptID)
}

// showDayPicker показывает дни отображаемой недели как цели переноса
func showDayPicker(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, msg *models.Message, current time.Time, apptID uuid.UUID) {
	vs := h.StateManager.View(callback.From.ID)
	ref := time.Now().AddDate(0, 0, calendar.DaysInWeek*vs.WeekOffset)
	days := calendar.WeekDays(ref)

	kb := keyboard.NewBuilder()
	for _, day := range days {
		label := fmt.Sprintf("%s, %s", formatting.GetWeekdayShort(int(day.Weekday())), day.Format("02.01"))
		if calendar.SameDay(day, current) {
			label += " (текущий день)"
		}
		kb.Row(keyboard.Button(label, fmt.Sprintf("move_day:%s:%s", apptID, day.Format(dayKeyFormat))))
	}
	kb.Row(keyboard.CancelButton("move_cancel"))

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      msg.Chat.ID,
		Text:        "🔀 <b>Перенос записи</b>\n\nВыберите новый день:",
		ParseMode:   models.ParseModeHTML,
		ReplyMarkup: kb.Build(),
	})
	b.DeleteMessage(ctx, &bot.DeleteMessageParams{
		ChatID:    msg.Chat.ID,
		MessageID: msg.ID,
	})

	common.AnswerCallback(ctx, b, callback.ID, "")
}

// HandleMoveDay фиксирует выбранный день: move_day:<uuid>:<date>
func HandleMoveDay(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	args, err := common.CallbackParts(callback.Data, 2)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	day, err := time.ParseInLocation(dayKeyFormat, args[1], time.Local)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверная дата")
		return
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	move, ok := h.StateManager.Move(callback.From.ID)
	if !ok || move.AppointmentID.String() != args[0] {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Перенос уже завершён")
		return
	}

	// Сообщаем автомату о смещении: выбор другого дня проходит порог
	// активации, выбор исходного дня пока оставляет жест кликом
	move.TargetDay = args[1]
	if err := move.Machine.Move(cellPoint(day, move.FromSlot), nil); err != nil {
		h.Logger.Error("Move gesture out of order", zap.Error(err))
		h.StateManager.ClearMove(callback.From.ID)
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Перенос уже завершён")
		return
	}

	showSlotPicker(ctx, b, callback, h, msg, move, day)
}

// showSlotPicker показывает слоты выбранного дня (по 4 в ряд)
func showSlotPicker(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, msg *models.Message, move *state.MoveState, day time.Time) {
	slots := h.AppointmentService.Hours().Slots()

	kb := keyboard.NewBuilder()
	var row []models.InlineKeyboardButton
	for _, slot := range slots {
		label := slot
		if move.FromDay == day.Format(dayKeyFormat) && move.FromSlot == slot {
			label = "• " + slot + " •"
		}
		row = append(row, keyboard.Button(label,
			fmt.Sprintf("move_slot:%s:%s:%s", move.AppointmentID, day.Format(dayKeyFormat), slot)))
		if len(row) == 4 {
			kb.AddRow(row)
			row = nil
		}
	}
	kb.AddRow(row)
	kb.Row(keyboard.CancelButton("move_cancel"))

	text := fmt.Sprintf(
		"🔀 <b>Перенос записи</b>\n\n📅 %s\nВыберите время:",
		formatting.FormatDateWithWeekday(day),
	)

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

// HandleMoveSlot завершает жест: move_slot:<uuid>:<date>:<HH:MM>
func HandleMoveSlot(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	args, err := common.CallbackParts(callback.Data, 3)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверный формат")
		return
	}

	day, err := time.ParseInLocation(dayKeyFormat, args[1], time.Local)
	if err != nil {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Неверная дата")
		return
	}
	slot := args[2]

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	// Слот обязан принадлежать жесту: тому же переносу и выбранному дню,
	// иначе это устаревшая кнопка из прежнего сообщения
	move, ok := h.StateManager.Move(callback.From.ID)
	if !ok || move.AppointmentID.String() != args[0] || move.TargetDay != args[1] {
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Перенос уже завершён")
		return
	}

	target := &dnd.Target{Day: args[1], Slot: slot}
	if err := move.Machine.Move(cellPoint(day, slot), target); err != nil {
		h.StateManager.ClearMove(callback.From.ID)
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Перенос уже завершён")
		return
	}

	final, dropTarget, err := move.Machine.Release()
	h.StateManager.ClearMove(callback.From.ID)
	if err != nil {
		h.Logger.Error("Move gesture out of order", zap.Error(err))
		common.AnswerCallbackAlert(ctx, b, callback.ID, "❌ Перенос уже завершён")
		return
	}

	switch final {
	case dnd.StateClicked:
		// Жест не превысил порог: карточку «отпустили» на её же ячейке.
		// Это клик — открываем детали, переноса нет.
		common.AnswerCallback(ctx, b, callback.ID, "Запись осталась на месте")
		showAppointmentDetails(ctx, b, callback, h, msg, move.AppointmentID)
		return
	case dnd.StateDropped:
		rescheduleTo(ctx, b, callback, h, msg, move.AppointmentID, day, dropTarget.Slot)
		return
	default:
		common.AnswerCallback(ctx, b, callback.ID, "Перенос отменён")
		RenderCalendar(ctx, b, h, msg.Chat.ID, msg.ID, callback.From.ID)
	}
}

// rescheduleTo отправляет intent переноса в хранилище и перерисовывает календарь
func rescheduleTo(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler, msg *models.Message, apptID uuid.UUID, day time.Time, slot string) {
	_, err := h.AppointmentService.Reschedule(ctx, apptID, day, slot)
	if err != nil {
		h.Logger.Error("Failed to reschedule appointment",
			zap.Error(err),
			zap.String("appointment_id", apptID.String()),
			zap.String("day", day.Format(dayKeyFormat)),
			zap.String("slot", slot))
		// Хранилище не изменилось — календарь перерисуется с прежним временем
		common.AnswerCallbackAlert(ctx, b, callback.ID, common.ErrorMessage(err))
		RenderCalendar(ctx, b, h, msg.Chat.ID, msg.ID, callback.From.ID)
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "✅ Запись перенесена")
	RenderCalendar(ctx, b, h, msg.Chat.ID, msg.ID, callback.From.ID)
}

// HandleMoveCancel прерывает перенос: move_cancel
func HandleMoveCancel(ctx context.Context, b *bot.Bot, callback *models.CallbackQuery, h *callbacktypes.Handler) {
	if move, ok := h.StateManager.Move(callback.From.ID); ok {
		move.Machine.Cancel()
		h.StateManager.ClearMove(callback.From.ID)
	}

	msg := common.GetMessageFromCallback(callback)
	if msg == nil {
		common.AnswerCallback(ctx, b, callback.ID, "❌ Ошибка")
		return
	}

	common.AnswerCallback(ctx, b, callback.ID, "Перенос отменён")
	RenderCalendar(ctx, b, h, msg.Chat.ID, msg.ID, callback.From.ID)
}
