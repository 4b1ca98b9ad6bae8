package common

import (
	"bytes"
	"image/color"
	"time"

	"github.com/Freeeeeet/salon_bot/internal/calendar"
	"github.com/Freeeeeet/salon_bot/internal/controller/callbacks/common/formatting"
	"github.com/Freeeeeet/salon_bot/internal/model"
	"github.com/fogleman/gg"
	"github.com/google/uuid"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 60
	dayLabelHeight  = 40
	leftLabelsWidth = 80
	legendWidth     = 120
	cellPadding     = 3.0
	blockRadius     = 6.0
	shadowOffset    = 3.0
	totalDays       = calendar.DaysInWeek
)

// Цветовая схема
var (
	bgColor          = color.RGBA{245, 246, 248, 255}
	textColor        = color.RGBA{80, 85, 90, 220}
	slotLabelColor   = color.RGBA{110, 115, 120, 200}
	gridLineColor    = color.NRGBA{150, 150, 150, 120}
	todayBgColor     = color.NRGBA{255, 99, 71, 45}
	todayLabelColor  = color.RGBA{210, 60, 40, 255}
	evenDayColor     = color.NRGBA{240, 240, 240, 255}
	oddDayColor      = color.NRGBA{228, 228, 228, 255}
	currentTimeColor = color.NRGBA{255, 80, 80, 200}

	statusPendingColor   = color.RGBA{250, 210, 120, 255}
	statusConfirmedColor = color.RGBA{133, 193, 85, 220}
	statusDoneColor      = color.RGBA{158, 158, 158, 200}
	statusCanceledColor  = color.RGBA{255, 150, 150, 230}
	statusDefaultColor   = color.RGBA{220, 220, 220, 200}

	blockTextColor   = color.RGBA{20, 24, 28, 230}
	blockShadowColor = color.RGBA{0, 0, 0, 20}
	legendTextColor  = color.RGBA{70, 74, 78, 220}
)

// statusColor возвращает цвет блока записи по статусу.
// Неизвестный статус — нейтральный серый.
func statusColor(status model.AppointmentStatus) color.Color {
	switch status {
	case model.AppointmentStatusPending:
		return statusPendingColor
	case model.AppointmentStatusConfirmed:
		return statusConfirmedColor
	case model.AppointmentStatusDone:
		return statusDoneColor
	case model.AppointmentStatusCanceled:
		return statusCanceledColor
	default:
		return statusDefaultColor
	}
}

// loadFont устанавливает встроенный шрифт.
// Репозиторий не тащит с собой TTF — basicfont достаточно для подписей сетки.
func loadFont(dc *gg.Context) {
	dc.SetFontFace(basicfont.Face7x13)
}

// GenerateWeekImage рисует недельную сетку календаря: колонки — дни недели
// начиная с воскресенья, строки — рабочие слоты. Записи каждой ячейки
// рисуются стопкой, цвет блока определяется статусом.
func GenerateWeekImage(grid *calendar.Grid, staffNames map[uuid.UUID]string, now time.Time) ([]byte, error) {
	dc := createCanvas()

	dayWidth := float64(imageWidth-leftLabelsWidth-legendWidth) / totalDays
	bodyTop := float64(headerHeight + dayLabelHeight)
	bodyHeight := float64(imageHeight) - bodyTop
	cellHeight := bodyHeight / float64(len(grid.Slots))

	drawHeader(dc, grid.Days)
	drawDayLabels(dc, grid.Days, now, dayWidth)
	drawSlotLabels(dc, grid.Slots, bodyTop, cellHeight)
	drawCells(dc, grid, staffNames, now, dayWidth, bodyTop, cellHeight)
	drawCurrentTimeLine(dc, grid, now, dayWidth, bodyTop, cellHeight)
	drawLegend(dc)

	return encodeImage(dc)
}

// createCanvas создает новый контекст рисования с фоном
func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// drawHeader рисует заголовок с названием месяца
func drawHeader(dc *gg.Context, days [totalDays]time.Time) {
	startMonth := days[0].Month()
	endMonth := days[totalDays-1].Month()

	title := formatting.GetMonthName(startMonth)
	if startMonth != endMonth {
		title += " — " + formatting.GetMonthName(endMonth)
	}

	loadFont(dc)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(title, imageWidth/2, headerHeight/2, 0.5, 0.5)
}

// drawDayLabels рисует строку заголовков дней; сегодняшний день выделяется
func drawDayLabels(dc *gg.Context, days [totalDays]time.Time, now time.Time, dayWidth float64) {
	loadFont(dc)

	for i, day := range days {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth + dayWidth/2
		y := float64(headerHeight) + float64(dayLabelHeight)/2

		label := formatting.GetWeekdayShort(int(day.Weekday())) + " " + day.Format("02.01")
		if calendar.IsToday(day, now) {
			label = "• " + label + " •"
			dc.SetColor(todayLabelColor)
		} else {
			dc.SetColor(textColor)
		}
		dc.DrawStringAnchored(label, x, y, 0.5, 0.5)
	}
}

// drawSlotLabels рисует колонку меток времени слева
func drawSlotLabels(dc *gg.Context, slots []string, bodyTop, cellHeight float64) {
	loadFont(dc)
	dc.SetColor(slotLabelColor)

	for i, slot := range slots {
		y := bodyTop + float64(i)*cellHeight
		dc.DrawStringAnchored(slot, leftLabelsWidth-10, y+7, 1, 0.5)
	}
}

// drawCells рисует фон колонок, линии сетки и блоки записей по ячейкам
func drawCells(dc *gg.Context, grid *calendar.Grid, staffNames map[uuid.UUID]string,
	now time.Time, dayWidth, bodyTop, cellHeight float64) {

	bodyHeight := float64(len(grid.Slots)) * cellHeight

	// Фон колонок (чередующийся), сегодня — поверх своим цветом
	for i, day := range grid.Days {
		x := float64(leftLabelsWidth) + float64(i)*dayWidth

		if i%2 == 0 {
			dc.SetColor(evenDayColor)
		} else {
			dc.SetColor(oddDayColor)
		}
		dc.DrawRectangle(x, bodyTop, dayWidth, bodyHeight)
		dc.Fill()

		if calendar.IsToday(day, now) {
			dc.SetColor(todayBgColor)
			dc.DrawRectangle(x, bodyTop, dayWidth, bodyHeight)
			dc.Fill()
		}
	}

	// Горизонтальные линии слотов
	dc.SetColor(gridLineColor)
	dc.SetLineWidth(1)
	for i := 0; i <= len(grid.Slots); i++ {
		y := bodyTop + float64(i)*cellHeight
		dc.DrawLine(leftLabelsWidth, y, imageWidth-legendWidth, y)
		dc.Stroke()
	}

	// Блоки записей: ячейка получает уже разложенные записи и рисует их стопкой
	loadFont(dc)
	for dayIdx, day := range grid.Days {
		for slotIdx, slot := range grid.Slots {
			appointments := grid.ForCell(day, slot)
			if len(appointments) == 0 {
				continue
			}

			cellX := float64(leftLabelsWidth) + float64(dayIdx)*dayWidth
			cellY := bodyTop + float64(slotIdx)*cellHeight
			blockHeight := (cellHeight - 2*cellPadding) / float64(len(appointments))

			for i, appt := range appointments {
				drawAppointmentBlock(dc, appt, staffNames,
					cellX+cellPadding,
					cellY+cellPadding+float64(i)*blockHeight,
					dayWidth-2*cellPadding,
					blockHeight-1,
				)
			}
		}
	}
}

// drawAppointmentBlock рисует один блок записи с тенью и подписью
func drawAppointmentBlock(dc *gg.Context, appt *model.Appointment, staffNames map[uuid.UUID]string,
	x, y, w, h float64) {

	dc.SetColor(blockShadowColor)
	dc.DrawRoundedRectangle(x+shadowOffset, y+shadowOffset, w, h, blockRadius)
	dc.Fill()

	dc.SetColor(statusColor(appt.Status))
	dc.DrawRoundedRectangle(x, y, w, h, blockRadius)
	dc.Fill()

	label := formatting.FormatTime(appt.StartTime) + " " + appt.ClientName
	if name, ok := staffNames[appt.StaffID]; ok && h >= 28 {
		label += " / " + name
	}

	dc.SetColor(blockTextColor)
	dc.DrawStringAnchored(label, x+8, y+h/2, 0, 0.5)
}

// drawCurrentTimeLine рисует линию текущего времени в колонке сегодняшнего дня
func drawCurrentTimeLine(dc *gg.Context, grid *calendar.Grid, now time.Time,
	dayWidth, bodyTop, cellHeight float64) {

	if len(grid.Slots) == 0 {
		return
	}

	todayIdx := -1
	for i, day := range grid.Days {
		if calendar.IsToday(day, now) {
			todayIdx = i
			break
		}
	}
	if todayIdx < 0 {
		return
	}

	startMinutes := slotToMinutes(grid.Slots[0])
	step := slotToMinutes(grid.Slots[len(grid.Slots)-1]) - startMinutes
	if len(grid.Slots) > 1 {
		step /= len(grid.Slots) - 1
	} else {
		step = 60
	}
	endMinutes := slotToMinutes(grid.Slots[len(grid.Slots)-1]) + step

	nowMinutes := now.Hour()*60 + now.Minute()
	if nowMinutes < startMinutes || nowMinutes >= endMinutes {
		return
	}

	progress := float64(nowMinutes-startMinutes) / float64(endMinutes-startMinutes)
	y := bodyTop + progress*float64(len(grid.Slots))*cellHeight
	x := float64(leftLabelsWidth) + float64(todayIdx)*dayWidth

	dc.SetColor(currentTimeColor)
	dc.SetLineWidth(2)
	dc.DrawLine(x, y, x+dayWidth, y)
	dc.Stroke()
}

// drawLegend рисует легенду статусов справа
func drawLegend(dc *gg.Context) {
	legend := []struct {
		status model.AppointmentStatus
		label  string
	}{
		{model.AppointmentStatusPending, "Ожидает"},
		{model.AppointmentStatusConfirmed, "Подтверждена"},
		{model.AppointmentStatusDone, "Завершена"},
		{model.AppointmentStatusCanceled, "Отменена"},
	}

	loadFont(dc)
	x := float64(imageWidth - legendWidth + 10)
	y := float64(headerHeight + dayLabelHeight)

	for i, item := range legend {
		itemY := y + float64(i)*28

		dc.SetColor(statusColor(item.status))
		dc.DrawRoundedRectangle(x, itemY, 16, 16, 4)
		dc.Fill()

		dc.SetColor(legendTextColor)
		dc.DrawStringAnchored(item.label, x+24, itemY+8, 0, 0.5)
	}
}

// encodeImage кодирует контекст в PNG
func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func slotToMinutes(slot string) int {
	if len(slot) != 5 {
		return 0
	}
	h := int(slot[0]-'0')*10 + int(slot[1]-'0')
	m := int(slot[3]-'0')*10 + int(slot[4]-'0')
	return h*60 + m
}
