package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/Freeeeeet/school_scheduler/internal/model"
	"github.com/Freeeeeet/school_scheduler/internal/schedule"
	"github.com/Freeeeeet/school_scheduler/internal/timeutil"
	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Константы размеров и отступов
const (
	imageWidth       = 520
	imageHeight      = 980
	headerHeight     = 56
	leftLabelsWidth  = 64
	rightPadding     = 16
	bottomPadding    = 20
	slotBorderRadius = 5.0
	slotInsetX       = 4.0
)

// Цветовая схема
var (
	bgColor        = color.RGBA{245, 246, 248, 255}
	headerColor    = color.RGBA{60, 64, 70, 255}
	hourLabelColor = color.RGBA{110, 115, 120, 255}
	hourLineColor  = color.NRGBA{150, 150, 150, 120}
	freeColor      = color.NRGBA{133, 193, 85, 60}

	theoryColor     = color.RGBA{120, 162, 222, 230}
	individualColor = color.RGBA{133, 193, 85, 230}
	slotTextColor   = color.RGBA{20, 24, 28, 255}
	weekBadgeColor  = color.RGBA{120, 40, 50, 255}
)

var dayTitles = map[model.Day]string{
	model.DayMonday:    "Понедельник",
	model.DayTuesday:   "Вторник",
	model.DayWednesday: "Среда",
	model.DayThursday:  "Четверг",
	model.DayFriday:    "Пятница",
	model.DaySaturday:  "Суббота",
}

// DayImage рисует расписание кабинета на день: вертикальная шкала от 08:00
// до 22:00, занятые интервалы цветными блоками, свободные — лёгкой заливкой
func DayImage(day model.Day, slots []model.Slot, fb schedule.FreeBusy, activeWeek model.Week) ([]byte, error) {
	dc := createCanvas()

	drawHeader(dc, day, activeWeek)
	drawHourGrid(dc)
	drawFreeIntervals(dc, fb.Free)
	drawSlots(dc, slots)

	return encodeImage(dc)
}

func createCanvas() *gg.Context {
	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()
	return dc
}

// minuteY переводит минуту с полуночи в координату Y на шкале дня
func minuteY(minute int) float64 {
	usable := float64(imageHeight - headerHeight - bottomPadding)
	span := float64(schedule.DayEndMinutes - schedule.DayStartMinutes)
	return float64(headerHeight) + float64(minute-schedule.DayStartMinutes)/span*usable
}

func drawHeader(dc *gg.Context, day model.Day, activeWeek model.Week) {
	title := dayTitles[day]
	if activeWeek == model.WeekA || activeWeek == model.WeekB {
		title = fmt.Sprintf("%s — неделя %s", title, activeWeek)
	}

	dc.SetColor(headerColor)
	dc.DrawStringAnchored(title, float64(imageWidth)/2, float64(headerHeight)/2, 0.5, 0.5)
}

func drawHourGrid(dc *gg.Context) {
	for minute := schedule.DayStartMinutes; minute <= schedule.DayEndMinutes; minute += 60 {
		y := minuteY(minute)

		dc.SetColor(hourLineColor)
		dc.DrawLine(leftLabelsWidth, y, float64(imageWidth-rightPadding), y)
		dc.SetLineWidth(1)
		dc.Stroke()

		dc.SetColor(hourLabelColor)
		dc.DrawStringAnchored(timeutil.ToTimeString(minute), leftLabelsWidth-8, y, 1, 0.35)
	}
}

func drawFreeIntervals(dc *gg.Context, free []schedule.Interval) {
	for _, iv := range free {
		top := minuteY(iv.Start)
		height := minuteY(iv.End) - top

		dc.SetColor(freeColor)
		dc.DrawRectangle(leftLabelsWidth, top, float64(imageWidth-leftLabelsWidth-rightPadding), height)
		dc.Fill()
	}
}

func drawSlots(dc *gg.Context, slots []model.Slot) {
	for _, slot := range slots {
		top := minuteY(slot.StartMinutes)
		bottom := minuteY(min(slot.EndMinutes(), schedule.DayEndMinutes))

		fill := theoryColor
		if slot.Kind == model.SlotKindIndividual {
			fill = individualColor
		}

		dc.SetColor(fill)
		dc.DrawRoundedRectangle(
			leftLabelsWidth+slotInsetX,
			top,
			float64(imageWidth-leftLabelsWidth-rightPadding)-2*slotInsetX,
			bottom-top,
			slotBorderRadius,
		)
		dc.Fill()

		caption := fmt.Sprintf("%s–%s",
			timeutil.ToTimeString(slot.StartMinutes),
			timeutil.ToTimeString(slot.EndMinutes()%1440))
		if slot.Label != "" {
			caption += "  " + slot.Label
		}

		dc.SetColor(slotTextColor)
		dc.DrawStringAnchored(caption, leftLabelsWidth+slotInsetX+8, top+12, 0, 0.5)

		if slot.Week != model.WeekEvery {
			dc.SetColor(weekBadgeColor)
			dc.DrawStringAnchored(string(slot.Week), float64(imageWidth-rightPadding)-12, top+12, 1, 0.5)
		}
	}
}

func encodeImage(dc *gg.Context) ([]byte, error) {
	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode day image: %w", err)
	}
	return buf.Bytes(), nil
}
