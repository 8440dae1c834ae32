package model

import "time"

// WeekRotationSetting — привязка чередования недель A/B для школы.
// Хранится одна запись на школу; при смене якоря перезаписывается.
type WeekRotationSetting struct {
	SchoolID          int64     `json:"school_id"`
	ReferenceDate     time.Time `json:"reference_date"`      // дата, на которую известна неделя
	ReferenceWeekType Week      `json:"reference_week_type"` // A или B
	UpdatedAt         time.Time `json:"updated_at"`
}
