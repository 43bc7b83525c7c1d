package domain

import "time"

// Default rule values
const (
	DefaultMaxBatchSize           = 100
	DefaultLargeBatchWarningRatio = 0.8
	DefaultMessageDelay           = 2 * time.Minute
	DefaultBusinessStartTime      = "09:00"
)

// SlotSearchDays количество дней, которые просматриваются при поиске ближайшего рабочего слота
const SlotSearchDays = 7

// Business validation constants
const (
	MinBatchSizeLimit   = 1
	MaxBatchSizeLimit   = 1000
	MaxCustomHolidays   = 366
	MaxLeadIDLength     = 128
	MaxUserIDLength     = 128
	MinMessageDelay     = time.Second
	MaxMessageDelay     = time.Hour
	MinWarningRatio     = 0.0
	MaxWarningRatio     = 1.0
	ReasonRulesFailure  = "Failed to validate business rules"
	ReasonCustomHoliday = "Cannot schedule on a custom holiday"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
