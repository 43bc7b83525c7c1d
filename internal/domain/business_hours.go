package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OutreachService/pkg/types"
)

var (
	// ErrInvalidBusinessHours возвращается при нарушении инвариантов рабочего окна
	ErrInvalidBusinessHours = errors.New("domain: invalid business hours")
)

// DayWindow рабочее окно на один день недели
// Start/End могут отсутствовать, если день выключен
type DayWindow struct {
	Enabled bool             `json:"enabled"`
	Start   types.TimeString `json:"start,omitempty"`
	End     types.TimeString `json:"end,omitempty"`
}

// HasWindow returns true if both bounds are present
func (w DayWindow) HasWindow() bool {
	return !w.Start.IsZero() && !w.End.IsZero()
}

// IsOpen returns true if the day is enabled and has a window
func (w DayWindow) IsOpen() bool {
	return w.Enabled && w.HasWindow()
}

// Contains проверяет, что время суток лежит в [Start, End] включительно
func (w DayWindow) Contains(t types.TimeString) bool {
	return w.IsOpen() && t.Between(w.Start, w.End)
}

// Validate проверяет инварианты: у включенного дня есть обе границы и Start <= End
func (w DayWindow) Validate() error {
	for _, bound := range []types.TimeString{w.Start, w.End} {
		if bound.IsZero() {
			continue
		}
		if err := bound.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidBusinessHours, err)
		}
	}

	if !w.Enabled {
		return nil
	}
	if !w.HasWindow() {
		return fmt.Errorf("%w: enabled day must have start and end", ErrInvalidBusinessHours)
	}
	if w.Start.IsAfter(w.End) {
		return fmt.Errorf("%w: start %s is after end %s", ErrInvalidBusinessHours, w.Start, w.End)
	}
	return nil
}

// BusinessHours рабочие окна, индексированные time.Weekday (0 = воскресенье)
// Массив фиксированной длины гарантирует, что у каждого дня недели есть запись
type BusinessHours [7]DayWindow

// DefaultBusinessHours: вс-чт 09:00-17:00, пятница 09:00-13:00 выключена, суббота без окна
func DefaultBusinessHours() BusinessHours {
	workday := DayWindow{Enabled: true, Start: "09:00", End: "17:00"}

	var hours BusinessHours
	hours[time.Sunday] = workday
	hours[time.Monday] = workday
	hours[time.Tuesday] = workday
	hours[time.Wednesday] = workday
	hours[time.Thursday] = workday
	hours[time.Friday] = DayWindow{Enabled: false, Start: "09:00", End: "13:00"}
	hours[time.Saturday] = DayWindow{Enabled: false}
	return hours
}

// Window возвращает окно для дня недели
func (b BusinessHours) Window(day time.Weekday) DayWindow {
	if day < time.Sunday || day > time.Saturday {
		return DayWindow{}
	}
	return b[day]
}

// Validate проверяет окна всех дней
func (b BusinessHours) Validate() error {
	for day, window := range b {
		if err := window.Validate(); err != nil {
			return fmt.Errorf("%s: %w", time.Weekday(day), err)
		}
	}
	return nil
}

// MarshalJSON сериализует в объект с ключами-днями недели ("sunday", ..., "saturday")
func (b BusinessHours) MarshalJSON() ([]byte, error) {
	m := make(map[string]DayWindow, len(b))
	for day, window := range b {
		m[weekdayKey(time.Weekday(day))] = window
	}
	return json.Marshal(m)
}

// UnmarshalJSON принимает объект с ключами-днями недели
// Отсутствующие дни считаются выключенными, неизвестные ключи - ошибка
func (b *BusinessHours) UnmarshalJSON(data []byte) error {
	var m map[string]DayWindow
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	var hours BusinessHours
	for key, window := range m {
		day, ok := ParseWeekday(key)
		if !ok {
			return fmt.Errorf("%w: unknown weekday %q", ErrInvalidBusinessHours, key)
		}
		hours[day] = window
	}
	*b = hours
	return nil
}

// ParseWeekday парсит название дня недели без учета регистра
func ParseWeekday(s string) (time.Weekday, bool) {
	for day := time.Sunday; day <= time.Saturday; day++ {
		if strings.EqualFold(s, day.String()) {
			return day, true
		}
	}
	return time.Sunday, false
}

func weekdayKey(day time.Weekday) string {
	return strings.ToLower(day.String())
}
