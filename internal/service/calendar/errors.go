package calendar

import "errors"

var (
	// ErrInvalidSettings возвращается, когда настройки календаря нарушают инварианты
	ErrInvalidSettings = errors.New("calendar: invalid settings")
)
