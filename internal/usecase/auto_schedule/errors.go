package auto_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidSettings возвращается, когда сохраненные настройки нарушают инварианты
	ErrInvalidSettings = errors.New("invalid outreach settings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
