package validate_operation

import "errors"

var (
	// ErrLoadSettings возвращается, когда не удалось получить настройки пользователя
	ErrLoadSettings = errors.New("validate_operation: failed to load settings")

	// ErrEvaluation возвращается при непредвиденной ошибке во время проверки правил
	ErrEvaluation = errors.New("validate_operation: rule evaluation failed")
)
