package settings

import (
	"context"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек рассылки
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.OutreachSettings, error)
	Upsert(ctx context.Context, settings *domain.OutreachSettings) (*domain.OutreachSettings, error)
	Delete(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
