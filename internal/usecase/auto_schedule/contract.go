package auto_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// SettingsRepository интерфейс хранилища настроек рассылки
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.OutreachSettings, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// MetricsRecorder получатель метрик планировщика
type MetricsRecorder interface {
	AddScheduledLeads(priority string, count int)
	IncSlotFallback()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
