package auto_schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-OutreachService/internal/service/calendar"
)

// UseCase use case автоматического планирования времени отправки для пакета лидов
// Не хранит состояние между вызовами: параллельные пакеты могут получить пересекающиеся слоты,
// согласование между пакетами - ответственность вызывающей стороны
type UseCase struct {
	settingsRepo SettingsRepository
	messageDelay time.Duration
	location     *time.Location
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// messageDelay - интервал между соседними лидами (0 = domain.DefaultMessageDelay)
func NewUseCase(
	settingsRepo SettingsRepository,
	messageDelay time.Duration,
	location *time.Location,
	recorder MetricsRecorder,
	logger Logger,
) *UseCase {
	if messageDelay <= 0 {
		messageDelay = domain.DefaultMessageDelay
	}
	return &UseCase{
		settingsRepo: settingsRepo,
		messageDelay: messageDelay,
		location:     location,
		timeProvider: &RealTimeProvider{},
		metrics:      recorder,
		logger:       logger,
	}
}

// Execute вычисляет время отправки для каждого лида
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AutoSchedule: user=%s, leads=%d, priority=%s", req.UserID, len(req.LeadIDs), req.Priority)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AutoSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем настройки пользователя
	settings, err := uc.settingsRepo.GetByUserID(ctx, req.UserID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("AutoSchedule: failed to get settings for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	if settings == nil {
		settings = domain.DefaultOutreachSettings(req.UserID)
		uc.logger.Info("AutoSchedule: using default settings for user=%s", req.UserID)
	}

	cal, err := calendar.NewProvider(settings, uc.location)
	if err != nil {
		uc.logger.Error("AutoSchedule: invalid settings for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}

	// 3. Ищем стартовый слот и раздаем моменты отправки
	seed := cal.NextBusinessHourSlot(uc.timeProvider.Now())
	slots, fallbackUsed := assignSlots(cal, seed, req.LeadIDs, req.Priority, uc.messageDelay)

	if fallbackUsed {
		uc.logger.Warn("AutoSchedule: no business day within %d days for user=%s, fallback slot used",
			domain.SlotSearchDays, req.UserID)
		uc.metrics.IncSlotFallback()
	}
	uc.metrics.AddScheduledLeads(string(req.Priority), len(slots))

	if len(slots) > 0 {
		uc.logger.Info("AutoSchedule: scheduled %d leads for user=%s from %s to %s",
			len(slots), req.UserID,
			slots[0].ScheduledFor.Format(time.RFC3339),
			slots[len(slots)-1].ScheduledFor.Format(time.RFC3339))
	}

	return &Response{
		Slots:        slots,
		FallbackUsed: fallbackUsed,
	}, nil
}
