package validate_operation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-OutreachService/internal/service/calendar"
	"github.com/m04kA/SMC-OutreachService/pkg/ptr"
)

// UseCase use case проверки бизнес-правил перед постановкой лидов в очередь
type UseCase struct {
	settingsRepo SettingsRepository
	limits       domain.CapacityLimits
	location     *time.Location
	timeProvider TimeProvider
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location - часовой пояс для вычисления рабочих часов (nil = локальный пояс процесса)
func NewUseCase(
	settingsRepo SettingsRepository,
	limits domain.CapacityLimits,
	location *time.Location,
	recorder MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		limits:       limits,
		location:     location,
		timeProvider: &RealTimeProvider{},
		metrics:      recorder,
		logger:       logger,
	}
}

// Execute проверяет операцию: рабочие часы -> праздники -> размер пакета
// Никогда не возвращает ошибку: любой сбой при проверке превращается в отказ
// с причиной domain.ReasonRulesFailure
func (uc *UseCase) Execute(ctx context.Context, req *Request) *Response {
	uc.logger.Info("ValidateOperation: user=%s, leads=%d, priority=%s, scheduled=%t",
		req.UserID, len(req.LeadIDs), req.Priority, req.ScheduledFor != nil)

	result, failedCheck, err := uc.evaluate(ctx, req)
	if err != nil {
		uc.logger.Error("ValidateOperation: evaluation failed for user=%s: %v", req.UserID, err)
		uc.metrics.IncValidation(OutcomeFailed)
		denied := domain.Deny(domain.ReasonRulesFailure)
		return &denied
	}

	switch {
	case !result.Allowed:
		uc.logger.Warn("ValidateOperation: denied by %s check for user=%s: %s", failedCheck, req.UserID, result.Reason)
		uc.metrics.IncValidation(OutcomeDenied)
	case result.Warning != "":
		uc.logger.Info("ValidateOperation: allowed with warning for user=%s: %s", req.UserID, result.Warning)
		uc.metrics.IncValidation(OutcomeWarned)
	default:
		uc.logger.Info("ValidateOperation: allowed for user=%s", req.UserID)
		uc.metrics.IncValidation(OutcomeAllowed)
	}

	return &result
}

// evaluate выполняет цепочку проверок, паника при проверке превращается в ErrEvaluation
func (uc *UseCase) evaluate(ctx context.Context, req *Request) (result domain.ValidationResult, failedCheck string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrEvaluation, r)
		}
	}()

	settings, err := uc.loadSettings(ctx, req.UserID)
	if err != nil {
		return domain.ValidationResult{}, "", err
	}

	cal, err := calendar.NewProvider(settings, uc.location)
	if err != nil {
		return domain.ValidationResult{}, "", fmt.Errorf("%w: %v", ErrEvaluation, err)
	}

	at := ptr.Deref(req.ScheduledFor, uc.timeProvider.Now())

	result, failedCheck = runChain(buildChain(cal, uc.limits), req.Operation(), at)
	return result, failedCheck, nil
}

// loadSettings получает настройки пользователя, при их отсутствии - значения по умолчанию
func (uc *UseCase) loadSettings(ctx context.Context, userID string) (*domain.OutreachSettings, error) {
	settings, err := uc.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("ValidateOperation: using default settings for user=%s", userID)
			return domain.DefaultOutreachSettings(userID), nil
		}
		return nil, fmt.Errorf("%w: %v", ErrLoadSettings, err)
	}
	return settings, nil
}
