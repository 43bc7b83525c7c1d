package settings

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	settingsRepo "github.com/m04kA/SMC-OutreachService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-OutreachService/internal/service/settings/models"
)

// Service сервис для работы с настройками правил рассылки
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// Get получает настройки пользователя
// Если настройки не сохранены, возвращает значения по умолчанию
func (s *Service) Get(ctx context.Context, userID string) (*models.SettingsResponse, error) {
	s.logger.Info("Get: fetching settings for user=%s", userID)

	settings, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSettings(settings), nil
}

// Update частично обновляет настройки пользователя
// Проверяет инварианты рабочих окон и формат дат праздников
func (s *Service) Update(ctx context.Context, userID string, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating settings for user=%s", userID)

	// 1. Получаем текущие настройки (или значения по умолчанию)
	settings, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	// 2. Применяем изменения
	req.ApplyToSettings(settings)
	settings.CustomHolidays = normalizeHolidays(settings.CustomHolidays)

	// 3. Валидируем результат целиком
	if len(settings.CustomHolidays) > domain.MaxCustomHolidays {
		s.logger.Warn("Update: too many custom holidays for user=%s: %d", userID, len(settings.CustomHolidays))
		return nil, fmt.Errorf("%w: at most %d custom holidays allowed", ErrInvalidInput, domain.MaxCustomHolidays)
	}
	if err := settings.Validate(); err != nil {
		s.logger.Warn("Update: validation failed for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 4. Сохраняем
	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		s.logger.Error("Update: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully saved settings for user=%s", userID)
	return models.FromDomainSettings(saved), nil
}

// Reset удаляет сохраненные настройки, после чего действуют значения по умолчанию
func (s *Service) Reset(ctx context.Context, userID string) error {
	s.logger.Info("Reset: resetting settings for user=%s", userID)

	if err := s.settingsRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Reset: no settings stored for user=%s", userID)
			return ErrSettingsNotFound
		}
		s.logger.Error("Reset: repository error for user=%s: %v", userID, err)
		return fmt.Errorf("%w: Reset - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Reset: settings removed for user=%s", userID)
	return nil
}

// Вспомогательные методы

func (s *Service) load(ctx context.Context, userID string) (*domain.OutreachSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Info("load: no settings stored for user=%s, using defaults", userID)
			return domain.DefaultOutreachSettings(userID), nil
		}
		s.logger.Error("load: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: load - repository error: %v", ErrInternal, err)
	}
	return settings, nil
}

// normalizeHolidays убирает дубликаты и сортирует даты
func normalizeHolidays(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	sort.Strings(result)
	return result
}
