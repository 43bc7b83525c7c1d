package models

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек
// Все поля опциональны - обновляются только переданные значения
type UpdateSettingsRequest struct {
	BusinessHours   *domain.BusinessHours `json:"businessHours,omitempty"`
	ExcludeHolidays *bool                 `json:"excludeHolidays,omitempty"`
	CustomHolidays  *[]string             `json:"customHolidays,omitempty"`
	StrictHolidays  *bool                 `json:"strictHolidays,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками пользователя
// IsDefault = true, если настройки не сохранены и действуют значения по умолчанию
type SettingsResponse struct {
	UserID          string               `json:"userId"`
	BusinessHours   domain.BusinessHours `json:"businessHours"`
	ExcludeHolidays bool                 `json:"excludeHolidays"`
	CustomHolidays  []string             `json:"customHolidays"`
	StrictHolidays  bool                 `json:"strictHolidays"`
	IsDefault       bool                 `json:"isDefault"`
	CreatedAt       *time.Time           `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time           `json:"updatedAt,omitempty"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.OutreachSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		UserID:          s.UserID,
		BusinessHours:   s.BusinessHours,
		ExcludeHolidays: s.ExcludeHolidays,
		CustomHolidays:  s.CustomHolidays,
		StrictHolidays:  s.StrictHolidays,
		IsDefault:       !s.IsPersisted(),
	}
	if resp.CustomHolidays == nil {
		resp.CustomHolidays = []string{}
	}
	if s.IsPersisted() {
		createdAt, updatedAt := s.CreatedAt, s.UpdatedAt
		resp.CreatedAt = &createdAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// ApplyToSettings применяет обновления к существующим настройкам
// Обновляются только непустые (not nil) поля из request
func (r *UpdateSettingsRequest) ApplyToSettings(s *domain.OutreachSettings) {
	if r.BusinessHours != nil {
		s.BusinessHours = *r.BusinessHours
	}
	if r.ExcludeHolidays != nil {
		s.ExcludeHolidays = *r.ExcludeHolidays
	}
	if r.CustomHolidays != nil {
		s.CustomHolidays = append([]string{}, (*r.CustomHolidays)...)
	}
	if r.StrictHolidays != nil {
		s.StrictHolidays = *r.StrictHolidays
	}
}
