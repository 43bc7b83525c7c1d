package domain

import "time"

// OutreachSettings настройки правил рассылки пользователя
// Хранятся во внешнем хранилище и неизменны в течение одной проверки
type OutreachSettings struct {
	UserID          string
	BusinessHours   BusinessHours
	ExcludeHolidays bool
	CustomHolidays  []string // YYYY-MM-DD
	StrictHolidays  bool     // проверять праздники после каждого сдвига слота, а не только при поиске
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DefaultOutreachSettings настройки по умолчанию: стандартная неделя, праздники исключаются
func DefaultOutreachSettings(userID string) *OutreachSettings {
	return &OutreachSettings{
		UserID:          userID,
		BusinessHours:   DefaultBusinessHours(),
		ExcludeHolidays: true,
		CustomHolidays:  []string{},
	}
}

// IsPersisted returns true if the settings were loaded from storage
func (s *OutreachSettings) IsPersisted() bool {
	return !s.CreatedAt.IsZero()
}

// Validate проверяет рабочие окна и даты пользовательских праздников
func (s *OutreachSettings) Validate() error {
	if err := s.BusinessHours.Validate(); err != nil {
		return err
	}
	for _, date := range s.CustomHolidays {
		if err := ValidateHolidayDate(date); err != nil {
			return err
		}
	}
	return nil
}
