package calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/pkg/types"
)

// SlotSearch результат поиска ближайшего рабочего слота
// FallbackUsed = true, если за SlotSearchDays дней не нашлось ни одного рабочего дня
// и слот выбран без проверки правил
type SlotSearch struct {
	At           time.Time
	FallbackUsed bool
}

// Provider отвечает на вопросы "рабочее ли это время" и "праздник ли это"
// для фиксированных настроек и часового пояса
// Не имеет изменяемого состояния, безопасен для конкурентного использования
type Provider struct {
	hours           domain.BusinessHours
	excludeHolidays bool
	strictHolidays  bool
	builtin         map[string]domain.Holiday
	custom          map[string]struct{}
	loc             *time.Location
	defaultStart    types.TimeString
}

// NewProvider создает провайдер календаря
// loc - часовой пояс, в котором вычисляются день недели и время суток (nil = time.Local)
func NewProvider(settings *domain.OutreachSettings, loc *time.Location) (*Provider, error) {
	if settings == nil {
		return nil, fmt.Errorf("%w: settings are nil", ErrInvalidSettings)
	}
	if err := settings.BusinessHours.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if loc == nil {
		loc = time.Local
	}

	builtin := make(map[string]domain.Holiday, len(domain.BuiltinHolidays))
	for _, h := range domain.BuiltinHolidays {
		builtin[h.Date] = h
	}

	custom := make(map[string]struct{}, len(settings.CustomHolidays))
	for _, date := range settings.CustomHolidays {
		custom[date] = struct{}{}
	}

	return &Provider{
		hours:           settings.BusinessHours,
		excludeHolidays: settings.ExcludeHolidays,
		strictHolidays:  settings.StrictHolidays,
		builtin:         builtin,
		custom:          custom,
		loc:             loc,
		defaultStart:    domain.DefaultBusinessStartTime,
	}, nil
}

// Location часовой пояс провайдера
func (p *Provider) Location() *time.Location {
	return p.loc
}

// StrictHolidays признак перепроверки праздников после каждого сдвига слота
func (p *Provider) StrictHolidays() bool {
	return p.strictHolidays
}

// IsWithinBusinessHours проверяет, что момент t попадает в рабочее окно своего дня недели
func (p *Provider) IsWithinBusinessHours(t time.Time) domain.ValidationResult {
	local := t.In(p.loc)
	day := local.Weekday()
	window := p.hours.Window(day)

	if !window.IsOpen() {
		return domain.Deny(fmt.Sprintf("%s - business closed", day))
	}

	if !window.Contains(types.NewTimeString(local)) {
		return domain.Deny(fmt.Sprintf("Outside business hours (%s-%s)", window.Start, window.End))
	}

	return domain.Allow()
}

// IsHoliday проверяет дату момента t по встроенному и пользовательскому списку праздников
// При выключенном исключении праздников всегда разрешает
func (p *Provider) IsHoliday(t time.Time) domain.ValidationResult {
	if !p.excludeHolidays {
		return domain.Allow()
	}

	date := t.In(p.loc).Format(domain.DateFormat)

	if holiday, ok := p.builtin[date]; ok {
		return domain.Deny(fmt.Sprintf("Cannot schedule on holiday: %s", holiday.Name))
	}

	if _, ok := p.custom[date]; ok {
		return domain.Deny(domain.ReasonCustomHoliday)
	}

	return domain.Allow()
}

// NextBusinessHourSlot ищет ближайший рабочий момент, не раньше from
//
// Просматриваются SlotSearchDays дней начиная с дня from. Кандидат дня - начало его рабочего
// окна (09:00, если окна нет); для первого дня кандидат не может быть раньше from.
// Кандидат принимается, если он в рабочих часах и не праздник.
// Если подходящего дня нет, возвращается следующий после from день в 09:00 с FallbackUsed.
func (p *Provider) NextBusinessHourSlot(from time.Time) SlotSearch {
	from = from.In(p.loc)

	for i := 0; i < domain.SlotSearchDays; i++ {
		day := from.AddDate(0, 0, i)

		candidate, err := p.startOf(day)
		if err != nil {
			continue
		}
		if i == 0 && candidate.Before(from) {
			candidate = from
		}

		if !p.IsWithinBusinessHours(candidate).Allowed {
			continue
		}
		if !p.IsHoliday(candidate).Allowed {
			continue
		}

		return SlotSearch{At: candidate}
	}

	return SlotSearch{
		At:           time.Date(from.Year(), from.Month(), from.Day()+1, 9, 0, 0, 0, p.loc),
		FallbackUsed: true,
	}
}

// startOf возвращает начало рабочего окна дня (или время по умолчанию, если окна нет)
func (p *Provider) startOf(day time.Time) (time.Time, error) {
	start := p.hours.Window(day.Weekday()).Start
	if start.IsZero() {
		start = p.defaultStart
	}
	return start.On(day)
}
