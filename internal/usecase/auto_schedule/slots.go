package auto_schedule

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/service/calendar"
)

// assignSlots раздает лидам моменты отправки начиная с seed
//
// immediate: все лиды получают seed без изменений.
// Остальные приоритеты: каждый следующий лид сдвигается на delay; если сдвинутый момент
// вышел за рабочие часы, ищется новый слот через NextBusinessHourSlot (пакет может
// "перепрыгнуть" на следующий рабочий день). Праздники после сдвига проверяются только
// в строгом режиме.
func assignSlots(
	cal *calendar.Provider,
	seed calendar.SlotSearch,
	leadIDs []string,
	priority domain.Priority,
	delay time.Duration,
) ([]Slot, bool) {
	slots := make([]Slot, 0, len(leadIDs))
	current := seed.At
	fallbackUsed := seed.FallbackUsed

	for i, leadID := range leadIDs {
		if !priority.IsImmediate() && i > 0 {
			current = current.Add(delay)

			if needsNewSlot(cal, current) {
				next := cal.NextBusinessHourSlot(current)
				current = next.At
				fallbackUsed = fallbackUsed || next.FallbackUsed
			}
		}

		slots = append(slots, Slot{LeadID: leadID, ScheduledFor: current})
	}

	return slots, fallbackUsed
}

func needsNewSlot(cal *calendar.Provider, at time.Time) bool {
	if !cal.IsWithinBusinessHours(at).Allowed {
		return true
	}
	return cal.StrictHolidays() && !cal.IsHoliday(at).Allowed
}
