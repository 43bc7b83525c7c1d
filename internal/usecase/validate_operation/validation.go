package validate_operation

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	"github.com/m04kA/SMC-OutreachService/internal/service/calendar"
)

// ruleCheck одна проверка цепочки правил
type ruleCheck struct {
	name  string
	check func(op domain.QueueOperation, at time.Time) domain.ValidationResult
}

// buildChain возвращает проверки в порядке применения:
// рабочие часы -> праздники -> размер пакета
func buildChain(cal *calendar.Provider, limits domain.CapacityLimits) []ruleCheck {
	return []ruleCheck{
		{
			name: "business_hours",
			check: func(_ domain.QueueOperation, at time.Time) domain.ValidationResult {
				return cal.IsWithinBusinessHours(at)
			},
		},
		{
			name: "holiday",
			check: func(_ domain.QueueOperation, at time.Time) domain.ValidationResult {
				return cal.IsHoliday(at)
			},
		},
		{
			name: "capacity",
			check: func(op domain.QueueOperation, _ time.Time) domain.ValidationResult {
				return checkCapacity(len(op.LeadIDs), limits)
			},
		},
	}
}

// runChain выполняет проверки до первого отказа
// Предупреждения всех пройденных проверок объединяются через "; "
func runChain(chain []ruleCheck, op domain.QueueOperation, at time.Time) (domain.ValidationResult, string) {
	var warnings []string

	for _, rc := range chain {
		result := rc.check(op, at)
		if !result.Allowed {
			return result, rc.name
		}
		if result.Warning != "" {
			warnings = append(warnings, result.Warning)
		}
	}

	if len(warnings) == 0 {
		return domain.Allow(), ""
	}
	return domain.AllowWithWarning(strings.Join(warnings, "; ")), ""
}

// checkCapacity проверяет размер пакета
func checkCapacity(size int, limits domain.CapacityLimits) domain.ValidationResult {
	if size > limits.MaxBatchSize {
		return domain.Deny(fmt.Sprintf("Batch size %d exceeds the maximum of %d leads by %d",
			size, limits.MaxBatchSize, size-limits.MaxBatchSize))
	}

	if size > limits.WarningThreshold {
		return domain.AllowWithWarning(fmt.Sprintf("Large batch of %d leads is close to the limit of %d; sending may take longer",
			size, limits.MaxBatchSize))
	}

	return domain.Allow()
}
