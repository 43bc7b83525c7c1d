package validate_operation

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// Request модель запроса на проверку операции постановки в очередь
type Request struct {
	UserID       string          // ID пользователя (ключ настроек, на правила не влияет)
	LeadIDs      []string        // Пакет лидов в порядке постановки
	ScheduledFor *time.Time      // Желаемое время отправки (nil = сейчас)
	Priority     domain.Priority // Приоритет пакета
}

// Operation возвращает доменную операцию
func (r *Request) Operation() domain.QueueOperation {
	return domain.QueueOperation{
		LeadIDs:      r.LeadIDs,
		ScheduledFor: r.ScheduledFor,
		Priority:     r.Priority,
	}
}

// Response результат проверки бизнес-правил
type Response = domain.ValidationResult

// Исходы проверки, передаются в MetricsRecorder как метка
const (
	OutcomeAllowed = "allowed"
	OutcomeWarned  = "warned"
	OutcomeDenied  = "denied"
	OutcomeFailed  = "failed"
)
