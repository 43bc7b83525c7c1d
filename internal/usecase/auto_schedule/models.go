package auto_schedule

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// Request модель запроса на автоматическое планирование пакета
type Request struct {
	UserID   string          // ID пользователя (ключ настроек, на правила не влияет)
	LeadIDs  []string        // Лиды в порядке отправки
	Priority domain.Priority // immediate - один момент на весь пакет
}

// Response модель ответа с запланированным временем отправки
type Response struct {
	Slots        []Slot // По одному на лид, в порядке Request.LeadIDs
	FallbackUsed bool   // Хотя бы один слот выбран без проверки правил (неделя полностью закрыта)
}

// Slot время отправки одного лида
type Slot struct {
	LeadID       string
	ScheduledFor time.Time
}

// Times возвращает моменты отправки в порядке лидов
func (r *Response) Times() []time.Time {
	times := make([]time.Time, len(r.Slots))
	for i, s := range r.Slots {
		times[i] = s.ScheduledFor
	}
	return times
}
