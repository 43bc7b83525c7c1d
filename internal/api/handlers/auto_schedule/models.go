package auto_schedule

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	autoSchedule "github.com/m04kA/SMC-OutreachService/internal/usecase/auto_schedule"
)

// ScheduleRequest HTTP запрос на планирование пакета
type ScheduleRequest struct {
	LeadIDs  []string `json:"leadIds"`
	Priority string   `json:"priority,omitempty"`
}

// ScheduleResponse HTTP ответ с временем отправки по лидам
type ScheduleResponse struct {
	Slots        []SlotResponse `json:"slots"`
	FallbackUsed bool           `json:"fallbackUsed"`
}

type SlotResponse struct {
	LeadID       string    `json:"leadId"`
	ScheduledFor time.Time `json:"scheduledFor"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ScheduleRequest) ToUseCaseRequest(userID string) (*autoSchedule.Request, error) {
	priority, err := domain.ParsePriority(r.Priority)
	if err != nil {
		return nil, err
	}

	return &autoSchedule.Request{
		UserID:   userID,
		LeadIDs:  r.LeadIDs,
		Priority: priority,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *autoSchedule.Response) *ScheduleResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{LeadID: s.LeadID, ScheduledFor: s.ScheduledFor}
	}

	return &ScheduleResponse{
		Slots:        slots,
		FallbackUsed: resp.FallbackUsed,
	}
}
