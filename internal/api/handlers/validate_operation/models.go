package validate_operation

import (
	"time"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
	validateOperation "github.com/m04kA/SMC-OutreachService/internal/usecase/validate_operation"
)

// ValidateOperationRequest HTTP запрос на проверку пакета
type ValidateOperationRequest struct {
	LeadIDs      []string   `json:"leadIds"`
	ScheduledFor *time.Time `json:"scheduledFor,omitempty"` // RFC3339
	Priority     string     `json:"priority,omitempty"`     // low, normal, high, immediate
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ValidateOperationRequest) ToUseCaseRequest(userID string) (*validateOperation.Request, error) {
	priority, err := domain.ParsePriority(r.Priority)
	if err != nil {
		return nil, err
	}

	return &validateOperation.Request{
		UserID:       userID,
		LeadIDs:      r.LeadIDs,
		ScheduledFor: r.ScheduledFor,
		Priority:     priority,
	}, nil
}
