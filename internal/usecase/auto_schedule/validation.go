package auto_schedule

import (
	"fmt"

	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if !req.Priority.IsValid() {
		return fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}

	for i, id := range req.LeadIDs {
		if id == "" {
			return fmt.Errorf("%w: leadIds[%d] is empty", ErrInvalidInput, i)
		}
		if len(id) > domain.MaxLeadIDLength {
			return fmt.Errorf("%w: leadIds[%d] is longer than %d characters", ErrInvalidInput, i, domain.MaxLeadIDLength)
		}
	}

	return nil
}
