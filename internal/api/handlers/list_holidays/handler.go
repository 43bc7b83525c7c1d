package list_holidays

import (
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	"github.com/m04kA/SMC-OutreachService/internal/domain"
)

const msgInvalidType = "некорректный тип праздника, ожидается jewish или national"

type Handler struct {
	holidays []domain.Holiday
	logger   Logger
}

// NewHandler создает handler со списком встроенных праздников
func NewHandler(holidays []domain.Holiday, logger Logger) *Handler {
	return &Handler{
		holidays: holidays,
		logger:   logger,
	}
}

// Handle GET /api/v1/holidays
// Query params: type (опционально: jewish, national)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	typeFilter := domain.HolidayType(r.URL.Query().Get("type"))

	switch typeFilter {
	case "", domain.HolidayJewish, domain.HolidayNational:
	default:
		h.logger.Warn("GET /holidays - Invalid type filter: %q", typeFilter)
		handlers.RespondBadRequest(w, msgInvalidType)
		return
	}

	result := make([]domain.Holiday, 0, len(h.holidays))
	for _, holiday := range h.holidays {
		if typeFilter == "" || holiday.Type == typeFilter {
			result = append(result, holiday)
		}
	}

	h.logger.Info("GET /holidays - Returned %d holidays", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
