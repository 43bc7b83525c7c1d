package get_settings

import (
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	"github.com/m04kA/SMC-OutreachService/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/outreach/settings
// Если настройки не сохранены, возвращаются значения по умолчанию (isDefault=true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /outreach/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /outreach/settings - Failed to get settings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /outreach/settings - Settings retrieved: user_id=%s, default=%t", userID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
