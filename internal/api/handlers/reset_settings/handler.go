package reset_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	"github.com/m04kA/SMC-OutreachService/internal/api/middleware"
	"github.com/m04kA/SMC-OutreachService/internal/service/settings"
)

const (
	msgNotFound      = "настройки не найдены"
	msgMissingUserID = "отсутствует ID пользователя"
)

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

// Handle DELETE /api/v1/outreach/settings
// После сброса действуют значения по умолчанию
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /outreach/settings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Reset(r.Context(), userID); err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			h.logger.Warn("DELETE /outreach/settings - Settings not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}

		h.logger.Error("DELETE /outreach/settings - Failed to reset settings: user_id=%s, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /outreach/settings - Settings reset: user_id=%s", userID)
	handlers.RespondNoContent(w)
}
