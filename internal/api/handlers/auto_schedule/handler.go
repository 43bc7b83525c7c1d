package auto_schedule

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	"github.com/m04kA/SMC-OutreachService/internal/api/middleware"
	autoSchedule "github.com/m04kA/SMC-OutreachService/internal/usecase/auto_schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPriority    = "некорректный приоритет, ожидается low, normal, high или immediate"
	msgInvalidLeadIDs     = "некорректный список лидов"
	msgInvalidSettings    = "сохраненные настройки рабочих часов некорректны"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase AutoScheduleUseCase
	logger  Logger
}

func NewHandler(useCase AutoScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/outreach/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /outreach/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /outreach/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /outreach/schedule - Invalid priority: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidPriority)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, autoSchedule.ErrInvalidInput):
			h.logger.Warn("POST /outreach/schedule - Invalid input: user_id=%s, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidLeadIDs)

		case errors.Is(err, autoSchedule.ErrInvalidSettings):
			h.logger.Error("POST /outreach/schedule - Invalid stored settings: user_id=%s, error=%v", userID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgInvalidSettings)

		default:
			h.logger.Error("POST /outreach/schedule - Failed to schedule: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /outreach/schedule - Scheduled: user_id=%s, leads=%d, fallback=%t",
		userID, len(result.Slots), result.FallbackUsed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
