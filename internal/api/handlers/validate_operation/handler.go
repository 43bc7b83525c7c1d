package validate_operation

import (
	"net/http"

	"github.com/m04kA/SMC-OutreachService/internal/api/handlers"
	"github.com/m04kA/SMC-OutreachService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPriority    = "некорректный приоритет, ожидается low, normal, high или immediate"
	msgMissingUserID      = "отсутствует ID пользователя"
)

type Handler struct {
	useCase ValidateOperationUseCase
	logger  Logger
}

func NewHandler(useCase ValidateOperationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/outreach/validate
// Отказ по правилам - это 200 с allowed=false, 4xx только для некорректного запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /outreach/validate - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req ValidateOperationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /outreach/validate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /outreach/validate - Invalid priority: user_id=%s, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidPriority)
		return
	}

	result := h.useCase.Execute(r.Context(), useCaseReq)

	h.logger.Info("POST /outreach/validate - Validated: user_id=%s, leads=%d, allowed=%t",
		userID, len(req.LeadIDs), result.Allowed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
