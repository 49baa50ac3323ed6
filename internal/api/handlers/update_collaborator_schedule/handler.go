package update_collaborator_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

const (
	msgInvalidCollaboratorID = "некорректный ID сотрудника"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgCollaboratorNotFound  = "сотрудник не найден"
	msgBusinessNotFound      = "салон не найден"
	msgForbidden             = "доступ запрещен"
	msgInvalidData           = "некорректные данные расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/collaborators/{collaboratorId}/schedule
// Ошибка проверки расписания возвращается с текстом первого нарушенного правила
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collaboratorID, err := strconv.ParseInt(mux.Vars(r)["collaboratorId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /collaborators/{id}/schedule - Invalid collaborator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCollaboratorID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /collaborators/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /collaborators/{id}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = userID

	result, err := h.service.UpdateCollaboratorSchedule(r.Context(), collaboratorID, &req)
	if err != nil {
		var validationErr *schedule.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /collaborators/{id}/schedule - Validation failed: collaborator_id=%d, error=%s",
				collaboratorID, validationErr.Message)
			handlers.RespondUnprocessable(w, validationErr.Message)

		case errors.Is(err, schedule.ErrCollaboratorNotFound):
			handlers.RespondNotFound(w, msgCollaboratorNotFound)

		case errors.Is(err, schedule.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgBusinessNotFound)

		case errors.Is(err, schedule.ErrAccessDenied):
			h.logger.Warn("PUT /collaborators/{id}/schedule - Access denied: collaborator_id=%d, user_id=%d", collaboratorID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /collaborators/{id}/schedule - Invalid data: collaborator_id=%d, error=%v", collaboratorID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /collaborators/{id}/schedule - Failed to update schedule: collaborator_id=%d, error=%v", collaboratorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /collaborators/{id}/schedule - Schedule updated: collaborator_id=%d, user_id=%d", collaboratorID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
