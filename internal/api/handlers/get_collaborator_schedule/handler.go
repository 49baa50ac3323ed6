package get_collaborator_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule"
)

const (
	msgInvalidCollaboratorID = "некорректный ID сотрудника"
	msgCollaboratorNotFound  = "сотрудник не найден"
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

// Handle GET /api/v1/collaborators/{collaboratorId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collaboratorID, err := strconv.ParseInt(mux.Vars(r)["collaboratorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/schedule - Invalid collaborator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCollaboratorID)
		return
	}

	result, err := h.service.GetCollaboratorSchedule(r.Context(), collaboratorID)
	if err != nil {
		if errors.Is(err, schedule.ErrCollaboratorNotFound) {
			h.logger.Warn("GET /collaborators/{id}/schedule - Collaborator not found: collaborator_id=%d", collaboratorID)
			handlers.RespondNotFound(w, msgCollaboratorNotFound)
			return
		}

		h.logger.Error("GET /collaborators/{id}/schedule - Failed to get schedule: collaborator_id=%d, error=%v", collaboratorID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
