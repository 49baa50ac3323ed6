package get_collaborator_appointments

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments/models"
)

const (
	msgInvalidCollaboratorID = "некорректный ID сотрудника"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidIncludeFlag    = "некорректное значение includeInactive"
	msgCollaboratorNotFound  = "сотрудник не найден"
	msgForbidden             = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/collaborators/{collaboratorId}/appointments
// Query params: date (required), includeInactive (optional, bool)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collaboratorID, err := strconv.ParseInt(mux.Vars(r)["collaboratorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/appointments - Invalid collaborator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCollaboratorID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()
	dateStr := query.Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/appointments - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	includeInactive := false
	if raw := query.Get("includeInactive"); raw != "" {
		includeInactive, err = strconv.ParseBool(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidIncludeFlag)
			return
		}
	}

	result, err := h.service.ListByCollaborator(r.Context(), &models.ListCollaboratorAppointmentsRequest{
		UserID:          userID,
		CollaboratorID:  collaboratorID,
		Date:            date,
		IncludeInactive: includeInactive,
	})
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrCollaboratorNotFound):
			handlers.RespondNotFound(w, msgCollaboratorNotFound)

		case errors.Is(err, appointments.ErrBusinessNotFound):
			handlers.RespondNotFound(w, msgCollaboratorNotFound)

		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /collaborators/{id}/appointments - Access denied: collaborator_id=%d, user_id=%d", collaboratorID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /collaborators/{id}/appointments - Failed to list appointments: collaborator_id=%d, error=%v",
				collaboratorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /collaborators/{id}/appointments - collaborator_id=%d, date=%s, count=%d",
		collaboratorID, dateStr, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
