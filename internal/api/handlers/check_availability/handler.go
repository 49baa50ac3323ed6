package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	checkAvailability "github.com/m04kA/SMC-SalonService/internal/usecase/check_availability"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidCollaboratorID = "некорректный ID сотрудника"
	msgMissingParams         = "дата и время обязательны"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgCollaboratorNotFound  = "сотрудник не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/collaborators/{collaboratorId}/availability
// Query params: date (YYYY-MM-DD), time (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collaboratorID, err := strconv.ParseInt(mux.Vars(r)["collaboratorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/availability - Invalid collaborator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCollaboratorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	timeStr := r.URL.Query().Get("time")
	if dateStr == "" || timeStr == "" {
		h.logger.Warn("GET /collaborators/{id}/availability - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	candidate, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/availability - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		CollaboratorID: collaboratorID,
		Date:           date,
		Time:           candidate,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrCollaboratorNotFound):
			h.logger.Warn("GET /collaborators/{id}/availability - Collaborator not found: collaborator_id=%d", collaboratorID)
			handlers.RespondNotFound(w, msgCollaboratorNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /collaborators/{id}/availability - Failed to check availability: collaborator_id=%d, error=%v",
				collaboratorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /collaborators/{id}/availability - collaborator_id=%d, date=%s, time=%s, available=%t",
		collaboratorID, dateStr, candidate, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
