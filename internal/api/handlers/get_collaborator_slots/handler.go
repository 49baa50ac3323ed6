package get_collaborator_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCollaboratorSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_collaborator_slots"
)

const (
	msgInvalidCollaboratorID = "некорректный ID сотрудника"
	msgMissingDate           = "дата обязательна"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInterval       = "некорректный интервал слотов"
	msgInvalidDuration       = "некорректная длительность услуги"
	msgInvalidParams         = "некорректные параметры запроса"
	msgCollaboratorNotFound  = "сотрудник не найден"
	msgDateInPast            = "дата в прошлом"
	msgDateTooFar            = "дата слишком далеко в будущем"
)

type Handler struct {
	useCase GetCollaboratorSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetCollaboratorSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/collaborators/{collaboratorId}/available-slots
// Query params: date (required), interval и duration (optional, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	collaboratorID, err := strconv.ParseInt(mux.Vars(r)["collaboratorId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/available-slots - Invalid collaborator ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCollaboratorID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /collaborators/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	interval, err := handlers.QueryInt(r, "interval")
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/available-slots - Invalid interval: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInterval)
		return
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		h.logger.Warn("GET /collaborators/{id}/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCollaboratorSlots.Request{
		CollaboratorID:         collaboratorID,
		Date:                   date,
		SlotIntervalMinutes:    interval,
		ServiceDurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCollaboratorSlots.ErrCollaboratorNotFound):
			h.logger.Warn("GET /collaborators/{id}/available-slots - Collaborator not found: collaborator_id=%d", collaboratorID)
			handlers.RespondNotFound(w, msgCollaboratorNotFound)

		case errors.Is(err, getCollaboratorSlots.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getCollaboratorSlots.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getCollaboratorSlots.ErrInvalidInput):
			h.logger.Warn("GET /collaborators/{id}/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /collaborators/{id}/available-slots - Failed to get slots: collaborator_id=%d, error=%v", collaboratorID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /collaborators/{id}/available-slots - Slots retrieved: collaborator_id=%d, date=%s, slots_count=%d",
		collaboratorID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
