package get_collaborator_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getCollaboratorSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_collaborator_slots"
)

// CollaboratorSlotsResponse HTTP response model
type CollaboratorSlotsResponse struct {
	CollaboratorID  int64    `json:"collaboratorId"`
	Date            string   `json:"date"`
	IntervalMinutes int      `json:"intervalMinutes"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCollaboratorSlots.Response) *CollaboratorSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &CollaboratorSlotsResponse{
		CollaboratorID:  resp.CollaboratorID,
		Date:            resp.Date.Format(domain.DateFormat),
		IntervalMinutes: resp.SlotIntervalMinutes,
		DurationMinutes: resp.ServiceDurationMinutes,
		Slots:           slots,
	}
}
