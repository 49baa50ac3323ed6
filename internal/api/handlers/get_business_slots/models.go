package get_business_slots

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	getBusinessSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_business_slots"
)

// BusinessSlotsResponse HTTP response model
type BusinessSlotsResponse struct {
	BusinessID      int64    `json:"businessId"`
	Date            string   `json:"date"`
	DayOfWeek       string   `json:"dayOfWeek"`
	IsOpen          bool     `json:"isOpen"`
	DurationMinutes int      `json:"durationMinutes"`
	Slots           []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBusinessSlots.Response) *BusinessSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &BusinessSlotsResponse{
		BusinessID:      resp.BusinessID,
		Date:            resp.Date.Format(domain.DateFormat),
		DayOfWeek:       resp.DayOfWeek.String(),
		IsOpen:          resp.IsOpen,
		DurationMinutes: resp.ServiceDurationMinutes,
		Slots:           slots,
	}
}
