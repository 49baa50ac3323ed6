package check_availability

import (
	checkAvailability "github.com/m04kA/SMC-SalonService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
// reason присутствует только при available == false
type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Available,
		Reason:    resp.Reason,
	}
}
