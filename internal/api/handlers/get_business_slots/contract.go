package get_business_slots

import (
	"context"

	getBusinessSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_business_slots"
)

type GetBusinessSlotsUseCase interface {
	Execute(ctx context.Context, req *getBusinessSlots.Request) (*getBusinessSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
