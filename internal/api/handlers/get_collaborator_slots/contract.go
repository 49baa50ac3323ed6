package get_collaborator_slots

import (
	"context"

	getCollaboratorSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_collaborator_slots"
)

type GetCollaboratorSlotsUseCase interface {
	Execute(ctx context.Context, req *getCollaboratorSlots.Request) (*getCollaboratorSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
