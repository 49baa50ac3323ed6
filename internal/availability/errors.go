package availability

import (
	"errors"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

var (
	// ErrInvalidTimeFormat возвращается для строк времени не в формате HH:MM
	ErrInvalidTimeFormat = types.ErrInvalidTimeFormat

	// ErrMissingCollaborator возвращается, если сотрудник не передан
	ErrMissingCollaborator = errors.New("availability: collaborator is required")

	// ErrInvalidOperatingHours возвращается, если часы работы салона некорректны
	ErrInvalidOperatingHours = errors.New("availability: invalid operating hours")
)
