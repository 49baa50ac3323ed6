package check_availability

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса проверки времени
type Request struct {
	CollaboratorID int64
	Date           time.Time
	Time           types.TimeString
}

// Response результат проверки, Reason заполнен только при Available == false
type Response struct {
	CollaboratorID int64
	Date           time.Time
	Time           types.TimeString
	Available      bool
	Reason         string
}
