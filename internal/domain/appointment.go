package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusScheduled           AppointmentStatus = "scheduled"
	StatusConfirmed           AppointmentStatus = "confirmed"
	StatusCompleted           AppointmentStatus = "completed"
	StatusCancelledByClient   AppointmentStatus = "cancelled_by_client"
	StatusCancelledByBusiness AppointmentStatus = "cancelled_by_business"
	StatusNoShow              AppointmentStatus = "no_show"
)

// Appointment запись клиента к сотруднику
type Appointment struct {
	ID              int64
	BusinessID      int64
	CollaboratorID  int64
	ClientID        int64
	ServiceName     string
	AppointmentDate time.Time
	AppointmentTime types.TimeString
	DurationMinutes int
	Status          AppointmentStatus

	// Denormalized data
	ClientName *string
	Notes      *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment still occupies its time window
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelledByClient &&
		a.Status != StatusCancelledByBusiness &&
		a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// EffectiveDuration длительность записи, DefaultAppointmentDurationMinutes если неизвестна
func (a *Appointment) EffectiveDuration() int {
	if a.DurationMinutes <= 0 {
		return DefaultAppointmentDurationMinutes
	}
	return a.DurationMinutes
}

// ParseAppointmentStatus проверяет строковый статус
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	for _, status := range append(append([]AppointmentStatus{}, ActiveStatuses...), InactiveStatuses...) {
		if string(status) == s {
			return status, true
		}
	}
	return "", false
}
