package create_appointment

import "errors"

var (
	// ErrCollaboratorNotFound возвращается, когда сотрудник не найден
	ErrCollaboratorNotFound = errors.New("create_appointment: collaborator not found")

	// ErrClientNotFound возвращается, когда клиента нет в каталоге
	ErrClientNotFound = errors.New("create_appointment: client not found")

	// ErrCollaboratorUnavailable возвращается, когда сотрудник не работает в выбранное время
	ErrCollaboratorUnavailable = errors.New("create_appointment: collaborator is not available")

	// ErrSlotNotAvailable возвращается, когда время пересекается с другой записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidDate возвращается для даты в прошлом
	ErrInvalidDate = errors.New("create_appointment: date is in the past")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт записи
	ErrDateTooFarInFuture = errors.New("create_appointment: date is too far in the future")

	// ErrTooLateToBook возвращается, когда до начала записи меньше минимального уведомления
	ErrTooLateToBook = errors.New("create_appointment: too late to book this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)

// UnavailableError отказ с причиной из проверки доступности сотрудника
type UnavailableError struct {
	Reason string
}

func (e *UnavailableError) Error() string {
	return ErrCollaboratorUnavailable.Error() + ": " + e.Reason
}

func (e *UnavailableError) Unwrap() error {
	return ErrCollaboratorUnavailable
}
