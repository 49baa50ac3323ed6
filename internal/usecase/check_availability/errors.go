package check_availability

import "errors"

var (
	// ErrCollaboratorNotFound возвращается, когда сотрудник не найден
	ErrCollaboratorNotFound = errors.New("check_availability: collaborator not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
