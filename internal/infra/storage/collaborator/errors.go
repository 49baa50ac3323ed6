package collaborator

import "errors"

var (
	// ErrCollaboratorNotFound возвращается, когда сотрудник не найден
	ErrCollaboratorNotFound = errors.New("collaborator.repository: collaborator not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("collaborator.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("collaborator.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("collaborator.repository: failed to scan row")
)
