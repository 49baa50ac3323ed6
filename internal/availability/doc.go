// Package availability решает, какие времена записи можно предложить клиенту
// и допустимо ли конкретное время для сотрудника.
//
// Все функции чистые: входные данные (часы работы, расписание сотрудника,
// существующие записи) загружает вызывающий код, пакет не делает I/O и не
// хранит состояния между вызовами.
//
// Две границы закрытия намеренно различаются:
//   - BusinessSlots отбрасывает слот, который заканчивается позже закрытия;
//   - CheckCollaborator и CollaboratorSlots включают время окончания смены
//     как допустимое время начала.
package availability
