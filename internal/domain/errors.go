package domain

import "errors"

var (
	// ErrDuplicatePlace - в исходных данных два места с одним идентификатором
	ErrDuplicatePlace = errors.New("duplicate place id")

	// ErrNoEntryPoint - в каталоге нет ни одной точки входа
	ErrNoEntryPoint = errors.New("catalog has no entry points")

	// ErrNothingToSelect - после фильтрации не осталось мест
	ErrNothingToSelect = errors.New("no places to select from")

	// ErrInvalidEvent - событие маршрута не содержит обязательных полей
	ErrInvalidEvent = errors.New("invalid route event")
)
