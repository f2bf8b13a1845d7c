package clientservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("clientservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("clientservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис клиентов недоступен и идентификатор клиента
	// следует сгенерировать локально
	ErrServiceDegraded = errors.New("clientservice unavailable: graceful degradation applied")
)
