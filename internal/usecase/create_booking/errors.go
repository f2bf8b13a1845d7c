package create_booking

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден в каталоге
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrDiscountNotFound возвращается, когда промокод не найден
	ErrDiscountNotFound = errors.New("create_booking: discount not found")

	// ErrDiscountNotUsable возвращается, когда промокод отключен, истек
	// или исчерпан (в том числе исчерпан конкурентным оформлением)
	ErrDiscountNotUsable = errors.New("create_booking: discount not usable")

	// ErrInvalidDate возвращается при некорректной дате события
	ErrInvalidDate = errors.New("create_booking: invalid event date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
