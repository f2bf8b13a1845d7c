package quote_price

import "errors"

var (
	// ErrPackageNotFound возвращается, когда пакет не найден в каталоге
	ErrPackageNotFound = errors.New("quote_price: package not found")

	// ErrDiscountNotFound возвращается, когда промокод не найден
	ErrDiscountNotFound = errors.New("quote_price: discount not found")

	// ErrDiscountNotUsable возвращается, когда промокод отключен, истек
	// или исчерпан
	ErrDiscountNotUsable = errors.New("quote_price: discount not usable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_price: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_price: internal error")
)
