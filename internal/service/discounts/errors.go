package discounts

import "errors"

var (
	// ErrDiscountNotFound возвращается, когда промокод не найден
	ErrDiscountNotFound = errors.New("discount not found")

	// ErrDiscountInactive возвращается, когда промокод отключен
	ErrDiscountInactive = errors.New("discount is inactive")

	// ErrDiscountExpired возвращается, когда срок действия промокода истек
	ErrDiscountExpired = errors.New("discount has expired")

	// ErrDiscountExhausted возвращается, когда лимит использований исчерпан
	ErrDiscountExhausted = errors.New("discount usage limit reached")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("discounts service: internal error")
)
