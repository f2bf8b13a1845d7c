package clientservice

// RegisterClientRequest запрос на регистрацию клиента
type RegisterClientRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Client модель клиента из сервиса клиентов
type Client struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ErrorResponse модель ошибки от сервиса клиентов
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
