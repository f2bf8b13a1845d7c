package middleware

import (
	"context"
	"net/http"
	"strings"
)

// HeaderClientID заголовок с идентификатором клиента для защищенных роутов
const HeaderClientID = "X-Client-ID"

type contextKey string

const clientIDKey contextKey = "clientID"

// Auth извлекает идентификатор клиента из заголовка и кладет в контекст
// Наличие идентификатора проверяют сами handlers: публичные роуты
// работают и без него
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := strings.TrimSpace(r.Header.Get(HeaderClientID))
		if clientID != "" {
			r = r.WithContext(context.WithValue(r.Context(), clientIDKey, clientID))
		}
		next.ServeHTTP(w, r)
	})
}

// GetClientID возвращает идентификатор клиента из контекста
func GetClientID(ctx context.Context) (string, bool) {
	clientID, ok := ctx.Value(clientIDKey).(string)
	return clientID, ok
}
