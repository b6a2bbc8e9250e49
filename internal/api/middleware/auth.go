package middleware

import (
	"net/http"

	"github.com/tablebook/reservation-service/internal/api/handlers"
)

// Заголовки идентификации, проставляемые вышестоящим gateway
const (
	UserEmailHeader   = "X-User-Email"
	WaiterEmailHeader = "X-Waiter-Email"
)

// Auth требует наличия заголовка X-User-Email
// Аутентификацию выполняет gateway; здесь проверяется только то,
// что identity вообще передан
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(UserEmailHeader) == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+UserEmailHeader)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserEmail возвращает email пользователя из заголовка запроса
func UserEmail(r *http.Request) string {
	return r.Header.Get(UserEmailHeader)
}

// WaiterEmail возвращает email официанта из заголовка запроса
func WaiterEmail(r *http.Request) string {
	return r.Header.Get(WaiterEmailHeader)
}
