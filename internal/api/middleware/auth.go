package middleware

import (
	"encoding/json"
	"net/http"
)

// ClientIDHeader заголовок, идентифицирующий внешнего вызывающего
const ClientIDHeader = "X-Client-ID"

// Auth требует непустой X-Client-ID на защищенных маршрутах. Сервис не
// аутентифицирует клиентов сам - заголовок проставляет вышестоящий шлюз
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(ClientIDHeader) == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "X-Client-ID header is required",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
