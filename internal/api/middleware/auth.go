package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/glowdesk/booking-service/internal/api/handlers"
)

// HeaderCustomerName заголовок идентификации клиента
const HeaderCustomerName = "X-Customer-Name"

type customerNameKey struct{}

// Auth проверяет наличие заголовка X-Customer-Name и кладет имя клиента
// в контекст запроса. Запросы без заголовка отклоняются с 401.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.Header.Get(HeaderCustomerName))
		if name == "" {
			handlers.RespondUnauthorized(w, "отсутствует заголовок "+HeaderCustomerName)
			return
		}

		ctx := context.WithValue(r.Context(), customerNameKey{}, name)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetCustomerName извлекает имя клиента из контекста запроса
func GetCustomerName(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(customerNameKey{}).(string)
	return name, ok && name != ""
}
