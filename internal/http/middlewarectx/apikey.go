package middlewarectx

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
)

// APIKeyHeader имя заголовка с сервисным API-ключом.
const APIKeyHeader = "X-Api-Key"

// APIKeyMiddleware возвращает HTTP middleware для служебных read-only
// эндпоинтов: запрос пропускается только с верным сервисным API-ключом.
// При несовпадении возвращает HTTP 403 Forbidden.
func APIKeyMiddleware(apiKey string, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.APIKeyMiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			provided := r.Header.Get(APIKeyHeader)
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				log.Error("invalid api key")
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("invalid api key"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
