// Package timezones реализует HTTP-обработчик справочника часовых поясов.
package timezones

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	"github.com/magabrotheeeer/learning-user-api/internal/models"
)

// Service описывает интерфейс бизнес-логики часовых поясов.
type Service interface {
	ListTimeZones(ctx context.Context, countryCode string) ([]*models.TimeZone, error)
}

// Handler обрабатывает запросы справочника часовых поясов.
type Handler struct {
	log   *slog.Logger
	prefs Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prefsService Service) *Handler {
	return &Handler{log: log, prefs: prefsService}
}

// ServeHTTP godoc
// @Summary Справочник часовых поясов
// @Description Возвращает список часовых поясов. Параметр country_code (без учета регистра) ограничивает список поясами страны.
// @Tags Preferences
// @Produce  json
// @Param country_code query string false "Двухбуквенный код страны"
// @Success 200 {array} models.TimeZone
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /preferences/time_zones [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.preferences.timezones"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	countryCode := r.URL.Query().Get("country_code")

	zones, err := h.prefs.ListTimeZones(r.Context(), countryCode)
	if err != nil {
		log.Error("failed to list time zones", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list time zones"))
		return
	}
	if zones == nil {
		zones = []*models.TimeZone{}
	}

	render.JSON(w, r, zones)
}
