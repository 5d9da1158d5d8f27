// Package prefusers реализует служебный HTTP-обработчик выборки
// пользователей, у которых задана настройка с указанным ключом.
package prefusers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	services "github.com/magabrotheeeer/learning-user-api/internal/services/preferences"
)

// Service описывает интерфейс бизнес-логики выборок пользователей.
type Service interface {
	ListPreferenceUsers(ctx context.Context, prefKey string) ([]services.UserSummary, error)
}

// Handler обрабатывает запросы выборки пользователей по ключу настройки.
type Handler struct {
	log   *slog.Logger
	prefs Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prefsService Service) *Handler {
	return &Handler{log: log, prefs: prefsService}
}

// ServeHTTP godoc
// @Summary Пользователи с настройкой
// @Description Возвращает пользователей, у которых задана настройка с указанным ключом, вместе с их настройками. Доступно только с сервисным API-ключом.
// @Tags Preferences
// @Produce  json
// @Param pref_key path string true "Ключ настройки"
// @Success 200 {array} services.UserSummary
// @Failure 403 {object} response.ErrorResponse "Неверный API-ключ"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /preferences/{pref_key}/users [get]
// @Security ApiKeyAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.preferences.prefusers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	prefKey := chi.URLParam(r, "pref_key")

	users, err := h.prefs.ListPreferenceUsers(r.Context(), prefKey)
	if err != nil {
		log.Error("failed to list users by preference", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}
	if users == nil {
		users = []services.UserSummary{}
	}

	render.JSON(w, r, users)
}
