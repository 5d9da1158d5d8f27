// Package listprefs реализует служебный HTTP-обработчик выборки
// пользовательских настроек.
package listprefs

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

// Item — представление одной настройки в ответе.
type Item struct {
	Username string `json:"user"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

// Service описывает интерфейс бизнес-логики настроек пользователя.
type Service interface {
	ListPreferences(ctx context.Context, key, username string) ([]*models.Preference, error)
}

// Handler обрабатывает запросы выборки настроек.
type Handler struct {
	log   *slog.Logger
	prefs Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prefsService Service) *Handler {
	return &Handler{log: log, prefs: prefsService}
}

// ServeHTTP godoc
// @Summary Выборка пользовательских настроек
// @Description Возвращает настройки, отфильтрованные по ключу и/или имени пользователя. Доступно только с сервисным API-ключом.
// @Tags Preferences
// @Produce  json
// @Param key query string false "Ключ настройки"
// @Param user query string false "Имя пользователя"
// @Success 200 {array} Item
// @Failure 403 {object} response.ErrorResponse "Неверный API-ключ"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /user_prefs [get]
// @Security ApiKeyAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.preferences.listprefs"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	key := r.URL.Query().Get("key")
	username := r.URL.Query().Get("user")

	prefs, err := h.prefs.ListPreferences(r.Context(), key, username)
	if err != nil {
		log.Error("failed to list preferences", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list preferences"))
		return
	}

	items := make([]Item, 0, len(prefs))
	for _, pref := range prefs {
		items = append(items, Item{
			Username: pref.Username,
			Key:      pref.Key,
			Value:    pref.Value,
		})
	}
	render.JSON(w, r, items)
}
