// Package listusers реализует служебный HTTP-обработчик выборки всех
// учетных записей.
package listusers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	services "github.com/magabrotheeeer/learning-user-api/internal/services/preferences"
)

// Service описывает интерфейс бизнес-логики выборок пользователей.
type Service interface {
	ListAccounts(ctx context.Context) ([]services.UserSummary, error)
}

// Handler обрабатывает запросы выборки учетных записей.
type Handler struct {
	log   *slog.Logger
	prefs Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prefsService Service) *Handler {
	return &Handler{log: log, prefs: prefsService}
}

// ServeHTTP godoc
// @Summary Выборка учетных записей
// @Description Возвращает все учетные записи вместе с именем из анкеты и настройками. Доступно только с сервисным API-ключом.
// @Tags Users
// @Produce  json
// @Success 200 {array} services.UserSummary
// @Failure 403 {object} response.ErrorResponse "Неверный API-ключ"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /accounts [get]
// @Security ApiKeyAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.listusers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	users, err := h.prefs.ListAccounts(r.Context())
	if err != nil {
		log.Error("failed to list accounts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list accounts"))
		return
	}
	if users == nil {
		users = []services.UserSummary{}
	}

	render.JSON(w, r, users)
}
