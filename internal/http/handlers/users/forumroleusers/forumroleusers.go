// Package forumroleusers реализует служебный HTTP-обработчик выборки
// пользователей с заданной ролью форума в курсе.
package forumroleusers

import (
	"context"
	"errors"
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
	ListForumRoleUsers(ctx context.Context, rawCourseID, roleName string) ([]services.UserSummary, error)
}

// Handler обрабатывает запросы выборки пользователей по роли форума.
type Handler struct {
	log   *slog.Logger
	prefs Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prefsService Service) *Handler {
	return &Handler{log: log, prefs: prefsService}
}

// ServeHTTP godoc
// @Summary Пользователи с ролью форума
// @Description Возвращает пользователей с указанной ролью форума в курсе вместе с их настройками. Доступно только с сервисным API-ключом.
// @Tags Users
// @Produce  json
// @Param name path string true "Имя роли форума"
// @Param course_id query string true "Идентификатор курса"
// @Success 200 {array} services.UserSummary
// @Failure 400 {string} string "Курс не найден"
// @Failure 403 {object} response.ErrorResponse "Неверный API-ключ"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /forum_roles/{name}/users [get]
// @Security ApiKeyAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.users.forumroleusers"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	roleName := chi.URLParam(r, "name")
	courseID := r.URL.Query().Get("course_id")

	users, err := h.prefs.ListForumRoleUsers(r.Context(), courseID, roleName)
	if err != nil {
		var courseErr *services.InvalidCourseError
		if errors.As(err, &courseErr) {
			log.Error("invalid course id", slog.String("course_id", courseID))
			http.Error(w, "No course '"+courseErr.ID+"' found", http.StatusBadRequest)
			return
		}
		log.Error("failed to list forum role users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list users"))
		return
	}
	if users == nil {
		users = []services.UserSummary{}
	}

	render.JSON(w, r, users)
}
