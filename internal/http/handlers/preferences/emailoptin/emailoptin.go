// Package emailoptin реализует HTTP-обработчик записи согласия пользователя
// на рассылку организации курса.
package emailoptin

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/learning-user-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	services "github.com/magabrotheeeer/learning-user-api/internal/services/preferences"
)

// Request — структура входных данных согласия на рассылку.
type Request struct {
	CourseID string `json:"course_id" validate:"required"`
	OptIn    string `json:"email_opt_in" validate:"required"`
}

// Service описывает интерфейс бизнес-логики настроек пользователя.
type Service interface {
	UpdateEmailOptIn(ctx context.Context, username, rawCourseID, optIn string) error
}

// Handler обрабатывает HTTP-запросы записи согласия на рассылку.
type Handler struct {
	log      *slog.Logger
	prefs    Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, prefsService Service) *Handler {
	return &Handler{
		log:      log,
		prefs:    prefsService,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Согласие на рассылку
// @Description Записывает согласие текущего пользователя на рассылку организации курса. Значением True считается только строка "true" без учета регистра.
// @Tags Preferences
// @Accept  json
// @Produce  json
// @Param request body Request true "Идентификатор курса и значение согласия"
// @Success 200 {object} response.Response
// @Failure 400 {string} string "Курс не найден"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /preferences/email_opt_in [post]
// @Security BearerAuth
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.preferences.emailoptin"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	username, ok := r.Context().Value(middlewarectx.User).(string)
	if !ok || username == "" {
		log.Error("user identification missing")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("user identification missing"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	if err := h.prefs.UpdateEmailOptIn(r.Context(), username, req.CourseID, req.OptIn); err != nil {
		var courseErr *services.InvalidCourseError
		if errors.As(err, &courseErr) {
			log.Error("invalid course id", slog.String("course_id", req.CourseID))
			http.Error(w, "No course '"+courseErr.ID+"' found", http.StatusBadRequest)
			return
		}
		log.Error("failed to update email opt-in", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to update email opt-in"))
		return
	}

	log.Info("email opt-in updated", slog.String("username", username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"course_id": req.CourseID,
	}))
}
