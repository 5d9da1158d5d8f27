// Package login реализует HTTP-обработчик создания пользовательской сессии.
//
// В нём определяется структура Request для входных данных, выполняется
// декодирование JSON, проверка и валидация полей, а также делегирование
// операции входа сервису учетных записей. При успешной аутентификации
// устанавливается сессионная cookie с JWT.
package login

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/learning-user-api/internal/http/middlewarectx"
	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	"github.com/magabrotheeeer/learning-user-api/internal/models"
	services "github.com/magabrotheeeer/learning-user-api/internal/services/accounts"
)

// Request — структура входных данных для входа.
type Request struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"remember"`
}

// Service описывает интерфейс бизнес-логики аутентификации.
type Service interface {
	Login(ctx context.Context, email, password string) (string, *models.User, error)
}

// Handler обрабатывает HTTP-запросы создания сессии.
type Handler struct {
	log      *slog.Logger
	accounts Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, accountsService Service) *Handler {
	return &Handler{
		log:      log,
		accounts: accountsService,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Создание сессии
// @Description Аутентифицирует пользователя по email и паролю, устанавливает сессионную cookie с JWT.
// @Tags Accounts
// @Accept  json
// @Produce  json
// @Param request body Request true "Учетные данные пользователя"
// @Success 200 {object} response.Response "Успешная авторизация"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 403 {object} response.ErrorResponse "Неверные учетные данные"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /account/login_session [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

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

	token, user, err := h.accounts.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			log.Error("login rejected")
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("Email or password is incorrect."))
			return
		}
		log.Error("login failed", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to create session"))
		return
	}

	cookie := &http.Cookie{
		Name:     middlewarectx.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if req.RememberMe {
		cookie.Expires = time.Now().Add(14 * 24 * time.Hour)
	}
	http.SetCookie(w, cookie)

	log.Info("session created", slog.String("username", user.Username))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"username": user.Username,
	}))
}
