// Package passwordreset реализует HTTP-обработчик запроса сброса пароля.
//
// Обработчик не раскрывает, существует ли учетная запись: для неизвестного
// email возвращается тот же успешный ответ, что и для известного.
package passwordreset

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
)

// Request — структура входных данных для запроса сброса пароля.
type Request struct {
	Email string `json:"email" validate:"required,email"`
}

// Service описывает интерфейс постановки письма сброса пароля в очередь.
type Service interface {
	RequestPasswordReset(ctx context.Context, email string, channel *amqp.Channel) error
}

// Handler обрабатывает HTTP-запросы сброса пароля.
type Handler struct {
	log      *slog.Logger
	accounts Service
	channel  *amqp.Channel
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, accountsService Service, channel *amqp.Channel) *Handler {
	return &Handler{
		log:      log,
		accounts: accountsService,
		channel:  channel,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Запрос сброса пароля
// @Description Ставит в очередь письмо со ссылкой для сброса пароля. Ответ одинаков для известного и неизвестного email.
// @Tags Accounts
// @Accept  json
// @Produce  json
// @Param request body Request true "Email учетной записи"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /account/password_reset [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.passwordreset"

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

	if err := h.accounts.RequestPasswordReset(r.Context(), req.Email, h.channel); err != nil {
		log.Error("failed to queue password reset email", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to process request"))
		return
	}

	log.Info("password reset processed")
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"message": "password reset email sent if the account exists",
	}))
}
