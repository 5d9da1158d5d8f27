// Package loginform реализует HTTP-обработчик описания формы входа.
package loginform

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/learning-user-api/internal/config"
	"github.com/magabrotheeeer/learning-user-api/internal/forms"
)

// Handler обрабатывает запросы описания формы входа.
type Handler struct {
	log *slog.Logger
	cfg *config.Config
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, cfg *config.Config) *Handler {
	return &Handler{log: log, cfg: cfg}
}

// ServeHTTP godoc
// @Summary Описание формы входа
// @Description Возвращает описание полей формы входа для динамического рендеринга клиентом.
// @Tags Accounts
// @Produce  json
// @Success 200 {object} forms.Description
// @Router /account/login_session [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, forms.LoginForm(h.cfg))
}
