// Package registerform реализует HTTP-обработчик описания формы регистрации.
//
// Форма строится из конфигурации платформы; при наличии активного pipeline
// сторонней аутентификации поля формы дополняются данными провайдера.
package registerform

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/learning-user-api/internal/forms"
	thirdparty "github.com/magabrotheeeer/learning-user-api/internal/services/thirdparty"
)

// PipelineService возвращает контекст активного pipeline сторонней
// аутентификации.
type PipelineService interface {
	RunningPipeline(pipelineID string) *forms.ThirdPartyContext
}

// Handler обрабатывает запросы описания формы регистрации.
type Handler struct {
	log      *slog.Logger
	builder  *forms.RegistrationBuilder
	pipeline PipelineService
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, builder *forms.RegistrationBuilder, pipeline PipelineService) *Handler {
	return &Handler{
		log:      log,
		builder:  builder,
		pipeline: pipeline,
	}
}

// ServeHTTP godoc
// @Summary Описание формы регистрации
// @Description Возвращает описание полей формы регистрации: порядок, обязательность, ограничения и варианты выбора. При активном pipeline сторонней аутентификации поля предзаполняются данными провайдера.
// @Tags Accounts
// @Produce  json
// @Success 200 {object} forms.Description
// @Router /account/registration [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.registerform"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var tpa *forms.ThirdPartyContext
	if cookie, err := r.Cookie(thirdparty.PipelineCookieName); err == nil {
		tpa = h.pipeline.RunningPipeline(cookie.Value)
		if tpa != nil {
			log.Info("building form for third party pipeline",
				slog.String("provider", tpa.ProviderName))
		}
	}

	render.JSON(w, r, h.builder.Build(tpa))
}
