// Package userapi предоставляет маршруты пользовательского API.
package userapi

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/streadway/amqp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/learning-user-api/internal/config"
	"github.com/magabrotheeeer/learning-user-api/internal/forms"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/auth/loginform"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/auth/passwordreset"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/auth/passwordresetform"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/auth/registerform"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/health"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/preferences/emailoptin"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/preferences/listprefs"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/preferences/prefusers"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/preferences/timezones"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/users/forumroleusers"
	"github.com/magabrotheeeer/learning-user-api/internal/http/handlers/users/listusers"
	"github.com/magabrotheeeer/learning-user-api/internal/http/middlewarectx"
	accountsservice "github.com/magabrotheeeer/learning-user-api/internal/services/accounts"
	prefsservice "github.com/magabrotheeeer/learning-user-api/internal/services/preferences"
	tpaservice "github.com/magabrotheeeer/learning-user-api/internal/services/thirdparty"
	"github.com/magabrotheeeer/learning-user-api/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, cfg *config.Config,
	db *repository.Storage, channel *amqp.Channel,
	accountsService *accountsservice.AccountsService,
	prefsService *prefsservice.PreferencesService,
	pipelineService *tpaservice.ThirdPartyService,
	builder *forms.RegistrationBuilder) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/user_api/v1", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/account/registration/", registerform.New(logger, builder, pipelineService).ServeHTTP)
		r.Post("/account/registration/", register.New(logger, accountsService, cfg, channel).ServeHTTP)
		r.Get("/account/login_session", loginform.New(logger, cfg).ServeHTTP)
		r.Post("/account/login_session", login.New(logger, accountsService).ServeHTTP)
		r.Get("/account/password_reset", passwordresetform.New(logger, cfg).ServeHTTP)
		r.Post("/account/password_reset", passwordreset.New(logger, accountsService, channel).ServeHTTP)

		r.Get("/preferences/time_zones", timezones.New(logger, prefsService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(accountsService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/preferences/email_opt_in", emailoptin.New(logger, prefsService).ServeHTTP)
		})

		// Служебные выборки, доступные только с API-ключом
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.APIKeyMiddleware(cfg.APIKey, logger))
			r.Get("/accounts", listusers.New(logger, prefsService).ServeHTTP)
			r.Get("/user_prefs", listprefs.New(logger, prefsService).ServeHTTP)
			r.Get("/preferences/{pref_key}/users", prefusers.New(logger, prefsService).ServeHTTP)
			r.Get("/forum_roles/{name}/users", forumroleusers.New(logger, prefsService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger, db).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
