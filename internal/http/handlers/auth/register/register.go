// Package register реализует HTTP-обработчик создания учетной записи.
//
// В нём определяется структура Request для данных формы регистрации,
// выполняется декодирование JSON, проверка обязательных полей (включая
// дополнительные поля из конфигурации) и делегирование создания учетной
// записи сервису. Ошибки формы возвращаются в теле вида
// {"field": [{"user_message": "..."}]}.
package register

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/streadway/amqp"

	"github.com/magabrotheeeer/learning-user-api/internal/accounts"
	"github.com/magabrotheeeer/learning-user-api/internal/config"
	"github.com/magabrotheeeer/learning-user-api/internal/http/response"
	"github.com/magabrotheeeer/learning-user-api/internal/lib/sl"
	services "github.com/magabrotheeeer/learning-user-api/internal/services/accounts"
)

// Request — данные формы регистрации. Все поля приходят строками,
// как их отправляет форма.
type Request struct {
	Email            string `json:"email"`
	Name             string `json:"name"`
	Username         string `json:"username"`
	Password         string `json:"password"`
	ConfirmEmail     string `json:"confirm_email"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Gender           string `json:"gender"`
	YearOfBirth      string `json:"year_of_birth"`
	LevelOfEducation string `json:"level_of_education"`
	Country          string `json:"country"`
	City             string `json:"city"`
	State            string `json:"state"`
	Company          string `json:"company"`
	Title            string `json:"title"`
	MailingAddress   string `json:"mailing_address"`
	Goals            string `json:"goals"`
	HonorCode        string `json:"honor_code"`
	TermsOfService   string `json:"terms_of_service"`
}

// Service описывает интерфейс бизнес-логики создания учетной записи.
type Service interface {
	Register(ctx context.Context, data services.RegistrationData, channel *amqp.Channel) (string, error)
}

// Handler обрабатывает HTTP-запросы создания учетной записи.
type Handler struct {
	log      *slog.Logger
	accounts Service
	cfg      *config.Config
	channel  *amqp.Channel
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, accountsService Service, cfg *config.Config, channel *amqp.Channel) *Handler {
	return &Handler{
		log:      log,
		accounts: accountsService,
		cfg:      cfg,
		channel:  channel,
	}
}

// ServeHTTP godoc
// @Summary Создание учетной записи
// @Description Создает учетную запись по данным формы регистрации. При конфликте email или username возвращает 409 с сообщениями по полям.
// @Tags Accounts
// @Accept  json
// @Produce  json
// @Param request body Request true "Данные формы регистрации"
// @Success 200 {object} map[string]bool "Учетная запись создана"
// @Failure 400 {object} response.FieldErrors "Ошибки валидации по полям"
// @Failure 403 {string} string "Создание учетных записей запрещено"
// @Failure 409 {object} response.FieldErrors "Email или username уже заняты"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /account/registration [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.register"

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

	// Форма с совмещенным полем honor_code засчитывает его и за
	// terms_of_service.
	if req.TermsOfService == "" {
		req.TermsOfService = req.HonorCode
	}

	if errs := h.validate(&req); len(errs) > 0 {
		log.Error("form validation failed", slog.Int("fields", len(errs)))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, errs)
		return
	}
	log.Info("all fields are validated")

	var yearOfBirth *int
	if req.YearOfBirth != "" {
		if year, err := strconv.Atoi(req.YearOfBirth); err == nil {
			yearOfBirth = &year
		}
	}

	data := services.RegistrationData{
		Email:            req.Email,
		Name:             req.Name,
		Username:         req.Username,
		Password:         req.Password,
		FirstName:        req.FirstName,
		LastName:         req.LastName,
		Gender:           req.Gender,
		YearOfBirth:      yearOfBirth,
		LevelOfEducation: req.LevelOfEducation,
		Country:          req.Country,
		City:             req.City,
		State:            req.State,
		Company:          req.Company,
		Title:            req.Title,
		MailingAddress:   req.MailingAddress,
		Goals:            req.Goals,
	}

	_, err := h.accounts.Register(r.Context(), data, h.channel)
	if err != nil {
		var conflictErr *services.ConflictError
		switch {
		case errors.Is(err, services.ErrAccountCreationNotAllowed):
			log.Error("account creation disabled")
			http.Error(w, "Account creation not allowed.", http.StatusForbidden)
		case errors.As(err, &conflictErr):
			log.Error("registration conflict", slog.Any("fields", conflictErr.Fields))
			w.WriteHeader(http.StatusConflict)
			render.JSON(w, r, conflictBody(conflictErr.Fields, &req))
		default:
			log.Error("registration failed", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
		}
		return
	}

	log.Info("user registered", slog.String("username", req.Username))
	render.JSON(w, r, map[string]bool{"success": true})
}

// validate проверяет поля формы и возвращает первую ошибку каждого поля.
func (h *Handler) validate(req *Request) response.FieldErrors {
	errs := response.NewFieldErrors()

	switch {
	case req.Email == "":
		errs.Add("email", "Please enter your email.")
	case len(req.Email) < accounts.EmailMinLength || len(req.Email) > accounts.EmailMaxLength:
		errs.Add("email", fmt.Sprintf("Email must be between %d and %d characters long.",
			accounts.EmailMinLength, accounts.EmailMaxLength))
	}

	switch {
	case req.Name == "":
		errs.Add("name", "Please enter your full name.")
	case len(req.Name) > accounts.NameMaxLength:
		errs.Add("name", fmt.Sprintf("Full name must be at most %d characters long.", accounts.NameMaxLength))
	}

	switch {
	case req.Username == "":
		errs.Add("username", "Please enter your public username.")
	case len(req.Username) < accounts.UsernameMinLength || len(req.Username) > accounts.UsernameMaxLength:
		errs.Add("username", fmt.Sprintf("Username must be between %d and %d characters long.",
			accounts.UsernameMinLength, accounts.UsernameMaxLength))
	}

	switch {
	case req.Password == "":
		errs.Add("password", "Please enter your password.")
	case len(req.Password) < accounts.PasswordMinLength || len(req.Password) > accounts.PasswordMaxLength:
		errs.Add("password", fmt.Sprintf("Password must be between %d and %d characters long.",
			accounts.PasswordMinLength, accounts.PasswordMaxLength))
	}

	for _, field := range requiredExtraFields(h.cfg) {
		if fieldValue(req, field) == "" {
			errs.Add(field, requiredFieldMessage(field))
		}
	}

	if h.isFieldRequired("confirm_email") && req.ConfirmEmail != req.Email {
		errs.Add("confirm_email", accounts.RequiredFieldConfirmEmailMsg)
	}

	return errs
}

func (h *Handler) isFieldRequired(name string) bool {
	return h.cfg.Registration.ExtraFields[name] == "required"
}

// requiredExtraFields возвращает дополнительные поля, обязательные по
// конфигурации. Поле honor_code обязательно, пока конфигурация явно не
// скажет иначе. Поле confirm_email проверяется отдельно.
func requiredExtraFields(cfg *config.Config) []string {
	var result []string
	for field, visibility := range cfg.Registration.ExtraFields {
		if visibility == "required" && field != "confirm_email" {
			result = append(result, field)
		}
	}
	if _, ok := cfg.Registration.ExtraFields["honor_code"]; !ok {
		result = append(result, "honor_code")
	}
	return result
}

func fieldValue(req *Request, field string) string {
	switch field {
	case "first_name":
		return req.FirstName
	case "last_name":
		return req.LastName
	case "gender":
		return req.Gender
	case "year_of_birth":
		return req.YearOfBirth
	case "level_of_education":
		return req.LevelOfEducation
	case "country":
		return req.Country
	case "city":
		return req.City
	case "state":
		return req.State
	case "company":
		return req.Company
	case "title":
		return req.Title
	case "mailing_address":
		return req.MailingAddress
	case "goals":
		return req.Goals
	case "honor_code":
		return req.HonorCode
	case "terms_of_service":
		return req.TermsOfService
	default:
		return ""
	}
}

func requiredFieldMessage(field string) string {
	switch field {
	case "level_of_education":
		return accounts.RequiredFieldLevelOfEducationMsg
	case "mailing_address":
		return accounts.RequiredFieldMailingAddressMsg
	case "goals":
		return accounts.RequiredFieldGoalsMsg
	case "city":
		return accounts.RequiredFieldCityMsg
	case "country":
		return accounts.RequiredFieldCountryMsg
	case "honor_code":
		return "You must agree to the Honor Code."
	case "terms_of_service":
		return "You must agree to the Terms of Service."
	default:
		return fmt.Sprintf("The %s field is required.", field)
	}
}

// conflictBody строит тело ответа 409 с сообщением для каждого занятого поля.
func conflictBody(fields []string, req *Request) response.FieldErrors {
	errs := response.NewFieldErrors()
	for _, field := range fields {
		switch field {
		case "email":
			errs.Add("email", fmt.Sprintf(accounts.EmailConflictMsg, req.Email))
		case "username":
			errs.Add("username", fmt.Sprintf(accounts.UsernameConflictMsg, req.Username))
		}
	}
	return errs
}
