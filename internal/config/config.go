// Package config предоставляет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config общая структура для хранения настроек
type Config struct {
	Env                     string `yaml:"env"`
	PlatformName            string `yaml:"platform_name"`
	StorageConnectionString string `yaml:"storage_connection_string"`
	APIKey                  string `yaml:"api_key"`
	RabbitMQ                `yaml:"rabbitmq"`
	RedisConnection         `yaml:"redis_connection"`
	HTTPServer              `yaml:"http_server"`
	JWTToken                `yaml:"jwttoken"`
	SMTP                    `yaml:"smtp"`
	Registration            `yaml:"registration"`
	MarketingLinks          `yaml:"marketing_links"`
	ThirdPartyAuth          `yaml:"third_party_auth"`
}

// HTTPServer структура для настройки сервера
type HTTPServer struct {
	AddressHTTP string        `yaml:"addresshttp"`
	TimeoutHTTP time.Duration `yaml:"timeouthttp"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// RabbitMQ структура для настройки подключения к брокеру сообщений
type RabbitMQ struct {
	RabbitMQURL        string        `yaml:"url"`
	RabbitMQMaxRetries int           `yaml:"max_retries" env-default:"5"`
	RabbitMQRetryDelay time.Duration `yaml:"retry_delay" env-default:"2s"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"addressredis"`
	Password     string        `yaml:"password"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeoutredis"`
}

// JWTToken структура для работы с jwt-токеном
type JWTToken struct {
	JWTSecretKey string        `yaml:"jwt_secret_key"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
}

// SMTP структура для настройки подключения к SMTP-серверу рассылки
type SMTP struct {
	SMTPHost string `yaml:"smtp_host"`
	SMTPPort string `yaml:"smtp_port"`
	SMTPUser string `yaml:"smtp_user"`
	SMTPPass string `yaml:"smtp_pass" env:"SMTP_PASS"`
}

// Registration настройки регистрационной формы и создания аккаунтов.
//
// ExtraFields — карта "имя поля" -> required | optional | hidden.
// Любое другое значение считается ошибкой конфигурации при старте сервиса.
// FieldOrder — желаемый порядок полей формы; если набор полей не совпадает
// с допустимым, порядок откатывается к порядку по умолчанию.
type Registration struct {
	AllowPublicAccountCreation bool              `yaml:"allow_public_account_creation" env-default:"true"`
	ExtraFields                map[string]string `yaml:"extra_fields"`
	FieldOrder                 []string          `yaml:"field_order"`
	DefaultLanguage            string            `yaml:"default_language" env-default:"en"`
	DefaultTimeZone            string            `yaml:"default_time_zone" env-default:"UTC"`
	ExtensionForm              []ExtensionField  `yaml:"extension_form"`
}

// ExtensionField описывает одно поле кастомной формы расширения регистрации.
type ExtensionField struct {
	Name      string   `yaml:"name"`
	Class     string   `yaml:"class"`
	Label     string   `yaml:"label"`
	Default   string   `yaml:"default"`
	Initial   string   `yaml:"initial"`
	HelpText  string   `yaml:"help_text"`
	Required  bool     `yaml:"required"`
	MinLength int      `yaml:"min_length"`
	MaxLength int      `yaml:"max_length"`
	Options   []string `yaml:"options"`
	FieldType string   `yaml:"field_type"`
	WithBlank bool     `yaml:"include_default_option"`
	ErrorMsg  string   `yaml:"error_message"`
}

// MarketingLinks ссылки на страницы платформы, используемые в формах и письмах.
type MarketingLinks struct {
	Root           string `yaml:"root"`
	HonorCode      string `yaml:"honor_code"`
	TermsOfService string `yaml:"terms_of_service"`
	PasswordReset  string `yaml:"password_reset"`
}

// ThirdPartyAuth настройки сторонних провайдеров аутентификации.
type ThirdPartyAuth struct {
	Enabled   bool           `yaml:"enabled"`
	Providers []AuthProvider `yaml:"providers"`
}

// AuthProvider описывает одного стороннего провайдера.
type AuthProvider struct {
	Slug                 string `yaml:"slug"`
	Name                 string `yaml:"name"`
	SkipRegistrationForm bool   `yaml:"skip_registration_form"`
}

// MustLoad функция для загрузки конфига, завершает процесс при любой ошибке чтения
func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		log.Fatalf("file: %s - does not exist", configPath)
	}
	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &cfg
}

// Provider возвращает провайдера по slug или nil, если такой не настроен.
func (t ThirdPartyAuth) Provider(slug string) *AuthProvider {
	for i := range t.Providers {
		if t.Providers[i].Slug == slug {
			return &t.Providers[i]
		}
	}
	return nil
}
