// config предоставляет структуру конфигурации сервиса и функции
// загрузки из файла/переменных окружения с предсказуемым приоритетом.
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config — корневая конфигурация сервиса.
// Источники значений (по убыванию приоритета):
//  1. явный путь через флаг --config;
//  2. путь в переменной окружения CONFIG_PATH;
//  3. файл local.yaml из рабочей директории;
//  4. переменные окружения (cleanenv).
type Config struct {
	Env      string        `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig    `yaml:"http"`
	Auth     AuthConfig    `yaml:"auth"`
	DB       DBConfig      `yaml:"db"`
	S3       S3Config      `yaml:"s3"`
	Redis    RedisConfig   `yaml:"redis"`
	Limits   LimitsConfig  `yaml:"limits"`
	Upload   UploadConfig  `yaml:"upload"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
}

// HTTPConfig — сетевые настройки HTTP-сервера.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

// Addr возвращает адрес в формате host:port.
func (h HTTPConfig) Addr() string {
	return net.JoinHostPort(h.Host, h.Port)
}

// AuthConfig содержит параметры входа персонала и выпуска/валидации токенов.
// AdminEmail/AdminPassword используются один раз на старте для сидирования
// учётной записи администратора, если её ещё нет в хранилище.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"ACCESS_TOKEN_TTL" env-default:"12h"`
	Issuer         string        `yaml:"issuer" env:"ISSUER" env-default:"college-console"`
	Audience       []string      `yaml:"audience" env:"AUDIENCE" env-default:"college-console"`
	AdminEmail     string        `yaml:"admin_email" env:"ADMIN_EMAIL"`
	AdminPassword  string        `yaml:"admin_password" env:"ADMIN_PASSWORD"`
}

// DBConfig — настройки подключения к MongoDB.
type DBConfig struct {
	URL string `yaml:"db_url" env:"DATABASE_URL" env-required:"true"`
}

// S3Config — настройки блоб-хранилища (MinIO/S3).
type S3Config struct {
	Endpoint      string `yaml:"endpoint" env:"S3_ENDPOINT" env-required:"true"`
	RootUser      string `yaml:"root_user" env:"S3_ROOT_USER" env-required:"true"`
	RootPassword  string `yaml:"root_password" env:"S3_ROOT_PASSWORD" env-required:"true"`
	Bucket        string `yaml:"bucket" env:"S3_BUCKET" env-default:"college-console"`
	PublicBaseURL string `yaml:"public_base_url" env:"S3_PUBLIC_BASE_URL"`
}

// RedisConfig — настройки кэша счётчиков дашборда; URL пустой — кэш выключен.
type RedisConfig struct {
	URL string        `yaml:"redis_url" env:"REDIS_URL"`
	TTL time.Duration `yaml:"counts_ttl" env:"REDIS_COUNTS_TTL" env-default:"30s"`
}

// LimitsConfig — серверные ограничения размера страницы.
type LimitsConfig struct {
	Default int32 `yaml:"default_page_size" env:"PAGE_SIZE_DEFAULT" env-default:"10"`
	Max     int32 `yaml:"max_page_size" env:"PAGE_SIZE_MAX" env-default:"100"`
}

// UploadConfig — ограничения загрузки PDF-файлов.
type UploadConfig struct {
	MaxSizeBytes int64 `yaml:"max_size_bytes" env:"UPLOAD_MAX_SIZE_BYTES" env-default:"20971520"`
}

// TimeoutConfig — таймауты сервиса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"10s"`
}

// MustLoad — обёртка над Load с panic при ошибке.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}

	return cfg
}

// Load загружает конфигурацию по приоритету:
// 1) явный путь; 2) CONFIG_PATH; 3) ./local.yaml; 4) ENV.
// ВАЖНО: после чтения файла накладываем ENV-переменные поверх значений из YAML.
func Load(path string) (*Config, error) {
	var cfg Config

	// чтение файла + overlay ENV.
	tryRead := func(p string) (*Config, error) {
		if p == "" {
			return nil, fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, &cfg); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to overlay env: %w", err)
		}

		return &cfg, nil
	}

	// 1) Явный путь.
	if path != "" {
		return tryRead(path)
	}

	// 2) CONFIG_PATH.
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		return tryRead(envPath)
	}

	// 3) ./local.yaml.
	if _, err := os.Stat("local.yaml"); err == nil {
		return tryRead("local.yaml")
	}

	// 4) Только ENV.
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
	}

	return &cfg, nil
}
