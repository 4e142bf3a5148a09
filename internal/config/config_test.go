package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Вспомогательные хелперы.
func writeFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

// Полный корректный YAML с заданными значениями (не зависящими от дефолтов).
const sampleYAML = `
env: "prod"
http:
  host: "127.0.0.1"
  port: "6000"
auth:
  jwt_secret: "super-secret"
  access_token_ttl: "10m"
  issuer: "issuerX"
  audience: ["console", "web"]
  admin_email: "admin@college.edu"
  admin_password: "s3cret"
db:
  db_url: "mongodb://localhost:27017/console"
s3:
  endpoint: "http://localhost:9000"
  root_user: "minio"
  root_password: "minio123"
  bucket: "college"
  public_base_url: "https://cdn.college.edu"
redis:
  redis_url: "redis://localhost:6379/0"
  counts_ttl: "15s"
limits:
  default_page_size: 5
  max_page_size: 50
upload:
  max_size_bytes: 1048576
timeouts:
  service: "3s"
`

// Минимально валидный YAML (только обязательные поля).
const minimalYAML = `
auth:
  jwt_secret: "min-secret"
db:
  db_url: "mongodb://localhost/min"
s3:
  endpoint: "http://localhost:9000"
  root_user: "minio"
  root_password: "minio123"
`

// Некорректный YAML — для проверки ошибок парсинга.
const brokenYAML = `
auth:
  jwt_secret: [unclosed
`

func TestLoad_WithExplicitPath_OK(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", sampleYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	require.Equal(t, "6000", cfg.HTTP.Port)
	require.Equal(t, "127.0.0.1:6000", cfg.HTTP.Addr())

	require.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	require.Equal(t, 10*time.Minute, cfg.Auth.AccessTokenTTL)
	require.Equal(t, "issuerX", cfg.Auth.Issuer)
	require.ElementsMatch(t, []string{"console", "web"}, cfg.Auth.Audience)
	require.Equal(t, "admin@college.edu", cfg.Auth.AdminEmail)

	require.Equal(t, "mongodb://localhost:27017/console", cfg.DB.URL)
	require.Equal(t, "https://cdn.college.edu", cfg.S3.PublicBaseURL)
	require.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	require.Equal(t, 15*time.Second, cfg.Redis.TTL)
	require.Equal(t, int32(5), cfg.Limits.Default)
	require.Equal(t, int32(50), cfg.Limits.Max)
	require.Equal(t, int64(1048576), cfg.Upload.MaxSizeBytes)
	require.Equal(t, 3*time.Second, cfg.Timeouts.Service)
}

func TestLoad_WithExplicitPath_FileDoesNotExist(t *testing.T) {
	t.Parallel()

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "stat failed")
}

func TestLoad_WithExplicitPath_BrokenYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "broken.yaml", brokenYAML)

	_, err := Load(cfgPath)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to read config")
}

func TestLoad_Minimal_AppliesDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "min.yaml", minimalYAML)

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "local", cfg.Env)
	require.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	require.Equal(t, 12*time.Hour, cfg.Auth.AccessTokenTTL)
	require.Equal(t, "college-console", cfg.Auth.Issuer)
	require.Equal(t, "college-console", cfg.S3.Bucket)
	require.Equal(t, int32(10), cfg.Limits.Default)
	require.Equal(t, int32(100), cfg.Limits.Max)
	require.Equal(t, 30*time.Second, cfg.Redis.TTL)
	require.Equal(t, 10*time.Second, cfg.Timeouts.Service)
}

// ENV-переменные накладываются поверх значений из YAML.
func TestLoad_EnvOverlay(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "cfg.yaml", minimalYAML)

	t.Setenv("HTTP_PORT", "7777")
	t.Setenv("PAGE_SIZE_DEFAULT", "25")

	cfg, err := Load(cfgPath)
	require.NoError(t, err)

	require.Equal(t, "7777", cfg.HTTP.Port)
	require.Equal(t, int32(25), cfg.Limits.Default)
}
