package service

// Тесты аутентификации персонала (internal/service/auth.go, token.go):
// вход, выпуск/проверка access-токена, сидирование администратора.

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/college-console/internal/config"
	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
	"github.com/pribylovaa/college-console/mocks"
)

func newAuthService(t *testing.T) (*Service, *mocks.MockStorage, *gomock.Controller) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ms := mocks.NewMockStorage(ctrl)
	mf := mocks.NewMockFileStorage(ctrl)

	cfg := config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			AccessTokenTTL: time.Hour,
			Issuer:         "college-console",
			Audience:       []string{"college-console"},
			AdminEmail:     "admin@college.edu",
			AdminPassword:  "S3cure-pass",
		},
		Limits: config.LimitsConfig{Default: 10, Max: 100},
	}

	return New(ms, mf, cfg), ms, ctrl
}

func staffUser(t *testing.T, email, password string) *models.StaffUser {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &models.StaffUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
	}
}

// Невалидный email и пустой пароль не различимы снаружи: всегда
// ErrInvalidCredentials, до стораджа не доходим.
func TestService_Login_BadInput(t *testing.T) {
	s, _, ctrl := newAuthService(t)
	defer ctrl.Finish()

	_, err := s.Login(context.Background(), "not-an-email", "pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(context.Background(), "staff@college.edu", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownUserAndWrongPassword(t *testing.T) {
	s, ms, ctrl := newAuthService(t)
	defer ctrl.Finish()

	ms.EXPECT().StaffByEmail(gomock.Any(), "ghost@college.edu").Return(nil, storage.ErrNotFound)
	_, err := s.Login(context.Background(), "ghost@college.edu", "pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	user := staffUser(t, "staff@college.edu", "right-password")
	ms.EXPECT().StaffByEmail(gomock.Any(), "staff@college.edu").Return(user, nil)
	_, err = s.Login(context.Background(), "staff@college.edu", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

// Happy-path: email нормализуется, выпущенный токен проходит проверку
// и несёт личность пользователя.
func TestService_Login_TokenRoundtrip(t *testing.T) {
	s, ms, ctrl := newAuthService(t)
	defer ctrl.Finish()

	user := staffUser(t, "staff@college.edu", "right-password")
	ms.EXPECT().StaffByEmail(gomock.Any(), "staff@college.edu").Return(user, nil)

	token, err := s.Login(context.Background(), "  STAFF@college.edu ", "right-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	uid, email, err := s.Authenticate(token)
	require.NoError(t, err)
	require.Equal(t, user.ID, uid)
	require.Equal(t, user.Email, email)
}

func TestService_Authenticate_BadTokens(t *testing.T) {
	s, _, ctrl := newAuthService(t)
	defer ctrl.Finish()

	_, _, err := s.Authenticate("garbage")
	require.ErrorIs(t, err, ErrInvalidToken)

	// Токен с чужим секретом.
	other, _, octrl := newAuthService(t)
	defer octrl.Finish()
	other.cfg.Auth.JWTSecret = "other-secret"

	foreign, err := other.generateAccessToken(context.Background(), uuid.New(), "x@college.edu", time.Now().UTC())
	require.NoError(t, err)

	_, _, err = s.Authenticate(foreign)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Authenticate_Expired(t *testing.T) {
	s, _, ctrl := newAuthService(t)
	defer ctrl.Finish()

	// Выпускаем токен "в прошлом" дальше, чем leeway проверки.
	stale, err := s.generateAccessToken(context.Background(), uuid.New(), "x@college.edu",
		time.Now().UTC().Add(-2*time.Hour))
	require.NoError(t, err)

	_, _, err = s.Authenticate(stale)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestService_EnsureAdmin(t *testing.T) {
	s, ms, ctrl := newAuthService(t)
	defer ctrl.Finish()

	// Администратор уже есть — ничего не сохраняем.
	ms.EXPECT().StaffByEmail(gomock.Any(), "admin@college.edu").
		Return(&models.StaffUser{Email: "admin@college.edu"}, nil)
	require.NoError(t, s.EnsureAdmin(context.Background()))

	// Администратора нет — сохраняем с bcrypt-хэшем пароля из конфигурации.
	ms.EXPECT().StaffByEmail(gomock.Any(), "admin@college.edu").Return(nil, storage.ErrNotFound)
	ms.EXPECT().SaveStaff(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.StaffUser) error {
			require.Equal(t, "admin@college.edu", u.Email)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("S3cure-pass")))
			return nil
		})
	require.NoError(t, s.EnsureAdmin(context.Background()))

	// Гонка с параллельным инстансом — не ошибка.
	ms.EXPECT().StaffByEmail(gomock.Any(), "admin@college.edu").Return(nil, storage.ErrNotFound)
	ms.EXPECT().SaveStaff(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	require.NoError(t, s.EnsureAdmin(context.Background()))
}

// Пустые AdminEmail/AdminPassword отключают сидирование.
func TestService_EnsureAdmin_Disabled(t *testing.T) {
	s, _, ctrl := newAuthService(t)
	defer ctrl.Finish()

	s.cfg.Auth.AdminEmail = ""
	require.NoError(t, s.EnsureAdmin(context.Background()))
}
