package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pribylovaa/college-console/pkg/log"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

// Login выполняет вход персонала по email+пароль и выпускает access-токен.
//
// Поведение/ошибки:
//   - ErrInvalidCredentials — невалидный email, пустой пароль, пользователь
//     не найден или пароль не совпал (ответ не различает эти случаи);
//   - ErrInternal — иные ошибки стораджа.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	const op = "service/auth/Login"

	lg := log.From(ctx).With("op", op)

	normEmail, err := normalizeEmail(email)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	if len(password) == 0 {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	user, err := s.storage.StaffByEmail(ctx, normEmail)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			lg.Warn("login for unknown email")
			return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		lg.Error("storage error on StaffByEmail", "err", err)
		return "", fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		lg.Warn("password mismatch", "user_id", user.ID.String())
		return "", fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	token, err := s.generateAccessToken(ctx, user.ID, user.Email, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return token, nil
}

// Authenticate проверяет access-токен и возвращает идентификатор и email
// пользователя. Используется транспортным middleware.
//
// Поведение/ошибки:
//   - ErrTokenExpired — срок действия истёк;
//   - ErrInvalidToken — любой иной дефект токена.
func (s *Service) Authenticate(tokenStr string) (uuid.UUID, string, error) {
	return s.validateAccessToken(tokenStr)
}

// EnsureAdmin сидирует учётную запись администратора из конфигурации,
// если её ещё нет в хранилище. Вызывается один раз на старте; пустые
// AdminEmail/AdminPassword отключают сидирование.
func (s *Service) EnsureAdmin(ctx context.Context) error {
	const op = "service/auth/EnsureAdmin"

	lg := log.From(ctx).With("op", op)

	if s.cfg.Auth.AdminEmail == "" || s.cfg.Auth.AdminPassword == "" {
		lg.Info("admin seeding disabled")
		return nil
	}

	normEmail, err := normalizeEmail(s.cfg.Auth.AdminEmail)
	if err != nil {
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	_, err = s.storage.StaffByEmail(ctx, normEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		lg.Error("storage error on StaffByEmail", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	now := time.Now().UTC()
	user := &models.StaffUser{
		ID:           uuid.New(),
		Email:        normEmail,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveStaff(ctx, user); err != nil {
		// Параллельный инстанс успел первым — это не ошибка.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return nil
		}

		lg.Error("storage error on SaveStaff", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	lg.Info("admin account seeded", "email", normEmail)

	return nil
}

// normalizeEmail валидирует и нормализует email (нижний регистр, без пробелов).
func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errors.New("invalid email format")
	}

	return email, nil
}
