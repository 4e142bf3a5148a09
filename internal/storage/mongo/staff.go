package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// staffDoc — документ коллекции `staff-users`. _id — UUID строкой.
type staffDoc struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

func (d staffDoc) toModel() (*models.StaffUser, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}

	return &models.StaffUser{
		ID:           id,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}, nil
}

// StaffByEmail возвращает пользователя по email (без нормализации на этом
// уровне: email приводит к каноничному виду сервисный слой).
func (m *Mongo) StaffByEmail(ctx context.Context, email string) (*models.StaffUser, error) {
	const op = "storage/mongo/StaffByEmail"

	var doc staffDoc
	if err := m.staff.FindOne(ctx, bson.D{{Key: "email", Value: strings.TrimSpace(email)}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: parse id: %w", op, err)
	}

	return out, nil
}

// SaveStaff сохраняет нового пользователя.
// Конфликт по email — storage.ErrAlreadyExists (уникальный индекс).
func (m *Mongo) SaveStaff(ctx context.Context, u *models.StaffUser) error {
	const op = "storage/mongo/SaveStaff"

	if u == nil {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	doc := staffDoc{
		ID:           u.ID.String(),
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    toMS(u.CreatedAt),
		UpdatedAt:    toMS(u.UpdatedAt),
	}

	if _, err := m.staff.InsertOne(ctx, doc); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
