package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// magazineKey — фиксированный ключ единственного документа журнала.
// Логически журнал один; ключ вместо сгенерированного id снимает проблему
// «коллекция из одного элемента» исходной версии.
const magazineKey = "current"

// magazineDoc — документ коллекции `magazines`.
type magazineDoc struct {
	Key       string    `bson:"_id"`
	Name      string    `bson:"name"`
	URL       string    `bson:"url"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d magazineDoc) toModel() models.Magazine {
	return models.Magazine{
		Name:      d.Name,
		URL:       d.URL,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// Magazine возвращает единственный документ журнала.
// Если журнала ещё нет — storage.ErrNotFound.
func (m *Mongo) Magazine(ctx context.Context) (*models.Magazine, error) {
	const op = "storage/mongo/Magazine"

	var doc magazineDoc
	if err := m.magazines.FindOne(ctx, bson.D{{Key: "_id", Value: magazineKey}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// UpsertMagazine перезаписывает документ журнала (создаёт при отсутствии).
// created_at сохраняется от первой записи, updated_at обновляется всегда.
func (m *Mongo) UpsertMagazine(ctx context.Context, mag models.Magazine) (*models.Magazine, error) {
	const op = "storage/mongo/UpsertMagazine"

	now := toMS(time.Now())

	after := options.After
	var doc magazineDoc
	err := m.magazines.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: magazineKey}},
		bson.D{
			{Key: "$set", Value: bson.D{
				{Key: "name", Value: mag.Name},
				{Key: "url", Value: mag.URL},
				{Key: "updated_at", Value: now},
			}},
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "created_at", Value: now},
			}},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(after),
	).Decode(&doc)

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// DeleteMagazine удаляет документ журнала. Если его нет — storage.ErrNotFound.
func (m *Mongo) DeleteMagazine(ctx context.Context) error {
	const op = "storage/mongo/DeleteMagazine"

	res, err := m.magazines.DeleteOne(ctx, bson.D{{Key: "_id", Value: magazineKey}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
