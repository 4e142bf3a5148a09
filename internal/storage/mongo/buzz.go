package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buzzDoc — представление документа коллекции `buzz`.
type buzzDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Category  string             `bson:"category"`
	Date      time.Time          `bson:"date"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d buzzDoc) toModel() models.Buzz {
	return models.Buzz{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Category:  d.Category,
		Date:      d.Date.UTC(),
		Content:   d.Content,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}

// CreateBuzz вставляет новую запись; created_at проставляется на сервере
// и дальше служит единственным ключом сортировки списков.
func (m *Mongo) CreateBuzz(ctx context.Context, b models.Buzz) (*models.Buzz, error) {
	const op = "storage/mongo/CreateBuzz"

	now := toMS(time.Now())
	doc := buzzDoc{
		Name:      b.Name,
		Category:  b.Category,
		Date:      toMS(b.Date),
		Content:   b.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res, err := m.buzz.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		// Mongo всегда возвращает ObjectID.
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := doc.toModel()
	return &out, nil
}

// UpdateBuzz перезаписывает все редактируемые поля записи по id.
// created_at не трогаем: позиция записи в списках не должна меняться от правок.
func (m *Mongo) UpdateBuzz(ctx context.Context, id string, b models.Buzz) (*models.Buzz, error) {
	const op = "storage/mongo/UpdateBuzz"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	after := options.After
	var doc buzzDoc
	err = m.buzz.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: b.Name},
			{Key: "category", Value: b.Category},
			{Key: "date", Value: toMS(b.Date)},
			{Key: "content", Value: b.Content},
			{Key: "updated_at", Value: toMS(time.Now())},
		}}},
		options.FindOneAndUpdate().SetReturnDocument(after),
	).Decode(&doc)

	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// DeleteBuzz удаляет запись по id. Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) DeleteBuzz(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteBuzz"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.buzz.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// ListBuzz возвращает страницу записей.
// Сортировка: created_at DESC, _id DESC. При некорректном курсоре — storage.ErrInvalidCursor.
func (m *Mongo) ListBuzz(ctx context.Context, opts models.ListOptions) (*models.Page[models.Buzz], error) {
	const op = "storage/mongo/ListBuzz"

	limit := limitOrDefault(m.cfg, opts.Limit)

	filter := bson.D{}
	if strings.TrimSpace(opts.Cursor) != "" {
		t, oid, decErr := decodeCursor(opts.Cursor)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, keysetFilter(t, oid))
	}

	cur, err := m.buzz.Find(ctx, filter, options.Find().SetSort(sortCreatedDesc()).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Buzz
	var lastDoc buzzDoc
	for cur.Next(ctx) {
		var doc buzzDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, doc.toModel())
		lastDoc = doc
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	var next string
	if len(items) > 0 {
		next = encodeCursor(lastDoc.CreatedAt, lastDoc.ID)
	}

	return &models.Page[models.Buzz]{
		Items:      items,
		NextCursor: next,
	}, nil
}

// CountBuzz возвращает полный размер коллекции.
func (m *Mongo) CountBuzz(ctx context.Context) (int64, error) {
	const op = "storage/mongo/CountBuzz"

	n, err := m.buzz.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
