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

// circularDoc — документ коллекции `exam-circulars`.
type circularDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	FileName    string             `bson:"file_name"`
	PDFURL      string             `bson:"pdf_url"`
	StoragePath string             `bson:"storage_path"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d circularDoc) toModel() models.ExamCircular {
	return models.ExamCircular{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		FileName:    d.FileName,
		PDFURL:      d.PDFURL,
		StoragePath: d.StoragePath,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

// CreateCircular вставляет метаданные загруженного циркуляра.
func (m *Mongo) CreateCircular(ctx context.Context, c models.ExamCircular) (*models.ExamCircular, error) {
	const op = "storage/mongo/CreateCircular"

	doc := circularDoc{
		Title:       c.Title,
		FileName:    c.FileName,
		PDFURL:      c.PDFURL,
		StoragePath: c.StoragePath,
		CreatedAt:   toMS(time.Now()),
	}

	res, err := m.circulars.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	doc.ID = oid
	out := doc.toModel()
	return &out, nil
}

// DeleteCircular удаляет метаданные по id. Если записи нет — storage.ErrNotFound.
func (m *Mongo) DeleteCircular(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteCircular"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.circulars.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// CircularByID возвращает циркуляр по идентификатору.
func (m *Mongo) CircularByID(ctx context.Context, id string) (*models.ExamCircular, error) {
	const op = "storage/mongo/CircularByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc circularDoc
	if err := m.circulars.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// ListCirculars возвращает страницу циркуляров.
// Сортировка: created_at DESC, _id DESC. При некорректном курсоре — storage.ErrInvalidCursor.
func (m *Mongo) ListCirculars(ctx context.Context, opts models.ListOptions) (*models.Page[models.ExamCircular], error) {
	const op = "storage/mongo/ListCirculars"

	limit := limitOrDefault(m.cfg, opts.Limit)

	filter := bson.D{}
	if strings.TrimSpace(opts.Cursor) != "" {
		t, oid, decErr := decodeCursor(opts.Cursor)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, keysetFilter(t, oid))
	}

	cur, err := m.circulars.Find(ctx, filter, options.Find().SetSort(sortCreatedDesc()).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.ExamCircular
	var lastDoc circularDoc
	for cur.Next(ctx) {
		var doc circularDoc
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

	return &models.Page[models.ExamCircular]{
		Items:      items,
		NextCursor: next,
	}, nil
}

// CountCirculars возвращает полный размер коллекции.
func (m *Mongo) CountCirculars(ctx context.Context) (int64, error) {
	const op = "storage/mongo/CountCirculars"

	n, err := m.circulars.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
