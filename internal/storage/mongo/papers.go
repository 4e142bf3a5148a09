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

// paperDoc — документ коллекции `question-papers`.
// pdf_url/storage_path — пара «ссылка + ключ удаления» в блоб-хранилище.
type paperDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	SubjectName string             `bson:"subject_name"`
	Category    string             `bson:"category"`
	FileName    string             `bson:"file_name"`
	PDFURL      string             `bson:"pdf_url"`
	StoragePath string             `bson:"storage_path"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d paperDoc) toModel() models.QuestionPaper {
	return models.QuestionPaper{
		ID:          d.ID.Hex(),
		SubjectName: d.SubjectName,
		Category:    d.Category,
		FileName:    d.FileName,
		PDFURL:      d.PDFURL,
		StoragePath: d.StoragePath,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

// CreateQuestionPaper вставляет метаданные загруженного билета.
func (m *Mongo) CreateQuestionPaper(ctx context.Context, p models.QuestionPaper) (*models.QuestionPaper, error) {
	const op = "storage/mongo/CreateQuestionPaper"

	doc := paperDoc{
		SubjectName: p.SubjectName,
		Category:    p.Category,
		FileName:    p.FileName,
		PDFURL:      p.PDFURL,
		StoragePath: p.StoragePath,
		CreatedAt:   toMS(time.Now()),
	}

	res, err := m.papers.InsertOne(ctx, doc)
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

// DeleteQuestionPaper удаляет метаданные по id. Если записи нет — storage.ErrNotFound.
func (m *Mongo) DeleteQuestionPaper(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteQuestionPaper"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	res, err := m.papers.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// QuestionPaperByID возвращает билет по идентификатору.
// Некорректный формат id трактуется как «нет такой записи».
func (m *Mongo) QuestionPaperByID(ctx context.Context, id string) (*models.QuestionPaper, error) {
	const op = "storage/mongo/QuestionPaperByID"

	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	var doc paperDoc
	if err := m.papers.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// ListQuestionPapers возвращает страницу билетов.
// Сортировка: created_at DESC, _id DESC. При некорректном курсоре — storage.ErrInvalidCursor.
func (m *Mongo) ListQuestionPapers(ctx context.Context, opts models.ListOptions) (*models.Page[models.QuestionPaper], error) {
	const op = "storage/mongo/ListQuestionPapers"

	limit := limitOrDefault(m.cfg, opts.Limit)

	filter := bson.D{}
	if strings.TrimSpace(opts.Cursor) != "" {
		t, oid, decErr := decodeCursor(opts.Cursor)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, keysetFilter(t, oid))
	}

	cur, err := m.papers.Find(ctx, filter, options.Find().SetSort(sortCreatedDesc()).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.QuestionPaper
	var lastDoc paperDoc
	for cur.Next(ctx) {
		var doc paperDoc
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

	return &models.Page[models.QuestionPaper]{
		Items:      items,
		NextCursor: next,
	}, nil
}

// CountQuestionPapers возвращает полный размер коллекции.
func (m *Mongo) CountQuestionPapers(ctx context.Context) (int64, error) {
	const op = "storage/mongo/CountQuestionPapers"

	n, err := m.papers.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
