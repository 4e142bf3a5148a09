package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// inquiryDoc — документ коллекции `inquiry`. Записи создаёт публичный сайт,
// консоль их только читает.
type inquiryDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	FullName    string             `bson:"full_name"`
	Email       string             `bson:"email"`
	PhoneNumber string             `bson:"phone_number"`
	Comments    string             `bson:"comments"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d inquiryDoc) toModel() models.Inquiry {
	return models.Inquiry{
		ID:          d.ID.Hex(),
		FullName:    d.FullName,
		Email:       d.Email,
		PhoneNumber: d.PhoneNumber,
		Comments:    d.Comments,
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

// ListInquiries возвращает страницу обращений.
// Сортировка: created_at DESC, _id DESC. При некорректном курсоре — storage.ErrInvalidCursor.
func (m *Mongo) ListInquiries(ctx context.Context, opts models.ListOptions) (*models.Page[models.Inquiry], error) {
	const op = "storage/mongo/ListInquiries"

	limit := limitOrDefault(m.cfg, opts.Limit)

	filter := bson.D{}
	if strings.TrimSpace(opts.Cursor) != "" {
		t, oid, decErr := decodeCursor(opts.Cursor)
		if decErr != nil {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidCursor)
		}

		filter = append(filter, keysetFilter(t, oid))
	}

	cur, err := m.inquiry.Find(ctx, filter, options.Find().SetSort(sortCreatedDesc()).SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Inquiry
	var lastDoc inquiryDoc
	for cur.Next(ctx) {
		var doc inquiryDoc
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

	return &models.Page[models.Inquiry]{
		Items:      items,
		NextCursor: next,
	}, nil
}

// CountInquiries возвращает полный размер коллекции.
func (m *Mongo) CountInquiries(ctx context.Context) (int64, error) {
	const op = "storage/mongo/CountInquiries"

	n, err := m.inquiry.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return n, nil
}
