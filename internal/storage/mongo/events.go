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
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// eventDoc — документ коллекции `events`. _id — рукописный ключ
// ("mat-kabbadi", "footprints"), а не сгенерированный ObjectID.
type eventDoc struct {
	Key           string    `bson:"_id"`
	Heading       string    `bson:"heading"`
	Description   string    `bson:"description"`
	GoogleFormURL string    `bson:"google_form_url"`
	FlipbookURL   string    `bson:"flipbook_url"`
	Timing        []string  `bson:"timing,omitempty"`
	GetInTouch    string    `bson:"get_in_touch,omitempty"`
	Venue         string    `bson:"venue,omitempty"`
	GoogleMapURL  string    `bson:"google_map_url,omitempty"`
	UpdatedAt     time.Time `bson:"updated_at"`
}

func (d eventDoc) toModel() models.EventSection {
	return models.EventSection{
		Key:           d.Key,
		Heading:       d.Heading,
		Description:   d.Description,
		GoogleFormURL: d.GoogleFormURL,
		FlipbookURL:   d.FlipbookURL,
		Timing:        d.Timing,
		GetInTouch:    d.GetInTouch,
		Venue:         d.Venue,
		GoogleMapURL:  d.GoogleMapURL,
		UpdatedAt:     d.UpdatedAt.UTC(),
	}
}

// EventByKey возвращает документ события по фиксированному ключу.
// Если документа нет — storage.ErrNotFound.
func (m *Mongo) EventByKey(ctx context.Context, key string) (*models.EventSection, error) {
	const op = "storage/mongo/EventByKey"

	key = strings.TrimSpace(key)
	if key == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	var doc eventDoc
	if err := m.events.FindOne(ctx, bson.D{{Key: "_id", Value: key}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := doc.toModel()
	return &out, nil
}

// UpsertEvent перезаписывает документ события целиком (создаёт при отсутствии).
// Контракта частичного патча нет: последний писатель побеждает.
func (m *Mongo) UpsertEvent(ctx context.Context, ev models.EventSection) error {
	const op = "storage/mongo/UpsertEvent"

	key := strings.TrimSpace(ev.Key)
	if key == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	doc := eventDoc{
		Key:           key,
		Heading:       ev.Heading,
		Description:   ev.Description,
		GoogleFormURL: ev.GoogleFormURL,
		FlipbookURL:   ev.FlipbookURL,
		Timing:        ev.Timing,
		GetInTouch:    ev.GetInTouch,
		Venue:         ev.Venue,
		GoogleMapURL:  ev.GoogleMapURL,
		UpdatedAt:     toMS(time.Now()),
	}

	_, err := m.events.ReplaceOne(ctx,
		bson.D{{Key: "_id", Value: key}},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
