package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pribylovaa/college-console/internal/models"
	logctx "github.com/pribylovaa/college-console/pkg/log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// documentKey приводит _id события к единому строковому виду: ObjectID —
// hex без обёртки, фиксированные строковые ключи — как есть.
func documentKey(id any) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// changeDoc — минимальная проекция события change stream.
type changeDoc struct {
	OperationType string `bson:"operationType"`
	NS            struct {
		Coll string `bson:"coll"`
	} `bson:"ns"`
	DocumentKey bson.M `bson:"documentKey"`
}

// WatchChanges открывает change stream базы и транслирует события изменения
// коллекций контента в канал models.ChangeEvent.
//
// Особенности:
//   - канал закрывается при отмене подписки или обрыве потока; переподписка —
//     забота вызывающего (live-hub переподписывается сам);
//   - cancel идемпотентен, его можно вызывать из нескольких мест;
//   - требуется replica set (ограничение change stream MongoDB).
func (m *Mongo) WatchChanges(ctx context.Context) (<-chan models.ChangeEvent, func(), error) {
	const op = "storage/mongo/WatchChanges"

	pipeline := bson.A{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "ns.coll", Value: bson.D{{Key: "$in", Value: contentCollections}}},
		}}},
	}

	wctx, cancelCtx := context.WithCancel(ctx)

	stream, err := m.db.Watch(wctx, pipeline, options.ChangeStream())
	if err != nil {
		cancelCtx()
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(chan models.ChangeEvent, 16)

	var once sync.Once
	cancel := func() {
		once.Do(cancelCtx)
	}

	go func() {
		defer close(out)
		defer func() { _ = stream.Close(context.Background()) }()

		lg := logctx.From(ctx)

		for stream.Next(wctx) {
			var ch changeDoc
			if err := stream.Decode(&ch); err != nil {
				lg.Warn("change_stream_decode_failed", "err", err.Error())
				continue
			}

			ev := models.ChangeEvent{
				Collection: ch.NS.Coll,
				Type:       ch.OperationType,
				At:         time.Now().UTC(),
			}
			if id, ok := ch.DocumentKey["_id"]; ok {
				ev.Key = documentKey(id)
			}

			select {
			case out <- ev:
			case <-wctx.Done():
				return
			}
		}

		if err := stream.Err(); err != nil && wctx.Err() == nil {
			lg.Warn("change_stream_closed", "err", err.Error())
		}
	}()

	return out, cancel, nil
}
