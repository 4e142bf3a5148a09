// mongo реализует storage.Storage поверх MongoDB.
//
// Раскладка:
//   - mongo.go — подключение, коллекции, индексы, счётчики;
//   - cursor.go — кодек курсора пагинации (created_at, _id);
//   - buzz.go / inquiry.go / papers.go / circulars.go — списочные коллекции;
//   - events.go / magazine.go — документы с фиксированными ключами;
//   - staff.go — учётные записи персонала;
//   - watch.go — подписка на change stream для live-канала.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/college-console/internal/config"
	"github.com/pribylovaa/college-console/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Имена коллекций — часть wire-контракта с публичным сайтом колледжа.
const (
	buzzCollection      = "buzz"
	inquiryCollection   = "inquiry"
	eventsCollection    = "events"
	papersCollection    = "question-papers"
	circularsCollection = "exam-circulars"
	magazinesCollection = "magazines"
	staffCollection     = "staff-users"

	defaultDBName = "college-console"
)

// contentCollections — коллекции, попадающие в счётчики дашборда и live-канал.
var contentCollections = []string{
	buzzCollection,
	inquiryCollection,
	eventsCollection,
	papersCollection,
	circularsCollection,
	magazinesCollection,
}

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	cfg    *config.Config
	client *mongodriver.Client
	db     *mongodriver.Database

	buzz      *mongodriver.Collection
	inquiry   *mongodriver.Collection
	events    *mongodriver.Collection
	papers    *mongodriver.Collection
	circulars *mongodriver.Collection
	magazines *mongodriver.Collection
	staff     *mongodriver.Collection
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Storage = (*Mongo)(nil)

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции
// и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(cfg.DB.URL)
	db := cli.Database(dbName)

	m := &Mongo{
		cfg:       cfg,
		client:    cli,
		db:        db,
		buzz:      db.Collection(buzzCollection),
		inquiry:   db.Collection(inquiryCollection),
		events:    db.Collection(eventsCollection),
		papers:    db.Collection(papersCollection),
		circulars: db.Collection(circularsCollection),
		magazines: db.Collection(magazinesCollection),
		staff:     db.Collection(staffCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(context.Background())
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые консоли:
//   - created_at(desc) + _id(desc) на каждой списочной коллекции — порядок
//     выдачи и keyset-курсор;
//   - уникальный email персонала.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	listIdx := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
			Options: options.Index().SetName("created_desc_id_desc"),
		},
	}

	for _, col := range []*mongodriver.Collection{m.buzz, m.inquiry, m.papers, m.circulars} {
		if _, err := col.Indexes().CreateMany(ctx, listIdx); err != nil {
			return fmt.Errorf("mongo ensure indexes (%s): %w", col.Name(), err)
		}
	}

	_, err := m.staff.Indexes().CreateOne(ctx, mongodriver.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("email_unique").SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("mongo ensure indexes (%s): %w", staffCollection, err)
	}

	return nil
}

// CollectionCounts возвращает количество документов в каждой коллекции
// контента — плоская карта для сводного экрана дашборда.
func (m *Mongo) CollectionCounts(ctx context.Context) (map[string]int64, error) {
	const op = "storage/mongo/CollectionCounts"

	out := make(map[string]int64, len(contentCollections))
	for _, name := range contentCollections {
		n, err := m.db.Collection(name).CountDocuments(ctx, bson.D{})
		if err != nil {
			return nil, fmt.Errorf("%s: count %s: %w", op, name, err)
		}
		out[name] = n
	}

	return out, nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
