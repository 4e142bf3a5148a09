package mongo

// Интеграционные тесты хранилища (MongoDB в testcontainers).
//
// Запуск:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/mongo -v -count=1
//
// Без GO_TEST_INTEGRATION выполняются только юнит-тесты курсора/лимитов,
// интеграционные пропускаются.

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pribylovaa/college-console/internal/config"
	"github.com/pribylovaa/college-console/internal/models"
	"github.com/pribylovaa/college-console/internal/storage"
)

// testTimeout — общий дедлайн на операции с БД в тестах.
const testTimeout = 10 * time.Second

// TestMain запускает MongoDB в контейнере один раз на весь пакет тестов.
// Адрес контейнера прокидывается в ENV DATABASE_URL, а каждый тест
// создаёт свою БД с уникальным именем (см. newTestConfig).
func TestMain(m *testing.M) {
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		os.Exit(m.Run())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "mongo:7.0",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForLog("Waiting for connections").WithStartupTimeout(90 * time.Second),
	}

	mongoC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start mongo testcontainer: %v\n", err)
		os.Exit(1)
	}

	host, err := mongoC.Host(ctx)
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get container host: %v\n", err)
		os.Exit(1)
	}

	port, err := mongoC.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = mongoC.Terminate(ctx)
		fmt.Fprintf(os.Stderr, "failed to get mapped port: %v\n", err)
		os.Exit(1)
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	_ = os.Setenv("DATABASE_URL", uri)

	code := m.Run()

	_ = mongoC.Terminate(context.Background())
	os.Exit(code)
}

// newTestConfig создаёт конфиг с отдельной тестовой БД.
func newTestConfig(t *testing.T) *config.Config {
	t.Helper()

	baseURL := os.Getenv("DATABASE_URL")
	if baseURL == "" {
		baseURL = "mongodb://localhost:27017"
	}

	dbName := "console_test_" + uuid.New().String()

	return &config.Config{
		DB: config.DBConfig{
			URL: baseURL + "/" + dbName,
		},
		Limits: config.LimitsConfig{
			Default: 10,
			Max:     100,
		},
	}
}

// mustNewMongo создаёт подключение к тестовой БД и регистрирует очистку.
func mustNewMongo(t *testing.T, cfg *config.Config) *Mongo {
	t.Helper()

	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration test: set GO_TEST_INTEGRATION=1 to run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	m, err := New(ctx, cfg)
	if err != nil {
		t.Fatalf("cannot connect to MongoDB in container: %v (DATABASE_URL=%s)", err, cfg.DB.URL)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
		defer cancel()
		_ = m.db.Drop(ctx)
		_ = m.Close(ctx)
	})

	return m
}

// encode/decode должны быть взаимно обратимыми.
func TestEncodeDecodeCursor(t *testing.T) {
	now := time.Now().UTC()
	oid := primitive.NewObjectID()

	token := encodeCursor(now, oid)
	gotT, gotID, err := decodeCursor(token)
	require.NoError(t, err)
	require.True(t, gotT.Equal(now))
	require.Equal(t, oid, gotID)
}

func TestDecodeCursor_Garbage(t *testing.T) {
	for _, token := range []string{"%%%", "bm8tcGlwZQ", "MTIzfG5vdC1hbi1vaWQ"} {
		_, _, err := decodeCursor(token)
		require.Error(t, err, "token=%q", token)
	}
}

// Ключ события live-канала: hex для ObjectID, строковые ключи как есть.
func TestDocumentKey(t *testing.T) {
	oid := primitive.NewObjectID()
	require.Equal(t, oid.Hex(), documentKey(oid))
	require.Equal(t, "mat-kabbadi", documentKey("mat-kabbadi"))
	require.Equal(t, "42", documentKey(int32(42)))
}

// Граничные случаи и дефолт для размера страницы.
func TestLimitOrDefault(t *testing.T) {
	cfg := &config.Config{
		Limits: config.LimitsConfig{Default: 10, Max: 50},
	}
	tests := []struct {
		name string
		in   int32
		want int64
	}{
		{"zero->default", 0, 10},
		{"negative->default", -5, 10},
		{"less-than-max", 25, 25},
		{"more-than-max->cap", 200, 50},
	}
	for _, tt := range tests {
		if got := limitOrDefault(cfg, tt.in); got != tt.want {
			t.Errorf("%s: want %d, got %d", tt.name, tt.want, got)
		}
	}
}

// CRUD объявлений + серверный CreatedAt.
func TestBuzzCRUD(t *testing.T) {
	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	before := time.Now().UTC().Add(-time.Second)

	created, err := m.CreateBuzz(ctx, models.Buzz{
		Name:     "Tech Fest",
		Category: "fests",
		Date:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Content:  "<h1>Fest</h1>",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.True(t, created.CreatedAt.After(before))

	// Полная перезапись сохраняет created_at.
	updated, err := m.UpdateBuzz(ctx, created.ID, models.Buzz{
		Name:     "Tech Fest 2026",
		Category: "fests",
		Date:     created.Date,
		Content:  "<h1>Fest 2026</h1>",
	})
	require.NoError(t, err)
	require.Equal(t, "Tech Fest 2026", updated.Name)
	require.True(t, updated.CreatedAt.Equal(created.CreatedAt))

	_, err = m.UpdateBuzz(ctx, primitive.NewObjectID().Hex(), models.Buzz{
		Name: "x", Category: "c", Content: "<p>x</p>",
	})
	require.ErrorIs(t, err, storage.ErrNotFound)

	require.NoError(t, m.DeleteBuzz(ctx, created.ID))
	require.ErrorIs(t, m.DeleteBuzz(ctx, created.ID), storage.ErrNotFound)
}

// Пагинация: 25 записей при размере страницы 10 — 10/10/5, устойчивый
// порядок created_at DESC, _id DESC, пустой курсор за последней страницей.
func TestListBuzz_KeysetPagination(t *testing.T) {
	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	const total = 25
	for i := 0; i < total; i++ {
		_, err := m.CreateBuzz(ctx, models.Buzz{
			Name:     fmt.Sprintf("item-%02d", i),
			Category: "fests",
			Date:     time.Now().UTC(),
			Content:  "<p>x</p>",
		})
		require.NoError(t, err)
	}

	var seen []string
	cursor := ""
	sizes := []int{10, 10, 5}

	for _, want := range sizes {
		page, err := m.ListBuzz(ctx, models.ListOptions{Limit: 10, Cursor: cursor})
		require.NoError(t, err)
		require.Len(t, page.Items, want)

		for _, it := range page.Items {
			seen = append(seen, it.Name)
		}
		cursor = page.NextCursor
	}

	// Все 25 получены ровно по одному разу — страницы не пересекаются.
	require.Len(t, seen, total)
	uniq := map[string]struct{}{}
	for _, name := range seen {
		uniq[name] = struct{}{}
	}
	require.Len(t, uniq, total)

	// За последней страницей — пусто.
	page, err := m.ListBuzz(ctx, models.ListOptions{Limit: 10, Cursor: cursor})
	require.NoError(t, err)
	require.Empty(t, page.Items)
	require.Empty(t, page.NextCursor)

	// Битый курсор — ErrInvalidCursor.
	_, err = m.ListBuzz(ctx, models.ListOptions{Limit: 10, Cursor: "%%%"})
	require.ErrorIs(t, err, storage.ErrInvalidCursor)

	n, err := m.CountBuzz(ctx)
	require.NoError(t, err)
	require.EqualValues(t, total, n)
}

// Документы событий: фиксированный ключ, полная перезапись, last-writer-wins.
func TestEventsUpsert(t *testing.T) {
	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	_, err := m.EventByKey(ctx, "mat-kabbadi")
	require.ErrorIs(t, err, storage.ErrNotFound)

	first := models.EventSection{
		Key:           "mat-kabbadi",
		Heading:       "Kabbadi 2026",
		Description:   "desc",
		GoogleFormURL: "https://forms.example.com/1",
		FlipbookURL:   "https://flip.example.com/1",
		Venue:         "Old ground",
	}
	require.NoError(t, m.UpsertEvent(ctx, first))

	// Перезапись целиком: отсутствующие поля затираются.
	second := first
	second.Venue = ""
	second.Heading = "Kabbadi 2026 (updated)"
	require.NoError(t, m.UpsertEvent(ctx, second))

	got, err := m.EventByKey(ctx, "mat-kabbadi")
	require.NoError(t, err)
	require.Equal(t, "Kabbadi 2026 (updated)", got.Heading)
	require.Empty(t, got.Venue)
}

// Журнал: единственный документ, created_at выживает при перезаписи.
func TestMagazineSingleton(t *testing.T) {
	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	_, err := m.Magazine(ctx)
	require.ErrorIs(t, err, storage.ErrNotFound)

	first, err := m.UpsertMagazine(ctx, models.Magazine{Name: "Annual 2025", URL: "https://mag.example.com/2025"})
	require.NoError(t, err)
	require.False(t, first.CreatedAt.IsZero())

	second, err := m.UpsertMagazine(ctx, models.Magazine{Name: "Annual 2026", URL: "https://mag.example.com/2026"})
	require.NoError(t, err)
	require.Equal(t, "Annual 2026", second.Name)
	require.True(t, second.CreatedAt.Equal(first.CreatedAt))

	require.NoError(t, m.DeleteMagazine(ctx))
	require.ErrorIs(t, m.DeleteMagazine(ctx), storage.ErrNotFound)
}

// Персонал: email уникален.
func TestStaffUniqueEmail(t *testing.T) {
	cfg := newTestConfig(t)
	m := mustNewMongo(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), testTimeout)
	defer cancel()

	user := &models.StaffUser{
		ID:           uuid.New(),
		Email:        "staff@college.edu",
		PasswordHash: "hash",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.NoError(t, m.SaveStaff(ctx, user))

	dup := &models.StaffUser{
		ID:           uuid.New(),
		Email:        "staff@college.edu",
		PasswordHash: "other",
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	require.ErrorIs(t, m.SaveStaff(ctx, dup), storage.ErrAlreadyExists)

	got, err := m.StaffByEmail(ctx, "staff@college.edu")
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)

	_, err = m.StaffByEmail(ctx, "ghost@college.edu")
	require.ErrorIs(t, err, storage.ErrNotFound)

	n, err := m.CollectionCounts(ctx)
	require.NoError(t, err)
	// Персонал не входит в счётчики контента.
	_, ok := n["staff-users"]
	require.False(t, ok)
}
