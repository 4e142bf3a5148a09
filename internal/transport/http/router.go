// http собирает REST-поверхность консоли: chi-роутер, цепочку middleware
// и регистрацию всех маршрутов.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pribylovaa/college-console/internal/live"
	"github.com/pribylovaa/college-console/internal/service"
	"github.com/pribylovaa/college-console/internal/transport/http/handlers"
	"github.com/pribylovaa/college-console/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger  *slog.Logger
	Timeout time.Duration
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
// Всё под /api, кроме /api/auth/login, гейтится JWT-мидлваром;
// /livez, /healthz и /metrics остаются открытыми.
func NewRouter(svc *service.Service, hub *live.Hub, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // длительность/в полёте по маршрутам
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	h := handlers.New(svc)

	// Служебные эндпойнты — вне auth.
	root.Get("/livez", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	root.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	root.Method(http.MethodGet, "/metrics", promhttp.Handler())

	api := chi.NewRouter()

	// Вход — единственный открытый маршрут под /api.
	api.Post("/auth/login", h.Login)

	// Остальные маршруты — только с валидным токеном.
	api.Group(func(r chi.Router) {
		r.Use(middleware.Auth(svc))

		registerRoutes(r, h, hub)
	})

	root.Mount("/api", api)

	return root
}

// registerRoutes — единая точка регистрации защищённых REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers, hub *live.Hub) {
	// dashboard
	r.Get("/dashboard/counts", h.DashboardCounts)

	// buzz
	r.Get("/buzz", h.ListBuzz)
	r.Post("/buzz", h.CreateBuzz)
	r.Put("/buzz/{id}", h.UpdateBuzz)
	r.Delete("/buzz/{id}", h.DeleteBuzz)

	// inquiries (только чтение)
	r.Get("/inquiries", h.ListInquiries)

	// question papers
	r.Get("/question-papers", h.ListPapers)
	r.Post("/question-papers", h.UploadPaper)
	r.Delete("/question-papers/{id}", h.DeletePaper)

	// exam circulars
	r.Get("/exam-circulars", h.ListCirculars)
	r.Post("/exam-circulars", h.UploadCircular)
	r.Delete("/exam-circulars/{id}", h.DeleteCircular)

	// events (фиксированные ключи)
	r.Get("/events/{key}", h.GetEvent)
	r.Put("/events/{key}", h.SaveEvent)

	// magazine (единственный документ)
	r.Get("/magazine", h.GetMagazine)
	r.Put("/magazine", h.SaveMagazine)
	r.Delete("/magazine", h.DeleteMagazine)

	// live-канал изменений
	r.Get("/live", hub.Handler())
}
