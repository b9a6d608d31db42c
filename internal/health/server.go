package health

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server — небольшой HTTP-сервер с единственной конечной точкой проверки
// работоспособности. Нужен оркестраторам для liveness-проб; бизнес-логики
// не несет.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New создает новый экземпляр Server на указанном порту.
func New(port int, logger *slog.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: NewRouter(),
		},
		logger: logger,
	}
}

// NewRouter собирает маршрутизатор health-сервера.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
		})
	})

	return r
}

// Start запускает сервер и блокируется до его остановки.
func (s *Server) Start() error {
	s.logger.Info("health server listening", slog.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("health server failed: %w", err)
	}
	return nil
}

// Shutdown корректно останавливает сервер.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
