package server

import (
	"context"
	"log"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/swapdesk/swapdesk/internal/config"
	"github.com/swapdesk/swapdesk/internal/store"
	"github.com/swapdesk/swapdesk/internal/swap"
)

// PriceSource is the upstream feed collaborator; tests substitute a stub.
type PriceSource interface {
	Fetch(ctx context.Context) ([]swap.PriceRow, error)
}

type Server struct {
	store  *store.Store
	source PriceSource
	cfg    *config.Config
	router chi.Router
	addr   string
}

func New(st *store.Store, source PriceSource, cfg *config.Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	s := &Server{store: st, source: source, cfg: cfg, router: r, addr: cfg.ListenAddr}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.health)

		r.Get("/tokens", s.listTokens)
		r.Get("/quote", s.getQuote)

		r.Post("/swaps", s.createSwap)
		r.Get("/swaps", s.listSwaps)
	})

	return s
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) ListenAndServe() error {
	log.Printf("swapdesk server listening on %s", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}

func (s *Server) Serve(ln net.Listener) error {
	log.Printf("swapdesk server listening on %s", ln.Addr())
	return http.Serve(ln, s.router)
}

func (s *Server) Handler() http.Handler {
	return s.router
}
