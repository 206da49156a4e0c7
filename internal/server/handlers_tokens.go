package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/swapdesk/swapdesk/internal/store"
	"github.com/swapdesk/swapdesk/internal/swap"
)

// loadCatalog fetches the upstream feed and normalizes it. A successful
// fetch is snapshotted; on failure the last good snapshot backs the catalog
// so the desk keeps quoting on stale prices rather than nothing.
func (s *Server) loadCatalog(ctx context.Context) ([]swap.Token, error) {
	rows, err := s.source.Fetch(ctx)
	if err == nil {
		if saveErr := s.store.SaveSnapshot(ctx, rows, time.Now()); saveErr != nil {
			log.Printf("save price snapshot: %v", saveErr)
		}
		return swap.NormalizeCatalog(rows, s.cfg.IconBaseURL), nil
	}

	var cached []swap.PriceRow
	if _, snapErr := s.store.LatestSnapshot(ctx, &cached); snapErr != nil {
		if errors.Is(snapErr, store.ErrNoSnapshot) {
			return nil, err
		}
		return nil, snapErr
	}
	log.Printf("upstream fetch failed, serving snapshot: %v", err)
	return swap.NormalizeCatalog(cached, s.cfg.IconBaseURL), nil
}

func (s *Server) listTokens(w http.ResponseWriter, r *http.Request) {
	catalog, err := s.loadCatalog(r.Context())
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	if q := r.URL.Query().Get("q"); q != "" {
		results := swap.FilterTokens(catalog, q)
		if results == nil {
			results = []swap.Token{}
		}
		writeJSON(w, http.StatusOK, results)
		return
	}

	writeJSON(w, http.StatusOK, catalog)
}
