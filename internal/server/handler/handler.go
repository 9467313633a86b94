package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/muyun-chen/stroke-sort/internal/collation"
	"github.com/muyun-chen/stroke-sort/internal/server/cache"
	apperrors "github.com/muyun-chen/stroke-sort/pkg/errors"
	"github.com/muyun-chen/stroke-sort/pkg/logger"
	"github.com/muyun-chen/stroke-sort/pkg/metrics"
)

// SortRequest is the JSON body accepted by the sort endpoint.
type SortRequest struct {
	Names []string `json:"names"`
}

// SortResponse carries the names in collation order.
type SortResponse struct {
	Sorted []string `json:"sorted"`
	Cached bool     `json:"cached"`
}

type Handler struct {
	collator *collation.Collator
	cache    *cache.ResultCache
	metrics  *metrics.Metrics
	maxNames int
	logger   *slog.Logger
}

// New creates a Handler. cache may be nil when Redis is unavailable, and m
// may be nil in tests.
func New(collator *collation.Collator, c *cache.ResultCache, m *metrics.Metrics, maxNames int) *Handler {
	return &Handler{
		collator: collator,
		cache:    c,
		metrics:  m,
		maxNames: maxNames,
		logger:   slog.Default().With("component", "sort-handler"),
	}
}

// Sort handles POST /api/v1/sort.
func (h *Handler) Sort(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req SortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if len(req.Names) == 0 {
		h.writeError(w, http.StatusBadRequest, "names is required and must not be empty")
		return
	}
	if h.maxNames > 0 && len(req.Names) > h.maxNames {
		h.writeError(w, http.StatusRequestEntityTooLarge, "too many names")
		return
	}

	start := time.Now()
	sorted, cached, err := h.sort(ctx, req.Names)
	if err != nil {
		statusCode := apperrors.HTTPStatusCode(err)
		log.Error("sort failed", "error", err, "status_code", statusCode)
		outcome := "error"
		if errors.Is(err, apperrors.ErrEmptyName) {
			outcome = "empty_name"
		}
		h.observe(outcome, len(req.Names), start)
		h.writeError(w, statusCode, err.Error())
		return
	}

	outcome := "ok"
	if cached {
		outcome = "cached"
	}
	h.observe(outcome, len(sorted), start)
	log.Info("names sorted", "count", len(sorted), "cached", cached)
	h.writeJSON(w, http.StatusOK, SortResponse{Sorted: sorted, Cached: cached})
}

// CacheStats handles GET /api/v1/cache/stats.
func (h *Handler) CacheStats(w http.ResponseWriter, r *http.Request) {
	if h.cache == nil {
		h.writeJSON(w, http.StatusOK, map[string]any{"enabled": false})
		return
	}
	hits, misses := h.cache.Stats()
	h.writeJSON(w, http.StatusOK, map[string]any{
		"enabled": true,
		"hits":    hits,
		"misses":  misses,
	})
}

func (h *Handler) sort(ctx context.Context, names []string) ([]string, bool, error) {
	compute := func() ([]string, error) {
		sorted := make([]string, len(names))
		copy(sorted, names)
		if err := h.collator.Sort(sorted); err != nil {
			return nil, err
		}
		return sorted, nil
	}
	if h.cache == nil {
		sorted, err := compute()
		return sorted, false, err
	}
	sorted, cached, err := h.cache.GetOrCompute(ctx, names, compute)
	if h.metrics != nil && err == nil {
		if cached {
			h.metrics.CacheHitsTotal.Inc()
		} else {
			h.metrics.CacheMissesTotal.Inc()
		}
	}
	return sorted, cached, err
}

func (h *Handler) observe(outcome string, count int, start time.Time) {
	if h.metrics == nil {
		return
	}
	h.metrics.SortRequestsTotal.WithLabelValues(outcome).Inc()
	h.metrics.SortDuration.Observe(time.Since(start).Seconds())
	h.metrics.SortBatchSize.Observe(float64(count))
	if outcome == "ok" || outcome == "cached" {
		h.metrics.NamesSortedTotal.Add(float64(count))
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to write response", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
