package api

import (
	"context"
	"encoding/json"
	"net/http"
	"runtime/debug"
	"strings"
	"time"

	"go.uber.org/zap"

	"phishguard/internal/domain"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderIndex(w, "")
}

func (s *Server) handlePredict(w http.ResponseWriter, r *http.Request) {
	isJSON := strings.Contains(r.Header.Get("Content-Type"), "application/json")

	var rawURL string
	if isJSON {
		var req domain.PredictRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.respondWithException(w, err, debug.Stack())
			return
		}
		rawURL = strings.TrimSpace(req.URL)
	} else {
		rawURL = strings.TrimSpace(r.FormValue("url"))
	}

	if rawURL == "" {
		s.respondWithJSON(w, http.StatusBadRequest, map[string]string{"error": "no url provided"})
		return
	}

	if s.redisStore != nil {
		cached, err := s.redisStore.CachedPrediction(r.Context(), rawURL)
		if err != nil {
			s.logger.Warn("verdict cache lookup failed", zap.Error(err))
		} else if cached != nil {
			s.metrics.IncCacheHits()
			cached.Cached = true
			s.respondPrediction(w, isJSON, cached)
			return
		}
	}

	start := time.Now()
	pred, err := s.adapter.Predict(rawURL)
	if err != nil {
		s.metrics.IncErrors("predict_failed")
		s.logger.Error("prediction failed", zap.String("url", rawURL), zap.Error(err))
		s.respondWithException(w, err, debug.Stack())
		return
	}
	s.metrics.ObservePredict(time.Since(start))
	s.metrics.IncPredictions(pred.Meaning)

	if s.redisStore != nil {
		if err := s.redisStore.CachePrediction(r.Context(), pred); err != nil {
			s.logger.Warn("verdict cache store failed", zap.Error(err))
		}
	}
	if s.pgStore != nil {
		if err := s.pgStore.SavePrediction(r.Context(), pred); err != nil {
			s.metrics.IncErrors("history_save_failed")
			s.logger.Warn("history save failed", zap.Error(err))
		}
	}

	s.respondPrediction(w, isJSON, pred)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.pgStore == nil {
		s.respondWithError(w, http.StatusServiceUnavailable, "history storage not configured")
		return
	}

	entries, err := s.pgStore.RecentPredictions(r.Context(), s.config.HistoryLimit)
	if err != nil {
		s.logger.Error("failed to load prediction history", zap.Error(err))
		s.respondWithError(w, http.StatusInternalServerError, "could not load history")
		return
	}

	s.respondWithJSON(w, http.StatusOK, entries)
}

func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	healthStatus := map[string]string{"model": "loaded"}
	healthy := true

	if s.redisStore != nil {
		if err := s.redisStore.Ping(ctx); err != nil {
			healthStatus["redis"] = "unhealthy"
			healthy = false
			s.logger.Error("health check failed for redis", zap.Error(err))
		} else {
			healthStatus["redis"] = "healthy"
		}
	}

	if s.pgStore != nil {
		if err := s.pgStore.Ping(ctx); err != nil {
			healthStatus["postgres"] = "unhealthy"
			healthy = false
			s.logger.Error("health check failed for postgres", zap.Error(err))
		} else {
			healthStatus["postgres"] = "healthy"
		}
	}

	if !healthy {
		s.respondWithJSON(w, http.StatusServiceUnavailable, healthStatus)
		return
	}
	s.respondWithJSON(w, http.StatusOK, healthStatus)
}

// --- Helper Functions ---

// respondPrediction returns JSON for API clients and the HTML page with the
// result embedded for form submissions.
func (s *Server) respondPrediction(w http.ResponseWriter, isJSON bool, pred *domain.Prediction) {
	if isJSON {
		s.respondWithJSON(w, http.StatusOK, pred)
		return
	}
	pretty, err := json.MarshalIndent(pred, "", "  ")
	if err != nil {
		s.respondWithException(w, err, debug.Stack())
		return
	}
	s.renderIndex(w, string(pretty))
}

func (s *Server) respondWithError(w http.ResponseWriter, code int, message string) {
	s.respondWithJSON(w, code, map[string]string{"error": message})
}

// respondWithException reports an unexpected failure with its message and a
// stack trace. This is a debugging surface, not a hardened production boundary.
func (s *Server) respondWithException(w http.ResponseWriter, err error, stack []byte) {
	s.respondWithJSON(w, http.StatusInternalServerError, map[string]string{
		"error":  "exception",
		"detail": err.Error(),
		"trace":  string(stack),
	})
}

func (s *Server) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
