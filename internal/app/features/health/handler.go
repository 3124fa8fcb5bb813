// Package health exposes liveness and readiness endpoints.
package health

import (
	"encoding/json"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/system/timeouts"
)

// Handler answers health probes.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// ServeLive reports process liveness only.
func (h *Handler) ServeLive(w http.ResponseWriter, _ *http.Request) {
	writeStatus(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeReady reports readiness, including database reachability.
func (h *Handler) ServeReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithPing(r.Context())
	defer cancel()

	if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Warn("mongo ping failed", zap.Error(err))
		writeStatus(w, http.StatusServiceUnavailable, map[string]string{
			"status": "degraded",
			"mongo":  "unreachable",
		})
		return
	}
	writeStatus(w, http.StatusOK, map[string]string{
		"status": "ok",
		"mongo":  "ok",
	})
}

func writeStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
