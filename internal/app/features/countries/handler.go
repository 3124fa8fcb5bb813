package countries

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/store/dbctx"
	"github.com/ashiquzzaman/mongocms/internal/app/store/repo"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// Handler is the feature-level entry point for Countries.
type Handler struct {
	Repo *repo.Repository[models.Country]
	Log  *zap.Logger
}

// NewHandler constructs a Countries handler bound to the store Context.
func NewHandler(c *dbctx.Context, logger *zap.Logger) *Handler {
	return &Handler{
		Repo: repo.New[models.Country](c),
		Log:  logger,
	}
}

// countryForm is the JSON body accepted by create and edit.
type countryForm struct {
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
