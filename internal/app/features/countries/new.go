package countries

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/system/htmlsanitize"
	"github.com/ashiquzzaman/mongocms/internal/app/system/timeouts"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// HandleCreate inserts a new country from a JSON body.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var form countryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	code := htmlsanitize.Strip(form.CountryCode)
	name := htmlsanitize.Strip(form.CountryName)
	if code == "" || name == "" {
		writeError(w, http.StatusBadRequest, "country_code and country_name are required")
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	country := &models.Country{CountryCode: code, CountryName: name}
	if _, err := h.Repo.Create(ctx, country); err != nil {
		h.Log.Error("create country failed",
			zap.String("country_code", code), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not create country")
		return
	}

	h.Log.Info("country created",
		zap.String("id", country.ID.Hex()),
		zap.String("country_code", code))
	writeJSON(w, http.StatusCreated, country)
}
