package countries

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/system/htmlsanitize"
	"github.com/ashiquzzaman/mongocms/internal/app/system/timeouts"
)

// HandleEdit updates an existing country. Fields absent from the body
// keep their stored values.
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid country id")
		return
	}

	var form countryForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	country, err := h.Repo.GetByID(ctx, id)
	if err != nil {
		h.Log.Error("get country failed",
			zap.String("id", id.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load country")
		return
	}
	if country == nil {
		writeError(w, http.StatusNotFound, "country not found")
		return
	}

	if code := htmlsanitize.Strip(form.CountryCode); code != "" {
		country.CountryCode = code
	}
	if name := htmlsanitize.Strip(form.CountryName); name != "" {
		country.CountryName = name
	}

	if err := h.Repo.Update(ctx, country); err != nil {
		h.Log.Error("update country failed",
			zap.String("id", id.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not update country")
		return
	}

	h.Log.Info("country updated", zap.String("id", id.Hex()))
	writeJSON(w, http.StatusOK, country)
}
