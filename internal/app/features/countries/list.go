package countries

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/system/timeouts"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// ServeList returns every country ordered by country code. The set is
// small reference data, so the sort happens here rather than in the
// store.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	list, err := h.Repo.All(ctx)
	if err != nil {
		h.Log.Error("list countries failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load countries")
		return
	}

	sort.Slice(list, func(i, j int) bool {
		return list[i].CountryCode < list[j].CountryCode
	})
	if list == nil {
		list = []*models.Country{}
	}
	writeJSON(w, http.StatusOK, list)
}

// ServeView returns a single country by id.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid country id")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
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
	writeJSON(w, http.StatusOK, country)
}
