package countries

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/system/timeouts"
)

// HandleDelete removes a country by id. Deleting an id that no longer
// exists is treated as success.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid country id")
		return
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	if err := h.Repo.Delete(ctx, id); err != nil {
		h.Log.Error("delete country failed",
			zap.String("id", id.Hex()), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not delete country")
		return
	}

	h.Log.Info("country deleted", zap.String("id", id.Hex()))
	w.WriteHeader(http.StatusNoContent)
}
