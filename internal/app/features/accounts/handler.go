package accounts

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/store/dbctx"
	"github.com/ashiquzzaman/mongocms/internal/app/store/identity"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

// Handler is the feature-level entry point for Accounts.
type Handler struct {
	Users *identity.Store
	Log   *zap.Logger
}

// NewHandler constructs an Accounts handler bound to the store Context.
func NewHandler(c *dbctx.Context, logger *zap.Logger) *Handler {
	return &Handler{
		Users: identity.FromContext(c),
		Log:   logger,
	}
}

// userView is the JSON shape returned for a user. Credential fields
// stay out of it.
type userView struct {
	ID                   string             `json:"id"`
	UserName             string             `json:"user_name"`
	Email                string             `json:"email"`
	PhoneNumber          string             `json:"phone_number,omitempty"`
	PhoneNumberConfirmed bool               `json:"phone_number_confirmed"`
	TwoFactorEnabled     bool               `json:"two_factor_enabled"`
	Roles                []string           `json:"roles"`
	Claims               []models.UserClaim `json:"claims,omitempty"`
	Logins               []models.UserLogin `json:"logins,omitempty"`
}

func viewOf(u *models.User) userView {
	v := userView{
		ID:                   u.ID.Hex(),
		UserName:             u.UserName,
		Email:                u.Email,
		PhoneNumber:          u.PhoneNumber,
		PhoneNumberConfirmed: u.PhoneNumberConfirmed,
		TwoFactorEnabled:     u.TwoFactorEnabled,
		Roles:                u.Roles,
		Claims:               u.Claims,
		Logins:               u.Logins,
	}
	if v.Roles == nil {
		v.Roles = []string{}
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
