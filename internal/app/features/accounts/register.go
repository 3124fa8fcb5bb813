package accounts

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/system/htmlsanitize"
	"github.com/ashiquzzaman/mongocms/internal/app/system/password"
	"github.com/ashiquzzaman/mongocms/internal/app/system/timeouts"
	"github.com/ashiquzzaman/mongocms/internal/domain/models"
)

type registerForm struct {
	UserName    string `json:"user_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

// HandleRegister creates a new account with a hashed password and a
// fresh security stamp.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var form registerForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	userName := htmlsanitize.Strip(form.UserName)
	email := strings.TrimSpace(strings.ToLower(form.Email))
	if userName == "" || email == "" {
		writeError(w, http.StatusBadRequest, "user_name and email are required")
		return
	}
	if len(form.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	ctx, cancel := timeouts.WithLong(r.Context())
	defer cancel()

	existing, err := h.Users.FindByName(ctx, userName)
	if err != nil {
		h.Log.Error("register lookup failed",
			zap.String("user_name", userName), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not register")
		return
	}
	if existing != nil {
		writeError(w, http.StatusConflict, "user name is already taken")
		return
	}

	hash, err := password.Hash(form.Password)
	if err != nil {
		h.Log.Error("password hash failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not register")
		return
	}

	user := &models.User{
		UserName:    userName,
		Email:       email,
		PhoneNumber: htmlsanitize.Strip(form.PhoneNumber),
		Roles:       []string{},
	}
	if err := h.Users.SetPasswordHash(user, hash); err != nil {
		writeError(w, http.StatusInternalServerError, "could not register")
		return
	}
	if err := h.Users.SetSecurityStamp(user, uuid.NewString()); err != nil {
		writeError(w, http.StatusInternalServerError, "could not register")
		return
	}

	if err := h.Users.Create(ctx, user); err != nil {
		h.Log.Error("register create failed",
			zap.String("user_name", userName), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not register")
		return
	}

	h.Log.Info("account registered",
		zap.String("id", user.ID.Hex()),
		zap.String("user_name", userName))
	writeJSON(w, http.StatusCreated, viewOf(user))
}
