package accounts

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/securecookie"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/ashiquzzaman/mongocms/internal/app/system/auth"
	"github.com/ashiquzzaman/mongocms/internal/app/system/password"
	"github.com/ashiquzzaman/mongocms/internal/app/system/timeouts"
)

type loginForm struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and issues a session cookie.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var form loginForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if form.UserName == "" || form.Password == "" {
		writeError(w, http.StatusBadRequest, "user_name and password are required")
		return
	}

	// A stale or tampered cookie from an old session key decodes to an
	// error. That is fine on login, a fresh session replaces it; log it
	// so key-rotation fallout is visible.
	if _, err := auth.Store.Get(r, auth.SessionName()); err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			h.Log.Debug("replacing undecodable session cookie", zap.Error(err))
		} else {
			h.Log.Warn("session cookie read failed", zap.Error(err))
		}
	}

	ctx, cancel := timeouts.WithMedium(r.Context())
	defer cancel()

	user, err := h.Users.FindByName(ctx, form.UserName)
	if err != nil {
		h.Log.Error("login lookup failed",
			zap.String("user_name", form.UserName), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not log in")
		return
	}
	if user == nil || !password.Verify(user.PasswordHash, form.Password) {
		writeError(w, http.StatusUnauthorized, "invalid user name or password")
		return
	}

	sessUser := &auth.SessionUser{
		ID:       user.ID.Hex(),
		UserName: user.UserName,
		Email:    user.Email,
		Roles:    user.Roles,
	}
	if err := auth.SignIn(w, r, sessUser); err != nil {
		h.Log.Error("session write failed",
			zap.String("user_name", user.UserName), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not log in")
		return
	}

	h.Log.Info("login", zap.String("user_name", user.UserName))
	writeJSON(w, http.StatusOK, viewOf(user))
}

// HandleLogout clears the session cookie.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := auth.SignOut(w, r); err != nil {
		h.Log.Error("logout failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not log out")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "signed out"})
}

// ServeMe returns the signed-in user's current document.
func (h *Handler) ServeMe(w http.ResponseWriter, r *http.Request) {
	sessUser, ok := auth.CurrentUser(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	id, err := primitive.ObjectIDFromHex(sessUser.ID)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid session")
		return
	}

	ctx, cancel := timeouts.WithShort(r.Context())
	defer cancel()

	user, err := h.Users.FindByID(ctx, id)
	if err != nil {
		h.Log.Error("me lookup failed",
			zap.String("id", sessUser.ID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "could not load account")
		return
	}
	if user == nil {
		writeError(w, http.StatusNotFound, "account no longer exists")
		return
	}
	writeJSON(w, http.StatusOK, viewOf(user))
}
