package admin

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/insuredesk/insure-backend/internal/httputil"
	"github.com/insuredesk/insure-backend/internal/intake"
	"github.com/insuredesk/insure-backend/internal/session"
	"gorm.io/gorm"
)

// CookieConfig controls how the session token travels to the client.
type CookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

type Handler struct {
	Credentials  CredentialStore
	Verifier     CredentialVerifier
	Sessions     session.Store
	Applications intake.ApplicationStore
	Cookie       CookieConfig
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login moves the caller from Anonymous to Authenticated. Any credential
// mismatch gets the same response, so usernames cannot be enumerated.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Fail(w, http.StatusBadRequest, "Username and password required")
		return
	}
	if req.Username == "" || req.Password == "" {
		httputil.Fail(w, http.StatusBadRequest, "Username and password required")
		return
	}

	cred, err := h.Credentials.FindByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httputil.Fail(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		log.Println("Failed to look up admin credential:", err)
		httputil.Fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	if !h.Verifier.Verify(cred.Secret, req.Password) {
		log.Println("Login failed: invalid credentials for", req.Username)
		httputil.Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	sess, err := h.Sessions.Create(h.Cookie.TTL)
	if err != nil {
		log.Println("Failed to create session:", err)
		httputil.Fail(w, http.StatusInternalServerError, "Server error")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    sess.Token,
		Path:     "/",
		MaxAge:   int(h.Cookie.TTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cookie.Secure,
	})

	log.Println("Admin logged in:", req.Username)
	httputil.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Check reports the current session state without side effects.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.Cookie.Name)
	if err != nil || cookie.Value == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if _, ok := h.Sessions.Get(cookie.Value); !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Logout destroys the session server-side and tells the client to drop the
// cookie. It succeeds even when no session exists.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.Cookie.Name); err == nil && cookie.Value != "" {
		h.Sessions.Delete(cookie.Value)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.Cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.Cookie.Secure,
	})

	w.WriteHeader(http.StatusOK)
}

// Data returns every stored application, newest first. The session guard
// has already rejected anonymous callers by the time this runs.
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	apps, err := h.Applications.ListNewestFirst()
	if err != nil {
		log.Println("Failed to read applications:", err)
		httputil.Fail(w, http.StatusInternalServerError, "Database error")
		return
	}
	if apps == nil {
		apps = []intake.Application{}
	}

	httputil.JSON(w, http.StatusOK, apps)
}
