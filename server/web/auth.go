package web

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/uvaheesara/archery-tools/internal/xrand"
	"github.com/uvaheesara/archery-tools/server/auth"
	"github.com/uvaheesara/archery-tools/server/database"
)

type userInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// auth resolves the session cookie into a session on the request context and
// forces a login for the admin area. Everything else stays public.
func (h *handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var session *database.Session
		if !strings.HasPrefix(r.URL.Path, "/login/callback") {
			cookie, err := r.Cookie("session")
			if err != nil && !errors.Is(err, http.ErrNoCookie) {
				slog.ErrorContext(ctx, "Failed to get session cookie", slog.Any("err", err))
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if cookie != nil {
				session, err = h.DB.GetSession(ctx, cookie.Value)
				if err != nil && !errors.Is(err, sql.ErrNoRows) {
					slog.ErrorContext(ctx, "Failed to get session", slog.Any("err", err))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
			}
		}

		if session == nil {
			if strings.HasPrefix(r.URL.Path, "/admin") {
				h.forceLogin(w, r)
				return
			}
			session = &database.Session{}
		}

		r = r.WithContext(auth.SetSession(ctx, *session))
		next.ServeHTTP(w, r)
	})
}

func (h *handler) forceLogin(w http.ResponseWriter, r *http.Request) {
	u := url.URL{
		Path:     "/login",
		RawQuery: url.Values{"rd": {r.URL.Path}}.Encode(),
	}
	http.Redirect(w, r, u.String(), http.StatusFound)
}

func (h *handler) Login(w http.ResponseWriter, r *http.Request) {
	redirect := r.URL.Query().Get("rd")
	if redirect == "" || !strings.HasPrefix(redirect, "/") {
		redirect = "/admin"
	}

	state := h.Auth.NewState(redirect)

	expiration := time.Now().Add(auth.MaxLoginFlowDuration)
	addOauthCookie(w, state, expiration)
	http.Redirect(w, r, h.Auth.Config().AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *handler) LoginCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	oauthState, _ := r.Cookie("oauthstate")
	state := query.Get("state")
	code := query.Get("code")

	if oauthState == nil || state != oauthState.Value {
		http.Error(w, "Invalid OAuth state", http.StatusBadRequest)
		return
	}

	redirectURL, ok := h.Auth.GetState(state)
	if !ok {
		http.Error(w, "Unknown OAuth state", http.StatusBadRequest)
		return
	}

	token, err := h.Auth.Config().Exchange(ctx, code)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to exchange OAuth code", slog.Any("err", err))
		http.Error(w, "Failed to exchange OAuth code", http.StatusInternalServerError)
		return
	}

	user, err := h.getUser(ctx, token.AccessToken)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to get user info", slog.Any("err", err))
		http.Error(w, "Failed to get user info", http.StatusInternalServerError)
		return
	}

	if !h.Auth.IsAllowed(user.Email) {
		slog.WarnContext(ctx, "Rejected login from non-whitelisted user", slog.String("email", user.Email))
		http.Error(w, "You are not allowed to sign in", http.StatusForbidden)
		return
	}

	now := time.Now()
	expiration := now.AddDate(1, 0, 0)
	session := xrand.RandomStr(32)
	if err = h.DB.CreateSession(ctx, database.Session{
		ID:        session,
		CreatedAt: now,
		ExpiresAt: expiration,
		UserID:    user.Email,
		UserName:  user.Name,
	}); err != nil {
		slog.ErrorContext(ctx, "Failed to create session", slog.Any("err", err))
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	addSessionCookie(w, session, expiration)
	http.Redirect(w, r, redirectURL, http.StatusFound)
}

func (h *handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie("session"); err == nil {
		if err = h.DB.DeleteSession(ctx, cookie.Value); err != nil {
			slog.ErrorContext(ctx, "Failed to delete session", slog.Any("err", err))
		}
	}

	removeSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *handler) getUser(ctx context.Context, accessToken string) (*userInfo, error) {
	rq, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Auth.UserInfoURL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	rq.Header.Set("Authorization", "Bearer "+accessToken)

	rs, err := h.HTTPClient.Do(rq)
	if err != nil {
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer rs.Body.Close()

	if rs.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", rs.StatusCode)
	}

	var user userInfo
	if err = json.NewDecoder(rs.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if user.Email == "" {
		return nil, errors.New("user info response has no email")
	}

	return &user, nil
}

func addOauthCookie(w http.ResponseWriter, state string, expiration time.Time) {
	cookie := http.Cookie{
		Name:     "oauthstate",
		Value:    state,
		Expires:  expiration,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/login/callback",
	}

	http.SetCookie(w, &cookie)
}

func removeOauthCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     "oauthstate",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/login/callback",
	}

	http.SetCookie(w, &cookie)
}

func addSessionCookie(w http.ResponseWriter, session string, expiration time.Time) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    session,
		Expires:  expiration,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
	removeOauthCookie(w)
}

func removeSessionCookie(w http.ResponseWriter) {
	cookie := http.Cookie{
		Name:     "session",
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
		Secure:   false, // Can use via http reqs
		HttpOnly: true,  // Can't be accessed by JS
		Path:     "/",
	}

	http.SetCookie(w, &cookie)
}
