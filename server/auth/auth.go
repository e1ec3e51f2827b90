package auth

import (
	"slices"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/uvaheesara/archery-tools/internal/xrand"
)

const MaxLoginFlowDuration = 30 * time.Minute

type loginState struct {
	RedirectURL string
	CreatedAt   time.Time
}

func (s loginState) IsExpired() bool {
	return time.Since(s.CreatedAt) > MaxLoginFlowDuration
}

func New(cfg Config) *Auth {
	a := &Auth{
		cfg: cfg,
		oauth2Cfg: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
			RedirectURL: cfg.PublicURL + "/login/callback",
			Scopes:      cfg.Scopes,
		},
		states: make(map[string]loginState),
	}

	go a.cleanupStates()

	return a
}

type Auth struct {
	cfg       Config
	oauth2Cfg *oauth2.Config
	states    map[string]loginState
	statesMu  sync.Mutex
}

func (a *Auth) Config() *oauth2.Config {
	return a.oauth2Cfg
}

func (a *Auth) UserInfoURL() string {
	return a.cfg.UserInfoURL
}

// IsAllowed reports whether an email may sign in. An empty whitelist allows
// everyone.
func (a *Auth) IsAllowed(email string) bool {
	return len(a.cfg.Whitelist) == 0 || slices.Contains(a.cfg.Whitelist, email)
}

// IsAdmin reports whether an email may run admin-only actions.
func (a *Auth) IsAdmin(email string) bool {
	return slices.Contains(a.cfg.Admins, email)
}

func (a *Auth) NewState(redirectURL string) string {
	a.statesMu.Lock()
	defer a.statesMu.Unlock()

	state := xrand.RandomStr(32)
	a.states[state] = loginState{
		RedirectURL: redirectURL,
		CreatedAt:   time.Now(),
	}
	return state
}

func (a *Auth) GetState(state string) (string, bool) {
	a.statesMu.Lock()
	defer a.statesMu.Unlock()

	lState, ok := a.states[state]
	if ok {
		delete(a.states, state)
	}

	if lState.IsExpired() {
		return "", false
	}

	return lState.RedirectURL, ok
}

func (a *Auth) cleanupStates() {
	for {
		a.doCleanupStates()
		time.Sleep(10 * time.Minute)
	}
}

func (a *Auth) doCleanupStates() {
	a.statesMu.Lock()
	defer a.statesMu.Unlock()

	for state, lState := range a.states {
		if lState.IsExpired() {
			delete(a.states, state)
		}
	}
}
