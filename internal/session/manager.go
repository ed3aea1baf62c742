package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strconv"
	"strings"

	"taskboard/internal/model"
	pkgLog "taskboard/pkg/log"
	"taskboard/pkg/remote"
)

const (
	defaultLoginPage   = "index.html"
	defaultLandingPage = "summary.html"
)

type implManager struct {
	l     pkgLog.Logger
	store Store
	auth  AuthClient
	cfg   Config
}

// New creates a session Manager persisting into store.
func New(l pkgLog.Logger, store Store, auth AuthClient, cfg Config) Manager {
	if cfg.LoginPage == "" {
		cfg.LoginPage = defaultLoginPage
	}
	if cfg.LandingPage == "" {
		cfg.LandingPage = defaultLandingPage
	}
	return &implManager{
		l:     l,
		store: store,
		auth:  auth,
		cfg:   cfg,
	}
}

func (m *implManager) Login(ctx context.Context, email, password string) (model.Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return model.Session{}, ErrEmptyCredentials
	}

	resp, err := m.auth.Login(ctx, remote.LoginRequest{Email: email, Password: password})
	if err != nil {
		m.l.Warnf(ctx, "session.Login auth.Login: %v", err)
		return model.Session{}, mapAuthError(err)
	}

	s := model.Session{
		Token:            resp.Token,
		CurrentUserIndex: resp.UserIndex(),
		Username:         firstNonEmpty(resp.Username, resp.FullName),
		Email:            firstNonEmpty(resp.Email, email),
	}
	if err := m.persist(s); err != nil {
		m.l.Errorf(ctx, "session.Login persist: %v", err)
		return model.Session{}, err
	}

	m.l.Infof(ctx, "session.Login: user %d logged in", s.CurrentUserIndex)
	m.started(ctx)
	return s, nil
}

// Register checks the password confirmation locally, then registers and
// starts the new user's session.
func (m *implManager) Register(ctx context.Context, input RegisterInput) (model.Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	input.Username = strings.TrimSpace(input.Username)
	if input.Email == "" || input.Password == "" {
		return model.Session{}, ErrEmptyCredentials
	}
	if input.Password != input.RepeatedPassword {
		return model.Session{}, ErrPasswordMismatch
	}

	resp, err := m.auth.Register(ctx, remote.RegisterRequest{
		Username:         input.Username,
		Email:            input.Email,
		Password:         input.Password,
		RepeatedPassword: input.RepeatedPassword,
	})
	if err != nil {
		m.l.Warnf(ctx, "session.Register auth.Register: %v", err)
		return model.Session{}, mapAuthError(err)
	}

	s := model.Session{
		Token:            resp.Token,
		CurrentUserIndex: resp.UserIndex(),
		Username:         firstNonEmpty(resp.Username, input.Username),
		Email:            firstNonEmpty(resp.Email, input.Email),
	}
	if err := m.persist(s); err != nil {
		m.l.Errorf(ctx, "session.Register persist: %v", err)
		return model.Session{}, err
	}

	m.l.Infof(ctx, "session.Register: user %d registered", s.CurrentUserIndex)
	m.started(ctx)
	return s, nil
}

func (m *implManager) Guest(ctx context.Context) (model.Session, error) {
	if m.cfg.GuestToken == "" {
		return model.Session{}, ErrNoGuestToken
	}

	s := model.Session{
		Token:            m.cfg.GuestToken,
		CurrentUserIndex: model.GuestUserIndex,
		Username:         GuestUsername,
	}
	if err := m.persist(s); err != nil {
		m.l.Errorf(ctx, "session.Guest persist: %v", err)
		return model.Session{}, err
	}
	m.started(ctx)
	return s, nil
}

func (m *implManager) started(ctx context.Context) {
	if m.cfg.OnStart == nil {
		return
	}
	if err := m.cfg.OnStart(ctx); err != nil {
		m.l.Warnf(ctx, "session.started OnStart: %v", err)
	}
}

func (m *implManager) Logout(ctx context.Context) error {
	if err := m.store.Clear(); err != nil {
		m.l.Errorf(ctx, "session.Logout store.Clear: %v", err)
		return err
	}
	if m.cfg.OnEnd != nil {
		if err := m.cfg.OnEnd(ctx); err != nil {
			m.l.Warnf(ctx, "session.Logout OnEnd: %v", err)
		}
	}
	return nil
}

func (m *implManager) Current() model.Session {
	token, _ := m.store.Get(KeyToken)
	if token == "" {
		return model.Session{}
	}

	s := model.Session{Token: token}
	if raw, ok := m.store.Get(KeyCurrentUserIndex); ok {
		s.CurrentUserIndex, _ = strconv.ParseInt(raw, 10, 64)
	}
	s.Username, _ = m.store.Get(KeyUsername)
	s.Email, _ = m.store.Get(KeyEmail)
	return s
}

func (m *implManager) State() model.SessionState {
	return m.Current().State()
}

func (m *implManager) Token() string {
	token, _ := m.store.Get(KeyToken)
	return token
}

func (m *implManager) Guard(page string) GuardResult {
	page = normalizePage(page)
	res := GuardResult{Page: page}
	hasToken := m.Token() != ""

	switch {
	case page == m.cfg.LoginPage:
		if hasToken {
			res.Redirect = m.cfg.LandingPage
		}
	case m.isPublic(page):
	case !hasToken:
		res.Redirect = m.cfg.LoginPage
	}
	return res
}

func (m *implManager) isPublic(page string) bool {
	for _, p := range m.cfg.PublicPages {
		if p == page {
			return true
		}
	}
	return false
}

// persist replaces the stored session with s.
func (m *implManager) persist(s model.Session) error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	return m.store.Set(map[string]string{
		KeyToken:            s.Token,
		KeyCurrentUserIndex: strconv.FormatInt(s.CurrentUserIndex, 10),
		KeyUsername:         s.Username,
		KeyEmail:            s.Email,
	})
}

// normalizePage reduces "/board.html?x" or "" to a bare page name.
func normalizePage(page string) string {
	if i := strings.IndexAny(page, "?#"); i >= 0 {
		page = page[:i]
	}
	page = path.Base(strings.TrimSpace(page))
	if page == "." || page == "/" {
		return defaultLoginPage
	}
	return page
}

func mapAuthError(err error) error {
	apiErr, ok := remote.AsAPIError(err)
	if !ok {
		return fmt.Errorf("%w: %w", ErrAuthUnavailable, err)
	}
	if apiErr.Field("email") != "" {
		return ErrEmailTaken
	}
	switch apiErr.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden:
		return ErrInvalidCredentials
	}
	if remote.IsRetryable(err) {
		return fmt.Errorf("%w: %w", ErrAuthUnavailable, err)
	}
	return errors.Join(ErrInvalidCredentials, err)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
