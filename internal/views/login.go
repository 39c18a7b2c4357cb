package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-BarberService/internal/client"
)

// LoginState снимок экрана входа
type LoginState struct {
	Username string
	Loading  bool
	Error    string
}

// LoginScreen экран входа администратора
type LoginScreen struct {
	api      AuthAPI
	verifier Verifier
	nav      Navigator
	tracker  *requestTracker

	mu    sync.Mutex
	state LoginState
}

// NewLoginScreen создает экран; verifier может быть nil, если reCAPTCHA выключена
func NewLoginScreen(api AuthAPI, verifier Verifier, nav Navigator) *LoginScreen {
	if verifier == nil {
		verifier = StaticVerifier("")
	}
	return &LoginScreen{
		api:      api,
		verifier: verifier,
		nav:      nav,
		tracker:  newRequestTracker(),
	}
}

func (s *LoginScreen) State() LoginState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit входит и сохраняет токен в сессию, затем переходит на главную
func (s *LoginScreen) Submit(ctx context.Context, username, password string) error {
	s.mu.Lock()
	s.state.Username = username
	if strings.TrimSpace(username) == "" || password == "" {
		s.state.Error = msgLoginFillFields
		s.mu.Unlock()
		return validationError(msgLoginFillFields)
	}
	s.state.Error = ""
	s.state.Loading = true
	s.mu.Unlock()

	reqCtx, tk, err := s.tracker.begin(ctx, "login")
	if err != nil {
		return err
	}

	err = s.login(reqCtx, username, password)

	s.mu.Lock()
	if !s.tracker.finish(tk) {
		s.mu.Unlock()
		return ErrStale
	}
	s.state.Loading = false
	if err != nil {
		switch {
		case errors.Is(err, errVerifier):
			s.state.Error = msgCaptchaFailed
		case errors.Is(err, client.ErrTransport):
			s.state.Error = msgLoginConnect
		default:
			s.state.Error = errorText(err, msgLoginFailed)
		}
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()

	// Навигация вне блокировки: обработчик может открыть другой экран
	s.nav.Navigate(RouteHome)
	return nil
}

func (s *LoginScreen) login(ctx context.Context, username, password string) error {
	token, err := s.verifier.Token(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerifier, err)
	}
	_, err = s.api.Login(ctx, client.LoginRequest{
		Username:       strings.TrimSpace(username),
		Password:       password,
		RecaptchaToken: token,
	})
	return err
}

// Logout уничтожает сессию и переходит на экран входа
func (s *LoginScreen) Logout() error {
	err := s.api.Logout()
	s.nav.Navigate(RouteLogin)
	return err
}

func (s *LoginScreen) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Close()
}
