package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"
)

// maxErrorBody сколько байт тела ошибки читать ради поля message
const maxErrorBody = 64 << 10

// Client REST-клиент barber-api
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    *Session
	log        Logger
}

// NewClient создает клиента
// Cookie (client_id) хранятся в памяти на время жизни клиента
func NewClient(baseURL string, timeout time.Duration, session *Session, log Logger) *Client {
	jar, _ := cookiejar.New(nil)
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
		session: session,
		log:     log,
	}
}

// Session сессия, к которой привязан клиент
func (c *Client) Session() *Session {
	return c.session
}

// ============================================================
// Публичные операции
// ============================================================

// Login проверяет учетные данные и сохраняет полученный токен в сессию
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/login", nil, false, req, &resp); err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, fmt.Errorf("%w: login response without token", ErrInvalidResponse)
	}

	username := resp.Username
	if username == "" {
		username = req.Username
	}
	if err := c.session.Start(SessionData{Token: resp.Token, Username: username, ExpiresAt: resp.ExpiresAt}); err != nil {
		return nil, err
	}

	c.log.Info("Logged in as %s", username)
	return &resp, nil
}

// Logout уничтожает сессию (запрос к серверу не нужен)
func (c *Client) Logout() error {
	return c.session.Destroy()
}

// CreateReservation создает бронирование
func (c *Client) CreateReservation(ctx context.Context, req CreateReservationRequest) (*CreateReservationResponse, error) {
	var resp CreateReservationResponse
	if err := c.do(ctx, http.MethodPost, "/reservations", nil, false, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetAvailableSlots занятые и свободные слоты на дату
func (c *Client) GetAvailableSlots(ctx context.Context, date string) (*Availability, error) {
	var resp Availability
	query := url.Values{"date": []string{date}}
	if err := c.do(ctx, http.MethodGet, "/reservations/availability", query, false, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ============================================================
// Авторизованные операции
// ============================================================

// ListReservations список бронирований, по возрастанию даты и времени
func (c *Client) ListReservations(ctx context.Context, filter ReservationsFilter) ([]Reservation, error) {
	query := url.Values{}
	if filter.From != "" {
		query.Set("from", filter.From)
	}
	if filter.To != "" {
		query.Set("to", filter.To)
	}

	var resp []Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations", query, true, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetReservation бронирование по ID
func (c *Client) GetReservation(ctx context.Context, id int64) (*Reservation, error) {
	var resp Reservation
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reservations/%d", id), nil, true, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateReservation изменяет бронирование
func (c *Client) UpdateReservation(ctx context.Context, id int64, in ReservationInput) (*Reservation, error) {
	var resp Reservation
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/reservations/%d", id), nil, true, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteReservation удаляет бронирование
func (c *Client) DeleteReservation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, true, nil, nil)
}

// ListAdmins список администраторов
func (c *Client) ListAdmins(ctx context.Context) ([]Admin, error) {
	var resp []Admin
	if err := c.do(ctx, http.MethodGet, "/admins", nil, true, nil, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateAdmin создает администратора
func (c *Client) CreateAdmin(ctx context.Context, in AdminInput) (*Admin, error) {
	var resp Admin
	if err := c.do(ctx, http.MethodPost, "/admins", nil, true, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAdmin меняет логин и, если передан, пароль
func (c *Client) UpdateAdmin(ctx context.Context, id int64, in AdminInput) (*Admin, error) {
	var resp Admin
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admins/%d", id), nil, true, in, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAdmin удаляет администратора
func (c *Client) DeleteAdmin(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admins/%d", id), nil, true, nil, nil)
}

// ResetAdminPassword задает новый пароль администратору
func (c *Client) ResetAdminPassword(ctx context.Context, id int64, newPassword string) error {
	body := resetPasswordRequest{NewPassword: newPassword}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/admins/%d/reset-password", id), nil, true, body, nil)
}

// do выполняет запрос и раскладывает ответ по категориям ошибок
// authorized: нужен bearer-токен, 401 сбрасывает сессию
func (c *Client) do(ctx context.Context, method, path string, query url.Values, authorized bool, body, out interface{}) error {
	token := ""
	if authorized {
		token = c.session.Token()
		if token == "" {
			return ErrNoSession
		}
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request: %v", ErrInvalidResponse, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn("%s %s - transport error: %v", method, path, err)
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, path, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusUnauthorized && authorized:
		c.log.Warn("%s %s - unauthorized, session cleared", method, path)
		if err := c.session.Destroy(); err != nil {
			c.log.Error("Failed to clear session: %v", err)
		}
		return ErrUnauthorized

	case resp.StatusCode >= http.StatusBadRequest:
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: readMessage(resp.Body)}
		c.log.Warn("%s %s - rejected: status=%d, message=%q", method, path, resp.StatusCode, apiErr.Message)
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	// Парсим ответ
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

func readMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil {
		return ""
	}
	var body messageResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
