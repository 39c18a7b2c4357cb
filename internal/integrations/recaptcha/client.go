package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент проверки токенов reCAPTCHA
type Client struct {
	enabled    bool
	verifyURL  string
	secret     string
	minScore   float64
	httpClient *http.Client
	log        Logger
}

// NewClient создает клиент reCAPTCHA
// При enabled=false Verify принимает любой токен
func NewClient(enabled bool, verifyURL, secret string, minScore float64, timeout time.Duration, log Logger) *Client {
	return &Client{
		enabled:   enabled,
		verifyURL: verifyURL,
		secret:    secret,
		minScore:  minScore,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Enabled включена ли проверка
func (c *Client) Enabled() bool {
	return c.enabled
}

// Verify проверяет токен через siteverify
func (c *Client) Verify(ctx context.Context, token, remoteIP string) error {
	if !c.enabled {
		return nil
	}

	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}

	form := url.Values{
		"secret":   {c.secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.verifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result VerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if !result.Success {
		c.log.Warn("reCAPTCHA rejected token: errors=%v", result.ErrorCodes)
		return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(result.ErrorCodes, ","))
	}

	// v3 возвращает score, v2 - нет
	if result.Score != nil && *result.Score < c.minScore {
		c.log.Warn("reCAPTCHA score too low: score=%.2f, min=%.2f", *result.Score, c.minScore)
		return fmt.Errorf("%w: score %.2f below %.2f", ErrVerificationFailed, *result.Score, c.minScore)
	}

	return nil
}
