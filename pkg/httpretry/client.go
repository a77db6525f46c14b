// Package httpretry fornece um cliente HTTP com retentativas limitadas e
// backoff exponencial para chamadas às APIs dos provedores de métricas.
package httpretry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// DefaultRetryableStatuses são os status que justificam nova tentativa.
var DefaultRetryableStatuses = []int{
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
}

const bodySnippetLimit = 300

type Config struct {
	MaxRetries        int
	Backoff           time.Duration
	Timeout           time.Duration
	RetryableStatuses []int
}

type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

type Response struct {
	StatusCode int
	Body       []byte
}

// AuthError indica rejeição de credencial pelo provedor. Retentar é inútil.
type AuthError struct {
	StatusCode int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("autenticação rejeitada pelo provedor (status %d)", e.StatusCode)
}

// HTTPError indica uma resposta não-2xx que não é elegível para retentativa.
type HTTPError struct {
	StatusCode int
	Snippet    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.Snippet)
}

// ExhaustedError indica que todas as tentativas configuradas falharam.
type ExhaustedError struct {
	Attempts   int
	LastStatus int
	Err        error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("retentativas esgotadas após %d tentativas (último status %d): %v", e.Attempts, e.LastStatus, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

// IsAuthError informa se o erro (ou sua cadeia) é uma rejeição de credencial.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

type Client struct {
	httpClient *http.Client
	cfg        Config
	retryable  map[int]struct{}
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = time.Second
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}

	statuses := cfg.RetryableStatuses
	if len(statuses) == 0 {
		statuses = DefaultRetryableStatuses
	}

	retryable := make(map[int]struct{}, len(statuses))
	for _, status := range statuses {
		retryable[status] = struct{}{}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:       cfg,
		retryable: retryable,
	}
}

// Do executa a requisição com até MaxRetries retentativas. Erros de rede e
// status elegíveis são retentados com backoff exponencial; Retry-After do
// servidor tem precedência sobre o atraso calculado. 401/403 falham na hora.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	var (
		lastErr    error
		lastStatus int
		retryAfter time.Duration
	)

	attempts := c.cfg.MaxRetries + 1

	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			if err := c.wait(ctx, attempt, retryAfter); err != nil {
				return nil, err
			}
		}

		status, body, header, err := c.send(ctx, req)
		if err != nil {
			// Falha de conexão ou timeout de leitura: elegível para retentativa
			lastErr = err
			lastStatus = 0
			retryAfter = 0
			continue
		}

		if status >= 200 && status < 300 {
			return &Response{StatusCode: status, Body: body}, nil
		}

		if status == http.StatusUnauthorized || status == http.StatusForbidden {
			return nil, &AuthError{StatusCode: status}
		}

		httpErr := &HTTPError{StatusCode: status, Snippet: snippet(body)}

		if _, ok := c.retryable[status]; !ok {
			return nil, httpErr
		}

		lastErr = httpErr
		lastStatus = status
		retryAfter = parseRetryAfter(header)
	}

	return nil, &ExhaustedError{
		Attempts:   attempts,
		LastStatus: lastStatus,
		Err:        lastErr,
	}
}

func (c *Client) send(ctx context.Context, req Request) (int, []byte, http.Header, error) {
	var bodyReader io.Reader
	if len(req.Body) > 0 {
		bodyReader = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bodyReader)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	for key, values := range req.Header {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	return resp.StatusCode, body, resp.Header, nil
}

// wait bloqueia pelo atraso da tentativa, respeitando o cancelamento do contexto.
func (c *Client) wait(ctx context.Context, attempt int, retryAfter time.Duration) error {
	delay := c.cfg.Backoff * (1 << (attempt - 2))
	if retryAfter > 0 {
		delay = retryAfter
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func parseRetryAfter(header http.Header) time.Duration {
	if header == nil {
		return 0
	}

	raw := header.Get("Retry-After")
	if raw == "" {
		return 0
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds) * time.Second
}

func snippet(body []byte) string {
	if len(body) > bodySnippetLimit {
		body = body[:bodySnippetLimit]
	}
	return string(body)
}
