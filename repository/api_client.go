package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "http://localhost:5000/api"
	DefaultTimeout = 10 * time.Second
)

const msgNoResponse = "Sem resposta do servidor. Verifique sua conexão."

// APIError is returned for every failed remote call. Status is 0 when the
// server never answered.
type APIError struct {
	Status  int
	Message string
	URL     string
}

func (e *APIError) Error() string { return e.Message }

// AsAPIError unwraps err into an *APIError when it carries one.
func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func newAPIError(status int, body []byte, u string) *APIError {
	raw := strings.TrimSpace(string(body))
	if raw == "" {
		raw = `""`
	}
	var msg string
	switch status {
	case http.StatusBadRequest:
		msg = "Dados inválidos: " + raw
	case http.StatusUnauthorized:
		msg = "Não autorizado"
	case http.StatusNotFound:
		msg = "Recurso não encontrado"
	case http.StatusInternalServerError:
		msg = "Erro interno do servidor"
	default:
		msg = fmt.Sprintf("Erro %d: %s", status, raw)
	}
	return &APIError{Status: status, Message: msg, URL: u}
}

type tokenKey struct{}

// WithToken attaches the caller's bearer token to ctx; it wins over the
// client's configured token.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

func tokenFrom(ctx context.Context) string {
	if v, ok := ctx.Value(tokenKey{}).(string); ok {
		return v
	}
	return ""
}

// APIClient talks JSON to the Fynanceo REST API.
type APIClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewAPIClient(baseURL string, timeout time.Duration, token string) *APIClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &APIClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Do sends one request. body is JSON-encoded when non-nil; a 2xx response is
// decoded into out when out is non-nil and the body is not empty.
func (c *APIClient) Do(ctx context.Context, method, path string, query url.Values, body, out any) (http.Header, error) {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return nil, fmt.Errorf("Erro na configuração da requisição: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	tok := tokenFrom(ctx)
	if tok == "" {
		tok = c.Token
	}
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	log.Printf("🔄 %s %s", method, u)
	res, err := c.HTTP.Do(req)
	if err != nil {
		log.Printf("❌ %s %s: %v", method, u, err)
		return nil, &APIError{Message: msgNoResponse, URL: u}
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return res.Header, &APIError{Status: res.StatusCode, Message: msgNoResponse, URL: u}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		log.Printf("❌ %s %s -> %d", method, u, res.StatusCode)
		return res.Header, newAPIError(res.StatusCode, data, u)
	}

	if out != nil && len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return res.Header, fmt.Errorf("decode %s %s: %w", method, path, err)
		}
	}
	return res.Header, nil
}

func (c *APIClient) Get(ctx context.Context, path string, query url.Values, out any) error {
	_, err := c.Do(ctx, http.MethodGet, path, query, nil, out)
	return err
}

func (c *APIClient) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

func (c *APIClient) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

func (c *APIClient) Patch(ctx context.Context, path string, body, out any) error {
	_, err := c.Do(ctx, http.MethodPatch, path, nil, body, out)
	return err
}

func (c *APIClient) Delete(ctx context.Context, path string) error {
	_, err := c.Do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

// Ping reports whether the API answers GET /Customers with a 2xx.
func (c *APIClient) Ping(ctx context.Context) bool {
	return c.Get(ctx, "/Customers", nil, nil) == nil
}
