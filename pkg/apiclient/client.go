// Package apiclient implementa el cliente HTTP del backend del haras.
// Satisface el puerto session.Authenticator para que el gate de sesión
// pueda autenticar contra la API remota.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/harasdev/haras-api/internal/application/dto"
	"github.com/harasdev/haras-api/internal/application/session"
	"github.com/harasdev/haras-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa Authenticator.
var _ session.Authenticator = (*Client)(nil)

// Client cliente REST de la API del haras.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New construye el cliente. baseURL sin slash final, p.ej. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Login autentica con email/password y devuelve token + usuario.
func (c *Client) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	in := dto.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", "", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Validate comprueba el token contra el backend y devuelve el usuario dueño.
func (c *Client) Validate(ctx context.Context, token string) (*dto.UserResponse, error) {
	var out dto.UserResponse
	if err := c.do(ctx, http.MethodGet, "/api/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalida la sesión en el backend. Idempotente.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/api/auth/logout", token, nil, nil)
}

// do ejecuta la petición y deserializa la respuesta en out (si no es nil).
func (c *Client) do(ctx context.Context, method, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api: serializar request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api: crear HTTP request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("api: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("api: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("api: leer respuesta: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return apiError(resp.StatusCode, rawBody)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.Unmarshal(rawBody, out); err != nil {
		return fmt.Errorf("api: deserializar respuesta: %w", err)
	}
	return nil
}

// apiError traduce el cuerpo de error de la API a sentinelas de dominio
// cuando el estado HTTP lo permite.
func apiError(status int, rawBody []byte) error {
	var er dto.ErrorResponse
	_ = json.Unmarshal(rawBody, &er)

	switch status {
	case http.StatusUnauthorized:
		return domain.ErrUnauthorized
	case http.StatusForbidden:
		return domain.ErrForbidden
	case http.StatusNotFound:
		return domain.ErrNotFound
	}
	if er.Message != "" {
		return fmt.Errorf("api: HTTP %d (%s): %s", status, er.Code, er.Message)
	}
	return fmt.Errorf("api: HTTP %d: %s", status, string(rawBody))
}
