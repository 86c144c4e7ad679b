package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// PublicUser mirrors the user object in API responses.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	User  PublicUser `json:"user"`
	Token string     `json:"token"`
}

type userResponse struct {
	User PublicUser `json:"user"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// APIClient talks to the auth backend over HTTP/JSON.
type APIClient struct {
	baseURL string
	http    *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Register creates an account and returns the user plus a bearer token.
func (c *APIClient) Register(ctx context.Context, name, email, password string) (*PublicUser, string, error) {
	out := &authResponse{}
	err := c.post(ctx, "/api/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, out)
	if err != nil {
		return nil, "", err
	}
	return &out.User, out.Token, nil
}

// Login authenticates and returns the user plus a bearer token.
func (c *APIClient) Login(ctx context.Context, email, password string) (*PublicUser, string, error) {
	out := &authResponse{}
	err := c.post(ctx, "/api/login", map[string]string{
		"email":    email,
		"password": password,
	}, out)
	if err != nil {
		return nil, "", err
	}
	return &out.User, out.Token, nil
}

// WhoAmI resolves the bearer token to its user.
func (c *APIClient) WhoAmI(ctx context.Context, token string) (*PublicUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/me", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	out := &userResponse{}
	if err := c.do(req, out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *APIClient) post(ctx context.Context, path string, body any, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		apiErr := &errorResponse{}
		if err := json.Unmarshal(data, apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s", apiErr.Error)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	return json.Unmarshal(data, out)
}
