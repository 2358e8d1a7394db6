package gateway

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"bizsuite-service/internal/app/portal/session"
	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/dto/responses"
	"bizsuite-service/internal/pkg/exceptions"
)

// AuthError means the server no longer accepts our credentials. By the time
// the caller sees it the local session has already been wiped.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// APIError carries a non-auth failure response back to the caller.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// Client talks to the backend REST API. Every authenticated request carries
// the bearer token from the session store; a 401 on such a request logs the
// session out before the error reaches the caller.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	Session        *session.Store
	Log            *zap.Logger
	OnForcedLogout func()
}

func NewClient(baseURL string, timeoutSeconds int, sessionStore *session.Store, log *zap.Logger, onForcedLogout func()) *Client {
	return &Client{
		BaseURL:        baseURL,
		HTTPClient:     &http.Client{Timeout: time.Duration(timeoutSeconds) * time.Second},
		Session:        sessionStore,
		Log:            log,
		OnForcedLogout: onForcedLogout,
	}
}

type envelope struct {
	Success    bool                  `json:"success"`
	Message    string                `json:"message"`
	Data       json.RawMessage       `json:"data"`
	Pagination *responses.Pagination `json:"pagination"`
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}) (*envelope, error) {
	var payload *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("failed to marshal request body", zap.String("path", path), zap.Error(err))
			return nil, exceptions.ErrCannotMarshalJSON(err)
		}
		payload = bytes.NewBuffer(data)
	} else {
		payload = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, payload)
	if err != nil {
		c.Log.Error("failed to create request", zap.String("path", path), zap.Error(err))
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	authenticated := false
	if token := c.Session.AccessToken(); token != "" {
		req.Header.Set(constvars.HeaderAuthorization, constvars.AuthorizationBearerPrefix+token)
		authenticated = true
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error("failed to send request", zap.String("path", path), zap.Error(err))
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.Log.Error("failed to decode response", zap.String("path", path), zap.Error(err))
		return nil, exceptions.ErrDecodeHTTPResponse(err)
	}

	if resp.StatusCode == constvars.StatusUnauthorized && authenticated {
		// The token was present but rejected, so the session it belongs to
		// is gone. Wipe it locally and let the hook send the user back to
		// the login screen.
		if logoutErr := c.Session.Logout(); logoutErr != nil {
			c.Log.Warn("failed to clear session after rejection", zap.Error(logoutErr))
		}
		if c.OnForcedLogout != nil {
			c.OnForcedLogout()
		}
		return nil, &AuthError{Message: env.Message}
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			c.Log.Error("failed to decode response data", zap.String("path", path), zap.Error(err))
			return nil, exceptions.ErrDecodeHTTPResponse(err)
		}
	}
	return &env, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) (*envelope, error) {
	return c.do(ctx, constvars.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) (*envelope, error) {
	return c.do(ctx, constvars.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) (*envelope, error) {
	return c.do(ctx, constvars.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, constvars.MethodDelete, path, nil, nil)
	return err
}
