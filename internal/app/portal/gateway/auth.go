package gateway

import (
	"context"

	"bizsuite-service/internal/pkg/dto/requests"
	"bizsuite-service/internal/pkg/dto/responses"
)

// Login authenticates and stores the resulting session. A wrong password
// comes back as *APIError, not *AuthError, since no session existed to lose.
func (c *Client) Login(ctx context.Context, request *requests.LoginUser) (*responses.AuthResponse, error) {
	var result responses.AuthResponse
	if _, err := c.post(ctx, "/auth/login", request, &result); err != nil {
		return nil, err
	}
	if err := c.Session.SetAuth(result.User, result.Company, result.AccessToken, result.RefreshToken); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Register(ctx context.Context, request *requests.RegisterUser) (*responses.AuthResponse, error) {
	var result responses.AuthResponse
	if _, err := c.post(ctx, "/auth/register", request, &result); err != nil {
		return nil, err
	}
	if err := c.Session.SetAuth(result.User, result.Company, result.AccessToken, result.RefreshToken); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me fetches the signed-in profile and refills the session identity. It is
// how a restored token pair turns back into a usable session on startup.
func (c *Client) Me(ctx context.Context) (*responses.AuthResponse, error) {
	var result responses.AuthResponse
	if _, err := c.get(ctx, "/auth/me", &result); err != nil {
		return nil, err
	}
	c.Session.SetIdentity(result.User, result.Company)
	return &result, nil
}

func (c *Client) Refresh(ctx context.Context) error {
	refreshToken := c.Session.RefreshToken()
	if refreshToken == "" {
		return &AuthError{Message: "no refresh token"}
	}

	var result responses.RefreshResponse
	if _, err := c.post(ctx, "/auth/refresh", &requests.RefreshToken{RefreshToken: refreshToken}, &result); err != nil {
		return err
	}
	return c.Session.SetAccessToken(result.AccessToken)
}

// Logout tells the server to drop the session, then wipes it locally. The
// local wipe happens even when the server call fails.
func (c *Client) Logout(ctx context.Context) error {
	_, apiErr := c.post(ctx, "/auth/logout", nil, nil)
	if logoutErr := c.Session.Logout(); logoutErr != nil {
		return logoutErr
	}
	if _, forced := apiErr.(*AuthError); forced {
		// The server already considered the session dead.
		return nil
	}
	return apiErr
}
