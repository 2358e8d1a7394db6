package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"bizsuite-service/internal/app/portal/session"
	"bizsuite-service/internal/pkg/dto/responses"
)

func newTestStore(t *testing.T) *session.Store {
	t.Helper()
	store, err := session.NewStore(session.NewFileStorage(filepath.Join(t.TempDir(), "tokens.json")))
	assert.NoError(t, err)
	return store
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuthorization string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthorization = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(responses.ResponseDTO{Success: true, Data: []any{}})
	}))
	defer server.Close()

	store := newTestStore(t)
	user, company := responses.UserResponse{ID: "u1"}, responses.CompanyResponse{ID: "c1"}
	assert.NoError(t, store.SetAuth(user, company, "my-token", "refresh"))

	client := NewClient(server.URL, 5, store, zap.NewNop(), nil)
	_, _, err := client.ListCustomers(context.Background(), ListOptions{})
	assert.NoError(t, err)
	assert.Equal(t, "Bearer my-token", gotAuthorization)
}

func TestClient_RejectedTokenForcesLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(responses.ResponseDTO{Success: false, Message: "invalid or expired token"})
	}))
	defer server.Close()

	store := newTestStore(t)
	user, company := responses.UserResponse{ID: "u1"}, responses.CompanyResponse{ID: "c1"}
	assert.NoError(t, store.SetAuth(user, company, "stale-token", "refresh"))

	forcedLogout := false
	client := NewClient(server.URL, 5, store, zap.NewNop(), func() { forcedLogout = true })

	_, _, err := client.ListCustomers(context.Background(), ListOptions{})

	var authErr *AuthError
	assert.ErrorAs(t, err, &authErr)
	assert.Equal(t, "invalid or expired token", authErr.Message)
	assert.True(t, forcedLogout)
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.AccessToken(), "the rejected token is gone before the caller sees the error")
}

func TestClient_FailedLoginIsNotAForcedLogout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(responses.ResponseDTO{Success: false, Message: "invalid email or password"})
	}))
	defer server.Close()

	forcedLogout := false
	client := NewClient(server.URL, 5, newTestStore(t), zap.NewNop(), func() { forcedLogout = true })

	_, err := client.Login(context.Background(), nil)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr, "no session existed, so nothing gets revoked")
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.False(t, forcedLogout)
}

func TestClient_DecodesEnvelopeData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/public/barbearia-demo", r.URL.Path)
		json.NewEncoder(w).Encode(responses.ResponseDTO{
			Success: true,
			Data: responses.PublicCompanyResponse{
				Name:     "Barbearia Demo",
				Slug:     "barbearia-demo",
				Services: []responses.PublicService{{Name: "Corte", Price: 40, DurationMinutes: 30}},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5, newTestStore(t), zap.NewNop(), nil)
	company, err := client.GetPublicCompany(context.Background(), "barbearia-demo")
	assert.NoError(t, err)
	assert.Equal(t, "Barbearia Demo", company.Name)
	assert.Len(t, company.Services, 1)
	assert.Equal(t, "Corte", company.Services[0].Name)
}

func TestClient_UpstreamErrorKeepsMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(responses.ResponseDTO{Success: false, Message: "this time slot is already taken"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5, newTestStore(t), zap.NewNop(), nil)
	_, err := client.CreateBooking(context.Background(), "barbearia-demo", nil)

	var apiErr *APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "this time slot is already taken", apiErr.Message)
}
