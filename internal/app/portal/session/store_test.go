package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"bizsuite-service/internal/pkg/dto/responses"
)

type failingStorage struct {
	saveErr error
}

func (s *failingStorage) Save(accessToken, refreshToken string) error { return s.saveErr }
func (s *failingStorage) Load() (string, string, error)               { return "", "", nil }
func (s *failingStorage) Clear() error                                { return nil }

func testIdentity() (responses.UserResponse, responses.CompanyResponse) {
	return responses.UserResponse{ID: "user1", Name: "Demo Owner", Email: "demo@example.com", Role: "owner"},
		responses.CompanyResponse{ID: "company1", Name: "Barbearia Demo", Slug: "barbearia-demo"}
}

func TestFileStorage_RoundTrip(t *testing.T) {
	storage := NewFileStorage(filepath.Join(t.TempDir(), "tokens.json"))

	access, refresh, err := storage.Load()
	assert.NoError(t, err, "a missing file is an empty session, not an error")
	assert.Empty(t, access)
	assert.Empty(t, refresh)

	assert.NoError(t, storage.Save("access-token", "refresh-token"))
	access, refresh, err = storage.Load()
	assert.NoError(t, err)
	assert.Equal(t, "access-token", access)
	assert.Equal(t, "refresh-token", refresh)

	assert.NoError(t, storage.Clear())
	access, _, err = storage.Load()
	assert.NoError(t, err)
	assert.Empty(t, access)

	assert.NoError(t, storage.Clear(), "clearing twice is fine")
}

func TestStore_RestoresFromStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	storage := NewFileStorage(path)
	assert.NoError(t, storage.Save("persisted-access", "persisted-refresh"))

	store, err := NewStore(storage)
	assert.NoError(t, err)
	assert.True(t, store.Authenticated())
	assert.Equal(t, "persisted-access", store.AccessToken())
	assert.Nil(t, store.User(), "identity comes from the profile fetch, not storage")
}

func TestStore_SetAuthAndLogout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tokens.json")
	store, err := NewStore(NewFileStorage(path))
	assert.NoError(t, err)
	assert.False(t, store.Authenticated())

	user, company := testIdentity()
	assert.NoError(t, store.SetAuth(user, company, "access-token", "refresh-token"))
	assert.True(t, store.Authenticated())
	assert.Equal(t, "Demo Owner", store.User().Name)
	assert.Equal(t, "barbearia-demo", store.Company().Slug)

	// The token pair survived to disk.
	access, refresh, err := NewFileStorage(path).Load()
	assert.NoError(t, err)
	assert.Equal(t, "access-token", access)
	assert.Equal(t, "refresh-token", refresh)

	assert.NoError(t, store.Logout())
	assert.False(t, store.Authenticated())
	assert.Empty(t, store.AccessToken())
	assert.Empty(t, store.RefreshToken())
	assert.Nil(t, store.User())
	assert.Nil(t, store.Company())

	access, refresh, err = NewFileStorage(path).Load()
	assert.NoError(t, err)
	assert.Empty(t, access, "no token survives logout on disk either")
	assert.Empty(t, refresh)
}

func TestStore_FailedPersistLeavesStoreUnauthenticated(t *testing.T) {
	store, err := NewStore(&failingStorage{saveErr: errors.New("disk full")})
	assert.NoError(t, err)

	user, company := testIdentity()
	assert.Error(t, store.SetAuth(user, company, "access-token", "refresh-token"))

	assert.False(t, store.Authenticated(), "unpersisted credentials are never claimed")
	assert.Empty(t, store.AccessToken())
	assert.Nil(t, store.User())
}
