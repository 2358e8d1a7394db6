package middlewares

import (
	"context"
	"net/http"
	"strings"

	"bizsuite-service/internal/pkg/constvars"
	"bizsuite-service/internal/pkg/exceptions"
	"bizsuite-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a live redis session and stores
// it in the request context. A valid JWT whose session was deleted by logout
// is rejected the same way as an expired one.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}
		tokenString := strings.TrimPrefix(header, constvars.AuthorizationBearerPrefix)

		sessionID, err := utils.ParseJWT(tokenString, utils.TokenTypeAccess, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(nil))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionDataKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
