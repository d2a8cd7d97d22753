package http

import (
	"net/http"

	"github.com/MKhiriev/population-dashboard/internal/logger"
	"github.com/MKhiriev/population-dashboard/internal/utils"
)

// protect is an HTTP middleware that authenticates the caller.
//
// It extracts the bearer token from the "Authorization" header, resolves it
// through [service.IdentityService.ResolveIdentity] and stores the resulting
// identity in the request context (see [utils.WithIdentity]). The token may
// be issued by this service or by the external identity provider.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the header is absent or is not of the form "Bearer <token>";
//   - neither verifier accepts the token.
//
// OPTIONS requests pass through untouched so that CORS preflight requests
// never need a token.
func (h *Handler) protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Debug().Err(ErrInvalidAuthorizationHeader).Send()
			utils.WriteMessage(w, msgNoToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		identity, err := h.services.IdentityService.ResolveIdentity(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("token was rejected")
			utils.WriteMessage(w, msgTokenFailed, http.StatusUnauthorized)
			return
		}

		log.Debug().
			Str("source", identity.Source.String()).
			Bool("provisional", identity.IsProvisional()).
			Msg("caller authenticated")

		next.ServeHTTP(w, r.WithContext(utils.WithIdentity(ctx, identity)))
	})
}

// admin lets the request through only if the identity stored by protect
// carries the admin role. It must be mounted after protect.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin() {
			logger.FromRequest(r).Debug().Str("role", string(identity.Role)).Msg("admin role required")
			utils.WriteMessage(w, msgNotAdmin, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
