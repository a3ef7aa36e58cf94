package middleware

import (
	"net/http"
	"strings"

	"github.com/baechuer/board-service/internal/application/user"
	"github.com/baechuer/board-service/internal/domain"
	pkgctx "github.com/baechuer/board-service/internal/pkg/context"
)

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies Authorization: Bearer <access_token> and injects the caller
// identity into the request context.
func Auth(verifier user.TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			parts := strings.SplitN(h, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			claims, err := verifier.Verify(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if claims.UserID <= 0 {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			ctx := pkgctx.WithIdentity(r.Context(), claims.UserID, string(claims.Role))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
