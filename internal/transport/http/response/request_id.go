package response

import (
	"net/http"

	pkgctx "github.com/baechuer/board-service/internal/pkg/context"
)

// RequestIDFromContext extracts the id set by the request-id middleware.
func RequestIDFromContext(r *http.Request) string {
	return pkgctx.GetRequestID(r.Context())
}
