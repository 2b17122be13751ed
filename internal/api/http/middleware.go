package httpapi

import (
	"net/http"

	"github.com/2Ricky2/canteenpay/internal/domain"
)

const sessionHeader = "X-Session-Token"

// requireAdmin guards the elevated routes behind a valid admin session.
// The original app trusted whatever user object the client carried;
// the token check is the server-side boundary it was missing.
func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get(sessionHeader)
		if token == "" {
			failWith(w, http.StatusUnauthorized, "Missing session token")
			return
		}

		user, err := h.Accounts.Session(r.Context(), token)
		if err != nil {
			failWith(w, http.StatusUnauthorized, "Invalid or expired session")
			return
		}
		if user.Role != domain.RoleAdmin {
			failWith(w, http.StatusForbidden, "Admin access required")
			return
		}

		next(w, r)
	}
}
