package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/auth"
)

// workerIDFromClaims extracts the authenticated worker id from the
// verified token. Numeric JWT claims decode as float64.
func workerIDFromClaims(r *http.Request) (int64, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	idFloat, ok := claims["worker_id"].(float64)
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return int64(idFloat), nil
}
