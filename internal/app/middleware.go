package app

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/pmodesk/pmodesk/pkg/auth"
	log "github.com/sirupsen/logrus"
)

// publicPaths can be reached without a token.
var publicPaths = map[string]bool{
	"/api/register":   true,
	"/api/adminLogin": true,
	"/api/userLogin":  true,
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies) {

	// Validate the x-access-token header and propagate the authenticated
	// identity into context for downstream services. The rejection body is
	// the same whether the token is missing, malformed, expired or revoked.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if publicPaths[req.URL.Path] {
				next.ServeHTTP(w, req)
				return
			}

			token := req.Header.Get("x-access-token")
			identity, err := deps.AuthService.Authenticate(token)
			if err != nil {
				log.Debugf("rejected request to %s: %v", req.URL.Path, err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "No token provided or token is blacklisted",
				})
				return
			}

			ctx := auth.WithIdentity(req.Context(), identity)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
