package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/brewhub-app/brewhub-backend-go/internal/domain/employee"
	"github.com/brewhub-app/brewhub-backend-go/internal/handler/http/response"
)

// RequireAdmin requires the admin position
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrAdminAccessRequired)
			return
		}

		positionStr, ok := claims["position"].(string)
		if !ok {
			response.HandleError(w, employee.ErrAdminAccessRequired)
			return
		}

		if employee.Position(positionStr) != employee.PositionAdmin {
			response.HandleError(w, employee.ErrAdminAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireManager requires the manager or admin position
func RequireManager(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		positionStr, ok := claims["position"].(string)
		if !ok {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		position := employee.Position(positionStr)
		if position != employee.PositionManager && position != employee.PositionAdmin {
			response.HandleError(w, employee.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
