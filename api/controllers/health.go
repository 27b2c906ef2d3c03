package controllers

import (
	"net/http"

	"github.com/kisanbazaar/kisanbazaar-backend/api/responses"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/redis"
)

// Live reports process liveness only.
func Live() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]string{"service": "ok"})
	}
}

// Health reports readiness: liveness plus downstream connectivity.
func Health(database db.Pinger, cache redis.Pinger, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{
			"service": "ok",
			"db":      "ok",
			"redis":   "ok",
		}

		healthy := true
		if database != nil {
			if err := database.Ping(r.Context()); err != nil {
				status["db"] = "unreachable"
				healthy = false
			}
		}
		if cache != nil {
			if err := cache.Ping(r.Context()); err != nil {
				status["redis"] = "unreachable"
				healthy = false
			}
		}

		if !healthy {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeDependency, "dependency unavailable").WithDetails(status))
			return
		}
		responses.WriteSuccess(w, status)
	}
}
