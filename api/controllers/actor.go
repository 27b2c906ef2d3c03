package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kisanbazaar/kisanbazaar-backend/api/middleware"
	pkgerrors "github.com/kisanbazaar/kisanbazaar-backend/pkg/errors"
)

// actorID returns the authenticated user's id from the request context.
func actorID(r *http.Request) (uuid.UUID, error) {
	raw := middleware.UserIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid credentials")
	}
	return id, nil
}
