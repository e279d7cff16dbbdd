// Package apierr maps service errors to HTTP responses.
package apierr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	resp "meetup/internal/lib/api/response"
	"meetup/internal/lib/logger/sl"
	"meetup/internal/lib/validate"
	"meetup/internal/policy"
	"meetup/internal/services/meetup"
	"meetup/internal/storage"
)

var conflicts = []error{
	storage.ErrAlreadyJoined,
	storage.ErrEventFull,
	storage.ErrEventNotOpen,
	storage.ErrUsernameTaken,
}

// Render writes the response for err. Anything unclassified is logged and
// reported as failMsg with status 500.
func Render(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error, failMsg string) {
	var verr *meetup.ValidationError
	if errors.As(err, &verr) {
		log.Info("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.FieldErrors(verr.Fields))
		return
	}

	switch {
	case errors.Is(err, policy.ErrUnauthenticated):
		log.Info("authentication required")
		render.Status(r, http.StatusUnauthorized)
		render.JSON(w, r, resp.Error("authentication required"))
		return
	case errors.Is(err, policy.ErrForbidden):
		log.Warn("forbidden", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, resp.Error("you are not the host of this event"))
		return
	case errors.Is(err, storage.ErrEventNotFound):
		log.Info("event not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, resp.Error(storage.ErrEventNotFound.Error()))
		return
	case errors.Is(err, storage.ErrParticipantNotFound):
		log.Info("participant not found")
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, resp.Error(storage.ErrParticipantNotFound.Error()))
		return
	}

	for _, c := range conflicts {
		if errors.Is(err, c) {
			log.Info("conflict", sl.Err(err))
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, resp.Error(c.Error()))
			return
		}
	}

	log.Error(failMsg, sl.Err(err))
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, resp.Error(failMsg))
}

// DecodeAndValidate reads a JSON body into dst and validates it. On failure
// the 400 response is already written and false is returned.
func DecodeAndValidate(log *slog.Logger, w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("failed to decode request"))
		return false
	}

	if n, ok := dst.(interface{ Normalize() }); ok {
		n.Normalize()
	}

	if err := validate.Struct(dst); err != nil {
		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			log.Error("failed to validate request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, resp.Error("invalid request"))
			return false
		}

		log.Info("invalid request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.ValidationError(validateErr))
		return false
	}

	return true
}

// UUIDParam reads a chi URL parameter that must hold a UUID. On failure the
// 400 response is already written.
func UUIDParam(log *slog.Logger, w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	value := chi.URLParam(r, name)
	if _, err := uuid.Parse(value); err != nil {
		log.Info("invalid "+label, slog.String(name, value))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, resp.Error("invalid "+label))
		return "", false
	}
	return value, true
}
