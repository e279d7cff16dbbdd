package joinEvent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"meetup/internal/http-server/handlers/apierr"
	"meetup/internal/lib/api/response"
	"meetup/internal/lib/session"
	"meetup/internal/lib/slug"
	"meetup/internal/models"
	"meetup/internal/services/meetup"
)

type JoinResponse struct {
	response.Response
	Participant *models.Participant `json:"participant"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventJoiner
type EventJoiner interface {
	JoinEvent(ctx context.Context, slug, userID string, in meetup.JoinInput) (*models.Participant, error)
}

// New registers a guest through the share link. Signed-in users are linked to
// their registration; anonymous guests are not.
func New(log *slog.Logger, joiner EventJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.participant.joinEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventSlug := chi.URLParam(r, "slug")
		if !slug.Valid(eventSlug) {
			log.Info("invalid slug", slog.String("slug", eventSlug))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("event not found"))
			return
		}

		var req meetup.JoinInput
		if !apierr.DecodeAndValidate(log, w, r, &req) {
			return
		}

		participant, err := joiner.JoinEvent(r.Context(), eventSlug, session.Subject(r.Context()), req)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to join event")
			return
		}

		log.Info("participant joined",
			slog.String("slug", eventSlug),
			slog.String("participant_id", participant.ID),
		)

		render.JSON(w, r, JoinResponse{
			Response:    response.OK(),
			Participant: participant,
		})
	}
}
