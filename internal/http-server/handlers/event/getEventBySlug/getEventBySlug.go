package getEventBySlug

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
)

type PublicEventResponse struct {
	response.Response
	*models.PublicEvent
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PublicEventGetter
type PublicEventGetter interface {
	PublicEvent(ctx context.Context, slug, viewerID string) (*models.PublicEvent, error)
}

// New serves the share-link page. Anyone may call it; a signed-in viewer also
// gets is_host and a prefilled guest name.
func New(log *slog.Logger, getter PublicEventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventBySlug.New"

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

		view, err := getter.PublicEvent(r.Context(), eventSlug, session.Subject(r.Context()))
		if err != nil {
			apierr.Render(log, w, r, err, "failed to get event")
			return
		}

		render.JSON(w, r, PublicEventResponse{
			Response:    response.OK(),
			PublicEvent: view,
		})
	}
}
