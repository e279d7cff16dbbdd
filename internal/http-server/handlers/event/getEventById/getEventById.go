package getEventById

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"meetup/internal/http-server/handlers/apierr"
	"meetup/internal/lib/api/response"
	"meetup/internal/lib/session"
	"meetup/internal/models"
)

type HostEventResponse struct {
	response.Response
	*models.HostEvent
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=HostEventGetter
type HostEventGetter interface {
	HostEvent(ctx context.Context, hostID, id string) (*models.HostEvent, error)
}

func New(log *slog.Logger, getter HostEventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEventById.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, ok := apierr.UUIDParam(log, w, r, "id", "event id")
		if !ok {
			return
		}

		view, err := getter.HostEvent(r.Context(), session.Subject(r.Context()), eventID)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to get event")
			return
		}

		log.Info("event retrieved", slog.String("id", eventID), slog.Int("participants", len(view.Participants)))

		render.JSON(w, r, HostEventResponse{
			Response:  response.OK(),
			HostEvent: view,
		})
	}
}
