package deleteEvent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"meetup/internal/http-server/handlers/apierr"
	"meetup/internal/lib/api/response"
	"meetup/internal/lib/session"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	DeleteEvent(ctx context.Context, hostID, id string) error
}

func New(log *slog.Logger, deleter EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, ok := apierr.UUIDParam(log, w, r, "id", "event id")
		if !ok {
			return
		}

		if err := deleter.DeleteEvent(r.Context(), session.Subject(r.Context()), eventID); err != nil {
			apierr.Render(log, w, r, err, "failed to delete event")
			return
		}

		log.Info("event deleted", slog.String("id", eventID))

		render.JSON(w, r, response.OK())
	}
}
