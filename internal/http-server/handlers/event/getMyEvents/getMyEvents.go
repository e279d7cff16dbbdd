package getMyEvents

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

type EventsResponse struct {
	response.Response
	Events []models.EventSummary `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=MyEventsGetter
type MyEventsGetter interface {
	MyEvents(ctx context.Context, hostID string) ([]models.EventSummary, error)
}

func New(log *slog.Logger, getter MyEventsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getMyEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		events, err := getter.MyEvents(r.Context(), session.Subject(r.Context()))
		if err != nil {
			apierr.Render(log, w, r, err, "failed to get events")
			return
		}

		if events == nil {
			events = []models.EventSummary{}
		}

		log.Info("events retrieved", slog.Int("count", len(events)))

		render.JSON(w, r, EventsResponse{
			Response: response.OK(),
			Events:   events,
		})
	}
}
