package updateEvent

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
	"meetup/internal/services/meetup"
)

type EventResponse struct {
	response.Response
	Event *models.Event `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	UpdateEvent(ctx context.Context, hostID, id string, in meetup.EventInput) (*models.Event, error)
}

func New(log *slog.Logger, updater EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, ok := apierr.UUIDParam(log, w, r, "id", "event id")
		if !ok {
			return
		}

		var req meetup.EventInput
		if !apierr.DecodeAndValidate(log, w, r, &req) {
			return
		}

		event, err := updater.UpdateEvent(r.Context(), session.Subject(r.Context()), eventID, req)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to update event")
			return
		}

		log.Info("event updated", slog.String("id", eventID))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    event,
		})
	}
}
