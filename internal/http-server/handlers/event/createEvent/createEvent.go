package createEvent

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
	EventID string `json:"event_id"`
	Slug    string `json:"slug"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, hostID string, in meetup.EventInput) (*models.Event, error)
}

func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req meetup.EventInput
		if !apierr.DecodeAndValidate(log, w, r, &req) {
			return
		}

		event, err := creator.CreateEvent(r.Context(), session.Subject(r.Context()), req)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to create event")
			return
		}

		log.Info("event created", slog.String("id", event.ID), slog.String("slug", event.Slug))

		responseOK(w, r, event)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, event *models.Event) {
	render.JSON(w, r, EventResponse{
		Response: response.OK(),
		EventID:  event.ID,
		Slug:     event.Slug,
	})
}
