package updateEventStatus

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

type StatusResponse struct {
	response.Response
	Status models.EventStatus `json:"event_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventStatusUpdater
type EventStatusUpdater interface {
	UpdateEventStatus(ctx context.Context, hostID, id string, status models.EventStatus) error
}

func New(log *slog.Logger, updater EventStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEventStatus.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, ok := apierr.UUIDParam(log, w, r, "id", "event id")
		if !ok {
			return
		}

		var req meetup.EventStatusInput
		if !apierr.DecodeAndValidate(log, w, r, &req) {
			return
		}

		err := updater.UpdateEventStatus(r.Context(), session.Subject(r.Context()), eventID, req.Status)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to update event status")
			return
		}

		log.Info("event status updated", slog.String("id", eventID), slog.String("status", string(req.Status)))

		render.JSON(w, r, StatusResponse{
			Response: response.OK(),
			Status:   req.Status,
		})
	}
}
