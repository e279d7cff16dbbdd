package updateParticipantStatus

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
	ParticipantStatus models.ParticipantStatus `json:"participant_status"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ParticipantStatusUpdater
type ParticipantStatusUpdater interface {
	UpdateParticipantStatus(ctx context.Context, hostID, eventID, participantID string, status models.ParticipantStatus) error
}

func New(log *slog.Logger, updater ParticipantStatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.participant.updateParticipantStatus.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, ok := apierr.UUIDParam(log, w, r, "id", "event id")
		if !ok {
			return
		}
		participantID, ok := apierr.UUIDParam(log, w, r, "participantID", "participant id")
		if !ok {
			return
		}

		var req meetup.ParticipantStatusInput
		if !apierr.DecodeAndValidate(log, w, r, &req) {
			return
		}

		err := updater.UpdateParticipantStatus(r.Context(), session.Subject(r.Context()), eventID, participantID, req.Status)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to update participant status")
			return
		}

		log.Info("participant status updated",
			slog.String("event_id", eventID),
			slog.String("participant_id", participantID),
			slog.String("status", string(req.Status)),
		)

		render.JSON(w, r, StatusResponse{
			Response:          response.OK(),
			ParticipantStatus: req.Status,
		})
	}
}
