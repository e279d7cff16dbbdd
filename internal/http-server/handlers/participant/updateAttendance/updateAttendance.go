package updateAttendance

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"meetup/internal/http-server/handlers/apierr"
	"meetup/internal/lib/api/response"
	"meetup/internal/lib/session"
	"meetup/internal/services/meetup"
)

type AttendanceResponse struct {
	response.Response
	Attended bool `json:"attended"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceUpdater
type AttendanceUpdater interface {
	UpdateAttendance(ctx context.Context, hostID, eventID, participantID string, attended bool) error
}

func New(log *slog.Logger, updater AttendanceUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.participant.updateAttendance.New"

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

		var req meetup.AttendanceInput
		if !apierr.DecodeAndValidate(log, w, r, &req) {
			return
		}

		err := updater.UpdateAttendance(r.Context(), session.Subject(r.Context()), eventID, participantID, *req.Attended)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to update attendance")
			return
		}

		log.Info("attendance updated",
			slog.String("event_id", eventID),
			slog.String("participant_id", participantID),
			slog.Bool("attended", *req.Attended),
		)

		render.JSON(w, r, AttendanceResponse{
			Response: response.OK(),
			Attended: *req.Attended,
		})
	}
}
