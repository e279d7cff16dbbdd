package getAttendance

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

type AttendanceResponse struct {
	response.Response
	*models.AttendanceSheet
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AttendanceGetter
type AttendanceGetter interface {
	Attendance(ctx context.Context, hostID, id string) (*models.AttendanceSheet, error)
}

func New(log *slog.Logger, getter AttendanceGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAttendance.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		eventID, ok := apierr.UUIDParam(log, w, r, "id", "event id")
		if !ok {
			return
		}

		sheet, err := getter.Attendance(r.Context(), session.Subject(r.Context()), eventID)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to get attendance")
			return
		}

		render.JSON(w, r, AttendanceResponse{
			Response:        response.OK(),
			AttendanceSheet: sheet,
		})
	}
}
