package authError

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"meetup/internal/lib/api/response"
)

const unknownError = "Unknown authentication error"

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.authError.New"

		msg := r.URL.Query().Get("error")
		if msg == "" {
			msg = unknownError
		}

		log.Info("auth error shown",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("error", msg),
		)

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(msg))
	}
}
