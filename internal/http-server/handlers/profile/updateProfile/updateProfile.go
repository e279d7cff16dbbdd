package updateProfile

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

type ProfileResponse struct {
	response.Response
	Profile *models.Profile `json:"profile"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileUpdater
type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID string, in meetup.ProfileInput) (*models.Profile, error)
}

func New(log *slog.Logger, updater ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.updateProfile.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req meetup.ProfileInput
		if !apierr.DecodeAndValidate(log, w, r, &req) {
			return
		}

		profile, err := updater.UpdateProfile(r.Context(), session.Subject(r.Context()), req)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to update profile")
			return
		}

		log.Info("profile updated", slog.String("id", profile.ID))

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			Profile:  profile,
		})
	}
}
