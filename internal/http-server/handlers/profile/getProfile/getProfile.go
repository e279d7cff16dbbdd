package getProfile

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

type ProfileResponse struct {
	response.Response
	Profile *models.Profile `json:"profile"`
	Email   string          `json:"email,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ProfileGetter
type ProfileGetter interface {
	Profile(ctx context.Context, userID string) (*models.Profile, error)
}

func New(log *slog.Logger, getter ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.profile.getProfile.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		claims, _ := session.FromContext(r.Context())

		profile, err := getter.Profile(r.Context(), claims.Subject)
		if err != nil {
			apierr.Render(log, w, r, err, "failed to get profile")
			return
		}

		render.JSON(w, r, ProfileResponse{
			Response: response.OK(),
			Profile:  profile,
			Email:    claims.Email,
		})
	}
}
