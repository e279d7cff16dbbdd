package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"

	"meetup/internal/config"
	"meetup/internal/http-server/handlers/auth/authError"
	"meetup/internal/http-server/handlers/auth/callback"
	"meetup/internal/http-server/handlers/event/createEvent"
	"meetup/internal/http-server/handlers/event/deleteEvent"
	"meetup/internal/http-server/handlers/event/getAttendance"
	"meetup/internal/http-server/handlers/event/getEventById"
	"meetup/internal/http-server/handlers/event/getEventBySlug"
	"meetup/internal/http-server/handlers/event/getMyEvents"
	"meetup/internal/http-server/handlers/event/updateEvent"
	"meetup/internal/http-server/handlers/event/updateEventStatus"
	"meetup/internal/http-server/handlers/health"
	"meetup/internal/http-server/handlers/participant/joinEvent"
	"meetup/internal/http-server/handlers/participant/updateAttendance"
	"meetup/internal/http-server/handlers/participant/updateParticipantStatus"
	"meetup/internal/http-server/handlers/profile/getProfile"
	"meetup/internal/http-server/handlers/profile/updateProfile"
	"meetup/internal/http-server/middleware/auth"
	"meetup/internal/http-server/middleware/mwlogger"
)

// Meetup is everything the handlers need from the service layer.
type Meetup interface {
	createEvent.EventCreator
	updateEvent.EventUpdater
	deleteEvent.EventDeleter
	updateEventStatus.EventStatusUpdater
	getMyEvents.MyEventsGetter
	getEventBySlug.PublicEventGetter
	getEventById.HostEventGetter
	getAttendance.AttendanceGetter
	joinEvent.EventJoiner
	updateParticipantStatus.ParticipantStatusUpdater
	updateAttendance.AttendanceUpdater
	getProfile.ProfileGetter
	updateProfile.ProfileUpdater
}

type Deps struct {
	Meetup    Meetup
	Exchanger callback.CodeExchanger
	DB        health.Pinger
	Auth      *auth.Middleware

	RateLimit     config.RateLimit
	SecureCookies bool
	// TrustProxy enables middleware.RealIP. Without it the join rate limit
	// keys on the connection address, so forwarded headers cannot dodge it.
	TrustProxy bool
}

func New(log *slog.Logger, d Deps) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	if d.TrustProxy {
		router.Use(middleware.RealIP)
	}
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)
	router.Use(d.Auth.Optional)

	router.Get("/healthz", health.New(log, d.DB))

	router.Route("/auth", func(r chi.Router) {
		r.Get("/callback", callback.New(log, d.Exchanger, d.SecureCookies))
		r.Get("/error", authError.New(log))
	})

	router.Route("/events/{slug}", func(r chi.Router) {
		r.Get("/", getEventBySlug.New(log, d.Meetup))

		r.Group(func(r chi.Router) {
			if d.RateLimit.Enabled {
				r.Use(httprate.LimitByIP(d.RateLimit.Requests, d.RateLimit.Window))
			}
			r.Post("/join", joinEvent.New(log, d.Meetup))
		})
	})

	router.Route("/protected", func(r chi.Router) {
		r.Use(d.Auth.Require)

		r.Get("/events", getMyEvents.New(log, d.Meetup))
		r.Post("/events/new", createEvent.New(log, d.Meetup))

		r.Route("/events/{id}", func(r chi.Router) {
			r.Get("/", getEventById.New(log, d.Meetup))
			r.Delete("/", deleteEvent.New(log, d.Meetup))
			r.Put("/edit", updateEvent.New(log, d.Meetup))
			r.Patch("/status", updateEventStatus.New(log, d.Meetup))
			r.Get("/attendance", getAttendance.New(log, d.Meetup))

			r.Patch("/participants/{participantID}/status", updateParticipantStatus.New(log, d.Meetup))
			r.Patch("/participants/{participantID}/attendance", updateAttendance.New(log, d.Meetup))
		})

		r.Get("/profile", getProfile.New(log, d.Meetup))
		r.Put("/profile", updateProfile.New(log, d.Meetup))
	})

	return router
}
