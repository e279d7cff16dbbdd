package updateEvent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetup/internal/http-server/handlers/event/updateEvent/mocks"
	"meetup/internal/lib/logger/handlers/slogdiscard"
	"meetup/internal/lib/session"
	"meetup/internal/models"
	"meetup/internal/policy"
	"meetup/internal/services/meetup"
	"meetup/internal/storage"
)

const (
	hostID  = "host-1"
	eventID = "0b8f7c3e-3f0c-4a64-9c1e-7d2a4a8f1b11"
	body    = `{"title": "Thursday Swim", "event_date": "2026-03-05T19:00", "location": "City Pool", "fee": 5000}`
)

func newRequest(t *testing.T, id, body, subject string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPut, "/protected/events/"+id+"/edit", bytes.NewBufferString(body))
	require.NoError(t, err)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)

	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if subject != "" {
		ctx = session.WithClaims(ctx, session.Claims{Subject: subject})
	}

	return req.WithContext(ctx)
}

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	fee := 5000
	updated := &models.Event{
		ID:        eventID,
		HostID:    hostID,
		Slug:      "V1StGXR8",
		Title:     "Thursday Swim",
		EventDate: time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC),
		Location:  "City Pool",
		Fee:       fee,
		Status:    models.EventStatusOpen,
	}

	testCases := []struct {
		name           string
		id             string
		body           string
		subject        string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:    "Success",
			id:      eventID,
			body:    body,
			subject: hostID,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, hostID, eventID, meetup.EventInput{
					Title:     "Thursday Swim",
					EventDate: "2026-03-05T19:00",
					Location:  "City Pool",
					Fee:       &fee,
				}).Return(updated, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp EventResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Event)
				assert.Equal(t, "V1StGXR8", resp.Event.Slug)
				assert.Equal(t, 5000, resp.Event.Fee)
			},
		},
		{
			name:           "Invalid id",
			id:             "42",
			body:           body,
			subject:        hostID,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id"}`,
		},
		{
			name:           "Validation failure",
			id:             eventID,
			body:           `{"title": ""}`,
			subject:        hostID,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			checkBody: func(t *testing.T, body string) {
				assert.Contains(t, body, `"title":["field title is a required field"]`)
			},
		},
		{
			name:    "Not the host",
			id:      eventID,
			body:    body,
			subject: "intruder",
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, "intruder", eventID, mock.Anything).
					Return(nil, fmt.Errorf("op: %w", policy.ErrForbidden))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you are not the host of this event"}`,
		},
		{
			name:    "Not found",
			id:      eventID,
			body:    body,
			subject: hostID,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, hostID, eventID, mock.Anything).
					Return(nil, fmt.Errorf("op: %w", storage.ErrEventNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:    "Database error",
			id:      eventID,
			body:    body,
			subject: hostID,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("UpdateEvent", mock.Anything, hostID, eventID, mock.Anything).
					Return(nil, errors.New("connection reset"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewEventUpdater(t)
			tc.mockSetup(mockUpdater)

			rr := httptest.NewRecorder()
			New(logger, mockUpdater).ServeHTTP(rr, newRequest(t, tc.id, tc.body, tc.subject))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			}
		})
	}
}
