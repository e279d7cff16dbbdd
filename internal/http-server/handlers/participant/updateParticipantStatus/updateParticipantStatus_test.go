package updateParticipantStatus

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetup/internal/http-server/handlers/participant/updateParticipantStatus/mocks"
	"meetup/internal/lib/logger/handlers/slogdiscard"
	"meetup/internal/lib/session"
	"meetup/internal/models"
	"meetup/internal/policy"
	"meetup/internal/storage"
)

const (
	hostID        = "host-1"
	eventID       = "0b8f7c3e-3f0c-4a64-9c1e-7d2a4a8f1b11"
	participantID = "7a1c2d3e-0000-4000-8000-000000000001"
)

func TestUpdateParticipantStatusHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		participantID  string
		body           string
		subject        string
		mockSetup      func(m *mocks.ParticipantStatusUpdater)
		expectedStatus int
		expectedBody   string
		contains       string
	}{
		{
			name:          "Cancel",
			participantID: participantID,
			body:          `{"status": "cancelled"}`,
			subject:       hostID,
			mockSetup: func(m *mocks.ParticipantStatusUpdater) {
				m.On("UpdateParticipantStatus", mock.Anything, hostID, eventID, participantID, models.ParticipantStatusCancelled).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","participant_status":"cancelled"}`,
		},
		{
			name:           "Unknown status",
			participantID:  participantID,
			body:           `{"status": "maybe"}`,
			subject:        hostID,
			mockSetup:      func(m *mocks.ParticipantStatusUpdater) {},
			expectedStatus: http.StatusBadRequest,
			contains:       `"status":["field status must be one of [pending confirmed cancelled]"]`,
		},
		{
			name:           "Invalid participant id",
			participantID:  "p1",
			body:           `{"status": "pending"}`,
			subject:        hostID,
			mockSetup:      func(m *mocks.ParticipantStatusUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid participant id"}`,
		},
		{
			name:          "Not the host",
			participantID: participantID,
			body:          `{"status": "pending"}`,
			subject:       "intruder",
			mockSetup: func(m *mocks.ParticipantStatusUpdater) {
				m.On("UpdateParticipantStatus", mock.Anything, "intruder", eventID, participantID, models.ParticipantStatusPending).
					Return(policy.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"you are not the host of this event"}`,
		},
		{
			name:          "Participant of another event",
			participantID: participantID,
			body:          `{"status": "pending"}`,
			subject:       hostID,
			mockSetup: func(m *mocks.ParticipantStatusUpdater) {
				m.On("UpdateParticipantStatus", mock.Anything, hostID, eventID, participantID, models.ParticipantStatusPending).
					Return(storage.ErrParticipantNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"participant not found"}`,
		},
		{
			name:          "Confirming beyond capacity",
			participantID: participantID,
			body:          `{"status": "confirmed"}`,
			subject:       hostID,
			mockSetup: func(m *mocks.ParticipantStatusUpdater) {
				m.On("UpdateParticipantStatus", mock.Anything, hostID, eventID, participantID, models.ParticipantStatusConfirmed).
					Return(storage.ErrEventFull)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"event is full"}`,
		},
		{
			name:          "Database error",
			participantID: participantID,
			body:          `{"status": "pending"}`,
			subject:       hostID,
			mockSetup: func(m *mocks.ParticipantStatusUpdater) {
				m.On("UpdateParticipantStatus", mock.Anything, hostID, eventID, participantID, models.ParticipantStatusPending).
					Return(errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update participant status"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewParticipantStatusUpdater(t)
			tc.mockSetup(mockUpdater)

			req, err := http.NewRequest(http.MethodPatch, "/", bytes.NewBufferString(tc.body))
			require.NoError(t, err)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", eventID)
			rctx.URLParams.Add("participantID", tc.participantID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			ctx = session.WithClaims(ctx, session.Claims{Subject: tc.subject})

			rr := httptest.NewRecorder()
			New(logger, mockUpdater).ServeHTTP(rr, req.WithContext(ctx))

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
			if tc.contains != "" {
				assert.Contains(t, rr.Body.String(), tc.contains)
			}
		})
	}
}
