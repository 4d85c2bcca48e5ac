package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/crewhub/internal/auth/domain"
	"github.com/allisson/crewhub/internal/auth/http/dto"
	httpMocks "github.com/allisson/crewhub/internal/auth/http/mocks"
)

func setupResetTestHandler(t *testing.T) (*PasswordResetHandler, *httpMocks.MockPasswordResetUseCase) {
	t.Helper()

	gin.SetMode(gin.TestMode)

	mockUseCase := &httpMocks.MockPasswordResetUseCase{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewPasswordResetHandler(mockUseCase, logger), mockUseCase
}

func TestPasswordResetHandler_RequestHandler(t *testing.T) {
	request := func() dto.RequestResetRequest {
		return dto.RequestResetRequest{
			PrincipalID:   uuid.Must(uuid.NewV7()).String(),
			PrincipalType: "employee",
		}
	}

	t.Run("Success_Returns202", func(t *testing.T) {
		handler, mockUseCase := setupResetTestHandler(t)

		mockUseCase.On("Request", mock.Anything, mock.Anything).
			Return(&authDomain.RequestResetOutput{
				PlainToken: "plain-token",
				ExpiresAt:  time.Now().UTC().Add(time.Hour),
			}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/reset/request", request())
		handler.RequestHandler(c)

		assert.Equal(t, http.StatusAccepted, w.Code)
		// The plain token never appears in the HTTP response.
		assert.NotContains(t, w.Body.String(), "plain-token")
	})

	t.Run("Success_UnknownPrincipalAnswersIdentically", func(t *testing.T) {
		handler, mockUseCase := setupResetTestHandler(t)

		mockUseCase.On("Request", mock.Anything, mock.Anything).
			Return(nil, authDomain.ErrPrincipalNotFound).
			Once()

		okHandler, okUseCase := setupResetTestHandler(t)
		okUseCase.On("Request", mock.Anything, mock.Anything).
			Return(&authDomain.RequestResetOutput{PlainToken: "t", ExpiresAt: time.Now()}, nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/reset/request", request())
		handler.RequestHandler(c)

		c2, w2 := createTestContext(http.MethodPost, "/v1/auth/reset/request", request())
		okHandler.RequestHandler(c2)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Equal(t, w2.Code, w.Code)
		assert.JSONEq(t, w2.Body.String(), w.Body.String())
	})
}

func TestPasswordResetHandler_ConsumeHandler(t *testing.T) {
	request := dto.ConsumeResetRequest{
		Token:     "plain-token",
		NewSecret: "newS3cret!",
	}

	t.Run("Success", func(t *testing.T) {
		handler, mockUseCase := setupResetTestHandler(t)

		expectedInput := &authDomain.ConsumeResetInput{
			PlainToken: "plain-token",
			NewSecret:  "newS3cret!",
		}

		mockUseCase.On("Consume", mock.Anything, expectedInput).
			Return(nil).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/reset/consume", request)
		handler.ConsumeHandler(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var response dto.ConsumeResetResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "credential_updated", response.Status)
	})

	t.Run("Error_TokenStatesMapToDistinctCodes", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
			wantError  string
		}{
			{name: "NotFound", err: authDomain.ErrResetTokenNotFound, wantStatus: http.StatusNotFound, wantError: "token_not_found"},
			{name: "Expired", err: authDomain.ErrResetTokenExpired, wantStatus: http.StatusGone, wantError: "token_expired"},
			{name: "Used", err: authDomain.ErrResetTokenUsed, wantStatus: http.StatusConflict, wantError: "token_used"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				handler, mockUseCase := setupResetTestHandler(t)

				mockUseCase.On("Consume", mock.Anything, mock.Anything).
					Return(tt.err).
					Once()

				c, w := createTestContext(http.MethodPost, "/v1/auth/reset/consume", request)
				handler.ConsumeHandler(c)

				assert.Equal(t, tt.wantStatus, w.Code)
				assert.Contains(t, w.Body.String(), tt.wantError)
			})
		}
	})

	t.Run("Error_WeakSecret", func(t *testing.T) {
		handler, mockUseCase := setupResetTestHandler(t)

		mockUseCase.On("Consume", mock.Anything, mock.Anything).
			Return(authDomain.ValidatePassword("no")).
			Once()

		c, w := createTestContext(http.MethodPost, "/v1/auth/reset/consume", request)
		handler.ConsumeHandler(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}
