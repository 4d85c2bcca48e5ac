package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/crewhub/internal/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performError(t *testing.T, err error) (*httptest.ResponseRecorder, ErrorResponse) {
	t.Helper()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleErrorGin(c, err, nil)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"NotFound", apperrors.Wrap(apperrors.ErrNotFound, "employee not found"), http.StatusNotFound, "not_found"},
		{"Conflict", apperrors.Wrap(apperrors.ErrConflict, "duplicate email"), http.StatusConflict, "conflict"},
		{"InvalidInput", apperrors.Wrap(apperrors.ErrInvalidInput, "name is required"), http.StatusUnprocessableEntity, "invalid_input"},
		{"Unauthorized", apperrors.Wrap(apperrors.ErrUnauthorized, "bad secret"), http.StatusUnauthorized, "unauthorized"},
		{"Forbidden", apperrors.Wrap(apperrors.ErrForbidden, "not owner"), http.StatusForbidden, "forbidden"},
		{"Internal", apperrors.New("database exploded"), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := performError(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, body.Error)
		})
	}
}

func TestHandleErrorGin_InternalErrorHidesDetails(t *testing.T) {
	_, body := performError(t, apperrors.New("pq: connection refused"))
	assert.NotContains(t, body.Message, "pq:")
}

func TestHandleErrorGin_UnauthorizedIsGeneric(t *testing.T) {
	// Distinct internal auth failures must collapse to one body.
	_, inactive := performError(t, apperrors.Wrap(apperrors.ErrUnauthorized, "principal inactive"))
	_, rejected := performError(t, apperrors.Wrap(apperrors.ErrUnauthorized, "wrong secret"))
	assert.Equal(t, inactive, rejected)
}
