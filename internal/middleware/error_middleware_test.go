package middleware

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iac-center/praktika-backend/internal/app/models/dto"
	"github.com/iac-center/praktika-backend/internal/pkg/apperrors"
)

func handleError(t *testing.T, err error) (int, *dto.ErrorDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleAPIError(c, err)

	var body dto.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return w.Code, body.Error
}

func TestHandleAPIError_ValidationCarriesMessage(t *testing.T) {
	status, detail := handleError(t, apperrors.NewValidationError("fullName cannot be empty"))

	assert.Equal(t, 400, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
	assert.Equal(t, "fullName cannot be empty", detail.Details)
}

func TestHandleAPIError_WrappedValidationSentinel(t *testing.T) {
	status, detail := handleError(t, fmt.Errorf("%w: bad payload", apperrors.ErrValidationFailed))

	assert.Equal(t, 400, status)
	assert.Equal(t, dto.ErrorCodeValidationFailed, detail.Code)
	assert.Contains(t, detail.Details, "bad payload")
}

func TestHandleAPIError_InvalidCredentials(t *testing.T) {
	status, detail := handleError(t, fmt.Errorf("%w: signature verification failed", apperrors.ErrInvalidCredentials))

	assert.Equal(t, 401, status)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, detail.Code)
}

func TestHandleAPIError_EntitySentinels(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"student not found", apperrors.ErrStudentNotFound, 404, dto.ErrorCodeResourceNotFound},
		{"curator exists", apperrors.ErrCuratorAlreadyExists, 409, dto.ErrorCodeResourceAlreadyExists},
		{"report already submitted", apperrors.ErrReportAlreadySubmitted, 409, dto.ErrorCodeConflict},
		{"permission denied", apperrors.ErrPermissionDenied, 403, dto.ErrorCodeForbidden},
		{"unknown", fmt.Errorf("connection reset"), 500, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := handleError(t, tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, detail.Code)
		})
	}
}
