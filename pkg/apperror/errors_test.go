package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	tests := []struct {
		name     string
		appErr   *AppError
		expected string
	}{
		{
			name:     "without wrapped error",
			appErr:   New("TKT_001", "Lottery is sold out", http.StatusConflict),
			expected: "[TKT_001] Lottery is sold out",
		},
		{
			name:     "with wrapped error",
			appErr:   Wrap("SYS_001", "DB error", http.StatusInternalServerError, fmt.Errorf("connection refused")),
			expected: "[SYS_001] DB error: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.appErr.Error())
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := fmt.Errorf("inner error")
	appErr := Wrap("SYS_001", "wrapped", http.StatusInternalServerError, inner)

	assert.True(t, errors.Is(appErr, inner))
}

func TestAppError_IsNilUnwrap(t *testing.T) {
	appErr := New("TKT_003", "test", http.StatusBadRequest)
	assert.Nil(t, appErr.Unwrap())
}

func TestLotteryErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"KycRequired", ErrKycRequired(), "LTRY_001", 422},
		{"InvalidTransition", ErrInvalidTransition("draft", "closed"), "LTRY_002", 409},
		{"CancellationNotAllowed", ErrCancellationNotAllowed(), "LTRY_003", 409},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestIssuanceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"SoldOut", ErrSoldOut(0), "TKT_001", 409},
		{"LotteryExpired", ErrLotteryExpired(), "TKT_002", 410},
		{"InvalidQuantity", ErrInvalidQuantity(), "TKT_003", 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestSoldOut_ReportsRemaining(t *testing.T) {
	err := ErrSoldOut(3)
	assert.Contains(t, err.Message, "3 tickets remain")

	err = ErrSoldOut(0)
	assert.Equal(t, "Lottery is sold out", err.Message)
}

func TestDrawingErrors(t *testing.T) {
	noTickets := ErrNoEligibleTickets()
	assert.Equal(t, "DRW_001", noTickets.Code)
	assert.Equal(t, 422, noTickets.HTTPStatus)

	notClosed := ErrLotteryNotClosed("active")
	assert.Equal(t, "DRW_002", notClosed.Code)
	assert.Contains(t, notClosed.Message, "active")
}

func TestSystemErrors(t *testing.T) {
	inner := fmt.Errorf("pg: connection closed")
	dbErr := ErrDatabaseError(inner)
	assert.Equal(t, "SYS_001", dbErr.Code)
	assert.Equal(t, 500, dbErr.HTTPStatus)
	assert.True(t, errors.Is(dbErr, inner))

	lockErr := ErrLockTimeout(inner)
	assert.Equal(t, "SYS_002", lockErr.Code)
	assert.Equal(t, 503, lockErr.HTTPStatus)

	invErr := ErrInvariantViolation("commission split mismatch")
	assert.Equal(t, "SYS_003", invErr.Code)
	assert.Contains(t, invErr.Message, "commission split mismatch")

	extErr := ErrExternalDependency("payment gateway", inner)
	assert.Equal(t, "EXT_001", extErr.Code)
	assert.Equal(t, 502, extErr.HTTPStatus)
}

func TestNotFoundEntity(t *testing.T) {
	err := ErrNotFound("Lottery")
	assert.Contains(t, err.Message, "Lottery")
	assert.Equal(t, "VAL_002", err.Code)
}
