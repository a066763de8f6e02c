package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a bad-input error, rejected before any lock is taken.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New("VAL_002", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Lottery State Machine (LTRY) ----

func ErrKycRequired() *AppError {
	return New("LTRY_001", "Seller KYC verification required to activate lottery", http.StatusUnprocessableEntity)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New("LTRY_002", fmt.Sprintf("Illegal lottery transition from %s to %s", from, to), http.StatusConflict)
}

func ErrCancellationNotAllowed() *AppError {
	return New("LTRY_003", "Lottery has completed tickets and cannot be cancelled", http.StatusConflict)
}

// ---- Ticket Issuance (TKT) ----

func ErrSoldOut(remaining int) *AppError {
	msg := "Lottery is sold out"
	if remaining > 0 {
		msg = fmt.Sprintf("Only %d tickets remain", remaining)
	}
	return New("TKT_001", msg, http.StatusConflict)
}

func ErrLotteryExpired() *AppError {
	return New("TKT_002", "Lottery has expired and no longer accepts purchases", http.StatusGone)
}

func ErrInvalidQuantity() *AppError {
	return New("TKT_003", "Requested ticket quantity must be at least 1", http.StatusBadRequest)
}

// ---- Payment Ledger (PAY) ----

func ErrTransactionNotRefundable(status string) *AppError {
	return New("PAY_001", fmt.Sprintf("Transaction in status %s is not refundable", status), http.StatusConflict)
}

func ErrTransactionTerminal(status string) *AppError {
	return New("PAY_002", fmt.Sprintf("Transaction already settled as %s", status), http.StatusConflict)
}

// ---- Winner Drawing (DRW) ----

func ErrNoEligibleTickets() *AppError {
	return New("DRW_001", "No completed tickets eligible for drawing", http.StatusUnprocessableEntity)
}

func ErrLotteryNotClosed(status string) *AppError {
	return New("DRW_002", fmt.Sprintf("Lottery in status %s is not ready for drawing", status), http.StatusConflict)
}

// ---- System & Infrastructure (SYS / EXT) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

// ErrInvariantViolation flags corrupted money or drawing state. Never repaired
// silently; raised for operator attention.
func ErrInvariantViolation(detail string) *AppError {
	return New("SYS_003", fmt.Sprintf("Invariant violation: %s", detail), http.StatusInternalServerError)
}

func ErrExternalDependency(name string, err error) *AppError {
	return Wrap("EXT_001", fmt.Sprintf("External dependency %s failed", name), http.StatusBadGateway, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
