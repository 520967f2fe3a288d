package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal     = "ERR_INTERNAL"
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"
	ErrCodeInvalidJSON  = "ERR_INVALID_JSON"
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	ErrCodeForbidden    = "ERR_FORBIDDEN"
	ErrCodeNotFound     = "ERR_NOT_FOUND"
	ErrCodeConflict     = "ERR_CONFLICT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain
// rule codes are listed directly; save validation failures are client
// errors, payment and lifecycle rejections are unprocessable.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,

	// Shared domain codes
	"NOT_FOUND":         http.StatusNotFound,
	"ALREADY_EXISTS":    http.StatusConflict,
	"INVALID_INPUT":     http.StatusBadRequest,
	"UNAUTHORIZED":      http.StatusUnauthorized,
	"FORBIDDEN":         http.StatusForbidden,
	"INVALID_STATE":     http.StatusUnprocessableEntity,
	"STORE_UNAVAILABLE": http.StatusServiceUnavailable,

	// Invoice save validation
	"CLIENT_NAME_REQUIRED":   http.StatusBadRequest,
	"NO_BILLABLE_ITEMS":      http.StatusBadRequest,
	"PAYMENT_INFO_REQUIRED":  http.StatusBadRequest,
	"ZERO_TOTAL":             http.StatusBadRequest,
	"INVALID_ITEM_INDEX":     http.StatusBadRequest,
	"INVALID_OWNER":          http.StatusBadRequest,
	"INVALID_INVOICE_NUMBER": http.StatusBadRequest,

	// Invoice lifecycle
	"INVOICE_NOT_FOUND": http.StatusNotFound,
	"PAYMENT_NOT_FOUND": http.StatusNotFound,
	"PAYMENT_REJECTED":  http.StatusUnprocessableEntity,

	// Contracts
	"CONTRACT_NOT_FOUND":      http.StatusNotFound,
	"INVALID_CONTRACT_NUMBER": http.StatusBadRequest,
	"PROJECT_TITLE_REQUIRED":  http.StatusBadRequest,
	"INVALID_AMOUNT":          http.StatusBadRequest,
	"INVALID_DEPOSIT_PERCENT": http.StatusBadRequest,
	"INVALID_TRANSITION":      http.StatusUnprocessableEntity,
	"NOT_EDITABLE":            http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting
// to 500 for codes not in the map.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
