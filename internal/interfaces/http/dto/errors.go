package dto

import (
	"net/http"
	"strings"
)

// Stable domain error codes that map to something other than 500.
// Validation and conflict errors both surface as 400 on this API.
var errorCodeHTTPStatus = map[string]int{
	"NOT_FOUND":           http.StatusNotFound,
	"ALREADY_EXISTS":      http.StatusBadRequest,
	"PASSWORD_MISMATCH":   http.StatusBadRequest,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"UNAUTHORIZED":        http.StatusUnauthorized,
	"FORBIDDEN":           http.StatusForbidden,
}

// GetHTTPStatus resolves a domain error code to its HTTP status.
// Codes following the INVALID_* convention are treated as client errors;
// anything unknown defaults to 500.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
