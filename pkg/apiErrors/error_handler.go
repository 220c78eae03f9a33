package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to clients
const (
	// Validation errors (VAL_*)
	ErrInvalidRequest      = "VAL_001" // Malformed request
	ErrMissingRequiredData = "VAL_002" // Required field absent
	ErrInvalidFormat       = "VAL_003" // Data format invalid
	ErrSheetStructure      = "VAL_004" // Spreadsheet structure does not match the scrape type

	// Import errors (IMP_*)
	ErrEmptyImport = "IMP_001" // Nothing to import

	// Server errors (SRV_*)
	ErrInternalServer    = "SRV_001" // Internal error
	ErrDatabaseOperation = "SRV_002" // Database call failed
)

var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrSheetStructure:      http.StatusUnprocessableEntity,
	ErrEmptyImport:         http.StatusBadRequest,
	ErrInternalServer:      http.StatusInternalServerError,
	ErrDatabaseOperation:   http.StatusInternalServerError,
}

// APIError is the standard error payload
type APIError struct {
	Code    string `json:"code"`              // Error code for the client
	Message string `json:"message,omitempty"` // Human-readable description
	Details any    `json:"details,omitempty"` // Optional extra context
}

// WriteError writes the standardized error to the HTTP response
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}
