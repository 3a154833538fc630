package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents error response structure
type ErrorResponse struct {
	Error   string            `json:"error"`             // Error message
	Details map[string]string `json:"details,omitempty"` // Validation details
}

// ValidationHelper provides shared validation functionality
type ValidationHelper struct {
	validator *validator.Validate
}

// NewValidationHelper creates a new validation helper
func NewValidationHelper() *ValidationHelper {
	return &ValidationHelper{
		validator: validator.New(),
	}
}

// ValidateStruct validates a struct and returns validation errors
func (vh *ValidationHelper) ValidateStruct(s any) error {
	return vh.validator.Struct(s)
}

// validateInput wraps validator failures as an InputError
func (vh *ValidationHelper) validateInput(s any, message string) error {
	err := vh.validator.Struct(s)
	if err == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if errors.As(err, &fields) {
		return &InputError{Message: message, Fields: fields}
	}
	return invalidInput("%s: %v", message, err)
}

// SendErrorResponse sends a JSON error response
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int, validationErr error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResp := ErrorResponse{Error: message}
	var fields validator.ValidationErrors
	if validationErr != nil && errors.As(validationErr, &fields) {
		errorResp.Details = make(map[string]string)
		for _, err := range fields {
			errorResp.Details[err.Field()] = fmt.Sprintf("Field Validation Failed on '%s' tag", err.Tag())
		}
	}

	json.NewEncoder(w).Encode(errorResp)
}

// WriteError maps a service error onto SendErrorResponse. Internal causes are logged, not returned.
func WriteError(w http.ResponseWriter, err error) {
	status := StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("[HTTP] Internal error: %v", err)
		SendErrorResponse(w, "An Internal Error Occurred", status, nil)
		return
	}

	var inputErr *InputError
	if errors.As(err, &inputErr) && len(inputErr.Fields) > 0 {
		SendErrorResponse(w, "Validation failed", status, inputErr.Fields)
		return
	}
	SendErrorResponse(w, err.Error(), status, nil)
}
