package errors

import "fmt"

type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationError struct {
	Message string
	Details []ValidationDetail
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string, details ...ValidationDetail) *ValidationError {
	return &ValidationError{
		Message: message,
		Details: details,
	}
}

func IsValidationError(err error) (*ValidationError, bool) {
	if ve, ok := err.(*ValidationError); ok {
		return ve, true
	}
	return nil, false
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if nfe, ok := err.(*NotFoundError); ok {
		return nfe, true
	}
	return nil, false
}

// InvalidFilterError signals a list call with out-of-range pagination, an
// unknown status, or a date outside the accepted range.
type InvalidFilterError struct {
	Message string
	Details []ValidationDetail
}

func (e *InvalidFilterError) Error() string {
	return e.Message
}

func NewInvalidFilterError(message string, details ...ValidationDetail) *InvalidFilterError {
	return &InvalidFilterError{
		Message: message,
		Details: details,
	}
}

func IsInvalidFilterError(err error) (*InvalidFilterError, bool) {
	if fe, ok := err.(*InvalidFilterError); ok {
		return fe, true
	}
	return nil, false
}

// SourceUnavailableError means the backing order collection could not be
// retrieved. Callers must treat it as "no data", never as an empty result.
type SourceUnavailableError struct {
	Message string
	Cause   error
}

func (e *SourceUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Cause
}

func NewSourceUnavailableError(message string, cause error) *SourceUnavailableError {
	return &SourceUnavailableError{
		Message: message,
		Cause:   cause,
	}
}

func IsSourceUnavailableError(err error) (*SourceUnavailableError, bool) {
	if se, ok := err.(*SourceUnavailableError); ok {
		return se, true
	}
	return nil, false
}

// MalformedRecordError marks a single order record that failed to parse a
// required field. It is recovered locally and reported to the logger, never
// surfaced to the caller.
type MalformedRecordError struct {
	InvoiceID string
	Field     string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("order %s: malformed field %s", e.InvoiceID, e.Field)
}

func NewMalformedRecordError(invoiceID, field string) *MalformedRecordError {
	return &MalformedRecordError{InvoiceID: invoiceID, Field: field}
}

func IsMalformedRecordError(err error) (*MalformedRecordError, bool) {
	if me, ok := err.(*MalformedRecordError); ok {
		return me, true
	}
	return nil, false
}

type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

func NewInternalError(message string, cause error) *InternalError {
	return &InternalError{
		Message: message,
		Cause:   cause,
	}
}

func IsInternalError(err error) (*InternalError, bool) {
	if ie, ok := err.(*InternalError); ok {
		return ie, true
	}
	return nil, false
}
