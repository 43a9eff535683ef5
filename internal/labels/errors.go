package labels

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a label sheet could not be generated
type ErrorKind string

const (
	KindParse      ErrorKind = "PARSE"
	KindValidation ErrorKind = "VALIDATION"
	KindRender     ErrorKind = "RENDER"
	KindOutput     ErrorKind = "OUTPUT"
)

// GenerationError aborts a whole generation. Message is shown to the user verbatim.
type GenerationError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface
func (e *GenerationError) Error() string {
	return e.Message
}

// Unwrap allows errors.Is and errors.As to reach the cause
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// NewParseError wraps a roster decoding failure, keeping the parser diagnostic
func NewParseError(source string, cause error) *GenerationError {
	diagnostic := cause
	if inner := errors.Unwrap(cause); inner != nil {
		diagnostic = inner
	}
	return &GenerationError{
		Kind:    KindParse,
		Message: fmt.Sprintf("error parsing %s: %v", source, diagnostic),
		Cause:   cause,
	}
}

// NewValidationError reports a structurally valid roster that cannot be used
func NewValidationError(message string) *GenerationError {
	return &GenerationError{Kind: KindValidation, Message: message}
}

// NewRenderError reports an unexpected layout or drawing failure
func NewRenderError(cause error) *GenerationError {
	return &GenerationError{
		Kind:    KindRender,
		Message: fmt.Sprintf("error rendering label sheet: %v", cause),
		Cause:   cause,
	}
}

// NewOutputError reports a finished document that could not be saved
func NewOutputError(fileName string, cause error) *GenerationError {
	return &GenerationError{
		Kind:    KindOutput,
		Message: fmt.Sprintf("error saving %s: %v", fileName, cause),
		Cause:   cause,
	}
}

// KindOf returns the kind of a GenerationError anywhere in err's chain, or "" if there is none
func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}

// IsParseError reports whether err is a parse failure
func IsParseError(err error) bool {
	return KindOf(err) == KindParse
}

// IsValidationError reports whether err is a validation failure
func IsValidationError(err error) bool {
	return KindOf(err) == KindValidation
}

// IsUserError reports whether err was caused by the uploaded roster rather than the system
func IsUserError(err error) bool {
	kind := KindOf(err)
	return kind == KindParse || kind == KindValidation
}
