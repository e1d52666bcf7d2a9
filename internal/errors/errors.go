package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON document")
	ErrInvalidCBOR     = errors.New("invalid CBOR document")
	ErrMultipleValues  = errors.New("multiple documents found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe a document to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
	ErrUnknownFormat   = errors.New("unknown document format")

	// Decode-path errors
	ErrTypeMismatch       = errors.New("node representation does not match requested type")
	ErrOutOfRange         = errors.New("value does not fit the requested width")
	ErrUnsupportedType    = errors.New("no variant matched this node")
	ErrDepthExceeded      = errors.New("document nesting exceeds the configured depth limit")
	ErrMalformedContainer = errors.New("container node is malformed")
	ErrMissingKey         = errors.New("required key is not present")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput    ErrorType = "input"
	ErrorTypeParsing  ErrorType = "parsing"
	ErrorTypeDecode   ErrorType = "decode"
	ErrorTypeEncode   ErrorType = "encode"
	ErrorTypeDescribe ErrorType = "describe"
	ErrorTypeOutput   ErrorType = "output"
	ErrorTypeUnknown  ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	// Check if target is also an *AppError and if the types match
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to document parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewEncodeError creates a new error related to document encoding
func NewEncodeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeEncode,
		Message: message,
		Err:     err,
	}
}

// NewDescribeError creates a new error related to type sketching
func NewDescribeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeDescribe,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// DecodeError reports a decode failure at a specific location in the
// document. Path uses a dollar-rooted dotted notation, e.g. $.items[3].id.
type DecodeError struct {
	Path string
	Err  error
}

// Error implements error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %v at %s", e.Err, e.Path)
}

// Unwrap returns wrapped error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// NewDecodeError creates a decode error carrying the node path
func NewDecodeError(path string, err error) *DecodeError {
	return &DecodeError{Path: path, Err: err}
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return fmt.Sprintf("Decode error at %s: %v", decErr.Path, decErr.Err)
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("Parsing error: %s", appErr.Message)
		case ErrorTypeDecode:
			return fmt.Sprintf("Decode error: %s", appErr.Message)
		case ErrorTypeEncode:
			return fmt.Sprintf("Encode error: %s", appErr.Message)
		case ErrorTypeDescribe:
			return fmt.Sprintf("Describe error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide a valid document."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your document syntax."
	}
	if errors.Is(err, ErrInvalidCBOR) {
		return "Error: The input is not a well-formed CBOR document."
	}
	if errors.Is(err, ErrMultipleValues) {
		return "Error: Multiple documents found. Please provide a single document."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with a valid document."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe a document to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}
	if errors.Is(err, ErrUnknownFormat) {
		return "Error: Unknown document format. Supported formats are json and cbor."
	}
	if errors.Is(err, ErrDepthExceeded) {
		return "Error: The document is nested too deeply. Raise decode.max_depth in the config if this is intentional."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
