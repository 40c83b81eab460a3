package domain

import "fmt"

type ErrCode string

const (
	CodeValidation ErrCode = "validation_error"
	CodeConfig     ErrCode = "config_error"
	CodeUpstream   ErrCode = "upstream_error"
	CodeInternal   ErrCode = "internal_error"
)

type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string

	// Upstream-only: status code to forward and best-effort error body.
	Status  int
	Details string
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Meta)
}

func ErrValidation(msg string) error { return &AppError{Code: CodeValidation, Message: msg} }
func ErrValidationMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeValidation, Message: msg, Meta: meta}
}
func ErrConfig(msg string) error { return &AppError{Code: CodeConfig, Message: msg} }
func ErrUpstream(status int, msg, details string) error {
	return &AppError{Code: CodeUpstream, Message: msg, Status: status, Details: details}
}
func ErrInternal(msg string) error { return &AppError{Code: CodeInternal, Message: msg} }
