package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation  ErrKind = "validation"   // 400
	KindAuth        ErrKind = "auth"         // 401
	KindNotFound    ErrKind = "not_found"    // 404
	KindMethod      ErrKind = "method"       // 405
	KindConflict    ErrKind = "conflict"     // 409
	KindRateLimited ErrKind = "rate_limited" // 429
	KindInternal    ErrKind = "internal"     // 500
)

// Message keys returned in the "message" field of error bodies.
const (
	MsgValidationFailed     = "VALIDATION_FAILED"
	MsgAuthenticationFailed = "AUTHENTICATION_FAILED"
	MsgUnauthorized         = "UNAUTHORIZED"
	MsgNotFound             = "NOT_FOUND"
	MsgMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	MsgEmailAlreadyExists   = "EMAIL_ALREADY_EXISTS"
	MsgTooManyRequests      = "TOO_MANY_REQUESTS"
	MsgInternalError        = "INTERNAL_ERROR"
)

// Stable machine codes that are not produced by the validation mapper.
const (
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodePageInvalid          = "PAGE_INVALID"
	CodePageSizeInvalid      = "PAGE_SIZE_INVALID"
	CodeKeywordInvalid       = "KEYWORD_INVALID"
	CodeAuthenticationFailed = "AUTHENTICATION_FAILED"
	CodeUserNotFound         = "USER_NOT_FOUND"
	CodeNotFound             = "NOT_FOUND"
	CodeMethodNotAllowed     = "METHOD_NOT_ALLOWED"
	CodeEmailAlreadyExists   = "EMAIL_ALREADY_EXISTS"
	CodeTokenMissing         = "TOKEN_MISSING"
	CodeTokenInvalid         = "TOKEN_INVALID"
	CodeTokenExpired         = "TOKEN_EXPIRED"
	CodeRateLimited          = "RATE_LIMITED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: message key shown to clients, never free text
// - Meta: optional details, logged but not rendered
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Meta    map[string]string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func WithMeta(err *Error, meta map[string]string) *Error {
	err.Meta = meta
	return err
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// KindOf returns the kind of a domain error, or KindInternal for anything else.
func KindOf(err error) ErrKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// ----------------------
// Validation errors (400)
// ----------------------

// ErrValidationFailed carries the machine code chosen by the validation mapper
// or by the board listing checks.
func ErrValidationFailed(code string) *Error {
	if code == "" {
		code = CodeValidationFailed
	}
	return New(KindValidation, code, MsgValidationFailed)
}

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, CodeValidationFailed, MsgValidationFailed, cause)
}

func ErrPageInvalid() *Error {
	return ErrValidationFailed(CodePageInvalid)
}

func ErrPageSizeInvalid() *Error {
	return ErrValidationFailed(CodePageSizeInvalid)
}

func ErrKeywordInvalid() *Error {
	return ErrValidationFailed(CodeKeywordInvalid)
}

// ----------------------
// Auth errors (401)
// ----------------------

// IMPORTANT: use this for every login failure to avoid user enumeration.
func ErrAuthenticationFailed() *Error {
	return New(KindAuth, CodeAuthenticationFailed, MsgAuthenticationFailed)
}

func ErrTokenMissing() *Error {
	return New(KindAuth, CodeTokenMissing, MsgUnauthorized)
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, CodeTokenInvalid, MsgUnauthorized)
}

func ErrTokenExpired() *Error {
	return New(KindAuth, CodeTokenExpired, MsgUnauthorized)
}

// ----------------------
// Not Found (404)
// ----------------------

// ErrUserNotFound is a repository signal; services translate it before it
// reaches a client.
func ErrUserNotFound() *Error {
	return New(KindNotFound, CodeUserNotFound, MsgNotFound)
}

// ErrRouteNotFound is returned for paths the router does not know.
func ErrRouteNotFound() *Error {
	return New(KindNotFound, CodeNotFound, MsgNotFound)
}

// ----------------------
// Method Not Allowed (405)
// ----------------------

func ErrMethodNotAllowed() *Error {
	return New(KindMethod, CodeMethodNotAllowed, MsgMethodNotAllowed)
}

// ----------------------
// Conflict (409)
// ----------------------

func ErrEmailAlreadyExists() *Error {
	return New(KindConflict, CodeEmailAlreadyExists, MsgEmailAlreadyExists)
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited(scope string) *Error {
	return WithMeta(New(KindRateLimited, CodeRateLimited, MsgTooManyRequests), map[string]string{
		"scope": scope,
	})
}

// ----------------------
// Internal (500)
// ----------------------

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, CodeInternalError, MsgInternalError, cause)
}

func ErrHashFailed(cause error) *Error {
	return WithMeta(ErrInternal(cause), map[string]string{"op": "hash_password"})
}

func ErrTokenSignFailed(cause error) *Error {
	return WithMeta(ErrInternal(cause), map[string]string{"op": "sign_token"})
}

func ErrDBUnavailable(cause error) *Error {
	return WithMeta(ErrInternal(cause), map[string]string{"op": "db"})
}
