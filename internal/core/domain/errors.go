package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrInternalServer = errors.New("internal server error")
)

// Investment errors
var (
	ErrMalformedRequest    = errors.New("malformed subscription request")
	ErrInvalidDeal         = errors.New("deal not found or not open for subscription")
	ErrInvalidOption       = errors.New("no payback schedule matches the requested amount")
	ErrDuplicateInvestment = errors.New("deal already subscribed by this user")
	ErrInvalidQueryValue   = errors.New("query parameter is not a valid number")
)

// Error codes surfaced to clients by the transport layer
const (
	CodeMalformedRequest    = "MALFORMED_REQUEST"
	CodeInvalidDeal         = "INVALID_DEAL"
	CodeInvalidOption       = "INVALID_OPTION"
	CodeDuplicateInvestment = "DUPLICATE_INVESTMENT"
	CodeInvalidQueryValue   = "INVALID_QUERY_VALUE"
)
