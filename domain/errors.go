package domain

import "errors"

var (
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound marks data that is unavailable; callers render an empty state
	ErrNotFound          = errors.New("Your requested Item is not found")
	ErrBadParamInput     = errors.New("Given Param is not valid")
	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")
	ErrInvalidAddress    = errors.New("Invalid address")
	ErrInvalidSignature  = errors.New("Invalid signature")
	ErrInvalidNonce      = errors.New("Invalid nonce")
)
