package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidDate     = errors.New("date must be YYYY-MM-DD")
	ErrContentTooLarge = errors.New("content exceeds size limit")
	ErrInvalidEncoding = errors.New("content must be valid UTF-8")
)
