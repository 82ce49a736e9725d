package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidID         = errors.New("invalid ID")
	ErrEmptyTitle        = errors.New("title is required")
	ErrTitleTooLong      = errors.New("title is too long")
	ErrEmptyName         = errors.New("name is required")
	ErrNameTooLong       = errors.New("name is too long")
	ErrReservedName      = errors.New("name is reserved")
	ErrInvalidQuantity   = errors.New("quantity cannot be negative")
	ErrInvalidServings   = errors.New("servings cannot be negative")
	ErrInvalidMinutes    = errors.New("minutes cannot be negative")
	ErrInvalidURL        = errors.New("url must be an absolute http(s) url")
	ErrNoFieldsToUpdate  = errors.New("at least one field must be provided for update")
	ErrNoCategoryRef     = errors.New("category id or value is required")
	ErrInvalidOrder      = errors.New("display order cannot be negative")
	ErrEmptyCategoryList = errors.New("categories list cannot be empty")
	ErrDuplicateCategory = errors.New("category listed more than once")
	ErrParseSource       = errors.New("exactly one of text or url is required")
	ErrTextTooLong       = errors.New("text is too long")
)
