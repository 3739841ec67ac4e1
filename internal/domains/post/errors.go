package post

import "errors"

var (
	ErrPostNotFound  = errors.New("bài viết không tồn tại")
	ErrDuplicateSlug = errors.New("bài viết với slug này đã tồn tại")
	ErrInvalidTitle  = errors.New("tiêu đề không hợp lệ")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
	case errors.Is(err, ErrDuplicateSlug):
		return "DUPLICATE_SLUG"
	case errors.Is(err, ErrInvalidTitle):
		return "INVALID_TITLE"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrPostNotFound):
		return 404
	case errors.Is(err, ErrDuplicateSlug):
		return 409
	case errors.Is(err, ErrInvalidTitle):
		return 400
	default:
		return 500
	}
}
