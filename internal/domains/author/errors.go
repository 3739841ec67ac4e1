package author

import "errors"

var (
	ErrAuthorNotFound = errors.New("tác giả không tồn tại")
	ErrInvalidName    = errors.New("tên tác giả không hợp lệ")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidName):
		return "INVALID_NAME"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrAuthorNotFound):
		return 404
	case errors.Is(err, ErrInvalidName):
		return 400
	default:
		return 500
	}
}
