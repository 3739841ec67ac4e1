package newsletter

import "errors"

var (
	ErrSubscriberNotFound = errors.New("người đăng ký không tồn tại")
	ErrAlreadySubscribed  = errors.New("email này đã đăng ký nhận tin")
	ErrInvalidEmail       = errors.New("email không hợp lệ")
	ErrEmptyBroadcast     = errors.New("nội dung bản tin không được để trống")
)

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrSubscriberNotFound):
		return "SUBSCRIBER_NOT_FOUND"
	case errors.Is(err, ErrAlreadySubscribed):
		return "ALREADY_SUBSCRIBED"
	case errors.Is(err, ErrInvalidEmail):
		return "INVALID_EMAIL"
	case errors.Is(err, ErrEmptyBroadcast):
		return "EMPTY_BROADCAST"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrSubscriberNotFound):
		return 404
	case errors.Is(err, ErrAlreadySubscribed):
		return 409
	case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrEmptyBroadcast):
		return 400
	default:
		return 500
	}
}
