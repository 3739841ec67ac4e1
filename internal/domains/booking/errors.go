package booking

import "errors"

var (
	ErrBookingNotFound = errors.New("lịch hẹn không tồn tại")
	ErrInvalidStatus   = errors.New("trạng thái không hợp lệ")

	// Validation sentinels, trả thẳng message cho client
	ErrMissingName    = errors.New("vui lòng nhập họ tên")
	ErrMissingPhone   = errors.New("vui lòng nhập số điện thoại")
	ErrMissingService = errors.New("vui lòng chọn dịch vụ")
	ErrMissingDate    = errors.New("vui lòng chọn ngày hẹn")
	ErrMissingTime    = errors.New("vui lòng chọn giờ hẹn")
	ErrInvalidPhone   = errors.New("số điện thoại không hợp lệ")
	ErrInvalidEmail   = errors.New("email không hợp lệ")
	ErrInvalidDate    = errors.New("ngày hẹn không hợp lệ")
	ErrPastDate       = errors.New("ngày hẹn không được ở quá khứ")
	ErrInvalidTime    = errors.New("giờ hẹn không hợp lệ")
)

func isValidationErr(err error) bool {
	switch {
	case errors.Is(err, ErrMissingName),
		errors.Is(err, ErrMissingPhone),
		errors.Is(err, ErrMissingService),
		errors.Is(err, ErrMissingDate),
		errors.Is(err, ErrMissingTime),
		errors.Is(err, ErrInvalidPhone),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidDate),
		errors.Is(err, ErrPastDate),
		errors.Is(err, ErrInvalidTime):
		return true
	}
	return false
}

func ToErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		return "BOOKING_NOT_FOUND"
	case errors.Is(err, ErrInvalidStatus):
		return "INVALID_STATUS"
	case isValidationErr(err):
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrBookingNotFound):
		return 404
	case errors.Is(err, ErrInvalidStatus), isValidationErr(err):
		return 400
	default:
		return 500
	}
}
