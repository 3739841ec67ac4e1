package booking

import (
	"regexp"
	"strings"
	"time"
)

// DefaultPhonePattern match số điện thoại Việt Nam: bắt đầu bằng 0
// hoặc +84, theo sau 9-10 chữ số. Override qua BOOKING_PHONE_REGEX
// khi deploy cho thị trường khác.
const DefaultPhonePattern = `^(0|\+84)[0-9]{9,10}$`

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// TimeSlots là catalog giờ hẹn của phòng khám, hourly 09:00-17:00.
var TimeSlots = []string{
	"09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// NormalizePhone bỏ toàn bộ whitespace trong số điện thoại,
// "0912 345 678" thành "0912345678". Gọi trước khi match pattern
// và trước khi persist.
func NormalizePhone(raw string) string {
	return strings.Join(strings.Fields(raw), "")
}

// Validator chạy các rules theo thứ tự cố định, trả về lỗi đầu tiên
// gặp phải (first-failure-wins). Pure function trừ "hôm nay".
type Validator struct {
	phone *regexp.Regexp
	now   func() time.Time
}

// NewValidator compile phone pattern. Pattern rỗng dùng default,
// pattern sai syntax trả error để fail-fast lúc startup.
func NewValidator(phonePattern string) (*Validator, error) {
	if phonePattern == "" {
		phonePattern = DefaultPhonePattern
	}
	re, err := regexp.Compile(phonePattern)
	if err != nil {
		return nil, err
	}
	return &Validator{phone: re, now: time.Now}, nil
}

func (v *Validator) Validate(req *CreateBookingRequest) error {
	name := strings.TrimSpace(req.FullName)
	phone := NormalizePhone(req.Phone)
	email := strings.TrimSpace(req.Email)
	service := strings.TrimSpace(req.Service)
	date := strings.TrimSpace(req.Date)
	slot := strings.TrimSpace(req.Time)

	// 1. Required fields. Email là optional.
	if name == "" {
		return ErrMissingName
	}
	if phone == "" {
		return ErrMissingPhone
	}
	if service == "" {
		return ErrMissingService
	}
	if date == "" {
		return ErrMissingDate
	}
	if slot == "" {
		return ErrMissingTime
	}

	// 2. Format checks, email chỉ check khi có
	if !v.phone.MatchString(phone) {
		return ErrInvalidPhone
	}
	if email != "" && !emailPattern.MatchString(email) {
		return ErrInvalidEmail
	}

	// 3. Date phải từ hôm nay trở đi (local midnight, booking hôm nay OK)
	parsed, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		return ErrInvalidDate
	}
	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	if parsed.Before(today) {
		return ErrPastDate
	}

	// 4. Time slot phải nằm trong catalog
	for _, s := range TimeSlots {
		if s == slot {
			return nil
		}
	}
	return ErrInvalidTime
}
