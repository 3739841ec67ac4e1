package booking

type CreateBookingRequest struct {
	FullName string `json:"fullName"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Service  string `json:"service"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Message  string `json:"message"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// UpdateBookingRequest: admin sửa thông tin lịch hẹn, nil = giữ nguyên
type UpdateBookingRequest struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Email    *string `json:"email"`
	Service  *string `json:"service"`
	Date     *string `json:"date"`
	Time     *string `json:"time"`
	Message  *string `json:"message"`
	Status   *Status `json:"status"`
}
