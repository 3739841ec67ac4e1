package service

import (
	"fmt"

	"github.com/phongnguyen123/treow-physio-sub000/internal/domains/booking"
)

// adminNotification compose email báo lịch hẹn mới cho clinic staff.
func adminNotification(b *booking.Booking) (subject, html string) {
	subject = fmt.Sprintf("Lịch hẹn mới: %s - %s %s", b.FullName, b.Date, b.Time)
	html = fmt.Sprintf(`
        <h2>Lịch hẹn mới từ website</h2>
        <table cellpadding="6" style="border-collapse:collapse">
            <tr><td><b>Họ tên</b></td><td>%s</td></tr>
            <tr><td><b>Số điện thoại</b></td><td>%s</td></tr>
            <tr><td><b>Email</b></td><td>%s</td></tr>
            <tr><td><b>Dịch vụ</b></td><td>%s</td></tr>
            <tr><td><b>Ngày hẹn</b></td><td>%s</td></tr>
            <tr><td><b>Giờ hẹn</b></td><td>%s</td></tr>
            <tr><td><b>Ghi chú</b></td><td>%s</td></tr>
        </table>
        <p>Vui lòng liên hệ khách hàng để xác nhận lịch hẹn.</p>`,
		b.FullName, b.Phone, b.Email, b.Service, b.Date, b.Time, b.Message,
	)
	return subject, html
}

// customerConfirmation compose email xác nhận đã nhận yêu cầu cho khách.
func customerConfirmation(b *booking.Booking) (subject, html string) {
	subject = "Xác nhận đặt lịch hẹn - Phòng khám Vật lý trị liệu"
	html = fmt.Sprintf(`
        <h2>Cảm ơn bạn đã đặt lịch hẹn</h2>
        <p>Chào %s,</p>
        <p>Chúng tôi đã nhận được yêu cầu đặt lịch của bạn:</p>
        <ul>
            <li><b>Dịch vụ:</b> %s</li>
            <li><b>Ngày:</b> %s</li>
            <li><b>Giờ:</b> %s</li>
        </ul>
        <p>Phòng khám sẽ liên hệ qua số %s để xác nhận trong thời gian sớm nhất.</p>
        <p>Trân trọng,<br>Phòng khám Vật lý trị liệu</p>`,
		b.FullName, b.Service, b.Date, b.Time, b.Phone,
	)
	return subject, html
}
