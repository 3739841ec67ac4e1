package settings

import "time"

// DefaultID: settings là singleton row, luôn keyed "default".
const DefaultID = "default"

type SeoSettings struct {
	SiteTitle       string `json:"siteTitle"`
	SiteDescription string `json:"siteDescription"`
	Keywords        string `json:"keywords"`
	OgImage         string `json:"ogImage"`
	CanonicalURL    string `json:"canonicalUrl"`
	GoogleAnalytics string `json:"googleAnalytics"`
}

type SmtpSettings struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	FromEmail string `json:"fromEmail"`
	FromName  string `json:"fromName"`
}

type Settings struct {
	ID        string       `json:"id"`
	Seo       SeoSettings  `json:"seo"`
	Smtp      SmtpSettings `json:"smtp"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// Defaults cho lần đọc đầu tiên khi chưa có record nào được lưu.
func Defaults() *Settings {
	return &Settings{
		ID: DefaultID,
		Seo: SeoSettings{
			SiteTitle:       "Phòng khám Vật lý trị liệu",
			SiteDescription: "Dịch vụ vật lý trị liệu và phục hồi chức năng chuyên sâu",
		},
		Smtp: SmtpSettings{
			Port: 587,
		},
	}
}
