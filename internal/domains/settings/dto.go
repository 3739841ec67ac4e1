package settings

// Partial update DTOs: nil field = giữ nguyên giá trị hiện tại.

type UpdateSeoRequest struct {
	SiteTitle       *string `json:"siteTitle"`
	SiteDescription *string `json:"siteDescription"`
	Keywords        *string `json:"keywords"`
	OgImage         *string `json:"ogImage"`
	CanonicalURL    *string `json:"canonicalUrl"`
	GoogleAnalytics *string `json:"googleAnalytics"`
}

type UpdateSmtpRequest struct {
	Host      *string `json:"host"`
	Port      *int    `json:"port"`
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	FromEmail *string `json:"fromEmail"`
	FromName  *string `json:"fromName"`
}
