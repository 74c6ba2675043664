package domain

// NotificationSettings mirrors the notification preference toggles.
type NotificationSettings struct {
	Email    bool `json:"email"`
	SMS      bool `json:"sms"`
	Push     bool `json:"push"`
	Critical bool `json:"critical"`
	Warning  bool `json:"warning"`
	Info     bool `json:"info"`
}

// SiteSettings is the admin-only configuration document.
type SiteSettings struct {
	SiteName          string               `json:"site_name"`
	ComplianceTarget  int                  `json:"compliance_target"`
	ShiftNames        []string             `json:"shift_names"`
	RequiredPPE       []string             `json:"required_ppe"`
	Notifications     NotificationSettings `json:"notifications"`
}
