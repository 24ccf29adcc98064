package dto

// TelegramLoginRequest carries the Telegram Login Widget payload. The hash
// is the HMAC signature Telegram computes over the remaining fields.
type TelegramLoginRequest struct {
	ID        string `json:"id" binding:"required" example:"423781265"`
	FirstName string `json:"first_name" example:"Aigerim"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty" example:"aigerim_s"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  int64  `json:"auth_date" binding:"required" example:"1724932800"`
	Hash      string `json:"hash" binding:"required"`
}

// RegisterStudentRequest is the registration form a student submits once.
// Dates are ISO 8601 (YYYY-MM-DD). The referral document is uploaded
// out-of-band; only its URL is stored.
type RegisterStudentRequest struct {
	FullName           string `json:"fullName" binding:"required" example:"Aigerim Seitkali"`
	PhoneNumber        string `json:"phoneNumber" binding:"required" example:"+77071234567"`
	Specialty          string `json:"specialty" binding:"required" example:"Information Systems"`
	Year               string `json:"year" binding:"required" example:"3"`
	ApprenticeshipType string `json:"apprenticeshipType" binding:"required" example:"Production practice"`
	EduFacilityName    string `json:"eduFacilityName" binding:"required" example:"IITU"`
	StartDate          string `json:"startDate" binding:"required" example:"2026-06-01"`
	EndDate            string `json:"endDate" binding:"required" example:"2026-07-15"`
	ReferralDocURL     string `json:"referralDocUrl" binding:"required" example:"https://files.example.com/referral.pdf"`
}

// ConfirmStudentRequest names the curator assigned at confirmation.
// Confirmation without a curator is rejected.
type ConfirmStudentRequest struct {
	CuratorName string `json:"curatorName" binding:"required" example:"Petrov A.V."`
}

// AssignCuratorRequest assigns a curator to a student without confirming.
type AssignCuratorRequest struct {
	CuratorName string `json:"curatorName" binding:"required" example:"Petrov A.V."`
}

// SubmitReportRequest carries the URL of the uploaded report document.
type SubmitReportRequest struct {
	ReportDocURL string `json:"reportDocUrl" binding:"required" example:"https://files.example.com/report.pdf"`
}

// UpdateStudentRequest is the administrator's full-attribute edit of a
// student record. All text fields are required.
type UpdateStudentRequest struct {
	FullName           string `json:"fullName" binding:"required"`
	PhoneNumber        string `json:"phoneNumber" binding:"required"`
	Specialty          string `json:"specialty" binding:"required"`
	Year               string `json:"year" binding:"required"`
	ApprenticeshipType string `json:"apprenticeshipType" binding:"required"`
	EduFacilityName    string `json:"eduFacilityName" binding:"required"`
	CuratorName        string `json:"curatorName"`
	Confirmed          bool   `json:"confirmed"`
	SignedReferral     bool   `json:"signedReferral"`
	SignedReport       bool   `json:"signedReport"`
	Employed           bool   `json:"employed"`
}

// CreateCuratorRequest creates a curator directory entry.
type CreateCuratorRequest struct {
	TelegramID string `json:"telegramId" binding:"required" example:"88214412"`
	FullName   string `json:"fullName" binding:"required" example:"Petrov A.V."`
	GroupLink  string `json:"groupLink,omitempty" example:"https://t.me/+AbCdEf"`
}

// CreateNamedEntryRequest creates a facility or apprenticeship type entry.
type CreateNamedEntryRequest struct {
	Name string `json:"name" binding:"required" example:"IITU"`
}
