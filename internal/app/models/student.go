package models

import "time"

// Student defines the student model based on the 'students' table.
// TelegramID is the stable external identity and the primary lookup key;
// exactly one record exists per identity (unique constraint at the store).
type Student struct {
	ID                 int64     `json:"id" db:"id" example:"1"`
	TelegramID         string    `json:"telegramId" db:"telegram_id" example:"423781265"` // Verified Telegram user ID
	FullName           string    `json:"fullName" db:"full_name" example:"Aigerim Seitkali"`
	PhoneNumber        string    `json:"phoneNumber" db:"phone_number" example:"+77071234567"`
	Specialty          string    `json:"specialty" db:"specialty" example:"Information Systems"`
	Year               string    `json:"year" db:"year" example:"3"` // Course/year of study
	ApprenticeshipType string    `json:"apprenticeshipType" db:"apprenticeship_type" example:"Production practice"`
	EduFacilityName    string    `json:"eduFacilityName" db:"edu_facility_name" example:"IITU"`
	StartDate          time.Time `json:"startDate" db:"start_date"`
	EndDate            time.Time `json:"endDate" db:"end_date"`

	// ReferralDocURL points at the uploaded referral letter, ReportDocURL is
	// nil until the student submits the end-of-internship report.
	ReferralDocURL string  `json:"referralDocUrl" db:"referral_doc_url"`
	ReportDocURL   *string `json:"reportDocUrl,omitempty" db:"report_doc_url"`

	// CuratorName references a curator by full name, nil means unassigned.
	// Empty strings are normalized to nil at the boundary and never stored.
	CuratorName *string `json:"curatorName,omitempty" db:"curator_name"`

	Confirmed      bool `json:"confirmed" db:"confirmed"`
	SignedReferral bool `json:"signedReferral" db:"signed_referral"`
	SignedReport   bool `json:"signedReport" db:"signed_report"`
	Employed       bool `json:"employed" db:"employed"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// HasCurator reports whether a curator is assigned.
func (s *Student) HasCurator() bool {
	return s.CuratorName != nil && *s.CuratorName != ""
}

// HasReport reports whether the end-of-internship report was submitted.
func (s *Student) HasReport() bool {
	return s.ReportDocURL != nil && *s.ReportDocURL != ""
}
