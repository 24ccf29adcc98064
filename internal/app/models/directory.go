package models

// EducationFacility is a reference entity used to populate the registration
// form. Students keep the facility name as free text, so deleting a facility
// does not touch existing student records.
type EducationFacility struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"IITU"`
}

// ApprenticeshipType is a reference entity naming a kind of internship.
type ApprenticeshipType struct {
	ID   int64  `json:"id" db:"id" example:"1"`
	Name string `json:"name" db:"name" example:"Production practice"`
}
