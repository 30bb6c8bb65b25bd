package domain

import "time"

// Student is an enrollment record linking a user to an institution.
type Student struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	UserID         string    `json:"user_id" bson:"user_id"`
	InstitutionID  string    `json:"institution_id" bson:"institution_id"`
	Grade          string    `json:"grade" bson:"grade"`
	EnrollmentYear int       `json:"enrollment_year" bson:"enrollment_year"`
	GraduationYear int       `json:"graduation_year,omitempty" bson:"graduation_year,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
