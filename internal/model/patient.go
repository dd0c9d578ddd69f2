package model

import (
	"fmt"
	"time"

	apperrors "github.com/jwalitptl/healthcare-api/pkg/errors"
)

// Patient is the identity root: appointments and medical records belong to
// exactly one patient and are removed with it.
type Patient struct {
	ID          int64     `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	DateOfBirth Date      `db:"date_of_birth" json:"date_of_birth"`
	Email       string    `db:"email" json:"email"`
	Phone       *string   `db:"phone" json:"phone"`
	Address     *string   `db:"address" json:"address"`
	BloodGroup  *string   `db:"blood_group" json:"blood_group"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// CreatePatientRequest carries pointer fields so that absent and empty values
// can be told apart during validation.
type CreatePatientRequest struct {
	Name        *string `json:"name"`
	DateOfBirth *string `json:"date_of_birth"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BloodGroup  *string `json:"blood_group"`
}

// Validate checks required fields in declaration order; the first missing
// field wins.
func (r *CreatePatientRequest) Validate() error {
	required := []struct {
		name  string
		value *string
	}{
		{"name", r.Name},
		{"date_of_birth", r.DateOfBirth},
		{"email", r.Email},
	}
	for _, f := range required {
		if f.value == nil {
			return apperrors.Validation(fmt.Sprintf("Missing required field: %s", f.name))
		}
	}
	return nil
}

// UpdatePatientRequest supports partial updates: only non-nil fields are
// applied.
type UpdatePatientRequest struct {
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
	BloodGroup  *string `json:"blood_group"`
	DateOfBirth *string `json:"date_of_birth"`
}

// ApplyTo merges the supplied fields into the patient. Merging happens fully
// in memory before any store write, so a parse failure leaves the patient row
// untouched.
func (r *UpdatePatientRequest) ApplyTo(p *Patient) error {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = r.Phone
	}
	if r.Address != nil {
		p.Address = r.Address
	}
	if r.BloodGroup != nil {
		p.BloodGroup = r.BloodGroup
	}
	if r.DateOfBirth != nil {
		dob, err := ParseDate(*r.DateOfBirth)
		if err != nil {
			return apperrors.Validation(fmt.Sprintf("invalid date_of_birth: expected format %s", DateLayout))
		}
		p.DateOfBirth = dob
	}
	return nil
}
